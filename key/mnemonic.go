// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package key

import (
	"github.com/tyler-smith/go-bip39"

	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/hash"
)

// NewMnemonic - generate a fresh 24 word recovery phrase
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(256)
	if nil != err {
		return "", err
	}
	return bip39.NewMnemonic(entropy)
}

// PrivateKeyFromMnemonic - derive a private key from a recovery phrase
//
// the first 32 bytes of the BIP-39 seed become the key scalar; on the
// astronomically unlikely event of an invalid scalar the seed is
// re-hashed until one is found
func PrivateKeyFromMnemonic(phrase string) (*PrivateKey, error) {
	if !bip39.IsMnemonicValid(phrase) {
		return nil, fault.ErrInvalidMnemonic
	}
	seed := bip39.NewSeed(phrase, "")
	buffer := seed[:PrivateKeyLength]
	for {
		k, err := PrivateKeyFromBytes(buffer)
		if nil == err {
			return k, nil
		}
		rehash := hash.Sha256(buffer)
		buffer = rehash[:]
	}
}
