// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// secp256k1 key handling
//
// private keys sign transaction digests with deterministic recoverable
// ECDSA; public keys derive the three address forms: the 20 byte short
// id, the bech32 chain address and the ethereum style hex address
package key

import (
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/formatting"
)

// sizes of the key material
const (
	PrivateKeyLength = 32
	PublicKeyLength  = 33
	SignatureLength  = 65
)

// textual prefix on every encoded private key
const PrivateKeyPrefix = "PrivateKey-"

// compact signature header offset used by the underlying library
const compactSigMagicOffset = 27

// PrivateKey - a secp256k1 private key
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// Generate - create a new random private key
func Generate() (*PrivateKey, error) {
	k, err := secp256k1.GeneratePrivateKey()
	if nil != err {
		return nil, err
	}
	return &PrivateKey{key: k}, nil
}

// PrivateKeyFromBytes - load a private key from its 32 byte scalar
func PrivateKeyFromBytes(buffer []byte) (*PrivateKey, error) {
	if PrivateKeyLength != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	k := secp256k1.PrivKeyFromBytes(buffer)
	if k.Key.IsZero() {
		return nil, fault.ErrInvalidPrivateKey
	}
	return &PrivateKey{key: k}, nil
}

// PrivateKeyFromString - decode a PrivateKey- prefixed CB58 string
func PrivateKeyFromString(s string) (*PrivateKey, error) {
	if !strings.HasPrefix(s, PrivateKeyPrefix) {
		return nil, fault.ErrMissingKeyPrefix
	}
	buffer, err := formatting.DecodeCB58(strings.TrimPrefix(s, PrivateKeyPrefix))
	if nil != err {
		return nil, err
	}
	return PrivateKeyFromBytes(buffer)
}

// Bytes - the 32 byte scalar
func (p *PrivateKey) Bytes() []byte {
	return p.key.Serialize()
}

// String - PrivateKey- prefixed CB58 encoding
func (p *PrivateKey) String() string {
	return PrivateKeyPrefix + formatting.EncodeCB58(p.Bytes())
}

// PublicKey - the corresponding public key
func (p *PrivateKey) PublicKey() *PublicKey {
	return &PublicKey{key: p.key.PubKey()}
}

// SignDigest - sign a 32 byte digest
//
// deterministic per RFC 6979 so repeated signing of the same digest
// yields identical bytes; the result is r then s then the recovery
// code, 65 bytes in all
func (p *PrivateKey) SignDigest(digest []byte) ([]byte, error) {
	if 32 != len(digest) {
		return nil, fault.ErrInvalidSignatureLength
	}
	sig := ecdsa.SignCompact(p.key, digest, false)

	// the library places the recovery header first, the wire format
	// wants it last
	recoveryCode := sig[0] - compactSigMagicOffset
	copy(sig, sig[1:])
	sig[SignatureLength-1] = recoveryCode
	return sig, nil
}
