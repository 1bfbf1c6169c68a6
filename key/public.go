// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package key

import (
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/hash"
	"github.com/firnlabs/avalanche/ids"
)

// PublicKey - a secp256k1 public key
type PublicKey struct {
	key *secp256k1.PublicKey
}

// PublicKeyFromBytes - load a public key from its SEC1 compressed form
func PublicKeyFromBytes(buffer []byte) (*PublicKey, error) {
	if PublicKeyLength != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	k, err := secp256k1.ParsePubKey(buffer)
	if nil != err {
		return nil, fault.ErrInvalidPublicKey
	}
	return &PublicKey{key: k}, nil
}

// Bytes - the 33 byte SEC1 compressed form
func (p *PublicKey) Bytes() []byte {
	return p.key.SerializeCompressed()
}

// ShortAddress - RIPEMD-160 over SHA-256 of the compressed key
func (p *PublicKey) ShortAddress() ids.ShortId {
	return ids.ShortId(hash.Sha256Ripemd160(p.Bytes()))
}

// Address - bech32 chain address, e.g. X-avax1...
func (p *PublicKey) Address(chain string, hrp string) (string, error) {
	short := p.ShortAddress()
	converted, err := bech32.ConvertBits(short[:], 8, 5, true)
	if nil != err {
		return "", fault.ErrAddressDecodeFail
	}
	encoded, err := bech32.Encode(hrp, converted)
	if nil != err {
		return "", fault.ErrAddressDecodeFail
	}
	return chain + "-" + encoded, nil
}

// EthAddress - checksummed hex address over the uncompressed key
func (p *PublicKey) EthAddress() string {
	uncompressed := p.key.SerializeUncompressed()
	digest := hash.Keccak256(uncompressed[1:])
	return checksumEthAddress(digest[12:])
}

// mixed case checksum encoding of a 20 byte address
func checksumEthAddress(addr []byte) string {
	lower := hex.EncodeToString(addr)
	digest := hash.Keccak256([]byte(lower))
	encoded := []byte(lower)
	for i, c := range encoded {
		if 'a' <= c && 'f' >= c {
			nibble := digest[i/2]
			if 0 == i%2 {
				nibble >>= 4
			}
			if 8 <= nibble&0x0f {
				encoded[i] = c - 'a' + 'A'
			}
		}
	}
	return "0x" + string(encoded)
}

// Verify - check a 65 byte recoverable signature over a digest
func (p *PublicKey) Verify(digest []byte, sig []byte) bool {
	recovered, err := RecoverPublicKey(digest, sig)
	if nil != err {
		return false
	}
	return p.key.IsEqual(recovered.key)
}

// RecoverPublicKey - the signing key of a 65 byte recoverable signature
func RecoverPublicKey(digest []byte, sig []byte) (*PublicKey, error) {
	if SignatureLength != len(sig) {
		return nil, fault.ErrInvalidSignatureLength
	}

	// rebuild the header first compact form the library expects
	compact := make([]byte, SignatureLength)
	compact[0] = sig[SignatureLength-1] + compactSigMagicOffset
	copy(compact[1:], sig[:SignatureLength-1])

	k, _, err := ecdsa.RecoverCompact(compact, digest)
	if nil != err {
		return nil, fault.ErrSignatureRecoveryFail
	}
	return &PublicKey{key: k}, nil
}

// ParseAddress - decode a bech32 chain address back to a short id
func ParseAddress(addr string) (chain string, hrp string, short ids.ShortId, err error) {
	sep := -1
	for i, c := range addr {
		if '-' == c {
			sep = i
			break
		}
	}
	if 0 >= sep {
		return "", "", ids.ShortEmpty, fault.ErrAddressDecodeFail
	}
	chain = addr[:sep]
	hrp, converted, err := bech32.Decode(addr[sep+1:])
	if nil != err {
		return "", "", ids.ShortEmpty, fault.ErrAddressDecodeFail
	}
	buffer, err := bech32.ConvertBits(converted, 5, 8, false)
	if nil != err {
		return "", "", ids.ShortEmpty, fault.ErrAddressDecodeFail
	}
	short, err = ids.NewShortId(buffer)
	if nil != err {
		return "", "", ids.ShortEmpty, err
	}
	return chain, hrp, short, nil
}
