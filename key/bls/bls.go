// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// BLS12-381 keys for validator proofs of possession
//
// public keys are compressed G1 points of 48 bytes, signatures are
// compressed G2 points of 96 bytes.  The two domain separation tags
// follow the BLS signature draft: the POP tag binds a proof of
// possession to its own public key so it cannot be replayed as an
// ordinary signature
package bls

import (
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/firnlabs/avalanche/fault"
)

// serialised sizes
const (
	PublicKeyLength = bls12381.SizeOfG1AffineCompressed
	SignatureLength = bls12381.SizeOfG2AffineCompressed
)

// domain separation tags
var (
	signatureDst = []byte("BLS_SIG_BLS12381G2_XMD:SHA-256_SSWU_RO_NUL_")
	popDst       = []byte("BLS_POP_BLS12381G2_XMD:SHA-256_SSWU_RO_POP_")
)

// SecretKey - a BLS12-381 secret scalar
type SecretKey struct {
	scalar fr.Element
}

// PublicKey - a point on G1
type PublicKey struct {
	point bls12381.G1Affine
}

// Signature - a point on G2
type Signature struct {
	point bls12381.G2Affine
}

// NewSecretKey - generate a random secret key
func NewSecretKey() (*SecretKey, error) {
	sk := &SecretKey{}
	_, err := sk.scalar.SetRandom()
	if nil != err {
		return nil, err
	}
	return sk, nil
}

// SecretKeyFromBytes - load a secret key from its 32 byte scalar
func SecretKeyFromBytes(buffer []byte) (*SecretKey, error) {
	if fr.Bytes != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	sk := &SecretKey{}
	sk.scalar.SetBytes(buffer)
	if sk.scalar.IsZero() {
		return nil, fault.ErrInvalidPrivateKey
	}
	return sk, nil
}

// Bytes - the 32 byte scalar
func (sk *SecretKey) Bytes() []byte {
	b := sk.scalar.Bytes()
	return b[:]
}

// PublicKey - the corresponding G1 point
func (sk *SecretKey) PublicKey() *PublicKey {
	_, _, g1Gen, _ := bls12381.Generators()
	pk := &PublicKey{}
	pk.point.ScalarMultiplication(&g1Gen, sk.scalar.BigInt(new(big.Int)))
	return pk
}

// sign a message under a domain separation tag
func (sk *SecretKey) sign(message []byte, dst []byte) (*Signature, error) {
	hashPoint, err := bls12381.HashToG2(message, dst)
	if nil != err {
		return nil, err
	}
	sig := &Signature{}
	sig.point.ScalarMultiplication(&hashPoint, sk.scalar.BigInt(new(big.Int)))
	return sig, nil
}

// Sign - an ordinary message signature
func (sk *SecretKey) Sign(message []byte) (*Signature, error) {
	return sk.sign(message, signatureDst)
}

// SignProofOfPossession - sign under the proof of possession tag
func (sk *SecretKey) SignProofOfPossession(message []byte) (*Signature, error) {
	return sk.sign(message, popDst)
}

// PublicKeyFromBytes - load a compressed G1 public key
func PublicKeyFromBytes(buffer []byte) (*PublicKey, error) {
	if PublicKeyLength != len(buffer) {
		return nil, fault.ErrInvalidKeyLength
	}
	pk := &PublicKey{}
	if _, err := pk.point.SetBytes(buffer); nil != err {
		return nil, fault.ErrInvalidPublicKey
	}
	return pk, nil
}

// Bytes - the 48 byte compressed form
func (pk *PublicKey) Bytes() []byte {
	b := pk.point.Bytes()
	return b[:]
}

// SignatureFromBytes - load a compressed G2 signature
func SignatureFromBytes(buffer []byte) (*Signature, error) {
	if SignatureLength != len(buffer) {
		return nil, fault.ErrInvalidSignatureLength
	}
	sig := &Signature{}
	if _, err := sig.point.SetBytes(buffer); nil != err {
		return nil, fault.ErrInvalidSignature
	}
	return sig, nil
}

// Bytes - the 96 byte compressed form
func (sig *Signature) Bytes() []byte {
	b := sig.point.Bytes()
	return b[:]
}

// verify a signature under a domain separation tag
//
// checks e(pk, H(m)) == e(g1, sig) via a product of pairings
func verify(pk *PublicKey, message []byte, sig *Signature, dst []byte) bool {
	hashPoint, err := bls12381.HashToG2(message, dst)
	if nil != err {
		return false
	}
	_, _, g1Gen, _ := bls12381.Generators()
	var negG1Gen bls12381.G1Affine
	negG1Gen.Neg(&g1Gen)

	ok, err := bls12381.PairingCheck(
		[]bls12381.G1Affine{pk.point, negG1Gen},
		[]bls12381.G2Affine{hashPoint, sig.point},
	)
	if nil != err {
		return false
	}
	return ok
}

// Verify - check an ordinary message signature
func Verify(pk *PublicKey, message []byte, sig *Signature) bool {
	return verify(pk, message, sig, signatureDst)
}

// VerifyProofOfPossession - check a signature made under the POP tag
func VerifyProofOfPossession(pk *PublicKey, message []byte, sig *Signature) bool {
	return verify(pk, message, sig, popDst)
}
