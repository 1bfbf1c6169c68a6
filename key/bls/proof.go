// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bls

import (
	"github.com/firnlabs/avalanche/fault"
)

// ProofOfPossession - a public key and its self signature
//
// attached to permissionless validator registrations to prove the
// registrant holds the corresponding secret key
type ProofOfPossession struct {
	PublicKey [PublicKeyLength]byte
	Proof     [SignatureLength]byte
}

// NewProofOfPossession - create the proof for a secret key
func NewProofOfPossession(sk *SecretKey) (*ProofOfPossession, error) {
	pk := sk.PublicKey()
	sig, err := sk.SignProofOfPossession(pk.Bytes())
	if nil != err {
		return nil, err
	}
	pop := &ProofOfPossession{}
	copy(pop.PublicKey[:], pk.Bytes())
	copy(pop.Proof[:], sig.Bytes())
	return pop, nil
}

// Verify - check the proof against its own public key
func (pop *ProofOfPossession) Verify() error {
	pk, err := PublicKeyFromBytes(pop.PublicKey[:])
	if nil != err {
		return err
	}
	sig, err := SignatureFromBytes(pop.Proof[:])
	if nil != err {
		return err
	}
	if !VerifyProofOfPossession(pk, pop.PublicKey[:], sig) {
		return fault.ErrInvalidSignature
	}
	return nil
}
