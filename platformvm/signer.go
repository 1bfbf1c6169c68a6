// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package platformvm

import (
	"github.com/firnlabs/avalanche/codec"
	"github.com/firnlabs/avalanche/key/bls"
	"github.com/firnlabs/avalanche/packer"
)

// StakeSigner - the optional BLS attachment on permissionless stakers
type StakeSigner interface {
	Pack(p *packer.Packer)
}

// EmptySigner - no BLS key attached
type EmptySigner struct{}

// Pack - just the empty signer type id
func (s *EmptySigner) Pack(p *packer.Packer) {
	p.PackInt(codec.PChainSignerEmpty)
}

// PopSigner - a BLS proof of possession attachment
type PopSigner struct {
	Pop bls.ProofOfPossession
}

// Pack - type id, 48 byte public key, 96 byte proof
func (s *PopSigner) Pack(p *packer.Packer) {
	p.PackInt(codec.PChainSignerProofOfPossession)
	p.PackFixedBytes(s.Pop.PublicKey[:])
	p.PackFixedBytes(s.Pop.Proof[:])
}
