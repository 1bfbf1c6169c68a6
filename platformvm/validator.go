// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// P-chain transactions
//
// staking, subnet and cross chain transfer transactions; each packs as
// codec version, registered type id, the common base fields and a type
// specific trailer, then signs per the shared protocol
package platformvm

import (
	"github.com/firnlabs/avalanche/codec"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/packer"
	"github.com/firnlabs/avalanche/txs"
)

// Validator - a staking commitment for one node
type Validator struct {
	NodeId ids.NodeId
	Start  uint64
	End    uint64
	Weight uint64
}

// Pack - append node id, validity window and weight
func (v *Validator) Pack(p *packer.Packer) {
	p.PackFixedBytes(v.NodeId.Bytes())
	p.PackLong(v.Start)
	p.PackLong(v.End)
	p.PackLong(v.Weight)
}

// SubnetAuth - signature indices over a subnet's owner set
type SubnetAuth struct {
	SigIndices []uint32
}

// Pack - append the auth type id then the signature indices
func (a *SubnetAuth) Pack(p *packer.Packer) {
	p.PackInt(codec.PChainSecp256k1Input)
	p.PackInt(uint32(len(a.SigIndices)))
	for _, ix := range a.SigIndices {
		p.PackInt(ix)
	}
}

// pack an owner set with its registered type id
func packOwners(p *packer.Packer, owners *txs.OutputOwners) {
	p.PackInt(codec.PChainSecp256k1OutputOwners)
	owners.Pack(p)
}
