// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txs

import (
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/packer"
)

// BaseTx - fields common to every transaction
type BaseTx struct {
	NetworkId    uint32
	BlockchainId ids.Id
	Outputs      []*TransferableOutput
	Inputs       []*TransferableInput
	Memo         []byte
}

// Pack - append the common fields in canonical order
//
// outputs and inputs must already be sorted; inputs are sorted
// together with their signer groups so the credentials keep their
// alignment, which is why packing never reorders them itself
func (t *BaseTx) Pack(p *packer.Packer) {
	p.PackInt(t.NetworkId)
	p.PackFixedBytes(t.BlockchainId.Bytes())
	p.PackInt(uint32(len(t.Outputs)))
	for _, out := range t.Outputs {
		out.Pack(p)
	}
	p.PackInt(uint32(len(t.Inputs)))
	for _, in := range t.Inputs {
		in.Pack(p)
	}
	p.PackBytes(t.Memo)
}
