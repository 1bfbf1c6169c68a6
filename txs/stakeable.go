// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txs

import (
	"github.com/firnlabs/avalanche/codec"
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/packer"
)

// StakeableLockOut - a transfer output locked for staking until a time
type StakeableLockOut struct {
	Locktime uint64
	Out      TransferOutput
}

// Pack - append the lock time then the typed inner output
func (o *StakeableLockOut) Pack(p *packer.Packer) {
	p.PackLong(o.Locktime)
	p.PackInt(codec.XChainSecp256k1TransferOut)
	o.Out.Pack(p)
}

// Unpack - read the lock time then the typed inner output
func (o *StakeableLockOut) Unpack(p *packer.Packer) {
	o.Locktime = p.UnpackLong()
	if codec.XChainSecp256k1TransferOut != p.UnpackInt() {
		p.SetError(fault.ErrUnexpectedTypeId)
		return
	}
	o.Out.Unpack(p)
}

// StakeableLockIn - a transfer input consuming a stake locked output
type StakeableLockIn struct {
	Locktime uint64
	In       TransferInput
}

// Pack - append the lock time then the inner input, inlined
//
// unlike the output side the inner input carries no type id of its
// own on the wire
func (i *StakeableLockIn) Pack(p *packer.Packer) {
	p.PackLong(i.Locktime)
	i.In.Pack(p)
}

// Unpack - read the lock time then the inlined inner input
func (i *StakeableLockIn) Unpack(p *packer.Packer) {
	i.Locktime = p.UnpackLong()
	i.In.Unpack(p)
}
