// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txs

import (
	"bytes"
	"sort"

	"github.com/firnlabs/avalanche/codec"
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/packer"
)

// TransferableOut - any output carried by a transferable output
type TransferableOut interface {
	TypeId() uint32
	Amount() uint64
	Pack(p *packer.Packer)
}

// TransferableIn - any input carried by a transferable input
type TransferableIn interface {
	TypeId() uint32
	Amount() uint64
	Pack(p *packer.Packer)
}

// TypeId - registered type of a plain transfer output
func (o *TransferOutput) TypeId() uint32 {
	return codec.XChainSecp256k1TransferOut
}

// Amount - value carried by the output
func (o *TransferOutput) Amount() uint64 {
	return o.Amt
}

// TypeId - registered type of a stake locked output
func (o *StakeableLockOut) TypeId() uint32 {
	return codec.PChainStakeableLockOut
}

// Amount - value carried by the inner output
func (o *StakeableLockOut) Amount() uint64 {
	return o.Out.Amt
}

// TypeId - registered type of a plain transfer input
func (i *TransferInput) TypeId() uint32 {
	return codec.XChainSecp256k1TransferInput
}

// Amount - value consumed by the input
func (i *TransferInput) Amount() uint64 {
	return i.Amt
}

// TypeId - registered type of a stake locked input
func (i *StakeableLockIn) TypeId() uint32 {
	return codec.PChainStakeableLockIn
}

// Amount - value consumed by the inner input
func (i *StakeableLockIn) Amount() uint64 {
	return i.In.Amt
}

// TransferableOutput - an asset id and a typed output
type TransferableOutput struct {
	AssetId ids.Id
	Out     TransferableOut
}

// Pack - append asset id, output type id and the output body
func (o *TransferableOutput) Pack(p *packer.Packer) {
	p.PackFixedBytes(o.AssetId.Bytes())
	p.PackInt(o.Out.TypeId())
	o.Out.Pack(p)
}

// UnpackTransferableOut - read a typed output body
func UnpackTransferableOut(p *packer.Packer) TransferableOut {
	switch typeId := p.UnpackInt(); typeId {
	case codec.XChainSecp256k1TransferOut:
		out := &TransferOutput{}
		out.Unpack(p)
		return out
	case codec.PChainStakeableLockOut:
		out := &StakeableLockOut{}
		out.Unpack(p)
		return out
	default:
		p.SetError(fault.ErrUnexpectedTypeId)
		return nil
	}
}

// TransferableInput - a UTXO reference, an asset id and a typed input
type TransferableInput struct {
	UtxoId  UtxoId
	AssetId ids.Id
	In      TransferableIn
}

// Pack - append UTXO reference, asset id, input type id and body
func (i *TransferableInput) Pack(p *packer.Packer) {
	p.PackFixedBytes(i.UtxoId.TxId.Bytes())
	p.PackInt(i.UtxoId.OutputIndex)
	p.PackFixedBytes(i.AssetId.Bytes())
	p.PackInt(i.In.TypeId())
	i.In.Pack(p)
}

// packed bytes of a single output, used for canonical ordering
func packedOutput(o *TransferableOutput) []byte {
	p := packer.New()
	o.Pack(p)
	return p.TakeBytes()
}

// SortTransferableOutputs - canonical order over the packed bytes
//
// the packed form leads with the asset id, then the type id, then the
// big endian body fields, so a byte compare realises the structural
// ordering the wire format requires
func SortTransferableOutputs(outs []*TransferableOutput) {
	sort.SliceStable(outs, func(i, j int) bool {
		return -1 == bytes.Compare(packedOutput(outs[i]), packedOutput(outs[j]))
	})
}

// IsSortedTransferableOutputs - verify canonical output order
func IsSortedTransferableOutputs(outs []*TransferableOutput) bool {
	for i := 1; i < len(outs); i += 1 {
		if 1 == bytes.Compare(packedOutput(outs[i-1]), packedOutput(outs[i])) {
			return false
		}
	}
	return true
}

// Compare - UTXO reference ordering: tx id, then output index
func (i *TransferableInput) Compare(other *TransferableInput) int {
	if c := i.UtxoId.TxId.Compare(other.UtxoId.TxId); 0 != c {
		return c
	}
	if i.UtxoId.OutputIndex != other.UtxoId.OutputIndex {
		if i.UtxoId.OutputIndex < other.UtxoId.OutputIndex {
			return -1
		}
		return 1
	}
	return 0
}

// SortTransferableInputs - ascending by UTXO reference
func SortTransferableInputs(ins []*TransferableInput) {
	sort.SliceStable(ins, func(i, j int) bool {
		return -1 == ins[i].Compare(ins[j])
	})
}

// SortTransferableInputsWithSigners - keep signer groups aligned
//
// signers[i] holds the keys for ins[i]; both slices are permuted
// together so the credential order still matches the input order
func SortTransferableInputsWithSigners(ins []*TransferableInput, signers [][]Signer) {
	sort.Stable(&inputsAndSigners{ins: ins, signers: signers})
}

type inputsAndSigners struct {
	ins     []*TransferableInput
	signers [][]Signer
}

func (s *inputsAndSigners) Len() int {
	return len(s.ins)
}

func (s *inputsAndSigners) Less(i, j int) bool {
	return -1 == s.ins[i].Compare(s.ins[j])
}

func (s *inputsAndSigners) Swap(i, j int) {
	s.ins[i], s.ins[j] = s.ins[j], s.ins[i]
	if len(s.signers) == len(s.ins) {
		s.signers[i], s.signers[j] = s.signers[j], s.signers[i]
	}
}
