// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txs

import (
	"sort"

	"github.com/firnlabs/avalanche/packer"
)

// TransferOutput - an amount owned by a set of addresses
type TransferOutput struct {
	Amt    uint64
	Owners OutputOwners
}

// Pack - append amount then the owners
func (o *TransferOutput) Pack(p *packer.Packer) {
	p.PackLong(o.Amt)
	o.Owners.Pack(p)
}

// Unpack - read amount then the owners
func (o *TransferOutput) Unpack(p *packer.Packer) {
	o.Amt = p.UnpackLong()
	o.Owners.Unpack(p)
}

// Compare - amount, then the owners
func (o *TransferOutput) Compare(other *TransferOutput) int {
	if o.Amt != other.Amt {
		if o.Amt < other.Amt {
			return -1
		}
		return 1
	}
	return o.Owners.Compare(&other.Owners)
}

// TransferInput - an amount consumed from a referenced output
type TransferInput struct {
	Amt        uint64
	SigIndices []uint32
}

// Pack - append amount then the signature indices
func (i *TransferInput) Pack(p *packer.Packer) {
	p.PackLong(i.Amt)
	p.PackInt(uint32(len(i.SigIndices)))
	for _, ix := range i.SigIndices {
		p.PackInt(ix)
	}
}

// Unpack - read amount then the signature indices
func (i *TransferInput) Unpack(p *packer.Packer) {
	i.Amt = p.UnpackLong()
	count := p.UnpackInt()
	i.SigIndices = nil
	for n := uint32(0); n < count && !p.Errored(); n += 1 {
		i.SigIndices = append(i.SigIndices, p.UnpackInt())
	}
}

// SortSigIndices - ascending order with duplicates removed, required
// by the wire format
func (i *TransferInput) SortSigIndices() {
	sort.Slice(i.SigIndices, func(a, b int) bool {
		return i.SigIndices[a] < i.SigIndices[b]
	})
	unique := i.SigIndices[:0]
	for n, index := range i.SigIndices {
		if 0 == n || index != unique[len(unique)-1] {
			unique = append(unique, index)
		}
	}
	i.SigIndices = unique
}

// CompareSigIndices - length first, then element wise
func CompareSigIndices(a []uint32, b []uint32) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}
