// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txs

import (
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/packer"
)

// OutputOwners - who may spend an output and from when
type OutputOwners struct {
	Locktime  uint64
	Threshold uint32
	Addresses []ids.ShortId
}

// Pack - append locktime, threshold and the address list
func (o *OutputOwners) Pack(p *packer.Packer) {
	p.PackLong(o.Locktime)
	p.PackInt(o.Threshold)
	p.PackInt(uint32(len(o.Addresses)))
	for _, addr := range o.Addresses {
		p.PackFixedBytes(addr.Bytes())
	}
}

// Unpack - read locktime, threshold and the address list
func (o *OutputOwners) Unpack(p *packer.Packer) {
	o.Locktime = p.UnpackLong()
	o.Threshold = p.UnpackInt()
	count := p.UnpackInt()
	o.Addresses = nil
	for i := uint32(0); i < count && !p.Errored(); i += 1 {
		addr, err := ids.NewShortId(p.UnpackFixedBytes(ids.ShortIdLength))
		if nil != err {
			return
		}
		o.Addresses = append(o.Addresses, addr)
	}
}

// Sort - canonical ascending address order, duplicates removed
func (o *OutputOwners) Sort() {
	ids.SortShortIds(o.Addresses)
	unique := o.Addresses[:0]
	for i, addr := range o.Addresses {
		if 0 == i || addr != unique[len(unique)-1] {
			unique = append(unique, addr)
		}
	}
	o.Addresses = unique
}

// Verify - the threshold must be coverable by the address list
func (o *OutputOwners) Verify() error {
	if uint32(len(o.Addresses)) < o.Threshold {
		return fault.ErrInvalidThreshold
	}
	return nil
}

// Compare - locktime, then threshold, then the address list
func (o *OutputOwners) Compare(other *OutputOwners) int {
	if o.Locktime != other.Locktime {
		if o.Locktime < other.Locktime {
			return -1
		}
		return 1
	}
	if o.Threshold != other.Threshold {
		if o.Threshold < other.Threshold {
			return -1
		}
		return 1
	}
	return ids.CompareShortIdLists(o.Addresses, other.Addresses)
}
