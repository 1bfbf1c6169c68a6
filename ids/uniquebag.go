// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ids

import (
	"fmt"
	"strings"
)

// UniqueBag - votes per id keyed by responder index
//
// each id maps to the set of responders, numbered 0 to 63, that voted
// for it; a responder counted once per id no matter how often added
type UniqueBag map[Id]Set64

// UnionSet - merge a responder set into an id's entry
func (b *UniqueBag) UnionSet(id Id, set Set64) {
	if nil == *b {
		*b = UniqueBag{}
	}
	existing := (*b)[id]
	existing.Union(set)
	(*b)[id] = existing
}

// DifferenceSet - remove a responder set from an id's entry
func (b *UniqueBag) DifferenceSet(id Id, set Set64) {
	if nil == *b {
		return
	}
	existing := (*b)[id]
	existing.Difference(set)
	(*b)[id] = existing
}

// Add - record one responder voting for each of the ids
func (b *UniqueBag) Add(setId uint, ids ...Id) {
	votes := Set64(0)
	votes.Add(setId)
	for _, id := range ids {
		b.UnionSet(id, votes)
	}
}

// Difference - remove another bag's responders id by id
func (b *UniqueBag) Difference(diff *UniqueBag) {
	if nil == *b || nil == *diff {
		return
	}
	for id, set := range *diff {
		b.DifferenceSet(id, set)
	}
}

// GetSet - the responder set recorded for an id
func (b *UniqueBag) GetSet(id Id) Set64 {
	if nil == *b {
		return 0
	}
	return (*b)[id]
}

// RemoveSet - drop an id and its responders
func (b *UniqueBag) RemoveSet(id Id) {
	delete(*b, id)
}

// List - all ids present, in arbitrary order
func (b *UniqueBag) List() []Id {
	list := make([]Id, 0, len(*b))
	for id := range *b {
		list = append(list, id)
	}
	return list
}

// Bag - flatten to counted votes with the given threshold
func (b *UniqueBag) Bag(alpha int) Bag {
	bag := Bag{}
	bag.SetThreshold(alpha)
	for id, set := range *b {
		bag.AddCount(id, set.Len())
	}
	return bag
}

// String - multi-line dump for diagnostics
func (b *UniqueBag) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("UniqueBag: (Size = %d)", len(*b)))
	for id, set := range *b {
		sb.WriteString(fmt.Sprintf("\n    %s: %s", id, set))
	}
	return sb.String()
}
