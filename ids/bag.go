// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ids

import (
	"fmt"
	"strings"
)

// Bag - a multiset of ids recording poll results
//
// tracks the current mode and the set of ids whose count has reached
// the configured threshold; the zero value is an empty bag with a
// threshold of zero
type Bag struct {
	counts map[Id]int
	size   int

	threshold    int
	metThreshold map[Id]struct{}

	mode     Id
	modeFreq int
}

func (b *Bag) init() {
	if nil == b.counts {
		b.counts = map[Id]int{}
		b.metThreshold = map[Id]struct{}{}
	}
}

// SetThreshold - change the threshold and re-evaluate membership
func (b *Bag) SetThreshold(threshold int) {
	if b.threshold == threshold {
		return
	}
	b.init()
	b.threshold = threshold
	b.metThreshold = map[Id]struct{}{}
	for id, count := range b.counts {
		if count >= threshold {
			b.metThreshold[id] = struct{}{}
		}
	}
}

// Add - record one vote for each id
func (b *Bag) Add(ids ...Id) {
	for _, id := range ids {
		b.AddCount(id, 1)
	}
}

// AddCount - record count votes for an id
func (b *Bag) AddCount(id Id, count int) {
	if 0 >= count {
		return
	}
	b.init()
	total := b.counts[id] + count
	b.counts[id] = total
	b.size += count
	if total > b.modeFreq {
		b.mode = id
		b.modeFreq = total
	}
	if total >= b.threshold {
		b.metThreshold[id] = struct{}{}
	}
}

// Count - number of votes recorded for an id
func (b *Bag) Count(id Id) int {
	return b.counts[id]
}

// Len - total number of votes in the bag
func (b *Bag) Len() int {
	return b.size
}

// List - all ids with at least one vote, in arbitrary order
func (b *Bag) List() []Id {
	list := make([]Id, 0, len(b.counts))
	for id := range b.counts {
		list = append(list, id)
	}
	return list
}

// Mode - the most voted id and its count
//
// ties are broken by whichever id reached the count first
func (b *Bag) Mode() (Id, int) {
	return b.mode, b.modeFreq
}

// Threshold - the set of ids whose count reached the threshold
func (b *Bag) Threshold() map[Id]struct{} {
	b.init()
	return b.metThreshold
}

// Filter - keep only votes matching an id over a bit range
//
// returns a new bag, with the same threshold, of the ids whose bits
// [first, last) equal those of the given id
func (b *Bag) Filter(first int, last int, id Id) Bag {
	newBag := Bag{}
	newBag.SetThreshold(b.threshold)
	for vote, count := range b.counts {
		if EqualSubset(first, last, id, vote) {
			newBag.AddCount(vote, count)
		}
	}
	return newBag
}

// Split - partition the votes by one bit of the id
func (b *Bag) Split(index int) [2]Bag {
	splitVotes := [2]Bag{}
	for vote, count := range b.counts {
		bit := vote.Bit(index)
		splitVotes[bit].AddCount(vote, count)
	}
	return splitVotes
}

// Equals - true when both bags hold identical counts
func (b *Bag) Equals(other *Bag) bool {
	if b.size != other.size || len(b.counts) != len(other.counts) {
		return false
	}
	for id, count := range b.counts {
		if count != other.counts[id] {
			return false
		}
	}
	return true
}

// String - multi-line dump for diagnostics
func (b *Bag) String() string {
	sb := strings.Builder{}
	sb.WriteString(fmt.Sprintf("Bag: (Size = %d)", b.Len()))
	for id, count := range b.counts {
		sb.WriteString(fmt.Sprintf("\n    %s: %d", id, count))
	}
	return sb.String()
}
