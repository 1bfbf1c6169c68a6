// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ids

import (
	"fmt"
	"math/bits"
)

// Set64 - a set of small integers in the range 0 to 63
//
// used to record which poll responses voted for an id without
// allocating; the zero value is the empty set
type Set64 uint64

// Add - include a value in the set
func (s *Set64) Add(i uint) {
	*s |= 1 << i
}

// Union - include all values of another set
func (s *Set64) Union(other Set64) {
	*s |= other
}

// Intersection - drop values not present in another set
func (s *Set64) Intersection(other Set64) {
	*s &= other
}

// Difference - drop all values present in another set
func (s *Set64) Difference(other Set64) {
	*s &^= other
}

// Remove - drop a value from the set
func (s *Set64) Remove(i uint) {
	*s &^= 1 << i
}

// Clear - empty the set
func (s *Set64) Clear() {
	*s = 0
}

// Contains - test membership
func (s Set64) Contains(i uint) bool {
	return 0 != s&(1<<i)
}

// Len - number of values in the set
func (s Set64) Len() int {
	return bits.OnesCount64(uint64(s))
}

// String - hexadecimal representation
func (s Set64) String() string {
	return fmt.Sprintf("%016x", uint64(s))
}
