// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ids

// total number of addressable bits in an Id
const NumBits = IdLength * 8

// EqualSubset - compare two ids over the bit positions [first, last)
//
// bit numbering follows Id.Bit: least significant bit first within
// each byte, byte zero first
func EqualSubset(first int, last int, a Id, b Id) bool {
	if 0 > first {
		first = 0
	}
	if NumBits < last {
		last = NumBits
	}
	for i := first; i < last; i += 1 {
		if a.Bit(i) != b.Bit(i) {
			return false
		}
	}
	return true
}
