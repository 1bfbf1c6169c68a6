// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ids

import (
	"bytes"
	"sort"

	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/formatting"
)

// number of bytes in a ShortId
const ShortIdLength = 20

// ShortId - a 20 byte address identifier
type ShortId [ShortIdLength]byte

// ShortEmpty - the all zero short id
var ShortEmpty = ShortId{}

// NewShortId - create a short id from exactly 20 bytes
func NewShortId(buffer []byte) (ShortId, error) {
	if ShortIdLength != len(buffer) {
		return ShortEmpty, fault.ErrInvalidShortIdLength
	}
	var id ShortId
	copy(id[:], buffer)
	return id, nil
}

// ShortIdFromString - decode a CB58 encoded short id
func ShortIdFromString(s string) (ShortId, error) {
	buffer, err := formatting.DecodeCB58(s)
	if nil != err {
		return ShortEmpty, err
	}
	return NewShortId(buffer)
}

// Bytes - the raw 20 bytes
func (id ShortId) Bytes() []byte {
	return id[:]
}

// String - CB58 encoding
func (id ShortId) String() string {
	return formatting.EncodeCB58(id[:])
}

// IsEmpty - true for the all zero short id
func (id ShortId) IsEmpty() bool {
	return ShortEmpty == id
}

// Compare - three way ordering over the raw bytes
func (id ShortId) Compare(other ShortId) int {
	return bytes.Compare(id[:], other[:])
}

// SortShortIds - sort a slice of short ids ascending by raw bytes
func SortShortIds(ids []ShortId) {
	sort.Slice(ids, func(i, j int) bool {
		return -1 == ids[i].Compare(ids[j])
	})
}

// CompareShortIdLists - length first, then element wise
func CompareShortIdLists(a []ShortId, b []ShortId) int {
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if c := a[i].Compare(b[i]); 0 != c {
			return c
		}
	}
	return 0
}
