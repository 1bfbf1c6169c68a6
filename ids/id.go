// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// fixed length identifiers
//
// an Id is a 32 byte value naming transactions, blockchains, assets
// and subnets; textual form is CB58.  Prefix derives namespaced child
// ids such as UTXO ids.
package ids

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/formatting"
	"github.com/firnlabs/avalanche/hash"
)

// number of bytes in an Id
const IdLength = 32

// Id - a general 32 byte identifier
type Id [IdLength]byte

// Empty - the all zero id
var Empty = Id{}

// NewId - create an id from at most 32 bytes
//
// shorter input is right padded with zero bytes
func NewId(buffer []byte) (Id, error) {
	if IdLength < len(buffer) {
		return Empty, fault.ErrInvalidIdLength
	}
	var id Id
	copy(id[:], buffer)
	return id, nil
}

// IdFromString - decode a CB58 encoded id
func IdFromString(s string) (Id, error) {
	buffer, err := formatting.DecodeCB58(s)
	if nil != err {
		return Empty, err
	}
	return NewId(buffer)
}

// Bytes - the raw 32 bytes
func (id Id) Bytes() []byte {
	return id[:]
}

// String - CB58 encoding
func (id Id) String() string {
	return formatting.EncodeCB58(id[:])
}

// IsEmpty - true for the all zero id
func (id Id) IsEmpty() bool {
	return Empty == id
}

// Prefix - derive a child id
//
// each prefix is packed as a big endian u64 ahead of the id bytes and
// the whole buffer hashed; UTXO ids are tx id prefixed by output index
func (id Id) Prefix(prefixes ...uint64) Id {
	buffer := make([]byte, 0, 8*len(prefixes)+IdLength)
	for _, p := range prefixes {
		buffer = binary.BigEndian.AppendUint64(buffer, p)
	}
	buffer = append(buffer, id[:]...)
	return Id(hash.Sha256(buffer))
}

// Bit - extract one bit, least significant bit first within each byte
func (id Id) Bit(i int) int {
	byteIndex := i / 8
	bitIndex := uint(i % 8)
	return int(id[byteIndex]>>bitIndex) & 1
}

// Compare - three way ordering over the raw bytes
func (id Id) Compare(other Id) int {
	return bytes.Compare(id[:], other[:])
}

// SortIds - sort a slice of ids ascending by raw bytes
func SortIds(ids []Id) {
	sort.Slice(ids, func(i, j int) bool {
		return -1 == ids[i].Compare(ids[j])
	})
}

// IsSortedAndUniqueIds - verify strict ascending order
func IsSortedAndUniqueIds(ids []Id) bool {
	for i := 1; i < len(ids); i += 1 {
		if -1 != ids[i-1].Compare(ids[i]) {
			return false
		}
	}
	return true
}
