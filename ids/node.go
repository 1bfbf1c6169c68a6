// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ids

import (
	"bytes"
	"strings"

	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/formatting"
)

// number of bytes in a NodeId
const NodeIdLength = 20

// textual prefix on every node id
const NodeIdPrefix = "NodeID-"

// NodeId - a 20 byte staker identifier
type NodeId [NodeIdLength]byte

// NodeEmpty - the all zero node id
var NodeEmpty = NodeId{}

// NewNodeId - create a node id from exactly 20 bytes
func NewNodeId(buffer []byte) (NodeId, error) {
	if NodeIdLength != len(buffer) {
		return NodeEmpty, fault.ErrInvalidNodeIdLength
	}
	var id NodeId
	copy(id[:], buffer)
	return id, nil
}

// NodeIdFromString - decode a node id, the NodeID- prefix is optional
func NodeIdFromString(s string) (NodeId, error) {
	s = strings.TrimPrefix(s, NodeIdPrefix)
	buffer, err := formatting.DecodeCB58(s)
	if nil != err {
		return NodeEmpty, err
	}
	return NewNodeId(buffer)
}

// Bytes - the raw 20 bytes
func (id NodeId) Bytes() []byte {
	return id[:]
}

// String - prefixed CB58 encoding
func (id NodeId) String() string {
	return NodeIdPrefix + formatting.EncodeCB58(id[:])
}

// IsEmpty - true for the all zero node id
func (id NodeId) IsEmpty() bool {
	return NodeEmpty == id
}

// Compare - three way ordering over the raw bytes
func (id NodeId) Compare(other NodeId) int {
	return bytes.Compare(id[:], other[:])
}
