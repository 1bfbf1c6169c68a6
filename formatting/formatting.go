// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// checksummed textual encodings
//
// CB58 is base58 over payload plus a four byte SHA-256 checksum and is
// used for ids, node ids and private keys; checksummed hex carries the
// same trailer with a 0x prefix and is the encoding the node JSON-RPC
// API expects for raw transaction bytes
package formatting

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/mr-tron/base58"

	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/hash"
)

// EncodeCB58 - encode bytes with a trailing four byte checksum
func EncodeCB58(payload []byte) string {
	checksum := hash.Checksum(payload)
	buffer := make([]byte, 0, len(payload)+hash.ChecksumLength)
	buffer = append(buffer, payload...)
	buffer = append(buffer, checksum[:]...)
	return base58.Encode(buffer)
}

// DecodeCB58 - decode and verify a CB58 string, returning the payload
func DecodeCB58(s string) ([]byte, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return nil, fault.ErrInvalidBase58String
	}
	if hash.ChecksumLength > len(buffer) {
		return nil, fault.ErrChecksumMismatch
	}
	payload := buffer[:len(buffer)-hash.ChecksumLength]
	checksum := hash.Checksum(payload)
	if !bytes.Equal(checksum[:], buffer[len(buffer)-hash.ChecksumLength:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return payload, nil
}

// EncodeHex - 0x prefixed hex with a trailing four byte checksum
func EncodeHex(payload []byte) string {
	checksum := hash.Checksum(payload)
	buffer := make([]byte, 0, len(payload)+hash.ChecksumLength)
	buffer = append(buffer, payload...)
	buffer = append(buffer, checksum[:]...)
	return "0x" + hex.EncodeToString(buffer)
}

// DecodeHex - decode and verify a checksummed hex string
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, fault.ErrInvalidHexString
	}
	if hash.ChecksumLength > len(buffer) {
		return nil, fault.ErrChecksumMismatch
	}
	payload := buffer[:len(buffer)-hash.ChecksumLength]
	checksum := hash.Checksum(payload)
	if !bytes.Equal(checksum[:], buffer[len(buffer)-hash.ChecksumLength:]) {
		return nil, fault.ErrChecksumMismatch
	}
	return payload, nil
}
