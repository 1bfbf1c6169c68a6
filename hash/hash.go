// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// digest helpers
//
// all identifiers and transaction ids are derived from SHA-256,
// addresses from RIPEMD-160 over SHA-256, and ethereum-style
// addresses from legacy Keccak-256
package hash

import (
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"
)

// number of bytes in a checksum
const ChecksumLength = 4

// Sha256 - SHA-256 over the concatenation of the arguments
func Sha256(data ...[]byte) [sha256.Size]byte {
	h := sha256.New()
	for _, d := range data {
		h.Write(d)
	}
	var digest [sha256.Size]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// Sha256Ripemd160 - RIPEMD-160 over SHA-256, the short address digest
func Sha256Ripemd160(data []byte) [ripemd160.Size]byte {
	s := sha256.Sum256(data)
	r := ripemd160.New()
	r.Write(s[:])
	var digest [ripemd160.Size]byte
	copy(digest[:], r.Sum(nil))
	return digest
}

// Keccak256 - legacy Keccak-256 over the concatenation of the arguments
func Keccak256(data ...[]byte) [32]byte {
	h := sha3.NewLegacyKeccak256()
	for _, d := range data {
		h.Write(d)
	}
	var digest [32]byte
	copy(digest[:], h.Sum(nil))
	return digest
}

// Checksum - trailing four bytes of SHA-256, appended to textual encodings
func Checksum(data []byte) [ChecksumLength]byte {
	s := sha256.Sum256(data)
	var c [ChecksumLength]byte
	copy(c[:], s[len(s)-ChecksumLength:])
	return c
}
