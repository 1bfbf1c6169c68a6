// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// shared transaction structures
//
// the transferable input and output types, their canonical orderings
// and the two phase signing protocol common to the X and P chains
package txs

// Signer - anything able to sign a 32 byte digest
//
// the signature is 65 bytes: r, s, then the recovery code
type Signer interface {
	SignDigest(digest []byte) ([]byte, error)
}
