// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avm_test

import (
	"testing"

	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/key"
	"github.com/firnlabs/avalanche/txs"
)

// well known key used by all transaction fixtures
const testPrivateKey = "PrivateKey-24jUJ9vZexUM6expyMcT48LBx27k1m7xpraoV62oSQAHdziao5"

// an id from its leading bytes, zero padded to the full width
func paddedId(t *testing.T, prefix []byte) ids.Id {
	buffer := make([]byte, ids.IdLength)
	copy(buffer, prefix)
	id, err := ids.NewId(buffer)
	if nil != err {
		t.Fatalf("new id error: %s", err)
	}
	return id
}

func loadTestKey(t *testing.T) *key.PrivateKey {
	k, err := key.PrivateKeyFromString(testPrivateKey)
	if nil != err {
		t.Fatalf("load key error: %s", err)
	}
	return k
}

// two credential groups of two signatures each, the arrangement the
// fixtures were generated with
func twoSignerGroups(k *key.PrivateKey) [][]txs.Signer {
	return [][]txs.Signer{
		{k, k},
		{k, k},
	}
}
