// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package key

import (
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/txs"
)

// Keychain - an ordered set of private keys indexed by short address
type Keychain struct {
	keys  []*PrivateKey
	index map[ids.ShortId]int
}

// NewKeychain - a keychain over the given keys
func NewKeychain(keys ...*PrivateKey) *Keychain {
	kc := &Keychain{
		index: map[ids.ShortId]int{},
	}
	for _, k := range keys {
		kc.Add(k)
	}
	return kc
}

// Add - include a key, later duplicates are ignored
func (kc *Keychain) Add(k *PrivateKey) {
	addr := k.PublicKey().ShortAddress()
	if _, ok := kc.index[addr]; ok {
		return
	}
	kc.index[addr] = len(kc.keys)
	kc.keys = append(kc.keys, k)
}

// Get - the key controlling a short address
func (kc *Keychain) Get(addr ids.ShortId) (*PrivateKey, bool) {
	i, ok := kc.index[addr]
	if !ok {
		return nil, false
	}
	return kc.keys[i], true
}

// Addresses - every short address held, in insertion order
func (kc *Keychain) Addresses() []ids.ShortId {
	addrs := make([]ids.ShortId, 0, len(kc.keys))
	for _, k := range kc.keys {
		addrs = append(addrs, k.PublicKey().ShortAddress())
	}
	return addrs
}

// Match - find keys satisfying an owner set at a point in time
//
// nothing matches before the owners' locktime; otherwise the owner
// addresses are scanned in order and the first held keys are taken
// until the threshold is reached, so the returned signature indices
// are ascending by construction
func (kc *Keychain) Match(owners *txs.OutputOwners, at uint64) ([]uint32, []*PrivateKey, bool) {
	if at < owners.Locktime {
		return nil, nil, false
	}
	sigIndices := make([]uint32, 0, owners.Threshold)
	keys := make([]*PrivateKey, 0, owners.Threshold)
	for i, addr := range owners.Addresses {
		if uint32(len(keys)) >= owners.Threshold {
			break
		}
		k, ok := kc.Get(addr)
		if !ok {
			continue
		}
		sigIndices = append(sigIndices, uint32(i))
		keys = append(keys, k)
	}
	if uint32(len(keys)) != owners.Threshold {
		return nil, nil, false
	}
	return sigIndices, keys, true
}

// Spend - build the input consuming a transfer output
func (kc *Keychain) Spend(out *txs.TransferOutput, at uint64) (*txs.TransferInput, []*PrivateKey, bool) {
	sigIndices, keys, ok := kc.Match(&out.Owners, at)
	if !ok {
		return nil, nil, false
	}
	return &txs.TransferInput{
		Amt:        out.Amt,
		SigIndices: sigIndices,
	}, keys, true
}

// Signers - adapt a key list to signer groups for transaction signing
func Signers(keys []*PrivateKey) []txs.Signer {
	signers := make([]txs.Signer, 0, len(keys))
	for _, k := range keys {
		signers = append(signers, k)
	}
	return signers
}
