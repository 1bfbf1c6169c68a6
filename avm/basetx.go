// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// X-chain transactions
//
// each transaction packs as codec version, registered type id, the
// common base fields and a type specific trailer, then signs per the
// shared protocol
package avm

import (
	"github.com/firnlabs/avalanche/codec"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/packer"
	"github.com/firnlabs/avalanche/txs"
)

// BaseTx - a plain value transfer on the X chain
type BaseTx struct {
	txs.BaseTx
	Metadata txs.Metadata
}

// pack the unsigned transaction into a fresh packer
func (t *BaseTx) pack() *packer.Packer {
	p := packer.New()
	p.PackShort(codec.Version)
	p.PackInt(codec.XChainBaseTx)
	t.BaseTx.Pack(p)
	return p
}

// UnsignedBytes - the packed unsigned transaction
func (t *BaseTx) UnsignedBytes() ([]byte, error) {
	p := t.pack()
	if p.Errored() {
		return nil, p.Err
	}
	return p.TakeBytes(), nil
}

// Sign - sign with one signer group per input and fill the metadata
func (t *BaseTx) Sign(signers [][]txs.Signer) error {
	m, err := txs.Sign(t.pack(), signers)
	if nil != err {
		return err
	}
	t.Metadata = m
	return nil
}

// TxId - the id of the signed transaction
func (t *BaseTx) TxId() ids.Id {
	return t.Metadata.Id
}
