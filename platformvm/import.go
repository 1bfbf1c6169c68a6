// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package platformvm

import (
	"github.com/firnlabs/avalanche/codec"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/packer"
	"github.com/firnlabs/avalanche/txs"
)

// ImportTx - consume UTXOs exported from another chain
type ImportTx struct {
	txs.BaseTx
	SourceChainId  ids.Id
	ImportedInputs []*txs.TransferableInput
	Metadata       txs.Metadata
}

func (t *ImportTx) pack() *packer.Packer {
	p := packer.New()
	p.PackShort(codec.Version)
	p.PackInt(codec.PChainImportTx)
	t.BaseTx.Pack(p)
	p.PackFixedBytes(t.SourceChainId.Bytes())
	p.PackInt(uint32(len(t.ImportedInputs)))
	for _, in := range t.ImportedInputs {
		in.Pack(p)
	}
	return p
}

// UnsignedBytes - the packed unsigned transaction
func (t *ImportTx) UnsignedBytes() ([]byte, error) {
	p := t.pack()
	if p.Errored() {
		return nil, p.Err
	}
	return p.TakeBytes(), nil
}

// Sign - signer groups cover base inputs then imported inputs
func (t *ImportTx) Sign(signers [][]txs.Signer) error {
	m, err := txs.Sign(t.pack(), signers)
	if nil != err {
		return err
	}
	t.Metadata = m
	return nil
}

// TxId - the id of the signed transaction
func (t *ImportTx) TxId() ids.Id {
	return t.Metadata.Id
}
