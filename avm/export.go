// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avm

import (
	"github.com/firnlabs/avalanche/codec"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/packer"
	"github.com/firnlabs/avalanche/txs"
)

// ExportTx - move value to another chain's shared memory
type ExportTx struct {
	txs.BaseTx
	DestinationChainId ids.Id
	ExportedOutputs    []*txs.TransferableOutput
	Metadata           txs.Metadata
}

func (t *ExportTx) pack() *packer.Packer {
	p := packer.New()
	p.PackShort(codec.Version)
	p.PackInt(codec.XChainExportTx)
	t.BaseTx.Pack(p)
	p.PackFixedBytes(t.DestinationChainId.Bytes())
	p.PackInt(uint32(len(t.ExportedOutputs)))
	for _, out := range t.ExportedOutputs {
		out.Pack(p)
	}
	return p
}

// UnsignedBytes - the packed unsigned transaction
func (t *ExportTx) UnsignedBytes() ([]byte, error) {
	p := t.pack()
	if p.Errored() {
		return nil, p.Err
	}
	return p.TakeBytes(), nil
}

// Sign - sign with one signer group per input and fill the metadata
func (t *ExportTx) Sign(signers [][]txs.Signer) error {
	m, err := txs.Sign(t.pack(), signers)
	if nil != err {
		return err
	}
	t.Metadata = m
	return nil
}

// TxId - the id of the signed transaction
func (t *ExportTx) TxId() ids.Id {
	return t.Metadata.Id
}
