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

// AddValidatorTx - register a primary network validator
type AddValidatorTx struct {
	txs.BaseTx
	Validator    Validator
	StakeOutputs []*txs.TransferableOutput
	RewardsOwner txs.OutputOwners
	Shares       uint32
	Metadata     txs.Metadata
}

func (t *AddValidatorTx) pack() *packer.Packer {
	p := packer.New()
	p.PackShort(codec.Version)
	p.PackInt(codec.PChainAddValidatorTx)
	t.BaseTx.Pack(p)
	t.Validator.Pack(p)
	txs.SortTransferableOutputs(t.StakeOutputs)
	p.PackInt(uint32(len(t.StakeOutputs)))
	for _, out := range t.StakeOutputs {
		out.Pack(p)
	}
	packOwners(p, &t.RewardsOwner)
	p.PackInt(t.Shares)
	return p
}

// UnsignedBytes - the packed unsigned transaction
func (t *AddValidatorTx) UnsignedBytes() ([]byte, error) {
	p := t.pack()
	if p.Errored() {
		return nil, p.Err
	}
	return p.TakeBytes(), nil
}

// Sign - sign with one signer group per input and fill the metadata
func (t *AddValidatorTx) Sign(signers [][]txs.Signer) error {
	m, err := txs.Sign(t.pack(), signers)
	if nil != err {
		return err
	}
	t.Metadata = m
	return nil
}

// TxId - the id of the signed transaction
func (t *AddValidatorTx) TxId() ids.Id {
	return t.Metadata.Id
}
