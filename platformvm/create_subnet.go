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

// CreateSubnetTx - create a new subnet controlled by an owner set
type CreateSubnetTx struct {
	txs.BaseTx
	Owner    txs.OutputOwners
	Metadata txs.Metadata
}

func (t *CreateSubnetTx) pack() *packer.Packer {
	p := packer.New()
	p.PackShort(codec.Version)
	p.PackInt(codec.PChainCreateSubnetTx)
	t.BaseTx.Pack(p)
	packOwners(p, &t.Owner)
	return p
}

// UnsignedBytes - the packed unsigned transaction
func (t *CreateSubnetTx) UnsignedBytes() ([]byte, error) {
	p := t.pack()
	if p.Errored() {
		return nil, p.Err
	}
	return p.TakeBytes(), nil
}

// Sign - sign with one signer group per input and fill the metadata
func (t *CreateSubnetTx) Sign(signers [][]txs.Signer) error {
	m, err := txs.Sign(t.pack(), signers)
	if nil != err {
		return err
	}
	t.Metadata = m
	return nil
}

// TxId - the id of the signed transaction
//
// this id becomes the subnet id once the transaction is accepted
func (t *CreateSubnetTx) TxId() ids.Id {
	return t.Metadata.Id
}
