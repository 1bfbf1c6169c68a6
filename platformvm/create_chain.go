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

// CreateChainTx - launch a new blockchain on an existing subnet
type CreateChainTx struct {
	txs.BaseTx
	SubnetId    ids.Id
	ChainName   string
	VmId        ids.Id
	FxIds       []ids.Id
	GenesisData []byte
	SubnetAuth  SubnetAuth
	Metadata    txs.Metadata
}

func (t *CreateChainTx) pack() *packer.Packer {
	p := packer.New()
	p.PackShort(codec.Version)
	p.PackInt(codec.PChainCreateChainTx)
	t.BaseTx.Pack(p)
	p.PackFixedBytes(t.SubnetId.Bytes())
	p.PackStr(t.ChainName)
	p.PackFixedBytes(t.VmId.Bytes())
	p.PackInt(uint32(len(t.FxIds)))
	for _, fx := range t.FxIds {
		p.PackFixedBytes(fx.Bytes())
	}
	p.PackBytes(t.GenesisData)
	t.SubnetAuth.Pack(p)
	return p
}

// UnsignedBytes - the packed unsigned transaction
func (t *CreateChainTx) UnsignedBytes() ([]byte, error) {
	p := t.pack()
	if p.Errored() {
		return nil, p.Err
	}
	return p.TakeBytes(), nil
}

// Sign - signer groups cover the inputs then the subnet auth
func (t *CreateChainTx) Sign(signers [][]txs.Signer) error {
	m, err := txs.Sign(t.pack(), signers)
	if nil != err {
		return err
	}
	t.Metadata = m
	return nil
}

// TxId - the id of the signed transaction
//
// this id becomes the blockchain id once the transaction is accepted
func (t *CreateChainTx) TxId() ids.Id {
	return t.Metadata.Id
}
