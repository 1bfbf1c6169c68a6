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

// AddSubnetValidatorTx - register an existing validator on a subnet
type AddSubnetValidatorTx struct {
	txs.BaseTx
	Validator  Validator
	SubnetId   ids.Id
	SubnetAuth SubnetAuth
	Metadata   txs.Metadata
}

func (t *AddSubnetValidatorTx) pack() *packer.Packer {
	p := packer.New()
	p.PackShort(codec.Version)
	p.PackInt(codec.PChainAddSubnetValidatorTx)
	t.BaseTx.Pack(p)
	t.Validator.Pack(p)
	p.PackFixedBytes(t.SubnetId.Bytes())
	t.SubnetAuth.Pack(p)
	return p
}

// UnsignedBytes - the packed unsigned transaction
func (t *AddSubnetValidatorTx) UnsignedBytes() ([]byte, error) {
	p := t.pack()
	if p.Errored() {
		return nil, p.Err
	}
	return p.TakeBytes(), nil
}

// Sign - signer groups cover the inputs then the subnet auth
func (t *AddSubnetValidatorTx) Sign(signers [][]txs.Signer) error {
	m, err := txs.Sign(t.pack(), signers)
	if nil != err {
		return err
	}
	t.Metadata = m
	return nil
}

// TxId - the id of the signed transaction
func (t *AddSubnetValidatorTx) TxId() ids.Id {
	return t.Metadata.Id
}
