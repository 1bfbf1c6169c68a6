// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package txs

import (
	"github.com/firnlabs/avalanche/codec"
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/packer"
)

// UtxoId - reference to one output of an accepted transaction
type UtxoId struct {
	TxId        ids.Id
	OutputIndex uint32
	Symbol      bool
}

// InputId - the derived id naming this UTXO
func (u *UtxoId) InputId() ids.Id {
	return u.TxId.Prefix(uint64(u.OutputIndex))
}

// Utxo - an unspent output as returned by the node
type Utxo struct {
	UtxoId  UtxoId
	AssetId ids.Id
	Out     TransferableOut
}

// Pack - codec version, UTXO reference, asset id and typed output
func (u *Utxo) Pack(p *packer.Packer) {
	p.PackShort(codec.Version)
	p.PackFixedBytes(u.UtxoId.TxId.Bytes())
	p.PackInt(u.UtxoId.OutputIndex)
	p.PackFixedBytes(u.AssetId.Bytes())
	p.PackInt(u.Out.TypeId())
	u.Out.Pack(p)
}

// UnpackUtxo - parse one UTXO from its packed form
func UnpackUtxo(buffer []byte) (*Utxo, error) {
	p := packer.FromBytes(buffer)
	version := p.UnpackShort()
	if p.Errored() {
		return nil, p.Err
	}
	if codec.Version != version {
		return nil, fault.ErrUnexpectedCodecVersion
	}
	u := &Utxo{}
	txId, err := ids.NewId(p.UnpackFixedBytes(ids.IdLength))
	if nil != err {
		return nil, err
	}
	u.UtxoId.TxId = txId
	u.UtxoId.OutputIndex = p.UnpackInt()
	assetId, err := ids.NewId(p.UnpackFixedBytes(ids.IdLength))
	if nil != err {
		return nil, err
	}
	u.AssetId = assetId
	u.Out = UnpackTransferableOut(p)
	if p.Errored() {
		return nil, p.Err
	}
	return u, nil
}
