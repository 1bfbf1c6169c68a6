// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package platformvm_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/firnlabs/avalanche/codec"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/platformvm"
	"github.com/firnlabs/avalanche/txs"
)

// the leading u16 codec version and u32 type id of an unsigned
// transaction
func wirePrefix(t *testing.T, unsigned []byte) (uint16, uint32) {
	if 6 > len(unsigned) {
		t.Fatalf("unsigned too short: %d bytes", len(unsigned))
	}
	return binary.BigEndian.Uint16(unsigned[0:2]), binary.BigEndian.Uint32(unsigned[2:6])
}

func TestCreateChainTxPack(t *testing.T) {

	k := loadKey(t, "PrivateKey-ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN")

	tx := platformvm.CreateChainTx{
		BaseTx:      txs.BaseTx{NetworkId: 12345},
		SubnetId:    ids.Id{0x01},
		ChainName:   "timestampvm",
		VmId:        ids.Id{0x02},
		FxIds:       []ids.Id{{0x03}},
		GenesisData: []byte{0xde, 0xad, 0xbe, 0xef},
		SubnetAuth:  platformvm.SubnetAuth{SigIndices: []uint32{0}},
	}

	unsigned, err := tx.UnsignedBytes()
	if nil != err {
		t.Fatalf("unsigned bytes error: %s", err)
	}

	version, typeId := wirePrefix(t, unsigned)
	if codec.Version != version {
		t.Errorf("codec version: %d  expected: %d", version, codec.Version)
	}
	if codec.PChainCreateChainTx != typeId {
		t.Errorf("type id: %d  expected: %d", typeId, codec.PChainCreateChainTx)
	}

	// the chain name is length prefixed with 16 bits
	nameField := append([]byte{0x00, 0x0b}, []byte("timestampvm")...)
	if !bytes.Contains(unsigned, nameField) {
		t.Error("chain name field missing from packed bytes")
	}

	if err := tx.Sign(oneSignerGroup(k)); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if tx.TxId().IsEmpty() {
		t.Fatal("empty tx id after signing")
	}
}

func TestAddSubnetValidatorTxPack(t *testing.T) {

	k := loadKey(t, "PrivateKey-ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN")

	tx := platformvm.AddSubnetValidatorTx{
		BaseTx: txs.BaseTx{NetworkId: 12345},
		Validator: platformvm.Validator{
			NodeId: ids.NodeId{0x01},
			Start:  1000,
			End:    2000,
			Weight: 5,
		},
		SubnetId:   ids.Id{0x02},
		SubnetAuth: platformvm.SubnetAuth{SigIndices: []uint32{0, 1}},
	}

	unsigned, err := tx.UnsignedBytes()
	if nil != err {
		t.Fatalf("unsigned bytes error: %s", err)
	}

	version, typeId := wirePrefix(t, unsigned)
	if codec.Version != version {
		t.Errorf("codec version: %d  expected: %d", version, codec.Version)
	}
	if codec.PChainAddSubnetValidatorTx != typeId {
		t.Errorf("type id: %d  expected: %d", typeId, codec.PChainAddSubnetValidatorTx)
	}

	// the auth trails the subnet id: input type id 10, two indices
	authField := []byte{
		0x00, 0x00, 0x00, 0x0a,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x01,
	}
	if !bytes.HasSuffix(unsigned, authField) {
		t.Error("subnet auth not at the end of the packed bytes")
	}

	if err := tx.Sign(oneSignerGroup(k)); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if tx.TxId().IsEmpty() {
		t.Fatal("empty tx id after signing")
	}
}

func TestImportExportTxPack(t *testing.T) {

	k := loadKey(t, "PrivateKey-ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN")

	importTx := platformvm.ImportTx{
		BaseTx:        txs.BaseTx{NetworkId: 12345},
		SourceChainId: ids.Id{0x01},
		ImportedInputs: []*txs.TransferableInput{{
			UtxoId:  txs.UtxoId{TxId: ids.Id{0x02}},
			AssetId: ids.Id{0x03},
			In:      &txs.TransferInput{Amt: 100, SigIndices: []uint32{0}},
		}},
	}

	unsigned, err := importTx.UnsignedBytes()
	if nil != err {
		t.Fatalf("unsigned bytes error: %s", err)
	}
	if _, typeId := wirePrefix(t, unsigned); codec.PChainImportTx != typeId {
		t.Errorf("type id: %d  expected: %d", typeId, codec.PChainImportTx)
	}
	if err := importTx.Sign(oneSignerGroup(k)); nil != err {
		t.Fatalf("sign error: %s", err)
	}

	exportTx := platformvm.ExportTx{
		BaseTx:             txs.BaseTx{NetworkId: 12345},
		DestinationChainId: ids.Id{0x01},
		ExportedOutputs: []*txs.TransferableOutput{{
			AssetId: ids.Id{0x03},
			Out: &txs.TransferOutput{
				Amt: 90,
				Owners: txs.OutputOwners{
					Threshold: 1,
					Addresses: []ids.ShortId{k.PublicKey().ShortAddress()},
				},
			},
		}},
	}

	unsigned, err = exportTx.UnsignedBytes()
	if nil != err {
		t.Fatalf("unsigned bytes error: %s", err)
	}
	if _, typeId := wirePrefix(t, unsigned); codec.PChainExportTx != typeId {
		t.Errorf("type id: %d  expected: %d", typeId, codec.PChainExportTx)
	}
	if err := exportTx.Sign(oneSignerGroup(k)); nil != err {
		t.Fatalf("sign error: %s", err)
	}
	if importTx.TxId() == exportTx.TxId() {
		t.Fatal("distinct transactions share a tx id")
	}
}
