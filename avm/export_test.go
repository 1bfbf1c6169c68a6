// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avm_test

import (
	"testing"

	"github.com/firnlabs/avalanche/avm"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/txs"
)

// an export whose exported output list is empty is still a valid
// transaction, everything is consumed from the base inputs
func TestSignExportTx(t *testing.T) {

	k := loadTestKey(t)

	tx := avm.ExportTx{
		BaseTx: txs.BaseTx{
			NetworkId: 2,
			BlockchainId: ids.Id{
				0xff, 0xff, 0xff, 0xff, 0xee, 0xee, 0xee, 0xee,
				0xdd, 0xdd, 0xdd, 0xdd, 0xcc, 0xcc, 0xcc, 0xcc,
				0xbb, 0xbb, 0xbb, 0xbb, 0xaa, 0xaa, 0xaa, 0xaa,
				0x99, 0x99, 0x99, 0x99, 0x88, 0x88, 0x88, 0x88,
			},
			Inputs: []*txs.TransferableInput{{
				UtxoId: txs.UtxoId{
					TxId: ids.Id{
						0x0f, 0x2f, 0x4f, 0x6f, 0x8e, 0xae, 0xce, 0xee,
						0x0d, 0x2d, 0x4d, 0x6d, 0x8c, 0xac, 0xcc, 0xec,
						0x0b, 0x2b, 0x4b, 0x6b, 0x8a, 0xaa, 0xca, 0xea,
						0x09, 0x29, 0x49, 0x69, 0x88, 0xa8, 0xc8, 0xe8,
					},
					OutputIndex: 0,
				},
				AssetId: ids.Id{
					0x1f, 0x3f, 0x5f, 0x7f, 0x9e, 0xbe, 0xde, 0xfe,
					0x1d, 0x3d, 0x5d, 0x7d, 0x9c, 0xbc, 0xdc, 0xfc,
					0x1b, 0x3b, 0x5b, 0x7b, 0x9a, 0xba, 0xda, 0xfa,
					0x19, 0x39, 0x59, 0x79, 0x98, 0xb8, 0xd8, 0xf8,
				},
				In: &txs.TransferInput{
					Amt:        1000,
					SigIndices: []uint32{0},
				},
			}},
			Memo: []byte{0x00, 0x01, 0x02, 0x03},
		},
		DestinationChainId: ids.Id{
			0x1f, 0x8f, 0x9f, 0x0f, 0x1e, 0x8e, 0x9e, 0x0e,
			0x2d, 0x7d, 0xad, 0xfd, 0x2c, 0x7c, 0xac, 0xfc,
			0x3b, 0x6b, 0xbb, 0xeb, 0x3a, 0x6a, 0xba, 0xea,
			0x49, 0x59, 0xc9, 0xd9, 0x48, 0x58, 0xc8, 0xd8,
		},
	}

	err := tx.Sign(twoSignerGroups(k))
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}

	expectedTxId := "2oG52e7Cb7XF1yUzv3pRFndAypgbpswWRcSAKD5SH5VgaiTm5D"
	if expectedTxId != tx.TxId().String() {
		t.Fatalf("tx id: %s  expected: %s", tx.TxId(), expectedTxId)
	}
}
