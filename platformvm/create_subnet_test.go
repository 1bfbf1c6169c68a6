// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package platformvm_test

import (
	"testing"

	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/platformvm"
	"github.com/firnlabs/avalanche/txs"
)

func TestSignCreateSubnetTx(t *testing.T) {

	k := loadKey(t, "PrivateKey-ewoqjP7PxY4yr3iLTpLisriqt94hdyDFNgchSxGGztUrTXtNN")

	assetId := ids.Id{
		0x17, 0xcc, 0x8b, 0x15, 0x78, 0xba, 0x38, 0x35,
		0x44, 0xd1, 0x63, 0x95, 0x88, 0x22, 0xd8, 0xab,
		0xd3, 0x84, 0x9b, 0xb9, 0xdf, 0xab, 0xe3, 0x9f,
		0xcb, 0xc3, 0xe7, 0xee, 0x88, 0x11, 0xfe, 0x2f,
	}
	ownerAddr := ids.ShortId{
		0x3c, 0xb7, 0xd3, 0x84, 0x2e, 0x8c, 0xee, 0x6a,
		0x0e, 0xbd, 0x09, 0xf1, 0xfe, 0x88, 0x4f, 0x68,
		0x61, 0xe1, 0xb2, 0x9c,
	}

	tx := platformvm.CreateSubnetTx{
		BaseTx: txs.BaseTx{
			NetworkId: 1337,
			Outputs: []*txs.TransferableOutput{{
				AssetId: assetId,
				Out: &txs.TransferOutput{
					Amt: 0x2386f269cb1f00,
					Owners: txs.OutputOwners{
						Locktime:  0,
						Threshold: 1,
						Addresses: []ids.ShortId{ownerAddr},
					},
				},
			}},
			Inputs: []*txs.TransferableInput{{
				UtxoId: txs.UtxoId{
					OutputIndex: 1,
				},
				AssetId: assetId,
				In: &txs.TransferInput{
					Amt:        0x2386f26fc10000,
					SigIndices: []uint32{0},
				},
			}},
		},
		Owner: txs.OutputOwners{
			Locktime:  0,
			Threshold: 1,
			Addresses: []ids.ShortId{ownerAddr},
		},
	}

	err := tx.Sign(oneSignerGroup(k))
	if nil != err {
		t.Fatalf("sign error: %s", err)
	}

	expectedTxId := "24tZhrm8j8GCJRE9PomW8FaeqbgGS4UAQjJnqqn8pq5NwYSYV1"
	if expectedTxId != tx.TxId().String() {
		t.Fatalf("tx id: %s  expected: %s", tx.TxId(), expectedTxId)
	}
}
