// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/firnlabs/avalanche/formatting"
	"github.com/firnlabs/avalanche/hash"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/key"
	"github.com/firnlabs/avalanche/packer"
	"github.com/firnlabs/avalanche/platformvm"
	"github.com/firnlabs/avalanche/rpccalls"
	"github.com/firnlabs/avalanche/txs"
	"github.com/firnlabs/avalanche/wallet"
)

// a stub node for the P chain flows
type pStubNode struct {
	utxos       []*txs.Utxo
	issuedBytes []byte
}

func (n *pStubNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	request := struct {
		Id     uint64          `json:"id"`
		Method string          `json:"method"`
		Params json.RawMessage `json:"params"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&request); nil != err {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := ""
	switch request.Method {
	case "info.getNetworkID":
		result = `{"networkID":"12345"}`

	case "info.getBlockchainID":
		result = fmt.Sprintf(`{"blockchainID":%q}`, ids.Id{0x50}.String())

	case "platform.getUTXOs":
		encoded := make([]string, 0, len(n.utxos))
		for _, utxo := range n.utxos {
			p := packer.New()
			utxo.Pack(p)
			encoded = append(encoded, fmt.Sprintf("%q", formatting.EncodeHex(p.TakeBytes())))
		}
		result = fmt.Sprintf(`{"numFetched":"%d","utxos":[%s],"endIndex":{"address":"","utxo":""}}`,
			len(n.utxos), joinStrings(encoded))

	case "platform.issueTx":
		params := struct {
			Tx string `json:"tx"`
		}{}
		if err := json.Unmarshal(request.Params, &params); nil != err {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		buffer, err := formatting.DecodeHex(params.Tx)
		if nil != err {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		n.issuedBytes = buffer
		txId := ids.Id(hash.Sha256(buffer))
		result = fmt.Sprintf(`{"txID":%q}`, txId.String())

	case "platform.getTxStatus":
		result = `{"status":"Committed"}`

	default:
		fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"error":{"code":-32601,"message":"unknown"}}`,
			request.Id)
		return
	}
	fmt.Fprintf(w, `{"jsonrpc":"2.0","id":%d,"result":%s}`, request.Id, result)
}

func pTestWallet(t *testing.T, node *pStubNode) (*wallet.Wallet, *key.PrivateKey) {
	k, err := key.Generate()
	if nil != err {
		t.Fatalf("generate error: %s", err)
	}

	server := httptest.NewServer(node)
	t.Cleanup(server.Close)

	client := rpccalls.NewClient(server.URL, nil)
	w, err := wallet.New(context.Background(), key.NewKeychain(k), client, nil)
	if nil != err {
		t.Fatalf("new wallet error: %s", err)
	}
	return w, k
}

// registering a validator on a subnet burns only the fee and carries
// the subnet auth signed by the owner key
func TestAddSubnetValidator(t *testing.T) {

	node := &pStubNode{}
	w, k := pTestWallet(t, node)
	node.utxos = []*txs.Utxo{unlockedUtxo(k, 0, 10_000)}

	subnetId := ids.Id{0x5b}
	owners := txs.OutputOwners{
		Threshold: 1,
		Addresses: []ids.ShortId{k.PublicKey().ShortAddress()},
	}
	validator := platformvm.Validator{
		NodeId: ids.NodeId{0x9c},
		Start:  100,
		End:    200,
		Weight: 7,
	}

	txId, err := w.AddSubnetValidator(context.Background(), testAssetId(),
		validator, subnetId, &owners, 1_000, 0)
	if nil != err {
		t.Fatalf("add subnet validator error: %s", err)
	}
	if ids.Id(hash.Sha256(node.issuedBytes)) != txId {
		t.Error("tx id does not match issued bytes")
	}

	// codec version then the registered type id
	if !bytes.HasPrefix(node.issuedBytes, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x0d}) {
		t.Errorf("unexpected leading bytes: %x", node.issuedBytes[:6])
	}
	if !bytes.Contains(node.issuedBytes, subnetId.Bytes()) {
		t.Error("subnet id missing from issued bytes")
	}
	// subnet auth: type id 10, one signature index, index 0
	auth := []byte{
		0x00, 0x00, 0x00, 0x0a,
		0x00, 0x00, 0x00, 0x01,
		0x00, 0x00, 0x00, 0x00,
	}
	if !bytes.Contains(node.issuedBytes, auth) {
		t.Error("subnet auth missing from issued bytes")
	}
}

// a permissionless primary network validator stakes its weight and
// carries the empty stake signer
func TestAddPermissionlessValidator(t *testing.T) {

	node := &pStubNode{}
	w, k := pTestWallet(t, node)
	node.utxos = []*txs.Utxo{unlockedUtxo(k, 0, 10_000)}

	validator := platformvm.Validator{
		NodeId: ids.NodeId{0x9c},
		Start:  100,
		End:    200,
		Weight: 2_000,
	}

	txId, err := w.AddPermissionlessValidator(context.Background(), testAssetId(),
		validator, ids.Empty, nil, 1_000_000, 1_000, 0)
	if nil != err {
		t.Fatalf("add permissionless validator error: %s", err)
	}
	if ids.Id(hash.Sha256(node.issuedBytes)) != txId {
		t.Error("tx id does not match issued bytes")
	}

	if !bytes.HasPrefix(node.issuedBytes, []byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x19}) {
		t.Errorf("unexpected leading bytes: %x", node.issuedBytes[:6])
	}
	// a nil stake signer packs as the empty signer
	if !bytes.Contains(node.issuedBytes, []byte{0x00, 0x00, 0x00, 0x1b}) {
		t.Error("empty stake signer missing from issued bytes")
	}
}
