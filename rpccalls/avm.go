// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"

	"github.com/firnlabs/avalanche/formatting"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/txs"
)

// transaction status values returned by the node
const (
	StatusAccepted   = "Accepted"
	StatusProcessing = "Processing"
	StatusRejected   = "Rejected"
	StatusUnknown    = "Unknown"
	StatusCommitted  = "Committed"
)

// IssueXTx - submit signed transaction bytes to the X chain
func (c *Client) IssueXTx(ctx context.Context, signedBytes []byte) (ids.Id, error) {
	return c.issueTx(ctx, xChainPath, "avm.issueTx", signedBytes)
}

// XTxStatus - the acceptance status of an X chain transaction
func (c *Client) XTxStatus(ctx context.Context, txId ids.Id) (string, error) {
	return c.txStatus(ctx, xChainPath, "avm.getTxStatus", txId)
}

// XUtxos - all UTXOs referencing the given X chain addresses
func (c *Client) XUtxos(ctx context.Context, addresses []string) ([]*txs.Utxo, error) {
	return c.getUtxos(ctx, xChainPath, "avm.getUTXOs", addresses)
}

// AssetDescription - name, symbol and denomination of an asset
//
// the answer is immutable and memoised
func (c *Client) AssetDescription(ctx context.Context, asset string) (assetId ids.Id, name string, symbol string, denomination uint8, err error) {
	type description struct {
		AssetId      string `json:"assetID"`
		Name         string `json:"name"`
		Symbol       string `json:"symbol"`
		Denomination uint8  `json:"denomination,string"`
	}
	memoKey := "asset:" + asset
	reply := description{}
	if cached, ok := c.memo.Get(memoKey); ok {
		reply = cached.(description)
	} else {
		params := struct {
			AssetId string `json:"assetID"`
		}{
			AssetId: asset,
		}
		err = c.call(ctx, xChainPath, "avm.getAssetDescription", params, &reply)
		if nil != err {
			return ids.Empty, "", "", 0, err
		}
		c.memo.Set(memoKey, reply, 0)
	}
	assetId, err = ids.IdFromString(reply.AssetId)
	if nil != err {
		return ids.Empty, "", "", 0, err
	}
	return assetId, reply.Name, reply.Symbol, reply.Denomination, nil
}

// shared issueTx over any chain path
func (c *Client) issueTx(ctx context.Context, path string, method string, signedBytes []byte) (ids.Id, error) {
	params := struct {
		Tx       string `json:"tx"`
		Encoding string `json:"encoding"`
	}{
		Tx:       formatting.EncodeHex(signedBytes),
		Encoding: "hex",
	}
	reply := struct {
		TxId string `json:"txID"`
	}{}
	err := c.call(ctx, path, method, params, &reply)
	if nil != err {
		return ids.Empty, err
	}
	return ids.IdFromString(reply.TxId)
}

// shared getTxStatus over any chain path
func (c *Client) txStatus(ctx context.Context, path string, method string, txId ids.Id) (string, error) {
	memoKey := "status:" + path + ":" + txId.String()
	if cached, ok := c.memo.Get(memoKey); ok {
		return cached.(string), nil
	}
	params := struct {
		TxId string `json:"txID"`
	}{
		TxId: txId.String(),
	}
	reply := struct {
		Status string `json:"status"`
	}{}
	err := c.call(ctx, path, method, params, &reply)
	if nil != err {
		return "", err
	}

	// only terminal statuses can be memoised
	switch reply.Status {
	case StatusAccepted, StatusCommitted, StatusRejected:
		c.memo.Set(memoKey, reply.Status, 0)
	}
	return reply.Status, nil
}

// shared paged getUTXOs over any chain path
func (c *Client) getUtxos(ctx context.Context, path string, method string, addresses []string) ([]*txs.Utxo, error) {
	type index struct {
		Address string `json:"address"`
		Utxo    string `json:"utxo"`
	}
	type params struct {
		Addresses  []string `json:"addresses"`
		Limit      uint32   `json:"limit"`
		StartIndex *index   `json:"startIndex,omitempty"`
		Encoding   string   `json:"encoding"`
	}
	type reply struct {
		NumFetched string   `json:"numFetched"`
		Utxos      []string `json:"utxos"`
		EndIndex   index    `json:"endIndex"`
	}

	const pageSize = 1024

	all := []*txs.Utxo(nil)
	request := params{
		Addresses: addresses,
		Limit:     pageSize,
		Encoding:  "hex",
	}
	for {
		page := reply{}
		err := c.call(ctx, path, method, request, &page)
		if nil != err {
			return nil, err
		}
		for _, encoded := range page.Utxos {
			buffer, err := formatting.DecodeHex(encoded)
			if nil != err {
				return nil, err
			}
			utxo, err := txs.UnpackUtxo(buffer)
			if nil != err {
				return nil, err
			}
			all = append(all, utxo)
		}
		if pageSize > len(page.Utxos) {
			return all, nil
		}
		end := page.EndIndex
		request.StartIndex = &end
	}
}
