// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"
	"strconv"

	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/ids"
)

// NetworkId - the numeric network the node is on
func (c *Client) NetworkId(ctx context.Context) (uint32, error) {
	reply := struct {
		NetworkId string `json:"networkID"`
	}{}
	err := c.call(ctx, infoPath, "info.getNetworkID", struct{}{}, &reply)
	if nil != err {
		return 0, err
	}
	n, err := strconv.ParseUint(reply.NetworkId, 10, 32)
	if nil != err {
		return 0, fault.ErrRpcResponseFail
	}
	return uint32(n), nil
}

// NetworkName - the well known name of the node's network
func (c *Client) NetworkName(ctx context.Context) (string, error) {
	reply := struct {
		NetworkName string `json:"networkName"`
	}{}
	err := c.call(ctx, infoPath, "info.getNetworkName", struct{}{}, &reply)
	if nil != err {
		return "", err
	}
	return reply.NetworkName, nil
}

// BlockchainId - resolve a chain alias to its blockchain id
//
// the answer is immutable and memoised
func (c *Client) BlockchainId(ctx context.Context, alias string) (ids.Id, error) {
	memoKey := "blockchain:" + alias
	if cached, ok := c.memo.Get(memoKey); ok {
		return cached.(ids.Id), nil
	}
	reply := struct {
		BlockchainId string `json:"blockchainID"`
	}{}
	params := struct {
		Alias string `json:"alias"`
	}{
		Alias: alias,
	}
	err := c.call(ctx, infoPath, "info.getBlockchainID", params, &reply)
	if nil != err {
		return ids.Empty, err
	}
	id, err := ids.IdFromString(reply.BlockchainId)
	if nil != err {
		return ids.Empty, err
	}
	c.memo.Set(memoKey, id, 0)
	return id, nil
}

// NodeId - the identity of the node answering
func (c *Client) NodeId(ctx context.Context) (ids.NodeId, error) {
	reply := struct {
		NodeId string `json:"nodeID"`
	}{}
	err := c.call(ctx, infoPath, "info.getNodeID", struct{}{}, &reply)
	if nil != err {
		return ids.NodeEmpty, err
	}
	return ids.NodeIdFromString(reply.NodeId)
}

// TxFee - the node's configured fees in nano units
func (c *Client) TxFee(ctx context.Context) (txFee uint64, createFee uint64, err error) {
	reply := struct {
		TxFee         string `json:"txFee"`
		CreationTxFee string `json:"creationTxFee"`
	}{}
	err = c.call(ctx, infoPath, "info.getTxFee", struct{}{}, &reply)
	if nil != err {
		return 0, 0, err
	}
	txFee, err = strconv.ParseUint(reply.TxFee, 10, 64)
	if nil != err {
		return 0, 0, fault.ErrRpcResponseFail
	}
	createFee, err = strconv.ParseUint(reply.CreationTxFee, 10, 64)
	if nil != err {
		return 0, 0, fault.ErrRpcResponseFail
	}
	return txFee, createFee, nil
}
