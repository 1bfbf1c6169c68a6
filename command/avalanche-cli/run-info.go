// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/firnlabs/avalanche/constants"
	"github.com/firnlabs/avalanche/rpccalls"
)

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)
	client := rpccalls.NewClient(m.endpoint, nil)
	ctx := context.Background()

	networkId, err := client.NetworkId(ctx)
	if nil != err {
		return err
	}
	networkName, err := client.NetworkName(ctx)
	if nil != err {
		return err
	}
	nodeId, err := client.NodeId(ctx)
	if nil != err {
		return err
	}
	xChainId, err := client.BlockchainId(ctx, constants.XChainAlias)
	if nil != err {
		return err
	}
	pChainId, err := client.BlockchainId(ctx, constants.PChainAlias)
	if nil != err {
		return err
	}
	txFee, createFee, err := client.TxFee(ctx)
	if nil != err {
		return err
	}

	type nodeInfo struct {
		NetworkId   uint32 `json:"network_id"`
		NetworkName string `json:"network_name"`
		NodeId      string `json:"node_id"`
		XChainId    string `json:"x_chain_id"`
		PChainId    string `json:"p_chain_id"`
		TxFee       uint64 `json:"tx_fee"`
		CreationFee uint64 `json:"creation_fee"`
	}

	return printJson(m.w, nodeInfo{
		NetworkId:   networkId,
		NetworkName: networkName,
		NodeId:      nodeId.String(),
		XChainId:    xChainId.String(),
		PChainId:    pChainId.String(),
		TxFee:       txFee,
		CreationFee: createFee,
	})
}
