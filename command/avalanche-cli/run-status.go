// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/firnlabs/avalanche/constants"
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/rpccalls"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	txId, err := ids.IdFromString(c.String("txid"))
	if nil != err {
		return err
	}

	client := rpccalls.NewClient(m.endpoint, nil)
	ctx := context.Background()

	status := ""
	switch c.String("chain") {
	case constants.XChainAlias:
		status, err = client.XTxStatus(ctx, txId)
	case constants.PChainAlias:
		status, err = client.PTxStatus(ctx, txId)
	default:
		return fault.ErrInvalidChainAlias
	}
	if nil != err {
		return err
	}

	type txStatus struct {
		TxId   string `json:"tx_id"`
		Status string `json:"status"`
	}

	return printJson(m.w, txStatus{
		TxId:   txId.String(),
		Status: status,
	})
}
