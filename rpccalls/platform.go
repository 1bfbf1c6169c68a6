// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"context"
	"strconv"

	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/txs"
)

// IssuePTx - submit signed transaction bytes to the P chain
func (c *Client) IssuePTx(ctx context.Context, signedBytes []byte) (ids.Id, error) {
	return c.issueTx(ctx, pChainPath, "platform.issueTx", signedBytes)
}

// PTxStatus - the acceptance status of a P chain transaction
func (c *Client) PTxStatus(ctx context.Context, txId ids.Id) (string, error) {
	return c.txStatus(ctx, pChainPath, "platform.getTxStatus", txId)
}

// PUtxos - all UTXOs referencing the given P chain addresses
func (c *Client) PUtxos(ctx context.Context, addresses []string) ([]*txs.Utxo, error) {
	return c.getUtxos(ctx, pChainPath, "platform.getUTXOs", addresses)
}

// PBalance - spendable and locked balances of P chain addresses
func (c *Client) PBalance(ctx context.Context, addresses []string) (unlocked uint64, lockedStakeable uint64, lockedNotStakeable uint64, err error) {
	params := struct {
		Addresses []string `json:"addresses"`
	}{
		Addresses: addresses,
	}
	reply := struct {
		Unlocked           string `json:"unlocked"`
		LockedStakeable    string `json:"lockedStakeable"`
		LockedNotStakeable string `json:"lockedNotStakeable"`
	}{}
	err = c.call(ctx, pChainPath, "platform.getBalance", params, &reply)
	if nil != err {
		return 0, 0, 0, err
	}
	unlocked, err = strconv.ParseUint(reply.Unlocked, 10, 64)
	if nil != err {
		return 0, 0, 0, fault.ErrRpcResponseFail
	}
	lockedStakeable, err = strconv.ParseUint(reply.LockedStakeable, 10, 64)
	if nil != err {
		return 0, 0, 0, fault.ErrRpcResponseFail
	}
	lockedNotStakeable, err = strconv.ParseUint(reply.LockedNotStakeable, 10, 64)
	if nil != err {
		return 0, 0, 0, fault.ErrRpcResponseFail
	}
	return unlocked, lockedStakeable, lockedNotStakeable, nil
}

// CurrentValidator - one active staker as reported by the node
type CurrentValidator struct {
	TxId        string `json:"txID"`
	NodeId      string `json:"nodeID"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	StakeAmount string `json:"stakeAmount"`
	Uptime      string `json:"uptime"`
	Connected   bool   `json:"connected"`
}

// CurrentValidators - the active validator set of a subnet
//
// an empty subnet id queries the primary network
func (c *Client) CurrentValidators(ctx context.Context, subnetId ids.Id) ([]CurrentValidator, error) {
	params := struct {
		SubnetId string `json:"subnetID,omitempty"`
	}{}
	if !subnetId.IsEmpty() {
		params.SubnetId = subnetId.String()
	}
	reply := struct {
		Validators []CurrentValidator `json:"validators"`
	}{}
	err := c.call(ctx, pChainPath, "platform.getCurrentValidators", params, &reply)
	if nil != err {
		return nil, err
	}
	return reply.Validators, nil
}
