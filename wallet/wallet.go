// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// high level transaction construction
//
// a Wallet binds a keychain to one node connection and plans, signs,
// issues and tracks transactions
package wallet

import (
	"context"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/firnlabs/avalanche/constants"
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/key"
	"github.com/firnlabs/avalanche/rpccalls"
)

// how often an issued transaction's status is polled
const defaultPollInterval = 500 * time.Millisecond

// Wallet - a keychain bound to one node connection
type Wallet struct {
	keychain     *key.Keychain
	client       *rpccalls.Client
	networkId    uint32
	hrp          string
	pollInterval time.Duration
	log          *logger.L
}

// New - create a wallet, querying the node for its network
func New(ctx context.Context, keychain *key.Keychain, client *rpccalls.Client, log *logger.L) (*Wallet, error) {
	networkId, err := client.NetworkId(ctx)
	if nil != err {
		return nil, err
	}
	return &Wallet{
		keychain:     keychain,
		client:       client,
		networkId:    networkId,
		hrp:          constants.HrpForNetwork(networkId),
		pollInterval: defaultPollInterval,
		log:          log,
	}, nil
}

// NewOffline - a wallet with no node connection
//
// planning and signing work as normal; issuing requires a connected
// wallet
func NewOffline(keychain *key.Keychain, networkId uint32) *Wallet {
	return &Wallet{
		keychain:     keychain,
		networkId:    networkId,
		hrp:          constants.HrpForNetwork(networkId),
		pollInterval: defaultPollInterval,
	}
}

// Keychain - the wallet's key set
func (w *Wallet) Keychain() *key.Keychain {
	return w.keychain
}

// NetworkId - the network the wallet operates on
func (w *Wallet) NetworkId() uint32 {
	return w.networkId
}

// Hrp - the bech32 prefix of the wallet's addresses
func (w *Wallet) Hrp() string {
	return w.hrp
}

func (w *Wallet) infof(format string, arguments ...interface{}) {
	if nil != w.log {
		w.log.Infof(format, arguments...)
	}
}

// bech32 addresses of every keychain key on one chain
func (w *Wallet) addresses(chain string) ([]string, error) {
	keys := w.keychain.Addresses()
	addresses := make([]string, 0, len(keys))
	for _, short := range keys {
		k, _ := w.keychain.Get(short)
		addr, err := k.PublicKey().Address(chain, w.hrp)
		if nil != err {
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}

// poll a status function until the transaction reaches a terminal state
func (w *Wallet) await(ctx context.Context, txId ids.Id, status func(context.Context, ids.Id) (string, error)) error {
	for {
		s, err := status(ctx, txId)
		if nil != err {
			return err
		}
		switch s {
		case rpccalls.StatusAccepted, rpccalls.StatusCommitted:
			w.infof("tx %s accepted", txId)
			return nil
		case rpccalls.StatusRejected:
			return fault.ErrTransactionRejected
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(w.pollInterval):
		}
	}
}
