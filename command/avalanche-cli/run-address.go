// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/firnlabs/avalanche/constants"
	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/key"
)

var networkIds = map[string]uint32{
	"mainnet": constants.MainnetId,
	"fuji":    constants.FujiId,
	"local":   constants.LocalId,
}

func runAddress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	keyText := c.String("key")
	if "" == keyText {
		return fault.ErrMissingKeyPrefix
	}
	k, err := key.PrivateKeyFromString(keyText)
	if nil != err {
		return err
	}

	hrp := constants.MainnetHrp
	if "" != m.network {
		networkId, ok := networkIds[m.network]
		if !ok {
			return fault.ErrInvalidChainAlias
		}
		hrp = constants.HrpForNetwork(networkId)
	}

	pub := k.PublicKey()
	xAddress, err := pub.Address(constants.XChainAlias, hrp)
	if nil != err {
		return err
	}
	pAddress, err := pub.Address(constants.PChainAlias, hrp)
	if nil != err {
		return err
	}

	type derived struct {
		ShortAddress string `json:"short_address"`
		XAddress     string `json:"x_address"`
		PAddress     string `json:"p_address"`
		EthAddress   string `json:"eth_address"`
	}

	return printJson(m.w, derived{
		ShortAddress: pub.ShortAddress().String(),
		XAddress:     xAddress,
		PAddress:     pAddress,
		EthAddress:   pub.EthAddress(),
	})
}
