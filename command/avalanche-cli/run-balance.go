// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/firnlabs/avalanche/fault"
	"github.com/firnlabs/avalanche/rpccalls"
)

func runBalance(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	addresses := c.Args()
	if 0 == len(addresses) {
		return fault.ErrAddressDecodeFail
	}

	client := rpccalls.NewClient(m.endpoint, nil)
	unlocked, lockedStakeable, lockedNotStakeable, err := client.PBalance(context.Background(), addresses)
	if nil != err {
		return err
	}

	type balance struct {
		Unlocked           uint64 `json:"unlocked"`
		LockedStakeable    uint64 `json:"locked_stakeable"`
		LockedNotStakeable uint64 `json:"locked_not_stakeable"`
	}

	return printJson(m.w, balance{
		Unlocked:           unlocked,
		LockedStakeable:    lockedStakeable,
		LockedNotStakeable: lockedNotStakeable,
	})
}
