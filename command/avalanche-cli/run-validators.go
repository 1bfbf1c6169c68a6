// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/urfave/cli"

	"github.com/firnlabs/avalanche/ids"
	"github.com/firnlabs/avalanche/rpccalls"
)

func runValidators(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	subnetId := ids.Empty
	if s := c.String("subnet"); "" != s {
		id, err := ids.IdFromString(s)
		if nil != err {
			return err
		}
		subnetId = id
	}

	client := rpccalls.NewClient(m.endpoint, nil)
	validators, err := client.CurrentValidators(context.Background(), subnetId)
	if nil != err {
		return err
	}

	return printJson(m.w, validators)
}
