// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/firnlabs/avalanche/key"
)

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	type generated struct {
		PrivateKey string `json:"private_key"`
		Mnemonic   string `json:"mnemonic,omitempty"`
	}

	result := generated{}

	if c.Bool("mnemonic") {
		phrase, err := key.NewMnemonic()
		if nil != err {
			return err
		}
		k, err := key.PrivateKeyFromMnemonic(phrase)
		if nil != err {
			return err
		}
		result.PrivateKey = k.String()
		result.Mnemonic = phrase
	} else {
		k, err := key.Generate()
		if nil != err {
			return err
		}
		result.PrivateKey = k.String()
	}

	return printJson(m.w, result)
}
