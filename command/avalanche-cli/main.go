// Copyright (c) 2024-2026 Firn Labs
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"
)

type metadata struct {
	endpoint string
	network  string
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "avalanche-cli"
	app.Usage = "query nodes, derive addresses and inspect keys"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "endpoint, e",
			Value: "http://127.0.0.1:9650",
			Usage: " node API base `URL`",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: "",
			Usage: " override the address prefix `NETWORK` [mainnet|fuji|local]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new private key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "mnemonic, m",
					Usage: " also print a recovery phrase",
				},
			},
			Action: runGenerate,
		},
		{
			Name:      "address",
			Usage:     "derive the addresses of a private key",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "key, k",
					Value: "",
					Usage: "*private key `KEY`",
				},
			},
			Action: runAddress,
		},
		{
			Name:   "info",
			Usage:  "network and identity of the connected node",
			Action: runInfo,
		},
		{
			Name:      "balance",
			Usage:     "P chain balance of addresses",
			ArgsUsage: "address...",
			Action:    runBalance,
		},
		{
			Name:      "status",
			Usage:     "acceptance status of a transaction",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "txid, t",
					Value: "",
					Usage: "*transaction `ID`",
				},
				cli.StringFlag{
					Name:  "chain, c",
					Value: "X",
					Usage: " chain alias `CHAIN` [X|P]",
				},
			},
			Action: runStatus,
		},
		{
			Name:      "validators",
			Usage:     "current validator set of a subnet",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "subnet, s",
					Value: "",
					Usage: " subnet `ID` [primary network]",
				},
			},
			Action: runValidators,
		},
	}

	app.Before = func(c *cli.Context) error {
		c.App.Metadata["config"] = &metadata{
			endpoint: c.GlobalString("endpoint"),
			network:  c.GlobalString("network"),
			verbose:  c.GlobalBool("verbose"),
			e:        c.App.ErrWriter,
			w:        c.App.Writer,
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
