package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/urfave/cli/v2"
)

var (
	rpcFlag = cli.StringFlag{
		Name:  "rpcserver",
		Usage: "escrowd escrow interface address host:port",
		Value: "localhost:9945",
	}

	operatorRpcFlag = cli.StringFlag{
		Name:  "operatorserver",
		Usage: "escrowd operator interface address host:port",
		Value: "localhost:9000",
	}

	callerFlag = cli.StringFlag{
		Name:  "caller",
		Usage: "the address requests are made on behalf of",
		Value: "",
	}
)

var config = cli.Command{
	Name:   "config",
	Usage:  "Print local configuration of the escrow CLI",
	Action: configAction,
	Subcommands: []*cli.Command{
		{
			Name:   "set",
			Usage:  "set a <key> <value> in the local state",
			Action: configSetAction,
		},
		{
			Name:   "init",
			Usage:  "initialize the local state with flags",
			Action: configInitAction,
			Flags: []cli.Flag{
				&rpcFlag,
				&operatorRpcFlag,
				&callerFlag,
			},
		},
	},
}

func configAction(ctx *cli.Context) error {
	state, err := getState()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(state))
	for key := range state {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Println(key + ": " + state[key])
	}

	return nil
}

func configInitAction(c *cli.Context) error {
	return setState(map[string]string{
		"rpcserver":      c.String("rpcserver"),
		"operatorserver": c.String("operatorserver"),
		"caller":         c.String("caller"),
	})
}

func configSetAction(c *cli.Context) error {
	if c.NArg() < 2 {
		return errors.New("key and value are missing")
	}

	key := c.Args().Get(0)
	value := c.Args().Get(1)

	if err := setState(map[string]string{key: value}); err != nil {
		return err
	}

	fmt.Printf("%s %s has been set\n", key, value)

	return nil
}
