package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
)

var (
	fundaccount = cli.Command{
		Name:  "fund",
		Usage: "credit an account of the ledger with some amount of token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "account",
				Usage:    "the address of the account to fund",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "token",
				Usage:    "the token reference",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "sub_unit",
				Usage: "the sub-unit id of the token",
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "the amount to credit",
				Required: true,
			},
		},
		Action: fundAccountAction,
	}

	getbalance = cli.Command{
		Name:  "balance",
		Usage: "get the balance of an account for a token",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "account",
				Usage:    "the address of the account",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "token",
				Usage:    "the token reference",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "sub_unit",
				Usage: "the sub-unit id of the token",
			},
		},
		Action: getBalanceAction,
	}
)

func fundAccountAction(ctx *cli.Context) error {
	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	account := ctx.String("account")
	if _, err := client.FundAccount(ctx.Context, &escrowv1.FundAccountRequest{
		Account: account,
		Payment: &escrowv1.Payment{
			TokenRef: ctx.String("token"),
			SubUnit:  ctx.Uint64("sub_unit"),
			Amount:   ctx.String("amount"),
		},
	}); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("funded account:", account)
	return nil
}

func getBalanceAction(ctx *cli.Context) error {
	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetBalance(ctx.Context, &escrowv1.GetBalanceRequest{
		Account:  ctx.String("account"),
		TokenRef: ctx.String("token"),
		SubUnit:  ctx.Uint64("sub_unit"),
	})
	if err != nil {
		return err
	}

	fmt.Println(reply.Amount)
	return nil
}
