package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
)

var (
	offerIdFlag = &cli.Uint64Flag{
		Name:     "id",
		Usage:    "the id of the offer",
		Required: true,
	}

	createoffer = cli.Command{
		Name:  "create",
		Usage: "create an offer, the deposit is held in escrow until the offer is accepted or cancelled",
		Flags: []cli.Flag{
			&callerFlag,
			&cli.StringFlag{
				Name:     "deposit_token",
				Usage:    "the token reference of the deposited payment",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "deposit_sub_unit",
				Usage: "the sub-unit id of the deposited token",
			},
			&cli.StringFlag{
				Name:     "deposit_amount",
				Usage:    "the amount of the deposited payment",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "want_token",
				Usage:    "the token reference of the payment wanted in return",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "want_sub_unit",
				Usage: "the sub-unit id of the wanted token",
			},
			&cli.StringFlag{
				Name:     "want_amount",
				Usage:    "the amount of the payment wanted in return",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "counterparty",
				Usage:    "the only address allowed to accept the offer",
				Required: true,
			},
		},
		Action: createOfferAction,
	}

	acceptoffer = cli.Command{
		Name:  "accept",
		Usage: "accept an offer by depositing the payment it asks for",
		Flags: []cli.Flag{
			&callerFlag,
			offerIdFlag,
			&cli.StringFlag{
				Name:     "token",
				Usage:    "the token reference of the deposited payment",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "sub_unit",
				Usage: "the sub-unit id of the deposited token",
			},
			&cli.StringFlag{
				Name:     "amount",
				Usage:    "the amount of the deposited payment",
				Required: true,
			},
		},
		Action: acceptOfferAction,
	}

	canceloffer = cli.Command{
		Name:   "cancel",
		Usage:  "cancel an offer and get the deposit back",
		Flags:  []cli.Flag{&callerFlag, offerIdFlag},
		Action: cancelOfferAction,
	}

	getoffer = cli.Command{
		Name:   "offer",
		Usage:  "get an open offer by id",
		Flags:  []cli.Flag{offerIdFlag},
		Action: getOfferAction,
	}

	listoffers = cli.Command{
		Name:  "offers",
		Usage: "list the open offers created by or addressed to an address",
		Subcommands: []*cli.Command{
			{
				Name:  "created",
				Usage: "list the open offers created by the given address",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Usage:    "the creator address",
						Required: true,
					},
				},
				Action: listCreatedOffersAction,
			},
			{
				Name:  "wanted",
				Usage: "list the open offers addressed to the given address",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "address",
						Usage:    "the counterparty address",
						Required: true,
					},
				},
				Action: listWantedOffersAction,
			},
		},
	}

	lastofferid = cli.Command{
		Name:   "lastofferid",
		Usage:  "get the id of the most recently created offer",
		Action: lastOfferIdAction,
	}
)

func createOfferAction(ctx *cli.Context) error {
	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	callCtx, err := callerContext(ctx)
	if err != nil {
		return err
	}

	reply, err := client.CreateOffer(callCtx, &escrowv1.CreateOfferRequest{
		Deposit: &escrowv1.Payment{
			TokenRef: ctx.String("deposit_token"),
			SubUnit:  ctx.Uint64("deposit_sub_unit"),
			Amount:   ctx.String("deposit_amount"),
		},
		AcceptedPayment: &escrowv1.Payment{
			TokenRef: ctx.String("want_token"),
			SubUnit:  ctx.Uint64("want_sub_unit"),
			Amount:   ctx.String("want_amount"),
		},
		Counterparty: ctx.String("counterparty"),
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("offer id:", reply.OfferId)
	return nil
}

func acceptOfferAction(ctx *cli.Context) error {
	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	callCtx, err := callerContext(ctx)
	if err != nil {
		return err
	}

	offerId := ctx.Uint64("id")
	if _, err := client.AcceptOffer(callCtx, &escrowv1.AcceptOfferRequest{
		OfferId: offerId,
		Deposit: &escrowv1.Payment{
			TokenRef: ctx.String("token"),
			SubUnit:  ctx.Uint64("sub_unit"),
			Amount:   ctx.String("amount"),
		},
	}); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("accepted offer with id:", offerId)
	return nil
}

func cancelOfferAction(ctx *cli.Context) error {
	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	callCtx, err := callerContext(ctx)
	if err != nil {
		return err
	}

	offerId := ctx.Uint64("id")
	if _, err := client.CancelOffer(callCtx, &escrowv1.CancelOfferRequest{
		OfferId: offerId,
	}); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("cancelled offer with id:", offerId)
	return nil
}

func getOfferAction(ctx *cli.Context) error {
	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetOffer(ctx.Context, &escrowv1.GetOfferRequest{
		OfferId: ctx.Uint64("id"),
	})
	if err != nil {
		return err
	}

	printRespJSON(reply.Offer)
	return nil
}

func listCreatedOffersAction(ctx *cli.Context) error {
	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetCreatedOffers(ctx.Context, &escrowv1.ListOffersRequest{
		Address: ctx.String("address"),
	})
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func listWantedOffersAction(ctx *cli.Context) error {
	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetWantedOffers(ctx.Context, &escrowv1.ListOffersRequest{
		Address: ctx.String("address"),
	})
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}

func lastOfferIdAction(ctx *cli.Context) error {
	client, cleanup, err := getEscrowClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.GetLastOfferId(
		ctx.Context, &escrowv1.GetLastOfferIdRequest{},
	)
	if err != nil {
		return err
	}

	fmt.Println(reply.OfferId)
	return nil
}
