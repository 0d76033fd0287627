package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
)

var (
	webhookEventFlag = &cli.StringFlag{
		Name: "event",
		Usage: "the target event, one of offer_created, offer_accepted, " +
			"offer_cancelled or * for any event",
		Value: "",
	}

	webhook = cli.Command{
		Name:  "webhook",
		Usage: "add, remove or list webhooks",
		Subcommands: []*cli.Command{
			webhookAddCmd, webhookRemoveCmd, webhookListCmd,
		},
	}

	webhookAddCmd = &cli.Command{
		Name:  "add",
		Usage: "add a (secured) webhook endpoint called whenever a target event occurs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "endpoint",
				Usage: "the webhook endpoint to be called whenever the target event occurs",
				Value: "",
			},
			&cli.StringFlag{
				Name: "secret",
				Usage: "the eventual secret to use to generate an OAuth token for " +
					"authenticating requests to the webhook endpoint",
				Value: "",
			},
			webhookEventFlag,
		},
		Action: addWebhookAction,
	}

	webhookRemoveCmd = &cli.Command{
		Name:  "remove",
		Usage: "remove a webhook",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "id",
				Usage: "the id of the webhook to remove",
				Value: "",
			},
		},
		Action: removeWebhookAction,
	}

	webhookListCmd = &cli.Command{
		Name:   "list",
		Usage:  "list all webhooks, optionally filtered by target event",
		Flags:  []cli.Flag{webhookEventFlag},
		Action: listWebhooksAction,
	}
)

func addWebhookAction(ctx *cli.Context) error {
	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	event := ctx.String("event")
	if len(event) <= 0 {
		return fmt.Errorf("missing event")
	}

	reply, err := client.AddWebhook(ctx.Context, &escrowv1.AddWebhookRequest{
		Endpoint: ctx.String("endpoint"),
		Event:    event,
		Secret:   ctx.String("secret"),
	})
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("webhook id:", reply.Id)
	return nil
}

func removeWebhookAction(ctx *cli.Context) error {
	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	hookID := ctx.String("id")

	if _, err := client.RemoveWebhook(
		ctx.Context, &escrowv1.RemoveWebhookRequest{Id: hookID},
	); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("removed webhook with id:", hookID)
	return nil
}

func listWebhooksAction(ctx *cli.Context) error {
	client, cleanup, err := getOperatorClient()
	if err != nil {
		return err
	}
	defer cleanup()

	reply, err := client.ListWebhooks(ctx.Context, &escrowv1.ListWebhooksRequest{
		Event: ctx.String("event"),
	})
	if err != nil {
		return err
	}

	printRespJSON(reply)
	return nil
}
