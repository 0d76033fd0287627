package grpchandler_test

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/require"
	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
	"github.com/tdex-network/escrowd/internal/core/application/escrow"
	ledgersvc "github.com/tdex-network/escrowd/internal/core/application/ledger"
	pubsubsvc "github.com/tdex-network/escrowd/internal/core/application/pubsub"
	"github.com/tdex-network/escrowd/internal/infrastructure/ledger"
	"github.com/tdex-network/escrowd/internal/infrastructure/pubsub"
	"github.com/tdex-network/escrowd/internal/infrastructure/storage/db/inmemory"
	grpchandler "github.com/tdex-network/escrowd/internal/interfaces/grpc/handler"
	"github.com/tdex-network/escrowd/internal/interfaces/grpc/interceptor"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type testClients struct {
	escrow   escrowv1.EscrowServiceClient
	operator escrowv1.OperatorServiceClient
}

func newTestClients(t *testing.T) testClients {
	repoManager := inmemory.NewRepoManager()
	custody, err := ledger.NewCustodyLedger(repoManager, "escrow")
	require.NoError(t, err)
	ps, err := pubsub.NewService(pubsub.NewInMemoryStore(), 0, 0)
	require.NoError(t, err)

	pubsubSvc := pubsubsvc.NewService(ps)
	escrowSvc, err := escrow.NewService(repoManager, custody, pubsubSvc)
	require.NoError(t, err)
	ledgerSvc, err := ledgersvc.NewService(repoManager, custody)
	require.NoError(t, err)

	server := grpc.NewServer(
		interceptor.UnaryInterceptor(), interceptor.StreamInterceptor(),
	)
	escrowv1.RegisterEscrowServiceServer(
		server, grpchandler.NewEscrowHandler(escrowSvc),
	)
	escrowv1.RegisterOperatorServiceServer(
		server, grpchandler.NewOperatorHandler(ledgerSvc, pubsubSvc),
	)

	lis := bufconn.Listen(1 << 20)
	go func() {
		//nolint
		server.Serve(lis)
	}()

	conn, err := grpc.Dial(
		"bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		server.Stop()
	})

	return testClients{
		escrowv1.NewEscrowServiceClient(conn),
		escrowv1.NewOperatorServiceClient(conn),
	}
}

func as(caller string) context.Context {
	return metadata.AppendToOutgoingContext(
		context.Background(), escrowv1.CallerMetadataKey, caller,
	)
}

func requireCode(t *testing.T, err error, code codes.Code) {
	require.Error(t, err)
	require.Equal(t, code, status.Code(err), err.Error())
}

func TestEscrowFlow(t *testing.T) {
	clients := newTestClients(t)
	ctx := context.Background()

	_, err := clients.operator.FundAccount(ctx, &escrowv1.FundAccountRequest{
		Account: "alice",
		Payment: &escrowv1.Payment{TokenRef: "X", Amount: "100"},
	})
	require.NoError(t, err)
	_, err = clients.operator.FundAccount(ctx, &escrowv1.FundAccountRequest{
		Account: "bob",
		Payment: &escrowv1.Payment{TokenRef: "Y", Amount: "50"},
	})
	require.NoError(t, err)

	createReq := &escrowv1.CreateOfferRequest{
		Deposit:         &escrowv1.Payment{TokenRef: "X", Amount: "100"},
		AcceptedPayment: &escrowv1.Payment{TokenRef: "Y", Amount: "50"},
		Counterparty:    "bob",
	}

	_, err = clients.escrow.CreateOffer(ctx, createReq)
	requireCode(t, err, codes.Unauthenticated)

	res, err := clients.escrow.CreateOffer(as("alice"), createReq)
	require.NoError(t, err)
	require.Equal(t, uint64(1), res.OfferId)

	offer, err := clients.escrow.GetOffer(ctx, &escrowv1.GetOfferRequest{OfferId: 1})
	require.NoError(t, err)
	require.Equal(t, "alice", offer.Offer.Creator)
	require.Equal(t, "bob", offer.Offer.Counterparty)
	require.Equal(t, "100", offer.Offer.OfferedPayment.Amount)

	wanted, err := clients.escrow.GetWantedOffers(ctx, &escrowv1.ListOffersRequest{Address: "bob"})
	require.NoError(t, err)
	require.Len(t, wanted.Offers, 1)

	_, err = clients.escrow.CancelOffer(as("bob"), &escrowv1.CancelOfferRequest{OfferId: 1})
	requireCode(t, err, codes.PermissionDenied)

	_, err = clients.escrow.AcceptOffer(as("bob"), &escrowv1.AcceptOfferRequest{
		OfferId: 1,
		Deposit: &escrowv1.Payment{TokenRef: "Y", Amount: "49"},
	})
	requireCode(t, err, codes.InvalidArgument)

	_, err = clients.escrow.AcceptOffer(as("bob"), &escrowv1.AcceptOfferRequest{
		OfferId: 1,
		Deposit: &escrowv1.Payment{TokenRef: "Y", Amount: "50"},
	})
	require.NoError(t, err)

	_, err = clients.escrow.AcceptOffer(as("bob"), &escrowv1.AcceptOfferRequest{
		OfferId: 1,
		Deposit: &escrowv1.Payment{TokenRef: "Y", Amount: "50"},
	})
	requireCode(t, err, codes.NotFound)

	balance, err := clients.operator.GetBalance(ctx, &escrowv1.GetBalanceRequest{
		Account: "alice", TokenRef: "Y",
	})
	require.NoError(t, err)
	require.Equal(t, "50", balance.Amount)

	balance, err = clients.operator.GetBalance(ctx, &escrowv1.GetBalanceRequest{
		Account: "bob", TokenRef: "X",
	})
	require.NoError(t, err)
	require.Equal(t, "100", balance.Amount)

	last, err := clients.escrow.GetLastOfferId(ctx, &escrowv1.GetLastOfferIdRequest{})
	require.NoError(t, err)
	require.Equal(t, uint64(1), last.OfferId)
}

func TestInvalidRequests(t *testing.T) {
	clients := newTestClients(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  *escrowv1.CreateOfferRequest
		code codes.Code
	}{
		{
			name: "missing deposit",
			req: &escrowv1.CreateOfferRequest{
				AcceptedPayment: &escrowv1.Payment{TokenRef: "Y", Amount: "50"},
				Counterparty:    "bob",
			},
			code: codes.InvalidArgument,
		},
		{
			name: "malformed amount",
			req: &escrowv1.CreateOfferRequest{
				Deposit:         &escrowv1.Payment{TokenRef: "X", Amount: "ten"},
				AcceptedPayment: &escrowv1.Payment{TokenRef: "Y", Amount: "50"},
				Counterparty:    "bob",
			},
			code: codes.InvalidArgument,
		},
		{
			name: "zero accepted amount",
			req: &escrowv1.CreateOfferRequest{
				Deposit:         &escrowv1.Payment{TokenRef: "X", Amount: "10"},
				AcceptedPayment: &escrowv1.Payment{TokenRef: "Y", Amount: "0"},
				Counterparty:    "bob",
			},
			code: codes.InvalidArgument,
		},
		{
			name: "unfunded deposit",
			req: &escrowv1.CreateOfferRequest{
				Deposit:         &escrowv1.Payment{TokenRef: "X", Amount: "10"},
				AcceptedPayment: &escrowv1.Payment{TokenRef: "Y", Amount: "5"},
				Counterparty:    "bob",
			},
			code: codes.FailedPrecondition,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := clients.escrow.CreateOffer(as("alice"), tt.req)
			requireCode(t, err, tt.code)
		})
	}

	_, err := clients.escrow.GetOffer(ctx, &escrowv1.GetOfferRequest{OfferId: 42})
	requireCode(t, err, codes.NotFound)

	_, err = clients.escrow.GetCreatedOffers(ctx, &escrowv1.ListOffersRequest{})
	requireCode(t, err, codes.InvalidArgument)

	_, err = clients.operator.FundAccount(ctx, &escrowv1.FundAccountRequest{
		Account: "escrow",
		Payment: &escrowv1.Payment{TokenRef: "X", Amount: "10"},
	})
	requireCode(t, err, codes.InvalidArgument)
}

func TestWebhooks(t *testing.T) {
	clients := newTestClients(t)
	ctx := context.Background()

	_, err := clients.operator.AddWebhook(ctx, &escrowv1.AddWebhookRequest{
		Event: "UNKNOWN", Endpoint: "http://localhost:8000/hook",
	})
	requireCode(t, err, codes.InvalidArgument)

	for _, endpoint := range []string{"ftp://localhost/hook", "localhost:8000", ""} {
		_, err = clients.operator.AddWebhook(ctx, &escrowv1.AddWebhookRequest{
			Event: "offer_created", Endpoint: endpoint,
		})
		requireCode(t, err, codes.InvalidArgument)
	}

	res, err := clients.operator.AddWebhook(ctx, &escrowv1.AddWebhookRequest{
		Event: "offer_created", Endpoint: "http://localhost:8000/hook", Secret: "secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.Id)

	list, err := clients.operator.ListWebhooks(ctx, &escrowv1.ListWebhooksRequest{})
	require.NoError(t, err)
	require.Len(t, list.WebhookInfo, 1)
	require.Equal(t, "OFFER_CREATED", list.WebhookInfo[0].Event)
	require.True(t, list.WebhookInfo[0].IsSecured)

	list, err = clients.operator.ListWebhooks(ctx, &escrowv1.ListWebhooksRequest{
		Event: "offer_accepted",
	})
	require.NoError(t, err)
	require.Empty(t, list.WebhookInfo)

	_, err = clients.operator.ListWebhooks(ctx, &escrowv1.ListWebhooksRequest{
		Event: "unknown",
	})
	requireCode(t, err, codes.InvalidArgument)

	_, err = clients.operator.RemoveWebhook(ctx, &escrowv1.RemoveWebhookRequest{Id: res.Id})
	require.NoError(t, err)

	_, err = clients.operator.RemoveWebhook(ctx, &escrowv1.RemoveWebhookRequest{Id: res.Id})
	requireCode(t, err, codes.NotFound)

	_, err = clients.operator.RemoveWebhook(ctx, &escrowv1.RemoveWebhookRequest{Id: "unknown"})
	requireCode(t, err, codes.NotFound)
}
