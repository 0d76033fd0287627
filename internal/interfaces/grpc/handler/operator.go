package grpchandler

import (
	"context"

	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
	"github.com/tdex-network/escrowd/internal/core/application/ledger"
	"github.com/tdex-network/escrowd/internal/core/application/pubsub"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type operatorHandler struct {
	ledgerSvc *ledger.Service
	pubsubSvc *pubsub.Service
}

// NewOperatorHandler is a constructor function returning an
// OperatorServiceServer.
func NewOperatorHandler(
	ledgerSvc *ledger.Service, pubsubSvc *pubsub.Service,
) escrowv1.OperatorServiceServer {
	return &operatorHandler{ledgerSvc, pubsubSvc}
}

func (h *operatorHandler) FundAccount(
	ctx context.Context, req *escrowv1.FundAccountRequest,
) (*escrowv1.FundAccountResponse, error) {
	account, err := parseAddress(req.Account)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	payment, err := parsePayment(req.Payment, "payment")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.ledgerSvc.FundAccount(ctx, account, payment); err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.FundAccountResponse{}, nil
}

func (h *operatorHandler) GetBalance(
	ctx context.Context, req *escrowv1.GetBalanceRequest,
) (*escrowv1.GetBalanceResponse, error) {
	balance, err := h.ledgerSvc.GetBalance(
		ctx, domain.Address(req.Account), domain.TokenRef(req.TokenRef),
		domain.SubUnitId(req.SubUnit),
	)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.GetBalanceResponse{Amount: balance.Amount.String()}, nil
}

func (h *operatorHandler) AddWebhook(
	ctx context.Context, req *escrowv1.AddWebhookRequest,
) (*escrowv1.AddWebhookResponse, error) {
	event, err := parseWebhookEvent(req.Event)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	hookID, err := h.pubsubSvc.AddWebhook(ctx, event, req.Endpoint, req.Secret)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.AddWebhookResponse{Id: hookID}, nil
}

func (h *operatorHandler) RemoveWebhook(
	ctx context.Context, req *escrowv1.RemoveWebhookRequest,
) (*escrowv1.RemoveWebhookResponse, error) {
	if len(req.Id) <= 0 {
		return nil, status.Error(codes.InvalidArgument, "missing webhook id")
	}
	if err := h.pubsubSvc.RemoveWebhook(ctx, req.Id); err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.RemoveWebhookResponse{}, nil
}

func (h *operatorHandler) ListWebhooks(
	ctx context.Context, req *escrowv1.ListWebhooksRequest,
) (*escrowv1.ListWebhooksResponse, error) {
	event := req.Event
	if len(event) > 0 {
		var err error
		if event, err = parseWebhookEvent(event); err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
	}

	hooks, err := h.pubsubSvc.ListWebhooks(ctx, event)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.ListWebhooksResponse{
		WebhookInfo: webhooksInfo(hooks).toProto(),
	}, nil
}
