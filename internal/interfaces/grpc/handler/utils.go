package grpchandler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
	"github.com/tdex-network/escrowd/internal/core/application/pubsub"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/core/ports"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func parsePayment(p *escrowv1.Payment, name string) (domain.Payment, error) {
	if p == nil {
		return domain.Payment{}, fmt.Errorf("missing %s", name)
	}
	amount, err := decimal.NewFromString(p.GetAmount())
	if err != nil {
		return domain.Payment{}, fmt.Errorf("invalid %s amount: %s", name, err)
	}
	return domain.NewPayment(
		domain.TokenRef(p.GetTokenRef()), domain.SubUnitId(p.GetSubUnit()), amount,
	)
}

func parseAddress(addr string) (domain.Address, error) {
	address := domain.Address(addr)
	if err := address.Validate(); err != nil {
		return "", err
	}
	return address, nil
}

func parseWebhookEvent(event string) (string, error) {
	event = strings.ToUpper(strings.TrimSpace(event))
	if !pubsub.IsValidEvent(event) {
		return "", fmt.Errorf("unknown webhook event %q", event)
	}
	return event, nil
}

// toStatusError maps domain and webhook errors to the related gRPC status
// code.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, ports.ErrSubscriptionNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, domain.ErrPaymentMismatch),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrInvalidTokenRef),
		errors.Is(err, domain.ErrCustodyFunding),
		errors.Is(err, pubsub.ErrInvalidEvent),
		errors.Is(err, ports.ErrMissingTopic),
		errors.Is(err, ports.ErrInvalidEndpoint):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, domain.ErrTransferFailed):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

type paymentInfo domain.Payment

func (i paymentInfo) toProto() *escrowv1.Payment {
	return &escrowv1.Payment{
		TokenRef: string(i.TokenRef),
		SubUnit:  uint64(i.SubUnit),
		Amount:   i.Amount.String(),
	}
}

type offerInfo domain.Offer

func (i offerInfo) toProto() *escrowv1.Offer {
	return &escrowv1.Offer{
		Id:              uint64(i.Id),
		Creator:         string(i.Creator),
		OfferedPayment:  paymentInfo(i.OfferedPayment).toProto(),
		AcceptedPayment: paymentInfo(i.AcceptedPayment).toProto(),
		Counterparty:    string(i.Counterparty),
	}
}

type offersInfo []domain.Offer

func (i offersInfo) toProto() []*escrowv1.Offer {
	list := make([]*escrowv1.Offer, 0, len(i))
	for _, offer := range i {
		list = append(list, offerInfo(offer).toProto())
	}
	return list
}

type webhooksInfo []ports.Subscription

func (i webhooksInfo) toProto() []*escrowv1.WebhookInfo {
	list := make([]*escrowv1.WebhookInfo, 0, len(i))
	for _, hook := range i {
		list = append(list, &escrowv1.WebhookInfo{
			Id:        hook.Id(),
			Event:     hook.Topic(),
			Endpoint:  hook.NotifyAt(),
			IsSecured: hook.IsSecured(),
		})
	}
	return list
}
