package grpchandler

import (
	"context"

	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
	"github.com/tdex-network/escrowd/internal/core/application/escrow"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/interfaces/grpc/interceptor"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type escrowHandler struct {
	escrowSvc *escrow.Service
}

// NewEscrowHandler is a constructor function returning an EscrowServiceServer.
func NewEscrowHandler(escrowSvc *escrow.Service) escrowv1.EscrowServiceServer {
	return &escrowHandler{escrowSvc}
}

func (h *escrowHandler) CreateOffer(
	ctx context.Context, req *escrowv1.CreateOfferRequest,
) (*escrowv1.CreateOfferResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}
	deposit, err := parsePayment(req.Deposit, "deposit")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	accepted, err := parsePayment(req.AcceptedPayment, "accepted payment")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	offerId, err := h.escrowSvc.CreateOffer(
		ctx, caller, deposit, accepted, domain.Address(req.Counterparty),
	)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.CreateOfferResponse{OfferId: uint64(offerId)}, nil
}

func (h *escrowHandler) AcceptOffer(
	ctx context.Context, req *escrowv1.AcceptOfferRequest,
) (*escrowv1.AcceptOfferResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}
	deposit, err := parsePayment(req.Deposit, "deposit")
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	if err := h.escrowSvc.AcceptOffer(
		ctx, caller, domain.OfferId(req.OfferId), deposit,
	); err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.AcceptOfferResponse{}, nil
}

func (h *escrowHandler) CancelOffer(
	ctx context.Context, req *escrowv1.CancelOfferRequest,
) (*escrowv1.CancelOfferResponse, error) {
	caller, err := getCaller(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.escrowSvc.CancelOffer(
		ctx, caller, domain.OfferId(req.OfferId),
	); err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.CancelOfferResponse{}, nil
}

func (h *escrowHandler) GetOffer(
	ctx context.Context, req *escrowv1.GetOfferRequest,
) (*escrowv1.GetOfferResponse, error) {
	offer, err := h.escrowSvc.GetOffer(ctx, domain.OfferId(req.OfferId))
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.GetOfferResponse{Offer: offerInfo(*offer).toProto()}, nil
}

func (h *escrowHandler) GetCreatedOffers(
	ctx context.Context, req *escrowv1.ListOffersRequest,
) (*escrowv1.ListOffersResponse, error) {
	address, err := parseAddress(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	offers, err := h.escrowSvc.GetCreatedOffers(ctx, address)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.ListOffersResponse{Offers: offersInfo(offers).toProto()}, nil
}

func (h *escrowHandler) GetWantedOffers(
	ctx context.Context, req *escrowv1.ListOffersRequest,
) (*escrowv1.ListOffersResponse, error) {
	address, err := parseAddress(req.Address)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	offers, err := h.escrowSvc.GetWantedOffers(ctx, address)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.ListOffersResponse{Offers: offersInfo(offers).toProto()}, nil
}

func (h *escrowHandler) GetLastOfferId(
	ctx context.Context, _ *escrowv1.GetLastOfferIdRequest,
) (*escrowv1.GetLastOfferIdResponse, error) {
	offerId, err := h.escrowSvc.GetLastOfferId(ctx)
	if err != nil {
		return nil, toStatusError(err)
	}
	return &escrowv1.GetLastOfferIdResponse{OfferId: uint64(offerId)}, nil
}

func getCaller(ctx context.Context) (domain.Address, error) {
	caller, ok := interceptor.GetCaller(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing caller")
	}
	return caller, nil
}
