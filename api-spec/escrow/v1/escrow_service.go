package escrowv1

import (
	"context"

	"google.golang.org/grpc"
)

// CallerMetadataKey is the metadata key carrying the address of the caller
// of an EscrowService write method.
const CallerMetadataKey = "x-escrow-caller"

// EscrowServiceServer is the server API for the escrow.v1.EscrowService service.
type EscrowServiceServer interface {
	// CreateOffer deposits the offered payment and opens a new offer.
	CreateOffer(context.Context, *CreateOfferRequest) (*CreateOfferResponse, error)
	// AcceptOffer settles an offer against the counterparty's deposit.
	AcceptOffer(context.Context, *AcceptOfferRequest) (*AcceptOfferResponse, error)
	// CancelOffer refunds the creator and removes the offer.
	CancelOffer(context.Context, *CancelOfferRequest) (*CancelOfferResponse, error)
	GetOffer(context.Context, *GetOfferRequest) (*GetOfferResponse, error)
	GetCreatedOffers(context.Context, *ListOffersRequest) (*ListOffersResponse, error)
	GetWantedOffers(context.Context, *ListOffersRequest) (*ListOffersResponse, error)
	GetLastOfferId(context.Context, *GetLastOfferIdRequest) (*GetLastOfferIdResponse, error)
}

func RegisterEscrowServiceServer(s grpc.ServiceRegistrar, srv EscrowServiceServer) {
	s.RegisterService(&EscrowService_ServiceDesc, srv)
}

func _EscrowService_CreateOffer_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(CreateOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).CreateOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.EscrowService/CreateOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).CreateOffer(ctx, req.(*CreateOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EscrowService_AcceptOffer_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(AcceptOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).AcceptOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.EscrowService/AcceptOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).AcceptOffer(ctx, req.(*AcceptOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EscrowService_CancelOffer_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(CancelOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).CancelOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.EscrowService/CancelOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).CancelOffer(ctx, req.(*CancelOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EscrowService_GetOffer_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(GetOfferRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).GetOffer(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.EscrowService/GetOffer",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).GetOffer(ctx, req.(*GetOfferRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EscrowService_GetCreatedOffers_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(ListOffersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).GetCreatedOffers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.EscrowService/GetCreatedOffers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).GetCreatedOffers(ctx, req.(*ListOffersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EscrowService_GetWantedOffers_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(ListOffersRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).GetWantedOffers(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.EscrowService/GetWantedOffers",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).GetWantedOffers(ctx, req.(*ListOffersRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _EscrowService_GetLastOfferId_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(GetLastOfferIdRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(EscrowServiceServer).GetLastOfferId(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.EscrowService/GetLastOfferId",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(EscrowServiceServer).GetLastOfferId(ctx, req.(*GetLastOfferIdRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var EscrowService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "escrow.v1.EscrowService",
	HandlerType: (*EscrowServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "CreateOffer", Handler: _EscrowService_CreateOffer_Handler},
		{MethodName: "AcceptOffer", Handler: _EscrowService_AcceptOffer_Handler},
		{MethodName: "CancelOffer", Handler: _EscrowService_CancelOffer_Handler},
		{MethodName: "GetOffer", Handler: _EscrowService_GetOffer_Handler},
		{MethodName: "GetCreatedOffers", Handler: _EscrowService_GetCreatedOffers_Handler},
		{MethodName: "GetWantedOffers", Handler: _EscrowService_GetWantedOffers_Handler},
		{MethodName: "GetLastOfferId", Handler: _EscrowService_GetLastOfferId_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api-spec/escrow/v1",
}

// EscrowServiceClient is the client API for the escrow.v1.EscrowService service.
type EscrowServiceClient interface {
	CreateOffer(ctx context.Context, in *CreateOfferRequest, opts ...grpc.CallOption) (*CreateOfferResponse, error)
	AcceptOffer(ctx context.Context, in *AcceptOfferRequest, opts ...grpc.CallOption) (*AcceptOfferResponse, error)
	CancelOffer(ctx context.Context, in *CancelOfferRequest, opts ...grpc.CallOption) (*CancelOfferResponse, error)
	GetOffer(ctx context.Context, in *GetOfferRequest, opts ...grpc.CallOption) (*GetOfferResponse, error)
	GetCreatedOffers(ctx context.Context, in *ListOffersRequest, opts ...grpc.CallOption) (*ListOffersResponse, error)
	GetWantedOffers(ctx context.Context, in *ListOffersRequest, opts ...grpc.CallOption) (*ListOffersResponse, error)
	GetLastOfferId(ctx context.Context, in *GetLastOfferIdRequest, opts ...grpc.CallOption) (*GetLastOfferIdResponse, error)
}

type escrowServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewEscrowServiceClient(cc grpc.ClientConnInterface) EscrowServiceClient {
	return &escrowServiceClient{cc}
}

func (c *escrowServiceClient) CreateOffer(
	ctx context.Context, in *CreateOfferRequest, opts ...grpc.CallOption,
) (*CreateOfferResponse, error) {
	out := new(CreateOfferResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.EscrowService/CreateOffer", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) AcceptOffer(
	ctx context.Context, in *AcceptOfferRequest, opts ...grpc.CallOption,
) (*AcceptOfferResponse, error) {
	out := new(AcceptOfferResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.EscrowService/AcceptOffer", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) CancelOffer(
	ctx context.Context, in *CancelOfferRequest, opts ...grpc.CallOption,
) (*CancelOfferResponse, error) {
	out := new(CancelOfferResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.EscrowService/CancelOffer", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetOffer(
	ctx context.Context, in *GetOfferRequest, opts ...grpc.CallOption,
) (*GetOfferResponse, error) {
	out := new(GetOfferResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.EscrowService/GetOffer", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetCreatedOffers(
	ctx context.Context, in *ListOffersRequest, opts ...grpc.CallOption,
) (*ListOffersResponse, error) {
	out := new(ListOffersResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.EscrowService/GetCreatedOffers", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetWantedOffers(
	ctx context.Context, in *ListOffersRequest, opts ...grpc.CallOption,
) (*ListOffersResponse, error) {
	out := new(ListOffersResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.EscrowService/GetWantedOffers", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *escrowServiceClient) GetLastOfferId(
	ctx context.Context, in *GetLastOfferIdRequest, opts ...grpc.CallOption,
) (*GetLastOfferIdResponse, error) {
	out := new(GetLastOfferIdResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.EscrowService/GetLastOfferId", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
