package escrowv1

import (
	"context"

	"google.golang.org/grpc"
)

// OperatorServiceServer is the server API for the escrow.v1.OperatorService service.
type OperatorServiceServer interface {
	// FundAccount credits an account of the custody ledger.
	FundAccount(context.Context, *FundAccountRequest) (*FundAccountResponse, error)
	GetBalance(context.Context, *GetBalanceRequest) (*GetBalanceResponse, error)
	AddWebhook(context.Context, *AddWebhookRequest) (*AddWebhookResponse, error)
	RemoveWebhook(context.Context, *RemoveWebhookRequest) (*RemoveWebhookResponse, error)
	ListWebhooks(context.Context, *ListWebhooksRequest) (*ListWebhooksResponse, error)
}

func RegisterOperatorServiceServer(s grpc.ServiceRegistrar, srv OperatorServiceServer) {
	s.RegisterService(&OperatorService_ServiceDesc, srv)
}

func _OperatorService_FundAccount_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(FundAccountRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperatorServiceServer).FundAccount(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.OperatorService/FundAccount",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).FundAccount(ctx, req.(*FundAccountRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OperatorService_GetBalance_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(GetBalanceRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperatorServiceServer).GetBalance(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.OperatorService/GetBalance",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).GetBalance(ctx, req.(*GetBalanceRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OperatorService_AddWebhook_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(AddWebhookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperatorServiceServer).AddWebhook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.OperatorService/AddWebhook",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).AddWebhook(ctx, req.(*AddWebhookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OperatorService_RemoveWebhook_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(RemoveWebhookRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperatorServiceServer).RemoveWebhook(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.OperatorService/RemoveWebhook",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).RemoveWebhook(ctx, req.(*RemoveWebhookRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _OperatorService_ListWebhooks_Handler(
	srv interface{}, ctx context.Context, dec func(interface{}) error,
	interceptor grpc.UnaryServerInterceptor,
) (interface{}, error) {
	in := new(ListWebhooksRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(OperatorServiceServer).ListWebhooks(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/escrow.v1.OperatorService/ListWebhooks",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(OperatorServiceServer).ListWebhooks(ctx, req.(*ListWebhooksRequest))
	}
	return interceptor(ctx, in, info, handler)
}

var OperatorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "escrow.v1.OperatorService",
	HandlerType: (*OperatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "FundAccount", Handler: _OperatorService_FundAccount_Handler},
		{MethodName: "GetBalance", Handler: _OperatorService_GetBalance_Handler},
		{MethodName: "AddWebhook", Handler: _OperatorService_AddWebhook_Handler},
		{MethodName: "RemoveWebhook", Handler: _OperatorService_RemoveWebhook_Handler},
		{MethodName: "ListWebhooks", Handler: _OperatorService_ListWebhooks_Handler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "api-spec/escrow/v1",
}

// OperatorServiceClient is the client API for the escrow.v1.OperatorService service.
type OperatorServiceClient interface {
	FundAccount(ctx context.Context, in *FundAccountRequest, opts ...grpc.CallOption) (*FundAccountResponse, error)
	GetBalance(ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption) (*GetBalanceResponse, error)
	AddWebhook(ctx context.Context, in *AddWebhookRequest, opts ...grpc.CallOption) (*AddWebhookResponse, error)
	RemoveWebhook(ctx context.Context, in *RemoveWebhookRequest, opts ...grpc.CallOption) (*RemoveWebhookResponse, error)
	ListWebhooks(ctx context.Context, in *ListWebhooksRequest, opts ...grpc.CallOption) (*ListWebhooksResponse, error)
}

type operatorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOperatorServiceClient(cc grpc.ClientConnInterface) OperatorServiceClient {
	return &operatorServiceClient{cc}
}

func (c *operatorServiceClient) FundAccount(
	ctx context.Context, in *FundAccountRequest, opts ...grpc.CallOption,
) (*FundAccountResponse, error) {
	out := new(FundAccountResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.OperatorService/FundAccount", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operatorServiceClient) GetBalance(
	ctx context.Context, in *GetBalanceRequest, opts ...grpc.CallOption,
) (*GetBalanceResponse, error) {
	out := new(GetBalanceResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.OperatorService/GetBalance", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operatorServiceClient) AddWebhook(
	ctx context.Context, in *AddWebhookRequest, opts ...grpc.CallOption,
) (*AddWebhookResponse, error) {
	out := new(AddWebhookResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.OperatorService/AddWebhook", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operatorServiceClient) RemoveWebhook(
	ctx context.Context, in *RemoveWebhookRequest, opts ...grpc.CallOption,
) (*RemoveWebhookResponse, error) {
	out := new(RemoveWebhookResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.OperatorService/RemoveWebhook", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *operatorServiceClient) ListWebhooks(
	ctx context.Context, in *ListWebhooksRequest, opts ...grpc.CallOption,
) (*ListWebhooksResponse, error) {
	out := new(ListWebhooksResponse)
	opts = append([]grpc.CallOption{CallOption()}, opts...)
	if err := c.cc.Invoke(ctx, "/escrow.v1.OperatorService/ListWebhooks", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
