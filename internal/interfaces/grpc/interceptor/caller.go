package interceptor

import (
	"context"
	"strings"

	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
	"github.com/tdex-network/escrowd/internal/core/domain"
	"github.com/tdex-network/escrowd/internal/interfaces/grpc/permissions"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type callerKey struct{}

var permissionMap = permissions.AllPermissionsByMethod()

// GetCaller returns the address of the account on whose behalf the request
// is made.
func GetCaller(ctx context.Context) (domain.Address, bool) {
	caller, ok := ctx.Value(callerKey{}).(domain.Address)
	return caller, ok
}

// WithCaller returns a copy of ctx bound to the given caller.
func WithCaller(ctx context.Context, caller domain.Address) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

func unaryCallerHandler(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	ops, ok := permissionMap[info.FullMethod]
	if !ok {
		return nil, status.Errorf(
			codes.Unimplemented,
			"%s: unknown permissions required for method", info.FullMethod,
		)
	}

	if ops[0].RequiresCaller() {
		caller, err := callerFromMetadata(ctx)
		if err != nil {
			return nil, err
		}
		ctx = WithCaller(ctx, caller)
	}

	return handler(ctx, req)
}

func callerFromMetadata(ctx context.Context) (domain.Address, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", status.Error(codes.Unauthenticated, "missing metadata")
	}
	values := md.Get(escrowv1.CallerMetadataKey)
	if len(values) != 1 || len(strings.TrimSpace(values[0])) <= 0 {
		return "", status.Errorf(
			codes.Unauthenticated, "missing or invalid %s metadata",
			escrowv1.CallerMetadataKey,
		)
	}
	return domain.Address(values[0]), nil
}
