package interceptor

import (
	middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"google.golang.org/grpc"
)

// UnaryInterceptor chains, in order, request logging, prometheus metrics and
// the resolution of the caller address for methods acting on its behalf.
// Requests rejected by the caller check are still logged and counted.
func UnaryInterceptor() grpc.ServerOption {
	return grpc.UnaryInterceptor(
		middleware.ChainUnaryServer(
			unaryLogger,
			unaryMetrics,
			unaryCallerHandler,
		),
	)
}

// StreamInterceptor only logs. None of the escrow services stream.
func StreamInterceptor() grpc.ServerOption {
	return grpc.StreamInterceptor(
		middleware.ChainStreamServer(
			streamLogger,
		),
	)
}
