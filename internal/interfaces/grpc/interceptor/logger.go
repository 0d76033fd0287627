package interceptor

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func unaryLogger(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	res, err := handler(ctx, req)

	entry := log.WithFields(log.Fields{
		"method":  info.FullMethod,
		"elapsed": time.Since(start).String(),
	})
	if err != nil {
		st := status.Convert(err)
		entry.WithField("code", st.Code().String()).Debugf(
			"request failed: %s", st.Message(),
		)
		return res, err
	}
	entry.Debug("request served")
	return res, err
}

func streamLogger(
	srv interface{},
	stream grpc.ServerStream,
	info *grpc.StreamServerInfo,
	handler grpc.StreamHandler,
) error {
	log.WithField("method", info.FullMethod).Debug("stream opened")
	return handler(srv, stream)
}
