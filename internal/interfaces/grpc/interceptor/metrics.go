package interceptor

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

var (
	rpcHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "escrowd",
		Subsystem: "grpc",
		Name:      "handled_total",
		Help:      "Number of RPCs completed, by method and status code.",
	}, []string{"method", "code"})
	rpcDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "escrowd",
		Subsystem: "grpc",
		Name:      "handling_seconds",
		Help:      "Time spent handling RPCs, by method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method"})
)

func unaryMetrics(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {
	start := time.Now()
	res, err := handler(ctx, req)

	rpcDuration.WithLabelValues(info.FullMethod).Observe(
		time.Since(start).Seconds(),
	)
	rpcHandled.WithLabelValues(
		info.FullMethod, status.Code(err).String(),
	).Inc()
	return res, err
}
