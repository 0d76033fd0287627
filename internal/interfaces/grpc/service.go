package grpcinterface

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/improbable-eng/grpc-web/go/grpcweb"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	escrowv1 "github.com/tdex-network/escrowd/api-spec/escrow/v1"
	"github.com/tdex-network/escrowd/internal/core/application/escrow"
	"github.com/tdex-network/escrowd/internal/core/application/ledger"
	"github.com/tdex-network/escrowd/internal/core/application/pubsub"
	interfaces "github.com/tdex-network/escrowd/internal/interfaces"
	grpchandler "github.com/tdex-network/escrowd/internal/interfaces/grpc/handler"
	"github.com/tdex-network/escrowd/internal/interfaces/grpc/interceptor"
	"github.com/tdex-network/escrowd/internal/interfaces/grpc/permissions"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"google.golang.org/grpc"
)

const shutdownTimeout = 5 * time.Second

type service struct {
	opts ServiceOpts

	escrowServer   *grpc.Server
	operatorServer *grpc.Server
	httpServers    []*http.Server
}

type ServiceOpts struct {
	EscrowAddress   string
	OperatorAddress string
	// MetricsAddress is optional, metrics are not exposed if empty.
	MetricsAddress string

	EscrowSvc *escrow.Service
	LedgerSvc *ledger.Service
	PubSubSvc *pubsub.Service
}

func (o ServiceOpts) validate() error {
	if len(o.EscrowAddress) <= 0 {
		return fmt.Errorf("missing escrow interface address")
	}
	if len(o.OperatorAddress) <= 0 {
		return fmt.Errorf("missing operator interface address")
	}
	if o.EscrowAddress == o.OperatorAddress {
		return fmt.Errorf("escrow and operator interfaces must listen on different addresses")
	}
	if o.EscrowSvc == nil {
		return fmt.Errorf("escrow app service must not be null")
	}
	if o.LedgerSvc == nil {
		return fmt.Errorf("ledger app service must not be null")
	}
	if o.PubSubSvc == nil {
		return fmt.Errorf("pubsub app service must not be null")
	}
	return nil
}

func NewService(opts ServiceOpts) (interfaces.Service, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("invalid opts: %s", err)
	}
	if err := permissions.Validate(); err != nil {
		return nil, fmt.Errorf("invalid permissions: %s", err)
	}
	return &service{opts: opts}, nil
}

func (s *service) Start() error {
	escrowHandler := grpchandler.NewEscrowHandler(s.opts.EscrowSvc)
	operatorHandler := grpchandler.NewOperatorHandler(
		s.opts.LedgerSvc, s.opts.PubSubSvc,
	)

	escrowServer := grpc.NewServer(
		interceptor.UnaryInterceptor(),
		interceptor.StreamInterceptor(),
	)
	operatorServer := grpc.NewServer(
		interceptor.UnaryInterceptor(),
		interceptor.StreamInterceptor(),
	)
	escrowv1.RegisterEscrowServiceServer(escrowServer, escrowHandler)
	escrowv1.RegisterOperatorServiceServer(operatorServer, operatorHandler)

	// Serve grpc and grpc-web multiplexed on the same port
	escrowHTTPServer, err := serveMux(s.opts.EscrowAddress, escrowServer)
	if err != nil {
		return err
	}
	log.Infof("escrow interface is listening on %s", s.opts.EscrowAddress)

	operatorHTTPServer, err := serveMux(s.opts.OperatorAddress, operatorServer)
	if err != nil {
		shutdown(escrowHTTPServer)
		return err
	}
	log.Infof("operator interface is listening on %s", s.opts.OperatorAddress)

	s.httpServers = []*http.Server{escrowHTTPServer, operatorHTTPServer}

	if len(s.opts.MetricsAddress) > 0 {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsServer, err := serve(s.opts.MetricsAddress, mux)
		if err != nil {
			shutdown(s.httpServers...)
			return err
		}
		s.httpServers = append(s.httpServers, metricsServer)
		log.Infof("metrics are exposed at %s/metrics", s.opts.MetricsAddress)
	}

	s.escrowServer = escrowServer
	s.operatorServer = operatorServer
	return nil
}

func (s *service) Stop() {
	if s.escrowServer == nil {
		return
	}
	shutdown(s.httpServers...)

	s.operatorServer.GracefulStop()
	log.Debug("disabled operator interface")

	s.escrowServer.GracefulStop()
	log.Debug("disabled escrow interface")
}

// serveMux serves grpc (over h2c) and grpc-web requests on the same address.
func serveMux(address string, grpcServer *grpc.Server) (*http.Server, error) {
	grpcWebServer := grpcweb.WrapServer(
		grpcServer,
		grpcweb.WithCorsForRegisteredEndpointsOnly(false),
		grpcweb.WithOriginFunc(func(origin string) bool { return true }),
	)

	handler := http.HandlerFunc(func(resp http.ResponseWriter, req *http.Request) {
		if isGrpcRequest(req) {
			grpcServer.ServeHTTP(resp, req)
			return
		}
		if isValidRequest(req) {
			grpcWebServer.ServeHTTP(resp, req)
			return
		}
		http.Error(resp, "unsupported request", http.StatusBadRequest)
	})

	return serve(address, h2c.NewHandler(handler, &http2.Server{}))
}

func serve(address string, handler http.Handler) (*http.Server, error) {
	lis, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	server := &http.Server{Handler: handler}
	go func() {
		if err := server.Serve(lis); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Errorf("server on %s stopped unexpectedly", address)
		}
	}()
	return server, nil
}

func shutdown(servers ...*http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, server := range servers {
		if err := server.Shutdown(ctx); err != nil {
			log.WithError(err).Warn("error while shutting down http server")
		}
	}
}

func isGrpcRequest(req *http.Request) bool {
	return req.ProtoMajor == 2 &&
		strings.HasPrefix(req.Header.Get("content-type"), "application/grpc") &&
		!isValidGrpcContentTypeHeader(req.Header.Get("content-type"))
}

func isValidRequest(req *http.Request) bool {
	return isValidGrpcWebOptionRequest(req) || isValidGrpcWebRequest(req)
}

func isValidGrpcWebRequest(req *http.Request) bool {
	return req.Method == http.MethodPost && isValidGrpcContentTypeHeader(req.Header.Get("content-type"))
}

func isValidGrpcContentTypeHeader(contentType string) bool {
	return strings.HasPrefix(contentType, "application/grpc-web-text") ||
		strings.HasPrefix(contentType, "application/grpc-web")
}

func isValidGrpcWebOptionRequest(req *http.Request) bool {
	accessControlHeader := req.Header.Get("Access-Control-Request-Headers")
	return req.Method == http.MethodOptions &&
		strings.Contains(accessControlHeader, "x-grpc-web") &&
		strings.Contains(accessControlHeader, "content-type")
}
