// Package grpc serves the cellarkeeper.v1.Cellar service over a store.Store.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/cellarkeeper/internal/logging"
	"github.com/dmitrijs2005/cellarkeeper/internal/metrics"
	pb "github.com/dmitrijs2005/cellarkeeper/internal/proto"
	"github.com/dmitrijs2005/cellarkeeper/internal/store"
)

// LabelSigner hands out presigned upload URLs for bottle label images.
type LabelSigner interface {
	UploadURL(ctx context.Context, bottleID string) (key, url string, err error)
}

type GRPCServer struct {
	pb.UnimplementedCellarServer

	address string
	store   store.Store
	labels  LabelSigner
	logger  logging.Logger
	metrics *metrics.RPC
}

// NewGRPCServer builds the server. labels may be nil, in which case
// LabelUploadURL answers Unavailable.
func NewGRPCServer(address string, l logging.Logger, st store.Store, labels LabelSigner, m *metrics.RPC) *GRPCServer {
	return &GRPCServer{
		address: address,
		store:   st,
		labels:  labels,
		logger:  l.With("module", "grpc_server"),
		metrics: m,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.observeInterceptor))
	pb.RegisterCellarServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	err := srv.Serve(lis)
	if ctx.Err() != nil {
		<-stopped
		return nil
	}
	return err
}
