package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/cellarkeeper/internal/rpc"
)

func clientIDFrom(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(rpc.ClientIDHeader); len(values) > 0 {
			return values[0]
		}
	}
	return ""
}

// observeInterceptor logs every call with the calling client id and records
// its status code and latency.
func (s *GRPCServer) observeInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	elapsed := time.Since(start)

	code := status.Code(err)
	s.metrics.Observe(info.FullMethod, code.String(), elapsed)

	args := []any{"method", info.FullMethod, "code", code.String(), "duration", elapsed, "client", clientIDFrom(ctx)}
	if err != nil {
		s.logger.Warn(ctx, "request failed", append(args, "error", err)...)
	} else {
		s.logger.Debug(ctx, "request", args...)
	}
	return resp, err
}
