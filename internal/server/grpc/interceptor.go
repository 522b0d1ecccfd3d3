package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
)

// loggingInterceptor records every unary call with its duration and outcome.
func (s *GRPCServer) loggingInterceptor(
	ctx context.Context,
	req interface{},
	info *grpc.UnaryServerInfo,
	handler grpc.UnaryHandler,
) (interface{}, error) {

	start := time.Now()

	resp, err := handler(ctx, req)

	if err != nil {
		s.logger.Error(ctx, "rpc failed", "method", info.FullMethod, "duration", time.Since(start).String(), "error", err.Error())
	} else {
		s.logger.Info(ctx, "rpc", "method", info.FullMethod, "duration", time.Since(start).String())
	}

	return resp, err
}
