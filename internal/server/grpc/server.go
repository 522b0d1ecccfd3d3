package grpc

import (
	"context"
	"net"

	"github.com/Kisalay21/familytree/internal/logging"
	pb "github.com/Kisalay21/familytree/internal/proto"
	"github.com/Kisalay21/familytree/internal/server/feed"
	"google.golang.org/grpc"
)

type GRPCServer struct {
	pb.UnimplementedFamilyFeedServer
	address string
	feed    *feed.Service
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, fs *feed.Service) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		feed:    fs,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor))

	// registers service
	pb.RegisterFamilyFeedServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
