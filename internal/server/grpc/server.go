// Package grpc exposes the vault service over gRPC using the generated
// contract in internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/passvault/internal/logging"
	pb "github.com/dmitrijs2005/passvault/internal/proto"
	"github.com/dmitrijs2005/passvault/internal/server/models"
	"google.golang.org/grpc"
)

// VaultService is what the handlers need from services.VaultService.
type VaultService interface {
	Register(ctx context.Context, username, password string) (*models.Session, error)
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Logout(ctx context.Context, token, username string) error
	ListPasswords(ctx context.Context, token, username string) ([]models.Record, error)
	SearchPasswords(ctx context.Context, token, username, site string) ([]models.Record, error)
	AddPassword(ctx context.Context, token, username string, fields models.RecordFields) (*models.Record, error)
	UpdatePassword(ctx context.Context, token, username, id string, patch models.RecordPatch) (*models.Record, error)
	DeletePassword(ctx context.Context, token, username, id string) error
}

type GRPCServer struct {
	pb.UnimplementedVaultServiceServer
	address string
	vault   VaultService
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, vs VaultService) *GRPCServer {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "grpc_server"),
		vault:   vs,
	}
}

// NewServer builds a grpc.Server with the interceptor chain and the vault
// service registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(
		s.recoveryInterceptor,
		s.loggingInterceptor,
		s.credentialsInterceptor,
	))
	pb.RegisterVaultServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on listen until ctx is canceled.
func (s *GRPCServer) Serve(ctx context.Context, listen net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", listen.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
