// Package grpc exposes the Remote Record Service over gRPC as the
// NoteService defined in internal/proto.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/logging"
	pb "github.com/dmitrijs2005/notto/internal/proto"
	"github.com/dmitrijs2005/notto/internal/server/models"
	"github.com/dmitrijs2005/notto/internal/server/services"
	"google.golang.org/grpc"
)

// UserService is the account side the handlers depend on.
type UserService interface {
	CreateAccount(ctx context.Context, user *models.User) error
	LoginChallenge(ctx context.Context, username string, recovery bool) (*models.Credential, error)
	Login(ctx context.Context, username string, loginHash []byte, recovery bool) (*services.LoginResult, error)
	ChangePassword(ctx context.Context, id *models.Identity, cred models.Credential, key cryptox.WrappedKey) error
	Logout(ctx context.Context, id *models.Identity) error
	Authenticate(ctx context.Context, token, username string) (*models.Identity, error)
}

// NoteService is the record side the handlers depend on.
type NoteService interface {
	Push(ctx context.Context, userID string, items []*models.PushItem) ([]*models.PushResult, int64, error)
	Pull(ctx context.Context, userID string, since int64) ([]*models.Note, int64, error)
}

type GRPCServer struct {
	pb.UnimplementedNoteServiceServer
	address string
	users   UserService
	notes   NoteService
	logger  logging.Logger
}

var _ pb.NoteServiceServer = (*GRPCServer)(nil)

func NewGRPCServer(address string, l logging.Logger, us UserService, ns NoteService) *GRPCServer {
	return &GRPCServer{
		address: address,
		logger:  l.With("module", "grpc_server"),
		users:   us,
		notes:   ns,
	}
}

// NewServer builds a grpc.Server with the token interceptor and the
// NoteService registered.
func (s *GRPCServer) NewServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterNoteServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is done, then stops gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.NewServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
