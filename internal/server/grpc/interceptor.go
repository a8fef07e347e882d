package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/notto/internal/common"
	pb "github.com/dmitrijs2005/notto/internal/proto"
	"github.com/dmitrijs2005/notto/internal/server/models"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const identityKey ctxKey = "identity"

// publicMethods are callable without a token.
var publicMethods = map[string]bool{
	pb.NoteService_Ping_FullMethodName:           true,
	pb.NoteService_CreateAccount_FullMethodName:  true,
	pb.NoteService_LoginChallenge_FullMethodName: true,
	pb.NoteService_Login_FullMethodName:          true,
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return values[0]
	}
	return ""
}

// accessTokenInterceptor verifies the bearer token against the username
// named in metadata on every non-public call. A missing token is
// Unauthenticated; a token that is invalid, expired, revoked or issued to
// another user is PermissionDenied.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken, username string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		accessToken = firstValue(md, common.AccessTokenHeaderName)
		username = firstValue(md, common.UsernameHeaderName)
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	id, err := s.users.Authenticate(ctx, accessToken, username)
	if err != nil {
		if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.PermissionDenied, err.Error())
		}
		s.logger.Error(ctx, "token check failed", "error", err)
		return nil, status.Error(codes.Internal, "internal error")
	}

	ctx = context.WithValue(ctx, identityKey, id)
	return handler(ctx, req)
}

// loggingInterceptor records method, outcome code and latency.
func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Debug(ctx, "rpc", "method", info.FullMethod, "code", status.Code(err).String(), "duration", time.Since(start))
	return resp, err
}

// identityFrom returns the caller resolved by accessTokenInterceptor.
func identityFrom(ctx context.Context) (*models.Identity, error) {
	id, ok := ctx.Value(identityKey).(*models.Identity)
	if !ok || id == nil {
		return nil, status.Error(codes.Unauthenticated, "missing identity")
	}
	return id, nil
}
