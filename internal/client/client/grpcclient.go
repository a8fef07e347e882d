package client

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	pb "github.com/dmitrijs2005/notto/internal/proto"
	"github.com/dmitrijs2005/notto/internal/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const DefaultTimeout = 5 * time.Second

type GRPCClient struct {
	endpointURL string
	timeout     time.Duration
	conn        *grpc.ClientConn
	client      pb.NoteServiceClient
}

// withCredentials attaches the caller's username and bearer token to the
// outgoing metadata, replacing any previous values.
func withCredentials(ctx context.Context, username, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.UsernameHeaderName, username)
	md.Set(common.AccessTokenHeaderName, token)
	return metadata.NewOutgoingContext(ctx, md)
}

// timeoutInterceptor bounds every call that has no deadline of its own.
func (s *GRPCClient) timeoutInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if _, ok := ctx.Deadline(); !ok && s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

// NewGRPCClient prepares a lazy connection to endpointURL. No network I/O
// happens until the first call.
func NewGRPCClient(endpointURL string, timeout time.Duration, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, timeout: timeout}
	if err := c.init(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) init(extra ...grpc.DialOption) error {
	opts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.timeoutInterceptor),
	}, extra...)

	conn, err := grpc.NewClient(s.endpointURL, opts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewNoteServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return fmt.Errorf("%w: server status %q", common.ErrTransport, resp.GetStatus())
	}
	return nil
}

func (s *GRPCClient) CreateAccount(ctx context.Context, reg *models.Registration) error {
	if _, err := s.client.CreateAccount(ctx, toRegistration(reg)); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) LoginChallenge(ctx context.Context, username string, recovery bool) (*models.Challenge, error) {
	resp, err := s.client.LoginChallenge(ctx, &pb.LoginChallengeRequest{Username: username, Recovery: recovery})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromChallenge(resp)
}

func (s *GRPCClient) Login(ctx context.Context, username string, loginHash []byte, recovery bool) (*models.Grant, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, LoginHash: loginHash, Recovery: recovery})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromGrant(resp)
}

func (s *GRPCClient) ChangePassword(ctx context.Context, username, token string, cred *models.Credential, key *cryptox.WrappedKey) error {
	ctx = withCredentials(ctx, username, token)
	_, err := s.client.ChangePassword(ctx, &pb.ChangePasswordRequest{Password: toCredential(cred), PasswordKey: rpc.KeyToProto(key)})
	if err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) Logout(ctx context.Context, username, token string) error {
	ctx = withCredentials(ctx, username, token)
	if _, err := s.client.Logout(ctx, &pb.LogoutRequest{}); err != nil {
		return s.mapError(err)
	}
	return nil
}

func (s *GRPCClient) ListNotes(ctx context.Context, username, token string, since int64) ([]*models.RemoteNote, int64, error) {
	ctx = withCredentials(ctx, username, token)
	resp, err := s.client.ListNotes(ctx, &pb.ListNotesRequest{Since: since})
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	notes := make([]*models.RemoteNote, 0, len(resp.GetNotes()))
	for _, r := range resp.GetNotes() {
		notes = append(notes, fromRecord(r))
	}
	return notes, resp.GetWatermark(), nil
}

func (s *GRPCClient) PushNotes(ctx context.Context, username, token string, notes []*models.Note) ([]*models.PushVerdict, int64, error) {
	ctx = withCredentials(ctx, username, token)

	req := &pb.PushNotesRequest{Notes: make([]*pb.Record, 0, len(notes))}
	for _, n := range notes {
		req.Notes = append(req.Notes, toRecord(n))
	}

	resp, err := s.client.PushNotes(ctx, req)
	if err != nil {
		return nil, 0, s.mapError(err)
	}

	verdicts := make([]*models.PushVerdict, 0, len(resp.GetResults()))
	for _, r := range resp.GetResults() {
		verdicts = append(verdicts, fromResult(r))
	}
	return verdicts, resp.GetWatermark(), nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return common.ErrorUnauthorized
	case codes.PermissionDenied:
		return common.ErrInvalidToken
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", common.ErrTransport, st.Message())
	case codes.AlreadyExists:
		return common.ErrUserAlreadyExists
	case codes.NotFound:
		return common.ErrorNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
