package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/notto/internal/client/client"
	clientmodels "github.com/dmitrijs2005/notto/internal/client/models"
	"github.com/dmitrijs2005/notto/internal/common"
	"github.com/dmitrijs2005/notto/internal/cryptox"
	"github.com/dmitrijs2005/notto/internal/logging"
	pb "github.com/dmitrijs2005/notto/internal/proto"
	"github.com/dmitrijs2005/notto/internal/rpc"
	"github.com/dmitrijs2005/notto/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

type harness struct {
	users  *fakeUsers
	notes  *fakeNotes
	client pb.NoteServiceClient
	dialer func(context.Context, string) (net.Conn, error)
}

func startServer(t *testing.T) *harness {
	t.Helper()
	h := &harness{users: &fakeUsers{}, notes: &fakeNotes{}}

	lis := bufconn.Listen(1 << 20)
	srv := NewGRPCServer("bufnet", logging.NewNopLogger(), h.users, h.notes)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	h.dialer = func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }
	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(h.dialer),
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	h.client = pb.NewNoteServiceClient(conn)
	return h
}

func authed(user, token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(),
		common.UsernameHeaderName, user,
		common.AccessTokenHeaderName, token)
}

func TestPing(t *testing.T) {
	h := startServer(t)

	resp, err := h.client.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestCreateAccount(t *testing.T) {
	h := startServer(t)

	resp, err := h.client.CreateAccount(context.Background(), &pb.CreateAccountRequest{
		Username: "alice",
		Password: &pb.Credential{Salt: []byte("s"), StoredHash: []byte("h")},
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	require.Len(t, h.users.created, 1)
	assert.Equal(t, []byte("h"), h.users.created[0].Password.StoredHash)

	h.users.createErr = common.ErrUserAlreadyExists
	_, err = h.client.CreateAccount(context.Background(), &pb.CreateAccountRequest{Username: "alice"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	h.users.createErr = common.ErrInvalidArgument
	_, err = h.client.CreateAccount(context.Background(), &pb.CreateAccountRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestCreateAccount_MalformedParams(t *testing.T) {
	h := startServer(t)

	_, err := h.client.CreateAccount(context.Background(), &pb.CreateAccountRequest{
		Username: "alice",
		Recovery: &pb.Credential{Params: &pb.KDFParams{Memory: 64, Iterations: 1, Parallelism: 512}},
	})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, status.Convert(err).Message(), "recovery")
	assert.Empty(t, h.users.created, "nothing reaches the service")
}

func TestLoginHandshake(t *testing.T) {
	h := startServer(t)

	ch, err := h.client.LoginChallenge(context.Background(), &pb.LoginChallengeRequest{Username: "alice", Recovery: true})
	require.NoError(t, err)
	assert.Equal(t, []byte("recovery-salt-16"), ch.GetSalt())
	params, err := rpc.ParamsFromProto(ch.GetParams())
	require.NoError(t, err)
	assert.Equal(t, cryptox.DefaultKDFParams(), params)

	resp, err := h.client.Login(context.Background(), &pb.LoginRequest{Username: "alice", LoginHash: []byte("hash")})
	require.NoError(t, err)
	assert.Equal(t, "good", resp.GetToken())
	assert.Equal(t, []byte("wrapped"), resp.GetKey().GetCiphertext())

	_, err = h.client.Login(context.Background(), &pb.LoginRequest{Username: "alice", LoginHash: []byte("nope")})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestProtectedMethods_RequireToken(t *testing.T) {
	h := startServer(t)

	_, err := h.client.ListNotes(context.Background(), &pb.ListNotesRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = h.client.PushNotes(authed("alice", "forged"), &pb.PushNotesRequest{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	_, err = h.client.ListNotes(authed("mallory", "good"), &pb.ListNotesRequest{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	h.users.authErr = common.ErrTokenExpired
	_, err = h.client.Logout(authed("alice", "good"), &pb.LogoutRequest{})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	assert.Empty(t, h.users.loggedOut)
	assert.Nil(t, h.notes.pushed)
}

func TestListNotes(t *testing.T) {
	h := startServer(t)
	h.notes.stored = []*models.Note{
		{ID: 1, Ciphertext: []byte("c1"), Nonce: []byte("n1"), Timestamp: 100, Revision: 6},
		{ID: 2, Ciphertext: []byte("c2"), Nonce: []byte("n2"), Timestamp: 110, Deleted: true, Revision: 7},
	}

	resp, err := h.client.ListNotes(authed("alice", "good"), &pb.ListNotesRequest{Since: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(5), h.notes.since)
	assert.Equal(t, int64(7), resp.Watermark)
	require.Len(t, resp.Notes, 2)
	assert.Equal(t, int64(1), resp.Notes[0].GetServerId())
	assert.True(t, resp.Notes[1].GetDeleted())
}

func TestPushNotes(t *testing.T) {
	h := startServer(t)

	resp, err := h.client.PushNotes(authed("alice", "good"), &pb.PushNotesRequest{Notes: []*pb.Record{
		{ClientId: 1, Ciphertext: []byte("new"), Nonce: []byte("n"), Timestamp: 100},
		{ClientId: 2, ServerId: 99, Ciphertext: []byte("old"), Nonce: []byte("n"), Timestamp: 50},
	}})
	require.NoError(t, err)

	assert.Equal(t, "u-alice", h.notes.pushedFor)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, rpc.PushStatusOK, resp.Results[0].GetStatus())
	assert.Equal(t, int64(10), resp.Results[0].GetServerId())
	assert.Equal(t, rpc.PushStatusConflict, resp.Results[1].GetStatus())
	require.NotNil(t, resp.Results[1].GetCurrent())
	assert.Equal(t, []byte("theirs"), resp.Results[1].GetCurrent().GetCiphertext())
	assert.Equal(t, int64(6), resp.Watermark)

	h.notes.pushErr = assert.AnError
	_, err = h.client.PushNotes(authed("alice", "good"), &pb.PushNotesRequest{})
	assert.Equal(t, codes.Internal, status.Code(err))
}

func TestChangePasswordAndLogout(t *testing.T) {
	h := startServer(t)

	_, err := h.client.ChangePassword(authed("alice", "good"), &pb.ChangePasswordRequest{
		Password: &pb.Credential{StoredHash: []byte("new-hash")},
	})
	require.NoError(t, err)
	require.NotNil(t, h.users.changed)
	assert.Equal(t, []byte("new-hash"), h.users.changed.StoredHash)

	_, err = h.client.Logout(authed("alice", "good"), &pb.LogoutRequest{})
	require.NoError(t, err)
	assert.Equal(t, []string{"s-1"}, h.users.loggedOut)
}

// The notto client must see the server's codes as its own sentinels.
func TestClientCompatibility(t *testing.T) {
	h := startServer(t)

	c, err := client.NewGRPCClient("passthrough:///bufnet", time.Second, grpc.WithContextDialer(h.dialer))
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })

	require.NoError(t, c.Ping(context.Background()))

	_, err = c.Login(context.Background(), "alice", []byte("bad"), false)
	assert.ErrorIs(t, err, common.ErrorUnauthorized)

	_, _, err = c.ListNotes(context.Background(), "alice", "forged", 0)
	assert.ErrorIs(t, err, common.ErrInvalidToken)

	verdicts, wm, err := c.PushNotes(context.Background(), "alice", "good", []*clientmodels.Note{
		{ID: 3, Ciphertext: []byte("x"), Nonce: []byte("n"), Timestamp: 1},
	})
	require.NoError(t, err)
	require.Len(t, verdicts, 1)
	assert.Equal(t, int64(3), verdicts[0].ClientID)
	assert.Equal(t, int64(5), wm)
}
