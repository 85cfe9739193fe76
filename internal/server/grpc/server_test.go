package grpc

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/logging"
	pb "github.com/dmitrijs2005/passvault/internal/proto"
	"github.com/dmitrijs2005/passvault/internal/server/auth"
	"github.com/dmitrijs2005/passvault/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/passvault/internal/server/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func strPtr(s string) *string { return &s }

func withCreds(ctx context.Context, token, username string) context.Context {
	return metadata.AppendToOutgoingContext(ctx,
		common.AuthorizationMetadataKey, token,
		common.UsernameMetadataKey, username,
	)
}

// startBufconn serves a real vault service over an in-memory listener.
func startBufconn(t *testing.T) pb.VaultServiceClient {
	t.Helper()

	rm := repomanager.NewInMemoryRepositoryManager(auth.OpaqueTokenGenerator{}, 0)
	svc := services.NewVaultService(rm, auth.SHA256Hasher{}, logging.Nop{}, nil)
	s := NewGRPCServer("bufnet", logging.Nop{}, svc)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = conn.Close()
		cancel()
		<-done
	})
	return pb.NewVaultServiceClient(conn)
}

func TestPing(t *testing.T) {
	c := startBufconn(t)
	resp, err := c.Ping(context.Background(), &pb.PingRequest{})
	require.NoError(t, err)
	assert.Equal(t, "OK", resp.Status)
}

func TestProtectedWithoutCredentials(t *testing.T) {
	c := startBufconn(t)
	_, err := c.ListPasswords(context.Background(), &pb.ListPasswordsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestErrorCodesOverTheWire(t *testing.T) {
	c := startBufconn(t)
	ctx := context.Background()

	_, err := c.Register(ctx, &pb.CredentialsRequest{Username: "", Password: "x"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	sess, err := c.Register(ctx, &pb.CredentialsRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	_, err = c.Register(ctx, &pb.CredentialsRequest{Username: "alice", Password: "pw"})
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = c.Login(ctx, &pb.CredentialsRequest{Username: "alice", Password: "bad"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := withCreds(ctx, sess.SessionToken, "alice")
	_, err = c.DeletePassword(authed, &pb.DeletePasswordRequest{Id: "missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	wrongUser := withCreds(ctx, sess.SessionToken, "bob")
	_, err = c.ListPasswords(wrongUser, &pb.ListPasswordsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestEndToEnd_Alice(t *testing.T) {
	c := startBufconn(t)
	ctx := context.Background()

	t1, err := c.Register(ctx, &pb.CredentialsRequest{Username: "alice", Password: "Secr3t!"})
	require.NoError(t, err)
	t2, err := c.Login(ctx, &pb.CredentialsRequest{Username: "alice", Password: "Secr3t!"})
	require.NoError(t, err)
	require.NotEqual(t, t1.SessionToken, t2.SessionToken)

	_, err = c.ListPasswords(withCreds(ctx, t1.SessionToken, "alice"), &pb.ListPasswordsRequest{})
	require.Equal(t, codes.Unauthenticated, status.Code(err))

	authed := withCreds(ctx, t2.SessionToken, "alice")

	added, err := c.AddPassword(authed, &pb.AddPasswordRequest{Site: "Gmail", Password: "pw1"})
	require.NoError(t, err)
	r1 := added.GetPassword().GetId()
	require.NotEmpty(t, r1)

	list, err := c.ListPasswords(authed, &pb.ListPasswordsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Passwords, 1)
	assert.Equal(t, r1, list.Passwords[0].GetId())
	assert.False(t, list.Passwords[0].GetCreatedAt().AsTime().IsZero())

	upd, err := c.UpdatePassword(authed, &pb.UpdatePasswordRequest{Id: r1, Password: strPtr("pw2")})
	require.NoError(t, err)
	assert.Equal(t, "pw2", upd.GetPassword().GetPassword())
	assert.Equal(t, "Gmail", upd.GetPassword().GetSite())

	found, err := c.SearchPasswords(authed, &pb.SearchPasswordsRequest{Site: "gmail"})
	require.NoError(t, err)
	assert.Len(t, found.Passwords, 1)

	_, err = c.DeletePassword(authed, &pb.DeletePasswordRequest{Id: r1})
	require.NoError(t, err)

	list, err = c.ListPasswords(authed, &pb.ListPasswordsRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Passwords)

	_, err = c.Logout(authed, &pb.LogoutRequest{})
	require.NoError(t, err)
	_, err = c.ListPasswords(authed, &pb.ListPasswordsRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s := NewGRPCServer("127.0.0.1:0", logging.Nop{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	s := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, nil)
	assert.Error(t, s.Run(context.Background()))
}

func TestUpdatePassword_OptionalFieldPresence(t *testing.T) {
	c := startBufconn(t)
	ctx := context.Background()

	sess, err := c.Register(ctx, &pb.CredentialsRequest{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	authed := withCreds(ctx, sess.GetSessionToken(), "alice")

	added, err := c.AddPassword(authed, &pb.AddPasswordRequest{
		Site: "Gmail", Username: "a@b.c", Password: "pw1", Category: "Email", Notes: "personal",
	})
	require.NoError(t, err)

	// notes present but empty clears it; absent fields stay as they were
	upd, err := c.UpdatePassword(authed, &pb.UpdatePasswordRequest{
		Id:    added.GetPassword().GetId(),
		Notes: strPtr(""),
	})
	require.NoError(t, err)

	got := upd.GetPassword()
	assert.Equal(t, "", got.GetNotes())
	assert.Equal(t, "Gmail", got.GetSite())
	assert.Equal(t, "a@b.c", got.GetUsername())
	assert.Equal(t, "pw1", got.GetPassword())
	assert.Equal(t, "Email", got.GetCategory())
}
