package grpc

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/passvault/internal/common"
	"github.com/dmitrijs2005/passvault/internal/logging"
	pb "github.com/dmitrijs2005/passvault/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

func newTestGRPCServer() *GRPCServer {
	return NewGRPCServer("127.0.0.1:0", logging.Nop{}, nil)
}

func TestCredentialsInterceptor_PublicMethodsPassThrough(t *testing.T) {
	s := newTestGRPCServer()

	for _, m := range []string{pb.VaultService_Register_FullMethodName, pb.VaultService_Login_FullMethodName, pb.VaultService_Ping_FullMethodName} {
		called := false
		h := func(ctx context.Context, req any) (any, error) {
			called = true
			return "ok", nil
		}
		resp, err := s.credentialsInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: m}, h)
		require.NoError(t, err, m)
		assert.True(t, called, m)
		assert.Equal(t, "ok", resp)
	}
}

func TestCredentialsInterceptor_MissingCredentials(t *testing.T) {
	s := newTestGRPCServer()
	info := &grpc.UnaryServerInfo{FullMethod: pb.VaultService_ListPasswords_FullMethodName}
	h := func(ctx context.Context, req any) (any, error) {
		t.Fatal("handler should not be called without credentials")
		return nil, nil
	}

	cases := []context.Context{
		context.Background(),
		metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.AuthorizationMetadataKey, "tok")),
		metadata.NewIncomingContext(context.Background(), metadata.Pairs(common.UsernameMetadataKey, "alice")),
	}
	for _, ctx := range cases {
		_, err := s.credentialsInterceptor(ctx, nil, info, h)
		assert.Equal(t, codes.Unauthenticated, status.Code(err))
	}
}

func TestCredentialsInterceptor_StoresCredentials(t *testing.T) {
	s := newTestGRPCServer()
	md := metadata.Pairs(
		common.AuthorizationMetadataKey, "Bearer tok",
		common.UsernameMetadataKey, "alice",
	)
	ctx := metadata.NewIncomingContext(context.Background(), md)

	var gotToken, gotUser string
	h := func(ctx context.Context, req any) (any, error) {
		gotToken, gotUser = credentialsFromContext(ctx)
		return nil, nil
	}

	_, err := s.credentialsInterceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: pb.VaultService_AddPassword_FullMethodName}, h)
	require.NoError(t, err)
	assert.Equal(t, "tok", gotToken)
	assert.Equal(t, "alice", gotUser)
}

func TestRecoveryInterceptor(t *testing.T) {
	s := newTestGRPCServer()
	h := func(ctx context.Context, req any) (any, error) { panic("boom") }

	resp, err := s.recoveryInterceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: pb.VaultService_Ping_FullMethodName}, h)
	assert.Nil(t, resp)
	assert.Equal(t, codes.Internal, status.Code(err))
}
