package grpc

import (
	"context"
	"runtime/debug"
	"strings"
	"time"

	"github.com/dmitrijs2005/passvault/internal/common"
	pb "github.com/dmitrijs2005/passvault/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const (
	tokenKey    ctxKey = "token"
	usernameKey ctxKey = "username"
)

// publicMethods need no session.
var publicMethods = map[string]bool{
	pb.VaultService_Register_FullMethodName: true,
	pb.VaultService_Login_FullMethodName:    true,
	pb.VaultService_Ping_FullMethodName:     true,
}

// credentialsFromContext returns what credentialsInterceptor stored.
func credentialsFromContext(ctx context.Context) (token, username string) {
	token, _ = ctx.Value(tokenKey).(string)
	username, _ = ctx.Value(usernameKey).(string)
	return token, username
}

func firstValue(md metadata.MD, key string) string {
	if values := md.Get(key); len(values) > 0 {
		return strings.TrimSpace(values[0])
	}
	return ""
}

// credentialsInterceptor requires token and username metadata on every
// method outside publicMethods. The session itself is checked by the
// vault service.
func (s *GRPCServer) credentialsInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var token, username string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		token = strings.TrimPrefix(firstValue(md, common.AuthorizationMetadataKey), common.BearerPrefix)
		username = firstValue(md, common.UsernameMetadataKey)
	}
	if token == "" || username == "" {
		return nil, status.Error(codes.Unauthenticated, "missing credentials")
	}

	ctx = context.WithValue(ctx, tokenKey, token)
	ctx = context.WithValue(ctx, usernameKey, username)
	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.logger.Info(ctx, "rpc",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}

func (s *GRPCServer) recoveryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp any, err error) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error(ctx, "panic in rpc", "method", info.FullMethod, "panic", p, "stack", string(debug.Stack()))
			resp, err = nil, status.Error(codes.Internal, "internal error")
		}
	}()
	return handler(ctx, req)
}
