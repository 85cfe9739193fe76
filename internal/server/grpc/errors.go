package grpc

import (
	"errors"

	"github.com/dmitrijs2005/passvault/internal/common"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// toStatus maps service errors onto gRPC status codes.
func toStatus(err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "username already exists")
	case errors.Is(err, common.ErrorInvalidCredentials):
		return status.Error(codes.Unauthenticated, "invalid credentials")
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "password not found")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}
