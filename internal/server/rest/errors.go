package rest

import (
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/passvault/internal/common"
)

// statusFor maps a service error onto an HTTP status and the message shown
// to the client. Internal details never reach the response.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return http.StatusBadRequest, validationMessage(err)
	case errors.Is(err, common.ErrorAlreadyExists):
		return http.StatusBadRequest, "Username already exists"
	case errors.Is(err, common.ErrorInvalidCredentials):
		return http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, common.ErrorUnauthorized):
		return http.StatusUnauthorized, "Unauthorized"
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound, "Password not found"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}

// validationMessage drops the sentinel prefix, leaving the field detail.
func validationMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, common.ErrorValidation.Error()+": "); ok && rest != "" {
		return rest
	}
	return msg
}
