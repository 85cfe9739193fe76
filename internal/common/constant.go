// Package common contains shared constants and sentinel errors used across
// passvault components.
package common

// AuthorizationHeaderName carries the session token on REST requests.
const AuthorizationHeaderName = "Authorization"

// UsernameHeaderName carries the claimed username on REST requests.
const UsernameHeaderName = "X-Username"

// gRPC metadata keys are always lower case.
const (
	AuthorizationMetadataKey = "authorization"
	UsernameMetadataKey      = "x-username"
)

// BearerPrefix is stripped from the Authorization value when present.
const BearerPrefix = "Bearer "
