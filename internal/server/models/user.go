// Package models defines the server-side data types shared by the stores,
// the vault service and the transports.
package models

import "time"

// User is an account. Digest is the output of the configured hasher and is
// never mutated after registration.
type User struct {
	UserName  string
	Digest    string
	CreatedAt time.Time
}
