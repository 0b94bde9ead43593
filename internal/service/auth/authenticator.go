package auth

import (
	"context"
	"crypto/subtle"
)

// StaticAuthenticator checks credentials against a single configured
// admin account. The one-chair shop has exactly one admin; replace
// this with a user store when that stops being true.
type StaticAuthenticator struct {
	username    string
	password    string
	displayName string
}

// NewStaticAuthenticator creates an authenticator for the configured account.
func NewStaticAuthenticator(username, password, displayName string) *StaticAuthenticator {
	return &StaticAuthenticator{
		username:    username,
		password:    password,
		displayName: displayName,
	}
}

// Authenticate verifies the credentials in constant time.
func (a *StaticAuthenticator) Authenticate(_ context.Context, username, password string) (string, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(a.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(a.password)) == 1

	if !userOK || !passOK {
		return "", ErrInvalidCredentials
	}

	return a.displayName, nil
}
