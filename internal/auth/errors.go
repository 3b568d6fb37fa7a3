package auth

import "errors"

// Sentinel errors for the authentication flow. Everything here maps to a 401
// at the HTTP boundary; any other error out of this package is unexpected and
// maps to a 500.
var (
	// ErrInvalidCredentials is returned by Login for an unknown username or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNoToken is returned when a request carries no bearer credential.
	ErrNoToken = errors.New("missing bearer token")

	// ErrInvalidToken is returned for malformed tokens and bad signatures.
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired is returned for tokens past their embedded expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrStaleUser is returned when a valid token names a user that no longer
	// exists in the credential store.
	ErrStaleUser = errors.New("token subject no longer exists")
)
