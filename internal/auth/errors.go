package auth

import "errors"

// Sentinel errors returned by the auth core. Handlers translate these
// into HTTP statuses; the messages stay deliberately generic so nothing
// about the underlying cause leaks to the client.
var (
	// ErrEmailTaken signals a registration attempt with an address that
	// already has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned for both an unknown email and a
	// wrong password. Callers must never tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized collapses every identity-resolution failure —
	// missing, malformed, expired or tampered token, or a user that no
	// longer exists — into one outcome.
	ErrUnauthorized = errors.New("could not validate credentials")

	// ErrInvalidToken is the uniform token verification failure. The
	// verifier gives no hint whether the signature, expiry or claims
	// were at fault.
	ErrInvalidToken = errors.New("invalid token")
)
