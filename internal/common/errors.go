// Package common defines shared constants and sentinel errors used across
// the server, the transports and the CLI client. Callers should use errors.Is
// to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrUsernameTaken    = errors.New("username taken")
	ErrTenantExists     = errors.New("tenant already exists")
	ErrCapacityExceeded = errors.New("tenant capacity exceeded")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")
	ErrValidation = errors.New("validation error")

	// Authentication. Deliberately uniform: never says whether the username exists.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// Token verification, in the order the verifier checks them.
	ErrBadSignature   = errors.New("bad signature")
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("malformed token")
	ErrTokenRevoked   = errors.New("token revoked")

	// Scope and authorization.
	ErrScopeViolation   = errors.New("scope violation")
	ErrTenantMismatch   = errors.New("tenant mismatch")
	ErrCapabilityDenied = errors.New("capability denied")

	// Provisioning.
	ErrGenerationExhausted      = errors.New("username generation exhausted")
	ErrVerifierCorrupt          = errors.New("verifier corrupt")
	ErrCredentialDeliveryFailed = errors.New("credential delivery failed")
)
