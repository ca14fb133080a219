package services

import (
	"errors"

	"github.com/dmitrijs2005/unigate/internal/common"
)

// Machine-readable error kinds shared by the HTTP and gRPC transports.
const (
	KindAuthenticationFailed = "authentication_failed"
	KindMissingToken         = "missing_token"
	KindPermissionDenied     = "permission_denied"
	KindNotFound             = "not_found"
	KindValidation           = "validation_error"
	KindConflict             = "conflict"
	KindCapacityExceeded     = "capacity_exceeded"
	KindGenerationExhausted  = "generation_exhausted"
	KindDeliveryFailed       = "credential_delivery_failed"
	KindRateLimited          = "rate_limited"
	KindInternal             = "internal"
)

// IsTokenError reports whether err came from bearer token authentication.
func IsTokenError(err error) bool {
	return errors.Is(err, common.ErrBadSignature) ||
		errors.Is(err, common.ErrTokenExpired) ||
		errors.Is(err, common.ErrTokenMalformed) ||
		errors.Is(err, common.ErrTokenRevoked) ||
		errors.Is(err, common.ErrScopeViolation)
}

// ErrorKind classifies a service error. Tenant mismatch and missing
// capability are both reported as permission_denied so a caller cannot probe
// which tenants exist.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrAuthenticationFailed):
		return KindAuthenticationFailed
	case IsTokenError(err):
		return TokenErrorKind(err)
	case errors.Is(err, common.ErrTenantMismatch), errors.Is(err, common.ErrCapabilityDenied):
		return KindPermissionDenied
	case errors.Is(err, common.ErrorNotFound):
		return KindNotFound
	case errors.Is(err, common.ErrValidation):
		return KindValidation
	case errors.Is(err, common.ErrTenantExists), errors.Is(err, common.ErrUsernameTaken):
		return KindConflict
	case errors.Is(err, common.ErrCapacityExceeded):
		return KindCapacityExceeded
	case errors.Is(err, common.ErrGenerationExhausted):
		return KindGenerationExhausted
	case errors.Is(err, common.ErrCredentialDeliveryFailed):
		return KindDeliveryFailed
	default:
		return KindInternal
	}
}
