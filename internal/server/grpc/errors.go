package grpc

import (
	"github.com/dmitrijs2005/unigate/internal/rpc"
	"github.com/dmitrijs2005/unigate/internal/server/services"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func codeForKind(kind string) codes.Code {
	switch kind {
	case services.KindAuthenticationFailed, services.KindMissingToken,
		"bad_signature", "expired", "malformed", "revoked", "scope_violation":
		return codes.Unauthenticated
	case services.KindPermissionDenied:
		return codes.PermissionDenied
	case services.KindNotFound:
		return codes.NotFound
	case services.KindValidation:
		return codes.InvalidArgument
	case services.KindConflict:
		return codes.AlreadyExists
	case services.KindCapacityExceeded, services.KindGenerationExhausted, services.KindRateLimited:
		return codes.ResourceExhausted
	default:
		return codes.Internal
	}
}

// kindError builds a status carrying kind both as the message and as a
// google.rpc.ErrorInfo reason.
func kindError(kind string) error {
	st := status.New(codeForKind(kind), kind)
	if withInfo, err := st.WithDetails(&errdetails.ErrorInfo{Reason: kind, Domain: rpc.ErrorDomain}); err == nil {
		st = withInfo
	}
	return st.Err()
}

func toStatus(err error) error {
	return kindError(services.ErrorKind(err))
}
