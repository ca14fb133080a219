package client

import (
	"errors"

	"github.com/dmitrijs2005/unigate/internal/rpc"
	"google.golang.org/grpc/status"
)

var messages = map[string]string{
	"authentication_failed": "invalid tenant, username or password",
	"missing_token":         "not logged in",
	"expired":               "session expired, log in again",
	"revoked":               "session was logged out, log in again",
	"bad_signature":         "session token rejected, log in again",
	"malformed":             "session token rejected, log in again",
	"scope_violation":       "session token rejected, log in again",
	"permission_denied":     "permission denied",
	"not_found":             "not found",
	"validation_error":      "invalid input",
	"conflict":              "already exists",
	"capacity_exceeded":     "tenant capacity exceeded",
	"generation_exhausted":  "could not find a free username, try again",
	"rate_limited":          "too many login attempts, wait a moment",
}

// Describe turns an error from the server into a line for the operator.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, ErrNotLoggedIn) {
		return messages["missing_token"]
	}
	if msg, ok := messages[rpc.ErrorKind(err)]; ok {
		return msg
	}
	if st, ok := status.FromError(err); ok {
		return st.Message()
	}
	return err.Error()
}
