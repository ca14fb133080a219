// Package rpc holds the error details shared by the gRPC server and unictl.
package rpc

import (
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
)

// ErrorDomain tags the google.rpc.ErrorInfo details produced by the server.
const ErrorDomain = "unigate"

// ErrorKind extracts the machine-readable kind from a status error, or ""
// when err carries none.
func ErrorKind(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info.GetReason()
		}
	}
	return ""
}
