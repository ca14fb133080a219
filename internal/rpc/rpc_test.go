package rpc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestErrorKind(t *testing.T) {
	st, err := status.New(codes.PermissionDenied, "permission_denied").
		WithDetails(&errdetails.ErrorInfo{Reason: "permission_denied", Domain: ErrorDomain})
	require.NoError(t, err)

	foreign, err := status.New(codes.Internal, "x").
		WithDetails(&errdetails.ErrorInfo{Reason: "quota", Domain: "googleapis.com"})
	require.NoError(t, err)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"own domain", st.Err(), "permission_denied"},
		{"other domain", foreign.Err(), ""},
		{"no details", status.Error(codes.NotFound, "not_found"), ""},
		{"plain error", errors.New("boom"), ""},
		{"nil", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}
