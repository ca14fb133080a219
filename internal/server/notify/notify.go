// Package notify delivers freshly generated credentials to account holders.
// Transports implement Dispatcher; RetryingDispatcher adds bounded retries.
package notify

import (
	"context"
)

// Payload is what the new account holder receives. Password is plaintext and
// is owned by the caller, who wipes it after Deliver returns.
type Payload struct {
	TenantID    string
	DisplayName string
	Username    string
	Password    []byte
}

// Result is the outcome of a single delivery attempt.
// Permanent failures are not retried.
type Result struct {
	Delivered bool
	Reason    string
	Permanent bool
}

func Delivered() Result             { return Result{Delivered: true} }
func Failed(reason string) Result   { return Result{Reason: reason} }
func Rejected(reason string) Result { return Result{Reason: reason, Permanent: true} }

type Dispatcher interface {
	Deliver(ctx context.Context, address string, p Payload) Result
}
