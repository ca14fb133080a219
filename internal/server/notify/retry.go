package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/logging"
	"github.com/sethvargo/go-retry"
)

type RetryPolicy struct {
	MaxRetries  uint64
	BaseBackoff time.Duration
	MaxBackoff  time.Duration
}

func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{MaxRetries: 3, BaseBackoff: 500 * time.Millisecond, MaxBackoff: 10 * time.Second}
}

func (p RetryPolicy) backoff() retry.Backoff {
	base := p.BaseBackoff
	if base <= 0 {
		base = time.Millisecond
	}
	b := retry.NewExponential(base)
	if p.MaxBackoff > 0 {
		b = retry.WithCappedDuration(p.MaxBackoff, b)
	}
	return retry.WithMaxRetries(p.MaxRetries, b)
}

// Outcome is the final result of a delivery run and how many attempts it took.
type Outcome struct {
	Result
	Attempts int
}

type RetryingDispatcher struct {
	next   Dispatcher
	policy RetryPolicy
	log    logging.Logger
}

func NewRetryingDispatcher(next Dispatcher, policy RetryPolicy, log logging.Logger) *RetryingDispatcher {
	return &RetryingDispatcher{next: next, policy: policy, log: log}
}

var errAttemptFailed = errors.New("delivery attempt failed")

// Dispatch delivers p, retrying transient failures with exponential backoff.
// When the budget runs out, or ctx ends first, the returned error wraps
// common.ErrCredentialDeliveryFailed.
func (d *RetryingDispatcher) Dispatch(ctx context.Context, address string, p Payload) (Outcome, error) {
	var out Outcome
	if err := ctx.Err(); err != nil {
		out.Result = Failed(err.Error())
		return out, fmt.Errorf("%w: %w", common.ErrCredentialDeliveryFailed, err)
	}

	err := retry.Do(ctx, d.policy.backoff(), func(ctx context.Context) error {
		out.Attempts++
		out.Result = d.next.Deliver(ctx, address, p)
		if out.Delivered {
			return nil
		}
		d.log.Warn(ctx, "credential delivery attempt failed",
			"attempt", out.Attempts, "username", p.Username, "reason", out.Reason)
		if out.Permanent {
			return errAttemptFailed
		}
		return retry.RetryableError(errAttemptFailed)
	})

	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, errAttemptFailed):
		return out, fmt.Errorf("%w after %d attempts: %s", common.ErrCredentialDeliveryFailed, out.Attempts, out.Reason)
	default:
		if out.Reason == "" {
			out.Result = Failed(err.Error())
		}
		return out, fmt.Errorf("%w: %w", common.ErrCredentialDeliveryFailed, err)
	}
}
