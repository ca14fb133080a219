package notify

import (
	"context"

	"github.com/dmitrijs2005/unigate/internal/logging"
)

// LogDispatcher is for development setups without a mail relay. It records
// that a delivery happened, never what was delivered.
type LogDispatcher struct {
	log logging.Logger
}

func NewLogDispatcher(log logging.Logger) *LogDispatcher {
	return &LogDispatcher{log: log}
}

func (d *LogDispatcher) Deliver(ctx context.Context, address string, p Payload) Result {
	d.log.Info(ctx, "credentials handed to log dispatcher",
		"tenant", p.TenantID, "username", p.Username, "address", address)
	return Delivered()
}
