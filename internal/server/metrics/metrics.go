// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "unigate"

type Metrics struct {
	Logins             *prometheus.CounterVec
	TokenVerifications *prometheus.CounterVec
	Provisioned        *prometheus.CounterVec
	DeliveryAttempts   *prometheus.CounterVec
	Denials            *prometheus.CounterVec
	RateLimited        prometheus.Counter
}

// New registers the collectors with reg. Pass a fresh registry in tests.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Logins: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "logins_total",
			Help:      "Login attempts by result.",
		}, []string{"result"}), // success, failure
		TokenVerifications: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "token_verifications_total",
			Help:      "Bearer token checks by result.",
		}, []string{"result"}), // ok, bad_signature, expired, malformed, revoked, scope_violation
		Provisioned: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provisioning",
			Name:      "accounts_total",
			Help:      "Provisioning requests by role and status.",
		}, []string{"role", "status"}),
		DeliveryAttempts: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "provisioning",
			Name:      "delivery_attempts_total",
			Help:      "Credential delivery attempts by final outcome.",
		}, []string{"outcome"}), // delivered, failed
		Denials: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "access",
			Name:      "denials_total",
			Help:      "Authorization denials by reason.",
		}, []string{"reason"}),
		RateLimited: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "login_rate_limited_total",
			Help:      "Login requests rejected by the per-client rate limiter.",
		}),
	}
}
