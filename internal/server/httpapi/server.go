// Package httpapi exposes the identity services as a JSON API under /api/v1,
// plus /metrics and /healthz.
package httpapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/unigate/internal/logging"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/auth"
	"github.com/dmitrijs2005/unigate/internal/server/metrics"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/dmitrijs2005/unigate/internal/server/ratelimit"
	"github.com/dmitrijs2005/unigate/internal/server/services"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

type Authenticator interface {
	Login(ctx context.Context, tenantID, username string, password []byte) (*services.LoginResult, error)
	Authenticate(ctx context.Context, token string) (*auth.Claims, access.Scope, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type Provisioner interface {
	Provision(ctx context.Context, scope access.Scope, req services.ProvisionRequest) (*services.ProvisionResult, error)
	ListPending(ctx context.Context, scope access.Scope, tenantID string) ([]models.Account, error)
	Reissue(ctx context.Context, scope access.Scope, tenantID, accountID string) (*services.ProvisionResult, error)
	GetAccount(ctx context.Context, scope access.Scope, tenantID, accountID string) (*models.Account, error)
}

type TenantManager interface {
	Create(ctx context.Context, scope access.Scope, t models.Tenant) (*models.Tenant, error)
	Get(ctx context.Context, scope access.Scope, code string) (*models.Tenant, error)
	UpdateLimits(ctx context.Context, scope access.Scope, code string, maxStudents, maxSupervisors int) (*models.Tenant, error)
	List(ctx context.Context, scope access.Scope) ([]models.Tenant, error)
}

type Deps struct {
	Auth         Authenticator
	Provisioning Provisioner
	Tenants      TenantManager
	Limiter      *ratelimit.KeyedLimiter
	Metrics      *metrics.Metrics
	Gatherer     prometheus.Gatherer
}

type HTTPServer struct {
	address string
	deps    Deps
	logger  logging.Logger
}

func NewHTTPServer(a string, l logging.Logger, deps Deps) *HTTPServer {
	return &HTTPServer{address: a, deps: deps, logger: l.With("module", "http_server")}
}

// Handler builds the router.
func (s *HTTPServer) Handler() http.Handler {
	h := &handlers{deps: s.deps, logger: s.logger}

	r := mux.NewRouter()
	r.Use(s.recovery, s.logging)

	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	if s.deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.deps.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Handle("/auth/login", s.throttle(http.HandlerFunc(h.login))).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(h.authenticate)
	protected.HandleFunc("/auth/logout", h.logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", h.me).Methods(http.MethodGet)
	protected.HandleFunc("/tenants", h.createTenant).Methods(http.MethodPost)
	protected.HandleFunc("/tenants", h.listTenants).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantID}", h.getTenant).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantID}/limits", h.updateLimits).Methods(http.MethodPut)
	protected.HandleFunc("/tenants/{tenantID}/accounts", h.provision).Methods(http.MethodPost)
	protected.HandleFunc("/tenants/{tenantID}/accounts/pending", h.listPending).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantID}/accounts/{accountID}", h.getAccount).Methods(http.MethodGet)
	protected.HandleFunc("/tenants/{tenantID}/accounts/{accountID}/credentials", h.reissue).Methods(http.MethodPost)

	return r
}

func (s *HTTPServer) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
