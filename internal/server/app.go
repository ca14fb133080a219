// Package server wires configuration, storage, services and transports
// into a runnable application.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/unigate/internal/logging"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/auth"
	"github.com/dmitrijs2005/unigate/internal/server/config"
	"github.com/dmitrijs2005/unigate/internal/server/credentials"
	"github.com/dmitrijs2005/unigate/internal/server/httpapi"
	"github.com/dmitrijs2005/unigate/internal/server/metrics"
	"github.com/dmitrijs2005/unigate/internal/server/notify"
	"github.com/dmitrijs2005/unigate/internal/server/ratelimit"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/denylist"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/unigate/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	_ "github.com/jackc/pgx/v5/stdlib"

	gs "github.com/dmitrijs2005/unigate/internal/server/grpc"
)

const limiterSweepInterval = time.Minute

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	redis    redis.UniversalClient
	registry *prometheus.Registry
	metrics  *metrics.Metrics
	limiter  *ratelimit.KeyedLimiter

	authService         *services.AuthService
	provisioningService *services.ProvisioningService
	tenantService       *services.TenantService
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewJSON(os.Stdout, c.LogLevel)

	db, err := sql.Open("pgx", c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	app := &App{config: c, logger: logger, db: db}

	dl, err := app.initDenylist(ctx)
	if err != nil {
		app.close()
		return nil, err
	}

	keys, err := buildKeyring(c, time.Now())
	if err != nil {
		app.close()
		return nil, err
	}
	issuer := auth.NewIssuer(keys, c.AccessTokenValidityDuration)

	hasher := credentials.NewHasher(credentials.HashParams{
		MemoryKiB:  c.PasswordHashMemoryKiB,
		Iterations: c.PasswordHashIterations,
		Threads:    c.PasswordHashThreads,
	})

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app.metrics = metrics.New(app.registry)
	app.limiter = ratelimit.New(c.LoginRateLimit, c.LoginRateBurst)

	guard := access.NewGuard()

	app.authService, err = services.NewAuthService(db, rm, hasher, issuer, dl, app.metrics, logger)
	if err != nil {
		app.close()
		return nil, err
	}
	app.provisioningService = services.NewProvisioningService(db, rm, guard,
		credentials.NewGenerator(c.UsernameMaxAttempts), hasher, buildDispatcher(c, logger), app.metrics, logger)
	app.tenantService = services.NewTenantService(db, rm, guard, app.metrics, logger)

	if err := app.bootstrap(ctx); err != nil {
		app.close()
		return nil, err
	}

	return app, nil
}

func (app *App) initDenylist(ctx context.Context) (denylist.Denylist, error) {
	if app.config.RedisAddr == "" {
		app.logger.Warn(ctx, "no redis configured, logout cannot revoke tokens before expiry")
		return denylist.Noop{}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: app.config.RedisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping error: %w", err)
	}
	app.redis = client
	return denylist.NewRedisDenylist(client), nil
}

// buildKeyring installs the active key and retires the configured old keys
// as of their configured retirement times. A restart never extends a grace
// period; retirement times later than now are rejected.
func buildKeyring(c *config.Config, now time.Time) (*auth.Keyring, error) {
	keys, err := auth.NewKeyring(auth.Key{ID: c.SecretKeyID, Secret: []byte(c.SecretKey)}, c.KeyRotationGrace)
	if err != nil {
		return nil, err
	}

	retired, err := c.RetiredKeys()
	if err != nil {
		return nil, err
	}
	for _, r := range retired {
		if r.RetiredAt.After(now) {
			return nil, fmt.Errorf("retired key %q: retirement time %s is in the future", r.ID, r.RetiredAt.Format(time.RFC3339))
		}
		if err := keys.Retire(auth.Key{ID: r.ID, Secret: []byte(r.Secret)}, r.RetiredAt); err != nil {
			return nil, err
		}
	}
	return keys, nil
}

// buildDispatcher mails credentials through SMTP when a host is configured
// and otherwise only logs that a delivery happened.
func buildDispatcher(c *config.Config, logger logging.Logger) *notify.RetryingDispatcher {
	var d notify.Dispatcher = notify.NewLogDispatcher(logger.With("module", "log_dispatcher"))
	if c.SMTPHost != "" {
		d = notify.NewSMTPDispatcher(notify.SMTPConfig{
			Host:       c.SMTPHost,
			Port:       c.SMTPPort,
			Username:   c.SMTPUsername,
			Password:   c.SMTPPassword,
			From:       c.SMTPFrom,
			FromName:   c.SMTPFromName,
			Encryption: notify.Encryption(c.SMTPEncryption),
			Timeout:    c.SMTPTimeout,
		})
	}

	policy := notify.RetryPolicy{
		MaxRetries:  c.DeliveryMaxRetries,
		BaseBackoff: c.DeliveryBaseBackoff,
		MaxBackoff:  c.DeliveryMaxBackoff,
	}
	return notify.NewRetryingDispatcher(d, policy, logger.With("module", "delivery"))
}

func (app *App) bootstrap(ctx context.Context) error {
	if app.config.BootstrapAdminUsername == "" {
		return nil
	}
	created, err := app.provisioningService.BootstrapSystemAdmin(ctx,
		app.config.BootstrapAdminUsername, []byte(app.config.BootstrapAdminPassword), app.config.BootstrapAdminAddress)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	if !created {
		app.logger.Info(ctx, "bootstrap admin already present", "username", app.config.BootstrapAdminUsername)
	}
	return nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) sweepLimiter(ctx context.Context) {
	t := time.NewTicker(limiterSweepInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			app.limiter.Sweep()
		}
	}
}

// Run serves gRPC and HTTP until a signal arrives or either server fails.
func (app *App) Run(ctx context.Context) error {
	defer app.close()

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	grpcServer := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger,
		app.authService, app.provisioningService, app.tenantService, app.limiter, app.metrics)
	httpServer := httpapi.NewHTTPServer(app.config.EndpointAddrHTTP, app.logger, httpapi.Deps{
		Auth:         app.authService,
		Provisioning: app.provisioningService,
		Tenants:      app.tenantService,
		Limiter:      app.limiter,
		Metrics:      app.metrics,
		Gatherer:     app.registry,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return grpcServer.Run(gctx) })
	g.Go(func() error { return httpServer.Run(gctx) })
	g.Go(func() error {
		app.sweepLimiter(gctx)
		return nil
	})

	err := g.Wait()
	if err != nil {
		app.logger.Error(ctx, "server stopped", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
	return err
}

func (app *App) close() {
	if app.redis != nil {
		_ = app.redis.Close()
	}
	if app.db != nil {
		_ = app.db.Close()
	}
}
