package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/unigate/internal/logging"
	pb "github.com/dmitrijs2005/unigate/internal/proto"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/auth"
	"github.com/dmitrijs2005/unigate/internal/server/metrics"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/dmitrijs2005/unigate/internal/server/ratelimit"
	"github.com/dmitrijs2005/unigate/internal/server/services"
	"google.golang.org/grpc"
)

type Authenticator interface {
	Login(ctx context.Context, tenantID, username string, password []byte) (*services.LoginResult, error)
	Authenticate(ctx context.Context, token string) (*auth.Claims, access.Scope, error)
	Logout(ctx context.Context, claims *auth.Claims) error
}

type Provisioner interface {
	Provision(ctx context.Context, scope access.Scope, req services.ProvisionRequest) (*services.ProvisionResult, error)
	ListPending(ctx context.Context, scope access.Scope, tenantID string) ([]models.Account, error)
	Reissue(ctx context.Context, scope access.Scope, tenantID, accountID string) (*services.ProvisionResult, error)
}

type TenantManager interface {
	Create(ctx context.Context, scope access.Scope, t models.Tenant) (*models.Tenant, error)
	List(ctx context.Context, scope access.Scope) ([]models.Tenant, error)
}

type GRPCServer struct {
	pb.UnimplementedIdentityServiceServer
	address      string
	auth         Authenticator
	provisioning Provisioner
	tenants      TenantManager
	limiter      *ratelimit.KeyedLimiter
	metrics      *metrics.Metrics
	logger       logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, as Authenticator, ps Provisioner, ts TenantManager,
	limiter *ratelimit.KeyedLimiter, mx *metrics.Metrics) *GRPCServer {
	return &GRPCServer{
		address:      a,
		auth:         as,
		provisioning: ps,
		tenants:      ts,
		limiter:      limiter,
		metrics:      mx,
		logger:       l.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.loggingInterceptor, s.accessTokenInterceptor))
	pb.RegisterIdentityServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled, then stops
// gracefully.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
