package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/unigate/internal/client/client"
	"github.com/dmitrijs2005/unigate/internal/client/config"
	pb "github.com/dmitrijs2005/unigate/internal/proto"
)

// Client is the subset of the gRPC client used by the console.
type Client interface {
	Login(ctx context.Context, tenantID, username string, password []byte) (*pb.LoginResponse, error)
	LoggedIn() bool
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) (*pb.WhoAmIResponse, error)
	ProvisionAccount(ctx context.Context, req *pb.ProvisionAccountRequest) (*pb.ProvisionAccountResponse, error)
	ListPendingDelivery(ctx context.Context, tenantID string) ([]*pb.Account, error)
	ReissueCredentials(ctx context.Context, tenantID, accountID string) (*pb.ProvisionAccountResponse, error)
	CreateTenant(ctx context.Context, req *pb.CreateTenantRequest) (*pb.Tenant, error)
	ListTenants(ctx context.Context) ([]*pb.Tenant, error)
	Close() error
}

type App struct {
	config *config.Config
	client Client
	reader *bufio.Reader
	out    io.Writer

	userName string
	tenantID string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}
	return newApp(c, apiClient, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, cl Client, in io.Reader, out io.Writer) *App {
	return &App{config: c, client: cl, reader: bufio.NewReader(in), out: out}
}

func (a *App) Run(ctx context.Context) {
	defer a.client.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.client.LoggedIn()
}

// callContext bounds a single round trip to the server.
func (a *App) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.config.RequestTimeout)
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	if a.tenantID == "" {
		return "(" + a.userName + ")"
	}
	return "(" + a.userName + "@" + a.tenantID + ")"
}
