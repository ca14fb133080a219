// Package client talks to the unigate gRPC endpoint on behalf of unictl.
package client

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/unigate/internal/common"
	pb "github.com/dmitrijs2005/unigate/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
)

var ErrNotLoggedIn = errors.New("not logged in")

// GRPCClient keeps the session token in memory and attaches it to every
// call except Login.
type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	api         pb.IdentityServiceClient

	mu          sync.RWMutex
	accessToken string
}

func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}

	opts = append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(c.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	c.api = pb.NewIdentityServiceClient(conn)
	return c, nil
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	md.Set(common.AuthorizationHeaderName, common.BearerScheme+" "+token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (c *GRPCClient) token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.accessToken
}

func (c *GRPCClient) setToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accessToken = token
}

func (c *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply any,
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if method != pb.IdentityService_Login_FullMethodName {
		token := c.token()
		if token == "" {
			return ErrNotLoggedIn
		}
		ctx = withAccessToken(ctx, token)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func (c *GRPCClient) Login(ctx context.Context, tenantID, username string, password []byte) (*pb.LoginResponse, error) {
	resp, err := c.api.Login(ctx, &pb.LoginRequest{
		TenantId: strings.TrimSpace(tenantID),
		Username: strings.TrimSpace(username),
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	c.setToken(resp.GetToken())
	return resp, nil
}

func (c *GRPCClient) LoggedIn() bool {
	return c.token() != ""
}

func (c *GRPCClient) Logout(ctx context.Context) error {
	_, err := c.api.Logout(ctx, &pb.LogoutRequest{})
	c.setToken("")
	return err
}

func (c *GRPCClient) WhoAmI(ctx context.Context) (*pb.WhoAmIResponse, error) {
	return c.api.WhoAmI(ctx, &pb.WhoAmIRequest{})
}

func (c *GRPCClient) ProvisionAccount(ctx context.Context, req *pb.ProvisionAccountRequest) (*pb.ProvisionAccountResponse, error) {
	return c.api.ProvisionAccount(ctx, req)
}

func (c *GRPCClient) ListPendingDelivery(ctx context.Context, tenantID string) ([]*pb.Account, error) {
	resp, err := c.api.ListPendingDelivery(ctx, &pb.ListPendingDeliveryRequest{TenantId: tenantID})
	if err != nil {
		return nil, err
	}
	return resp.GetAccounts(), nil
}

func (c *GRPCClient) ReissueCredentials(ctx context.Context, tenantID, accountID string) (*pb.ProvisionAccountResponse, error) {
	return c.api.ReissueCredentials(ctx, &pb.ReissueCredentialsRequest{TenantId: tenantID, AccountId: accountID})
}

func (c *GRPCClient) CreateTenant(ctx context.Context, req *pb.CreateTenantRequest) (*pb.Tenant, error) {
	resp, err := c.api.CreateTenant(ctx, req)
	if err != nil {
		return nil, err
	}
	return resp.GetTenant(), nil
}

func (c *GRPCClient) ListTenants(ctx context.Context) ([]*pb.Tenant, error) {
	resp, err := c.api.ListTenants(ctx, &pb.ListTenantsRequest{})
	if err != nil {
		return nil, err
	}
	return resp.GetTenants(), nil
}

func (c *GRPCClient) Close() error {
	return c.conn.Close()
}
