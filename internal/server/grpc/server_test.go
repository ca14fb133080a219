package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/logging"
	pb "github.com/dmitrijs2005/unigate/internal/proto"
	"github.com/dmitrijs2005/unigate/internal/rpc"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/auth"
	"github.com/dmitrijs2005/unigate/internal/server/metrics"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/dmitrijs2005/unigate/internal/server/ratelimit"
	"github.com/dmitrijs2005/unigate/internal/server/services"
	"github.com/golang-jwt/jwt/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// ---- fakes ----

var (
	adminScope   = access.Scope{AccountID: "a-1", TenantID: "UTM", Role: models.RoleUniversityAdmin}
	studentScope = access.Scope{AccountID: "s-1", TenantID: "UTM", Role: models.RoleStudent}
)

type fakeAuth struct {
	loginErr  error
	tokens    map[string]access.Scope
	loggedOut []string
}

func (f *fakeAuth) Login(ctx context.Context, tenantID, username string, password []byte) (*services.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &services.LoginResult{
		Token: &auth.Token{Value: "tok-admin", ID: "jti-1", ExpiresAt: time.Unix(1_700_003_600, 0).UTC()},
		Scope: adminScope,
	}, nil
}

func (f *fakeAuth) Authenticate(ctx context.Context, token string) (*auth.Claims, access.Scope, error) {
	switch token {
	case "expired":
		return nil, access.Scope{}, common.ErrTokenExpired
	case "forged":
		return nil, access.Scope{}, common.ErrBadSignature
	}
	scope, ok := f.tokens[token]
	if !ok {
		return nil, access.Scope{}, common.ErrTokenMalformed
	}
	c := &auth.Claims{RegisteredClaims: jwt.RegisteredClaims{ID: "jti-" + token, Subject: scope.AccountID}}
	return c, scope, nil
}

func (f *fakeAuth) Logout(ctx context.Context, claims *auth.Claims) error {
	f.loggedOut = append(f.loggedOut, claims.ID)
	return nil
}

type fakeProvisioner struct {
	deliveryDown bool
}

func (f *fakeProvisioner) Provision(ctx context.Context, scope access.Scope, req services.ProvisionRequest) (*services.ProvisionResult, error) {
	if scope.Role == models.RoleStudent {
		return nil, common.ErrCapabilityDenied
	}
	if scope.TenantID != req.TenantID {
		return nil, common.ErrTenantMismatch
	}
	acct := &models.Account{ID: "new-1", TenantID: req.TenantID, Role: req.Role, Username: "alice.utm",
		DisplayName: req.DisplayName, Verifier: "$argon2id$secret"}
	if f.deliveryDown {
		acct.DeliveryStatus = models.DeliveryPending
		return &services.ProvisionResult{Account: acct, Status: services.StatusPendingDelivery, DeliveryError: "relay down"},
			errors.Join(common.ErrCredentialDeliveryFailed, errors.New("relay down"))
	}
	acct.DeliveryStatus = models.DeliveryDelivered
	return &services.ProvisionResult{Account: acct, Status: services.StatusProvisioned}, nil
}

func (f *fakeProvisioner) ListPending(ctx context.Context, scope access.Scope, tenantID string) ([]models.Account, error) {
	return []models.Account{{ID: "p-1", TenantID: tenantID, Username: "bob.utm", DeliveryStatus: models.DeliveryPending}}, nil
}

func (f *fakeProvisioner) Reissue(ctx context.Context, scope access.Scope, tenantID, accountID string) (*services.ProvisionResult, error) {
	return nil, common.ErrorNotFound
}

type fakeTenants struct{}

func (fakeTenants) Create(ctx context.Context, scope access.Scope, t models.Tenant) (*models.Tenant, error) {
	if !scope.Role.IsGlobal() {
		return nil, common.ErrCapabilityDenied
	}
	return &t, nil
}

func (fakeTenants) List(ctx context.Context, scope access.Scope) ([]models.Tenant, error) {
	if !scope.Role.IsGlobal() {
		return nil, common.ErrCapabilityDenied
	}
	return []models.Tenant{
		{Code: "ASEM", Name: "ASEM", CreatedAt: time.Unix(1_700_000_000, 0).UTC()},
		{Code: "UTM", Name: "Technical University", MaxStudents: 100},
	}, nil
}

// ---- harness ----

type harness struct {
	client pb.IdentityServiceClient
	auth   *fakeAuth
	prov   *fakeProvisioner
	mx     *metrics.Metrics
}

func newHarness(t *testing.T, limiter *ratelimit.KeyedLimiter) *harness {
	t.Helper()

	fa := &fakeAuth{tokens: map[string]access.Scope{"admin": adminScope, "student": studentScope}}
	fp := &fakeProvisioner{}
	mx := metrics.New(prometheus.NewRegistry())
	srv := NewGRPCServer("bufnet", logging.Nop{}, fa, fp, fakeTenants{}, limiter, mx)

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}

	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
	})

	return &harness{client: pb.NewIdentityServiceClient(conn), auth: fa, prov: fp, mx: mx}
}

func withToken(token string) context.Context {
	return metadata.AppendToOutgoingContext(context.Background(), common.AuthorizationHeaderName, "Bearer "+token)
}

func assertKind(t *testing.T, err error, code codes.Code, kind string) {
	t.Helper()
	if got := status.Code(err); got != code {
		t.Fatalf("code = %v, want %v (err=%v)", got, code, err)
	}
	if got := rpc.ErrorKind(err); got != kind {
		t.Fatalf("kind = %q, want %q", got, kind)
	}
}

// ---- tests ----

func TestLogin(t *testing.T) {
	h := newHarness(t, nil)

	resp, err := h.client.Login(context.Background(), &pb.LoginRequest{TenantId: "UTM", Username: "alice.utm", Password: []byte("pw")})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "tok-admin" || resp.AccountId != "a-1" || resp.Role != "university_admin" || resp.TenantId != "UTM" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if got := resp.GetExpiresAt().AsTime(); !got.Equal(time.Unix(1_700_003_600, 0)) {
		t.Fatalf("expires_at = %v", got)
	}

	h.auth.loginErr = common.ErrAuthenticationFailed
	_, err = h.client.Login(context.Background(), &pb.LoginRequest{Username: "alice.utm", Password: []byte("bad")})
	assertKind(t, err, codes.Unauthenticated, "authentication_failed")
}

func TestLogin_RateLimited(t *testing.T) {
	h := newHarness(t, ratelimit.New(0.001, 2))

	for i := 0; i < 2; i++ {
		if _, err := h.client.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: []byte("p")}); err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
	}
	_, err := h.client.Login(context.Background(), &pb.LoginRequest{Username: "u", Password: []byte("p")})
	assertKind(t, err, codes.ResourceExhausted, "rate_limited")

	if got := testutil.ToFloat64(h.mx.RateLimited); got != 1 {
		t.Fatalf("rate limited counter = %v, want 1", got)
	}
}

func TestInterceptor_TokenErrors(t *testing.T) {
	h := newHarness(t, nil)

	tests := []struct {
		name string
		ctx  context.Context
		kind string
	}{
		{"missing", context.Background(), "missing_token"},
		{"expired", withToken("expired"), "expired"},
		{"forged", withToken("forged"), "bad_signature"},
		{"garbage", withToken("garbage"), "malformed"},
		{"wrong scheme", metadata.AppendToOutgoingContext(context.Background(), "authorization", "Basic admin"), "missing_token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.client.WhoAmI(tt.ctx, &pb.WhoAmIRequest{})
			assertKind(t, err, codes.Unauthenticated, tt.kind)
		})
	}
}

func TestWhoAmI_AndLogout(t *testing.T) {
	h := newHarness(t, nil)

	me, err := h.client.WhoAmI(withToken("student"), &pb.WhoAmIRequest{})
	if err != nil {
		t.Fatalf("WhoAmI: %v", err)
	}
	if me.AccountId != "s-1" || me.Role != "student" || me.TenantId != "UTM" {
		t.Fatalf("unexpected scope: %+v", me)
	}

	if _, err := h.client.Logout(withToken("student"), &pb.LogoutRequest{}); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if len(h.auth.loggedOut) != 1 || h.auth.loggedOut[0] != "jti-student" {
		t.Fatalf("logout not recorded: %v", h.auth.loggedOut)
	}
}

func TestProvisionAccount(t *testing.T) {
	h := newHarness(t, nil)
	req := &pb.ProvisionAccountRequest{TenantId: "UTM", Role: "student", DisplayName: "Alice", ContactAddress: "alice@utm.md"}

	resp, err := h.client.ProvisionAccount(withToken("admin"), req)
	if err != nil {
		t.Fatalf("ProvisionAccount: %v", err)
	}
	if resp.Status != "provisioned" || resp.Error != "" || resp.GetAccount().GetUsername() != "alice.utm" {
		t.Fatalf("unexpected response: %+v", resp)
	}

	h.prov.deliveryDown = true
	resp, err = h.client.ProvisionAccount(withToken("admin"), req)
	if err != nil {
		t.Fatalf("pending provisioning must not fail the call: %v", err)
	}
	if resp.Status != "provisioned_pending_delivery" || resp.Error != "credential_delivery_failed" {
		t.Fatalf("unexpected pending response: %+v", resp)
	}
	if resp.GetAccount().GetDeliveryStatus() != "pending_delivery" {
		t.Fatalf("account status = %q", resp.Account.DeliveryStatus)
	}
}

func TestProvisionAccount_Denied(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.client.ProvisionAccount(withToken("student"), &pb.ProvisionAccountRequest{TenantId: "UTM", Role: "student"})
	assertKind(t, err, codes.PermissionDenied, "permission_denied")

	_, err = h.client.ProvisionAccount(withToken("admin"), &pb.ProvisionAccountRequest{TenantId: "OTHERUNI", Role: "student"})
	assertKind(t, err, codes.PermissionDenied, "permission_denied")
}

func TestListPendingAndReissue(t *testing.T) {
	h := newHarness(t, nil)

	list, err := h.client.ListPendingDelivery(withToken("admin"), &pb.ListPendingDeliveryRequest{TenantId: "UTM"})
	if err != nil {
		t.Fatalf("ListPendingDelivery: %v", err)
	}
	if len(list.Accounts) != 1 || list.Accounts[0].Username != "bob.utm" {
		t.Fatalf("unexpected list: %+v", list)
	}

	_, err = h.client.ReissueCredentials(withToken("admin"), &pb.ReissueCredentialsRequest{TenantId: "UTM", AccountId: "x"})
	assertKind(t, err, codes.NotFound, "not_found")
}

func TestCreateTenant(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.client.CreateTenant(withToken("admin"), &pb.CreateTenantRequest{Code: "ASEM", Name: "ASEM"})
	assertKind(t, err, codes.PermissionDenied, "permission_denied")

	h.auth.tokens["root"] = access.Scope{AccountID: "r-1", Role: models.RoleSystemAdmin}
	got, err := h.client.CreateTenant(withToken("root"), &pb.CreateTenantRequest{Code: "ASEM", Name: "ASEM", MaxStudents: 5})
	if err != nil {
		t.Fatalf("CreateTenant: %v", err)
	}
	if got.GetTenant().GetCode() != "ASEM" || got.GetTenant().GetMaxStudents() != 5 {
		t.Fatalf("unexpected tenant: %+v", got)
	}
}

func TestListTenants(t *testing.T) {
	h := newHarness(t, nil)

	_, err := h.client.ListTenants(withToken("admin"), &pb.ListTenantsRequest{})
	assertKind(t, err, codes.PermissionDenied, "permission_denied")

	_, err = h.client.ListTenants(context.Background(), &pb.ListTenantsRequest{})
	assertKind(t, err, codes.Unauthenticated, "missing_token")

	h.auth.tokens["root"] = access.Scope{AccountID: "r-1", Role: models.RoleSystemAdmin}
	got, err := h.client.ListTenants(withToken("root"), &pb.ListTenantsRequest{})
	if err != nil {
		t.Fatalf("ListTenants: %v", err)
	}
	if len(got.Tenants) != 2 || got.Tenants[1].GetCode() != "UTM" || got.Tenants[1].GetMaxStudents() != 100 {
		t.Fatalf("unexpected tenants: %+v", got.Tenants)
	}
	if got.Tenants[0].GetCreatedAt() == nil || got.Tenants[1].GetCreatedAt() != nil {
		t.Fatalf("created_at should be set only when known: %+v", got.Tenants)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:0", logging.Nop{}, &fakeAuth{}, &fakeProvisioner{}, fakeTenants{}, nil, metrics.New(prometheus.NewRegistry()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error on graceful stop: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop within timeout after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	t.Parallel()

	srv := NewGRPCServer("127.0.0.1:99999", logging.Nop{}, &fakeAuth{}, &fakeProvisioner{}, fakeTenants{}, nil, metrics.New(prometheus.NewRegistry()))

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error")
	}
}

func TestErrorKind_NonStatus(t *testing.T) {
	if got := rpc.ErrorKind(errors.New("plain")); got != "" {
		t.Fatalf("kind = %q", got)
	}
}
