package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/unigate/internal/client/config"
	pb "github.com/dmitrijs2005/unigate/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type fakeClient struct {
	loggedIn bool
	closed   bool
	err      error

	gotLogin     []string
	gotPassword  string
	gotProvision *pb.ProvisionAccountRequest
	gotTenant    *pb.CreateTenantRequest
	gotPending   string
	gotReissue   []string

	loginResp     *pb.LoginResponse
	provisionResp *pb.ProvisionAccountResponse
	pending       []*pb.Account
	tenants       []*pb.Tenant
}

func (f *fakeClient) Login(_ context.Context, tenantID, username string, password []byte) (*pb.LoginResponse, error) {
	f.gotLogin = []string{tenantID, username}
	f.gotPassword = string(password)
	if f.err != nil {
		return nil, f.err
	}
	f.loggedIn = true
	return f.loginResp, nil
}

func (f *fakeClient) LoggedIn() bool { return f.loggedIn }

func (f *fakeClient) Logout(context.Context) error {
	f.loggedIn = false
	return f.err
}

func (f *fakeClient) WhoAmI(context.Context) (*pb.WhoAmIResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &pb.WhoAmIResponse{AccountId: "acc-1", Role: "system_admin"}, nil
}

func (f *fakeClient) ProvisionAccount(_ context.Context, req *pb.ProvisionAccountRequest) (*pb.ProvisionAccountResponse, error) {
	f.gotProvision = req
	if f.err != nil {
		return nil, f.err
	}
	return f.provisionResp, nil
}

func (f *fakeClient) ListPendingDelivery(_ context.Context, tenantID string) ([]*pb.Account, error) {
	f.gotPending = tenantID
	return f.pending, f.err
}

func (f *fakeClient) ReissueCredentials(_ context.Context, tenantID, accountID string) (*pb.ProvisionAccountResponse, error) {
	f.gotReissue = []string{tenantID, accountID}
	if f.err != nil {
		return nil, f.err
	}
	return f.provisionResp, nil
}

func (f *fakeClient) CreateTenant(_ context.Context, req *pb.CreateTenantRequest) (*pb.Tenant, error) {
	f.gotTenant = req
	if f.err != nil {
		return nil, f.err
	}
	return &pb.Tenant{Code: strings.ToUpper(req.GetCode()), Name: req.GetName()}, nil
}

func (f *fakeClient) ListTenants(context.Context) ([]*pb.Tenant, error) {
	return f.tenants, f.err
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

func newTestApp(cl Client, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	cfg := &config.Config{RequestTimeout: time.Second}
	return newApp(cfg, cl, strings.NewReader(input), &out), &out
}

func TestLogin(t *testing.T) {
	stubPassword(t, "pw")
	fc := &fakeClient{loginResp: &pb.LoginResponse{Token: "t", TenantId: "UTM", Role: "university_admin", ExpiresAt: timestamppb.Now()}}
	a, out := newTestApp(fc, "UTM\nadmin.utm\n")

	require.NoError(t, a.Login(context.Background()))
	assert.Equal(t, []string{"UTM", "admin.utm"}, fc.gotLogin)
	assert.Equal(t, "pw", fc.gotPassword)
	assert.Equal(t, "(admin.utm@UTM)", a.getStatus())
	assert.Contains(t, out.String(), "Logged in as admin.utm (university_admin)")
}

func TestLogin_Failure(t *testing.T) {
	stubPassword(t, "bad")
	fc := &fakeClient{err: errors.New("denied")}
	a, out := newTestApp(fc, "UTM\nadmin.utm\n")

	require.Error(t, a.Login(context.Background()))
	assert.Equal(t, "", a.getStatus())
	assert.Contains(t, out.String(), "error: denied")
}

func TestCommands_RequireLogin(t *testing.T) {
	fc := &fakeClient{}
	a, out := newTestApp(fc, "")
	ctx := context.Background()

	assert.Error(t, a.WhoAmI(ctx))
	assert.Error(t, a.Provision(ctx))
	assert.Error(t, a.Pending(ctx))
	assert.Error(t, a.Reissue(ctx, "x"))
	assert.Error(t, a.CreateTenant(ctx))
	assert.Error(t, a.Tenants(ctx))
	assert.Error(t, a.Logout(ctx))
	assert.Contains(t, out.String(), "error: not logged in")
	assert.Nil(t, fc.gotProvision)
}

func TestProvision_UsesSessionTenant(t *testing.T) {
	fc := &fakeClient{
		loggedIn: true,
		provisionResp: &pb.ProvisionAccountResponse{
			Status:  "provisioned",
			Account: &pb.Account{Id: "acc-9", Username: "ion.popescu.utm"},
		},
	}
	a, out := newTestApp(fc, "Student\nIon Popescu\nion@example.org\n")
	a.tenantID = "UTM"

	require.NoError(t, a.Provision(context.Background()))
	assert.True(t, proto.Equal(&pb.ProvisionAccountRequest{
		TenantId:       "UTM",
		Role:           "student",
		DisplayName:    "Ion Popescu",
		ContactAddress: "ion@example.org",
	}, fc.gotProvision), "request = %v", fc.gotProvision)
	assert.Contains(t, out.String(), "ion.popescu.utm acc-9 (provisioned)")
	assert.NotContains(t, out.String(), "warning")
}

func TestProvision_PendingDeliveryWarns(t *testing.T) {
	fc := &fakeClient{
		loggedIn: true,
		provisionResp: &pb.ProvisionAccountResponse{
			Status:  "provisioned_pending_delivery",
			Error:   "credential_delivery_failed",
			Account: &pb.Account{Id: "acc-9", Username: "ion.popescu.utm"},
		},
	}
	// system administrators have no tenant and are asked for one
	a, out := newTestApp(fc, "utm\nsupervisor\nIon Popescu\nion@example.org\n")

	require.NoError(t, a.Provision(context.Background()))
	assert.Equal(t, "UTM", fc.gotProvision.GetTenantId())
	assert.Contains(t, out.String(), "use 'reissue acc-9' to retry")
}

func TestPending(t *testing.T) {
	fc := &fakeClient{loggedIn: true}
	a, out := newTestApp(fc, "")
	a.tenantID = "UTM"

	require.NoError(t, a.Pending(context.Background()))
	assert.Equal(t, "UTM", fc.gotPending)
	assert.Contains(t, out.String(), "No accounts awaiting delivery")

	fc.pending = []*pb.Account{{Id: "acc-2", Username: "bob.utm", Role: "student", DeliveryAttempts: 3, LastDeliveryError: "smtp down"}}
	require.NoError(t, a.Pending(context.Background()))
	assert.Contains(t, out.String(), "bob.utm")
	assert.Contains(t, out.String(), "attempts=3  smtp down")
}

func TestPending_MissingTenant(t *testing.T) {
	fc := &fakeClient{loggedIn: true}
	a, _ := newTestApp(fc, "\n")

	require.Error(t, a.Pending(context.Background()))
	assert.Equal(t, "", fc.gotPending)
}

func TestReissue(t *testing.T) {
	fc := &fakeClient{
		loggedIn:      true,
		provisionResp: &pb.ProvisionAccountResponse{Status: "provisioned", Account: &pb.Account{Id: "acc-2", Username: "bob.utm"}},
	}
	a, out := newTestApp(fc, "")
	a.tenantID = "UTM"

	require.NoError(t, a.Reissue(context.Background(), "acc-2"))
	assert.Equal(t, []string{"UTM", "acc-2"}, fc.gotReissue)
	assert.Contains(t, out.String(), "bob.utm acc-2 (provisioned)")
}

func TestCreateTenant(t *testing.T) {
	fc := &fakeClient{loggedIn: true}
	a, out := newTestApp(fc, "asem\nAcademia de Studii Economice\n500\n\n")

	require.NoError(t, a.CreateTenant(context.Background()))
	assert.True(t, proto.Equal(&pb.CreateTenantRequest{Code: "asem", Name: "Academia de Studii Economice", MaxStudents: 500}, fc.gotTenant),
		"request = %v", fc.gotTenant)
	assert.Contains(t, out.String(), "Tenant ASEM (Academia de Studii Economice) created")
}

func TestCreateTenant_BadLimit(t *testing.T) {
	for _, input := range []string{"asem\nASEM\nmany\n", "asem\nASEM\n3000000000\n0\n"} {
		fc := &fakeClient{loggedIn: true}
		a, _ := newTestApp(fc, input)

		require.Error(t, a.CreateTenant(context.Background()))
		assert.Nil(t, fc.gotTenant)
	}
}

func TestTenants(t *testing.T) {
	fc := &fakeClient{loggedIn: true}
	a, out := newTestApp(fc, "")

	require.NoError(t, a.Tenants(context.Background()))
	assert.Contains(t, out.String(), "No tenants")

	fc.tenants = []*pb.Tenant{
		{Code: "ASEM", Name: "Academia de Studii Economice", MaxStudents: 500},
		{Code: "UTM", Name: "Universitatea Tehnica", MaxSupervisors: 40},
	}
	require.NoError(t, a.Tenants(context.Background()))
	assert.Contains(t, out.String(), "students<=500 supervisors<=unlimited")
	assert.Contains(t, out.String(), "students<=unlimited supervisors<=40")

	fc.err = errors.New("permission denied")
	require.Error(t, a.Tenants(context.Background()))
	assert.Contains(t, out.String(), "error: permission denied")
}

func TestWhoAmIAndLogout(t *testing.T) {
	fc := &fakeClient{loggedIn: true}
	a, out := newTestApp(fc, "")
	a.userName = "root"

	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "account: acc-1\ntenant:  -\nrole:    system_admin")

	require.NoError(t, a.Logout(context.Background()))
	assert.False(t, fc.loggedIn)
	assert.Equal(t, "", a.getStatus())
	assert.Contains(t, out.String(), "Logged out")
}

func TestRun_LoginThenExit(t *testing.T) {
	silence := capturePrintln(t)
	stubPassword(t, "pw")
	fc := &fakeClient{loginResp: &pb.LoginResponse{Role: "system_admin"}}
	a, out := newTestApp(fc, "\nroot\nwhoami\nexit\n")

	a.Run(context.Background())

	assert.True(t, fc.closed)
	assert.Equal(t, "(root)", a.getStatus())
	assert.Contains(t, out.String(), "Welcome to unictl")
	assert.Contains(t, out.String(), "role:    system_admin")
	assert.Contains(t, strings.Join(*silence, "\n"), "Bye!")
}
