package services

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/dbx"
	"github.com/dmitrijs2005/unigate/internal/logging"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/auth"
	"github.com/dmitrijs2005/unigate/internal/server/credentials"
	"github.com/dmitrijs2005/unigate/internal/server/metrics"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/dmitrijs2005/unigate/internal/server/notify"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/tenants"
	"github.com/prometheus/client_golang/prometheus"
)

// memStore mimics the unique indexes of the accounts table.
type memStore struct {
	mu       sync.Mutex
	tenants  map[string]*models.Tenant
	accounts map[string]*models.Account

	findErr     error
	updateCtxOK []bool
	onLock      func(a *models.Account)
}

func newMemStore() *memStore {
	return &memStore{tenants: map[string]*models.Tenant{}, accounts: map[string]*models.Account{}}
}

func (m *memStore) addTenant(code string, maxStudents, maxSupervisors int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tenants[code] = &models.Tenant{Code: code, Name: code, MaxStudents: maxStudents, MaxSupervisors: maxSupervisors}
}

func (m *memStore) byUsername(username string) []*models.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Account
	for _, a := range m.accounts {
		if a.Username == username {
			c := *a
			out = append(out, &c)
		}
	}
	return out
}

func (m *memStore) all() []models.Account {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out
}

type fakeTenants struct{ st *memStore }

func (f fakeTenants) Create(ctx context.Context, t *models.Tenant) (*models.Tenant, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	if _, ok := f.st.tenants[t.Code]; ok {
		return nil, common.ErrTenantExists
	}
	t.CreatedAt = time.Now()
	c := *t
	f.st.tenants[t.Code] = &c
	return t, nil
}

func (f fakeTenants) Get(ctx context.Context, code string) (*models.Tenant, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	t, ok := f.st.tenants[code]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *t
	return &c, nil
}

func (f fakeTenants) GetForUpdate(ctx context.Context, code string) (*models.Tenant, error) {
	return f.Get(ctx, code)
}

func (f fakeTenants) UpdateLimits(ctx context.Context, code string, maxStudents, maxSupervisors int) (*models.Tenant, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	t, ok := f.st.tenants[code]
	if !ok {
		return nil, common.ErrorNotFound
	}
	t.MaxStudents, t.MaxSupervisors = maxStudents, maxSupervisors
	c := *t
	return &c, nil
}

func (f fakeTenants) List(ctx context.Context) ([]models.Tenant, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	var out []models.Tenant
	for _, t := range f.st.tenants {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

type fakeAccounts struct{ st *memStore }

func (f fakeAccounts) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	for _, e := range f.st.accounts {
		if e.Username != a.Username {
			continue
		}
		if a.TenantID != "" && e.TenantID == a.TenantID {
			return nil, common.ErrUsernameTaken
		}
		if a.Role.IsAdmin() && e.Role.IsAdmin() {
			return nil, common.ErrUsernameTaken
		}
	}
	a.CreatedAt = time.Now()
	c := *a
	f.st.accounts[a.ID] = &c
	return a, nil
}

func (f fakeAccounts) GetByID(ctx context.Context, id string) (*models.Account, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	a, ok := f.st.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	c := *a
	return &c, nil
}

func (f fakeAccounts) GetForUpdate(ctx context.Context, id string) (*models.Account, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	a, ok := f.st.accounts[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	if f.st.onLock != nil {
		f.st.onLock(a)
	}
	c := *a
	return &c, nil
}

func (f fakeAccounts) FindForLogin(ctx context.Context, tenantID, username string) (*models.Account, error) {
	if f.st.findErr != nil {
		return nil, f.st.findErr
	}
	var found []*models.Account
	for _, a := range f.st.byUsername(username) {
		if tenantID == "" || a.TenantID == tenantID {
			found = append(found, a)
		}
	}
	if len(found) == 1 {
		return found[0], nil
	}
	var admins []*models.Account
	for _, a := range found {
		if a.Role.IsAdmin() {
			admins = append(admins, a)
		}
	}
	if len(admins) != 1 {
		return nil, common.ErrorNotFound
	}
	return admins[0], nil
}

func (f fakeAccounts) CountByRole(ctx context.Context, tenantID string, role models.Role) (int, error) {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	n := 0
	for _, a := range f.st.accounts {
		if a.TenantID == tenantID && a.Role == role {
			n++
		}
	}
	return n, nil
}

func (f fakeAccounts) UpdateDelivery(ctx context.Context, id string, status models.DeliveryStatus, attempts int, lastErr string) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	f.st.updateCtxOK = append(f.st.updateCtxOK, ctx.Err() == nil)
	a, ok := f.st.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.DeliveryStatus = status
	a.DeliveryAttempts += attempts
	a.LastDeliveryError = lastErr
	return nil
}

func (f fakeAccounts) UpdateVerifier(ctx context.Context, id, verifier string) error {
	f.st.mu.Lock()
	defer f.st.mu.Unlock()
	a, ok := f.st.accounts[id]
	if !ok {
		return common.ErrorNotFound
	}
	a.Verifier = verifier
	return nil
}

func (f fakeAccounts) ListPendingDelivery(ctx context.Context, tenantID string) ([]models.Account, error) {
	var out []models.Account
	for _, a := range f.st.all() {
		if a.TenantID == tenantID && a.DeliveryStatus == models.DeliveryPending {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeRepoManager struct{ st *memStore }

func (m fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m fakeRepoManager) Tenants(dbx.DBTX) tenants.Repository          { return fakeTenants{m.st} }
func (m fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository        { return fakeAccounts{m.st} }

var _ repomanager.RepositoryManager = fakeRepoManager{}

// lockRunner serializes transactions the way the tenant row lock does.
type lockRunner struct{ mu sync.Mutex }

func (r *lockRunner) WithTx(ctx context.Context, fn func(ctx context.Context, tx dbx.DBTX) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fn(ctx, nil)
}

type delivery struct {
	address  string
	username string
	password string
}

type fakeDispatcher struct {
	mu         sync.Mutex
	fail       bool
	onDispatch func()
	sent       []delivery
}

func (d *fakeDispatcher) Dispatch(ctx context.Context, address string, p notify.Payload) (notify.Outcome, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.onDispatch != nil {
		d.onDispatch()
	}
	if err := ctx.Err(); err != nil {
		return notify.Outcome{Result: notify.Failed(err.Error())}, errors.Join(common.ErrCredentialDeliveryFailed, err)
	}
	if d.fail {
		return notify.Outcome{Result: notify.Failed("relay unreachable"), Attempts: 4}, common.ErrCredentialDeliveryFailed
	}
	d.sent = append(d.sent, delivery{address: address, username: p.Username, password: string(p.Password)})
	return notify.Outcome{Result: notify.Delivered(), Attempts: 1}, nil
}

func (d *fakeDispatcher) last() delivery {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sent[len(d.sent)-1]
}

type fakeDenylist struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	err     error
}

func (f *fakeDenylist) Revoke(ctx context.Context, jti string, until time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if f.revoked == nil {
		f.revoked = map[string]time.Time{}
	}
	f.revoked[jti] = until
	return nil
}

func (f *fakeDenylist) IsRevoked(ctx context.Context, jti string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.revoked[jti]
	return ok, nil
}

var testSecret = auth.Key{ID: "test", Secret: []byte("0123456789abcdef0123456789abcdef")}

func cheapHasher() *credentials.Hasher {
	return credentials.NewHasher(credentials.HashParams{MemoryKiB: 1024, Iterations: 1, Threads: 1})
}

type env struct {
	store      *memStore
	dispatcher *fakeDispatcher
	denylist   *fakeDenylist
	hasher     *credentials.Hasher
	issuer     *auth.Issuer
	auth       *AuthService
	prov       *ProvisioningService
	tenants    *TenantService
}

func newEnv(maxAttempts int) *env {
	st := newMemStore()
	st.addTenant("UTM", 0, 0)
	st.addTenant("OTHERUNI", 0, 0)

	ring, err := auth.NewKeyring(testSecret, time.Hour)
	if err != nil {
		panic(err)
	}
	issuer := auth.NewIssuer(ring, time.Hour)
	hasher := cheapHasher()
	mx := metrics.New(prometheus.NewRegistry())
	rm := fakeRepoManager{st}
	disp := &fakeDispatcher{}
	dl := &fakeDenylist{}
	log := logging.Nop{}

	as, err := NewAuthService(nil, rm, hasher, issuer, dl, mx, log)
	if err != nil {
		panic(err)
	}
	ps := NewProvisioningService(nil, rm, access.NewGuard(), credentials.NewGenerator(maxAttempts), hasher, disp, mx, log)
	ps.tx = &lockRunner{}

	return &env{
		store:      st,
		dispatcher: disp,
		denylist:   dl,
		hasher:     hasher,
		issuer:     issuer,
		auth:       as,
		prov:       ps,
		tenants:    NewTenantService(nil, rm, access.NewGuard(), mx, log),
	}
}

var (
	sysAdmin = access.Scope{AccountID: "00000000-0000-0000-0000-000000000001", Role: models.RoleSystemAdmin}
	utmAdmin = access.Scope{AccountID: "00000000-0000-0000-0000-000000000002", TenantID: "UTM", Role: models.RoleUniversityAdmin}
	utmSuper = access.Scope{AccountID: "00000000-0000-0000-0000-000000000003", TenantID: "UTM", Role: models.RoleSupervisor}
)
