package services

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/logging"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/metrics"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/repomanager"
)

var tenantCodeRe = regexp.MustCompile(`^[A-Z0-9]{2,16}$`)

// NormalizeTenantCode upper-cases and trims a tenant code. Codes are stored
// upper-case and embedded lower-case in usernames.
func NormalizeTenantCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type TenantService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	guard       *access.Guard
	metrics     *metrics.Metrics
	log         logging.Logger
}

func NewTenantService(db *sql.DB, m repomanager.RepositoryManager, guard *access.Guard, mx *metrics.Metrics, log logging.Logger) *TenantService {
	return &TenantService{db: db, repomanager: m, guard: guard, metrics: mx, log: log.With("module", "tenants")}
}

func (s *TenantService) authorize(ctx context.Context, scope access.Scope, c access.Capability, r access.Resource) error {
	d := s.guard.Authorize(scope, c, r)
	if !d.Allowed {
		s.metrics.Denials.WithLabelValues(string(d.Reason)).Inc()
		s.log.Warn(ctx, "access denied", "capability", c, "reason", d.Reason, "account_id", scope.AccountID)
	}
	return d.Err()
}

func validateLimits(maxStudents, maxSupervisors int) error {
	if maxStudents < 0 || maxSupervisors < 0 {
		return fmt.Errorf("%w: limits must not be negative", common.ErrValidation)
	}
	return nil
}

func (s *TenantService) Create(ctx context.Context, scope access.Scope, t models.Tenant) (*models.Tenant, error) {
	t.Code = NormalizeTenantCode(t.Code)
	t.Name = strings.TrimSpace(t.Name)

	if err := s.authorize(ctx, scope, access.TenantCreate, access.Resource{TenantID: t.Code}); err != nil {
		return nil, err
	}
	if !tenantCodeRe.MatchString(t.Code) {
		return nil, fmt.Errorf("%w: tenant code must be 2-16 letters or digits", common.ErrValidation)
	}
	if t.Name == "" {
		return nil, fmt.Errorf("%w: tenant name is required", common.ErrValidation)
	}
	if err := validateLimits(t.MaxStudents, t.MaxSupervisors); err != nil {
		return nil, err
	}

	created, err := s.repomanager.Tenants(s.db).Create(ctx, &t)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "tenant created", "tenant", created.Code, "by", scope.AccountID)
	return created, nil
}

func (s *TenantService) Get(ctx context.Context, scope access.Scope, code string) (*models.Tenant, error) {
	code = NormalizeTenantCode(code)
	if err := s.authorize(ctx, scope, access.TenantRead, access.Resource{TenantID: code}); err != nil {
		return nil, err
	}
	return s.repomanager.Tenants(s.db).Get(ctx, code)
}

// UpdateLimits changes capacity limits. Existing accounts are never removed
// when a limit drops below the current count.
func (s *TenantService) UpdateLimits(ctx context.Context, scope access.Scope, code string, maxStudents, maxSupervisors int) (*models.Tenant, error) {
	code = NormalizeTenantCode(code)
	if err := s.authorize(ctx, scope, access.TenantUpdate, access.Resource{TenantID: code}); err != nil {
		return nil, err
	}
	if err := validateLimits(maxStudents, maxSupervisors); err != nil {
		return nil, err
	}

	t, err := s.repomanager.Tenants(s.db).UpdateLimits(ctx, code, maxStudents, maxSupervisors)
	if err != nil {
		return nil, err
	}
	s.log.Info(ctx, "tenant limits updated", "tenant", code,
		"max_students", maxStudents, "max_supervisors", maxSupervisors, "by", scope.AccountID)
	return t, nil
}

func (s *TenantService) List(ctx context.Context, scope access.Scope) ([]models.Tenant, error) {
	if err := s.authorize(ctx, scope, access.TenantList, access.Resource{}); err != nil {
		return nil, err
	}
	return s.repomanager.Tenants(s.db).List(ctx)
}
