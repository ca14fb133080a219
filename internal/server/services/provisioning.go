package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/dbx"
	"github.com/dmitrijs2005/unigate/internal/logging"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/credentials"
	"github.com/dmitrijs2005/unigate/internal/server/metrics"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/dmitrijs2005/unigate/internal/server/notify"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// CredentialDispatcher hands credentials to the account holder, retrying as
// it sees fit. notify.RetryingDispatcher is the production implementation.
type CredentialDispatcher interface {
	Dispatch(ctx context.Context, address string, p notify.Payload) (notify.Outcome, error)
}

type ProvisionRequest struct {
	TenantID       string
	Role           models.Role
	DisplayName    string
	ContactAddress string
}

type ProvisionStatus string

const (
	StatusProvisioned     ProvisionStatus = "provisioned"
	StatusPendingDelivery ProvisionStatus = "provisioned_pending_delivery"
)

// ProvisionResult describes a persisted account. DeliveryError is set when
// Status is StatusPendingDelivery.
type ProvisionResult struct {
	Account       *models.Account
	Status        ProvisionStatus
	DeliveryError string
}

type ProvisioningService struct {
	db          *sql.DB
	tx          dbx.TxRunner
	repomanager repomanager.RepositoryManager
	guard       *access.Guard
	generator   *credentials.Generator
	hasher      *credentials.Hasher
	dispatcher  CredentialDispatcher
	metrics     *metrics.Metrics
	log         logging.Logger
}

func NewProvisioningService(db *sql.DB, m repomanager.RepositoryManager, guard *access.Guard,
	gen *credentials.Generator, hasher *credentials.Hasher, d CredentialDispatcher,
	mx *metrics.Metrics, log logging.Logger) *ProvisioningService {

	return &ProvisioningService{
		db:          db,
		tx:          dbx.SQLRunner{DB: db},
		repomanager: m,
		guard:       guard,
		generator:   gen,
		hasher:      hasher,
		dispatcher:  d,
		metrics:     mx,
		log:         log.With("module", "provisioning"),
	}
}

func (s *ProvisioningService) authorize(ctx context.Context, scope access.Scope, c access.Capability, r access.Resource) error {
	d := s.guard.Authorize(scope, c, r)
	if !d.Allowed {
		s.metrics.Denials.WithLabelValues(string(d.Reason)).Inc()
		s.log.Warn(ctx, "access denied", "capability", c, "reason", d.Reason,
			"account_id", scope.AccountID, "tenant", scope.TenantID)
	}
	return d.Err()
}

func validateProvision(req *ProvisionRequest) error {
	req.TenantID = NormalizeTenantCode(req.TenantID)
	req.DisplayName = strings.TrimSpace(req.DisplayName)
	req.ContactAddress = strings.TrimSpace(req.ContactAddress)

	if req.TenantID == "" {
		return fmt.Errorf("%w: tenant is required", common.ErrValidation)
	}
	if !req.Role.Valid() || req.Role.IsGlobal() {
		return fmt.Errorf("%w: role %q cannot be provisioned", common.ErrValidation, req.Role)
	}
	if req.DisplayName == "" {
		return fmt.Errorf("%w: display name is required", common.ErrValidation)
	}
	if _, err := mail.ParseAddress(req.ContactAddress); err != nil {
		return fmt.Errorf("%w: contact address is invalid", common.ErrValidation)
	}
	return nil
}

// Provision creates an account with generated credentials and delivers them.
//
// The account is committed before delivery starts. If delivery fails the
// result is still returned, with StatusPendingDelivery, alongside an error
// wrapping common.ErrCredentialDeliveryFailed.
func (s *ProvisioningService) Provision(ctx context.Context, scope access.Scope, req ProvisionRequest) (*ProvisionResult, error) {
	if err := validateProvision(&req); err != nil {
		return nil, err
	}

	capability, _ := access.ProvisionCapability(req.Role)
	if err := s.authorize(ctx, scope, capability, access.Resource{TenantID: req.TenantID}); err != nil {
		return nil, err
	}

	var (
		acct     *models.Account
		verifier string
	)
	claim := func(ctx context.Context, username string, password []byte) error {
		if verifier == "" {
			v, err := s.hasher.Hash(password)
			if err != nil {
				return err
			}
			verifier = v
		}
		candidate := &models.Account{
			ID:             uuid.NewString(),
			TenantID:       req.TenantID,
			Role:           req.Role,
			Username:       username,
			DisplayName:    req.DisplayName,
			ContactAddress: req.ContactAddress,
			Verifier:       verifier,
			DeliveryStatus: models.DeliveryPending,
		}
		err := s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
			return s.insertWithinCapacity(ctx, tx, candidate)
		})
		if err == nil {
			acct = candidate
		}
		return err
	}

	cred, err := s.generator.Generate(ctx, req.TenantID, req.Role, req.DisplayName, claim)
	if err != nil {
		s.metrics.Provisioned.WithLabelValues(string(req.Role), "failed").Inc()
		if errors.Is(err, common.ErrGenerationExhausted) {
			s.log.Warn(ctx, "username generation exhausted", "tenant", req.TenantID, "error", err)
		}
		return nil, err
	}
	defer cred.Wipe()

	s.log.Info(ctx, "account provisioned",
		"account_id", acct.ID, "tenant", acct.TenantID, "role", acct.Role, "username", acct.Username,
		"by", scope.AccountID)

	res, err := s.deliver(ctx, acct, cred)
	s.metrics.Provisioned.WithLabelValues(string(req.Role), string(res.Status)).Inc()
	return res, err
}

// insertWithinCapacity locks the tenant row, checks the role's limit and
// inserts the account, all inside tx.
func (s *ProvisioningService) insertWithinCapacity(ctx context.Context, tx dbx.DBTX, a *models.Account) error {
	tenant, err := s.repomanager.Tenants(tx).GetForUpdate(ctx, a.TenantID)
	if err != nil {
		return err
	}

	accounts := s.repomanager.Accounts(tx)
	if limit := tenant.LimitFor(a.Role); limit > 0 {
		n, err := accounts.CountByRole(ctx, a.TenantID, a.Role)
		if err != nil {
			return err
		}
		if n >= limit {
			return fmt.Errorf("%w: %s limit of %d reached", common.ErrCapacityExceeded, a.Role, limit)
		}
	}

	_, err = accounts.Create(ctx, a)
	return err
}

// deliver dispatches cred and records the outcome. It runs after the account
// is committed, and the status update survives cancellation of ctx so a
// cancelled request still leaves the account pending rather than unknown.
func (s *ProvisioningService) deliver(ctx context.Context, acct *models.Account, cred *credentials.Credential) (*ProvisionResult, error) {
	out, derr := s.dispatcher.Dispatch(ctx, acct.ContactAddress, notify.Payload{
		TenantID:    acct.TenantID,
		DisplayName: acct.DisplayName,
		Username:    cred.Username,
		Password:    cred.Password,
	})

	status, result := models.DeliveryPending, StatusPendingDelivery
	if derr == nil && out.Delivered {
		status, result = models.DeliveryDelivered, StatusProvisioned
		s.metrics.DeliveryAttempts.WithLabelValues("delivered").Add(float64(out.Attempts))
	} else {
		s.metrics.DeliveryAttempts.WithLabelValues("failed").Add(float64(out.Attempts))
		if derr == nil {
			derr = fmt.Errorf("%w: %s", common.ErrCredentialDeliveryFailed, out.Reason)
		}
	}

	uctx := context.WithoutCancel(ctx)
	if err := s.repomanager.Accounts(s.db).UpdateDelivery(uctx, acct.ID, status, out.Attempts, out.Reason); err != nil {
		s.log.Error(uctx, "recording delivery status failed", "account_id", acct.ID, "error", err)
	}
	acct.DeliveryStatus = status
	acct.DeliveryAttempts += out.Attempts
	acct.LastDeliveryError = out.Reason

	res := &ProvisionResult{Account: acct, Status: result}
	if result == StatusPendingDelivery {
		res.DeliveryError = out.Reason
		s.log.Warn(uctx, "credentials not delivered, account pending", "account_id", acct.ID, "reason", out.Reason)
		return res, derr
	}
	return res, nil
}

var errAlreadyDelivered = fmt.Errorf("%w: credentials were already delivered", common.ErrValidation)

func pendingInTenant(acct *models.Account, tenantID string) error {
	if acct.TenantID != tenantID {
		return common.ErrorNotFound
	}
	if acct.DeliveryStatus != models.DeliveryPending {
		return errAlreadyDelivered
	}
	return nil
}

// Reissue generates a fresh password for an account still waiting for its
// credentials and delivers it again.
//
// The verifier is replaced under a row lock after re-checking the status,
// so a delivery that completed meanwhile is never invalidated.
func (s *ProvisioningService) Reissue(ctx context.Context, scope access.Scope, tenantID, accountID string) (*ProvisionResult, error) {
	tenantID = NormalizeTenantCode(tenantID)
	if err := s.authorize(ctx, scope, access.AccountReissue, access.Resource{TenantID: tenantID}); err != nil {
		return nil, err
	}

	acct, err := s.getInTenant(ctx, tenantID, accountID)
	if err != nil {
		return nil, err
	}
	if err := pendingInTenant(acct, tenantID); err != nil {
		return nil, err
	}

	password, err := credentials.NewPassword()
	if err != nil {
		return nil, common.ErrorInternal
	}
	cred := &credentials.Credential{Username: acct.Username, Password: password}
	defer cred.Wipe()

	verifier, err := s.hasher.Hash(password)
	if err != nil {
		return nil, common.ErrorInternal
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)
		locked, err := repo.GetForUpdate(ctx, acct.ID)
		if err != nil {
			return err
		}
		if err := pendingInTenant(locked, tenantID); err != nil {
			return err
		}
		if err := repo.UpdateVerifier(ctx, locked.ID, verifier); err != nil {
			return err
		}
		acct = locked
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "credentials reissued", "account_id", acct.ID, "by", scope.AccountID)
	return s.deliver(ctx, acct, cred)
}

func (s *ProvisioningService) ListPending(ctx context.Context, scope access.Scope, tenantID string) ([]models.Account, error) {
	tenantID = NormalizeTenantCode(tenantID)
	if err := s.authorize(ctx, scope, access.AccountListPending, access.Resource{TenantID: tenantID}); err != nil {
		return nil, err
	}
	return s.repomanager.Accounts(s.db).ListPendingDelivery(ctx, tenantID)
}

// GetAccount returns an account of tenantID. Accounts of other tenants are
// reported as not found.
func (s *ProvisioningService) GetAccount(ctx context.Context, scope access.Scope, tenantID, accountID string) (*models.Account, error) {
	tenantID = NormalizeTenantCode(tenantID)
	if err := s.authorize(ctx, scope, access.AccountRead, access.Resource{TenantID: tenantID, OwnerID: accountID}); err != nil {
		return nil, err
	}
	return s.getInTenant(ctx, tenantID, accountID)
}

func (s *ProvisioningService) getInTenant(ctx context.Context, tenantID, accountID string) (*models.Account, error) {
	if _, err := uuid.Parse(accountID); err != nil {
		return nil, common.ErrorNotFound
	}
	acct, err := s.repomanager.Accounts(s.db).GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if acct.TenantID != tenantID {
		return nil, common.ErrorNotFound
	}
	return acct, nil
}
