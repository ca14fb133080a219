package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/dbx"
	"github.com/dmitrijs2005/unigate/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectAccount = `SELECT id, COALESCE(tenant_code, ''), role, username, display_name, contact_address,
       verifier, delivery_status, delivery_attempts, last_delivery_error, created_at
  FROM accounts`

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(s scanner) (*models.Account, error) {
	a := &models.Account{}
	err := s.Scan(&a.ID, &a.TenantID, &a.Role, &a.Username, &a.DisplayName, &a.ContactAddress,
		&a.Verifier, &a.DeliveryStatus, &a.DeliveryAttempts, &a.LastDeliveryError, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func nullableTenant(tenantID string) sql.NullString {
	return sql.NullString{String: tenantID, Valid: tenantID != ""}
}

func (r *PostgresRepository) Create(ctx context.Context, a *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (id, tenant_code, role, username, display_name, contact_address, verifier, delivery_status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query,
		a.ID, nullableTenant(a.TenantID), string(a.Role), a.Username, a.DisplayName, a.ContactAddress,
		a.Verifier, string(a.DeliveryStatus)).Scan(&a.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrUsernameTaken
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return a, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Account, error) {
	return r.get(ctx, selectAccount+` WHERE id = $1`, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.Account, error) {
	return r.get(ctx, selectAccount+` WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresRepository) get(ctx context.Context, query string, args ...any) (*models.Account, error) {
	a, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) FindForLogin(ctx context.Context, tenantID, username string) (*models.Account, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if tenantID == "" {
		rows, err = r.db.QueryContext(ctx, selectAccount+` WHERE username = $1`, username)
	} else {
		rows, err = r.db.QueryContext(ctx, selectAccount+` WHERE tenant_code = $1 AND username = $2 LIMIT 2`, tenantID, username)
	}
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var found []*models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		found = append(found, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return resolveLogin(found)
}

// resolveLogin picks the single account a login names. Without a tenant a
// username may match accounts in several namespaces; the admin namespace is
// global, so a lone admin match wins.
func resolveLogin(found []*models.Account) (*models.Account, error) {
	if len(found) == 1 {
		return found[0], nil
	}
	var admin *models.Account
	for _, a := range found {
		if !a.Role.IsAdmin() {
			continue
		}
		if admin != nil {
			return nil, common.ErrorNotFound
		}
		admin = a
	}
	if admin == nil {
		return nil, common.ErrorNotFound
	}
	return admin, nil
}

func (r *PostgresRepository) CountByRole(ctx context.Context, tenantID string, role models.Role) (int, error) {
	query := `SELECT COUNT(*) FROM accounts WHERE tenant_code = $1 AND role = $2`

	var n int
	if err := r.db.QueryRowContext(ctx, query, tenantID, string(role)).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) UpdateDelivery(ctx context.Context, id string, status models.DeliveryStatus, attempts int, lastErr string) error {
	query :=
		`UPDATE accounts
		    SET delivery_status = $2, delivery_attempts = delivery_attempts + $3, last_delivery_error = $4
		  WHERE id = $1`

	return r.execOne(ctx, query, id, string(status), attempts, lastErr)
}

func (r *PostgresRepository) UpdateVerifier(ctx context.Context, id, verifier string) error {
	return r.execOne(ctx, `UPDATE accounts SET verifier = $2 WHERE id = $1`, id, verifier)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) ListPendingDelivery(ctx context.Context, tenantID string) ([]models.Account, error) {
	query := selectAccount + ` WHERE tenant_code = $1 AND delivery_status = 'pending_delivery' ORDER BY created_at`

	rows, err := r.db.QueryContext(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
