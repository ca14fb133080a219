package tenants

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

func (r *PostgresRepository) Create(ctx context.Context, t *models.Tenant) (*models.Tenant, error) {
	query :=
		`INSERT INTO tenants (code, name, max_students, max_supervisors)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, t.Code, t.Name, t.MaxStudents, t.MaxSupervisors).Scan(&t.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrTenantExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return t, nil
}

const selectTenant = `SELECT code, name, max_students, max_supervisors, created_at FROM tenants`

func (r *PostgresRepository) Get(ctx context.Context, code string) (*models.Tenant, error) {
	return r.get(ctx, selectTenant+` WHERE code = $1`, code)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, code string) (*models.Tenant, error) {
	return r.get(ctx, selectTenant+` WHERE code = $1 FOR UPDATE`, code)
}

func (r *PostgresRepository) get(ctx context.Context, query, code string) (*models.Tenant, error) {
	t := &models.Tenant{}
	err := r.db.QueryRowContext(ctx, query, code).
		Scan(&t.Code, &t.Name, &t.MaxStudents, &t.MaxSupervisors, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) UpdateLimits(ctx context.Context, code string, maxStudents, maxSupervisors int) (*models.Tenant, error) {
	query :=
		`UPDATE tenants SET max_students = $2, max_supervisors = $3
		 WHERE code = $1
		 RETURNING code, name, max_students, max_supervisors, created_at`

	t := &models.Tenant{}
	err := r.db.QueryRowContext(ctx, query, code, maxStudents, maxSupervisors).
		Scan(&t.Code, &t.Name, &t.MaxStudents, &t.MaxSupervisors, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return t, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]models.Tenant, error) {
	rows, err := r.db.QueryContext(ctx, selectTenant+` ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []models.Tenant
	for rows.Next() {
		var t models.Tenant
		if err := rows.Scan(&t.Code, &t.Name, &t.MaxStudents, &t.MaxSupervisors, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
