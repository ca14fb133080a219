// Package tenants declares the storage contract for universities (tenants).
package tenants

import (
	"context"

	"github.com/dmitrijs2005/unigate/internal/server/models"
)

type Repository interface {
	// Create inserts a tenant. A duplicate code yields common.ErrTenantExists.
	Create(ctx context.Context, t *models.Tenant) (*models.Tenant, error)

	// Get returns common.ErrorNotFound for unknown codes.
	Get(ctx context.Context, code string) (*models.Tenant, error)

	// GetForUpdate is Get plus a row lock held until the surrounding
	// transaction ends. Only meaningful on a transactional DBTX.
	GetForUpdate(ctx context.Context, code string) (*models.Tenant, error)

	UpdateLimits(ctx context.Context, code string, maxStudents, maxSupervisors int) (*models.Tenant, error)
	List(ctx context.Context) ([]models.Tenant, error)
}
