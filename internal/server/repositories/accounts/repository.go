// Package accounts declares the storage contract for provisioned accounts.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/unigate/internal/server/models"
)

type Repository interface {
	// Create inserts the account and fills ID and CreatedAt. A username
	// already claimed in the account's namespace yields common.ErrUsernameTaken.
	Create(ctx context.Context, a *models.Account) (*models.Account, error)

	GetByID(ctx context.Context, id string) (*models.Account, error)

	// GetForUpdate is GetByID plus a row lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id string) (*models.Account, error)

	// FindForLogin resolves a username, optionally narrowed to a tenant.
	// Without a tenant, an admin match is preferred; any other ambiguity is
	// reported as common.ErrorNotFound.
	FindForLogin(ctx context.Context, tenantID, username string) (*models.Account, error)

	CountByRole(ctx context.Context, tenantID string, role models.Role) (int, error)

	// UpdateDelivery records the outcome of a delivery run: the new status,
	// how many attempts it took and the last failure reason.
	UpdateDelivery(ctx context.Context, id string, status models.DeliveryStatus, attempts int, lastErr string) error

	UpdateVerifier(ctx context.Context, id, verifier string) error
	ListPendingDelivery(ctx context.Context, tenantID string) ([]models.Account, error)
}
