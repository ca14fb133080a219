package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/unigate/internal/dbx"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/accounts"
	"github.com/dmitrijs2005/unigate/internal/server/repositories/tenants"
)

// RepositoryManager vends repositories bound to either the pool or a
// transaction, so services can choose per call.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Tenants(db dbx.DBTX) tenants.Repository
	Accounts(db dbx.DBTX) accounts.Repository
}
