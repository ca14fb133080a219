// Package access turns verified token claims into a request scope and
// decides whether that scope may use a capability on a resource.
package access

import (
	"context"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/server/auth"
	"github.com/dmitrijs2005/unigate/internal/server/models"
)

// Scope is the verified identity of the caller. TenantID is empty only
// for global roles.
type Scope struct {
	AccountID string
	TenantID  string
	Role      models.Role
}

// Resolve derives the scope from verified claims. Claims whose tenant does
// not fit the role are rejected with common.ErrScopeViolation.
func Resolve(c *auth.Claims) (Scope, error) {
	if c == nil {
		return Scope{}, common.ErrScopeViolation
	}
	return NewScope(c.Subject, c.TenantID, c.Role)
}

// NewScope applies the same checks as Resolve to explicit values.
func NewScope(accountID, tenantID string, role models.Role) (Scope, error) {
	if accountID == "" || !role.Valid() {
		return Scope{}, common.ErrScopeViolation
	}
	if role.IsGlobal() != (tenantID == "") {
		return Scope{}, common.ErrScopeViolation
	}
	return Scope{AccountID: accountID, TenantID: tenantID, Role: role}, nil
}

type scopeKey struct{}

func WithScope(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

func ScopeFrom(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	return s, ok
}
