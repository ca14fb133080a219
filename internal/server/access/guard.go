package access

import (
	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/server/models"
)

type Capability string

const (
	TenantCreate Capability = "tenant:create"
	TenantList   Capability = "tenant:list"
	TenantUpdate Capability = "tenant:update"
	TenantRead   Capability = "tenant:read"

	ProvisionUniversityAdmin Capability = "account:provision-university-admin"
	ProvisionSupervisor      Capability = "account:provision-supervisor"
	ProvisionStudent         Capability = "account:provision-student"
	AccountRead              Capability = "account:read"
	AccountListPending       Capability = "account:list-pending"
	AccountReissue           Capability = "account:reissue-credentials"

	ProjectRead  Capability = "project:read"
	ProjectWrite Capability = "project:write"
)

type grant uint8

const (
	allowed grant = iota + 1
	// ownOnly lets the role act only on resources it owns.
	ownOnly
)

var capabilities = map[Capability]map[models.Role]grant{
	TenantCreate: {models.RoleSystemAdmin: allowed},
	TenantList:   {models.RoleSystemAdmin: allowed},
	TenantUpdate: {models.RoleSystemAdmin: allowed},
	TenantRead: {
		models.RoleSystemAdmin:     allowed,
		models.RoleUniversityAdmin: allowed,
		models.RoleSupervisor:      allowed,
		models.RoleStudent:         allowed,
	},

	ProvisionUniversityAdmin: {models.RoleSystemAdmin: allowed},
	ProvisionSupervisor:      {models.RoleUniversityAdmin: allowed},
	ProvisionStudent: {
		models.RoleUniversityAdmin: allowed,
		models.RoleSupervisor:      allowed,
	},
	AccountRead: {
		models.RoleSystemAdmin:     allowed,
		models.RoleUniversityAdmin: allowed,
		models.RoleSupervisor:      allowed,
		models.RoleStudent:         ownOnly,
	},
	AccountListPending: {
		models.RoleSystemAdmin:     allowed,
		models.RoleUniversityAdmin: allowed,
	},
	AccountReissue: {
		models.RoleSystemAdmin:     allowed,
		models.RoleUniversityAdmin: allowed,
	},

	ProjectRead: {
		models.RoleUniversityAdmin: allowed,
		models.RoleSupervisor:      allowed,
		models.RoleStudent:         ownOnly,
	},
	ProjectWrite: {
		models.RoleUniversityAdmin: allowed,
		models.RoleSupervisor:      allowed,
		models.RoleStudent:         ownOnly,
	},
}

// ProvisionCapability maps the role being created to the capability needed
// to create it. System admins are never provisioned through the API.
func ProvisionCapability(role models.Role) (Capability, bool) {
	switch role {
	case models.RoleStudent:
		return ProvisionStudent, true
	case models.RoleSupervisor:
		return ProvisionSupervisor, true
	case models.RoleUniversityAdmin:
		return ProvisionUniversityAdmin, true
	}
	return "", false
}

// Resource identifies what a capability is applied to. TenantID is empty
// for global resources such as the tenant list; OwnerID is the owning
// account where ownership matters.
type Resource struct {
	TenantID string
	OwnerID  string
}

type DenyReason string

const (
	TenantMismatch   DenyReason = "tenant_mismatch"
	CapabilityDenied DenyReason = "capability_denied"
)

type Decision struct {
	Allowed bool
	Reason  DenyReason
}

func Allow() Decision                 { return Decision{Allowed: true} }
func Deny(reason DenyReason) Decision { return Decision{Reason: reason} }

// Err returns nil for an allow and the matching sentinel for a deny.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	if d.Reason == TenantMismatch {
		return common.ErrTenantMismatch
	}
	return common.ErrCapabilityDenied
}

type Guard struct{}

func NewGuard() *Guard { return &Guard{} }

// Authorize requires both a tenant match and a capability grant. For
// tenant-bound roles the tenant is checked first, so a foreign resource is
// always reported as TenantMismatch whatever the capability.
func (g *Guard) Authorize(s Scope, c Capability, r Resource) Decision {
	if !s.Role.IsGlobal() && r.TenantID != s.TenantID {
		return Deny(TenantMismatch)
	}

	switch capabilities[c][s.Role] {
	case allowed:
		return Allow()
	case ownOnly:
		if r.OwnerID != "" && r.OwnerID == s.AccountID {
			return Allow()
		}
	}
	return Deny(CapabilityDenied)
}
