package access

import (
	"testing"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/stretchr/testify/assert"
)

var tenantRoles = []models.Role{models.RoleStudent, models.RoleSupervisor, models.RoleUniversityAdmin}

func allCapabilities() []Capability {
	caps := make([]Capability, 0, len(capabilities))
	for c := range capabilities {
		caps = append(caps, c)
	}
	return caps
}

func TestAuthorize_TenantIsolation(t *testing.T) {
	g := NewGuard()
	for _, role := range tenantRoles {
		s := Scope{AccountID: "a1", TenantID: "UTM", Role: role}
		for _, c := range allCapabilities() {
			d := g.Authorize(s, c, Resource{TenantID: "OtherUni", OwnerID: "a1"})
			assert.False(t, d.Allowed, "%s/%s", role, c)
			assert.Equal(t, TenantMismatch, d.Reason, "%s/%s", role, c)
			assert.ErrorIs(t, d.Err(), common.ErrTenantMismatch)
		}
	}
}

func TestAuthorize_Table(t *testing.T) {
	g := NewGuard()
	utm := Resource{TenantID: "UTM"}

	tests := []struct {
		name string
		role models.Role
		cap  Capability
		res  Resource
		want Decision
	}{
		{"sysadmin creates tenant", models.RoleSystemAdmin, TenantCreate, Resource{TenantID: "NEW"}, Allow()},
		{"uniadmin cannot create tenant", models.RoleUniversityAdmin, TenantCreate, utm, Deny(CapabilityDenied)},
		{"sysadmin lists tenants", models.RoleSystemAdmin, TenantList, Resource{}, Allow()},
		{"student reads own tenant", models.RoleStudent, TenantRead, utm, Allow()},
		{"uniadmin provisions supervisor", models.RoleUniversityAdmin, ProvisionSupervisor, utm, Allow()},
		{"supervisor cannot provision supervisor", models.RoleSupervisor, ProvisionSupervisor, utm, Deny(CapabilityDenied)},
		{"sysadmin cannot provision supervisor", models.RoleSystemAdmin, ProvisionSupervisor, utm, Deny(CapabilityDenied)},
		{"supervisor provisions student", models.RoleSupervisor, ProvisionStudent, utm, Allow()},
		{"student cannot provision student", models.RoleStudent, ProvisionStudent, utm, Deny(CapabilityDenied)},
		{"sysadmin provisions uniadmin", models.RoleSystemAdmin, ProvisionUniversityAdmin, utm, Allow()},
		{"uniadmin cannot provision uniadmin", models.RoleUniversityAdmin, ProvisionUniversityAdmin, utm, Deny(CapabilityDenied)},
		{"uniadmin lists pending", models.RoleUniversityAdmin, AccountListPending, utm, Allow()},
		{"supervisor cannot list pending", models.RoleSupervisor, AccountListPending, utm, Deny(CapabilityDenied)},
		{"sysadmin reissues anywhere", models.RoleSystemAdmin, AccountReissue, Resource{TenantID: "ANY"}, Allow()},
		{"student reads own account", models.RoleStudent, AccountRead, Resource{TenantID: "UTM", OwnerID: "me"}, Allow()},
		{"student reads other account", models.RoleStudent, AccountRead, Resource{TenantID: "UTM", OwnerID: "other"}, Deny(CapabilityDenied)},
		{"student without owner", models.RoleStudent, ProjectRead, utm, Deny(CapabilityDenied)},
		{"student writes own project", models.RoleStudent, ProjectWrite, Resource{TenantID: "UTM", OwnerID: "me"}, Allow()},
		{"supervisor writes any project", models.RoleSupervisor, ProjectWrite, Resource{TenantID: "UTM", OwnerID: "other"}, Allow()},
		{"sysadmin has no project access", models.RoleSystemAdmin, ProjectRead, utm, Deny(CapabilityDenied)},
		{"unknown capability", models.RoleUniversityAdmin, Capability("tenant:delete"), utm, Deny(CapabilityDenied)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scope{AccountID: "me", TenantID: "UTM", Role: tt.role}
			if tt.role.IsGlobal() {
				s.TenantID = ""
			}
			assert.Equal(t, tt.want, g.Authorize(s, tt.cap, tt.res))
		})
	}
}

// alice in UTM may read within UTM and is refused the same call in OtherUni.
func TestAuthorize_StudentScenario(t *testing.T) {
	g := NewGuard()
	alice := Scope{AccountID: "alice-id", TenantID: "UTM", Role: models.RoleStudent}

	d := g.Authorize(alice, ProjectRead, Resource{TenantID: "UTM", OwnerID: "alice-id"})
	assert.True(t, d.Allowed)
	assert.NoError(t, d.Err())

	d = g.Authorize(alice, ProjectRead, Resource{TenantID: "OtherUni", OwnerID: "alice-id"})
	assert.Equal(t, Deny(TenantMismatch), d)
}

func TestDecision_Err(t *testing.T) {
	assert.NoError(t, Allow().Err())
	assert.ErrorIs(t, Deny(TenantMismatch).Err(), common.ErrTenantMismatch)
	assert.ErrorIs(t, Deny(CapabilityDenied).Err(), common.ErrCapabilityDenied)
}

func TestProvisionCapability(t *testing.T) {
	c, ok := ProvisionCapability(models.RoleStudent)
	assert.True(t, ok)
	assert.Equal(t, ProvisionStudent, c)

	c, ok = ProvisionCapability(models.RoleSupervisor)
	assert.True(t, ok)
	assert.Equal(t, ProvisionSupervisor, c)

	c, ok = ProvisionCapability(models.RoleUniversityAdmin)
	assert.True(t, ok)
	assert.Equal(t, ProvisionUniversityAdmin, c)

	_, ok = ProvisionCapability(models.RoleSystemAdmin)
	assert.False(t, ok)
}
