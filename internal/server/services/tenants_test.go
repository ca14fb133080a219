package services

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTenantService_Create(t *testing.T) {
	e := newEnv(5)
	ctx := context.Background()

	got, err := e.tenants.Create(ctx, sysAdmin, models.Tenant{Code: " asem ", Name: "ASEM", MaxStudents: 100})
	require.NoError(t, err)
	assert.Equal(t, "ASEM", got.Code)

	_, err = e.tenants.Create(ctx, sysAdmin, models.Tenant{Code: "ASEM", Name: "dup"})
	assert.ErrorIs(t, err, common.ErrTenantExists)

	_, err = e.tenants.Create(ctx, utmAdmin, models.Tenant{Code: "UTM", Name: "x"})
	assert.ErrorIs(t, err, common.ErrCapabilityDenied)

	for _, bad := range []models.Tenant{
		{Code: "A", Name: "short"},
		{Code: "HAS SPACE", Name: "x"},
		{Code: "OK", Name: ""},
		{Code: "NEG", Name: "x", MaxStudents: -1},
	} {
		_, err = e.tenants.Create(ctx, sysAdmin, bad)
		assert.ErrorIs(t, err, common.ErrValidation, "%+v", bad)
	}
}

func TestTenantService_Get(t *testing.T) {
	e := newEnv(5)
	ctx := context.Background()
	student := access.Scope{AccountID: "s", TenantID: "UTM", Role: models.RoleStudent}

	got, err := e.tenants.Get(ctx, student, "utm")
	require.NoError(t, err)
	assert.Equal(t, "UTM", got.Code)

	_, err = e.tenants.Get(ctx, student, "OTHERUNI")
	assert.ErrorIs(t, err, common.ErrTenantMismatch)

	_, err = e.tenants.Get(ctx, sysAdmin, "NOPE")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestTenantService_UpdateLimitsAndList(t *testing.T) {
	e := newEnv(5)
	ctx := context.Background()

	got, err := e.tenants.UpdateLimits(ctx, sysAdmin, "UTM", 10, 2)
	require.NoError(t, err)
	assert.Equal(t, 10, got.MaxStudents)
	assert.Equal(t, 2, got.MaxSupervisors)

	_, err = e.tenants.UpdateLimits(ctx, utmAdmin, "UTM", 1000, 1000)
	assert.ErrorIs(t, err, common.ErrCapabilityDenied)

	_, err = e.tenants.UpdateLimits(ctx, sysAdmin, "UTM", -1, 0)
	assert.ErrorIs(t, err, common.ErrValidation)

	list, err := e.tenants.List(ctx, sysAdmin)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "OTHERUNI", list[0].Code)

	_, err = e.tenants.List(ctx, utmAdmin)
	assert.ErrorIs(t, err, common.ErrTenantMismatch)
}

func TestTenantService_LoweredLimitKeepsAccounts(t *testing.T) {
	e := newEnv(5)
	ctx := context.Background()

	_, err := e.prov.Provision(ctx, utmAdmin, studentReq("olga"))
	require.NoError(t, err)
	_, err = e.prov.Provision(ctx, utmAdmin, studentReq("petr"))
	require.NoError(t, err)

	_, err = e.tenants.UpdateLimits(ctx, sysAdmin, "UTM", 1, 0)
	require.NoError(t, err)
	assert.Len(t, e.store.all(), 2)

	_, err = e.prov.Provision(ctx, utmAdmin, studentReq("rita"))
	assert.ErrorIs(t, err, common.ErrCapacityExceeded)
}
