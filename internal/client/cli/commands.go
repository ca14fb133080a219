package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/dmitrijs2005/unigate/internal/client/client"
	"github.com/dmitrijs2005/unigate/internal/common"
	pb "github.com/dmitrijs2005/unigate/internal/proto"
)

// getPassword is a test seam for GetPassword.
var getPassword = GetPassword

func (a *App) report(err error) error {
	fmt.Fprintln(a.out, "error:", client.Describe(err))
	return err
}

func (a *App) requireLogin() error {
	if !a.isLoggedIn() {
		return a.report(client.ErrNotLoggedIn)
	}
	return nil
}

// scopeTenant returns the tenant an operation targets. University admins are
// bound to their own tenant; a system administrator is asked for one.
func (a *App) scopeTenant() (string, error) {
	if a.tenantID != "" {
		return a.tenantID, nil
	}
	code, err := GetSimpleText(a.reader, "Tenant code", a.out)
	if err != nil {
		return "", err
	}
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return "", errors.New("tenant code is required")
	}
	return code, nil
}

func (a *App) Login(ctx context.Context) error {
	tenantID, err := GetSimpleText(a.reader, "Tenant code (empty for system administrator)", a.out)
	if err != nil {
		return a.report(err)
	}
	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		return a.report(err)
	}
	password, err := getPassword(a.out)
	if err != nil {
		return a.report(err)
	}
	defer common.WipeByteArray(password)

	cctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.client.Login(cctx, tenantID, username, password)
	if err != nil {
		return a.report(err)
	}

	a.userName = username
	a.tenantID = resp.GetTenantId()
	fmt.Fprintf(a.out, "Logged in as %s (%s), session valid until %s\n",
		username, resp.GetRole(), resp.GetExpiresAt().AsTime().Local().Format("15:04:05"))
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	cctx, cancel := a.callContext(ctx)
	defer cancel()

	me, err := a.client.WhoAmI(cctx)
	if err != nil {
		return a.report(err)
	}
	tenant := me.GetTenantId()
	if tenant == "" {
		tenant = "-"
	}
	fmt.Fprintf(a.out, "account: %s\ntenant:  %s\nrole:    %s\n", me.GetAccountId(), tenant, me.GetRole())
	return nil
}

func (a *App) Provision(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	tenantID, err := a.scopeTenant()
	if err != nil {
		return a.report(err)
	}
	role, err := GetSimpleText(a.reader, "Role (student|supervisor)", a.out)
	if err != nil {
		return a.report(err)
	}
	name, err := GetSimpleText(a.reader, "Display name", a.out)
	if err != nil {
		return a.report(err)
	}
	contact, err := GetSimpleText(a.reader, "Contact e-mail", a.out)
	if err != nil {
		return a.report(err)
	}

	cctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.client.ProvisionAccount(cctx, &pb.ProvisionAccountRequest{
		TenantId:       tenantID,
		Role:           strings.ToLower(role),
		DisplayName:    name,
		ContactAddress: contact,
	})
	if err != nil {
		return a.report(err)
	}
	a.printProvisioned(resp)
	return nil
}

func (a *App) printProvisioned(resp *pb.ProvisionAccountResponse) {
	acc := resp.GetAccount()
	fmt.Fprintf(a.out, "%s %s (%s)\n", acc.GetUsername(), acc.GetId(), resp.GetStatus())
	if resp.GetError() != "" {
		fmt.Fprintln(a.out, "warning: credentials could not be delivered, use 'reissue "+acc.GetId()+"' to retry")
	}
}

func (a *App) Pending(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	tenantID, err := a.scopeTenant()
	if err != nil {
		return a.report(err)
	}
	cctx, cancel := a.callContext(ctx)
	defer cancel()

	accounts, err := a.client.ListPendingDelivery(cctx, tenantID)
	if err != nil {
		return a.report(err)
	}
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No accounts awaiting delivery")
		return nil
	}
	for _, acc := range accounts {
		fmt.Fprintf(a.out, "%s  %-24s %-10s attempts=%d  %s\n",
			acc.GetId(), acc.GetUsername(), acc.GetRole(), acc.GetDeliveryAttempts(), acc.GetLastDeliveryError())
	}
	return nil
}

func (a *App) Reissue(ctx context.Context, accountID string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	tenantID, err := a.scopeTenant()
	if err != nil {
		return a.report(err)
	}
	cctx, cancel := a.callContext(ctx)
	defer cancel()

	resp, err := a.client.ReissueCredentials(cctx, tenantID, accountID)
	if err != nil {
		return a.report(err)
	}
	a.printProvisioned(resp)
	return nil
}

func (a *App) CreateTenant(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	code, err := GetSimpleText(a.reader, "Tenant code", a.out)
	if err != nil {
		return a.report(err)
	}
	name, err := GetSimpleText(a.reader, "Tenant name", a.out)
	if err != nil {
		return a.report(err)
	}
	maxStudents, err := GetNumber(a.reader, "Student limit (0 = unlimited)", 0, a.out)
	if err != nil {
		return a.report(err)
	}
	maxSupervisors, err := GetNumber(a.reader, "Supervisor limit (0 = unlimited)", 0, a.out)
	if err != nil {
		return a.report(err)
	}
	if maxStudents > math.MaxInt32 || maxSupervisors > math.MaxInt32 {
		return a.report(errors.New("limit is too large"))
	}

	cctx, cancel := a.callContext(ctx)
	defer cancel()

	t, err := a.client.CreateTenant(cctx, &pb.CreateTenantRequest{
		Code:           code,
		Name:           name,
		MaxStudents:    int32(maxStudents),
		MaxSupervisors: int32(maxSupervisors),
	})
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintf(a.out, "Tenant %s (%s) created\n", t.GetCode(), t.GetName())
	return nil
}

func (a *App) Tenants(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	cctx, cancel := a.callContext(ctx)
	defer cancel()

	tenants, err := a.client.ListTenants(cctx)
	if err != nil {
		return a.report(err)
	}
	if len(tenants) == 0 {
		fmt.Fprintln(a.out, "No tenants")
		return nil
	}
	for _, t := range tenants {
		fmt.Fprintf(a.out, "%-10s %-40s students<=%s supervisors<=%s\n",
			t.GetCode(), t.GetName(), limitText(t.GetMaxStudents()), limitText(t.GetMaxSupervisors()))
	}
	return nil
}

func limitText(n int32) string {
	if n == 0 {
		return "unlimited"
	}
	return fmt.Sprint(n)
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	cctx, cancel := a.callContext(ctx)
	defer cancel()

	err := a.client.Logout(cctx)
	a.userName, a.tenantID = "", ""
	if err != nil {
		return a.report(err)
	}
	fmt.Fprintln(a.out, "Logged out")
	return nil
}
