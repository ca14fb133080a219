package httpapi

import (
	"time"

	"github.com/dmitrijs2005/unigate/internal/server/models"
)

type loginRequest struct {
	TenantID string `json:"tenant_id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	AccountID string    `json:"account_id"`
	TenantID  string    `json:"tenant_id,omitempty"`
	Role      string    `json:"role"`
}

type scopeView struct {
	AccountID string `json:"account_id"`
	TenantID  string `json:"tenant_id,omitempty"`
	Role      string `json:"role"`
}

type provisionRequest struct {
	Role           string `json:"role"`
	DisplayName    string `json:"display_name"`
	ContactAddress string `json:"contact_address"`
}

// provisionResponse is returned by both provisioning and reissue. Error is
// "credential_delivery_failed" when Status is provisioned_pending_delivery.
type provisionResponse struct {
	Status  string      `json:"status"`
	Error   string      `json:"error,omitempty"`
	Account accountView `json:"account"`
}

type createTenantRequest struct {
	Code           string `json:"code"`
	Name           string `json:"name"`
	MaxStudents    int    `json:"max_students"`
	MaxSupervisors int    `json:"max_supervisors"`
}

type updateLimitsRequest struct {
	MaxStudents    int `json:"max_students"`
	MaxSupervisors int `json:"max_supervisors"`
}

// accountView never carries the verifier.
type accountView struct {
	ID                string    `json:"id"`
	TenantID          string    `json:"tenant_id,omitempty"`
	Role              string    `json:"role"`
	Username          string    `json:"username"`
	DisplayName       string    `json:"display_name"`
	ContactAddress    string    `json:"contact_address"`
	DeliveryStatus    string    `json:"delivery_status"`
	DeliveryAttempts  int       `json:"delivery_attempts"`
	LastDeliveryError string    `json:"last_delivery_error,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

type accountList struct {
	Accounts []accountView `json:"accounts"`
}

type tenantView struct {
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	MaxStudents    int       `json:"max_students"`
	MaxSupervisors int       `json:"max_supervisors"`
	CreatedAt      time.Time `json:"created_at"`
}

type tenantList struct {
	Tenants []tenantView `json:"tenants"`
}

func newAccountView(a *models.Account) accountView {
	if a == nil {
		return accountView{}
	}
	return accountView{
		ID:                a.ID,
		TenantID:          a.TenantID,
		Role:              string(a.Role),
		Username:          a.Username,
		DisplayName:       a.DisplayName,
		ContactAddress:    a.ContactAddress,
		DeliveryStatus:    string(a.DeliveryStatus),
		DeliveryAttempts:  a.DeliveryAttempts,
		LastDeliveryError: a.LastDeliveryError,
		CreatedAt:         a.CreatedAt,
	}
}

func newAccountList(in []models.Account) accountList {
	out := accountList{Accounts: make([]accountView, 0, len(in))}
	for i := range in {
		out.Accounts = append(out.Accounts, newAccountView(&in[i]))
	}
	return out
}

func newTenantView(t *models.Tenant) tenantView {
	if t == nil {
		return tenantView{}
	}
	return tenantView{
		Code:           t.Code,
		Name:           t.Name,
		MaxStudents:    t.MaxStudents,
		MaxSupervisors: t.MaxSupervisors,
		CreatedAt:      t.CreatedAt,
	}
}

func newTenantList(in []models.Tenant) tenantList {
	out := tenantList{Tenants: make([]tenantView, 0, len(in))}
	for i := range in {
		out.Tenants = append(out.Tenants, newTenantView(&in[i]))
	}
	return out
}
