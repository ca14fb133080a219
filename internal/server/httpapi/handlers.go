package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/unigate/internal/common"
	"github.com/dmitrijs2005/unigate/internal/logging"
	"github.com/dmitrijs2005/unigate/internal/server/access"
	"github.com/dmitrijs2005/unigate/internal/server/auth"
	"github.com/dmitrijs2005/unigate/internal/server/models"
	"github.com/dmitrijs2005/unigate/internal/server/services"
	"github.com/gorilla/mux"
)

const maxBodyBytes = 1 << 20

type handlers struct {
	deps   Deps
	logger logging.Logger
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, services.KindValidation)
		return false
	}
	return true
}

// scopeOf is only called behind authenticate, which always sets the scope.
func scopeOf(r *http.Request) access.Scope {
	s, _ := access.ScopeFrom(r.Context())
	return s
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decode(w, r, &req) {
		return
	}
	password := []byte(req.Password)
	defer common.WipeByteArray(password)

	res, err := h.deps.Auth.Login(r.Context(), req.TenantID, req.Username, password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		Token:     res.Token.Value,
		ExpiresAt: res.Token.ExpiresAt,
		AccountID: res.Scope.AccountID,
		TenantID:  res.Scope.TenantID,
		Role:      string(res.Scope.Role),
	})
}

func (h *handlers) logout(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.ClaimsFrom(r.Context())
	if err := h.deps.Auth.Logout(r.Context(), claims); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) me(w http.ResponseWriter, r *http.Request) {
	s := scopeOf(r)
	writeJSON(w, http.StatusOK, scopeView{AccountID: s.AccountID, TenantID: s.TenantID, Role: string(s.Role)})
}

func (h *handlers) createTenant(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := h.deps.Tenants.Create(r.Context(), scopeOf(r), models.Tenant{
		Code:           req.Code,
		Name:           req.Name,
		MaxStudents:    req.MaxStudents,
		MaxSupervisors: req.MaxSupervisors,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, newTenantView(t))
}

func (h *handlers) listTenants(w http.ResponseWriter, r *http.Request) {
	ts, err := h.deps.Tenants.List(r.Context(), scopeOf(r))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newTenantList(ts))
}

func (h *handlers) getTenant(w http.ResponseWriter, r *http.Request) {
	t, err := h.deps.Tenants.Get(r.Context(), scopeOf(r), mux.Vars(r)["tenantID"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newTenantView(t))
}

func (h *handlers) updateLimits(w http.ResponseWriter, r *http.Request) {
	var req updateLimitsRequest
	if !decode(w, r, &req) {
		return
	}

	t, err := h.deps.Tenants.UpdateLimits(r.Context(), scopeOf(r), mux.Vars(r)["tenantID"], req.MaxStudents, req.MaxSupervisors)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newTenantView(t))
}

// writeProvisioned answers 201 for delivered credentials and 202 when the
// account exists but is still waiting for its credentials.
func writeProvisioned(w http.ResponseWriter, res *services.ProvisionResult, err error) {
	if err != nil && !(res != nil && errors.Is(err, common.ErrCredentialDeliveryFailed)) {
		writeServiceError(w, err)
		return
	}

	out := provisionResponse{Status: string(res.Status), Account: newAccountView(res.Account)}
	code := http.StatusCreated
	if res.Status == services.StatusPendingDelivery {
		out.Error = services.KindDeliveryFailed
		code = http.StatusAccepted
	}
	writeJSON(w, code, out)
}

func (h *handlers) provision(w http.ResponseWriter, r *http.Request) {
	var req provisionRequest
	if !decode(w, r, &req) {
		return
	}

	res, err := h.deps.Provisioning.Provision(r.Context(), scopeOf(r), services.ProvisionRequest{
		TenantID:       mux.Vars(r)["tenantID"],
		Role:           models.Role(req.Role),
		DisplayName:    req.DisplayName,
		ContactAddress: req.ContactAddress,
	})
	writeProvisioned(w, res, err)
}

func (h *handlers) listPending(w http.ResponseWriter, r *http.Request) {
	accts, err := h.deps.Provisioning.ListPending(r.Context(), scopeOf(r), mux.Vars(r)["tenantID"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newAccountList(accts))
}

func (h *handlers) getAccount(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	a, err := h.deps.Provisioning.GetAccount(r.Context(), scopeOf(r), vars["tenantID"], vars["accountID"])
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newAccountView(a))
}

func (h *handlers) reissue(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	res, err := h.deps.Provisioning.Reissue(r.Context(), scopeOf(r), vars["tenantID"], vars["accountID"])
	writeProvisioned(w, res, err)
}
