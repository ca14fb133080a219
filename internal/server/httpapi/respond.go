package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/dmitrijs2005/unigate/internal/server/services"
)

type errorResponse struct {
	Error string `json:"error"`
}

func statusForKind(kind string) int {
	switch kind {
	case services.KindAuthenticationFailed, services.KindMissingToken,
		"bad_signature", "expired", "malformed", "revoked", "scope_violation":
		return http.StatusUnauthorized
	case services.KindPermissionDenied:
		return http.StatusForbidden
	case services.KindNotFound:
		return http.StatusNotFound
	case services.KindValidation:
		return http.StatusBadRequest
	case services.KindConflict, services.KindCapacityExceeded:
		return http.StatusConflict
	case services.KindRateLimited:
		return http.StatusTooManyRequests
	case services.KindGenerationExhausted:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, kind string) {
	writeJSON(w, statusForKind(kind), errorResponse{Error: kind})
}

func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, services.ErrorKind(err))
}
