package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"policerecords/internal/common"
)

func (a *API) writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.log.Warn(r.Context(), "response write failed", "error", err)
	}
}

// writeError maps storage errors onto HTTP statuses. Unrecognized errors
// are logged and reported as a plain 500 without leaking internals.
func (a *API) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var msg string

	switch {
	case errors.Is(err, common.ErrorNotFound):
		status, msg = http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrorAlreadyExists):
		status, msg = http.StatusConflict, "already exists"
	case errors.Is(err, common.ErrorInvalidID):
		status, msg = http.StatusBadRequest, "invalid id"
	case errors.Is(err, common.ErrorValidation):
		status, msg = http.StatusBadRequest, "validation failed"
	case errors.Is(err, common.ErrorNotConnected):
		status, msg = http.StatusServiceUnavailable, "storage unavailable"
	default:
		a.log.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		status, msg = http.StatusInternalServerError, "internal error"
	}

	a.writeJSON(w, r, status, map[string]string{"error": msg})
}

// decode reads the request body into v, rejecting unknown fields.
func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func (a *API) badRequest(w http.ResponseWriter, r *http.Request, msg string) {
	a.writeJSON(w, r, http.StatusBadRequest, map[string]string{"error": msg})
}
