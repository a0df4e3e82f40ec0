package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nyumbani/homemanager/pkg/identity"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server/store"
)

func respondWithError(w http.ResponseWriter, code int, payload interface{}) {
	respondWithJSON(w, code, map[string]interface{}{"error": payload})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, _ := json.Marshal(payload)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithStoreError maps store and guard sentinel errors onto status
// codes. Cross-tenant denials surface as 404 so another tenant's data
// existence is never disclosed.
func respondWithStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound), errors.Is(err, rbac.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not found")
	case errors.Is(err, rbac.ErrDenied):
		respondWithError(w, http.StatusForbidden, "permission denied")
	case errors.Is(err, store.ErrConflict):
		respondWithError(w, http.StatusConflict, "conflict")
	case errors.Is(err, store.ErrValidation):
		respondWithError(w, http.StatusUnprocessableEntity, "validation failed")
	default:
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}

// requireIdentity pulls the authenticated identity off the request. The
// JWT middleware guarantees it for protected routes; a missing identity
// means a wiring bug, answered with 401.
func requireIdentity(w http.ResponseWriter, r *http.Request) (*identity.Identity, bool) {
	id, ok := identity.Get(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return id, true
}

// requireOrg resolves the caller's organization, rejecting users not
// attached to one.
func requireOrg(w http.ResponseWriter, r *http.Request) (*identity.Identity, uint, bool) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return nil, 0, false
	}
	if id.OrganizationID == nil {
		respondWithError(w, http.StatusForbidden, "no organization")
		return nil, 0, false
	}
	return id, *id.OrganizationID, true
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (uint, error) {
	v, err := strconv.ParseUint(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(v), nil
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
