package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani/homemanager/pkg/audit"
	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/middleware"
)

// RoleResponse is an organization role with its effective permissions
// expanded.
type RoleResponse struct {
	ID          uint            `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	RoleType    rbac.RoleType   `json:"role_type"`
	Legacy      bool            `json:"legacy"`
	Permissions map[string]bool `json:"permissions"`
}

// RegisterRolesEndpoints registers the base-role catalog and
// organization-role API endpoints
func RegisterRolesEndpoints(s *server.Server) {
	jwtMiddleware := middleware.NewJWTAuthenticator(s.Config)

	baseRouter := s.Router.PathPrefix("/base-roles").Subrouter()
	baseRouter.Use(jwtMiddleware.Middleware)
	baseRouter.HandleFunc("", handleListBaseRoles(s)).Methods("GET")

	rolesRouter := s.Router.PathPrefix("/roles").Subrouter()
	rolesRouter.Use(jwtMiddleware.Middleware)
	rolesRouter.HandleFunc("", handleListRoles(s)).Methods("GET")
	rolesRouter.HandleFunc("/{slug}", handleGetRole(s)).Methods("GET")
	rolesRouter.HandleFunc("/{slug}/customization", handleUpsertCustomization(s)).Methods("PUT")
	rolesRouter.HandleFunc("/{slug}/customization", handleDeleteCustomization(s)).Methods("DELETE")
}

func handleListBaseRoles(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := requireIdentity(w, r); !ok {
			return
		}
		roles, err := s.BaseRolesStore.List()
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, roles)
	}
}

func roleResponse(s *server.Server, role *model.OrganizationRole) (*RoleResponse, error) {
	state, err := s.OrgRolesStore.RoleState(role)
	if err != nil {
		return nil, err
	}
	return &RoleResponse{
		ID:          role.ID,
		Slug:        role.Slug(),
		Name:        role.Name(),
		RoleType:    role.Type(),
		Legacy:      role.IsLegacy(),
		Permissions: rbac.EffectiveSet(state),
	}, nil
}

func handleListRoles(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionViewDashboard, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		roles, err := s.OrgRolesStore.ListByOrg(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		out := make([]RoleResponse, 0, len(roles))
		for i := range roles {
			resp, err := roleResponse(s, &roles[i])
			if err != nil {
				respondWithStoreError(w, err)
				return
			}
			out = append(out, *resp)
		}
		respondWithJSON(w, http.StatusOK, out)
	}
}

func handleGetRole(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionViewDashboard, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		role, err := s.OrgRolesStore.GetByOrgAndSlug(orgID, mux.Vars(r)["slug"])
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		resp, err := roleResponse(s, role)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, resp)
	}
}

// decodeOverrides maps a permission-name keyed JSON object onto an
// override set, rejecting unknown permission names.
func decodeOverrides(raw map[string]*bool) (rbac.Overrides, bool) {
	var overrides rbac.Overrides
	for name, value := range raw {
		p, err := rbac.PermissionString(name)
		if err != nil {
			return overrides, false
		}
		overrides[p] = value
	}
	return overrides, true
}

func handleUpsertCustomization(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionManageRoles, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		slug := mux.Vars(r)["slug"]
		role, err := s.OrgRolesStore.GetByOrgAndSlug(orgID, slug)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		var raw map[string]*bool
		if !decodeJSON(w, r, &raw) {
			return
		}
		overrides, ok := decodeOverrides(raw)
		if !ok {
			respondWithError(w, http.StatusBadRequest, "unknown permission name")
			return
		}

		custom, err := s.OrgRolesStore.UpsertCustomization(orgID, *role.BaseRoleID, overrides)
		if err != nil {
			audit.Log(audit.RoleCustomizationEvent{
				ActorID:      id.UserID,
				OrgID:        orgID,
				RoleSlug:     slug,
				Operation:    "customize",
				ClientIP:     id.RemoteIP.String(),
				Success:      false,
				ErrorMessage: err.Error(),
			})
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.RoleCustomizationEvent{
			ActorID:   id.UserID,
			OrgID:     orgID,
			RoleSlug:  slug,
			Operation: "customize",
			ClientIP:  id.RemoteIP.String(),
			Success:   true,
		})

		respondWithJSON(w, http.StatusOK, custom)
	}
}

func handleDeleteCustomization(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionManageRoles, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		slug := mux.Vars(r)["slug"]
		role, err := s.OrgRolesStore.GetByOrgAndSlug(orgID, slug)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.OrgRolesStore.DeleteCustomization(orgID, *role.BaseRoleID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.RoleCustomizationEvent{
			ActorID:   id.UserID,
			OrgID:     orgID,
			RoleSlug:  slug,
			Operation: "reset",
			ClientIP:  id.RemoteIP.String(),
			Success:   true,
		})

		w.WriteHeader(http.StatusNoContent)
	}
}
