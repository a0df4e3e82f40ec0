package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/middleware"
)

// CreateOrganizationRequest is the POST /organizations payload
type CreateOrganizationRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// UpdateOrganizationRequest is the PUT /organizations/{slug} payload
type UpdateOrganizationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// RegisterOrganizationsEndpoints registers the organizations API endpoints
func RegisterOrganizationsEndpoints(s *server.Server) {
	jwtMiddleware := middleware.NewJWTAuthenticator(s.Config)

	orgRouter := s.Router.PathPrefix("/organizations").Subrouter()
	orgRouter.Use(jwtMiddleware.Middleware)

	orgRouter.HandleFunc("", handleListOrganizations(s)).Methods("GET")
	orgRouter.HandleFunc("", handleCreateOrganization(s)).Methods("POST")
	orgRouter.HandleFunc("/{slug}", handleGetOrganization(s)).Methods("GET")
	orgRouter.HandleFunc("/{slug}", handleUpdateOrganization(s)).Methods("PUT")
}

func handleListOrganizations(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		if id.IsSuperuser {
			orgs, err := s.OrganizationsStore.List()
			if err != nil {
				respondWithStoreError(w, err)
				return
			}
			respondWithJSON(w, http.StatusOK, orgs)
			return
		}

		if id.OrganizationID == nil {
			respondWithJSON(w, http.StatusOK, []model.Organization{})
			return
		}

		org, err := s.OrganizationsStore.GetByID(*id.OrganizationID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, []model.Organization{*org})
	}
}

func handleCreateOrganization(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		if id.OrganizationID != nil {
			respondWithError(w, http.StatusConflict, "user already belongs to an organization")
			return
		}

		var req CreateOrganizationRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		userID := id.UserID
		org := &model.Organization{
			Name:           req.Name,
			Slug:           req.Slug,
			Description:    req.Description,
			Email:          req.Email,
			PhoneNumber:    req.PhoneNumber,
			PrimaryOwnerID: &userID,
		}
		if err := s.OrganizationsStore.Create(org); err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.UsersStore.BindToOrganization(userID, org.ID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		ownerBase, err := s.BaseRolesStore.GetBySlug("owner")
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		ownerRole, err := s.OrgRolesStore.GetOrCreate(org.ID, ownerBase.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if _, err := s.MembershipsStore.Create(org.ID, userID, ownerRole.ID, false); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusCreated, org)
	}
}

func handleGetOrganization(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		org, err := s.OrganizationsStore.GetBySlug(mux.Vars(r)["slug"])
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionViewDashboard, org); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, org)
	}
}

func handleUpdateOrganization(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		org, err := s.OrganizationsStore.GetBySlug(mux.Vars(r)["slug"])
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionManageSystemSettings, org); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var req UpdateOrganizationRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Name != "" {
			org.Name = req.Name
		}
		if req.Description != "" {
			org.Description = req.Description
		}
		if req.Email != "" {
			org.Email = req.Email
		}
		if req.PhoneNumber != "" {
			org.PhoneNumber = req.PhoneNumber
		}

		if err := s.OrganizationsStore.Update(org); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, org)
	}
}
