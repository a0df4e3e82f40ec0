package endpoints

import (
	"net/http"
	"time"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/middleware"
)

// CreateTenantRequest is the POST /tenants payload
type CreateTenantRequest struct {
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`
	IDNumber    string `json:"id_number"`
}

// AllocateRequest assigns a tenant to a unit
type AllocateRequest struct {
	UnitID uint `json:"unit_id"`
}

// CreateLeaseRequest is the POST /leases payload
type CreateLeaseRequest struct {
	UnitID      uint       `json:"unit_id"`
	TenantID    uint       `json:"tenant_id"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	MonthlyRent float64    `json:"monthly_rent"`
	Deposit     float64    `json:"deposit"`
}

// RegisterTenantsEndpoints registers the tenants and leases endpoints
func RegisterTenantsEndpoints(s *server.Server) {
	jwtMiddleware := middleware.NewJWTAuthenticator(s.Config)

	tenantRouter := s.Router.PathPrefix("/tenants").Subrouter()
	tenantRouter.Use(jwtMiddleware.Middleware)
	tenantRouter.HandleFunc("", handleListTenants(s)).Methods("GET")
	tenantRouter.HandleFunc("", handleCreateTenant(s)).Methods("POST")
	tenantRouter.HandleFunc("/{id}", handleGetTenant(s)).Methods("GET")
	tenantRouter.HandleFunc("/{id}/allocate", handleAllocateTenant(s)).Methods("POST")

	leaseRouter := s.Router.PathPrefix("/leases").Subrouter()
	leaseRouter.Use(jwtMiddleware.Middleware)
	leaseRouter.HandleFunc("", handleListLeases(s)).Methods("GET")
	leaseRouter.HandleFunc("", handleCreateLease(s)).Methods("POST")
}

func handleListTenants(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionViewDashboard, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		tenants, err := s.TenantsStore.ListByOrg(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tenants)
	}
}

func handleCreateTenant(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionManageTenants, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var req CreateTenantRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		tenant := &model.Tenant{
			OrganizationID: orgID,
			Name:           req.Name,
			PhoneNumber:    req.PhoneNumber,
			Email:          req.Email,
			IDNumber:       req.IDNumber,
		}
		if err := s.TenantsStore.Create(tenant); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, tenant)
	}
}

func handleGetTenant(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		tenantID, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid tenant id")
			return
		}

		tenant, err := s.TenantsStore.Get(tenantID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionViewDashboard, tenant); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tenant)
	}
}

func handleAllocateTenant(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		tenantID, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid tenant id")
			return
		}

		tenant, err := s.TenantsStore.Get(tenantID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionManageTenants, tenant); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var req AllocateRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.UnitID == 0 {
			respondWithError(w, http.StatusBadRequest, "unit_id is required")
			return
		}

		tenant, err = s.TenantsStore.Allocate(tenant.ID, req.UnitID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tenant)
	}
}

func handleListLeases(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionViewDashboard, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		leases, err := s.TenantsStore.ListLeases(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, leases)
	}
}

func handleCreateLease(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionManageTenants, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var req CreateLeaseRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.UnitID == 0 || req.TenantID == 0 {
			respondWithError(w, http.StatusBadRequest, "unit_id and tenant_id are required")
			return
		}

		lease := &model.Lease{
			OrganizationID: orgID,
			UnitID:         req.UnitID,
			TenantID:       req.TenantID,
			StartDate:      req.StartDate,
			EndDate:        req.EndDate,
			MonthlyRent:    req.MonthlyRent,
			Deposit:        req.Deposit,
			IsActive:       true,
		}
		if err := s.TenantsStore.CreateLease(lease); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, lease)
	}
}
