package endpoints

import (
	"fmt"
	"net/http"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/middleware"
)

// CreatePropertyRequest is the POST /properties payload
type CreatePropertyRequest struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	PropertyType string `json:"property_type"`
	Description  string `json:"description"`
}

// CreateUnitRequest is the POST /properties/{id}/units payload
type CreateUnitRequest struct {
	UnitNumber      string  `json:"unit_number"`
	UnitType        string  `json:"unit_type"`
	Floor           int     `json:"floor"`
	Bedrooms        int     `json:"bedrooms"`
	MonthlyRent     float64 `json:"monthly_rent"`
	SecurityDeposit float64 `json:"security_deposit"`
}

// QRCodeResponse is the payload printed on a unit's door sticker.
type QRCodeResponse struct {
	UnitID     uint   `json:"unit_id"`
	UnitNumber string `json:"unit_number"`
	QRCode     string `json:"qr_code"`
	PaymentURL string `json:"payment_url"`
}

// RegisterPropertiesEndpoints registers the properties and units endpoints
func RegisterPropertiesEndpoints(s *server.Server) {
	jwtMiddleware := middleware.NewJWTAuthenticator(s.Config)

	propRouter := s.Router.PathPrefix("/properties").Subrouter()
	propRouter.Use(jwtMiddleware.Middleware)
	propRouter.HandleFunc("", handleListProperties(s)).Methods("GET")
	propRouter.HandleFunc("", handleCreateProperty(s)).Methods("POST")
	propRouter.HandleFunc("/{id}", handleGetProperty(s)).Methods("GET")
	propRouter.HandleFunc("/{id}", handleUpdateProperty(s)).Methods("PUT")
	propRouter.HandleFunc("/{id}", handleDeleteProperty(s)).Methods("DELETE")
	propRouter.HandleFunc("/{id}/units", handleListUnits(s)).Methods("GET")
	propRouter.HandleFunc("/{id}/units", handleCreateUnit(s)).Methods("POST")

	unitRouter := s.Router.PathPrefix("/units").Subrouter()
	unitRouter.Use(jwtMiddleware.Middleware)
	unitRouter.HandleFunc("/{id}/qrcode", handleUnitQRCode(s)).Methods("GET")
}

func handleListProperties(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionViewDashboard, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		properties, err := s.PropertiesStore.ListByOrg(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, properties)
	}
}

func handleCreateProperty(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionManageProperties, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var req CreatePropertyRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Name == "" {
			respondWithError(w, http.StatusBadRequest, "name is required")
			return
		}

		userID := id.UserID
		property := &model.Property{
			OrganizationID: orgID,
			OwnerID:        &userID,
			Name:           req.Name,
			Address:        req.Address,
			PropertyType:   req.PropertyType,
			Description:    req.Description,
		}
		if err := s.PropertiesStore.Create(property); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, property)
	}
}

// getGuardedProperty loads a property and authorizes action against it.
func getGuardedProperty(s *server.Server, w http.ResponseWriter, r *http.Request, action rbac.Permission) (*model.Property, bool) {
	id, ok := requireIdentity(w, r)
	if !ok {
		return nil, false
	}
	propertyID, err := pathID(r, "id")
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid property id")
		return nil, false
	}
	property, err := s.PropertiesStore.Get(propertyID)
	if err != nil {
		respondWithStoreError(w, err)
		return nil, false
	}
	if err := s.Guard.Authorize(r.Context(), id, action, property); err != nil {
		respondWithStoreError(w, err)
		return nil, false
	}
	return property, true
}

func handleGetProperty(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		property, ok := getGuardedProperty(s, w, r, rbac.PermissionViewDashboard)
		if !ok {
			return
		}
		respondWithJSON(w, http.StatusOK, property)
	}
}

func handleUpdateProperty(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		property, ok := getGuardedProperty(s, w, r, rbac.PermissionManageProperties)
		if !ok {
			return
		}

		var req CreatePropertyRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Name != "" {
			property.Name = req.Name
		}
		if req.Address != "" {
			property.Address = req.Address
		}
		if req.PropertyType != "" {
			property.PropertyType = req.PropertyType
		}
		if req.Description != "" {
			property.Description = req.Description
		}

		if err := s.PropertiesStore.Update(property); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, property)
	}
}

func handleDeleteProperty(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		property, ok := getGuardedProperty(s, w, r, rbac.PermissionManageProperties)
		if !ok {
			return
		}
		if err := s.PropertiesStore.Delete(property.ID); err != nil {
			respondWithStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func handleListUnits(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		property, ok := getGuardedProperty(s, w, r, rbac.PermissionViewDashboard)
		if !ok {
			return
		}
		units, err := s.PropertiesStore.ListUnits(property.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, units)
	}
}

func handleCreateUnit(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		property, ok := getGuardedProperty(s, w, r, rbac.PermissionManageProperties)
		if !ok {
			return
		}

		var req CreateUnitRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.UnitNumber == "" {
			respondWithError(w, http.StatusBadRequest, "unit_number is required")
			return
		}

		unit := &model.Unit{
			PropertyID:      property.ID,
			UnitNumber:      req.UnitNumber,
			UnitType:        req.UnitType,
			Floor:           req.Floor,
			Bedrooms:        req.Bedrooms,
			MonthlyRent:     req.MonthlyRent,
			SecurityDeposit: req.SecurityDeposit,
		}
		if err := s.PropertiesStore.CreateUnit(unit); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, unit)
	}
}

func handleUnitQRCode(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		unitID, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid unit id")
			return
		}

		unit, err := s.PropertiesStore.GetUnit(unitID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionManageProperties, unit); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, QRCodeResponse{
			UnitID:     unit.ID,
			UnitNumber: unit.UnitNumber,
			QRCode:     unit.QRCode,
			PaymentURL: fmt.Sprintf("/pay/%s", unit.QRCode),
		})
	}
}
