package endpoints

import (
	"net/http"

	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/middleware"
)

// CreateTicketRequest is the POST /tickets payload
type CreateTicketRequest struct {
	UnitID      *uint  `json:"unit_id"`
	TenantID    *uint  `json:"tenant_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// TicketStatusRequest is the POST /tickets/{id}/status payload
type TicketStatusRequest struct {
	Status string `json:"status"`
}

// RegisterTicketsEndpoints registers the maintenance ticket endpoints
func RegisterTicketsEndpoints(s *server.Server) {
	jwtMiddleware := middleware.NewJWTAuthenticator(s.Config)

	ticketRouter := s.Router.PathPrefix("/tickets").Subrouter()
	ticketRouter.Use(jwtMiddleware.Middleware)
	ticketRouter.HandleFunc("", handleListTickets(s)).Methods("GET")
	ticketRouter.HandleFunc("", handleCreateTicket(s)).Methods("POST")
	ticketRouter.HandleFunc("/{id}/status", handleTicketStatus(s)).Methods("POST")
}

func handleListTickets(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionViewDashboard, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		tickets, err := s.TicketsStore.ListByOrg(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, tickets)
	}
}

func handleCreateTicket(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionManageTickets, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var req CreateTicketRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Title == "" {
			respondWithError(w, http.StatusBadRequest, "title is required")
			return
		}

		ticket := &model.MaintenanceTicket{
			OrganizationID: orgID,
			UnitID:         req.UnitID,
			TenantID:       req.TenantID,
			Title:          req.Title,
			Description:    req.Description,
			Priority:       req.Priority,
			Status:         model.TicketOpen,
		}
		if err := s.TicketsStore.Create(ticket); err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusCreated, ticket)
	}
}

func handleTicketStatus(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}
		ticketID, err := pathID(r, "id")
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "invalid ticket id")
			return
		}

		ticket, err := s.TicketsStore.Get(ticketID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionManageTickets, ticket); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var req TicketStatusRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		ticket, err = s.TicketsStore.SetStatus(ticket.ID, req.Status)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, ticket)
	}
}
