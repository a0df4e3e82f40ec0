package endpoints

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/nyumbani/homemanager/pkg/audit"
	"github.com/nyumbani/homemanager/pkg/model"
	"github.com/nyumbani/homemanager/pkg/notify"
	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/middleware"
)

// CreateMembershipRequest is the POST /memberships payload. The member
// is identified by email and gets one of the organization's roles.
type CreateMembershipRequest struct {
	Email    string `json:"email"`
	RoleSlug string `json:"role_slug"`
	Invited  bool   `json:"invited"`
}

// InvitationResponse carries the freshly rotated invitation token.
type InvitationResponse struct {
	Membership *model.OrganizationMembership `json:"membership"`
	Token      string                        `json:"token"`
}

// RegisterMembershipsEndpoints registers the membership lifecycle endpoints
func RegisterMembershipsEndpoints(s *server.Server) {
	jwtMiddleware := middleware.NewJWTAuthenticator(s.Config)

	memberRouter := s.Router.PathPrefix("/memberships").Subrouter()
	memberRouter.Use(jwtMiddleware.Middleware)
	memberRouter.HandleFunc("", handleListMemberships(s)).Methods("GET")
	memberRouter.HandleFunc("", handleCreateMembership(s)).Methods("POST")
	memberRouter.HandleFunc("/{id}", handleGetMembership(s)).Methods("GET")
	memberRouter.HandleFunc("/{id}/invite", handleInviteMembership(s)).Methods("POST")
	memberRouter.HandleFunc("/{id}/deactivate", handleSetMembershipActive(s, false)).Methods("POST")
	memberRouter.HandleFunc("/{id}/reactivate", handleSetMembershipActive(s, true)).Methods("POST")

	// Acceptance is keyed by the secret token and needs no bearer token.
	s.Router.HandleFunc("/invitations/{token}/accept", handleAcceptInvitation(s)).Methods("POST")
}

func handleListMemberships(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionManageUsers, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		memberships, err := s.MembershipsStore.ListByOrg(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, memberships)
	}
}

func handleCreateMembership(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionManageUsers, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		var req CreateMembershipRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Email == "" || req.RoleSlug == "" {
			respondWithError(w, http.StatusBadRequest, "email and role_slug are required")
			return
		}

		user, err := s.UsersStore.GetByEmail(req.Email)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		role, err := s.OrgRolesStore.GetByOrgAndSlug(orgID, req.RoleSlug)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		membership, err := s.MembershipsStore.Create(orgID, user.ID, role.ID, req.Invited)
		if err != nil {
			audit.Log(audit.MembershipEvent{
				ActorID:      id.UserID,
				OrgID:        orgID,
				MemberEmail:  req.Email,
				Operation:    "create",
				ClientIP:     id.RemoteIP.String(),
				Success:      false,
				ErrorMessage: err.Error(),
			})
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.MembershipEvent{
			ActorID:      id.UserID,
			OrgID:        orgID,
			MembershipID: membership.ID,
			MemberEmail:  req.Email,
			Operation:    "create",
			ClientIP:     id.RemoteIP.String(),
			Success:      true,
		})

		respondWithJSON(w, http.StatusCreated, membership)
	}
}

func handleGetMembership(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		membership, err := s.MembershipsStore.Get(mux.Vars(r)["id"])
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionManageUsers, membership); err != nil {
			respondWithStoreError(w, err)
			return
		}

		respondWithJSON(w, http.StatusOK, membership)
	}
}

func handleInviteMembership(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		membership, err := s.MembershipsStore.Get(mux.Vars(r)["id"])
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionManageUsers, membership); err != nil {
			respondWithStoreError(w, err)
			return
		}

		membership, token, err := s.MembershipsStore.SendInvitation(membership.ID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		org, err := s.OrganizationsStore.GetByID(membership.OrganizationID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if membership.User != nil && membership.User.PhoneNumber != "" {
			// The token is still returned when the SMS cannot go out.
			err := s.Dispatcher.Dispatch(r.Context(), notify.Message{
				OrganizationID: membership.OrganizationID,
				Recipient:      membership.User.PhoneNumber,
				Body:           notify.InvitationBody(org.Name, token),
			})
			if err != nil {
				audit.Log(audit.MembershipEvent{
					ActorID:      id.UserID,
					OrgID:        membership.OrganizationID,
					MembershipID: membership.ID,
					Operation:    "invite-sms",
					ClientIP:     id.RemoteIP.String(),
					Success:      false,
					ErrorMessage: err.Error(),
				})
			}
		}

		audit.Log(audit.MembershipEvent{
			ActorID:      id.UserID,
			OrgID:        membership.OrganizationID,
			MembershipID: membership.ID,
			Operation:    "invite",
			ClientIP:     id.RemoteIP.String(),
			Success:      true,
		})

		respondWithJSON(w, http.StatusOK, InvitationResponse{
			Membership: membership,
			Token:      token,
		})
	}
}

func handleAcceptInvitation(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := mux.Vars(r)["token"]

		membership, err := s.MembershipsStore.AcceptInvitation(token)
		if err != nil {
			audit.Log(audit.MembershipEvent{
				OrgID:        0,
				Operation:    "accept",
				ClientIP:     r.RemoteAddr,
				Success:      false,
				ErrorMessage: "invitation token not found",
			})
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.MembershipEvent{
			OrgID:        membership.OrganizationID,
			MembershipID: membership.ID,
			Operation:    "accept",
			ClientIP:     r.RemoteAddr,
			Success:      true,
		})

		respondWithJSON(w, http.StatusOK, membership)
	}
}

func handleSetMembershipActive(s *server.Server, active bool) http.HandlerFunc {
	operation := "deactivate"
	if active {
		operation = "reactivate"
	}
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := requireIdentity(w, r)
		if !ok {
			return
		}

		membership, err := s.MembershipsStore.Get(mux.Vars(r)["id"])
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		if err := s.Guard.Authorize(r.Context(), id, rbac.PermissionManageUsers, membership); err != nil {
			respondWithStoreError(w, err)
			return
		}

		if active {
			membership, err = s.MembershipsStore.Reactivate(membership.ID)
		} else {
			membership, err = s.MembershipsStore.Deactivate(membership.ID)
		}
		if err != nil {
			respondWithStoreError(w, err)
			return
		}

		audit.Log(audit.MembershipEvent{
			ActorID:      id.UserID,
			OrgID:        membership.OrganizationID,
			MembershipID: membership.ID,
			Operation:    operation,
			ClientIP:     id.RemoteIP.String(),
			Success:      true,
		})

		respondWithJSON(w, http.StatusOK, membership)
	}
}
