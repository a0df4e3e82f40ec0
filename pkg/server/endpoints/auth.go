package endpoints

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/nyumbani/homemanager/pkg/audit"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/middleware"
)

// LoginRequest is the /auth/login payload
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// RegisterAuthEndpoints registers the login endpoint (no auth required)
func RegisterAuthEndpoints(s *server.Server) {
	s.Router.HandleFunc("/auth/login", handleLogin(s)).Methods("POST")
}

func handleLogin(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if !decodeJSON(w, r, &req) {
			return
		}
		if req.Email == "" || req.Password == "" {
			respondWithError(w, http.StatusBadRequest, "email and password are required")
			return
		}

		clientIP := r.RemoteAddr

		user, err := s.UsersStore.GetByEmail(req.Email)
		if err != nil {
			audit.Log(audit.AuthenticateEvent{
				Email:        req.Email,
				ClientIP:     clientIP,
				Success:      false,
				ErrorMessage: "unknown user",
			})
			respondWithError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			audit.Log(audit.AuthenticateEvent{
				Email:        req.Email,
				ClientIP:     clientIP,
				Success:      false,
				ErrorMessage: "bad password",
			})
			respondWithError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		token, err := middleware.IssueToken(s.Config, user.ID, user.Email, user.OrganizationID, user.IsSuperuser)
		if err != nil {
			respondWithError(w, http.StatusInternalServerError, "failed to issue token")
			return
		}

		audit.Log(audit.AuthenticateEvent{
			Email:    req.Email,
			ClientIP: clientIP,
			Success:  true,
		})

		respondWithJSON(w, http.StatusOK, LoginResponse{
			Token:     token,
			ExpiresIn: s.Config.TokenTTL,
		})
	}
}
