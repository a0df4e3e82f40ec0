package endpoints

import (
	"net/http"

	"github.com/nyumbani/homemanager/pkg/rbac"
	"github.com/nyumbani/homemanager/pkg/server"
	"github.com/nyumbani/homemanager/pkg/server/middleware"
)

// RegisterDashboardEndpoints registers the dashboard summary endpoint
func RegisterDashboardEndpoints(s *server.Server) {
	jwtMiddleware := middleware.NewJWTAuthenticator(s.Config)

	dashRouter := s.Router.PathPrefix("/dashboard").Subrouter()
	dashRouter.Use(jwtMiddleware.Middleware)
	dashRouter.HandleFunc("/summary", handleDashboardSummary(s)).Methods("GET")
}

func handleDashboardSummary(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, orgID, ok := requireOrg(w, r)
		if !ok {
			return
		}
		if err := s.Guard.AuthorizeOrg(r.Context(), id, rbac.PermissionViewDashboard, orgID); err != nil {
			respondWithStoreError(w, err)
			return
		}

		summary, err := s.DashboardStore.Summary(orgID)
		if err != nil {
			respondWithStoreError(w, err)
			return
		}
		respondWithJSON(w, http.StatusOK, summary)
	}
}
