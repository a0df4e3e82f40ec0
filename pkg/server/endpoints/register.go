package endpoints

import (
	"github.com/nyumbani/homemanager/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoints(srv)
	RegisterAuthEndpoints(srv)
	RegisterOrganizationsEndpoints(srv)
	RegisterRolesEndpoints(srv)
	RegisterMembershipsEndpoints(srv)
	RegisterPropertiesEndpoints(srv)
	RegisterTenantsEndpoints(srv)
	RegisterPaymentsEndpoints(srv)
	RegisterNoticesEndpoints(srv)
	RegisterTicketsEndpoints(srv)
	RegisterDashboardEndpoints(srv)
}
