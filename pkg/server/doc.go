// Package server provides the HTTP server for the homemanager API.
//
// This package implements the core HTTP server that handles all homemanager
// REST API requests. It uses gorilla/mux for routing and provides middleware
// for authentication and request handling.
//
// # Server Setup
//
//	srv := server.NewServer(db, cfg)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Router: HTTP request router
//   - DB: Database connection
//   - Config: Server configuration
//   - Guard: Organization-scoped permission checks
//   - One store per aggregate, plus the SMS dispatcher and payment gateway
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers all homemanager API endpoints including:
//
//   - /auth/login - Email and password authentication
//   - /organizations - Organization management
//   - /roles and /base-roles - Role catalog and customization
//   - /memberships and /invitations - Membership lifecycle
//   - /properties, /units, /tenants, /leases - Portfolio management
//   - /payments and /mpesa/callback - Rent collection
//   - /notices, /tickets, /dashboard - Day-to-day operations
//   - /status - Health checks
package server
