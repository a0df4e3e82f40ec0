// Package main provides homectl, the homemanager server and administration CLI.
//
// Homemanager is a multi-tenant property management server. Every record
// belongs to an organization, and access inside an organization is resolved
// through base roles, per-organization roles, and per-organization
// customizations.
//
// # Quick Start
//
//	# Run database migrations
//	homectl db migrate
//
//	# Seed the base role catalog
//	homectl roles seed
//
//	# Create an organization with its owner
//	homectl org create "Acme Properties" --owner-email owner@acme.example
//
//	# Start the server
//	homectl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - HOMEMANAGER_JWT_SECRET: Secret used to sign API bearer tokens
//   - HOMEMANAGER_LOG_LEVEL: Set to "debug" for SQL query logging
//   - HOMEMANAGER_AUDIT_ENABLED: Set to "true" to persist audit events
//   - HOMEMANAGER_PORT: Server port (default: 8080)
//
// For more information, see https://github.com/nyumbani/homemanager
package main
