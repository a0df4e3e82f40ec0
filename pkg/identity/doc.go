// Package identity provides authenticated identity management for API
// requests.
//
// This package separates the authenticated identity from raw token
// parsing. The JWT middleware resolves a bearer token into an Identity
// (user id, email, organization, superuser flag) and stores it in the
// request context; endpoints and the access guard read it back out.
package identity
