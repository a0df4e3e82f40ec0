package identity

import (
	"context"
	"net"
	"time"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated identity for a request. It
// combines token claims with request-specific context.
type Identity struct {
	// Token claims
	UserID         uint
	Email          string
	OrganizationID *uint
	IsSuperuser    bool
	IssuedAt       time.Time
	ExpiresAt      time.Time

	// Request context
	RemoteIP net.IP
}

// WithRemoteIP sets the remote IP address.
func (i *Identity) WithRemoteIP(ip net.IP) *Identity {
	i.RemoteIP = ip
	return i
}

// PrincipalID implements the access guard's Principal interface.
func (i *Identity) PrincipalID() uint { return i.UserID }

// PrincipalOrganizationID implements the access guard's Principal interface.
func (i *Identity) PrincipalOrganizationID() *uint { return i.OrganizationID }

// Superuser implements the access guard's Principal interface.
func (i *Identity) Superuser() bool { return i.IsSuperuser }

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
