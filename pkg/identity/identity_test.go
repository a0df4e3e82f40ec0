package identity

import (
	"context"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextRoundTrip(t *testing.T) {
	orgID := uint(7)
	id := &Identity{UserID: 42, Email: "owner@acme.test", OrganizationID: &orgID}

	ctx := Set(context.Background(), id)
	got, ok := Get(ctx)
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestGetMissingIdentity(t *testing.T) {
	_, ok := Get(context.Background())
	assert.False(t, ok)
}

func TestPrincipalAccessors(t *testing.T) {
	orgID := uint(7)
	id := (&Identity{UserID: 42, OrganizationID: &orgID, IsSuperuser: true}).
		WithRemoteIP(net.ParseIP("10.0.0.1"))

	assert.Equal(t, uint(42), id.PrincipalID())
	require.NotNil(t, id.PrincipalOrganizationID())
	assert.Equal(t, uint(7), *id.PrincipalOrganizationID())
	assert.True(t, id.Superuser())
	assert.Equal(t, "10.0.0.1", id.RemoteIP.String())
}
