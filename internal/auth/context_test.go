package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrincipalContext(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, PrincipalFromContext(ctx))

	p := &Principal{Username: "admin@villa.dev", Roles: []string{"ADMIN"}}
	ctx = WithPrincipal(ctx, p)
	assert.Same(t, p, PrincipalFromContext(ctx))
}

func TestPrincipal_HasRole(t *testing.T) {
	p := &Principal{Username: "maria@villa.dev", Roles: []string{"RESIDENT"}}
	assert.True(t, p.HasRole("RESIDENT"))
	assert.False(t, p.HasRole("ADMIN"))

	var nilPrincipal *Principal
	assert.False(t, nilPrincipal.HasRole("ADMIN"))
}
