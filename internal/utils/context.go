// Package utils provides small helpers shared by the transport and service
// layers: typed context keys for the request identity, JSON response writing,
// the resty-based HTTP client and trace identifier generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-auth-gate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authorization gate stores the
// admitted [models.Identity].
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying identity.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext retrieves the identity attached by the authorization
// gate. ok is false when the value is missing or has an unexpected type.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// MustIdentityFromContext is like [IdentityFromContext] but panics when no
// identity is present. Handlers mounted behind the gate use it: reaching such
// a handler without an identity means the route was wired without the gate.
func MustIdentityFromContext(ctx context.Context) models.Identity {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		panic("utils: no identity in context, handler is not behind the authorization gate")
	}
	return identity
}
