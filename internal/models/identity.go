package models

import "context"

// Identity is the resolved subject of a verified bearer token.
type Identity struct {
	ID   int64
	Role Role
}

type identityContextKey struct{}

// WithIdentity returns a context carrying the authenticated identity.
// Set by the auth middleware, read by role-checked handlers.
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey{}, identity)
}

// IdentityFromContext returns the identity attached by the auth middleware.
func IdentityFromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityContextKey{}).(*Identity)
	return identity, ok
}
