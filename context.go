package authx

import "context"

type identityKey struct{}

// BindIdentity attaches the verified caller to ctx so guards can run further
// down the handler chain.
func BindIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFromContext returns the caller bound with BindIdentity. A nil context
// or one without a caller reports false.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityKey{}).(Identity)
	return id, ok
}
