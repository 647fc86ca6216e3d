package user

import "context"

// Claims identifies the authenticated account on a request.
type Claims struct {
	UserID string
	Name   string
	Role   Role
}

type claimsKey struct{}

// NewContext returns ctx carrying the verified claims.
func NewContext(ctx context.Context, c *Claims) context.Context {
	return context.WithValue(ctx, claimsKey{}, c)
}

// FromContext extracts the claims set by the auth middleware, if any.
func FromContext(ctx context.Context) (*Claims, bool) {
	c, ok := ctx.Value(claimsKey{}).(*Claims)
	return c, ok
}
