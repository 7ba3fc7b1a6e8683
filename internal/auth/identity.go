package auth

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("could not authenticate user")

type contextKey int

const identityKey contextKey = iota

// Identity is the per-request authentication outcome. A request without a
// credential carries no Identity at all; a request whose credential failed
// verification carries the failure in Err so that only call sites requiring
// identity surface it.
type Identity struct {
	UserID int
	Err    error
}

func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityKey).(Identity)
	return identity, ok
}

// UserIDFromContext reports the authenticated user id, if any. Verification
// failures and anonymous requests both read as "no user".
func UserIDFromContext(ctx context.Context) (int, bool) {
	identity, ok := IdentityFromContext(ctx)
	if !ok || identity.Err != nil || identity.UserID == 0 {
		return 0, false
	}
	return identity.UserID, true
}

// RequireUserID is for call sites that need an authenticated caller. It
// propagates a carried verification error and maps everything else to
// ErrUnauthenticated.
func RequireUserID(ctx context.Context) (int, error) {
	identity, ok := IdentityFromContext(ctx)
	if !ok {
		return 0, ErrUnauthenticated
	}
	if identity.Err != nil {
		return 0, identity.Err
	}
	if identity.UserID == 0 {
		return 0, ErrUnauthenticated
	}
	return identity.UserID, nil
}
