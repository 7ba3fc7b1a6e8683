package middleware

import (
	"net/http"
	"strings"

	"tweet-app-go/internal/auth"
)

// Identity extracts a bearer credential from the Authorization header and
// stores the verification outcome in the request context. An absent or
// malformed header is not an error; the request proceeds anonymously.
type Identity struct {
	codec *auth.Codec
}

func NewIdentity(codec *auth.Codec) *Identity {
	return &Identity{codec: codec}
}

func (m *Identity) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		userID, err := m.codec.Verify(token)
		ctx := auth.WithIdentity(r.Context(), auth.Identity{UserID: userID, Err: err})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}
