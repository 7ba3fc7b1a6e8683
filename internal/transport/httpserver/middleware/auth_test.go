package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"tweet-app-go/internal/auth"
)

func TestIdentityMiddleware(t *testing.T) {
	codec := auth.NewCodec(auth.CodecConfig{Secret: "test-secret"})
	identity := NewIdentity(codec)

	token, err := codec.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantUserID int
		wantOK     bool
		wantErr    bool
	}{
		{name: "valid bearer token", header: "Bearer " + token, wantUserID: 42, wantOK: true},
		{name: "no header", header: ""},
		{name: "not a bearer header", header: "Basic abc"},
		{name: "invalid token", header: "Bearer garbage", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUserID int
			var gotOK bool
			var gotIdentity auth.Identity
			var hadIdentity bool

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserID, gotOK = auth.UserIDFromContext(r.Context())
				gotIdentity, hadIdentity = auth.IdentityFromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			identity.Middleware(next).ServeHTTP(httptest.NewRecorder(), req)

			if gotOK != tt.wantOK {
				t.Fatalf("expected ok=%v, got %v", tt.wantOK, gotOK)
			}
			if tt.wantOK && gotUserID != tt.wantUserID {
				t.Fatalf("expected user id %d, got %d", tt.wantUserID, gotUserID)
			}
			if tt.wantErr && (!hadIdentity || gotIdentity.Err == nil) {
				t.Fatal("expected identity carrying a verification error")
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	if _, ok := bearerToken("Bearer abc"); !ok {
		t.Fatal("expected bearer header to parse")
	}
	if token, _ := bearerToken("bearer abc"); token != "abc" {
		t.Fatal("expected case-insensitive scheme")
	}
	if _, ok := bearerToken("abc"); ok {
		t.Fatal("expected single-part header to be rejected")
	}
	if _, ok := bearerToken(""); ok {
		t.Fatal("expected empty header to be rejected")
	}
}
