package auth

import (
	"errors"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	codec := NewCodec(CodecConfig{Secret: "test-secret"})

	token, err := codec.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	userID, err := codec.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewCodec(CodecConfig{Secret: "secret-a"})
	verifier := NewCodec(CodecConfig{Secret: "secret-b"})

	token, err := issuer.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := verifier.Verify(token); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
}

func TestVerifyTampered(t *testing.T) {
	codec := NewCodec(CodecConfig{Secret: "test-secret"})

	token, err := codec.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	tampered := token[:len(token)-2] + "xx"
	if _, err := codec.Verify(tampered); err == nil {
		t.Fatal("expected tampered token to fail verification")
	}
}

func TestVerifyMalformed(t *testing.T) {
	codec := NewCodec(CodecConfig{Secret: "test-secret"})

	if _, err := codec.Verify("not-a-token"); !errors.Is(err, ErrMalformedToken) {
		t.Fatalf("expected ErrMalformedToken, got %v", err)
	}
}

func TestVerifyExpired(t *testing.T) {
	codec := NewCodec(CodecConfig{Secret: "test-secret", TTL: -time.Minute})

	token, err := codec.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := codec.Verify(token); err == nil {
		t.Fatal("expected expired token to fail verification")
	}
}

func TestIssueWithoutTTLHasNoExpiry(t *testing.T) {
	codec := NewCodec(CodecConfig{Secret: "test-secret"})

	token, err := codec.Issue(1)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// A token issued without a TTL never expires.
	if _, err := codec.Verify(token); err != nil {
		t.Fatalf("verify: %v", err)
	}
}
