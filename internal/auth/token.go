package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMalformedToken   = errors.New("malformed token")
	ErrInvalidSignature = errors.New("invalid token signature")
)

// CodecConfig is the codec's own configuration; the signing secret is handed
// over explicitly rather than read from the environment.
type CodecConfig struct {
	Secret string
	// TTL of zero issues tokens without an expiry claim.
	TTL time.Duration
}

// Codec signs and verifies credentials carrying a user identifier.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

type claims struct {
	UserID int `json:"userId"`
	jwt.RegisteredClaims
}

func NewCodec(cfg CodecConfig) *Codec {
	return &Codec{
		secret: []byte(cfg.Secret),
		ttl:    cfg.TTL,
	}
}

func (c *Codec) Issue(userID int) (string, error) {
	now := time.Now()
	cl := claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
		},
	}
	if c.ttl != 0 {
		cl.ExpiresAt = jwt.NewNumericDate(now.Add(c.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, cl)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (c *Codec) Verify(credential string) (int, error) {
	cl := &claims{}
	_, err := jwt.ParseWithClaims(credential, cl, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return 0, ErrMalformedToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return 0, ErrInvalidSignature
		default:
			return 0, fmt.Errorf("verify token: %w", err)
		}
	}

	if cl.UserID == 0 {
		return 0, ErrMalformedToken
	}

	return cl.UserID, nil
}
