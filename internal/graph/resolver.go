// Package graph declares the GraphQL schema and binds every field to a
// resolver over the domain services.
package graph

import (
	"tweet-app-go/internal/auth"
	"tweet-app-go/internal/domain/profile"
	"tweet-app-go/internal/domain/tweet"
	"tweet-app-go/internal/domain/user"
	"tweet-app-go/pkg/logger"
)

type Resolver struct {
	users    *user.Service
	profiles *profile.Service
	tweets   *tweet.Service
	tokens   *auth.Codec
	log      logger.Logger
}

func NewResolver(users *user.Service, profiles *profile.Service, tweets *tweet.Service, tokens *auth.Codec, log logger.Logger) *Resolver {
	return &Resolver{
		users:    users,
		profiles: profiles,
		tweets:   tweets,
		tokens:   tokens,
		log:      log,
	}
}

// AuthPayload pairs an issued credential with the authenticated user. It is
// never persisted.
type AuthPayload struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}
