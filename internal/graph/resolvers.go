package graph

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"
	"tweet-app-go/internal/auth"
	"tweet-app-go/internal/domain/profile"
	"tweet-app-go/internal/domain/tweet"
	"tweet-app-go/internal/domain/user"
)

func (r *Resolver) resolveAllUsers(p graphql.ResolveParams) (interface{}, error) {
	return r.users.List(p.Context)
}

// resolveMe returns the caller's user row, or null when the identity maps to
// no row.
func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	userID, err := auth.RequireUserID(p.Context)
	if err != nil {
		return nil, err
	}

	u, err := r.users.GetByID(p.Context, userID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Resolver) resolveTweets(p graphql.ResolveParams) (interface{}, error) {
	return r.tweets.List(p.Context)
}

// resolveTweet returns null for an absent id or a lookup miss, never an error.
func (r *Resolver) resolveTweet(p graphql.ResolveParams) (interface{}, error) {
	id, ok := p.Args["id"].(int)
	if !ok {
		return nil, nil
	}

	t, err := r.tweets.GetByID(p.Context, id)
	if errors.Is(err, tweet.ErrTweetNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Resolver) resolveSignup(p graphql.ResolveParams) (interface{}, error) {
	var name *string
	if v, ok := p.Args["name"].(string); ok {
		name = &v
	}
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	u, err := r.users.Signup(p.Context, name, email, password)
	if err != nil {
		return nil, err
	}

	token, err := r.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	r.log.Info("graph: user signed up", "id", u.ID)
	return &AuthPayload{Token: token, User: u}, nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	email, _ := p.Args["email"].(string)
	password, _ := p.Args["password"].(string)

	u, err := r.users.Login(p.Context, email, password)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, fmt.Errorf("no user found for email: %s", email)
	}
	if err != nil {
		return nil, err
	}

	token, err := r.tokens.Issue(u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthPayload{Token: token, User: u}, nil
}

func (r *Resolver) resolveCreateProfile(p graphql.ResolveParams) (interface{}, error) {
	userID, err := auth.RequireUserID(p.Context)
	if err != nil {
		return nil, err
	}

	data, _ := p.Args["data"].(map[string]interface{})
	input := profile.CreateInput{
		Bio:      optString(data, "bio"),
		Location: optString(data, "location"),
		Website:  optString(data, "website"),
		Avatar:   optString(data, "avatar"),
	}

	return r.profiles.Create(p.Context, userID, input)
}

// resolveUpdateProfile locates the target strictly by the id carried in the
// input, not by the caller's own profile.
func (r *Resolver) resolveUpdateProfile(p graphql.ResolveParams) (interface{}, error) {
	if _, err := auth.RequireUserID(p.Context); err != nil {
		return nil, err
	}

	data, _ := p.Args["data"].(map[string]interface{})
	id, ok := data["id"].(int)
	if !ok {
		return nil, fmt.Errorf("profile id is required")
	}

	input := profile.UpdateInput{
		ID:       id,
		Bio:      optString(data, "bio"),
		Location: optString(data, "location"),
		Website:  optString(data, "website"),
		Avatar:   optString(data, "avatar"),
	}

	return r.profiles.Update(p.Context, input)
}

func (r *Resolver) resolveCreateTweet(p graphql.ResolveParams) (interface{}, error) {
	userID, err := auth.RequireUserID(p.Context)
	if err != nil {
		return nil, err
	}

	data, _ := p.Args["data"].(map[string]interface{})
	content, _ := data["content"].(string)

	return r.tweets.Create(p.Context, userID, content)
}

func (r *Resolver) resolveUserProfile(p graphql.ResolveParams) (interface{}, error) {
	u, ok := userSource(p.Source)
	if !ok {
		return nil, nil
	}

	prof, err := r.profiles.GetByUserID(p.Context, u.ID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return prof, nil
}

func (r *Resolver) resolveUserTweets(p graphql.ResolveParams) (interface{}, error) {
	u, ok := userSource(p.Source)
	if !ok {
		return []tweet.Tweet{}, nil
	}
	return r.tweets.ListByAuthor(p.Context, u.ID)
}

func (r *Resolver) resolveProfileUser(p graphql.ResolveParams) (interface{}, error) {
	prof, ok := profileSource(p.Source)
	if !ok {
		return nil, nil
	}

	u, err := r.users.GetByID(p.Context, prof.UserID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *Resolver) resolveTweetAuthor(p graphql.ResolveParams) (interface{}, error) {
	t, ok := tweetSource(p.Source)
	if !ok {
		return nil, nil
	}

	u, err := r.users.GetByID(p.Context, t.AuthorID)
	if errors.Is(err, user.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List fields hand their elements to child resolvers by value, single fields
// by pointer; the source helpers accept both.

func userSource(source interface{}) (*user.User, bool) {
	switch v := source.(type) {
	case *user.User:
		return v, true
	case user.User:
		return &v, true
	}
	return nil, false
}

func profileSource(source interface{}) (*profile.Profile, bool) {
	switch v := source.(type) {
	case *profile.Profile:
		return v, true
	case profile.Profile:
		return &v, true
	}
	return nil, false
}

func tweetSource(source interface{}) (*tweet.Tweet, bool) {
	switch v := source.(type) {
	case *tweet.Tweet:
		return v, true
	case tweet.Tweet:
		return &v, true
	}
	return nil, false
}

func optString(data map[string]interface{}, key string) *string {
	if data == nil {
		return nil
	}
	if v, ok := data[key].(string); ok {
		return &v
	}
	return nil
}
