package graph

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"tweet-app-go/internal/auth"
	"tweet-app-go/internal/domain/profile"
	"tweet-app-go/internal/domain/tweet"
	"tweet-app-go/internal/domain/user"
	"tweet-app-go/internal/graph/permission"
	"tweet-app-go/pkg/logger"
)

type fakeUserRepo struct {
	users  map[int]*user.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int]*user.User), nextID: 1}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return user.ErrEmailTaken
		}
	}
	u.ID = r.nextID
	r.nextID++
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	result := make([]user.User, 0, len(r.users))
	for id := 1; id < r.nextID; id++ {
		if u, ok := r.users[id]; ok {
			result = append(result, *u)
		}
	}
	return result, nil
}

type fakeProfileRepo struct {
	profiles map[int]*profile.Profile
	nextID   int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[int]*profile.Profile), nextID: 1}
}

func (r *fakeProfileRepo) Create(ctx context.Context, p *profile.Profile) error {
	p.ID = r.nextID
	p.CreatedAt = time.Now().UTC()
	r.nextID++
	copied := *p
	r.profiles[p.ID] = &copied
	return nil
}

func (r *fakeProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	existing, ok := r.profiles[p.ID]
	if !ok {
		return profile.ErrProfileNotFound
	}
	existing.Bio = p.Bio
	existing.Location = p.Location
	existing.Website = p.Website
	existing.Avatar = p.Avatar
	return nil
}

func (r *fakeProfileRepo) GetByID(ctx context.Context, id int) (*profile.Profile, error) {
	p, ok := r.profiles[id]
	if !ok {
		return nil, profile.ErrProfileNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeProfileRepo) GetByUserID(ctx context.Context, userID int) (*profile.Profile, error) {
	for _, p := range r.profiles {
		if p.UserID == userID {
			copied := *p
			return &copied, nil
		}
	}
	return nil, profile.ErrProfileNotFound
}

type fakeTweetRepo struct {
	tweets map[int]*tweet.Tweet
	nextID int
}

func newFakeTweetRepo() *fakeTweetRepo {
	return &fakeTweetRepo{tweets: make(map[int]*tweet.Tweet), nextID: 1}
}

func (r *fakeTweetRepo) Create(ctx context.Context, t *tweet.Tweet) error {
	t.ID = r.nextID
	t.CreatedAt = time.Now().UTC()
	r.nextID++
	copied := *t
	r.tweets[t.ID] = &copied
	return nil
}

func (r *fakeTweetRepo) GetByID(ctx context.Context, id int) (*tweet.Tweet, error) {
	t, ok := r.tweets[id]
	if !ok {
		return nil, tweet.ErrTweetNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeTweetRepo) List(ctx context.Context) ([]tweet.Tweet, error) {
	result := make([]tweet.Tweet, 0, len(r.tweets))
	for id := 1; id < r.nextID; id++ {
		if t, ok := r.tweets[id]; ok {
			result = append(result, *t)
		}
	}
	return result, nil
}

func (r *fakeTweetRepo) ListByAuthor(ctx context.Context, authorID int) ([]tweet.Tweet, error) {
	result := make([]tweet.Tweet, 0)
	for id := 1; id < r.nextID; id++ {
		if t, ok := r.tweets[id]; ok && t.AuthorID == authorID {
			result = append(result, *t)
		}
	}
	return result, nil
}

type testEnv struct {
	schema    graphql.Schema
	userRepo  *fakeUserRepo
	tweetRepo *fakeTweetRepo
	codec     *auth.Codec
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	tweetRepo := newFakeTweetRepo()

	codec := auth.NewCodec(auth.CodecConfig{Secret: "test-secret"})
	resolver := NewResolver(
		user.NewService(userRepo),
		profile.NewService(profileRepo),
		tweet.NewService(tweetRepo),
		codec,
		logger.NewFromEnv(),
	)

	schema, err := NewSchema(resolver, permission.Default())
	if err != nil {
		t.Fatalf("build schema: %v", err)
	}

	return &testEnv{schema: schema, userRepo: userRepo, tweetRepo: tweetRepo, codec: codec}
}

func (e *testEnv) execute(t *testing.T, ctx context.Context, query string) *graphql.Result {
	t.Helper()
	return graphql.Do(graphql.Params{Schema: e.schema, RequestString: query, Context: ctx})
}

func (e *testEnv) signup(t *testing.T, email, password string) int {
	t.Helper()
	result := e.execute(t, context.Background(), fmt.Sprintf(
		`mutation { signup(email: %q, password: %q) { user { id } } }`, email, password))
	if len(result.Errors) > 0 {
		t.Fatalf("signup: %v", result.Errors)
	}
	return toInt(t, child(t, data(t, result), "signup")["user"].(map[string]interface{})["id"])
}

func authedContext(userID int) context.Context {
	return auth.WithIdentity(context.Background(), auth.Identity{UserID: userID})
}

func data(t *testing.T, result *graphql.Result) map[string]interface{} {
	t.Helper()
	m, ok := result.Data.(map[string]interface{})
	if !ok {
		t.Fatalf("unexpected data shape %T", result.Data)
	}
	return m
}

func child(t *testing.T, m map[string]interface{}, key string) map[string]interface{} {
	t.Helper()
	c, ok := m[key].(map[string]interface{})
	if !ok {
		t.Fatalf("expected object at %q, got %T", key, m[key])
	}
	return c
}

func toInt(t *testing.T, v interface{}) int {
	t.Helper()
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	}
	t.Fatalf("expected number, got %T", v)
	return 0
}

func TestSignupAndLogin(t *testing.T) {
	env := newTestEnv(t)

	result := env.execute(t, context.Background(),
		`mutation { signup(name: "Alice", email: "alice@example.com", password: "hunter2") { token user { id name email } } }`)
	if len(result.Errors) > 0 {
		t.Fatalf("signup: %v", result.Errors)
	}

	payload := child(t, data(t, result), "signup")
	token, _ := payload["token"].(string)
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	u := child(t, payload, "user")
	if u["email"] != "alice@example.com" {
		t.Fatalf("expected signup email, got %v", u["email"])
	}

	userID, err := env.codec.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if userID != toInt(t, u["id"]) {
		t.Fatalf("token user id %d does not match signup user %v", userID, u["id"])
	}

	login := env.execute(t, context.Background(),
		`mutation { login(email: "alice@example.com", password: "hunter2") { token user { email } } }`)
	if len(login.Errors) > 0 {
		t.Fatalf("login: %v", login.Errors)
	}
	if token, _ := child(t, data(t, login), "login")["token"].(string); token == "" {
		t.Fatal("expected login to issue a token")
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "alice@example.com", "pw1")

	result := env.execute(t, context.Background(),
		`mutation { signup(email: "alice@example.com", password: "pw2") { token } }`)
	if len(result.Errors) == 0 {
		t.Fatal("expected duplicate signup to fail")
	}

	users, _ := env.userRepo.List(context.Background())
	if len(users) != 1 {
		t.Fatalf("expected no new user row, got %d users", len(users))
	}
}

func TestLoginFailures(t *testing.T) {
	env := newTestEnv(t)
	env.signup(t, "alice@example.com", "hunter2")

	wrongPassword := env.execute(t, context.Background(),
		`mutation { login(email: "alice@example.com", password: "wrong") { token } }`)
	if len(wrongPassword.Errors) == 0 {
		t.Fatal("expected wrong password to fail")
	}
	if msg := wrongPassword.Errors[0].Message; msg != "invalid password" {
		t.Fatalf("unexpected error message %q", msg)
	}

	unknown := env.execute(t, context.Background(),
		`mutation { login(email: "nobody@example.com", password: "pw") { token } }`)
	if len(unknown.Errors) == 0 {
		t.Fatal("expected unknown email to fail")
	}
	if msg := unknown.Errors[0].Message; !strings.Contains(msg, "no user found for email") {
		t.Fatalf("unexpected error message %q", msg)
	}
}

func TestMe(t *testing.T) {
	env := newTestEnv(t)
	userID := env.signup(t, "alice@example.com", "pw")

	result := env.execute(t, authedContext(userID), `{ me { id email } }`)
	if len(result.Errors) > 0 {
		t.Fatalf("me: %v", result.Errors)
	}
	me := child(t, data(t, result), "me")
	if toInt(t, me["id"]) != userID {
		t.Fatalf("expected me to be user %d, got %v", userID, me["id"])
	}

	anonymous := env.execute(t, context.Background(), `{ me { id } }`)
	if len(anonymous.Errors) == 0 {
		t.Fatal("expected anonymous me to be denied")
	}
}

func TestTweetMissReturnsNull(t *testing.T) {
	env := newTestEnv(t)

	result := env.execute(t, context.Background(), `{ tweet(id: 999) { id } }`)
	if len(result.Errors) > 0 {
		t.Fatalf("expected miss to be null, got errors: %v", result.Errors)
	}
	if data(t, result)["tweet"] != nil {
		t.Fatalf("expected null tweet, got %v", data(t, result)["tweet"])
	}
}

func TestCreateTweet(t *testing.T) {
	env := newTestEnv(t)
	userID := env.signup(t, "alice@example.com", "pw")

	denied := env.execute(t, context.Background(),
		`mutation { createTweet(data: { content: "hi" }) { id } }`)
	if len(denied.Errors) == 0 {
		t.Fatal("expected anonymous createTweet to be denied")
	}
	if tweets, _ := env.tweetRepo.List(context.Background()); len(tweets) != 0 {
		t.Fatalf("expected no tweet rows after denial, got %d", len(tweets))
	}

	empty := env.execute(t, authedContext(userID),
		`mutation { createTweet(data: {}) { id } }`)
	if len(empty.Errors) == 0 {
		t.Fatal("expected empty content to fail")
	}
	if msg := empty.Errors[0].Message; msg != "content is empty" {
		t.Fatalf("unexpected error message %q", msg)
	}
	if tweets, _ := env.tweetRepo.List(context.Background()); len(tweets) != 0 {
		t.Fatalf("expected no tweet rows after validation failure, got %d", len(tweets))
	}

	created := env.execute(t, authedContext(userID),
		`mutation { createTweet(data: { content: "hello world" }) { id content author { id } } }`)
	if len(created.Errors) > 0 {
		t.Fatalf("createTweet: %v", created.Errors)
	}
	tw := child(t, data(t, created), "createTweet")
	if tw["content"] != "hello world" {
		t.Fatalf("unexpected content %v", tw["content"])
	}
	author := child(t, tw, "author")
	if toInt(t, author["id"]) != userID {
		t.Fatalf("expected author %d, got %v", userID, author["id"])
	}
}

func TestCreateProfile(t *testing.T) {
	env := newTestEnv(t)

	denied := env.execute(t, context.Background(),
		`mutation { createProfile(data: { bio: "hi" }) { id } }`)
	if len(denied.Errors) == 0 {
		t.Fatal("expected anonymous createProfile to be denied")
	}

	// Identity 7 must end up as the linked user.
	for i := 0; i < 7; i++ {
		env.signup(t, fmt.Sprintf("user%d@example.com", i), "pw")
	}

	result := env.execute(t, authedContext(7),
		`mutation { createProfile(data: { bio: "hi" }) { id bio user { id } } }`)
	if len(result.Errors) > 0 {
		t.Fatalf("createProfile: %v", result.Errors)
	}
	prof := child(t, data(t, result), "createProfile")
	if prof["bio"] != "hi" {
		t.Fatalf("unexpected bio %v", prof["bio"])
	}
	owner := child(t, prof, "user")
	if toInt(t, owner["id"]) != 7 {
		t.Fatalf("expected profile linked to user 7, got %v", owner["id"])
	}
}

func TestUpdateProfile(t *testing.T) {
	env := newTestEnv(t)
	userID := env.signup(t, "alice@example.com", "pw")

	created := env.execute(t, authedContext(userID),
		`mutation { createProfile(data: { bio: "old", location: "town" }) { id } }`)
	if len(created.Errors) > 0 {
		t.Fatalf("createProfile: %v", created.Errors)
	}
	profileID := toInt(t, child(t, data(t, created), "createProfile")["id"])

	updated := env.execute(t, authedContext(userID), fmt.Sprintf(
		`mutation { updateProfile(data: { id: %d, bio: "new" }) { bio location } }`, profileID))
	if len(updated.Errors) > 0 {
		t.Fatalf("updateProfile: %v", updated.Errors)
	}
	prof := child(t, data(t, updated), "updateProfile")
	if prof["bio"] != "new" {
		t.Fatalf("expected updated bio, got %v", prof["bio"])
	}
	if prof["location"] != "town" {
		t.Fatalf("expected untouched location, got %v", prof["location"])
	}

	missingID := env.execute(t, authedContext(userID),
		`mutation { updateProfile(data: { bio: "x" }) { id } }`)
	if len(missingID.Errors) == 0 {
		t.Fatal("expected update without id to fail")
	}
}

func TestUserTweetsRelation(t *testing.T) {
	env := newTestEnv(t)
	userID := env.signup(t, "alice@example.com", "pw")

	for _, content := range []string{"first", "second"} {
		result := env.execute(t, authedContext(userID), fmt.Sprintf(
			`mutation { createTweet(data: { content: %q }) { id } }`, content))
		if len(result.Errors) > 0 {
			t.Fatalf("createTweet: %v", result.Errors)
		}
	}

	result := env.execute(t, context.Background(), `{ allUsers { id tweets { content } } }`)
	if len(result.Errors) > 0 {
		t.Fatalf("allUsers: %v", result.Errors)
	}

	users, ok := data(t, result)["allUsers"].([]interface{})
	if !ok || len(users) != 1 {
		t.Fatalf("expected 1 user, got %v", data(t, result)["allUsers"])
	}

	tweets, ok := users[0].(map[string]interface{})["tweets"].([]interface{})
	if !ok || len(tweets) != 2 {
		t.Fatalf("expected 2 tweets, got %v", users[0])
	}
	first := tweets[0].(map[string]interface{})["content"]
	second := tweets[1].(map[string]interface{})["content"]
	if first != "first" || second != "second" {
		t.Fatalf("unexpected tweet order %v, %v", first, second)
	}
}
