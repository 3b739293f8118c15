package session

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradient-edu/gradient-cli/internal/client/api"
	"github.com/gradient-edu/gradient-cli/internal/client/models"
	"github.com/gradient-edu/gradient-cli/internal/client/tokenstore"
)

// fakeAuth implements authAPI with preset results.
type fakeAuth struct {
	loginTok *models.Token
	loginErr error

	registerUser *models.User
	registerErr  error

	currentUser *models.User
	currentErr  error

	updatedUser *models.User
	updateErr   error

	lastRegister models.UserCreate
	lastUpdate   models.UserUpdate
}

func (f *fakeAuth) Login(ctx context.Context, email, password string) (*models.Token, error) {
	return f.loginTok, f.loginErr
}

func (f *fakeAuth) Register(ctx context.Context, payload models.UserCreate) (*models.User, error) {
	f.lastRegister = payload
	return f.registerUser, f.registerErr
}

func (f *fakeAuth) CurrentUser(ctx context.Context) (*models.User, error) {
	return f.currentUser, f.currentErr
}

func (f *fakeAuth) UpdateProfile(ctx context.Context, payload models.UserUpdate) (*models.User, error) {
	f.lastUpdate = payload
	return f.updatedUser, f.updateErr
}

func newSession(f *fakeAuth) (*Session, tokenstore.Store) {
	store := tokenstore.NewMemory()
	return New(f, store, nil), store
}

func TestSession_LoginPublishesUserAndStoresToken(t *testing.T) {
	ctx := context.Background()
	f := &fakeAuth{
		loginTok:    &models.Token{AccessToken: "issued", TokenType: "bearer"},
		currentUser: &models.User{ID: 1, Email: "a@b.c", Role: models.RoleStudent},
	}
	s, store := newSession(f)

	require.True(t, s.Login(ctx, "a@b.c", "pw"))

	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "a@b.c", s.CurrentUser().Email)
	assert.Empty(t, s.LastError())

	tok, _ := store.Get(ctx)
	assert.Equal(t, "issued", tok)
}

func TestSession_LoginFailurePublishesBackendMessage(t *testing.T) {
	ctx := context.Background()
	f := &fakeAuth{
		loginErr: &api.APIError{StatusCode: 400, Detail: json.RawMessage(`"Incorrect email or password"`)},
	}
	s, store := newSession(f)

	require.False(t, s.Login(ctx, "a@b.c", "wrong"))

	assert.False(t, s.IsAuthenticated())
	assert.Equal(t, "Incorrect email or password", s.LastError())
	tok, _ := store.Get(ctx)
	assert.Empty(t, tok)
}

func TestSession_LogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	f := &fakeAuth{
		loginTok:    &models.Token{AccessToken: "issued"},
		currentUser: &models.User{ID: 1, Email: "a@b.c"},
	}
	s, store := newSession(f)
	require.True(t, s.Login(ctx, "a@b.c", "pw"))

	s.Logout(ctx)

	assert.False(t, s.IsAuthenticated())
	tok, _ := store.Get(ctx)
	assert.Empty(t, tok)
}

func TestSession_InitResolvesStoredToken(t *testing.T) {
	ctx := context.Background()
	f := &fakeAuth{currentUser: &models.User{ID: 3, Email: "back@again.io"}}
	s, store := newSession(f)
	require.NoError(t, store.Set(ctx, "stored"))

	s.Init(ctx)

	assert.True(t, s.IsAuthenticated())
	assert.False(t, s.Loading())
	assert.Empty(t, s.LastError())
}

func TestSession_InitFailureIsSilent(t *testing.T) {
	// A garbage or expired stored token degrades to "not logged in" with no
	// published error, and the token is removed.
	ctx := context.Background()
	f := &fakeAuth{
		currentErr: &api.APIError{StatusCode: 401, Detail: json.RawMessage(`"token expired"`)},
	}
	s, store := newSession(f)
	require.NoError(t, store.Set(ctx, "garbage"))

	s.Init(ctx)

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.LastError(), "startup resolution failures must stay silent")
	tok, _ := store.Get(ctx)
	assert.Empty(t, tok)
}

func TestSession_InitWithoutTokenDoesNothing(t *testing.T) {
	f := &fakeAuth{currentUser: &models.User{ID: 1}}
	s, _ := newSession(f)

	s.Init(context.Background())

	assert.False(t, s.IsAuthenticated())
}

func TestSession_UpdateProfileReplacesWholesale(t *testing.T) {
	// The published user becomes exactly the backend's response; fields the
	// response omits must not survive from the previous value.
	ctx := context.Background()
	phone := "555"
	f := &fakeAuth{
		loginTok: &models.Token{AccessToken: "t"},
		currentUser: &models.User{
			ID: 1, Email: "a@b.c", FirstName: "A", PhoneNumber: "000",
		},
		updatedUser: &models.User{
			ID: 1, Email: "a@b.c", FirstName: "A", PhoneNumber: "555",
		},
	}
	s, _ := newSession(f)
	require.True(t, s.Login(ctx, "a@b.c", "pw"))

	require.True(t, s.UpdateProfile(ctx, models.UserUpdate{PhoneNumber: &phone}))

	got := s.CurrentUser()
	assert.Equal(t, f.updatedUser, got)
	assert.Equal(t, "555", got.PhoneNumber)
}

func TestSession_UpdateProfileFailureKeepsUser(t *testing.T) {
	ctx := context.Background()
	f := &fakeAuth{
		loginTok:    &models.Token{AccessToken: "t"},
		currentUser: &models.User{ID: 1, Email: "a@b.c", FirstName: "A"},
		updateErr:   &api.APIError{StatusCode: 422, Detail: json.RawMessage(`"phone_number too long"`)},
	}
	s, _ := newSession(f)
	require.True(t, s.Login(ctx, "a@b.c", "pw"))

	bad := "this-number-is-way-too-long"
	require.False(t, s.UpdateProfile(ctx, models.UserUpdate{PhoneNumber: &bad}))

	assert.Equal(t, "A", s.CurrentUser().FirstName)
	assert.Equal(t, "phone_number too long", s.LastError())
}

func TestSession_RegisterDoesNotLogIn(t *testing.T) {
	ctx := context.Background()
	f := &fakeAuth{registerUser: &models.User{ID: 9, Email: "new@user.io"}}
	s, store := newSession(f)

	require.True(t, s.Register(ctx, models.UserCreate{Email: "new@user.io"}))

	assert.False(t, s.IsAuthenticated())
	tok, _ := store.Get(ctx)
	assert.Empty(t, tok)
}

func TestSession_HandleSessionExpired(t *testing.T) {
	ctx := context.Background()
	f := &fakeAuth{
		loginTok:    &models.Token{AccessToken: "t"},
		currentUser: &models.User{ID: 1, Email: "a@b.c"},
	}
	s, _ := newSession(f)
	require.True(t, s.Login(ctx, "a@b.c", "pw"))

	s.HandleSessionExpired()

	assert.False(t, s.IsAuthenticated())
}

func TestSession_TokenExpiry(t *testing.T) {
	ctx := context.Background()
	s, store := newSession(&fakeAuth{})

	// no token stored
	_, ok := s.TokenExpiry(ctx)
	assert.False(t, ok)

	// opaque non-JWT token
	require.NoError(t, store.Set(ctx, "not-a-jwt"))
	_, ok = s.TokenExpiry(ctx)
	assert.False(t, ok)

	// real JWT with an exp claim; signature is irrelevant to the peek
	exp := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "a@b.c",
		"exp": exp.Unix(),
	})
	signed, err := tok.SignedString([]byte("any-key"))
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, signed))

	got, ok := s.TokenExpiry(ctx)
	require.True(t, ok)
	assert.True(t, got.Equal(exp))
}
