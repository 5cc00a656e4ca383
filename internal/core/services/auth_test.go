package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandforge-labs/brandforge-cli/internal/adapters/driven/storage/memory"
	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

type authFixture struct {
	auth     *Auth
	users    *memory.UserStore
	sessions *memory.SessionStore
	hooks    *fakeHooks
	audit    *memory.AuditLog
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	users := memory.NewUserStore()
	sessions := memory.NewSessionStore()
	hooks := &fakeHooks{}
	audit := memory.NewAuditLog()

	auth := NewAuth(users, sessions, hooks, &fakeConfig{endpoints: testEndpoints()}, audit)
	auth.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }

	return &authFixture{auth: auth, users: users, sessions: sessions, hooks: hooks, audit: audit}
}

func seedUser(t *testing.T, f *authFixture) domain.User {
	t.Helper()
	user := domain.User{
		ID:       "u-1",
		Username: "maya",
		Name:     "Maya",
		Password: "s3cret",
	}
	require.NoError(t, f.users.SaveUser(context.Background(), user))
	return user
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	seedUser(t, f)
	ctx := context.Background()

	user, err := f.auth.Login(ctx, "maya", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "maya", user.Username)

	// Session survives for subsequent calls.
	current, err := f.auth.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, "maya", current.Username)

	entries, err := f.audit.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "LOGIN", entries[0].Action)
	assert.Equal(t, "maya", entries[0].PerformedBy)
}

func TestLogin_BadCredentials(t *testing.T) {
	f := newAuthFixture(t)
	seedUser(t, f)
	ctx := context.Background()

	// Wrong password and unknown user are indistinguishable.
	_, err := f.auth.Login(ctx, "maya", "wrong")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, "nobody", "s3cret")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = f.auth.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestLogout(t *testing.T) {
	f := newAuthFixture(t)
	seedUser(t, f)
	ctx := context.Background()

	_, err := f.auth.Login(ctx, "maya", "s3cret")
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx))
	_, err = f.auth.Current(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	// Logging out twice is not an error.
	assert.NoError(t, f.auth.Logout(ctx))
}

func TestCreateUser(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	err := f.auth.CreateUser(ctx, domain.User{
		Username: "ravi",
		Password: "pw",
		Name:     "Ravi",
		Email:    "ravi@example.com",
		Role:     "editor",
	})
	require.NoError(t, err)

	stored, err := f.users.GetUserByUsername(ctx, "ravi")
	require.NoError(t, err)
	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), stored.CreatedAt)

	// The notification webhook fired with the account details.
	call := f.hooks.lastCall()
	require.NotNil(t, call)
	assert.Equal(t, "https://hooks.test/user-created", call.endpoint)
	payload := call.payload.(map[string]any)
	assert.Equal(t, "USER_CREATED", payload["event"])
	assert.Equal(t, "ravi", payload["username"])
	assert.Equal(t, "editor", payload["role"])

	// No session yet, so the audit entry is attributed to admin.
	entries, err := f.audit.Recent(ctx, 1)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "CREATE_USER", entries[0].Action)
	assert.Equal(t, "admin", entries[0].PerformedBy)
}

func TestCreateUser_Duplicate(t *testing.T) {
	f := newAuthFixture(t)
	seedUser(t, f)

	err := f.auth.CreateUser(context.Background(), domain.User{Username: "maya", Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestCreateUser_MissingFields(t *testing.T) {
	f := newAuthFixture(t)

	err := f.auth.CreateUser(context.Background(), domain.User{Username: "ravi"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = f.auth.CreateUser(context.Background(), domain.User{Password: "pw"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreateUser_WebhookFailureIsNotFatal(t *testing.T) {
	f := newAuthFixture(t)
	f.hooks.err = errors.New("webhook unreachable")

	err := f.auth.CreateUser(context.Background(), domain.User{Username: "ravi", Password: "pw"})
	require.NoError(t, err)

	_, err = f.users.GetUserByUsername(context.Background(), "ravi")
	assert.NoError(t, err)
}
