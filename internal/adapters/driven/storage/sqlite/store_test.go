package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

// setupTestStore creates a temporary SQLite store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })
	return store
}

func TestNewStore_Migrates(t *testing.T) {
	store := setupTestStore(t)
	assert.NotEmpty(t, store.Path())

	var version int
	err := store.db.QueryRow("SELECT MAX(version) FROM schema_migrations").Scan(&version)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, version, 1)
}

func TestUserStore_SaveAndGet(t *testing.T) {
	store := setupTestStore(t)
	users := store.UserStore()
	ctx := context.Background()

	_, err := users.GetUserByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	user := domain.User{
		ID:       "u-1",
		Username: "alex",
		Name:     "Alex",
		Email:    "alex@acme.io",
		Role:     "admin",
		Password: "secret",
		Sheets:   domain.SheetConfig{SpreadsheetID: "sheet-1", CreativesID: "200"},
	}
	require.NoError(t, users.SaveUser(ctx, user))

	got, err := users.GetUserByUsername(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
	assert.Equal(t, "secret", got.Password)
	assert.Equal(t, "sheet-1", got.Sheets.SpreadsheetID)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestUserStore_UpsertByUsername(t *testing.T) {
	store := setupTestStore(t)
	users := store.UserStore()
	ctx := context.Background()

	require.NoError(t, users.SaveUser(ctx, domain.User{ID: "u-1", Username: "alex", Password: "old"}))
	require.NoError(t, users.SaveUser(ctx, domain.User{ID: "u-1", Username: "alex", Password: "new", Role: "editor"}))

	got, err := users.GetUserByUsername(ctx, "alex")
	require.NoError(t, err)
	assert.Equal(t, "new", got.Password)
	assert.Equal(t, "editor", got.Role)

	list, err := users.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestSessionStore_Lifecycle(t *testing.T) {
	store := setupTestStore(t)
	sessions := store.SessionStore()
	ctx := context.Background()

	_, err := sessions.CurrentSession(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	user := domain.User{
		ID:       "u-1",
		Username: "alex",
		Password: "secret",
		Sheets:   domain.SheetConfig{SpreadsheetID: "sheet-1"},
	}
	require.NoError(t, sessions.SaveSession(ctx, user))

	got, err := sessions.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "alex", got.Username)
	assert.Equal(t, "sheet-1", got.Sheets.SpreadsheetID)
	// Credentials are not persisted with the session.
	assert.Empty(t, got.Password)

	// A second save replaces the single session row.
	require.NoError(t, sessions.SaveSession(ctx, domain.User{ID: "u-2", Username: "sam"}))
	got, err = sessions.CurrentSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sam", got.Username)

	require.NoError(t, sessions.ClearSession(ctx))
	_, err = sessions.CurrentSession(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestAuditLog_RecentNewestFirst(t *testing.T) {
	store := setupTestStore(t)
	log := store.AuditLog()
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i, action := range []string{"login", "extract_brand", "brainstorm"} {
		require.NoError(t, log.Record(ctx, domain.AuditEntry{
			ID:          domain.NewRequestID(),
			Action:      action,
			PerformedBy: "alex",
			Timestamp:   base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := log.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "brainstorm", entries[0].Action)
	assert.Equal(t, "extract_brand", entries[1].Action)
}

func TestStore_ReopenKeepsData(t *testing.T) {
	dir := t.TempDir()

	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.UserStore().SaveUser(context.Background(), domain.User{ID: "u-1", Username: "alex", Password: "pw"}))
	require.NoError(t, store.Close())

	reopened, err := NewStore(dir)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.UserStore().GetUserByUsername(context.Background(), "alex")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)
}
