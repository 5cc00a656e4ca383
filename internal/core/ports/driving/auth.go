package driving

import (
	"context"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

// AuthManager handles login, logout and account administration. The
// current user's record also carries the sheet routing used on every
// trigger payload.
type AuthManager interface {
	// Login verifies credentials and persists the session.
	Login(ctx context.Context, username, password string) (*domain.User, error)

	// Logout clears the persisted session. A missing session is not
	// an error.
	Logout(ctx context.Context) error

	// Current returns the logged-in user, rehydrated from durable
	// storage, or domain.ErrNoSession.
	Current(ctx context.Context) (*domain.User, error)

	// CreateUser stores a new account and fires the user-created
	// notification webhook. A webhook failure does not fail creation.
	CreateUser(ctx context.Context, user domain.User) error
}

// BrandDirectory serves the brand list and per-brand idea cache.
type BrandDirectory interface {
	// Brands returns the directory, fetching it if not yet loaded.
	Brands(ctx context.Context) ([]domain.Brand, error)

	// Refresh refetches the directory and updates the cache. On fetch
	// failure the previous cached list is returned alongside the
	// error.
	Refresh(ctx context.Context) ([]domain.Brand, error)

	// BrandBySlug resolves a brand from the cached directory.
	BrandBySlug(ctx context.Context, slug string) (*domain.Brand, error)

	// Ideas returns the idea history for a brand, served from the
	// session cache when warm.
	Ideas(ctx context.Context, brand *domain.Brand) (*domain.IdeaSet, error)
}
