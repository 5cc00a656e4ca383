package driven

import (
	"context"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

// SessionStore persists the current user's record across runs. It
// holds at most one record: the logged-in user.
type SessionStore interface {
	// SaveSession stores the user as the current session.
	SaveSession(ctx context.Context, user domain.User) error

	// CurrentSession returns the stored user, or domain.ErrNoSession.
	CurrentSession(ctx context.Context) (*domain.User, error)

	// ClearSession removes the stored session, if any.
	ClearSession(ctx context.Context) error
}

// UserStore holds dashboard accounts.
type UserStore interface {
	// SaveUser creates or updates a user record.
	SaveUser(ctx context.Context, user domain.User) error

	// GetUserByUsername returns a user, or domain.ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers returns all accounts.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// AuditLog records user-visible actions.
type AuditLog interface {
	// Record appends one entry. Failures are logged by callers and
	// never block the action being recorded.
	Record(ctx context.Context, entry domain.AuditEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}

// BrandCache holds the brand directory for the session.
type BrandCache interface {
	// SetBrands replaces the cached directory.
	SetBrands(brands []domain.Brand)

	// Brands returns the cached directory, newest first.
	Brands() []domain.Brand

	// BrandBySlug returns a cached brand, or nil.
	BrandBySlug(slug string) *domain.Brand

	// BrandByURL returns the cached brand with a matching normalized
	// URL, or nil.
	BrandByURL(url string) *domain.Brand
}

// IdeaCache holds previously fetched idea histories keyed by brand
// slug, so revisiting a brand does not refetch the tab.
type IdeaCache interface {
	// PutIdeas caches the idea history for a brand.
	PutIdeas(slug string, ideas *domain.IdeaSet)

	// GetIdeas returns the cached history, or nil.
	GetIdeas(slug string) *domain.IdeaSet
}
