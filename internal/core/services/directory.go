package services

import (
	"context"
	"fmt"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driving"
)

// Ensure Directory implements the interface.
var _ driving.BrandDirectory = (*Directory)(nil)

// Directory serves the brand list and per-brand idea history, backed
// by session caches so repeated lookups do not refetch tabs.
type Directory struct {
	sheets     driven.SheetReader
	config     driven.ConfigStore
	sessions   driven.SessionStore
	brandCache driven.BrandCache
	ideaCache  driven.IdeaCache
}

// NewDirectory creates the directory service.
func NewDirectory(
	sheets driven.SheetReader,
	config driven.ConfigStore,
	sessions driven.SessionStore,
	brandCache driven.BrandCache,
	ideaCache driven.IdeaCache,
) *Directory {
	return &Directory{
		sheets:     sheets,
		config:     config,
		sessions:   sessions,
		brandCache: brandCache,
		ideaCache:  ideaCache,
	}
}

func (d *Directory) sheetConfig(ctx context.Context) domain.SheetConfig {
	cfg := d.config.DefaultSheets()
	user, err := d.sessions.CurrentSession(ctx)
	if err != nil {
		return cfg
	}
	return cfg.Merge(user.Sheets)
}

// Brands returns the directory, fetching it on first use.
func (d *Directory) Brands(ctx context.Context) ([]domain.Brand, error) {
	if cached := d.brandCache.Brands(); len(cached) > 0 {
		return cached, nil
	}
	return d.Refresh(ctx)
}

// Refresh refetches the directory. On fetch failure the previous
// cached list is returned alongside the error, so a flaky datastore
// degrades to stale data instead of an empty screen.
func (d *Directory) Refresh(ctx context.Context) ([]domain.Brand, error) {
	brands, err := d.sheets.FetchBrands(ctx, d.sheetConfig(ctx))
	if err != nil {
		return d.brandCache.Brands(), fmt.Errorf("refresh brands: %w", err)
	}
	d.brandCache.SetBrands(brands)
	return brands, nil
}

// BrandBySlug resolves a brand from the directory, loading it first if
// needed.
func (d *Directory) BrandBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	if _, err := d.Brands(ctx); err != nil {
		return nil, err
	}
	brand := d.brandCache.BrandBySlug(slug)
	if brand == nil {
		return nil, fmt.Errorf("brand %q: %w", slug, domain.ErrNotFound)
	}
	return brand, nil
}

// Ideas returns the idea history for a brand, served from the session
// cache when warm.
func (d *Directory) Ideas(ctx context.Context, brand *domain.Brand) (*domain.IdeaSet, error) {
	if brand == nil {
		return nil, domain.ErrInvalidInput
	}
	if cached := d.ideaCache.GetIdeas(brand.Slug); cached != nil {
		return cached, nil
	}

	ideas, err := d.sheets.FetchCampaignIdeas(ctx, d.sheetConfig(ctx), brand.URL)
	if err != nil {
		return nil, fmt.Errorf("fetch ideas: %w", err)
	}
	d.ideaCache.PutIdeas(brand.Slug, ideas)
	return ideas, nil
}
