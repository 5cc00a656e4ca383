package driven

import (
	"context"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

// SheetReader fetches result rows from the spreadsheet-backed
// datastore, one method per tab. Each call takes a full CSV snapshot
// of the tab and applies the tab's matching rules.
//
// Two outcomes mean "keep polling" and both surface as a nil result
// with a nil error: no matching row at all, and a matching row whose
// result columns are not yet populated. Errors are reserved for
// transport and whole-snapshot failures; malformed individual cells
// are skipped, never fatal.
type SheetReader interface {
	// FetchBrands reads the brand directory, deduplicated by
	// normalized URL (latest row wins) and ordered newest first.
	FetchBrands(ctx context.Context, cfg domain.SheetConfig) ([]domain.Brand, error)

	// FetchCampaignIdeas returns the full idea history for a brand,
	// matching rows by normalized URL equality.
	FetchCampaignIdeas(ctx context.Context, cfg domain.SheetConfig, brandURL string) (*domain.IdeaSet, error)

	// FetchCampaignIdeasByRequestID returns the ideas of the single
	// row whose log id equals requestID, or nil if no such row exists.
	FetchCampaignIdeasByRequestID(ctx context.Context, cfg domain.SheetConfig, requestID string) (*domain.IdeaSet, error)

	// FetchGeneratedCreatives returns the image URLs of the latest
	// batch-creatives row for a request. Request-id match takes
	// priority; brand URL + fuzzy idea name is the fallback.
	FetchGeneratedCreatives(ctx context.Context, cfg domain.SheetConfig, requestID, brandURL, ideaName string) ([]string, error)

	// FetchAnimatedCreatives returns the idea-name-to-video map for a
	// brand.
	FetchAnimatedCreatives(ctx context.Context, cfg domain.SheetConfig, brandURL string) (domain.AnimationMap, error)

	// FetchCustomCreatives returns the creative produced for an exact
	// prompt, or nil while the row is absent or its result column is
	// still empty.
	FetchCustomCreatives(ctx context.Context, cfg domain.SheetConfig, prompt string) ([]domain.Creative, error)

	// FetchBrandCreatives merges the custom and batch tabs for one
	// brand, tagged by source and ordered newest first.
	FetchBrandCreatives(ctx context.Context, cfg domain.SheetConfig, brandURL string) ([]domain.Creative, error)

	// Listing tabs for the intelligence features.
	FetchMarketReports(ctx context.Context) ([]domain.MarketReport, error)
	FetchTranscriptionSummaries(ctx context.Context) ([]domain.TranscriptionSummary, error)
	FetchCompetitorReports(ctx context.Context) ([]domain.CompetitorReport, error)
	FetchMeetingSummaries(ctx context.Context) ([]domain.MeetingSummary, error)
}
