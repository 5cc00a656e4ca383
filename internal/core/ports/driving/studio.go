package driving

import (
	"context"
	"io"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

// ProgressFunc receives cosmetic progress updates while an operation
// polls for its result: a percentage (monotonically increasing, 100
// only on confirmed success) and a step caption. It is a perceived-
// latency affordance only, never a correctness signal.
type ProgressFunc func(percent int, step string)

// StudioOrchestrator runs the asynchronous generation operations.
// Every method follows the same shape: fire a webhook trigger carrying
// a fresh correlation id and the caller's sheet routing, then poll the
// relevant datastore tab until a matching result row appears or the
// poll ceiling passes.
type StudioOrchestrator interface {
	// ExtractBrand submits a website URL for brand DNA extraction and
	// waits for the brand to appear in the directory.
	ExtractBrand(ctx context.Context, rawURL string, progress ProgressFunc) (*domain.Brand, error)

	// Brainstorm requests campaign ideas for a brand and returns the
	// refreshed full idea history once new ideas land.
	Brainstorm(ctx context.Context, brand *domain.Brand, campaignContext string, progress ProgressFunc) (*domain.IdeaSet, error)

	// GenerateCreatives produces the batch creative set for one idea.
	// At most one generation per brand+idea may run per session.
	GenerateCreatives(ctx context.Context, brand *domain.Brand, idea *domain.CampaignIdea, progress ProgressFunc) ([]domain.Creative, error)

	// GenerateCustomCreative produces a single creative from a free
	// prompt. Multiple custom generations may run concurrently.
	GenerateCustomCreative(ctx context.Context, brand *domain.Brand, req CustomCreativeRequest, progress ProgressFunc) ([]domain.Creative, error)

	// Animate requests a video for a creative and returns the video
	// URL. One result satisfies every pending animation for the same
	// idea; see domain.AnimationMap.
	Animate(ctx context.Context, brand *domain.Brand, idea *domain.CampaignIdea, creative *domain.Creative, progress ProgressFunc) (string, error)

	// CreativeHistory returns all creatives for a brand filtered to
	// one idea (batch creatives fuzzy-matched by name, custom ones
	// always included).
	CreativeHistory(ctx context.Context, brand *domain.Brand, idea *domain.CampaignIdea) ([]domain.Creative, error)

	// Fire-and-forget submissions. Results surface later in the
	// intelligence listing tabs.
	RequestMarketReport(ctx context.Context, brief domain.MarketBrief) error
	RequestCompetitorAnalysis(ctx context.Context, companyName, websiteURL string) error
	SubmitMeetingNotes(ctx context.Context, title, date, timeOfDay, notes string) error
	TranscribeAudio(ctx context.Context, filename string, audio io.Reader) error
}

// CustomCreativeRequest carries the inputs of a user-prompted creative
// generation.
type CustomCreativeRequest struct {
	// Prompt is the free-text instruction. It is also the poll match
	// key against the custom creatives tab.
	Prompt string

	// ImageData is an optional reference image, base64-encoded with a
	// data-URL prefix, or a plain URL to a brand asset.
	ImageData string

	// ImageExtension is the reference image's file extension.
	ImageExtension string

	// AspectRatio is the requested size, e.g. "9:16".
	AspectRatio string

	// TextOptions lists requested overlay texts ("header", "cta").
	TextOptions []string
}
