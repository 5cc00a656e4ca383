package driving

import (
	"context"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

// IntelligenceBrowser lists finished intelligence results. These are
// read-only views over the listing tabs; the corresponding submissions
// go through StudioOrchestrator.
type IntelligenceBrowser interface {
	// MarketReports returns finished market intelligence reports.
	MarketReports(ctx context.Context) ([]domain.MarketReport, error)

	// Transcriptions returns finished audio transcription summaries.
	Transcriptions(ctx context.Context) ([]domain.TranscriptionSummary, error)

	// Competitors returns finished competitor analysis reports.
	Competitors(ctx context.Context) ([]domain.CompetitorReport, error)

	// Meetings returns summarized meeting minutes.
	Meetings(ctx context.Context) ([]domain.MeetingSummary, error)

	// Activity returns recent audit entries, newest first. limit <= 0
	// means a sensible default.
	Activity(ctx context.Context, limit int) ([]domain.AuditEntry, error)
}
