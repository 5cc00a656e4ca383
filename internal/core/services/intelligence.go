package services

import (
	"context"
	"fmt"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driving"
)

// Ensure Intelligence implements the interface.
var _ driving.IntelligenceBrowser = (*Intelligence)(nil)

// Intelligence serves the finished-results listings. Unlike the
// generation flows there is no correlation to do here: whatever rows
// the listing tabs hold are the results.
type Intelligence struct {
	sheets driven.SheetReader
	audit  driven.AuditLog
}

// NewIntelligence creates the listing service.
func NewIntelligence(sheets driven.SheetReader, audit driven.AuditLog) *Intelligence {
	return &Intelligence{sheets: sheets, audit: audit}
}

func (i *Intelligence) MarketReports(ctx context.Context) ([]domain.MarketReport, error) {
	reports, err := i.sheets.FetchMarketReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("market reports: %w", err)
	}
	return reports, nil
}

func (i *Intelligence) Transcriptions(ctx context.Context) ([]domain.TranscriptionSummary, error) {
	summaries, err := i.sheets.FetchTranscriptionSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("transcriptions: %w", err)
	}
	return summaries, nil
}

func (i *Intelligence) Competitors(ctx context.Context) ([]domain.CompetitorReport, error) {
	reports, err := i.sheets.FetchCompetitorReports(ctx)
	if err != nil {
		return nil, fmt.Errorf("competitor reports: %w", err)
	}
	return reports, nil
}

func (i *Intelligence) Meetings(ctx context.Context) ([]domain.MeetingSummary, error) {
	meetings, err := i.sheets.FetchMeetingSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("meeting summaries: %w", err)
	}
	return meetings, nil
}

func (i *Intelligence) Activity(ctx context.Context, limit int) ([]domain.AuditEntry, error) {
	entries, err := i.audit.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("activity: %w", err)
	}
	return entries, nil
}
