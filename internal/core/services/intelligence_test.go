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

func TestIntelligenceListings(t *testing.T) {
	sheets := newFakeSheets()
	svc := NewIntelligence(sheets, memory.NewAuditLog())
	ctx := context.Background()

	sheets.marketReportsFn = func() ([]domain.MarketReport, error) {
		return []domain.MarketReport{{Brief: domain.MarketBrief{BrandProduct: "Widgets"}}}, nil
	}
	sheets.competitorsFn = func() ([]domain.CompetitorReport, error) {
		return nil, errors.New("export unavailable")
	}
	sheets.meetingSummariesFn = func() ([]domain.MeetingSummary, error) {
		return []domain.MeetingSummary{{Title: "Standup"}}, nil
	}

	reports, err := svc.MarketReports(ctx)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "Widgets", reports[0].Brief.BrandProduct)

	_, err = svc.Competitors(ctx)
	assert.Error(t, err)

	meetings, err := svc.Meetings(ctx)
	require.NoError(t, err)
	assert.Len(t, meetings, 1)

	summaries, err := svc.Transcriptions(ctx)
	require.NoError(t, err)
	assert.Empty(t, summaries)
}

func TestIntelligenceActivity(t *testing.T) {
	audit := memory.NewAuditLog()
	svc := NewIntelligence(newFakeSheets(), audit)
	ctx := context.Background()

	for _, action := range []string{"LOGIN", "GENERATE_DNA", "BRAINSTORM"} {
		require.NoError(t, audit.Record(ctx, domain.AuditEntry{
			ID: action, Action: action, Timestamp: time.Now().UTC(),
		}))
	}

	entries, err := svc.Activity(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "BRAINSTORM", entries[0].Action)
}
