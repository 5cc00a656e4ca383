package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// ideaColumns are the per-row idea slots; one brainstorm row carries
// up to three ideas.
var ideaColumns = []string{"Idea 1", "Idea 2", "Idea 3"}

// logIDColumns are the header variants under which workflows write the
// correlation id.
var logIDColumns = []string{"Log ID", "Log id", "Request ID", "request_id"}

// FetchCampaignIdeas returns the full idea history for a brand: every
// row whose Brand URL normalizes to the same key, ideas in row order.
func (c *Client) FetchCampaignIdeas(ctx context.Context, cfg domain.SheetConfig, brandURL string) (*domain.IdeaSet, error) {
	rows, err := c.fetchTab(ctx, cfg.SpreadsheetID, cfg.CampaignIdeasID)
	if err != nil {
		return nil, fmt.Errorf("fetch campaign ideas: %w", err)
	}

	want := domain.NormalizeURL(brandURL)
	set := &domain.IdeaSet{}
	for _, r := range rows {
		if domain.NormalizeURL(r.get("Brand URL")) != want {
			continue
		}
		set.Ideas = append(set.Ideas, rowIdeas(r)...)
	}
	logger.Debug("sheets: %d ideas for %s", set.Len(), want)
	return set, nil
}

// FetchCampaignIdeasByRequestID returns the ideas of the row written
// for one specific brainstorm trigger. When several rows carry the
// same id, the last one in document order is authoritative. A nil set
// means no row has landed yet.
func (c *Client) FetchCampaignIdeasByRequestID(ctx context.Context, cfg domain.SheetConfig, requestID string) (*domain.IdeaSet, error) {
	rows, err := c.fetchTab(ctx, cfg.SpreadsheetID, cfg.CampaignIdeasID)
	if err != nil {
		return nil, fmt.Errorf("fetch campaign ideas: %w", err)
	}

	latest := lastMatch(rows, func(r row) bool {
		return strings.TrimSpace(r.get(logIDColumns...)) == requestID
	})
	if latest == nil {
		return nil, nil
	}

	return &domain.IdeaSet{Ideas: rowIdeas(latest)}, nil
}

// rowIdeas decodes the idea slots of one row, skipping empty and
// malformed cells.
func rowIdeas(r row) []domain.CampaignIdea {
	var ideas []domain.CampaignIdea
	for _, column := range ideaColumns {
		if idea := parseIdeaCell(r.get(column), column); idea != nil {
			ideas = append(ideas, *idea)
		}
	}
	return ideas
}

// lastMatch returns the last row satisfying pred, or nil. Row order is
// the sheet's only recency signal, so later always wins.
func lastMatch(rows []row, pred func(row) bool) row {
	for i := len(rows) - 1; i >= 0; i-- {
		if pred(rows[i]) {
			return rows[i]
		}
	}
	return nil
}
