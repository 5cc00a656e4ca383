package sheets

import (
	"context"
	"fmt"
	"strings"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// creativeColumns are the per-row image slots on the batch creatives
// tab.
var creativeColumns = []string{"Creative 1", "Creative 2", "Creative 3"}

// FetchGeneratedCreatives resolves the batch creatives written for one
// generation run. The request id match is authoritative; the brand URL
// plus fuzzy idea name fallback exists for workflow versions that do
// not echo the id back. A row that matched but has no populated image
// slot yet yields nil, nil so the caller keeps polling.
func (c *Client) FetchGeneratedCreatives(ctx context.Context, cfg domain.SheetConfig, requestID, brandURL, ideaName string) ([]string, error) {
	rows, err := c.fetchTab(ctx, cfg.SpreadsheetID, cfg.CreativesID)
	if err != nil {
		return nil, fmt.Errorf("fetch generated creatives: %w", err)
	}

	var latest row
	if requestID != "" {
		latest = lastMatch(rows, func(r row) bool {
			return strings.TrimSpace(r.get(logIDColumns...)) == requestID
		})
	}
	if latest == nil && brandURL != "" && ideaName != "" {
		want := domain.NormalizeURL(brandURL)
		latest = lastMatch(rows, func(r row) bool {
			raw := r.get("Brand URL")
			if raw == "" || domain.NormalizeURL(raw) != want {
				return false
			}
			return domain.FuzzyNameMatch(ideaNameFromCell(r.get("Campaign idea")), ideaName)
		})
	}
	if latest == nil {
		return nil, nil
	}

	var urls []string
	for _, column := range creativeColumns {
		if v := latest.get(column); isHTTPURL(v) {
			urls = append(urls, v)
		}
	}
	if len(urls) == 0 {
		// Row landed but images have not; not ready yet.
		return nil, nil
	}
	logger.Debug("sheets: %d creative urls for request %s", len(urls), requestID)
	return urls, nil
}

// FetchAnimatedCreatives returns the idea-to-video map for a brand.
// Later rows overwrite earlier ones, so a re-animated idea surfaces
// its newest video.
func (c *Client) FetchAnimatedCreatives(ctx context.Context, cfg domain.SheetConfig, brandURL string) (domain.AnimationMap, error) {
	rows, err := c.fetchTab(ctx, cfg.SpreadsheetID, cfg.AnimatedCreativesID)
	if err != nil {
		return nil, fmt.Errorf("fetch animated creatives: %w", err)
	}

	want := domain.NormalizeURL(brandURL)
	animations := domain.AnimationMap{}
	for _, r := range rows {
		raw := r.get("Brand URL")
		if raw == "" || domain.NormalizeURL(raw) != want {
			continue
		}
		name := ideaNameFromCell(r.get("Campaign idea"))
		if name == "" {
			continue
		}
		video := r.findExact("animated video", "animated creative")
		if !isHTTPURL(video) {
			continue
		}
		animations[name] = video
	}
	return animations, nil
}

// FetchCustomCreatives resolves the result of one custom generation by
// exact prompt equality. Pending rows, where the prompt has landed but
// the Creative Generated cell has not, stay nil so polling continues.
func (c *Client) FetchCustomCreatives(ctx context.Context, cfg domain.SheetConfig, prompt string) ([]domain.Creative, error) {
	rows, err := c.fetchTab(ctx, cfg.SpreadsheetID, cfg.CustomCreativesID)
	if err != nil {
		return nil, fmt.Errorf("fetch custom creatives: %w", err)
	}

	want := strings.TrimSpace(prompt)
	for _, r := range rows {
		if strings.TrimSpace(r.get("Prompt")) != want {
			continue
		}
		imageURL := r.get("Creative Generated")
		if !isHTTPURL(imageURL) {
			return nil, nil
		}
		return []domain.Creative{{
			ImageURL:     imageURL,
			IdeaName:     prompt,
			Size:         r.get("Size"),
			Header:       r.get("Header"),
			Description:  r.get("Description"),
			CallToAction: r.get("Call To Action"),
			Source:       domain.SourceCustom,
		}}, nil
	}
	return nil, nil
}

// FetchBrandCreatives merges the custom and batch tabs for one brand.
// Sheet order is the only chronology available, so the combined list
// is reversed to put the newest creatives first.
func (c *Client) FetchBrandCreatives(ctx context.Context, cfg domain.SheetConfig, brandURL string) ([]domain.Creative, error) {
	customRows, err := c.fetchTab(ctx, cfg.SpreadsheetID, cfg.CustomCreativesID)
	if err != nil {
		return nil, fmt.Errorf("fetch brand creatives: %w", err)
	}
	batchRows, err := c.fetchTab(ctx, cfg.SpreadsheetID, cfg.CreativesID)
	if err != nil {
		return nil, fmt.Errorf("fetch brand creatives: %w", err)
	}

	want := domain.NormalizeURL(brandURL)
	var creatives []domain.Creative

	for _, r := range customRows {
		raw := r.get("Brand URL")
		if raw == "" || domain.NormalizeURL(raw) != want {
			continue
		}
		imageURL := r.get("Creative Generated")
		if !isHTTPURL(imageURL) {
			continue
		}
		creatives = append(creatives, domain.Creative{
			ImageURL:     imageURL,
			IdeaName:     r.get("Prompt"),
			Size:         r.get("Size"),
			Header:       r.get("Header"),
			Description:  r.get("Description"),
			CallToAction: r.get("Call To Action"),
			Source:       domain.SourceCustom,
		})
	}

	for _, r := range batchRows {
		raw := r.get("Brand URL")
		if raw == "" || domain.NormalizeURL(raw) != want {
			continue
		}
		name := ideaNameFromCell(r.get("Campaign idea"))
		if name == "" {
			name = "Campaign Concept"
		}
		for _, column := range creativeColumns {
			v := r.get(column)
			if !isHTTPURL(v) {
				continue
			}
			creatives = append(creatives, domain.Creative{
				ImageURL: v,
				IdeaName: name,
				Size:     "1:1",
				Source:   domain.SourceBatch,
			})
		}
	}

	for i, j := 0, len(creatives)-1; i < j; i, j = i+1, j-1 {
		creatives[i], creatives[j] = creatives[j], creatives[i]
	}
	logger.Debug("sheets: %d creatives for %s", len(creatives), want)
	return creatives, nil
}
