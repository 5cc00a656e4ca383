package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// clientFormRe extracts the intake-form JSON the report workflow
// embeds in its HTML output.
var clientFormRe = regexp.MustCompile(`(?s)<script id="client-form" type="application/json">(.*?)</script>`)

// FetchMarketReports lists finished market intelligence reports. The
// listing tab carries only a link and the raw HTML; the submitted
// brief is recovered from a JSON blob embedded in that HTML where
// present.
func (c *Client) FetchMarketReports(ctx context.Context) ([]domain.MarketReport, error) {
	rows, err := c.fetchTab(ctx, c.reports.SpreadsheetID, c.reports.MarketReportsGID)
	if err != nil {
		return nil, fmt.Errorf("fetch market reports: %w", err)
	}

	var reports []domain.MarketReport
	for _, r := range rows {
		report := domain.MarketReport{
			ReportLink: r.get("Report Link"),
			HTML:       r.get("HTML"),
		}
		report.Brief = parseEmbeddedBrief(report.HTML)
		report.BrandProduct = report.Brief.BrandProduct
		if report.BrandProduct == "" {
			report.BrandProduct = r.get("Brand Name")
		}
		if report.BrandProduct == "" {
			continue
		}
		reports = append(reports, report)
	}
	logger.Debug("sheets: %d market reports", len(reports))
	return reports, nil
}

// parseEmbeddedBrief recovers the intake form from a report's HTML.
// The workflow wraps the form either directly or under a "body" key;
// a missing or malformed blob yields a zero brief, never an error.
func parseEmbeddedBrief(html string) domain.MarketBrief {
	m := clientFormRe.FindStringSubmatch(html)
	if m == nil {
		return domain.MarketBrief{}
	}

	var envelope struct {
		Body *domain.MarketBrief `json:"body"`
		domain.MarketBrief
	}
	if err := json.Unmarshal([]byte(m[1]), &envelope); err != nil {
		logger.Debug("sheets: unparseable client-form blob: %v", err)
		return domain.MarketBrief{}
	}
	if envelope.Body != nil {
		return *envelope.Body
	}
	return envelope.MarketBrief
}

// FetchTranscriptionSummaries lists finished audio transcription
// summaries, skipping rows with no file name.
func (c *Client) FetchTranscriptionSummaries(ctx context.Context) ([]domain.TranscriptionSummary, error) {
	rows, err := c.fetchTab(ctx, c.reports.SpreadsheetID, c.reports.TranscriptionsGID)
	if err != nil {
		return nil, fmt.Errorf("fetch transcription summaries: %w", err)
	}

	var summaries []domain.TranscriptionSummary
	for _, r := range rows {
		s := domain.TranscriptionSummary{
			TriggerID:     r.get("Trigger ID"),
			FileName:      r.get("File Name"),
			Summary:       r.get("Audio Transcription Summary"),
			Transcription: r.get("Audio Transcription"),
		}
		if strings.TrimSpace(s.FileName) == "" {
			continue
		}
		summaries = append(summaries, s)
	}
	return summaries, nil
}

// FetchCompetitorReports lists finished competitor analyses. Header
// names on this tab have drifted across workflow versions, so columns
// resolve by substring.
func (c *Client) FetchCompetitorReports(ctx context.Context) ([]domain.CompetitorReport, error) {
	rows, err := c.fetchTab(ctx, c.reports.SpreadsheetID, c.reports.CompetitorsGID)
	if err != nil {
		return nil, fmt.Errorf("fetch competitor reports: %w", err)
	}

	var reports []domain.CompetitorReport
	for _, r := range rows {
		name := r.find("company")
		if name == "" {
			name = r.find("name")
		}
		if strings.TrimSpace(name) == "" {
			continue
		}
		website := r.find("website")
		if website == "" {
			website = r.find("url")
		}
		reports = append(reports, domain.CompetitorReport{
			CompanyName: name,
			WebsiteURL:  website,
			HTML:        r.find("html"),
		})
	}
	return reports, nil
}

// FetchMeetingSummaries lists minutes-of-meeting summaries. Columns
// resolve by substring for the same drift reason as competitor
// reports; rows carrying neither a title, a date, nor a summary are
// dropped.
func (c *Client) FetchMeetingSummaries(ctx context.Context) ([]domain.MeetingSummary, error) {
	rows, err := c.fetchTab(ctx, c.reports.SpreadsheetID, c.reports.MeetingsGID)
	if err != nil {
		return nil, fmt.Errorf("fetch meeting summaries: %w", err)
	}

	var summaries []domain.MeetingSummary
	for _, r := range rows {
		title := r.find("title")
		if title == "" {
			title = r.find("meeting")
		}
		summary := r.find("summary")
		if summary == "" {
			summary = r.find("notes")
		}
		if summary == "" {
			summary = r.find("content")
		}
		date := r.find("date")

		if title == "" && date == "" && summary == "" {
			continue
		}
		if title == "" {
			title = "Untitled Meeting"
		}
		summaries = append(summaries, domain.MeetingSummary{
			Title:   title,
			Date:    date,
			Time:    r.find("time"),
			Summary: summary,
		})
	}
	return summaries, nil
}
