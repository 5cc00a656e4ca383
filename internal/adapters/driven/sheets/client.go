// Package sheets reads result rows from the spreadsheet-backed
// datastore via its CSV export endpoint. Poll loops re-fetch a full
// tab snapshot on every tick, so the client throttles requests and
// defeats intermediate caches with a timestamp query parameter.
package sheets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

const (
	// DefaultExportBase is the spreadsheet CSV export endpoint. The
	// spreadsheet id is appended per request.
	DefaultExportBase = "https://docs.google.com/spreadsheets/d"

	// DefaultTimeout is the per-snapshot HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// fetchRate throttles snapshot fetches. Several poll loops may
	// share one client; two snapshots per second keeps concurrent
	// loops responsive without hammering the export endpoint.
	fetchRate = 2
)

// Ensure Client implements the interface.
var _ driven.SheetReader = (*Client)(nil)

// Client fetches and parses CSV tab snapshots.
type Client struct {
	httpClient *http.Client
	exportBase string
	limiter    *rate.Limiter
	reports    domain.ReportTabs
	now        func() time.Time
}

// NewClient creates a sheet reader against the public export endpoint.
// reports locates the intelligence listing tabs.
func NewClient(reports domain.ReportTabs) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: DefaultTimeout},
		exportBase: DefaultExportBase,
		limiter:    rate.NewLimiter(rate.Limit(fetchRate), 1),
		reports:    reports,
		now:        time.Now,
	}
}

// NewClientWithHTTPClient creates a sheet reader with a custom HTTP
// client and export base URL. Useful for testing against a local
// server.
func NewClientWithHTTPClient(httpClient *http.Client, exportBase string, reports domain.ReportTabs) *Client {
	return &Client{
		httpClient: httpClient,
		exportBase: exportBase,
		limiter:    rate.NewLimiter(rate.Limit(fetchRate), 1),
		reports:    reports,
		now:        time.Now,
	}
}

// exportURL builds the CSV export URL for one tab. The _t parameter is
// a cache buster: every snapshot must reflect the live sheet, not an
// intermediary cache.
func (c *Client) exportURL(spreadsheetID, gid string) string {
	url := fmt.Sprintf("%s/%s/export?format=csv", c.exportBase, spreadsheetID)
	if gid != "" {
		url += "&gid=" + gid
	}
	return fmt.Sprintf("%s&_t=%d", url, c.now().UnixMilli())
}

// fetchTab downloads and parses one tab snapshot.
func (c *Client) fetchTab(ctx context.Context, spreadsheetID, gid string) ([]row, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	url := c.exportURL(spreadsheetID, gid)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch sheet: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch sheet: unexpected status %d", resp.StatusCode)
	}

	rows, err := parseCSV(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse sheet: %w", err)
	}
	logger.Debug("sheets: fetched %d rows (gid=%s)", len(rows), gid)
	return rows, nil
}
