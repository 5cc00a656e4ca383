package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driving"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// Timing tunes the poll loops. Zero fields fall back to production
// defaults; tests shrink them.
type Timing struct {
	ExtractInterval    time.Duration
	BrainstormInterval time.Duration
	CreativeInterval   time.Duration
	Ceiling            time.Duration
}

func (t Timing) withDefaults() Timing {
	if t.ExtractInterval <= 0 {
		t.ExtractInterval = 6 * time.Second
	}
	if t.BrainstormInterval <= 0 {
		t.BrainstormInterval = 3 * time.Second
	}
	if t.CreativeInterval <= 0 {
		t.CreativeInterval = 5 * time.Second
	}
	if t.Ceiling <= 0 {
		t.Ceiling = MaxPollTime
	}
	return t
}

// Ensure Studio implements the interface.
var _ driving.StudioOrchestrator = (*Studio)(nil)

// Studio runs the asynchronous generation operations: trigger a
// webhook with a fresh correlation id, then poll the datastore until
// the matching result row lands.
type Studio struct {
	sheets     driven.SheetReader
	hooks      driven.WebhookTrigger
	config     driven.ConfigStore
	sessions   driven.SessionStore
	brandCache driven.BrandCache
	ideaCache  driven.IdeaCache
	audit      driven.AuditLog
	supervisor *Supervisor
	timing     Timing

	anim *animationHub

	now func() time.Time
}

// NewStudio creates the orchestrator.
func NewStudio(
	sheets driven.SheetReader,
	hooks driven.WebhookTrigger,
	config driven.ConfigStore,
	sessions driven.SessionStore,
	brandCache driven.BrandCache,
	ideaCache driven.IdeaCache,
	audit driven.AuditLog,
	supervisor *Supervisor,
	timing Timing,
) *Studio {
	return &Studio{
		sheets:     sheets,
		hooks:      hooks,
		config:     config,
		sessions:   sessions,
		brandCache: brandCache,
		ideaCache:  ideaCache,
		audit:      audit,
		supervisor: supervisor,
		timing:     timing.withDefaults(),
		anim:       newAnimationHub(),
		now:        time.Now,
	}
}

// sheetConfig resolves the effective sheet routing: operator defaults
// overlaid with the logged-in user's own tabs.
func (s *Studio) sheetConfig(ctx context.Context) domain.SheetConfig {
	cfg := s.config.DefaultSheets()
	user, err := s.sessions.CurrentSession(ctx)
	if err != nil {
		return cfg
	}
	return cfg.Merge(user.Sheets)
}

// record writes an audit entry. Audit failures never block the
// operation being recorded.
func (s *Studio) record(ctx context.Context, action, details string) {
	user, _ := s.sessions.CurrentSession(ctx)
	performedBy := "system"
	if user != nil {
		performedBy = user.Username
	}
	err := s.audit.Record(ctx, domain.AuditEntry{
		ID:          uuid.NewString(),
		Action:      action,
		Details:     details,
		PerformedBy: performedBy,
		Timestamp:   s.now().UTC(),
	})
	if err != nil {
		logger.Warn("audit: %s not recorded: %v", action, err)
	}
}

// ExtractBrand submits a website URL for brand DNA extraction and
// polls the brand directory until the new brand appears.
func (s *Studio) ExtractBrand(ctx context.Context, rawURL string, progress driving.ProgressFunc) (*domain.Brand, error) {
	origin, host, err := domain.CanonicalOrigin(rawURL)
	if err != nil {
		return nil, fmt.Errorf("extract brand: %w", err)
	}

	meter := newProgressMeter(progress)
	meter.step("Submitting " + host + " for analysis")

	cfg := s.sheetConfig(ctx)
	payload := map[string]any{
		"url":                origin,
		"domain":             host,
		"timestamp":          s.now().UTC().Format(time.RFC3339),
		"request_type":       "sync_build",
		"spreadsheet_config": cfg,
	}
	query := map[string]string{
		"url":    origin,
		"domain": host,
		"t":      strconv.FormatInt(s.now().UnixMilli(), 10),
	}

	err = s.hooks.Trigger(ctx, s.config.Endpoints().ExtractBrand, payload, query)
	if err != nil && !isAcceptedTimeout(err) {
		return nil, fmt.Errorf("extract brand: %w", err)
	}
	s.record(ctx, "GENERATE_DNA", "Started brand DNA analysis for "+host)

	want := domain.NormalizeURL(origin)
	brand, err := pollUntil(ctx, s.timing.ExtractInterval, s.timing.Ceiling, func(ctx context.Context) (*domain.Brand, bool, error) {
		meter.step("Analyzing " + host)
		brands, err := s.sheets.FetchBrands(ctx, cfg)
		if err != nil {
			return nil, false, err
		}
		for i := range brands {
			if brands[i].Key() == want {
				// Keep the directory cache in step with what we saw.
				s.brandCache.SetBrands(brands)
				return &brands[i], true, nil
			}
		}
		return nil, false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("extract brand: %w", err)
	}

	meter.done("Brand DNA ready")
	return brand, nil
}

// isAcceptedTimeout reports whether a trigger error is the 408 some
// workflow versions send while the synchronous build keeps running.
func isAcceptedTimeout(err error) bool {
	var statusErr *driven.TriggerStatusError
	return errors.As(err, &statusErr) && statusErr.Status == http.StatusRequestTimeout
}

// Brainstorm requests campaign ideas and waits for the new row. The
// request id match is authoritative; if the workflow does not echo the
// id back, growth of the brand's idea history is accepted instead.
func (s *Studio) Brainstorm(ctx context.Context, brand *domain.Brand, campaignContext string, progress driving.ProgressFunc) (*domain.IdeaSet, error) {
	if brand == nil {
		return nil, domain.ErrInvalidInput
	}

	meter := newProgressMeter(progress)
	cfg := s.sheetConfig(ctx)
	requestID := domain.NewRequestID()

	// Baseline for the history-growth fallback. A failed pre-fetch
	// just means the fallback compares against zero.
	baseline, err := s.sheets.FetchCampaignIdeas(ctx, cfg, brand.URL)
	if err != nil {
		logger.Debug("brainstorm: baseline fetch failed: %v", err)
	}

	payload := map[string]any{
		"requestId":          requestID,
		"brandName":          brand.Name,
		"brandDNA":           brand,
		"campaignContext":    campaignContext,
		"timestamp":          s.now().UTC().Format(time.RFC3339),
		"spreadsheet_config": cfg,
	}
	if err := s.hooks.Trigger(ctx, s.config.Endpoints().Brainstorm, payload, nil); err != nil {
		return nil, fmt.Errorf("brainstorm: %w", err)
	}
	s.record(ctx, "BRAINSTORM", "Requested campaign ideas for "+brand.Name)
	meter.step("Agents are brainstorming")

	history, err := pollUntil(ctx, s.timing.BrainstormInterval, s.timing.Ceiling, func(ctx context.Context) (*domain.IdeaSet, bool, error) {
		meter.step("Waiting for ideas")

		byID, err := s.sheets.FetchCampaignIdeasByRequestID(ctx, cfg, requestID)
		if err != nil {
			return nil, false, err
		}
		if byID.Len() > 0 {
			// Return the full history so old ideas stay visible.
			full, err := s.sheets.FetchCampaignIdeas(ctx, cfg, brand.URL)
			if err != nil || full.Len() == 0 {
				return byID, true, nil
			}
			return full, true, nil
		}

		full, err := s.sheets.FetchCampaignIdeas(ctx, cfg, brand.URL)
		if err != nil {
			return nil, false, err
		}
		if full.Len() > baseline.Len() {
			return full, true, nil
		}
		return nil, false, nil
	})
	if err != nil {
		return nil, fmt.Errorf("brainstorm: %w", err)
	}

	s.ideaCache.PutIdeas(brand.Slug, history)
	meter.done("Ideas ready")
	return history, nil
}

// generationKey is the session de-duplication key for batch creative
// runs.
func generationKey(brand *domain.Brand, idea *domain.CampaignIdea) string {
	return brand.URL + "-" + idea.IdeaName
}

// GenerateCreatives produces the batch creative set for one idea. At
// most one generation per brand+idea runs at a time; the key is
// released once the run completes, so a finished or failed generation
// can be issued again.
func (s *Studio) GenerateCreatives(ctx context.Context, brand *domain.Brand, idea *domain.CampaignIdea, progress driving.ProgressFunc) (creatives []domain.Creative, err error) {
	if brand == nil || idea == nil {
		return nil, domain.ErrInvalidInput
	}

	key := generationKey(brand, idea)
	if err := s.supervisor.Begin(key); err != nil {
		return nil, fmt.Errorf("generate creatives: %w", err)
	}
	defer s.supervisor.Release(key)

	meter := newProgressMeter(progress)
	cfg := s.sheetConfig(ctx)
	requestID := domain.NewRequestID()

	payload := map[string]any{
		"requestId":          requestID,
		"brand_name":         brand.Name,
		"brand_url":          brand.URL,
		"logo_url":           brand.Logo,
		"campaign_idea":      idea.IdeaName,
		"one_liner":          idea.OneLiner,
		"aspect_ratio":       "1:1",
		"brand_dna":          brand.Essence(),
		"spreadsheet_config": cfg,
	}
	if err := s.hooks.Trigger(ctx, s.config.Endpoints().GenerateCreatives, payload, nil); err != nil {
		return nil, fmt.Errorf("generate creatives: %w", err)
	}
	s.record(ctx, "GENERATE_CREATIVES", fmt.Sprintf("Requested creatives for %q (%s)", idea.IdeaName, brand.Name))
	meter.step("Generating creatives")

	_, err = pollUntil(ctx, s.timing.CreativeInterval, s.timing.Ceiling, func(ctx context.Context) ([]string, bool, error) {
		meter.step("Waiting for creatives")
		urls, err := s.sheets.FetchGeneratedCreatives(ctx, cfg, requestID, brand.URL, idea.IdeaName)
		if err != nil {
			return nil, false, err
		}
		return urls, len(urls) > 0, nil
	})
	if err != nil {
		return nil, fmt.Errorf("generate creatives: %w", err)
	}

	// Re-fetch the merged history so the result includes pre-existing
	// creatives alongside the new set.
	creatives, err = s.CreativeHistory(ctx, brand, idea)
	if err != nil {
		return nil, fmt.Errorf("generate creatives: %w", err)
	}
	meter.done("Creatives ready")
	return creatives, nil
}

// GenerateCustomCreative produces a single creative from a free
// prompt. Custom generations are not de-duplicated; each run polls by
// its exact prompt.
func (s *Studio) GenerateCustomCreative(ctx context.Context, brand *domain.Brand, req driving.CustomCreativeRequest, progress driving.ProgressFunc) ([]domain.Creative, error) {
	if brand == nil || req.Prompt == "" {
		return nil, domain.ErrInvalidInput
	}

	meter := newProgressMeter(progress)
	cfg := s.sheetConfig(ctx)
	placeholderID := uuid.NewString()

	aspect := req.AspectRatio
	if aspect == "" {
		aspect = "1:1"
	}
	extension := req.ImageExtension
	if extension == "" {
		extension = "png"
	}

	payload := map[string]any{
		"input_line":            req.Prompt,
		"image_selected":        req.ImageData,
		"image_extension":       extension,
		"aspect_selected":       aspect,
		"text_options_selected": req.TextOptions,
		"brand_dna":             brand,
		"spreadsheet_config":    cfg,
	}
	if err := s.hooks.Trigger(ctx, s.config.Endpoints().CustomCreative, payload, nil); err != nil {
		return nil, fmt.Errorf("custom creative: %w", err)
	}
	s.record(ctx, "CUSTOM_CREATIVE", fmt.Sprintf("Requested custom creative %s for %s", placeholderID, brand.Name))
	logger.Debug("custom creative %s: polling for prompt match", placeholderID)
	meter.step("Generating creative")

	creatives, err := pollUntil(ctx, s.timing.CreativeInterval, s.timing.Ceiling, func(ctx context.Context) ([]domain.Creative, bool, error) {
		meter.step("Waiting for creative")
		result, err := s.sheets.FetchCustomCreatives(ctx, cfg, req.Prompt)
		if err != nil {
			return nil, false, err
		}
		return result, len(result) > 0, nil
	})
	if err != nil {
		return nil, fmt.Errorf("custom creative: %w", err)
	}

	meter.done("Creative ready")
	return creatives, nil
}

// Animate requests a video for a creative and waits for it. One
// datastore row per idea serves every creative of that idea, so
// concurrent requests for the same idea share a single poll loop.
func (s *Studio) Animate(ctx context.Context, brand *domain.Brand, idea *domain.CampaignIdea, creative *domain.Creative, progress driving.ProgressFunc) (string, error) {
	if brand == nil || idea == nil || creative == nil {
		return "", domain.ErrInvalidInput
	}

	meter := newProgressMeter(progress)
	cfg := s.sheetConfig(ctx)

	aspect := creative.Size
	if aspect == "" {
		aspect = "1:1"
	}
	payload := map[string]any{
		"brand_dna":          brand,
		"creative_url":       creative.ImageURL,
		"campaign_idea":      idea,
		"aspect_ratio":       aspect,
		"spreadsheet_config": cfg,
	}
	if err := s.hooks.Trigger(ctx, s.config.Endpoints().Animate, payload, nil); err != nil {
		return "", fmt.Errorf("animate: %w", err)
	}
	s.record(ctx, "ANIMATE", fmt.Sprintf("Requested animation for %q (%s)", idea.IdeaName, brand.Name))
	meter.step("Animating creative")

	videoURL, err := s.anim.wait(ctx, idea.IdeaName, func(waitCtx context.Context) (string, error) {
		return pollUntil(waitCtx, s.timing.CreativeInterval, s.timing.Ceiling, func(ctx context.Context) (string, bool, error) {
			meter.step("Waiting for video")
			animations, err := s.sheets.FetchAnimatedCreatives(ctx, cfg, brand.URL)
			if err != nil {
				return "", false, err
			}
			if url, ok := animations[idea.IdeaName]; ok {
				return url, true, nil
			}
			// The sheet-side idea name may be a JSON echo that drifted
			// in whitespace or case.
			for name, url := range animations {
				if domain.FuzzyNameMatch(name, idea.IdeaName) {
					return url, true, nil
				}
			}
			return "", false, nil
		})
	})
	if err != nil {
		return "", fmt.Errorf("animate: %w", err)
	}

	meter.done("Video ready")
	return videoURL, nil
}

// CreativeHistory returns a brand's creatives, filtered to one idea
// when given: batch creatives join by fuzzy name, custom creatives are
// always included.
func (s *Studio) CreativeHistory(ctx context.Context, brand *domain.Brand, idea *domain.CampaignIdea) ([]domain.Creative, error) {
	if brand == nil {
		return nil, domain.ErrInvalidInput
	}

	all, err := s.sheets.FetchBrandCreatives(ctx, s.sheetConfig(ctx), brand.URL)
	if err != nil {
		return nil, fmt.Errorf("creative history: %w", err)
	}
	if idea == nil {
		return all, nil
	}

	filtered := make([]domain.Creative, 0, len(all))
	for _, c := range all {
		if c.Source == domain.SourceCustom || domain.FuzzyNameMatch(c.IdeaName, idea.IdeaName) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// RequestMarketReport fires the market intelligence workflow. The
// result surfaces later in the reports listing tab; no poll is
// started.
func (s *Studio) RequestMarketReport(ctx context.Context, brief domain.MarketBrief) error {
	payload := struct {
		domain.MarketBrief
		Key string `json:"key"`
	}{MarketBrief: brief, Key: domain.NewSecretKey()}

	if err := s.hooks.Trigger(ctx, s.config.Endpoints().MarketReport, payload, nil); err != nil {
		return fmt.Errorf("market report: %w", err)
	}
	s.record(ctx, "MARKET_REPORT", "Requested market report for "+brief.BrandProduct)
	return nil
}

// RequestCompetitorAnalysis fires the competitor analysis workflow.
func (s *Studio) RequestCompetitorAnalysis(ctx context.Context, companyName, websiteURL string) error {
	if companyName == "" {
		return domain.ErrInvalidInput
	}
	err := s.hooks.TriggerForm(ctx, s.config.Endpoints().CompetitorAnalysis, map[string]string{
		"companyName": companyName,
		"websiteUrl":  websiteURL,
	})
	if err != nil {
		return fmt.Errorf("competitor analysis: %w", err)
	}
	s.record(ctx, "COMPETITOR_ANALYSIS", "Requested analysis of "+companyName)
	return nil
}

// SubmitMeetingNotes fires the minutes-of-meeting summarizer.
func (s *Studio) SubmitMeetingNotes(ctx context.Context, title, date, timeOfDay, notes string) error {
	if notes == "" {
		return domain.ErrInvalidInput
	}
	err := s.hooks.TriggerForm(ctx, s.config.Endpoints().MeetingSummary, map[string]string{
		"meeting_title": title,
		"meeting_date":  date,
		"meeting_time":  timeOfDay,
		"meeting_notes": notes,
	})
	if err != nil {
		return fmt.Errorf("meeting notes: %w", err)
	}
	s.record(ctx, "MOM_SUBMIT", "Submitted meeting notes: "+title)
	return nil
}

// TranscribeAudio uploads an audio file to the transcription workflow.
func (s *Studio) TranscribeAudio(ctx context.Context, filename string, audio io.Reader) error {
	if filename == "" || audio == nil {
		return domain.ErrInvalidInput
	}
	err := s.hooks.TriggerFile(ctx, s.config.Endpoints().AudioTranscription,
		map[string]string{"file_name": filename}, "file", filename, audio)
	if err != nil {
		return fmt.Errorf("transcribe audio: %w", err)
	}
	s.record(ctx, "TRANSCRIBE", "Uploaded audio "+filename)
	return nil
}
