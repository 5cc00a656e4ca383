package services

import (
	"context"
	"io"
	"sync"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
)

// fakeSheets implements driven.SheetReader with overridable hooks and
// per-method call counters.
type fakeSheets struct {
	mu    sync.Mutex
	calls map[string]int

	brandsFn           func() ([]domain.Brand, error)
	ideasFn            func(brandURL string) (*domain.IdeaSet, error)
	ideasByRequestFn   func(requestID string) (*domain.IdeaSet, error)
	generatedFn        func(requestID, brandURL, ideaName string) ([]string, error)
	animatedFn         func(brandURL string) (domain.AnimationMap, error)
	customFn           func(prompt string) ([]domain.Creative, error)
	brandCreativesFn   func(brandURL string) ([]domain.Creative, error)
	marketReportsFn    func() ([]domain.MarketReport, error)
	transcriptionsFn   func() ([]domain.TranscriptionSummary, error)
	competitorsFn      func() ([]domain.CompetitorReport, error)
	meetingSummariesFn func() ([]domain.MeetingSummary, error)
}

var _ driven.SheetReader = (*fakeSheets)(nil)

func newFakeSheets() *fakeSheets {
	return &fakeSheets{calls: make(map[string]int)}
}

func (f *fakeSheets) count(method string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[method]++
}

func (f *fakeSheets) callCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *fakeSheets) FetchBrands(context.Context, domain.SheetConfig) ([]domain.Brand, error) {
	f.count("FetchBrands")
	if f.brandsFn == nil {
		return nil, nil
	}
	return f.brandsFn()
}

func (f *fakeSheets) FetchCampaignIdeas(_ context.Context, _ domain.SheetConfig, brandURL string) (*domain.IdeaSet, error) {
	f.count("FetchCampaignIdeas")
	if f.ideasFn == nil {
		return nil, nil
	}
	return f.ideasFn(brandURL)
}

func (f *fakeSheets) FetchCampaignIdeasByRequestID(_ context.Context, _ domain.SheetConfig, requestID string) (*domain.IdeaSet, error) {
	f.count("FetchCampaignIdeasByRequestID")
	if f.ideasByRequestFn == nil {
		return nil, nil
	}
	return f.ideasByRequestFn(requestID)
}

func (f *fakeSheets) FetchGeneratedCreatives(_ context.Context, _ domain.SheetConfig, requestID, brandURL, ideaName string) ([]string, error) {
	f.count("FetchGeneratedCreatives")
	if f.generatedFn == nil {
		return nil, nil
	}
	return f.generatedFn(requestID, brandURL, ideaName)
}

func (f *fakeSheets) FetchAnimatedCreatives(_ context.Context, _ domain.SheetConfig, brandURL string) (domain.AnimationMap, error) {
	f.count("FetchAnimatedCreatives")
	if f.animatedFn == nil {
		return nil, nil
	}
	return f.animatedFn(brandURL)
}

func (f *fakeSheets) FetchCustomCreatives(_ context.Context, _ domain.SheetConfig, prompt string) ([]domain.Creative, error) {
	f.count("FetchCustomCreatives")
	if f.customFn == nil {
		return nil, nil
	}
	return f.customFn(prompt)
}

func (f *fakeSheets) FetchBrandCreatives(_ context.Context, _ domain.SheetConfig, brandURL string) ([]domain.Creative, error) {
	f.count("FetchBrandCreatives")
	if f.brandCreativesFn == nil {
		return nil, nil
	}
	return f.brandCreativesFn(brandURL)
}

func (f *fakeSheets) FetchMarketReports(context.Context) ([]domain.MarketReport, error) {
	f.count("FetchMarketReports")
	if f.marketReportsFn == nil {
		return nil, nil
	}
	return f.marketReportsFn()
}

func (f *fakeSheets) FetchTranscriptionSummaries(context.Context) ([]domain.TranscriptionSummary, error) {
	f.count("FetchTranscriptionSummaries")
	if f.transcriptionsFn == nil {
		return nil, nil
	}
	return f.transcriptionsFn()
}

func (f *fakeSheets) FetchCompetitorReports(context.Context) ([]domain.CompetitorReport, error) {
	f.count("FetchCompetitorReports")
	if f.competitorsFn == nil {
		return nil, nil
	}
	return f.competitorsFn()
}

func (f *fakeSheets) FetchMeetingSummaries(context.Context) ([]domain.MeetingSummary, error) {
	f.count("FetchMeetingSummaries")
	if f.meetingSummariesFn == nil {
		return nil, nil
	}
	return f.meetingSummariesFn()
}

// triggerCall records one webhook invocation.
type triggerCall struct {
	endpoint string
	payload  any
	query    map[string]string
	fields   map[string]string
	file     string
}

// fakeHooks implements driven.WebhookTrigger, recording calls and
// optionally failing them.
type fakeHooks struct {
	mu    sync.Mutex
	calls []triggerCall
	err   error
}

var _ driven.WebhookTrigger = (*fakeHooks)(nil)

func (f *fakeHooks) Trigger(_ context.Context, endpoint string, payload any, query map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, triggerCall{endpoint: endpoint, payload: payload, query: query})
	return f.err
}

func (f *fakeHooks) TriggerForm(_ context.Context, endpoint string, fields map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, triggerCall{endpoint: endpoint, fields: fields})
	return f.err
}

func (f *fakeHooks) TriggerFile(_ context.Context, endpoint string, fields map[string]string, _, filename string, _ io.Reader) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, triggerCall{endpoint: endpoint, fields: fields, file: filename})
	return f.err
}

func (f *fakeHooks) lastCall() *triggerCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.calls) == 0 {
		return nil
	}
	call := f.calls[len(f.calls)-1]
	return &call
}

func (f *fakeHooks) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// fakeConfig implements driven.ConfigStore with fixed values.
type fakeConfig struct {
	endpoints domain.WebhookEndpoints
	sheets    domain.SheetConfig
	reports   domain.ReportTabs
}

var _ driven.ConfigStore = (*fakeConfig)(nil)

func testEndpoints() domain.WebhookEndpoints {
	return domain.WebhookEndpoints{
		ExtractBrand:       "https://hooks.test/extract",
		Brainstorm:         "https://hooks.test/brainstorm",
		GenerateCreatives:  "https://hooks.test/creatives",
		CustomCreative:     "https://hooks.test/custom",
		Animate:            "https://hooks.test/animate",
		MarketReport:       "https://hooks.test/report",
		CompetitorAnalysis: "https://hooks.test/competitor",
		MeetingSummary:     "https://hooks.test/mom",
		AudioTranscription: "https://hooks.test/transcribe",
		UserCreated:        "https://hooks.test/user-created",
	}
}

func (f *fakeConfig) Endpoints() domain.WebhookEndpoints { return f.endpoints }
func (f *fakeConfig) DefaultSheets() domain.SheetConfig  { return f.sheets }
func (f *fakeConfig) ReportTabs() domain.ReportTabs      { return f.reports }
func (f *fakeConfig) GetString(string) string            { return "" }
func (f *fakeConfig) Set(string, any) error              { return nil }
func (f *fakeConfig) Load() error                        { return nil }
func (f *fakeConfig) Watch(func()) (func(), error)       { return func() {}, nil }
func (f *fakeConfig) Path() string                       { return "" }
