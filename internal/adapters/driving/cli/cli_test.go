package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driving"
)

// mockAuth implements driving.AuthManager.
type mockAuth struct {
	current  *domain.User
	loginErr error
	created  []domain.User
}

func (m *mockAuth) Login(_ context.Context, username, _ string) (*domain.User, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	m.current = &domain.User{Username: username}
	return m.current, nil
}

func (m *mockAuth) Logout(context.Context) error {
	m.current = nil
	return nil
}

func (m *mockAuth) Current(context.Context) (*domain.User, error) {
	if m.current == nil {
		return nil, domain.ErrNoSession
	}
	return m.current, nil
}

func (m *mockAuth) CreateUser(_ context.Context, user domain.User) error {
	m.created = append(m.created, user)
	return nil
}

// mockDirectory implements driving.BrandDirectory.
type mockDirectory struct {
	brands []domain.Brand
	ideas  *domain.IdeaSet
}

func (m *mockDirectory) Brands(context.Context) ([]domain.Brand, error)  { return m.brands, nil }
func (m *mockDirectory) Refresh(context.Context) ([]domain.Brand, error) { return m.brands, nil }

func (m *mockDirectory) BrandBySlug(_ context.Context, slug string) (*domain.Brand, error) {
	for i := range m.brands {
		if m.brands[i].Slug == slug {
			return &m.brands[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockDirectory) Ideas(context.Context, *domain.Brand) (*domain.IdeaSet, error) {
	return m.ideas, nil
}

// mockStudio implements driving.StudioOrchestrator.
type mockStudio struct {
	extracted *domain.Brand
	videoURL  string
	creatives []domain.Creative
	lastBrief domain.MarketBrief
}

func (m *mockStudio) ExtractBrand(_ context.Context, _ string, progress driving.ProgressFunc) (*domain.Brand, error) {
	if progress != nil {
		progress(100, "Brand DNA ready")
	}
	return m.extracted, nil
}

func (m *mockStudio) Brainstorm(context.Context, *domain.Brand, string, driving.ProgressFunc) (*domain.IdeaSet, error) {
	return &domain.IdeaSet{Ideas: []domain.CampaignIdea{{IdeaName: "Fresh", OneLiner: "New concept"}}}, nil
}

func (m *mockStudio) GenerateCreatives(context.Context, *domain.Brand, *domain.CampaignIdea, driving.ProgressFunc) ([]domain.Creative, error) {
	return m.creatives, nil
}

func (m *mockStudio) GenerateCustomCreative(context.Context, *domain.Brand, driving.CustomCreativeRequest, driving.ProgressFunc) ([]domain.Creative, error) {
	return m.creatives, nil
}

func (m *mockStudio) Animate(context.Context, *domain.Brand, *domain.CampaignIdea, *domain.Creative, driving.ProgressFunc) (string, error) {
	return m.videoURL, nil
}

func (m *mockStudio) CreativeHistory(context.Context, *domain.Brand, *domain.CampaignIdea) ([]domain.Creative, error) {
	return m.creatives, nil
}

func (m *mockStudio) RequestMarketReport(_ context.Context, brief domain.MarketBrief) error {
	m.lastBrief = brief
	return nil
}

func (m *mockStudio) RequestCompetitorAnalysis(context.Context, string, string) error { return nil }
func (m *mockStudio) SubmitMeetingNotes(context.Context, string, string, string, string) error {
	return nil
}
func (m *mockStudio) TranscribeAudio(context.Context, string, io.Reader) error { return nil }

// mockIntelligence implements driving.IntelligenceBrowser.
type mockIntelligence struct {
	reports     []domain.MarketReport
	competitors []domain.CompetitorReport
	meetings    []domain.MeetingSummary
	entries     []domain.AuditEntry
}

func (m *mockIntelligence) MarketReports(context.Context) ([]domain.MarketReport, error) {
	return m.reports, nil
}

func (m *mockIntelligence) Transcriptions(context.Context) ([]domain.TranscriptionSummary, error) {
	return nil, nil
}

func (m *mockIntelligence) Competitors(context.Context) ([]domain.CompetitorReport, error) {
	return m.competitors, nil
}

func (m *mockIntelligence) Meetings(context.Context) ([]domain.MeetingSummary, error) {
	return m.meetings, nil
}

func (m *mockIntelligence) Activity(context.Context, int) ([]domain.AuditEntry, error) {
	return m.entries, nil
}

// mockConfig implements driven.ConfigStore.
type mockConfig struct {
	endpoints domain.WebhookEndpoints
	values    map[string]string
}

func (m *mockConfig) Endpoints() domain.WebhookEndpoints { return m.endpoints }
func (m *mockConfig) DefaultSheets() domain.SheetConfig { return domain.SheetConfig{} }
func (m *mockConfig) ReportTabs() domain.ReportTabs { return domain.ReportTabs{} }
func (m *mockConfig) GetString(key string) string { return m.values[key] }
func (m *mockConfig) Load() error { return nil }
func (m *mockConfig) Watch(func()) (func(), error) { return func() {}, nil }
func (m *mockConfig) Path() string { return "/tmp/brandforge/config.toml" }

func (m *mockConfig) Set(key string, value any) error {
	if m.values == nil {
		m.values = make(map[string]string)
	}
	m.values[key] = fmt.Sprint(value)
	return nil
}

// setupTestServices swaps mocks into the package-level service vars
// and returns a cleanup restoring the originals.
func setupTestServices() func() {
	oldAuth, oldDir, oldStudio, oldIntel := authManager, directory, studio, intelligence
	oldConfig := configStore

	authManager = &mockAuth{}
	directory = &mockDirectory{
		brands: []domain.Brand{
			{Slug: "example", Name: "Example", URL: "https://example.com"},
		},
		ideas: &domain.IdeaSet{Ideas: []domain.CampaignIdea{
			{IdeaName: "Launch Week", OneLiner: "Seven days of reveals"},
		}},
	}
	studio = &mockStudio{
		extracted: &domain.Brand{Slug: "example", Name: "Example", URL: "https://example.com"},
		videoURL:  "https://cdn.test/video.mp4",
		creatives: []domain.Creative{
			{ImageURL: "https://cdn.test/c1.png", IdeaName: "Launch Week", Size: "1:1", Source: domain.SourceBatch},
		},
	}
	intelligence = &mockIntelligence{}
	configStore = &mockConfig{
		endpoints: domain.WebhookEndpoints{ExtractBrand: "https://hooks.test/extract"},
		values:    map[string]string{"sheets.brands_tab": "Brands"},
	}

	return func() {
		authManager, directory, studio, intelligence = oldAuth, oldDir, oldStudio, oldIntel
		configStore = oldConfig
	}
}

// execute runs the root command with args and captures its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
