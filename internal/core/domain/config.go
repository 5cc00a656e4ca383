package domain

// WebhookEndpoints enumerates the trigger destinations, one fixed URL
// per operation. No authentication is attached; trust is based on URL
// secrecy.
type WebhookEndpoints struct {
	ExtractBrand       string `toml:"extract_brand"`
	Brainstorm         string `toml:"brainstorm"`
	GenerateCreatives  string `toml:"generate_creatives"`
	CustomCreative     string `toml:"custom_creative"`
	Animate            string `toml:"animate"`
	MarketReport       string `toml:"market_report"`
	CompetitorAnalysis string `toml:"competitor_analysis"`
	MeetingSummary     string `toml:"meeting_summary"`
	AudioTranscription string `toml:"audio_transcription"`
	UserCreated        string `toml:"user_created"`
}

// ReportTabs locates the intelligence listing tabs, which live in a
// spreadsheet separate from the per-user brand workbook.
type ReportTabs struct {
	SpreadsheetID     string `toml:"spreadsheet_id"`
	MarketReportsGID  string `toml:"market_reports_gid"`
	TranscriptionsGID string `toml:"transcriptions_gid"`
	CompetitorsGID    string `toml:"competitors_gid"`
	MeetingsGID       string `toml:"meetings_gid"`
}
