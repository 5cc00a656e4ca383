package domain

// MarketBrief is the intake form for a market intelligence report.
// Field names match the workflow's expected payload keys.
type MarketBrief struct {
	ClientName             string `json:"clientName"`
	BrandProduct           string `json:"brandProduct"`
	ProblemStatement       string `json:"problemStatement"`
	TargetConsumer         string `json:"targetConsumer"`
	SingleMindedProposition string `json:"singleMindedProposition"`
	DesiredAction          string `json:"desiredAction"`
	ToneCommunication      string `json:"toneCommunication"`
	FunctionalReasons      string `json:"functionalReasons"`
	EmotionalReasons       string `json:"emotionalReasons"`
	KPIs                   string `json:"kpis"`
	DosDonts               string `json:"dosDonots"`
	Budget                 string `json:"budget"`
	OtherInfo              string `json:"otherInfo"`
	Complications          string `json:"complications"`
}

// MarketReport is a finished market intelligence report row. The brief
// details are recovered from a JSON blob embedded in the row's HTML
// column; rows whose blob is missing or malformed still surface with
// the CSV-level fields.
type MarketReport struct {
	BrandProduct string `json:"brand_product"`
	ReportLink   string `json:"report_link,omitempty"`

	// Brief echoes the submitted intake form where recoverable.
	Brief MarketBrief `json:"brief"`

	// HTML is the raw report body for preview/rendering.
	HTML string `json:"html,omitempty"`
}

// CompetitorReport is one competitor analysis result row.
type CompetitorReport struct {
	CompanyName string `json:"company_name"`
	WebsiteURL  string `json:"website_url"`
	HTML        string `json:"html"`
}

// MeetingSummary is one minutes-of-meeting summary row.
type MeetingSummary struct {
	Title   string `json:"title"`
	Date    string `json:"date"`
	Time    string `json:"time,omitempty"`
	Summary string `json:"summary"`
}

// TranscriptionSummary is one audio transcription result row.
type TranscriptionSummary struct {
	TriggerID     string `json:"trigger_id,omitempty"`
	FileName      string `json:"file_name"`
	Summary       string `json:"summary"`
	Transcription string `json:"transcription"`
}
