package domain

import "time"

// SheetConfig routes a user's results to their own spreadsheet tabs.
// Every trigger payload embeds it so the external workflows write back
// to the correct location in a multi-tenant setup. Empty fields fall
// back to the operator's defaults.
type SheetConfig struct {
	SpreadsheetID        string `json:"spreadsheet_id" toml:"spreadsheet_id"`
	InputURLWorksheetID  string `json:"input_url_worksheet_id" toml:"input_url_worksheet_id"`
	CampaignIdeasID      string `json:"campaign_ideas_id" toml:"campaign_ideas_id"`
	CreativesID          string `json:"creatives_id" toml:"creatives_id"`
	AnimatedCreativesID  string `json:"animated_creatives_id" toml:"animated_creatives_id"`
	CustomCreativesID    string `json:"custom_creatives_id" toml:"custom_creatives_id"`
}

// Merge overlays non-empty fields of other on top of the receiver and
// returns the result. Used to resolve a user's config over defaults.
func (c SheetConfig) Merge(other SheetConfig) SheetConfig {
	pick := func(base, over string) string {
		if over != "" {
			return over
		}
		return base
	}
	return SheetConfig{
		SpreadsheetID:       pick(c.SpreadsheetID, other.SpreadsheetID),
		InputURLWorksheetID: pick(c.InputURLWorksheetID, other.InputURLWorksheetID),
		CampaignIdeasID:     pick(c.CampaignIdeasID, other.CampaignIdeasID),
		CreativesID:         pick(c.CreativesID, other.CreativesID),
		AnimatedCreativesID: pick(c.AnimatedCreativesID, other.AnimatedCreativesID),
		CustomCreativesID:   pick(c.CustomCreativesID, other.CustomCreativesID),
	}
}

// User is a dashboard account. The current user's record is held for
// the lifetime of the session and rehydrated from durable storage on
// startup.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`

	// Password is the stored credential. Only ever compared, never
	// sent on webhook payloads except the user-creation notification.
	Password string `json:"-"`

	Sheets SheetConfig `json:"sheets"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// AuditEntry records one user-visible action for the activity log.
type AuditEntry struct {
	ID          string    `json:"id"`
	Action      string    `json:"action"`
	Details     string    `json:"details"`
	PerformedBy string    `json:"performed_by"`
	Timestamp   time.Time `json:"timestamp"`
}
