package driven

import "github.com/brandforge-labs/brandforge-cli/internal/core/domain"

// ConfigStore provides access to operator configuration: webhook
// endpoints, default sheet routing, and tuning knobs. Implementations
// handle persistence (e.g. TOML files) and live reload.
type ConfigStore interface {
	// Endpoints returns the webhook destination URLs.
	Endpoints() domain.WebhookEndpoints

	// DefaultSheets returns the operator's default sheet routing,
	// used when the current user's profile leaves fields empty.
	DefaultSheets() domain.SheetConfig

	// ReportTabs returns the intelligence listing tab locations.
	ReportTabs() domain.ReportTabs

	// GetString retrieves a raw string value by dotted key.
	// Returns empty string if the key is absent.
	GetString(key string) string

	// Set stores a value and persists immediately.
	Set(key string, value any) error

	// Load re-reads configuration from storage.
	Load() error

	// Watch invokes onChange whenever the backing file changes.
	// The returned stop function cancels the watch.
	Watch(onChange func()) (stop func(), err error)

	// Path returns the configuration file path.
	Path() string
}
