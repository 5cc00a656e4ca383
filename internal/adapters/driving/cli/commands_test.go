package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "brandforge version")
}

func TestWhoamiCmd_NotLoggedIn(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")
}

func TestLoginCmd_WithFlags(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "login", "--username", "maya", "--password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "Logged in as maya")

	out, err = execute(t, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "maya")
}

func TestBrandListCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "brand", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "example")
	assert.Contains(t, out, "https://example.com")
}

func TestBrandExtractCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "brand", "extract", "https://example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "Brand: Example (example)")
}

func TestBrandExtractCmd_RequiresURL(t *testing.T) {
	_, err := execute(t, "brand", "extract")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestIdeasCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "ideas", "example")
	require.NoError(t, err)
	assert.Contains(t, out, "Launch Week")
	assert.Contains(t, out, "Seven days of reveals")
}

func TestIdeasCmd_UnknownBrand(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "ideas", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreativesGenerateCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "creatives", "generate", "example", "Launch Week")
	require.NoError(t, err)
	assert.Contains(t, out, "https://cdn.test/c1.png")
}

func TestCreativesCustomCmd_RequiresPrompt(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "creatives", "custom", "example")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--prompt is required")
}

func TestCreativesAnimateCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "creatives", "animate", "example", "Launch Week", "https://cdn.test/c1.png")
	require.NoError(t, err)
	assert.Contains(t, out, "https://cdn.test/video.mp4")
}

func TestReportMarketCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "report", "market",
		"--product", "Example Widgets",
		"--audience", "SMB founders",
		"--problem", "Low awareness")
	require.NoError(t, err)
	assert.Contains(t, out, "Report requested")
	assert.Equal(t, "Example Widgets", studio.(*mockStudio).lastBrief.BrandProduct)
}

func TestReportListCmd_Empty(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "report", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No reports yet")
}

func TestMomSubmitCmd_RequiresNotes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := execute(t, "mom", "submit", "--title", "Standup")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--notes")
}

func TestActivityCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	intelligence.(*mockIntelligence).entries = []domain.AuditEntry{
		{Action: "LOGIN", PerformedBy: "maya", Details: "User logged in"},
	}

	out, err := execute(t, "activity")
	require.NoError(t, err)
	assert.Contains(t, out, "LOGIN")
	assert.Contains(t, out, "maya")
}

func TestConfigShowCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Config file: /tmp/brandforge/config.toml")
	assert.Contains(t, out, "https://hooks.test/extract")
	assert.Contains(t, out, "(unset)")
}

func TestConfigGetCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "get", "sheets.brands_tab")
	require.NoError(t, err)
	assert.Contains(t, out, "Brands")
}

func TestConfigGetCmd_UnsetKey(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "get", "webhooks.animate")
	require.NoError(t, err)
	assert.Contains(t, out, "webhooks.animate is not set")
}

func TestConfigSetCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := execute(t, "config", "set", "webhooks.animate", "https://hooks.test/animate")
	require.NoError(t, err)
	assert.Contains(t, out, "Set webhooks.animate.")
	assert.Equal(t, "https://hooks.test/animate", configStore.GetString("webhooks.animate"))
}

func TestCommands_FailWithoutServices(t *testing.T) {
	oldStudio := studio
	studio = nil
	defer func() { studio = oldStudio }()

	_, err := execute(t, "brand", "extract", "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}
