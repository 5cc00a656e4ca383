package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and edit the configuration file: webhook endpoints, default
sheet routing, and the intelligence report tab locations.

Keys are dotted TOML paths, e.g.:
  webhooks.extract_brand
  default_sheets.spreadsheet_id
  reports.market_reports_gid`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set a configuration value",
	Long: `Sets a value by dotted key and persists it immediately.

Examples:
  brandforge config set webhooks.extract_brand https://hooks.example/extract
  brandforge config set default_sheets.spreadsheet_id 1AbC...`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	cmd.Printf("Config file: %s\n\n", configStore.Path())

	endpoints := configStore.Endpoints()
	cmd.Println("Webhooks:")
	for _, e := range []struct{ name, url string }{
		{"extract_brand", endpoints.ExtractBrand},
		{"brainstorm", endpoints.Brainstorm},
		{"generate_creatives", endpoints.GenerateCreatives},
		{"custom_creative", endpoints.CustomCreative},
		{"animate", endpoints.Animate},
		{"market_report", endpoints.MarketReport},
		{"competitor_analysis", endpoints.CompetitorAnalysis},
		{"meeting_summary", endpoints.MeetingSummary},
		{"audio_transcription", endpoints.AudioTranscription},
		{"user_created", endpoints.UserCreated},
	} {
		url := e.url
		if url == "" {
			url = "(unset)"
		}
		cmd.Printf("  %-20s %s\n", e.name, url)
	}

	sheets := configStore.DefaultSheets()
	cmd.Println("\nDefault sheets:")
	cmd.Printf("  %-24s %s\n", "spreadsheet_id", sheets.SpreadsheetID)
	cmd.Printf("  %-24s %s\n", "input_url_worksheet_id", sheets.InputURLWorksheetID)
	cmd.Printf("  %-24s %s\n", "campaign_ideas_id", sheets.CampaignIdeasID)
	cmd.Printf("  %-24s %s\n", "creatives_id", sheets.CreativesID)
	cmd.Printf("  %-24s %s\n", "animated_creatives_id", sheets.AnimatedCreativesID)
	cmd.Printf("  %-24s %s\n", "custom_creatives_id", sheets.CustomCreativesID)
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	value := configStore.GetString(args[0])
	if value == "" {
		cmd.Printf("%s is not set\n", args[0])
		return nil
	}
	cmd.Println(value)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if err := configStore.Set(args[0], args[1]); err != nil {
		return err
	}
	cmd.Printf("Set %s.\n", args[0])
	return nil
}
