// Package cli exposes the studio as a cobra command tree. Commands
// hold no logic of their own; they parse flags, resolve brands and
// ideas through the driving ports, and render results.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driven"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driving"
	"github.com/brandforge-labs/brandforge-cli/internal/logger"
)

// version is the build version, overridable via ldflags.
var version = "0.1.0-dev"

// Services injected by the composition root. Commands check for nil so
// a misconfigured binary fails with a clear message instead of a
// panic.
var (
	authManager  driving.AuthManager
	directory    driving.BrandDirectory
	studio       driving.StudioOrchestrator
	intelligence driving.IntelligenceBrowser
	configStore  driven.ConfigStore
)

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "brandforge",
	Short: "Brand DNA extraction and creative generation studio",
	Long: `brandforge drives AI marketing workflows from the terminal.

Submit a website for brand DNA extraction, brainstorm campaign ideas,
generate creatives and videos, and request market intelligence. The
heavy lifting happens in external workflows; brandforge triggers them
and watches the shared datastore until results land.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false,
		"Enable verbose debug output")
}

// Setup injects the service implementations. Must be called before
// Execute.
func Setup(
	auth driving.AuthManager,
	dir driving.BrandDirectory,
	st driving.StudioOrchestrator,
	intel driving.IntelligenceBrowser,
	config driven.ConfigStore,
) {
	authManager = auth
	directory = dir
	studio = st
	intelligence = intel
	configStore = config
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
