package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driving"
)

// progressPrinter renders poll progress as a single rewritten line.
// The final 100% update gets a newline so subsequent output starts
// clean.
func progressPrinter(cmd *cobra.Command) driving.ProgressFunc {
	return func(percent int, step string) {
		cmd.Printf("\r%-70s", fmt.Sprintf("[%3d%%] %s", percent, step))
		if percent >= 100 {
			cmd.Println()
		}
	}
}
