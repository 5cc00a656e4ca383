package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show recent account activity",
	RunE:  runActivity,
}

var activityLimit int

func init() {
	activityCmd.Flags().IntVarP(&activityLimit, "limit", "n", 20, "Maximum entries to show")
	rootCmd.AddCommand(activityCmd)
}

func runActivity(cmd *cobra.Command, _ []string) error {
	if intelligence == nil {
		return errors.New("intelligence service not configured")
	}

	entries, err := intelligence.Activity(context.Background(), activityLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		cmd.Println("No activity yet.")
		return nil
	}
	for _, e := range entries {
		cmd.Printf("%s  %-20s %-12s %s\n",
			e.Timestamp.Format("2006-01-02 15:04"), e.Action, e.PerformedBy, e.Details)
	}
	return nil
}
