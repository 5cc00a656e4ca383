package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
)

var momCmd = &cobra.Command{
	Use:   "mom",
	Short: "Submit and browse minutes-of-meeting summaries",
}

var momSubmitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Submit meeting notes for summarization",
	Long: `Sends raw meeting notes to the summarizer workflow. The summary
shows up later under 'mom list'.

Examples:
  brandforge mom submit --title "Standup" --date 2024-06-01 --notes-file notes.txt`,
	RunE: runMomSubmit,
}

var momListCmd = &cobra.Command{
	Use:   "list",
	Short: "List summarized meetings",
	RunE:  runMomList,
}

var (
	momTitle     string
	momDate      string
	momTime      string
	momNotes     string
	momNotesFile string
)

func init() {
	momSubmitCmd.Flags().StringVar(&momTitle, "title", "", "Meeting title")
	momSubmitCmd.Flags().StringVar(&momDate, "date", "", "Meeting date, e.g. 2024-06-01")
	momSubmitCmd.Flags().StringVar(&momTime, "time", "", "Meeting time, e.g. 09:30")
	momSubmitCmd.Flags().StringVar(&momNotes, "notes", "", "Notes text")
	momSubmitCmd.Flags().StringVar(&momNotesFile, "notes-file", "", "Read notes from a file")

	momCmd.AddCommand(momSubmitCmd)
	momCmd.AddCommand(momListCmd)
	rootCmd.AddCommand(momCmd)
}

func runMomSubmit(cmd *cobra.Command, _ []string) error {
	if studio == nil {
		return errors.New("studio service not configured")
	}

	notes := momNotes
	if notes == "" && momNotesFile != "" {
		raw, err := os.ReadFile(momNotesFile)
		if err != nil {
			return err
		}
		notes = string(raw)
	}
	if notes == "" {
		return errors.New("--notes or --notes-file is required")
	}

	if err := studio.SubmitMeetingNotes(context.Background(), momTitle, momDate, momTime, notes); err != nil {
		return err
	}
	cmd.Println("Notes submitted. The summary will appear in 'brandforge mom list'.")
	return nil
}

func runMomList(cmd *cobra.Command, _ []string) error {
	if intelligence == nil {
		return errors.New("intelligence service not configured")
	}

	meetings, err := intelligence.Meetings(context.Background())
	if err != nil {
		return err
	}
	if len(meetings) == 0 {
		cmd.Println("No meeting summaries yet.")
		return nil
	}
	for _, m := range meetings {
		cmd.Printf("%s", m.Title)
		if m.Date != "" {
			cmd.Printf(" (%s", m.Date)
			if m.Time != "" {
				cmd.Printf(" %s", m.Time)
			}
			cmd.Print(")")
		}
		cmd.Println()
		if m.Summary != "" {
			cmd.Printf("  %s\n", m.Summary)
		}
	}
	return nil
}
