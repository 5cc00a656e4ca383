package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe [audio-file]",
	Short: "Upload an audio file for transcription",
	Long: `Uploads a meeting recording to the transcription workflow. The
transcript and its summary show up later under 'transcribe list'.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

var transcribeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List finished transcriptions",
	RunE:  runTranscribeList,
}

func init() {
	transcribeCmd.AddCommand(transcribeListCmd)
	rootCmd.AddCommand(transcribeCmd)
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	if studio == nil {
		return errors.New("studio service not configured")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	filename := filepath.Base(args[0])
	if err := studio.TranscribeAudio(context.Background(), filename, f); err != nil {
		return err
	}
	cmd.Printf("Uploaded %s. The transcript will appear in 'brandforge transcribe list'.\n", filename)
	return nil
}

func runTranscribeList(cmd *cobra.Command, _ []string) error {
	if intelligence == nil {
		return errors.New("intelligence service not configured")
	}

	summaries, err := intelligence.Transcriptions(context.Background())
	if err != nil {
		return err
	}
	if len(summaries) == 0 {
		cmd.Println("No transcriptions yet.")
		return nil
	}
	for _, s := range summaries {
		cmd.Println(s.FileName)
		if s.Summary != "" {
			cmd.Printf("  %s\n", s.Summary)
		}
	}
	return nil
}
