package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

var ideasCmd = &cobra.Command{
	Use:   "ideas [brand-slug]",
	Short: "List or brainstorm campaign ideas",
	Long: `Shows a brand's campaign idea history. With --brainstorm, triggers
the brainstorm workflow first and waits for the new ideas to land; the
refreshed full history is printed, not just the new row.

Examples:
  brandforge ideas example
  brandforge ideas example --brainstorm --context "summer launch"`,
	Args: cobra.ExactArgs(1),
	RunE: runIdeas,
}

var (
	ideasBrainstorm bool
	ideasContext    string
)

func init() {
	ideasCmd.Flags().BoolVarP(&ideasBrainstorm, "brainstorm", "b", false,
		"Trigger a brainstorm before listing")
	ideasCmd.Flags().StringVarP(&ideasContext, "context", "c", "",
		"Campaign context to steer the brainstorm")

	rootCmd.AddCommand(ideasCmd)
}

func runIdeas(cmd *cobra.Command, args []string) error {
	if directory == nil || studio == nil {
		return errors.New("studio services not configured")
	}

	ctx := context.Background()
	brand, err := directory.BrandBySlug(ctx, args[0])
	if err != nil {
		return err
	}

	var history *domain.IdeaSet
	if ideasBrainstorm {
		history, err = studio.Brainstorm(ctx, brand, ideasContext, progressPrinter(cmd))
	} else {
		history, err = directory.Ideas(ctx, brand)
	}
	if err != nil {
		return err
	}

	if history.Len() == 0 {
		cmd.Printf("No ideas for %s yet. Run with --brainstorm to generate some.\n", brand.Name)
		return nil
	}

	cmd.Printf("Ideas for %s:\n", brand.Name)
	for i, idea := range history.Ideas {
		cmd.Printf("%3d. %s\n     %s\n", i+1, idea.IdeaName, idea.OneLiner)
		if len(idea.PrimaryChannels) > 0 {
			cmd.Printf("     channels: %s\n", strings.Join(idea.PrimaryChannels, ", "))
		}
	}
	return nil
}
