package cli

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
	"github.com/brandforge-labs/brandforge-cli/internal/core/ports/driving"
)

var creativesCmd = &cobra.Command{
	Use:   "creatives",
	Short: "Generate and browse creatives",
}

var creativesGenerateCmd = &cobra.Command{
	Use:   "generate [brand-slug] [idea-name]",
	Short: "Generate the batch creative set for a campaign idea",
	Long: `Triggers batch creative generation for one campaign idea and waits
for the images to land. At most one generation per brand and idea runs
per session; a finished one is not re-triggered.

Examples:
  brandforge creatives generate example "Launch Week"`,
	Args: cobra.ExactArgs(2),
	RunE: runCreativesGenerate,
}

var creativesCustomCmd = &cobra.Command{
	Use:   "custom [brand-slug]",
	Short: "Generate a single creative from a free prompt",
	Long: `Triggers a custom creative from a free-text prompt, optionally
seeded with a reference image, and waits for the result.

Examples:
  brandforge creatives custom example --prompt "robot mascot on a beach"
  brandforge creatives custom example -P "launch banner" --image ref.png --aspect 9:16`,
	Args: cobra.ExactArgs(1),
	RunE: runCreativesCustom,
}

var creativesAnimateCmd = &cobra.Command{
	Use:   "animate [brand-slug] [idea-name] [creative-url]",
	Short: "Animate a creative into a short video",
	Long: `Requests a video for one creative and waits for it. The datastore
keys videos by idea, so concurrent animations of the same idea share
one result.`,
	Args: cobra.ExactArgs(3),
	RunE: runCreativesAnimate,
}

var creativesListCmd = &cobra.Command{
	Use:   "list [brand-slug]",
	Short: "List a brand's creatives",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreativesList,
}

var (
	customPrompt string
	customImage  string
	customAspect string
	customTexts  []string
	listIdeaName string
)

func init() {
	creativesCustomCmd.Flags().StringVarP(&customPrompt, "prompt", "P", "", "Creative prompt (required)")
	creativesCustomCmd.Flags().StringVar(&customImage, "image", "", "Reference image file")
	creativesCustomCmd.Flags().StringVar(&customAspect, "aspect", "1:1", "Aspect ratio, e.g. 9:16")
	creativesCustomCmd.Flags().StringSliceVar(&customTexts, "text", nil, "Overlay text options (header, description, cta)")
	creativesListCmd.Flags().StringVarP(&listIdeaName, "idea", "i", "", "Filter to one campaign idea")

	creativesCmd.AddCommand(creativesGenerateCmd)
	creativesCmd.AddCommand(creativesCustomCmd)
	creativesCmd.AddCommand(creativesAnimateCmd)
	creativesCmd.AddCommand(creativesListCmd)
	rootCmd.AddCommand(creativesCmd)
}

// resolveIdea finds a campaign idea by name within a brand's history.
func resolveIdea(ctx context.Context, brand *domain.Brand, name string) (*domain.CampaignIdea, error) {
	history, err := directory.Ideas(ctx, brand)
	if err != nil {
		return nil, err
	}
	for i := range history.Ideas {
		if domain.FuzzyNameMatch(history.Ideas[i].IdeaName, name) {
			return &history.Ideas[i], nil
		}
	}
	return nil, fmt.Errorf("idea %q: %w", name, domain.ErrNotFound)
}

func runCreativesGenerate(cmd *cobra.Command, args []string) error {
	if directory == nil || studio == nil {
		return errors.New("studio services not configured")
	}

	ctx := context.Background()
	brand, err := directory.BrandBySlug(ctx, args[0])
	if err != nil {
		return err
	}
	idea, err := resolveIdea(ctx, brand, args[1])
	if err != nil {
		return err
	}

	creatives, err := studio.GenerateCreatives(ctx, brand, idea, progressPrinter(cmd))
	if err != nil {
		return err
	}
	printCreatives(cmd, creatives)
	return nil
}

func runCreativesCustom(cmd *cobra.Command, args []string) error {
	if directory == nil || studio == nil {
		return errors.New("studio services not configured")
	}
	if customPrompt == "" {
		return errors.New("--prompt is required")
	}

	ctx := context.Background()
	brand, err := directory.BrandBySlug(ctx, args[0])
	if err != nil {
		return err
	}

	req := driving.CustomCreativeRequest{
		Prompt:      customPrompt,
		AspectRatio: customAspect,
		TextOptions: customTexts,
	}
	if customImage != "" {
		data, ext, err := encodeReferenceImage(customImage)
		if err != nil {
			return err
		}
		req.ImageData = data
		req.ImageExtension = ext
	}

	creatives, err := studio.GenerateCustomCreative(ctx, brand, req, progressPrinter(cmd))
	if err != nil {
		return err
	}
	printCreatives(cmd, creatives)
	return nil
}

// encodeReferenceImage reads an image file into the data-URL form the
// workflow expects.
func encodeReferenceImage(path string) (data, ext string, err error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reference image: %w", err)
	}
	ext = strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = "png"
	}
	data = fmt.Sprintf("data:image/%s;base64,%s", ext, base64.StdEncoding.EncodeToString(raw))
	return data, ext, nil
}

func runCreativesAnimate(cmd *cobra.Command, args []string) error {
	if directory == nil || studio == nil {
		return errors.New("studio services not configured")
	}

	ctx := context.Background()
	brand, err := directory.BrandBySlug(ctx, args[0])
	if err != nil {
		return err
	}
	idea, err := resolveIdea(ctx, brand, args[1])
	if err != nil {
		return err
	}
	creative := &domain.Creative{ImageURL: args[2]}

	videoURL, err := studio.Animate(ctx, brand, idea, creative, progressPrinter(cmd))
	if err != nil {
		return err
	}
	cmd.Printf("Video: %s\n", videoURL)
	return nil
}

func runCreativesList(cmd *cobra.Command, args []string) error {
	if directory == nil || studio == nil {
		return errors.New("studio services not configured")
	}

	ctx := context.Background()
	brand, err := directory.BrandBySlug(ctx, args[0])
	if err != nil {
		return err
	}

	var idea *domain.CampaignIdea
	if listIdeaName != "" {
		idea, err = resolveIdea(ctx, brand, listIdeaName)
		if err != nil {
			return err
		}
	}

	creatives, err := studio.CreativeHistory(ctx, brand, idea)
	if err != nil {
		return err
	}
	if len(creatives) == 0 {
		cmd.Println("No creatives yet.")
		return nil
	}
	printCreatives(cmd, creatives)
	return nil
}

func printCreatives(cmd *cobra.Command, creatives []domain.Creative) {
	for _, c := range creatives {
		label := c.IdeaName
		if label == "" {
			label = string(c.Source)
		}
		cmd.Printf("%-8s %-28s %s\n", c.Size, label, c.ImageURL)
	}
}
