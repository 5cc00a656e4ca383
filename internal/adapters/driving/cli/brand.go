package cli

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

var brandCmd = &cobra.Command{
	Use:   "brand",
	Short: "Browse and extract brand DNA",
}

var brandListCmd = &cobra.Command{
	Use:   "list",
	Short: "List extracted brands",
	Long: `Lists the brand directory, newest first. Brands are deduplicated by
normalized website URL; re-extracting a site updates its entry rather
than adding a second one.`,
	RunE: runBrandList,
}

var brandExtractCmd = &cobra.Command{
	Use:   "extract [url]",
	Short: "Extract brand DNA from a website",
	Long: `Submits a website URL to the extraction workflow and waits for the
brand to appear in the directory. Extraction typically takes a couple
of minutes; the command gives up after five.

Examples:
  brandforge brand extract https://example.com`,
	Args: cobra.ExactArgs(1),
	RunE: runBrandExtract,
}

var brandListRefresh bool

func init() {
	brandListCmd.Flags().BoolVarP(&brandListRefresh, "refresh", "r", false,
		"Refetch the directory instead of using the session cache")

	brandCmd.AddCommand(brandListCmd)
	brandCmd.AddCommand(brandExtractCmd)
	rootCmd.AddCommand(brandCmd)
}

func runBrandList(cmd *cobra.Command, _ []string) error {
	if directory == nil {
		return errors.New("brand directory not configured")
	}

	ctx := context.Background()
	var brands []domain.Brand
	var err error
	if brandListRefresh {
		brands, err = directory.Refresh(ctx)
	} else {
		brands, err = directory.Brands(ctx)
	}
	if err != nil {
		if len(brands) == 0 {
			return err
		}
		// Stale data beats nothing; say so and keep going.
		cmd.Printf("Warning: refresh failed, showing cached data: %v\n", err)
	}
	if len(brands) == 0 {
		cmd.Println("No brands yet. Run 'brandforge brand extract <url>' to add one.")
		return nil
	}

	for _, b := range brands {
		cmd.Printf("%-24s %-28s %s\n", b.Slug, b.Name, b.URL)
	}
	return nil
}

func runBrandExtract(cmd *cobra.Command, args []string) error {
	if studio == nil {
		return errors.New("studio service not configured")
	}

	brand, err := studio.ExtractBrand(context.Background(), args[0], progressPrinter(cmd))
	if err != nil {
		return err
	}

	cmd.Printf("Brand: %s (%s)\n", brand.Name, brand.Slug)
	if brand.Tagline != "" {
		cmd.Printf("Tagline: %s\n", brand.Tagline)
	}
	if len(brand.Values) > 0 {
		cmd.Printf("Values: %s\n", strings.Join(brand.Values, ", "))
	}
	if len(brand.Colors) > 0 {
		cmd.Printf("Colors: %s\n", strings.Join(brand.Colors, " "))
	}
	if brand.HeadingFont != "" || brand.BodyFont != "" {
		cmd.Printf("Fonts: %s / %s\n", brand.HeadingFont, brand.BodyFont)
	}
	return nil
}
