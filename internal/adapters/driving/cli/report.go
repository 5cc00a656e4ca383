package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandforge-labs/brandforge-cli/internal/core/domain"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Request and browse intelligence reports",
}

var reportMarketCmd = &cobra.Command{
	Use:   "market",
	Short: "Request a market intelligence report",
	Long: `Submits the market intelligence intake brief. The workflow runs for
a while; the finished report shows up later under 'report list'.

Required fields are taken from flags; any left empty are prompted
for.`,
	RunE: runReportMarket,
}

var reportCompetitorCmd = &cobra.Command{
	Use:   "competitor [company-name]",
	Short: "Request a competitor analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runReportCompetitor,
}

var reportListCmd = &cobra.Command{
	Use:   "list",
	Short: "List finished reports",
	RunE:  runReportList,
}

var marketBrief domain.MarketBrief

var competitorWebsite string

func init() {
	flags := reportMarketCmd.Flags()
	flags.StringVar(&marketBrief.ClientName, "client", "", "Client name")
	flags.StringVar(&marketBrief.BrandProduct, "product", "", "Brand or product under study")
	flags.StringVar(&marketBrief.ProblemStatement, "problem", "", "Problem statement")
	flags.StringVar(&marketBrief.TargetConsumer, "audience", "", "Target consumer")
	flags.StringVar(&marketBrief.SingleMindedProposition, "proposition", "", "Single-minded proposition")
	flags.StringVar(&marketBrief.DesiredAction, "action", "", "Desired consumer action")
	flags.StringVar(&marketBrief.ToneCommunication, "tone", "", "Tone of communication")
	flags.StringVar(&marketBrief.FunctionalReasons, "functional", "", "Functional reasons to believe")
	flags.StringVar(&marketBrief.EmotionalReasons, "emotional", "", "Emotional reasons to believe")
	flags.StringVar(&marketBrief.KPIs, "kpis", "", "Success KPIs")
	flags.StringVar(&marketBrief.DosDonts, "dos-donts", "", "Dos and don'ts")
	flags.StringVar(&marketBrief.Budget, "budget", "", "Budget")
	flags.StringVar(&marketBrief.OtherInfo, "other", "", "Anything else")
	flags.StringVar(&marketBrief.Complications, "complications", "", "Known complications")

	reportCompetitorCmd.Flags().StringVarP(&competitorWebsite, "website", "w", "", "Competitor website URL")

	reportCmd.AddCommand(reportMarketCmd)
	reportCmd.AddCommand(reportCompetitorCmd)
	reportCmd.AddCommand(reportListCmd)
	rootCmd.AddCommand(reportCmd)
}

func runReportMarket(cmd *cobra.Command, _ []string) error {
	if studio == nil {
		return errors.New("studio service not configured")
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	prompt := func(target *string, label string) {
		if *target != "" {
			return
		}
		cmd.Printf("%s: ", label)
		input, _ := reader.ReadString('\n')
		*target = strings.TrimSpace(input)
	}
	prompt(&marketBrief.BrandProduct, "Brand / product")
	prompt(&marketBrief.TargetConsumer, "Target consumer")
	prompt(&marketBrief.ProblemStatement, "Problem statement")

	if marketBrief.BrandProduct == "" {
		return errors.New("a brand/product is required")
	}

	if err := studio.RequestMarketReport(context.Background(), marketBrief); err != nil {
		return err
	}
	cmd.Println("Report requested. It will appear in 'brandforge report list' when ready.")
	return nil
}

func runReportCompetitor(cmd *cobra.Command, args []string) error {
	if studio == nil {
		return errors.New("studio service not configured")
	}
	if err := studio.RequestCompetitorAnalysis(context.Background(), args[0], competitorWebsite); err != nil {
		return err
	}
	cmd.Println("Analysis requested. It will appear in 'brandforge report list' when ready.")
	return nil
}

func runReportList(cmd *cobra.Command, _ []string) error {
	if intelligence == nil {
		return errors.New("intelligence service not configured")
	}
	ctx := context.Background()

	reports, err := intelligence.MarketReports(ctx)
	if err != nil {
		return err
	}
	competitors, err := intelligence.Competitors(ctx)
	if err != nil {
		return err
	}

	if len(reports) == 0 && len(competitors) == 0 {
		cmd.Println("No reports yet.")
		return nil
	}
	for _, r := range reports {
		link := r.ReportLink
		if link == "" {
			link = "(inline report)"
		}
		cmd.Printf("market      %-28s %s\n", r.BrandProduct, link)
	}
	for _, c := range competitors {
		cmd.Printf("competitor  %-28s %s\n", c.CompanyName, c.WebsiteURL)
	}
	return nil
}
