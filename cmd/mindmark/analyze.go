package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Gopirudra-hub/MindMark/internal/analytics"
	"github.com/Gopirudra-hub/MindMark/internal/cli"
)

func newAnalyzeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze learning progress and statistics",
	}
	cmd.AddCommand(newAnalyzeReportCommand())
	return cmd
}

func newAnalyzeReportCommand() *cobra.Command {
	var days int
	var pdfPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the analytics dashboard and performance trend",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1")
			}

			_, db, err := openDatabase()
			if err != nil {
				return err
			}
			defer func() { _ = db.Close() }()
			repos := newRepositories(db)

			aggregator := analytics.NewAggregator(repos.bookmarks, repos.categories, repos.attempts, time.Now)

			if pdfPath != "" {
				written, err := cli.WriteReportPDF(cmd.Context(), aggregator, days, pdfPath)
				if err != nil {
					return err
				}
				fmt.Printf("Report written to %s\n", written)
				return nil
			}
			return cli.RunAnalyzeReport(cmd.Context(), os.Stdout, aggregator, days)
		},
	}

	addReportFlags(cmd.Flags(), &days, &pdfPath)
	return cmd
}

func addReportFlags(flags *pflag.FlagSet, days *int, pdfPath *string) {
	flags.IntVar(days, "days", 30, "How many trailing days the trend covers")
	flags.StringVar(pdfPath, "pdf", "", "Write the report to this PDF file instead of stdout")
}
