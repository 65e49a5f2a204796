package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Gopirudra-hub/MindMark/internal/analytics"
	"github.com/Gopirudra-hub/MindMark/internal/pdf"
)

// RunAnalyzeReport displays the learning analytics dashboard: headline
// numbers, per-category scores and the recent performance trend.
func RunAnalyzeReport(ctx context.Context, out io.Writer, aggregator *analytics.Aggregator, trendDays int) error {
	global, err := aggregator.GlobalAnalytics(ctx)
	if err != nil {
		return fmt.Errorf("compute global analytics: %w", err)
	}
	trend, err := aggregator.PerformanceTrend(ctx, trendDays)
	if err != nil {
		return fmt.Errorf("compute performance trend: %w", err)
	}

	_, _ = fmt.Fprintln(out, "Learning Analytics Report")
	_, _ = fmt.Fprintln(out, "=========================")
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "Bookmarks:        %d\n", global.TotalBookmarks)
	_, _ = fmt.Fprintf(out, "Categories:       %d\n", global.TotalCategories)
	_, _ = fmt.Fprintf(out, "Average score:    %.1f\n", global.AverageScore)
	_, _ = fmt.Fprintf(out, "Due for review:   %d\n", global.DueReviewCount)
	_, _ = fmt.Fprintf(out, "Weekly delta:     %+.1f\n", global.WeeklyScoreDelta)
	_, _ = fmt.Fprintf(out, "Compliance rate:  %.0f%%\n", global.ComplianceRate)
	if global.WeakestCategory != nil {
		_, _ = fmt.Fprintf(out, "Weakest category: %s (%.1f)\n", global.WeakestCategory.CategoryName, global.WeakestCategory.AverageScore)
	}

	if len(global.CategoryScores) > 0 {
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintf(out, "%-24s  %-8s  %-8s\n", "Category", "Score", "Attempts")
		_, _ = fmt.Fprintf(out, "%-24s  %-8s  %-8s\n", "--------", "-----", "--------")
		for _, cs := range global.CategoryScores {
			_, _ = fmt.Fprintf(out, "%-24s  %-8.1f  %-8d\n", cs.CategoryName, cs.AverageScore, cs.AttemptCount)
		}
	}

	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintf(out, "Last %d days:\n", trendDays)
	for _, day := range trend {
		score := "-"
		if day.AverageScore != nil {
			score = fmt.Sprintf("%.1f", *day.AverageScore)
		}
		_, _ = fmt.Fprintf(out, "  %s  %6s  (%d attempts)\n", day.Date.Format("2006-01-02"), score, day.AttemptCount)
	}

	return nil
}

// WriteReportPDF renders the analytics report to a PDF file and returns the
// written path.
func WriteReportPDF(ctx context.Context, aggregator *analytics.Aggregator, trendDays int, pdfPath string) (string, error) {
	global, err := aggregator.GlobalAnalytics(ctx)
	if err != nil {
		return "", fmt.Errorf("compute global analytics: %w", err)
	}
	trend, err := aggregator.PerformanceTrend(ctx, trendDays)
	if err != nil {
		return "", fmt.Errorf("compute performance trend: %w", err)
	}

	return pdf.RenderMarkdown(buildReportMarkdown(global, trend, trendDays), pdfPath)
}

// buildReportMarkdown renders the report as markdown for the PDF pipeline.
func buildReportMarkdown(global analytics.GlobalAnalytics, trend []analytics.DayScore, trendDays int) []byte {
	var sb strings.Builder
	sb.WriteString("# Learning Analytics Report\n\n")
	sb.WriteString(fmt.Sprintf("**Bookmarks:** %d\n\n", global.TotalBookmarks))
	sb.WriteString(fmt.Sprintf("**Categories:** %d\n\n", global.TotalCategories))
	sb.WriteString(fmt.Sprintf("**Average score:** %.1f\n\n", global.AverageScore))
	sb.WriteString(fmt.Sprintf("**Due for review:** %d\n\n", global.DueReviewCount))
	sb.WriteString(fmt.Sprintf("**Weekly delta:** %+.1f\n\n", global.WeeklyScoreDelta))
	sb.WriteString(fmt.Sprintf("**Compliance rate:** %.0f%%\n\n", global.ComplianceRate))
	if global.WeakestCategory != nil {
		sb.WriteString(fmt.Sprintf("**Weakest category:** %s (%.1f)\n\n", global.WeakestCategory.CategoryName, global.WeakestCategory.AverageScore))
	}

	if len(global.CategoryScores) > 0 {
		sb.WriteString("## Categories\n\n")
		sb.WriteString("| Category | Score | Attempts |\n")
		sb.WriteString("| --- | --- | --- |\n")
		for _, cs := range global.CategoryScores {
			sb.WriteString(fmt.Sprintf("| %s | %.1f | %d |\n", cs.CategoryName, cs.AverageScore, cs.AttemptCount))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(fmt.Sprintf("## Last %d days\n\n", trendDays))
	sb.WriteString("| Date | Score | Attempts |\n")
	sb.WriteString("| --- | --- | --- |\n")
	for _, day := range trend {
		score := "-"
		if day.AverageScore != nil {
			score = fmt.Sprintf("%.1f", *day.AverageScore)
		}
		sb.WriteString(fmt.Sprintf("| %s | %s | %d |\n", day.Date.Format("2006-01-02"), score, day.AttemptCount))
	}

	return []byte(sb.String())
}
