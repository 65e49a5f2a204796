package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Gopirudra-hub/MindMark/internal/insights"
)

// RunInsights prints the current findings, most urgent first.
func RunInsights(ctx context.Context, out io.Writer, engine *insights.Engine) error {
	findings, err := engine.Insights(ctx)
	if err != nil {
		return fmt.Errorf("compute insights: %w", err)
	}
	printInsights(out, findings)
	return nil
}

// RunCategoryInsights prints findings scoped to one category.
func RunCategoryInsights(ctx context.Context, out io.Writer, engine *insights.Engine, categoryID int64) error {
	findings, err := engine.CategoryInsights(ctx, categoryID)
	if err != nil {
		return fmt.Errorf("compute insights for category %d: %w", categoryID, err)
	}
	printInsights(out, findings)
	return nil
}

// RunBookmarkInsights prints findings scoped to one bookmark.
func RunBookmarkInsights(ctx context.Context, out io.Writer, engine *insights.Engine, bookmarkID int64) error {
	findings, err := engine.BookmarkInsights(ctx, bookmarkID)
	if err != nil {
		return fmt.Errorf("compute insights for bookmark %d: %w", bookmarkID, err)
	}
	printInsights(out, findings)
	return nil
}

func printInsights(out io.Writer, findings []insights.Insight) {
	if len(findings) == 0 {
		_, _ = fmt.Fprintln(out, "No insights yet. Take a few quizzes first.")
		return
	}
	for _, insight := range findings {
		_, _ = priorityColor(insight.Priority).Fprintf(out, "[%s]", insight.Priority)
		_, _ = fmt.Fprintf(out, " %s\n", insight.Message)
	}
}

func priorityColor(p insights.Priority) *color.Color {
	switch p {
	case insights.PriorityCritical:
		return color.New(color.FgRed, color.Bold)
	case insights.PriorityWarning:
		return color.New(color.FgYellow)
	case insights.PriorityPositive:
		return color.New(color.FgGreen)
	}
	return color.New(color.FgCyan)
}
