package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Gopirudra-hub/MindMark/internal/generation"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

// RunGenerateQuestions generates a fresh question set for a bookmark and
// replaces its current one. Malformed provider questions are reported and
// dropped rather than failing the run.
func RunGenerateQuestions(
	ctx context.Context,
	out io.Writer,
	bookmarks store.BookmarkRepository,
	questions store.QuestionRepository,
	client generation.Client,
	bookmarkID int64,
	count int,
) error {
	bookmark, err := bookmarks.Find(ctx, bookmarkID)
	if err != nil {
		return err
	}

	content := ""
	if bookmark.Content != nil {
		content = *bookmark.Content
	}
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("bookmark %d has no content to generate questions from: %w", bookmarkID, store.ErrValidation)
	}

	response, err := client.GenerateQuestions(ctx, generation.GenerateQuestionsRequest{
		Title:         bookmark.Title,
		URL:           bookmark.URL,
		Content:       content,
		QuestionCount: count,
	})
	if err != nil {
		return fmt.Errorf("generate questions for bookmark %d: %w", bookmarkID, err)
	}

	normalized, rejected := generation.Normalize(response.Questions)
	for _, r := range rejected {
		_, _ = fmt.Fprintf(out, "  [REJECTED]  %s\n", r.Reason)
	}
	if len(normalized) == 0 {
		return fmt.Errorf("provider returned no valid questions for bookmark %d", bookmarkID)
	}

	if err := questions.ReplaceForBookmark(ctx, bookmarkID, normalized); err != nil {
		return fmt.Errorf("store questions for bookmark %d: %w", bookmarkID, err)
	}

	_, _ = fmt.Fprintf(out, "Stored %d questions for %q (%d rejected).\n", len(normalized), bookmark.Title, len(rejected))
	return nil
}
