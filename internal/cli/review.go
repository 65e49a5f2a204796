// Package cli implements the interactive terminal commands.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/Gopirudra-hub/MindMark/internal/quiz"
	"github.com/Gopirudra-hub/MindMark/internal/review"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

// ReviewCLI manages the interactive daily review session: one representative
// question per due or weak bookmark.
type ReviewCLI struct {
	scheduler   *review.Scheduler
	quiz        *quiz.Service
	stdinReader *bufio.Reader
	out         io.Writer
	bold        *color.Color
	italic      *color.Color
}

// NewReviewCLI creates a new interactive review session.
func NewReviewCLI(scheduler *review.Scheduler, quizService *quiz.Service, stdin io.Reader, out io.Writer) *ReviewCLI {
	return &ReviewCLI{
		scheduler:   scheduler,
		quiz:        quizService,
		stdinReader: bufio.NewReader(stdin),
		out:         out,
		bold:        color.New(color.Bold),
		italic:      color.New(color.Italic),
	}
}

// Run walks today's review set one bookmark at a time, grading and recording
// each answer as it is given.
func (c *ReviewCLI) Run(ctx context.Context) error {
	set, err := c.scheduler.BuildDailyReviewSet(ctx)
	if err != nil {
		return fmt.Errorf("build daily review set: %w", err)
	}
	if len(set.Bookmarks) == 0 {
		_, _ = fmt.Fprintln(c.out, "Nothing to review today!")
		return nil
	}

	questionsByBookmark := make(map[int64]store.Question, len(set.Questions))
	for _, question := range set.Questions {
		questionsByBookmark[question.BookmarkID] = question
	}

	_, _ = fmt.Fprintf(c.out, "%d bookmarks to review today.\n\n", len(set.Bookmarks))

	for i, bookmark := range set.Bookmarks {
		question, ok := questionsByBookmark[bookmark.ID]
		if !ok {
			_, _ = fmt.Fprintf(c.out, "[%d/%d] %q has no questions yet, skipping.\n\n", i+1, len(set.Bookmarks), bookmark.Title)
			continue
		}
		if err := c.session(ctx, i+1, len(set.Bookmarks), bookmark, question); err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(c.out, "Review session complete.")
	return nil
}

// session asks a single question and records the graded attempt.
func (c *ReviewCLI) session(ctx context.Context, index, total int, bookmark store.Bookmark, question store.Question) error {
	_, _ = c.bold.Fprintf(c.out, "[%d/%d] %s\n", index, total, bookmark.Title)
	_, _ = fmt.Fprintln(c.out, question.Question)
	if question.Type == store.QuestionTypeMCQ {
		for j, option := range question.Options {
			_, _ = fmt.Fprintf(c.out, "  %d. %s\n", j+1, option)
		}
	}
	_, _ = c.bold.Fprint(c.out, "Answer: ")

	startTime := time.Now()
	answer, err := c.readAnswer(question)
	if err != nil {
		return fmt.Errorf("read answer: %w", err)
	}
	timeTakenSeconds := int(time.Since(startTime).Seconds())

	result, err := c.quiz.SubmitAttempt(ctx, bookmark.ID, []quiz.SubmittedAnswer{
		{QuestionID: question.ID, Answer: answer},
	}, timeTakenSeconds)
	if err != nil {
		return fmt.Errorf("submit attempt for bookmark %d: %w", bookmark.ID, err)
	}

	c.displayResult(result)
	return nil
}

// readAnswer reads one line of input. For multiple choice, a bare option
// number is accepted in place of the option text.
func (c *ReviewCLI) readAnswer(question store.Question) (string, error) {
	line, err := c.stdinReader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	answer := strings.TrimSpace(line)

	if question.Type == store.QuestionTypeMCQ {
		if n, convErr := strconv.Atoi(answer); convErr == nil && n >= 1 && n <= len(question.Options) {
			return question.Options[n-1], nil
		}
	}
	return answer, nil
}

// displayResult shows the graded outcome and the new review date.
func (c *ReviewCLI) displayResult(result quiz.SubmissionResult) {
	graded := result.PerQuestionResults[0]

	_, _ = fmt.Fprintln(c.out)
	if graded.Correct {
		_, _ = color.New(color.FgGreen).Fprintln(c.out, "✅ Correct!")
	} else {
		_, _ = color.New(color.FgRed).Fprintf(c.out, "❌ Incorrect. The answer is %q\n", graded.CorrectAnswer)
	}
	if graded.Explanation != nil && *graded.Explanation != "" {
		_, _ = c.italic.Fprintf(c.out, "   %s\n", *graded.Explanation)
	}
	_, _ = fmt.Fprintf(c.out, "Next review: %s\n\n", result.NextReviewAt.Format("Mon, Jan 2 2006"))
}
