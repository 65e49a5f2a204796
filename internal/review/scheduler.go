// Package review schedules spaced-repetition reviews from quiz performance.
package review

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Gopirudra-hub/MindMark/internal/config"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

// Review intervals by score tier. High scores push the next review further
// out, low scores pull it in.
const (
	intervalHighDays = 5
	intervalMidDays  = 3
	intervalLowDays  = 1

	scoreHighThreshold = 80
	scoreMidThreshold  = 50
)

// reviewHour is the local hour every next-review timestamp is normalized to,
// so a day's due set is stable no matter when attempts happened.
const reviewHour = 9

// recentAttemptWindow is how many trailing attempts feed a bookmark's
// weakness average.
const recentAttemptWindow = 3

// NextReviewDate computes when a bookmark should be reviewed again after an
// attempt with the given score. The result is normalized to 09:00 in now's
// location.
func NextReviewDate(score float64, now time.Time) time.Time {
	days := intervalLowDays
	switch {
	case score >= scoreHighThreshold:
		days = intervalHighDays
	case score >= scoreMidThreshold:
		days = intervalMidDays
	}

	next := now.AddDate(0, 0, days)
	return time.Date(next.Year(), next.Month(), next.Day(), reviewHour, 0, 0, 0, now.Location())
}

// DailyReviewSet is the day's quiz: the selected bookmarks and one
// representative question per bookmark that has any.
type DailyReviewSet struct {
	Bookmarks []store.Bookmark
	Questions []store.Question
	TotalDue  int
}

// Scheduler selects due and weak bookmarks and records review schedules.
type Scheduler struct {
	bookmarks store.BookmarkRepository
	attempts  store.AttemptRepository
	questions store.QuestionRepository
	cfg       config.ReviewsConfig
	now       func() time.Time
}

func NewScheduler(
	bookmarks store.BookmarkRepository,
	attempts store.AttemptRepository,
	questions store.QuestionRepository,
	cfg config.ReviewsConfig,
	now func() time.Time,
) *Scheduler {
	return &Scheduler{
		bookmarks: bookmarks,
		attempts:  attempts,
		questions: questions,
		cfg:       cfg,
		now:       now,
	}
}

// RecordAttempt persists the bookmark's review schedule after an attempt:
// last reviewed now, next review derived from the score.
func (s *Scheduler) RecordAttempt(ctx context.Context, bookmarkID int64, score float64) error {
	if _, err := s.bookmarks.Find(ctx, bookmarkID); err != nil {
		return err
	}

	now := s.now()
	if err := s.bookmarks.UpdateReviewSchedule(ctx, bookmarkID, now, NextReviewDate(score, now)); err != nil {
		return fmt.Errorf("record attempt for bookmark %d: %w", bookmarkID, err)
	}
	return nil
}

// DueBookmarks returns bookmarks whose review is due now, never-reviewed
// bookmarks first, at most limit.
func (s *Scheduler) DueBookmarks(ctx context.Context, limit int) ([]store.Bookmark, error) {
	return s.bookmarks.ListDue(ctx, s.now(), limit)
}

// WeakestBookmarks returns up to limit bookmarks ordered by the average score
// of their three most recent attempts, weakest first. Bookmarks without
// attempts are excluded.
func (s *Scheduler) WeakestBookmarks(ctx context.Context, limit int) ([]store.Bookmark, error) {
	bookmarks, err := s.bookmarks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	attempts, err := s.attempts.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// Attempts arrive ordered oldest first; keep only the trailing window.
	scoresByBookmark := make(map[int64][]float64)
	for _, attempt := range attempts {
		scores := append(scoresByBookmark[attempt.BookmarkID], attempt.Score)
		if len(scores) > recentAttemptWindow {
			scores = scores[1:]
		}
		scoresByBookmark[attempt.BookmarkID] = scores
	}

	type weighted struct {
		bookmark store.Bookmark
		average  float64
	}
	var ranked []weighted
	for _, bookmark := range bookmarks {
		scores, ok := scoresByBookmark[bookmark.ID]
		if !ok {
			continue
		}
		var sum float64
		for _, score := range scores {
			sum += score
		}
		ranked = append(ranked, weighted{bookmark: bookmark, average: sum / float64(len(scores))})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].average < ranked[j].average
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := make([]store.Bookmark, len(ranked))
	for i, w := range ranked {
		result[i] = w.bookmark
	}
	return result, nil
}

// BuildDailyReviewSet combines due and weak bookmarks into the day's quiz.
// Due bookmarks take precedence and keep their position; weak bookmarks
// already due are not re-added. The combined list is capped, and each
// selected bookmark contributes its first available question, preferring
// multiple choice.
func (s *Scheduler) BuildDailyReviewSet(ctx context.Context) (DailyReviewSet, error) {
	due, err := s.DueBookmarks(ctx, s.cfg.DueLimit)
	if err != nil {
		return DailyReviewSet{}, err
	}
	weak, err := s.WeakestBookmarks(ctx, s.cfg.WeakLimit)
	if err != nil {
		return DailyReviewSet{}, err
	}

	seen := make(map[int64]struct{}, len(due))
	selected := due
	for _, bookmark := range due {
		seen[bookmark.ID] = struct{}{}
	}
	for _, bookmark := range weak {
		if _, ok := seen[bookmark.ID]; ok {
			continue
		}
		seen[bookmark.ID] = struct{}{}
		selected = append(selected, bookmark)
	}

	if len(selected) > s.cfg.DailyCap {
		selected = selected[:s.cfg.DailyCap]
	}

	set := DailyReviewSet{
		Bookmarks: selected,
		TotalDue:  len(selected),
	}

	for _, bookmark := range selected {
		questions, err := s.questions.FindByBookmark(ctx, bookmark.ID)
		if err != nil {
			return DailyReviewSet{}, err
		}
		if question, ok := pickRepresentative(questions); ok {
			set.Questions = append(set.Questions, question)
		}
	}

	return set, nil
}

// pickRepresentative returns the first multiple-choice question, falling
// back to the first question of any type.
func pickRepresentative(questions []store.Question) (store.Question, bool) {
	if len(questions) == 0 {
		return store.Question{}, false
	}
	for _, question := range questions {
		if question.Type == store.QuestionTypeMCQ {
			return question, true
		}
	}
	return questions[0], true
}
