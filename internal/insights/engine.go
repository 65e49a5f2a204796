// Package insights derives rule-based findings from the attempt history.
// Every rule is deterministic over a storage snapshot; there are no learned
// parameters.
package insights

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Gopirudra-hub/MindMark/internal/analytics"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

// Priority orders insights for display, most urgent first.
type Priority int

const (
	PriorityCritical Priority = iota
	PriorityWarning
	PriorityInfo
	PriorityPositive
)

func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityWarning:
		return "warning"
	case PriorityInfo:
		return "info"
	case PriorityPositive:
		return "positive"
	}
	return "unknown"
}

// Insight is a single rule-derived finding. Metric carries the number the
// rule fired on, when there is one.
type Insight struct {
	Type     string   `json:"type"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
	Metric   *float64 `json:"metric,omitempty"`
}

// Rule thresholds, shared between the global run and the scoped variants so
// the two never contradict each other about the same data.
const (
	declineThreshold          = -5.0
	weakCategoryMinAttempts   = 3
	weakCategoryScore         = 50.0
	strongCategoryScore       = 80.0
	decayMinAttempts          = 5
	decayWindow               = 3
	decayGap                  = 15.0
	typeWeaknessMinAnswers    = 10
	typeWeaknessRate          = 0.5
	consistencyWindowDays     = 7
	consistencyHighActiveDays = 5
	consistencyLowActiveDays  = 2
	streakMinDays             = 3
	bookmarkTrendMargin       = 10.0
)

// Engine runs insight rules against the content store.
type Engine struct {
	bookmarks  store.BookmarkRepository
	categories store.CategoryRepository
	attempts   store.AttemptRepository
	now        func() time.Time
}

func NewEngine(
	bookmarks store.BookmarkRepository,
	categories store.CategoryRepository,
	attempts store.AttemptRepository,
	now func() time.Time,
) *Engine {
	return &Engine{
		bookmarks:  bookmarks,
		categories: categories,
		attempts:   attempts,
		now:        now,
	}
}

// Insights runs every global rule and returns the findings sorted by
// priority, stable within a priority so rule order is preserved.
func (e *Engine) Insights(ctx context.Context) ([]Insight, error) {
	bookmarks, err := e.bookmarks.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	categories, err := e.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	attempts, err := e.attempts.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	answers, err := e.attempts.FindAnswersWithType(ctx)
	if err != nil {
		return nil, err
	}

	now := e.now()
	var result []Insight
	result = append(result, weeklyTrendInsights(attempts, now)...)
	result = append(result, missedReviewInsight(bookmarks, now)...)
	result = append(result, categoryInsights(categories, bookmarks, attempts)...)
	result = append(result, questionTypeInsights(answers)...)
	result = append(result, consistencyInsights(attempts, now)...)
	result = append(result, streakInsight(attempts, now)...)

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority < result[j].Priority
	})
	return result, nil
}

func metric(v float64) *float64 { return &v }

// weeklyTrendInsights compares the last 7 days against the 7 before them.
// Improvement needs attempts in both windows; a decline past the threshold
// warns as long as the prior window had any attempts to decline from.
func weeklyTrendInsights(attempts []store.QuizAttempt, now time.Time) []Insight {
	currentStart := now.AddDate(0, 0, -consistencyWindowDays)
	priorStart := now.AddDate(0, 0, -2*consistencyWindowDays)

	var current, prior []float64
	for _, attempt := range attempts {
		switch {
		case !attempt.AttemptedAt.Before(currentStart):
			current = append(current, attempt.Score)
		case !attempt.AttemptedAt.Before(priorStart):
			prior = append(prior, attempt.Score)
		}
	}
	if len(prior) == 0 {
		return nil
	}

	currentAvg := avg(current)
	priorAvg := avg(prior)
	improvement := currentAvg - priorAvg

	if len(current) > 0 && improvement > 0 {
		return []Insight{{
			Type:     "weekly_improvement",
			Priority: PriorityPositive,
			Message:  fmt.Sprintf("Your average score improved by %.1f points over the last week.", improvement),
			Metric:   metric(improvement),
		}}
	}
	if improvement < declineThreshold {
		return []Insight{{
			Type:     "weekly_decline",
			Priority: PriorityWarning,
			Message:  fmt.Sprintf("Your average score dropped by %.1f points compared to the previous week.", -improvement),
			Metric:   metric(improvement),
		}}
	}
	return nil
}

// missedReview reports whether the bookmark's scheduled review came and went
// without a review happening after the deadline.
func missedReview(bookmark store.Bookmark, now time.Time) bool {
	if bookmark.NextReviewAt == nil || !bookmark.NextReviewAt.Before(now) {
		return false
	}
	return bookmark.LastReviewedAt == nil || bookmark.LastReviewedAt.Before(*bookmark.NextReviewAt)
}

func missedReviewInsight(bookmarks []store.Bookmark, now time.Time) []Insight {
	var missed int
	for _, bookmark := range bookmarks {
		if missedReview(bookmark, now) {
			missed++
		}
	}
	if missed == 0 {
		return nil
	}
	return []Insight{{
		Type:     "missed_reviews",
		Priority: PriorityWarning,
		Message:  fmt.Sprintf("%d bookmark(s) have overdue reviews.", missed),
		Metric:   metric(float64(missed)),
	}}
}

func categoryInsights(categories []store.Category, bookmarks []store.Bookmark, attempts []store.QuizAttempt) []Insight {
	categoryByBookmark := make(map[int64]int64, len(bookmarks))
	for _, bookmark := range bookmarks {
		if bookmark.CategoryID != nil {
			categoryByBookmark[bookmark.ID] = *bookmark.CategoryID
		}
	}

	// Attempts arrive oldest first, so per-category score slices keep
	// chronological order for the decay comparison.
	scoresByCategory := make(map[int64][]float64)
	for _, attempt := range attempts {
		categoryID, ok := categoryByBookmark[attempt.BookmarkID]
		if !ok {
			continue
		}
		scoresByCategory[categoryID] = append(scoresByCategory[categoryID], attempt.Score)
	}

	var result []Insight
	for _, category := range categories {
		scores := scoresByCategory[category.ID]
		if len(scores) >= weakCategoryMinAttempts && avg(scores) < weakCategoryScore {
			result = append(result, Insight{
				Type:     "weak_category",
				Priority: PriorityCritical,
				Message:  fmt.Sprintf("Category %q is struggling with an average score of %.1f.", category.Name, avg(scores)),
				Metric:   metric(avg(scores)),
			})
		}
		if decay, ok := retentionDecay(scores); ok {
			result = append(result, Insight{
				Type:     "retention_decay",
				Priority: PriorityWarning,
				Message:  fmt.Sprintf("Recent scores in category %q trail early scores by %.1f points.", category.Name, decay),
				Metric:   metric(decay),
			})
		}
	}
	return result
}

// retentionDecay compares the most recent window of scores against the
// oldest one; scores must be in chronological order.
func retentionDecay(scores []float64) (float64, bool) {
	if len(scores) < decayMinAttempts {
		return 0, false
	}
	oldest := avg(scores[:decayWindow])
	recent := avg(scores[len(scores)-decayWindow:])
	decay := oldest - recent
	return decay, decay > decayGap
}

func questionTypeInsights(answers []store.AnswerWithType) []Insight {
	type tally struct {
		correct int
		total   int
	}
	tallies := make(map[store.QuestionType]*tally)
	for _, answer := range answers {
		t, ok := tallies[answer.QuestionType]
		if !ok {
			t = &tally{}
			tallies[answer.QuestionType] = t
		}
		t.total++
		if answer.IsCorrect {
			t.correct++
		}
	}

	var result []Insight
	for _, questionType := range []store.QuestionType{
		store.QuestionTypeMCQ,
		store.QuestionTypeShort,
		store.QuestionTypeScenario,
		store.QuestionTypeFlashcard,
	} {
		t, ok := tallies[questionType]
		if !ok || t.total < typeWeaknessMinAnswers {
			continue
		}
		rate := float64(t.correct) / float64(t.total)
		if rate < typeWeaknessRate {
			result = append(result, Insight{
				Type:     "question_type_weakness",
				Priority: PriorityInfo,
				Message:  fmt.Sprintf("You answer %s questions correctly only %.0f%% of the time.", questionType, 100*rate),
				Metric:   metric(rate),
			})
		}
	}
	return result
}

func activeDays(attempts []store.QuizAttempt, now time.Time) map[time.Time]bool {
	days := make(map[time.Time]bool)
	for _, attempt := range attempts {
		days[startOfDay(attempt.AttemptedAt.In(now.Location()))] = true
	}
	return days
}

func consistencyInsights(attempts []store.QuizAttempt, now time.Time) []Insight {
	if len(attempts) == 0 {
		return nil
	}

	days := activeDays(attempts, now)
	var active int
	for offset := 0; offset < consistencyWindowDays; offset++ {
		if days[startOfDay(now).AddDate(0, 0, -offset)] {
			active++
		}
	}

	if active >= consistencyHighActiveDays {
		return []Insight{{
			Type:     "consistency",
			Priority: PriorityPositive,
			Message:  fmt.Sprintf("You studied on %d of the last 7 days. Keep it up.", active),
			Metric:   metric(float64(active)),
		}}
	}
	if active <= consistencyLowActiveDays {
		return []Insight{{
			Type:     "consistency",
			Priority: PriorityWarning,
			Message:  fmt.Sprintf("You studied on only %d of the last 7 days.", active),
			Metric:   metric(float64(active)),
		}}
	}
	return nil
}

// streakInsight walks backward from today counting consecutive active days.
// A quiet today does not break the streak; the walk just starts yesterday.
func streakInsight(attempts []store.QuizAttempt, now time.Time) []Insight {
	days := activeDays(attempts, now)

	day := startOfDay(now)
	if !days[day] {
		day = day.AddDate(0, 0, -1)
	}

	var streak int
	for days[day] {
		streak++
		day = day.AddDate(0, 0, -1)
	}

	if streak < streakMinDays {
		return nil
	}
	return []Insight{{
		Type:     "study_streak",
		Priority: PriorityPositive,
		Message:  fmt.Sprintf("You are on a %d-day study streak.", streak),
		Metric:   metric(float64(streak)),
	}}
}

// CategoryInsights applies the category rules to a single category, using
// the same thresholds as the global run.
func (e *Engine) CategoryInsights(ctx context.Context, categoryID int64) ([]Insight, error) {
	category, err := e.categories.Find(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	bookmarks, err := e.bookmarks.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}

	var scores []float64
	for _, bookmark := range bookmarks {
		attempts, err := e.attempts.FindByBookmark(ctx, bookmark.ID)
		if err != nil {
			return nil, err
		}
		for _, attempt := range attempts {
			scores = append(scores, attempt.Score)
		}
	}

	var result []Insight
	if len(scores) >= weakCategoryMinAttempts {
		switch {
		case avg(scores) < weakCategoryScore:
			result = append(result, Insight{
				Type:     "weak_category",
				Priority: PriorityCritical,
				Message:  fmt.Sprintf("Category %q is struggling with an average score of %.1f.", category.Name, avg(scores)),
				Metric:   metric(avg(scores)),
			})
		case avg(scores) >= strongCategoryScore:
			result = append(result, Insight{
				Type:     "strong_category",
				Priority: PriorityPositive,
				Message:  fmt.Sprintf("Category %q is going well with an average score of %.1f.", category.Name, avg(scores)),
				Metric:   metric(avg(scores)),
			})
		}
	}
	if decay, ok := retentionDecay(scores); ok {
		result = append(result, Insight{
			Type:     "retention_decay",
			Priority: PriorityWarning,
			Message:  fmt.Sprintf("Recent scores in category %q trail early scores by %.1f points.", category.Name, decay),
			Metric:   metric(decay),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority < result[j].Priority
	})
	return result, nil
}

// BookmarkInsights compares a bookmark's latest attempt against its own
// average, flags overdue reviews and names its single weakest question.
func (e *Engine) BookmarkInsights(ctx context.Context, bookmarkID int64) ([]Insight, error) {
	bookmark, err := e.bookmarks.Find(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}
	attempts, err := e.attempts.FindByBookmark(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}
	answers, err := e.attempts.FindAnswersByBookmark(ctx, bookmarkID)
	if err != nil {
		return nil, err
	}

	now := e.now()
	var result []Insight

	if len(attempts) > 0 {
		var scores []float64
		for _, attempt := range attempts {
			scores = append(scores, attempt.Score)
		}
		latest := scores[len(scores)-1]
		average := avg(scores)

		switch {
		case latest > average+bookmarkTrendMargin:
			result = append(result, Insight{
				Type:     "score_trend",
				Priority: PriorityPositive,
				Message:  fmt.Sprintf("Your latest score of %.0f is well above your average of %.1f.", latest, average),
				Metric:   metric(latest - average),
			})
		case latest < average-bookmarkTrendMargin:
			result = append(result, Insight{
				Type:     "score_trend",
				Priority: PriorityWarning,
				Message:  fmt.Sprintf("Your latest score of %.0f is well below your average of %.1f.", latest, average),
				Metric:   metric(latest - average),
			})
		}
	}

	if missedReview(bookmark, now) {
		overdueDays := int(now.Sub(*bookmark.NextReviewAt).Hours() / 24)
		result = append(result, Insight{
			Type:     "overdue_review",
			Priority: PriorityWarning,
			Message:  fmt.Sprintf("This bookmark's review is %d day(s) overdue.", overdueDays),
			Metric:   metric(float64(overdueDays)),
		})
	}

	if weak := analytics.WeakQuestions(answers); len(weak) > 0 {
		result = append(result, Insight{
			Type:     "weak_question",
			Priority: PriorityInfo,
			Message:  fmt.Sprintf("Question %d is answered correctly only %.0f%% of the time.", weak[0].QuestionID, 100*weak[0].CorrectRate),
			Metric:   metric(weak[0].CorrectRate),
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Priority < result[j].Priority
	})
	return result, nil
}

func avg(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
