// Package analytics computes score statistics and time-bucketed trends over
// the attempt history. Every method recomputes from current storage, so the
// results always agree with the latest writes.
package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/Gopirudra-hub/MindMark/internal/store"
)

const (
	weakBookmarkScoreThreshold = 60
	weakQuestionRateThreshold  = 0.5
	retentionSeriesDays        = 30
	weeklyWindowDays           = 7
)

// emptyPolicy controls what an average over zero values yields: zero for
// headline numbers, null for chart series so gaps stay visible.
type emptyPolicy int

const (
	emptyAsZero emptyPolicy = iota
	emptyAsNull
)

func average(values []float64, policy emptyPolicy) *float64 {
	if len(values) == 0 {
		if policy == emptyAsZero {
			zero := 0.0
			return &zero
		}
		return nil
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	avg := sum / float64(len(values))
	return &avg
}

// CategoryScore pairs a category with an average attempt score.
type CategoryScore struct {
	CategoryID   int64   `json:"categoryId"`
	CategoryName string  `json:"categoryName"`
	AverageScore float64 `json:"averageScore"`
	AttemptCount int     `json:"attemptCount"`
}

// GlobalAnalytics is the dashboard headline view.
type GlobalAnalytics struct {
	TotalBookmarks   int             `json:"totalBookmarks"`
	TotalCategories  int             `json:"totalCategories"`
	AverageScore     float64         `json:"averageScore"`
	WeakestCategory  *CategoryScore  `json:"weakestCategory,omitempty"`
	CategoryScores   []CategoryScore `json:"categoryScores"`
	DueReviewCount   int             `json:"dueReviewCount"`
	WeeklyScoreDelta float64         `json:"weeklyScoreDelta"`
	ComplianceRate   float64         `json:"complianceRate"`
}

// WeakBookmark is a bookmark whose attempt average falls below the weakness
// threshold.
type WeakBookmark struct {
	Bookmark     store.Bookmark `json:"bookmark"`
	AverageScore float64        `json:"averageScore"`
	AttemptCount int            `json:"attemptCount"`
}

// DayScore is one day of a retention or trend series. AverageScore is null
// on days without attempts.
type DayScore struct {
	Date         time.Time `json:"date"`
	AverageScore *float64  `json:"averageScore"`
	AttemptCount int       `json:"attemptCount"`
}

// CategoryAnalytics summarizes performance across one category's bookmarks.
type CategoryAnalytics struct {
	Category        store.Category `json:"category"`
	AverageScore    float64        `json:"averageScore"`
	AttemptCount    int            `json:"attemptCount"`
	WeakBookmarks   []WeakBookmark `json:"weakBookmarks"`
	RetentionSeries []DayScore     `json:"retentionSeries"`
}

// ScorePoint is one attempt in a bookmark's score progression.
type ScorePoint struct {
	AttemptedAt      time.Time `json:"attemptedAt"`
	Score            float64   `json:"score"`
	TimeTakenSeconds int       `json:"timeTakenSeconds"`
}

// QuestionStat is a per-question correctness tally across all attempts.
type QuestionStat struct {
	QuestionID  int64   `json:"questionId"`
	Correct     int     `json:"correct"`
	Total       int     `json:"total"`
	CorrectRate float64 `json:"correctRate"`
}

// BookmarkAnalytics summarizes one bookmark's attempt history.
type BookmarkAnalytics struct {
	Bookmark            store.Bookmark `json:"bookmark"`
	AverageScore        float64        `json:"averageScore"`
	AttemptCount        int            `json:"attemptCount"`
	ScoreProgression    []ScorePoint   `json:"scoreProgression"`
	DaysSinceLastReview *int           `json:"daysSinceLastReview"`
	WeakQuestions       []QuestionStat `json:"weakQuestions"`
}

// Aggregator computes analytics from the content store.
type Aggregator struct {
	bookmarks  store.BookmarkRepository
	categories store.CategoryRepository
	attempts   store.AttemptRepository
	now        func() time.Time
}

func NewAggregator(
	bookmarks store.BookmarkRepository,
	categories store.CategoryRepository,
	attempts store.AttemptRepository,
	now func() time.Time,
) *Aggregator {
	return &Aggregator{
		bookmarks:  bookmarks,
		categories: categories,
		attempts:   attempts,
		now:        now,
	}
}

// GlobalAnalytics computes the headline statistics across all bookmarks and
// attempts. No data yields zero values, never an error.
func (a *Aggregator) GlobalAnalytics(ctx context.Context) (GlobalAnalytics, error) {
	bookmarks, err := a.bookmarks.FindAll(ctx)
	if err != nil {
		return GlobalAnalytics{}, err
	}
	categories, err := a.categories.FindAll(ctx)
	if err != nil {
		return GlobalAnalytics{}, err
	}
	attempts, err := a.attempts.FindAll(ctx)
	if err != nil {
		return GlobalAnalytics{}, err
	}
	due, err := a.bookmarks.ListDue(ctx, a.now(), 0)
	if err != nil {
		return GlobalAnalytics{}, err
	}

	scores := make([]float64, len(attempts))
	for i, attempt := range attempts {
		scores[i] = attempt.Score
	}

	result := GlobalAnalytics{
		TotalBookmarks:   len(bookmarks),
		TotalCategories:  len(categories),
		AverageScore:     *average(scores, emptyAsZero),
		DueReviewCount:   len(due),
		WeeklyScoreDelta: weeklyDelta(attempts, a.now()),
		ComplianceRate:   complianceRate(bookmarks),
	}

	result.CategoryScores = categoryScores(categories, bookmarks, attempts)
	for i := range result.CategoryScores {
		cs := result.CategoryScores[i]
		if cs.AttemptCount == 0 {
			continue
		}
		if result.WeakestCategory == nil || cs.AverageScore < result.WeakestCategory.AverageScore {
			result.WeakestCategory = &result.CategoryScores[i]
		}
	}

	return result, nil
}

// categoryScores computes per-category attempt averages, preserving the
// category iteration order so ties resolve to the first one encountered.
func categoryScores(categories []store.Category, bookmarks []store.Bookmark, attempts []store.QuizAttempt) []CategoryScore {
	categoryByBookmark := make(map[int64]int64, len(bookmarks))
	for _, bookmark := range bookmarks {
		if bookmark.CategoryID != nil {
			categoryByBookmark[bookmark.ID] = *bookmark.CategoryID
		}
	}

	scoresByCategory := make(map[int64][]float64)
	for _, attempt := range attempts {
		categoryID, ok := categoryByBookmark[attempt.BookmarkID]
		if !ok {
			continue
		}
		scoresByCategory[categoryID] = append(scoresByCategory[categoryID], attempt.Score)
	}

	result := make([]CategoryScore, 0, len(categories))
	for _, category := range categories {
		scores := scoresByCategory[category.ID]
		result = append(result, CategoryScore{
			CategoryID:   category.ID,
			CategoryName: category.Name,
			AverageScore: *average(scores, emptyAsZero),
			AttemptCount: len(scores),
		})
	}
	return result
}

// weeklyDelta compares the most recent 7-day window's average score against
// the prior 7-day window. An empty window averages to 0.
func weeklyDelta(attempts []store.QuizAttempt, now time.Time) float64 {
	currentStart := now.AddDate(0, 0, -weeklyWindowDays)
	priorStart := now.AddDate(0, 0, -2*weeklyWindowDays)

	var current, prior []float64
	for _, attempt := range attempts {
		switch {
		case !attempt.AttemptedAt.Before(currentStart):
			current = append(current, attempt.Score)
		case !attempt.AttemptedAt.Before(priorStart):
			prior = append(prior, attempt.Score)
		}
	}
	return *average(current, emptyAsZero) - *average(prior, emptyAsZero)
}

// complianceRate is the share of scheduled bookmarks that have completed at
// least one review, 100 when nothing is scheduled.
func complianceRate(bookmarks []store.Bookmark) float64 {
	var scheduled, reviewed int
	for _, bookmark := range bookmarks {
		if bookmark.NextReviewAt == nil {
			continue
		}
		scheduled++
		if bookmark.LastReviewedAt != nil {
			reviewed++
		}
	}
	if scheduled == 0 {
		return 100
	}
	return 100 * float64(reviewed) / float64(scheduled)
}

// CategoryAnalytics summarizes performance for one category, including a
// 30-day retention series with nulls preserved on attempt-free days.
func (a *Aggregator) CategoryAnalytics(ctx context.Context, categoryID int64) (CategoryAnalytics, error) {
	category, err := a.categories.Find(ctx, categoryID)
	if err != nil {
		return CategoryAnalytics{}, err
	}
	bookmarks, err := a.bookmarks.FindByCategory(ctx, categoryID)
	if err != nil {
		return CategoryAnalytics{}, err
	}

	result := CategoryAnalytics{Category: category}

	var allScores []float64
	var allAttempts []store.QuizAttempt
	for _, bookmark := range bookmarks {
		attempts, err := a.attempts.FindByBookmark(ctx, bookmark.ID)
		if err != nil {
			return CategoryAnalytics{}, err
		}
		if len(attempts) == 0 {
			continue
		}
		allAttempts = append(allAttempts, attempts...)

		scores := make([]float64, len(attempts))
		for i, attempt := range attempts {
			scores[i] = attempt.Score
		}
		allScores = append(allScores, scores...)

		if avg := *average(scores, emptyAsZero); avg < weakBookmarkScoreThreshold {
			result.WeakBookmarks = append(result.WeakBookmarks, WeakBookmark{
				Bookmark:     bookmark,
				AverageScore: avg,
				AttemptCount: len(attempts),
			})
		}
	}

	result.AverageScore = *average(allScores, emptyAsZero)
	result.AttemptCount = len(allScores)
	result.RetentionSeries = dailySeries(allAttempts, retentionSeriesDays, a.now())
	return result, nil
}

// BookmarkAnalytics summarizes one bookmark's history: average, progression
// oldest first, days since last review and its weakest questions.
func (a *Aggregator) BookmarkAnalytics(ctx context.Context, bookmarkID int64) (BookmarkAnalytics, error) {
	bookmark, err := a.bookmarks.Find(ctx, bookmarkID)
	if err != nil {
		return BookmarkAnalytics{}, err
	}
	attempts, err := a.attempts.FindByBookmark(ctx, bookmarkID)
	if err != nil {
		return BookmarkAnalytics{}, err
	}
	answers, err := a.attempts.FindAnswersByBookmark(ctx, bookmarkID)
	if err != nil {
		return BookmarkAnalytics{}, err
	}

	result := BookmarkAnalytics{
		Bookmark:     bookmark,
		AttemptCount: len(attempts),
	}

	scores := make([]float64, len(attempts))
	for i, attempt := range attempts {
		scores[i] = attempt.Score
		result.ScoreProgression = append(result.ScoreProgression, ScorePoint{
			AttemptedAt:      attempt.AttemptedAt,
			Score:            attempt.Score,
			TimeTakenSeconds: attempt.TimeTakenSeconds,
		})
	}
	result.AverageScore = *average(scores, emptyAsZero)

	if bookmark.LastReviewedAt != nil {
		days := int(a.now().Sub(*bookmark.LastReviewedAt).Hours() / 24)
		result.DaysSinceLastReview = &days
	}

	result.WeakQuestions = WeakQuestions(answers)
	return result, nil
}

// WeakQuestions tallies per-question correctness and returns the questions
// answered correctly less than half the time, weakest first.
func WeakQuestions(answers []store.UserAnswer) []QuestionStat {
	statsByQuestion := make(map[int64]*QuestionStat)
	var order []int64
	for _, answer := range answers {
		stat, ok := statsByQuestion[answer.QuestionID]
		if !ok {
			stat = &QuestionStat{QuestionID: answer.QuestionID}
			statsByQuestion[answer.QuestionID] = stat
			order = append(order, answer.QuestionID)
		}
		stat.Total++
		if answer.IsCorrect {
			stat.Correct++
		}
	}

	var weak []QuestionStat
	for _, questionID := range order {
		stat := statsByQuestion[questionID]
		stat.CorrectRate = float64(stat.Correct) / float64(stat.Total)
		if stat.CorrectRate < weakQuestionRateThreshold {
			weak = append(weak, *stat)
		}
	}
	sort.SliceStable(weak, func(i, j int) bool {
		return weak[i].CorrectRate < weak[j].CorrectRate
	})
	return weak
}

// PerformanceTrend returns a fixed-length daily series for the requested
// window ending today, oldest first. Days without attempts carry a null
// average and a zero count.
func (a *Aggregator) PerformanceTrend(ctx context.Context, days int) ([]DayScore, error) {
	if days <= 0 {
		return nil, nil
	}

	now := a.now()
	since := startOfDay(now).AddDate(0, 0, -(days - 1))
	attempts, err := a.attempts.FindSince(ctx, since)
	if err != nil {
		return nil, err
	}
	return dailySeries(attempts, days, now), nil
}

// dailySeries buckets attempts into one entry per calendar day for the
// window ending today.
func dailySeries(attempts []store.QuizAttempt, days int, now time.Time) []DayScore {
	start := startOfDay(now).AddDate(0, 0, -(days - 1))

	scoresByDay := make(map[time.Time][]float64)
	for _, attempt := range attempts {
		day := startOfDay(attempt.AttemptedAt.In(now.Location()))
		if day.Before(start) {
			continue
		}
		scoresByDay[day] = append(scoresByDay[day], attempt.Score)
	}

	series := make([]DayScore, days)
	for i := 0; i < days; i++ {
		day := start.AddDate(0, 0, i)
		scores := scoresByDay[day]
		series[i] = DayScore{
			Date:         day,
			AverageScore: average(scores, emptyAsNull),
			AttemptCount: len(scores),
		}
	}
	return series
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
