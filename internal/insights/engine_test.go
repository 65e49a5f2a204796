package insights

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_store "github.com/Gopirudra-hub/MindMark/internal/mocks/store"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

func ptrTime(t time.Time) *time.Time { return &t }
func ptrInt64(v int64) *int64        { return &v }

func insightTypes(insights []Insight) []string {
	var types []string
	for _, insight := range insights {
		types = append(types, insight.Type)
	}
	return types
}

func findInsight(t *testing.T, insights []Insight, insightType string) Insight {
	t.Helper()
	for _, insight := range insights {
		if insight.Type == insightType {
			return insight
		}
	}
	t.Fatalf("no insight of type %q in %v", insightType, insightTypes(insights))
	return Insight{}
}

func newEngine(
	t *testing.T,
	bookmarks []store.Bookmark,
	categories []store.Category,
	attempts []store.QuizAttempt,
	answers []store.AnswerWithType,
	now time.Time,
) *Engine {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	bookmarkRepo := mock_store.NewMockBookmarkRepository(ctrl)
	categoryRepo := mock_store.NewMockCategoryRepository(ctrl)
	attemptRepo := mock_store.NewMockAttemptRepository(ctrl)
	bookmarkRepo.EXPECT().FindAll(gomock.Any()).Return(bookmarks, nil)
	categoryRepo.EXPECT().FindAll(gomock.Any()).Return(categories, nil)
	attemptRepo.EXPECT().FindAll(gomock.Any()).Return(attempts, nil)
	attemptRepo.EXPECT().FindAnswersWithType(gomock.Any()).Return(answers, nil)

	return NewEngine(bookmarkRepo, categoryRepo, attemptRepo, func() time.Time { return now })
}

func TestEngine_Insights_WeakCategory(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, -2, 0)

	categories := []store.Category{
		{ID: 1, Name: "Databases"},
		{ID: 2, Name: "Git"},
	}
	bookmarks := []store.Bookmark{
		{ID: 1, CategoryID: ptrInt64(1)},
		{ID: 2, CategoryID: ptrInt64(2)},
	}
	// Databases has three low attempts; Git averages high but only has two,
	// below the rule's minimum.
	attempts := []store.QuizAttempt{
		{ID: 1, BookmarkID: 1, Score: 30, AttemptedAt: old},
		{ID: 2, BookmarkID: 1, Score: 40, AttemptedAt: old},
		{ID: 3, BookmarkID: 1, Score: 45, AttemptedAt: old},
		{ID: 4, BookmarkID: 2, Score: 90, AttemptedAt: old},
		{ID: 5, BookmarkID: 2, Score: 85, AttemptedAt: old},
	}

	engine := newEngine(t, bookmarks, categories, attempts, nil, now)

	got, err := engine.Insights(context.Background())
	require.NoError(t, err)

	weak := findInsight(t, got, "weak_category")
	assert.Equal(t, PriorityCritical, weak.Priority)
	assert.Contains(t, weak.Message, "Databases")
	require.NotNil(t, weak.Metric)
	assert.InDelta(t, 38.3, *weak.Metric, 0.1)

	// Critical findings sort first regardless of rule order.
	assert.Equal(t, "weak_category", got[0].Type)
}

func TestEngine_Insights_WeeklyTrend(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		attempts []store.QuizAttempt
		wantType string
		absent   []string
	}{
		{
			name: "improvement over prior week",
			attempts: []store.QuizAttempt{
				{ID: 1, Score: 50, AttemptedAt: now.AddDate(0, 0, -10)},
				{ID: 2, Score: 80, AttemptedAt: now.AddDate(0, 0, -2)},
			},
			wantType: "weekly_improvement",
		},
		{
			name: "decline past threshold",
			attempts: []store.QuizAttempt{
				{ID: 1, Score: 80, AttemptedAt: now.AddDate(0, 0, -10)},
				{ID: 2, Score: 50, AttemptedAt: now.AddDate(0, 0, -2)},
			},
			wantType: "weekly_decline",
		},
		{
			name: "small decline stays quiet",
			attempts: []store.QuizAttempt{
				{ID: 1, Score: 80, AttemptedAt: now.AddDate(0, 0, -10)},
				{ID: 2, Score: 77, AttemptedAt: now.AddDate(0, 0, -2)},
			},
			absent: []string{"weekly_improvement", "weekly_decline"},
		},
		{
			name: "no prior window, no trend",
			attempts: []store.QuizAttempt{
				{ID: 1, Score: 90, AttemptedAt: now.AddDate(0, 0, -2)},
			},
			absent: []string{"weekly_improvement", "weekly_decline"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(t, nil, nil, tt.attempts, nil, now)

			got, err := engine.Insights(context.Background())
			require.NoError(t, err)

			if tt.wantType != "" {
				findInsight(t, got, tt.wantType)
			}
			for _, absent := range tt.absent {
				assert.NotContains(t, insightTypes(got), absent)
			}
		})
	}
}

func TestEngine_Insights_MissedReviews(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.AddDate(0, 0, -3)

	bookmarks := []store.Bookmark{
		// Overdue, never reviewed after the deadline.
		{ID: 1, NextReviewAt: ptrTime(past), LastReviewedAt: ptrTime(now.AddDate(0, 0, -8))},
		// Overdue but reviewed after the deadline already.
		{ID: 2, NextReviewAt: ptrTime(past), LastReviewedAt: ptrTime(now.AddDate(0, 0, -1))},
		// Not yet due.
		{ID: 3, NextReviewAt: ptrTime(now.AddDate(0, 0, 2))},
		// Never scheduled.
		{ID: 4},
	}

	engine := newEngine(t, bookmarks, nil, nil, nil, now)

	got, err := engine.Insights(context.Background())
	require.NoError(t, err)

	missed := findInsight(t, got, "missed_reviews")
	assert.Equal(t, PriorityWarning, missed.Priority)
	require.NotNil(t, missed.Metric)
	assert.Equal(t, 1.0, *missed.Metric)
}

func TestEngine_Insights_RetentionDecay(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, -2, 0)

	categories := []store.Category{{ID: 1, Name: "Databases"}}
	bookmarks := []store.Bookmark{{ID: 1, CategoryID: ptrInt64(1)}}
	// Oldest three average 90, newest three average 60: a 30-point drop.
	// The overall average stays above the weak-category bar.
	attempts := []store.QuizAttempt{
		{ID: 1, BookmarkID: 1, Score: 90, AttemptedAt: old},
		{ID: 2, BookmarkID: 1, Score: 95, AttemptedAt: old.AddDate(0, 0, 1)},
		{ID: 3, BookmarkID: 1, Score: 85, AttemptedAt: old.AddDate(0, 0, 2)},
		{ID: 4, BookmarkID: 1, Score: 65, AttemptedAt: old.AddDate(0, 0, 10)},
		{ID: 5, BookmarkID: 1, Score: 60, AttemptedAt: old.AddDate(0, 0, 11)},
		{ID: 6, BookmarkID: 1, Score: 55, AttemptedAt: old.AddDate(0, 0, 12)},
	}

	engine := newEngine(t, bookmarks, categories, attempts, nil, now)

	got, err := engine.Insights(context.Background())
	require.NoError(t, err)

	decay := findInsight(t, got, "retention_decay")
	assert.Equal(t, PriorityWarning, decay.Priority)
	require.NotNil(t, decay.Metric)
	assert.InDelta(t, 30.0, *decay.Metric, 0.01)
	assert.NotContains(t, insightTypes(got), "weak_category")
}

func TestEngine_Insights_QuestionTypeWeakness(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	// Ten short answers, three correct; nine flashcard answers stay below
	// the minimum sample size.
	var answers []store.AnswerWithType
	for i := 0; i < 10; i++ {
		answers = append(answers, store.AnswerWithType{
			QuestionID:   int64(i),
			QuestionType: store.QuestionTypeShort,
			IsCorrect:    i < 3,
		})
	}
	for i := 0; i < 9; i++ {
		answers = append(answers, store.AnswerWithType{
			QuestionID:   int64(100 + i),
			QuestionType: store.QuestionTypeFlashcard,
			IsCorrect:    false,
		})
	}

	engine := newEngine(t, nil, nil, nil, answers, now)

	got, err := engine.Insights(context.Background())
	require.NoError(t, err)

	var weaknesses []Insight
	for _, insight := range got {
		if insight.Type == "question_type_weakness" {
			weaknesses = append(weaknesses, insight)
		}
	}
	require.Len(t, weaknesses, 1)
	assert.Equal(t, PriorityInfo, weaknesses[0].Priority)
	assert.Contains(t, weaknesses[0].Message, "short")
}

func TestEngine_Insights_ConsistencyAndStreak(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	attemptOn := func(id int64, daysAgo int) store.QuizAttempt {
		return store.QuizAttempt{ID: id, Score: 70, AttemptedAt: now.AddDate(0, 0, -daysAgo)}
	}

	t.Run("five active days is high consistency and a streak", func(t *testing.T) {
		attempts := []store.QuizAttempt{
			attemptOn(1, 0), attemptOn(2, 1), attemptOn(3, 2), attemptOn(4, 3), attemptOn(5, 4),
		}
		engine := newEngine(t, nil, nil, attempts, nil, now)

		got, err := engine.Insights(context.Background())
		require.NoError(t, err)

		consistency := findInsight(t, got, "consistency")
		assert.Equal(t, PriorityPositive, consistency.Priority)

		streak := findInsight(t, got, "study_streak")
		require.NotNil(t, streak.Metric)
		assert.Equal(t, 5.0, *streak.Metric)
	})

	t.Run("quiet today does not break the streak", func(t *testing.T) {
		attempts := []store.QuizAttempt{
			attemptOn(1, 1), attemptOn(2, 2), attemptOn(3, 3),
		}
		engine := newEngine(t, nil, nil, attempts, nil, now)

		got, err := engine.Insights(context.Background())
		require.NoError(t, err)

		streak := findInsight(t, got, "study_streak")
		require.NotNil(t, streak.Metric)
		assert.Equal(t, 3.0, *streak.Metric)
	})

	t.Run("two active days warns about low consistency", func(t *testing.T) {
		attempts := []store.QuizAttempt{
			attemptOn(1, 1), attemptOn(2, 5),
		}
		engine := newEngine(t, nil, nil, attempts, nil, now)

		got, err := engine.Insights(context.Background())
		require.NoError(t, err)

		consistency := findInsight(t, got, "consistency")
		assert.Equal(t, PriorityWarning, consistency.Priority)
	})

	t.Run("no attempts ever stays silent", func(t *testing.T) {
		engine := newEngine(t, nil, nil, nil, nil, now)

		got, err := engine.Insights(context.Background())
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestEngine_CategoryInsights(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, -1, 0)

	tests := []struct {
		name      string
		scores    []float64
		wantTypes []string
	}{
		{
			name:      "weak category",
			scores:    []float64{30, 40, 45},
			wantTypes: []string{"weak_category"},
		},
		{
			name:      "strong category",
			scores:    []float64{90, 85, 88},
			wantTypes: []string{"strong_category"},
		},
		{
			name:      "two attempts is below the minimum",
			scores:    []float64{90, 85},
			wantTypes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bookmarkRepo := mock_store.NewMockBookmarkRepository(ctrl)
			categoryRepo := mock_store.NewMockCategoryRepository(ctrl)
			attemptRepo := mock_store.NewMockAttemptRepository(ctrl)

			categoryRepo.EXPECT().Find(gomock.Any(), int64(1)).Return(store.Category{ID: 1, Name: "Databases"}, nil)
			bookmarkRepo.EXPECT().FindByCategory(gomock.Any(), int64(1)).Return([]store.Bookmark{{ID: 1}}, nil)

			attempts := make([]store.QuizAttempt, len(tt.scores))
			for i, score := range tt.scores {
				attempts[i] = store.QuizAttempt{ID: int64(i + 1), BookmarkID: 1, Score: score, AttemptedAt: old.AddDate(0, 0, i)}
			}
			attemptRepo.EXPECT().FindByBookmark(gomock.Any(), int64(1)).Return(attempts, nil)

			engine := NewEngine(bookmarkRepo, categoryRepo, attemptRepo, func() time.Time { return now })

			got, err := engine.CategoryInsights(context.Background(), 1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTypes, insightTypes(got))
		})
	}
}

func TestEngine_BookmarkInsights(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	old := now.AddDate(0, -1, 0)

	tests := []struct {
		name      string
		bookmark  store.Bookmark
		scores    []float64
		answers   []store.UserAnswer
		wantTypes []string
	}{
		{
			name:     "latest within ten points of average stays quiet",
			bookmark: store.Bookmark{ID: 7},
			// Average 66.67; 70 is within the margin.
			scores:    []float64{90, 40, 70},
			wantTypes: nil,
		},
		{
			name:      "latest well above average",
			bookmark:  store.Bookmark{ID: 7},
			scores:    []float64{40, 50, 90},
			wantTypes: []string{"score_trend"},
		},
		{
			name:      "latest well below average",
			bookmark:  store.Bookmark{ID: 7},
			scores:    []float64{90, 85, 40},
			wantTypes: []string{"score_trend"},
		},
		{
			name: "overdue review and weak question",
			bookmark: store.Bookmark{
				ID:             7,
				NextReviewAt:   ptrTime(now.AddDate(0, 0, -3)),
				LastReviewedAt: ptrTime(now.AddDate(0, 0, -8)),
			},
			answers: []store.UserAnswer{
				{QuestionID: 5, IsCorrect: false},
				{QuestionID: 5, IsCorrect: false},
				{QuestionID: 6, IsCorrect: true},
			},
			wantTypes: []string{"overdue_review", "weak_question"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			bookmarkRepo := mock_store.NewMockBookmarkRepository(ctrl)
			attemptRepo := mock_store.NewMockAttemptRepository(ctrl)

			bookmarkRepo.EXPECT().Find(gomock.Any(), int64(7)).Return(tt.bookmark, nil)

			attempts := make([]store.QuizAttempt, len(tt.scores))
			for i, score := range tt.scores {
				attempts[i] = store.QuizAttempt{ID: int64(i + 1), BookmarkID: 7, Score: score, AttemptedAt: old.AddDate(0, 0, i)}
			}
			attemptRepo.EXPECT().FindByBookmark(gomock.Any(), int64(7)).Return(attempts, nil)
			attemptRepo.EXPECT().FindAnswersByBookmark(gomock.Any(), int64(7)).Return(tt.answers, nil)

			engine := NewEngine(bookmarkRepo, nil, attemptRepo, func() time.Time { return now })

			got, err := engine.BookmarkInsights(context.Background(), 7)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTypes, insightTypes(got))
		})
	}
}
