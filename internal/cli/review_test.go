package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Gopirudra-hub/MindMark/internal/config"
	mock_store "github.com/Gopirudra-hub/MindMark/internal/mocks/store"
	"github.com/Gopirudra-hub/MindMark/internal/quiz"
	"github.com/Gopirudra-hub/MindMark/internal/review"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

func TestReviewCLI_Run(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	reviewsConfig := config.ReviewsConfig{DueLimit: 5, WeakLimit: 3, DailyCap: 5}

	bookmark := store.Bookmark{ID: 1, Title: "B-tree indexes", URL: "https://example.com/btree"}
	mcq := store.Question{
		ID:            10,
		BookmarkID:    1,
		Type:          store.QuestionTypeMCQ,
		Question:      "What determines B-tree fanout?",
		Options:       store.StringList{"Fixed at 2", "Page size"},
		CorrectAnswer: "Page size",
	}

	t.Run("answers a multiple choice question by option number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookmarks := mock_store.NewMockBookmarkRepository(ctrl)
		attempts := mock_store.NewMockAttemptRepository(ctrl)
		questions := mock_store.NewMockQuestionRepository(ctrl)

		bookmarks.EXPECT().ListDue(gomock.Any(), now, 5).Return([]store.Bookmark{bookmark}, nil)
		bookmarks.EXPECT().FindAll(gomock.Any()).Return([]store.Bookmark{bookmark}, nil)
		attempts.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
		// Once for the review set, once for grading.
		questions.EXPECT().FindByBookmark(gomock.Any(), int64(1)).
			Return([]store.Question{mcq}, nil).Times(2)
		bookmarks.EXPECT().Find(gomock.Any(), int64(1)).Return(bookmark, nil)
		attempts.EXPECT().CreateWithAnswers(gomock.Any(), gomock.Any(), gomock.Any(), now, gomock.Any()).
			DoAndReturn(func(_ context.Context, attempt *store.QuizAttempt, answers []*store.UserAnswer, _, nextReviewAt time.Time) error {
				assert.InDelta(t, 100.0, attempt.Score, 0.001)
				require.Len(t, answers, 1)
				assert.Equal(t, "Page size", answers[0].Answer)
				assert.True(t, answers[0].IsCorrect)
				assert.Equal(t, time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), nextReviewAt)
				attempt.ID = 42
				return nil
			})

		scheduler := review.NewScheduler(bookmarks, attempts, questions, reviewsConfig, clock)
		quizService := quiz.NewService(bookmarks, questions, attempts, clock)

		var out bytes.Buffer
		cli := NewReviewCLI(scheduler, quizService, strings.NewReader("2\n"), &out)
		require.NoError(t, cli.Run(context.Background()))

		assert.Contains(t, out.String(), "1 bookmarks to review today.")
		assert.Contains(t, out.String(), "What determines B-tree fanout?")
		assert.Contains(t, out.String(), "Correct!")
		assert.Contains(t, out.String(), "Next review: Sat, Mar 15 2025")
		assert.Contains(t, out.String(), "Review session complete.")
	})

	t.Run("shows the expected answer when wrong", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		explanation := "High fanout keeps the tree shallow"
		short := store.Question{
			ID:            11,
			BookmarkID:    1,
			Type:          store.QuestionTypeShort,
			Question:      "Why are B-trees shallow?",
			CorrectAnswer: "Because their fanout is large",
			Explanation:   &explanation,
		}

		bookmarks := mock_store.NewMockBookmarkRepository(ctrl)
		attempts := mock_store.NewMockAttemptRepository(ctrl)
		questions := mock_store.NewMockQuestionRepository(ctrl)

		bookmarks.EXPECT().ListDue(gomock.Any(), now, 5).Return([]store.Bookmark{bookmark}, nil)
		bookmarks.EXPECT().FindAll(gomock.Any()).Return([]store.Bookmark{bookmark}, nil)
		attempts.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
		questions.EXPECT().FindByBookmark(gomock.Any(), int64(1)).
			Return([]store.Question{short}, nil).Times(2)
		bookmarks.EXPECT().Find(gomock.Any(), int64(1)).Return(bookmark, nil)
		attempts.EXPECT().CreateWithAnswers(gomock.Any(), gomock.Any(), gomock.Any(), now, gomock.Any()).
			DoAndReturn(func(_ context.Context, attempt *store.QuizAttempt, answers []*store.UserAnswer, _, nextReviewAt time.Time) error {
				assert.InDelta(t, 0.0, attempt.Score, 0.001)
				// Failed reviews come back the next day.
				assert.Equal(t, time.Date(2025, 3, 11, 9, 0, 0, 0, time.UTC), nextReviewAt)
				attempt.ID = 43
				return nil
			})

		scheduler := review.NewScheduler(bookmarks, attempts, questions, reviewsConfig, clock)
		quizService := quiz.NewService(bookmarks, questions, attempts, clock)

		var out bytes.Buffer
		cli := NewReviewCLI(scheduler, quizService, strings.NewReader("no idea\n"), &out)
		require.NoError(t, cli.Run(context.Background()))

		assert.Contains(t, out.String(), "Incorrect")
		assert.Contains(t, out.String(), "Because their fanout is large")
		assert.Contains(t, out.String(), explanation)
	})

	t.Run("skips bookmarks without questions", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookmarks := mock_store.NewMockBookmarkRepository(ctrl)
		attempts := mock_store.NewMockAttemptRepository(ctrl)
		questions := mock_store.NewMockQuestionRepository(ctrl)

		bookmarks.EXPECT().ListDue(gomock.Any(), now, 5).Return([]store.Bookmark{bookmark}, nil)
		bookmarks.EXPECT().FindAll(gomock.Any()).Return([]store.Bookmark{bookmark}, nil)
		attempts.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
		questions.EXPECT().FindByBookmark(gomock.Any(), int64(1)).Return(nil, nil)

		scheduler := review.NewScheduler(bookmarks, attempts, questions, reviewsConfig, clock)
		quizService := quiz.NewService(bookmarks, questions, attempts, clock)

		var out bytes.Buffer
		cli := NewReviewCLI(scheduler, quizService, strings.NewReader(""), &out)
		require.NoError(t, cli.Run(context.Background()))

		assert.Contains(t, out.String(), "has no questions yet, skipping.")
	})

	t.Run("reports when nothing is due", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookmarks := mock_store.NewMockBookmarkRepository(ctrl)
		attempts := mock_store.NewMockAttemptRepository(ctrl)
		questions := mock_store.NewMockQuestionRepository(ctrl)

		bookmarks.EXPECT().ListDue(gomock.Any(), now, 5).Return(nil, nil)
		bookmarks.EXPECT().FindAll(gomock.Any()).Return(nil, nil)
		attempts.EXPECT().FindAll(gomock.Any()).Return(nil, nil)

		scheduler := review.NewScheduler(bookmarks, attempts, questions, reviewsConfig, clock)
		quizService := quiz.NewService(bookmarks, questions, attempts, clock)

		var out bytes.Buffer
		cli := NewReviewCLI(scheduler, quizService, strings.NewReader(""), &out)
		require.NoError(t, cli.Run(context.Background()))

		assert.Contains(t, out.String(), "Nothing to review today!")
	})
}
