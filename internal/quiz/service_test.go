package quiz

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_store "github.com/Gopirudra-hub/MindMark/internal/mocks/store"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

func TestService_SubmitAttempt(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	explanation := "Paris has been the capital since 987."

	questions := []store.Question{
		{
			ID:            1,
			BookmarkID:    7,
			Type:          store.QuestionTypeMCQ,
			Question:      "Capital of France?",
			Options:       store.StringList{"Paris", "Lyon", "Nice"},
			CorrectAnswer: "Paris",
			Explanation:   &explanation,
		},
		{
			ID:            2,
			BookmarkID:    7,
			Type:          store.QuestionTypeMCQ,
			Question:      "Capital of Japan?",
			Options:       store.StringList{"Kyoto", "Tokyo", "Osaka"},
			CorrectAnswer: "Tokyo",
		},
	}

	t.Run("grades, records and schedules in one call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookmarkRepo := mock_store.NewMockBookmarkRepository(ctrl)
		questionRepo := mock_store.NewMockQuestionRepository(ctrl)
		attemptRepo := mock_store.NewMockAttemptRepository(ctrl)

		bookmarkRepo.EXPECT().Find(gomock.Any(), int64(7)).Return(store.Bookmark{ID: 7}, nil)
		questionRepo.EXPECT().FindByBookmark(gomock.Any(), int64(7)).Return(questions, nil)

		// One of two correct: score 50, next review three days out at 09:00.
		wantNextReview := time.Date(2025, 3, 13, 9, 0, 0, 0, time.UTC)
		attemptRepo.EXPECT().
			CreateWithAnswers(gomock.Any(), gomock.Any(), gomock.Any(), now, wantNextReview).
			DoAndReturn(func(_ context.Context, attempt *store.QuizAttempt, answers []*store.UserAnswer, _, _ time.Time) error {
				assert.Equal(t, int64(7), attempt.BookmarkID)
				assert.Equal(t, 50.0, attempt.Score)
				assert.Equal(t, 2, attempt.TotalQuestions)
				assert.Equal(t, 95, attempt.TimeTakenSeconds)
				assert.Equal(t, now, attempt.AttemptedAt)
				require.Len(t, answers, 2)
				assert.True(t, answers[0].IsCorrect)
				assert.False(t, answers[1].IsCorrect)
				attempt.ID = 42
				return nil
			})

		service := NewService(bookmarkRepo, questionRepo, attemptRepo, func() time.Time { return now })

		result, err := service.SubmitAttempt(context.Background(), 7, []SubmittedAnswer{
			{QuestionID: 1, Answer: " paris "},
			{QuestionID: 2, Answer: "Kyoto"},
		}, 95)
		require.NoError(t, err)

		assert.Equal(t, int64(42), result.AttemptID)
		assert.Equal(t, 50.0, result.Score)
		assert.Equal(t, 1, result.CorrectCount)
		assert.Equal(t, 2, result.Total)
		assert.Equal(t, 0, result.Skipped)
		assert.Equal(t, wantNextReview, result.NextReviewAt)

		require.Len(t, result.PerQuestionResults, 2)
		assert.True(t, result.PerQuestionResults[0].Correct)
		assert.Equal(t, "Paris", result.PerQuestionResults[0].CorrectAnswer)
		assert.Equal(t, &explanation, result.PerQuestionResults[0].Explanation)
		assert.False(t, result.PerQuestionResults[1].Correct)
		assert.Equal(t, "Tokyo", result.PerQuestionResults[1].CorrectAnswer)
	})

	t.Run("answers for replaced questions are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookmarkRepo := mock_store.NewMockBookmarkRepository(ctrl)
		questionRepo := mock_store.NewMockQuestionRepository(ctrl)
		attemptRepo := mock_store.NewMockAttemptRepository(ctrl)

		bookmarkRepo.EXPECT().Find(gomock.Any(), int64(7)).Return(store.Bookmark{ID: 7}, nil)
		questionRepo.EXPECT().FindByBookmark(gomock.Any(), int64(7)).Return(questions, nil)
		attemptRepo.EXPECT().
			CreateWithAnswers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		service := NewService(bookmarkRepo, questionRepo, attemptRepo, func() time.Time { return now })

		result, err := service.SubmitAttempt(context.Background(), 7, []SubmittedAnswer{
			{QuestionID: 1, Answer: "Paris"},
			{QuestionID: 999, Answer: "stale"},
		}, 10)
		require.NoError(t, err)

		// The stale answer neither helps nor hurts the score.
		assert.Equal(t, 100.0, result.Score)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, 1, result.Skipped)
	})

	t.Run("empty submission", func(t *testing.T) {
		service := NewService(nil, nil, nil, func() time.Time { return now })

		_, err := service.SubmitAttempt(context.Background(), 7, nil, 0)
		assert.ErrorIs(t, err, store.ErrValidation)
	})

	t.Run("no answer references an existing question", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookmarkRepo := mock_store.NewMockBookmarkRepository(ctrl)
		questionRepo := mock_store.NewMockQuestionRepository(ctrl)

		bookmarkRepo.EXPECT().Find(gomock.Any(), int64(7)).Return(store.Bookmark{ID: 7}, nil)
		questionRepo.EXPECT().FindByBookmark(gomock.Any(), int64(7)).Return(questions, nil)

		service := NewService(bookmarkRepo, questionRepo, nil, func() time.Time { return now })

		_, err := service.SubmitAttempt(context.Background(), 7, []SubmittedAnswer{
			{QuestionID: 998, Answer: "a"},
			{QuestionID: 999, Answer: "b"},
		}, 0)
		assert.ErrorIs(t, err, store.ErrValidation)
	})

	t.Run("unknown bookmark", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookmarkRepo := mock_store.NewMockBookmarkRepository(ctrl)
		bookmarkRepo.EXPECT().Find(gomock.Any(), int64(7)).Return(store.Bookmark{}, store.ErrNotFound)

		service := NewService(bookmarkRepo, nil, nil, func() time.Time { return now })

		_, err := service.SubmitAttempt(context.Background(), 7, []SubmittedAnswer{
			{QuestionID: 1, Answer: "Paris"},
		}, 0)
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("storage failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		bookmarkRepo := mock_store.NewMockBookmarkRepository(ctrl)
		questionRepo := mock_store.NewMockQuestionRepository(ctrl)
		attemptRepo := mock_store.NewMockAttemptRepository(ctrl)

		bookmarkRepo.EXPECT().Find(gomock.Any(), int64(7)).Return(store.Bookmark{ID: 7}, nil)
		questionRepo.EXPECT().FindByBookmark(gomock.Any(), int64(7)).Return(questions, nil)
		attemptRepo.EXPECT().
			CreateWithAnswers(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("deadlock"))

		service := NewService(bookmarkRepo, questionRepo, attemptRepo, func() time.Time { return now })

		_, err := service.SubmitAttempt(context.Background(), 7, []SubmittedAnswer{
			{QuestionID: 1, Answer: "Paris"},
		}, 0)
		assert.ErrorContains(t, err, "record attempt")
	})
}
