package quiz

import (
	"context"
	"fmt"
	"time"

	"github.com/Gopirudra-hub/MindMark/internal/review"
	"github.com/Gopirudra-hub/MindMark/internal/store"
)

// SubmittedAnswer is one answer within a quiz submission.
type SubmittedAnswer struct {
	QuestionID int64  `json:"questionId"`
	Answer     string `json:"answer"`
}

// QuestionResult is the graded outcome for a single question.
type QuestionResult struct {
	QuestionID    int64   `json:"questionId"`
	Correct       bool    `json:"correct"`
	CorrectAnswer string  `json:"correctAnswer"`
	Explanation   *string `json:"explanation,omitempty"`
}

// SubmissionResult summarizes a graded and recorded quiz attempt.
type SubmissionResult struct {
	AttemptID          int64            `json:"attemptId"`
	Score              float64          `json:"score"`
	CorrectCount       int              `json:"correctCount"`
	Total              int              `json:"total"`
	Skipped            int              `json:"skipped"`
	PerQuestionResults []QuestionResult `json:"perQuestionResults"`
	NextReviewAt       time.Time        `json:"nextReviewAt"`
}

// Service grades quiz submissions and records them atomically, together with
// the bookmark's updated review schedule.
type Service struct {
	bookmarks store.BookmarkRepository
	questions store.QuestionRepository
	attempts  store.AttemptRepository
	now       func() time.Time
}

func NewService(
	bookmarks store.BookmarkRepository,
	questions store.QuestionRepository,
	attempts store.AttemptRepository,
	now func() time.Time,
) *Service {
	return &Service{
		bookmarks: bookmarks,
		questions: questions,
		attempts:  attempts,
		now:       now,
	}
}

// SubmitAttempt grades the submitted answers against the bookmark's current
// questions, persists the attempt with its answers and the new review
// schedule in one transaction, and returns the per-question results.
//
// Answers referencing questions that no longer exist are skipped and counted,
// not failed: regeneration may have replaced the question set mid-session.
func (s *Service) SubmitAttempt(
	ctx context.Context,
	bookmarkID int64,
	answers []SubmittedAnswer,
	timeTakenSeconds int,
) (SubmissionResult, error) {
	if len(answers) == 0 {
		return SubmissionResult{}, fmt.Errorf("empty answer set: %w", store.ErrValidation)
	}

	if _, err := s.bookmarks.Find(ctx, bookmarkID); err != nil {
		return SubmissionResult{}, err
	}

	questions, err := s.questions.FindByBookmark(ctx, bookmarkID)
	if err != nil {
		return SubmissionResult{}, err
	}
	questionsByID := make(map[int64]store.Question, len(questions))
	for _, question := range questions {
		questionsByID[question.ID] = question
	}

	var (
		results     []QuestionResult
		userAnswers []*store.UserAnswer
		correct     int
		skipped     int
	)
	for _, submitted := range answers {
		question, ok := questionsByID[submitted.QuestionID]
		if !ok {
			skipped++
			continue
		}

		isCorrect := IsCorrect(question, submitted.Answer)
		if isCorrect {
			correct++
		}
		results = append(results, QuestionResult{
			QuestionID:    question.ID,
			Correct:       isCorrect,
			CorrectAnswer: question.CorrectAnswer,
			Explanation:   question.Explanation,
		})
		userAnswers = append(userAnswers, &store.UserAnswer{
			QuestionID: question.ID,
			Answer:     submitted.Answer,
			IsCorrect:  isCorrect,
		})
	}

	if len(userAnswers) == 0 {
		return SubmissionResult{}, fmt.Errorf("no submitted answer references an existing question: %w", store.ErrValidation)
	}

	total := len(userAnswers)
	score := 100 * float64(correct) / float64(total)

	now := s.now()
	nextReviewAt := review.NextReviewDate(score, now)

	attempt := &store.QuizAttempt{
		BookmarkID:       bookmarkID,
		Score:            score,
		TotalQuestions:   total,
		TimeTakenSeconds: timeTakenSeconds,
		AttemptedAt:      now,
	}
	if err := s.attempts.CreateWithAnswers(ctx, attempt, userAnswers, now, nextReviewAt); err != nil {
		return SubmissionResult{}, fmt.Errorf("record attempt: %w", err)
	}

	return SubmissionResult{
		AttemptID:          attempt.ID,
		Score:              score,
		CorrectCount:       correct,
		Total:              total,
		Skipped:            skipped,
		PerQuestionResults: results,
		NextReviewAt:       nextReviewAt,
	}, nil
}
