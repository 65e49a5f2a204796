package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Gopirudra-hub/MindMark/internal/database"
)

//go:generate mockgen -source=attempt_repository.go -destination=../mocks/store/mock_attempt_repository.go -package=mock_store

// AttemptRepository defines operations over quiz attempt history. Attempts
// and answers are append-only.
type AttemptRepository interface {
	FindAll(ctx context.Context) ([]QuizAttempt, error)
	FindByBookmark(ctx context.Context, bookmarkID int64) ([]QuizAttempt, error)
	FindSince(ctx context.Context, since time.Time) ([]QuizAttempt, error)
	// CreateWithAnswers persists the attempt, its answers and the bookmark's
	// updated review schedule in one transaction, so a partial submission can
	// never be observed.
	CreateWithAnswers(ctx context.Context, attempt *QuizAttempt, answers []*UserAnswer, lastReviewedAt, nextReviewAt time.Time) error
	FindAnswersByBookmark(ctx context.Context, bookmarkID int64) ([]UserAnswer, error)
	FindAnswersWithType(ctx context.Context) ([]AnswerWithType, error)
}

// DBAttemptRepository implements AttemptRepository using MySQL.
type DBAttemptRepository struct {
	db *sqlx.DB
}

func NewDBAttemptRepository(db *sqlx.DB) *DBAttemptRepository {
	return &DBAttemptRepository{db: db}
}

func (r *DBAttemptRepository) FindAll(ctx context.Context) ([]QuizAttempt, error) {
	var attempts []QuizAttempt
	err := r.db.SelectContext(ctx, &attempts,
		"SELECT * FROM quiz_attempts ORDER BY attempted_at, id")
	if err != nil {
		return nil, fmt.Errorf("load all attempts: %w", err)
	}
	return attempts, nil
}

func (r *DBAttemptRepository) FindByBookmark(ctx context.Context, bookmarkID int64) ([]QuizAttempt, error) {
	var attempts []QuizAttempt
	err := r.db.SelectContext(ctx, &attempts,
		"SELECT * FROM quiz_attempts WHERE bookmark_id = ? ORDER BY attempted_at, id", bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("load attempts for bookmark %d: %w", bookmarkID, err)
	}
	return attempts, nil
}

func (r *DBAttemptRepository) FindSince(ctx context.Context, since time.Time) ([]QuizAttempt, error) {
	var attempts []QuizAttempt
	err := r.db.SelectContext(ctx, &attempts,
		"SELECT * FROM quiz_attempts WHERE attempted_at >= ? ORDER BY attempted_at, id", since)
	if err != nil {
		return nil, fmt.Errorf("load attempts since %s: %w", since.Format(time.RFC3339), err)
	}
	return attempts, nil
}

func (r *DBAttemptRepository) CreateWithAnswers(
	ctx context.Context,
	attempt *QuizAttempt,
	answers []*UserAnswer,
	lastReviewedAt, nextReviewAt time.Time,
) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			"INSERT INTO quiz_attempts (bookmark_id, score, total_questions, time_taken_seconds, attempted_at) VALUES (?, ?, ?, ?, ?)",
			attempt.BookmarkID, attempt.Score, attempt.TotalQuestions, attempt.TimeTakenSeconds, attempt.AttemptedAt,
		)
		if err != nil {
			return fmt.Errorf("insert attempt: %w", err)
		}
		attemptID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("attempt insert id: %w", err)
		}
		attempt.ID = attemptID

		if len(answers) > 0 {
			columns := []string{"attempt_id", "question_id", "answer", "is_correct"}
			query := database.BuildMultiRowInsert("user_answers", columns, len(answers))

			var args []interface{}
			for _, a := range answers {
				a.AttemptID = attemptID
				args = append(args, attemptID, a.QuestionID, a.Answer, a.IsCorrect)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("insert answers: %w", err)
			}
		}

		_, err = tx.ExecContext(ctx,
			"UPDATE bookmarks SET last_reviewed_at = ?, next_review_at = ? WHERE id = ?",
			lastReviewedAt, nextReviewAt, attempt.BookmarkID,
		)
		if err != nil {
			return fmt.Errorf("update review schedule: %w", err)
		}
		return nil
	})
}

func (r *DBAttemptRepository) FindAnswersByBookmark(ctx context.Context, bookmarkID int64) ([]UserAnswer, error) {
	var answers []UserAnswer
	err := r.db.SelectContext(ctx, &answers,
		`SELECT ua.id, ua.attempt_id, ua.question_id, ua.answer, ua.is_correct
		FROM user_answers ua
		JOIN quiz_attempts qa ON qa.id = ua.attempt_id
		WHERE qa.bookmark_id = ?
		ORDER BY ua.id`, bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("load answers for bookmark %d: %w", bookmarkID, err)
	}
	return answers, nil
}

func (r *DBAttemptRepository) FindAnswersWithType(ctx context.Context) ([]AnswerWithType, error) {
	var answers []AnswerWithType
	err := r.db.SelectContext(ctx, &answers,
		`SELECT ua.question_id, q.type AS question_type, ua.is_correct
		FROM user_answers ua
		JOIN questions q ON q.id = ua.question_id
		ORDER BY ua.id`)
	if err != nil {
		return nil, fmt.Errorf("load answers with question types: %w", err)
	}
	return answers, nil
}
