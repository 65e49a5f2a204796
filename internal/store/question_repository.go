package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/Gopirudra-hub/MindMark/internal/database"
)

//go:generate mockgen -source=question_repository.go -destination=../mocks/store/mock_question_repository.go -package=mock_store

// QuestionRepository defines operations for managing generated questions.
type QuestionRepository interface {
	Find(ctx context.Context, id int64) (Question, error)
	FindByBookmark(ctx context.Context, bookmarkID int64) ([]Question, error)
	// ReplaceForBookmark deletes the bookmark's current question set and
	// inserts the given one in a single transaction. Questions are otherwise
	// immutable.
	ReplaceForBookmark(ctx context.Context, bookmarkID int64, questions []*Question) error
}

// DBQuestionRepository implements QuestionRepository using MySQL.
type DBQuestionRepository struct {
	db *sqlx.DB
}

func NewDBQuestionRepository(db *sqlx.DB) *DBQuestionRepository {
	return &DBQuestionRepository{db: db}
}

func (r *DBQuestionRepository) Find(ctx context.Context, id int64) (Question, error) {
	var question Question
	err := r.db.GetContext(ctx, &question, "SELECT * FROM questions WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return Question{}, fmt.Errorf("question %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return Question{}, fmt.Errorf("load question %d: %w", id, err)
	}
	return question, nil
}

func (r *DBQuestionRepository) FindByBookmark(ctx context.Context, bookmarkID int64) ([]Question, error) {
	var questions []Question
	err := r.db.SelectContext(ctx, &questions,
		"SELECT * FROM questions WHERE bookmark_id = ? ORDER BY id", bookmarkID)
	if err != nil {
		return nil, fmt.Errorf("load questions for bookmark %d: %w", bookmarkID, err)
	}
	return questions, nil
}

func (r *DBQuestionRepository) ReplaceForBookmark(ctx context.Context, bookmarkID int64, questions []*Question) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM questions WHERE bookmark_id = ?", bookmarkID); err != nil {
			return fmt.Errorf("delete questions for bookmark %d: %w", bookmarkID, err)
		}
		if len(questions) == 0 {
			return nil
		}

		columns := []string{"bookmark_id", "type", "question", "options", "correct_answer", "explanation", "difficulty"}
		query := database.BuildMultiRowInsert("questions", columns, len(questions))

		var args []interface{}
		for _, q := range questions {
			args = append(args, bookmarkID, q.Type, q.Question, q.Options, q.CorrectAnswer, q.Explanation, q.Difficulty)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert questions for bookmark %d: %w", bookmarkID, err)
		}
		return nil
	})
}
