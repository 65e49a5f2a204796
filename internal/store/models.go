// Package store provides the content store: bookmarks, categories, tags,
// questions and quiz attempt history.
package store

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// QuestionType identifies how a question is asked and graded.
type QuestionType string

const (
	QuestionTypeMCQ       QuestionType = "mcq"
	QuestionTypeShort     QuestionType = "short"
	QuestionTypeScenario  QuestionType = "scenario"
	QuestionTypeFlashcard QuestionType = "flashcard"
)

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeShort, QuestionTypeScenario, QuestionTypeFlashcard:
		return true
	}
	return false
}

// Difficulty is the generation-time difficulty label of a question.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// Bookmark is a saved web reference, the unit of study.
// LastReviewedAt and NextReviewAt are nil until the first quiz attempt.
type Bookmark struct {
	ID             int64      `db:"id"`
	Title          string     `db:"title"`
	URL            string     `db:"url"`
	Content        *string    `db:"content"`
	CategoryID     *int64     `db:"category_id"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`
	NextReviewAt   *time.Time `db:"next_review_at"`
	CreatedAt      time.Time  `db:"created_at"`
}

type Category struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type Tag struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return data, nil
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan string list: unsupported type %T", src)
	}

	if err := json.Unmarshal(data, l); err != nil {
		return fmt.Errorf("unmarshal string list: %w", err)
	}
	return nil
}

// Question is immutable after generation; regeneration replaces the whole
// question set for a bookmark.
type Question struct {
	ID            int64        `db:"id"`
	BookmarkID    int64        `db:"bookmark_id"`
	Type          QuestionType `db:"type"`
	Question      string       `db:"question"`
	Options       StringList   `db:"options"`
	CorrectAnswer string       `db:"correct_answer"`
	Explanation   *string      `db:"explanation"`
	Difficulty    Difficulty   `db:"difficulty"`
	CreatedAt     time.Time    `db:"created_at"`
}

// QuizAttempt is one completed quiz session. Score is the percentage of
// graded answers that were correct; attempts are never mutated.
type QuizAttempt struct {
	ID               int64     `db:"id"`
	BookmarkID       int64     `db:"bookmark_id"`
	Score            float64   `db:"score"`
	TotalQuestions   int       `db:"total_questions"`
	TimeTakenSeconds int       `db:"time_taken_seconds"`
	AttemptedAt      time.Time `db:"attempted_at"`
}

type UserAnswer struct {
	ID         int64  `db:"id"`
	AttemptID  int64  `db:"attempt_id"`
	QuestionID int64  `db:"question_id"`
	Answer     string `db:"answer"`
	IsCorrect  bool   `db:"is_correct"`
}

// AnswerWithType is a user answer joined with its question's type, used for
// per-type correctness statistics.
type AnswerWithType struct {
	QuestionID   int64        `db:"question_id"`
	QuestionType QuestionType `db:"question_type"`
	IsCorrect    bool         `db:"is_correct"`
}
