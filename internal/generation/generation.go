// Package generation defines the question-generation collaborator boundary.
// Providers return loosely-typed questions; Normalize turns them into the
// strict store shape before anything enters the core.
package generation

import (
	"context"
)

//go:generate mockgen -source=generation.go -destination=../mocks/generation/mock_generation.go -package=mock_generation

// Client generates quiz questions from bookmark content.
type Client interface {
	GenerateQuestions(ctx context.Context, params GenerateQuestionsRequest) (GenerateQuestionsResponse, error)
	Close() error
}

// GenerateQuestionsRequest describes the content to generate questions for.
type GenerateQuestionsRequest struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	Content       string `json:"content"`
	QuestionCount int    `json:"question_count"`
}

// GenerateQuestionsResponse carries the provider's raw questions, before
// validation.
type GenerateQuestionsResponse struct {
	Questions []RawQuestion `json:"questions"`
}

// RawQuestion mirrors the provider's loosely-typed output. Fields may be
// missing or malformed; Normalize decides what survives.
type RawQuestion struct {
	Type          string   `json:"type"`
	Question      string   `json:"question"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
	Difficulty    string   `json:"difficulty"`
}
