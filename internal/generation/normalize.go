package generation

import (
	"strconv"
	"strings"

	"github.com/Gopirudra-hub/MindMark/internal/store"
)

// Rejected is a raw question that failed validation, kept with its reason so
// callers can log or surface what the provider got wrong.
type Rejected struct {
	Question RawQuestion
	Reason   string
}

// Normalize validates raw provider questions into the strict store shape.
// Malformed entries are quarantined, never silently coerced.
func Normalize(raw []RawQuestion) ([]*store.Question, []Rejected) {
	var questions []*store.Question
	var rejected []Rejected

	for _, r := range raw {
		question, reason := normalizeOne(r)
		if reason != "" {
			rejected = append(rejected, Rejected{Question: r, Reason: reason})
			continue
		}
		questions = append(questions, question)
	}
	return questions, rejected
}

func normalizeOne(r RawQuestion) (*store.Question, string) {
	questionType := store.QuestionType(strings.ToLower(strings.TrimSpace(r.Type)))
	if !questionType.Valid() {
		return nil, "unknown question type " + strconv.Quote(r.Type)
	}

	text := strings.TrimSpace(r.Question)
	if text == "" {
		return nil, "empty question text"
	}

	correctAnswer := strings.TrimSpace(r.CorrectAnswer)
	if correctAnswer == "" {
		return nil, "empty correct answer"
	}

	difficulty := store.Difficulty(strings.ToLower(strings.TrimSpace(r.Difficulty)))
	if !difficulty.Valid() {
		return nil, "unknown difficulty " + strconv.Quote(r.Difficulty)
	}

	var options store.StringList
	switch questionType {
	case store.QuestionTypeMCQ:
		for _, option := range r.Options {
			option = strings.TrimSpace(option)
			if option != "" {
				options = append(options, option)
			}
		}
		if len(options) < 2 {
			return nil, "multiple choice needs at least two options"
		}
		if !containsFold(options, correctAnswer) {
			return nil, "correct answer not among the options"
		}
	default:
		if len(r.Options) > 0 {
			return nil, "options on a non-multiple-choice question"
		}
	}

	question := &store.Question{
		Type:          questionType,
		Question:      text,
		Options:       options,
		CorrectAnswer: correctAnswer,
		Difficulty:    difficulty,
	}
	if explanation := strings.TrimSpace(r.Explanation); explanation != "" {
		question.Explanation = &explanation
	}
	return question, ""
}

func containsFold(options []string, answer string) bool {
	for _, option := range options {
		if strings.EqualFold(option, answer) {
			return true
		}
	}
	return false
}
