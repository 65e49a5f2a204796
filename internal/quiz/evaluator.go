// Package quiz grades submitted answers and records quiz attempts.
package quiz

import (
	"strings"

	"github.com/Gopirudra-hub/MindMark/internal/store"
)

// keyTermMinLength is the smallest token length (exclusive) that counts as a
// key term when matching free-form answers.
const keyTermMinLength = 3

// keyTermMatchThreshold is the fraction of key terms that must match for a
// short or scenario answer to be correct.
const keyTermMatchThreshold = 0.5

// IsCorrect reports whether the submitted answer is correct for the question.
// Pure and deterministic; grading depends only on the question type, its
// correct answer and the submitted text.
func IsCorrect(question store.Question, submitted string) bool {
	switch question.Type {
	case store.QuestionTypeMCQ:
		return matchExact(question.CorrectAnswer, submitted)
	case store.QuestionTypeShort, store.QuestionTypeScenario:
		return matchKeyTerms(question.CorrectAnswer, submitted)
	case store.QuestionTypeFlashcard:
		return matchContainment(question.CorrectAnswer, submitted)
	}
	return false
}

// matchExact compares answers case-insensitively, ignoring surrounding
// whitespace.
func matchExact(correct, submitted string) bool {
	return strings.EqualFold(strings.TrimSpace(correct), strings.TrimSpace(submitted))
}

// matchKeyTerms tokenizes the correct answer, keeps tokens longer than three
// characters as key terms and counts a term as matched when it contains or is
// contained by any submitted token. Correct when at least half the key terms
// match. An answer with no key terms never matches.
func matchKeyTerms(correct, submitted string) bool {
	keyTerms := keyTerms(correct)
	if len(keyTerms) == 0 {
		return false
	}

	submittedTokens := strings.Fields(normalize(submitted))

	matched := 0
	for _, term := range keyTerms {
		for _, token := range submittedTokens {
			if strings.Contains(token, term) || strings.Contains(term, token) {
				matched++
				break
			}
		}
	}

	return float64(matched)/float64(len(keyTerms)) >= keyTermMatchThreshold
}

// matchContainment is the lenient flashcard rule: correct when either answer
// contains the other after trimming and lowercasing.
func matchContainment(correct, submitted string) bool {
	c := normalize(correct)
	s := normalize(submitted)
	if c == "" || s == "" {
		return c == s
	}
	return strings.Contains(c, s) || strings.Contains(s, c)
}

func keyTerms(correct string) []string {
	var terms []string
	for _, token := range strings.Fields(normalize(correct)) {
		if len(token) > keyTermMinLength {
			terms = append(terms, token)
		}
	}
	return terms
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
