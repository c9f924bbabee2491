package question

import (
	"errors"
	"slices"

	"github.com/barprep/backend/internal/id"
)

// TopicAll is the sentinel topic filter meaning "no filter".
const TopicAll = "all"

var (
	ErrEmptyPrompt        = errors.New("question prompt cannot be empty")
	ErrTooFewChoices      = errors.New("question needs at least two choices")
	ErrBlankChoice        = errors.New("choices cannot be blank")
	ErrDuplicateChoice    = errors.New("choices must be distinct")
	ErrAnswerNotInChoices = errors.New("answer must be one of the choices")
)

// Question is a single multiple-choice item. Immutable from the
// quiz-taker's perspective; only the admin surface creates or edits it.
type Question struct {
	ID          string
	Prompt      string
	Choices     []string
	Answer      string // always an element of Choices
	Explanation string // optional, shown during review
	Topic       string // optional free-text label, "" = untopiced
}

// New validates and builds a Question with a generated ID.
// The answer-in-choices rule is enforced here rather than left to the
// admin UI, so a malformed question can never reach a session.
func New(prompt string, choices []string, answer, explanation, topic string) (*Question, error) {
	q := &Question{
		ID:          id.New(),
		Prompt:      prompt,
		Choices:     choices,
		Answer:      answer,
		Explanation: explanation,
		Topic:       topic,
	}
	if err := q.Validate(); err != nil {
		return nil, err
	}
	return q, nil
}

// Validate checks the structural invariants of a question.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return ErrEmptyPrompt
	}
	if len(q.Choices) < 2 {
		return ErrTooFewChoices
	}
	seen := make(map[string]struct{}, len(q.Choices))
	for _, c := range q.Choices {
		if c == "" {
			return ErrBlankChoice
		}
		if _, dup := seen[c]; dup {
			return ErrDuplicateChoice
		}
		seen[c] = struct{}{}
	}
	if !slices.Contains(q.Choices, q.Answer) {
		return ErrAnswerNotInChoices
	}
	return nil
}

// MatchesTopic reports whether the question passes the given filter.
// An empty filter or TopicAll matches every question.
func (q *Question) MatchesTopic(filter string) bool {
	if filter == "" || filter == TopicAll {
		return true
	}
	return q.Topic == filter
}

// IsCorrect reports whether the given choice is the correct answer.
func (q *Question) IsCorrect(choice string) bool {
	return choice == q.Answer
}
