package question_test

import (
	"errors"
	"testing"

	"github.com/barprep/backend/internal/domain/question"
)

func TestNew(t *testing.T) {
	q, err := question.New(
		"Consideration is best described as:",
		[]string{"A gift promise", "Bargained-for legal detriment"},
		"Bargained-for legal detriment",
		"Consideration requires a bargained-for exchange.",
		"Contracts",
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == "" {
		t.Error("expected a generated ID")
	}
	if !q.IsCorrect("Bargained-for legal detriment") {
		t.Error("expected answer to match")
	}
	if q.IsCorrect("A gift promise") {
		t.Error("expected wrong choice to be incorrect")
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		choices []string
		answer  string
		wantErr error
	}{
		{
			name:    "empty prompt",
			choices: []string{"a", "b"},
			answer:  "a",
			wantErr: question.ErrEmptyPrompt,
		},
		{
			name:    "single choice",
			prompt:  "p",
			choices: []string{"a"},
			answer:  "a",
			wantErr: question.ErrTooFewChoices,
		},
		{
			name:    "blank choice",
			prompt:  "p",
			choices: []string{"a", ""},
			answer:  "a",
			wantErr: question.ErrBlankChoice,
		},
		{
			name:    "duplicate choice",
			prompt:  "p",
			choices: []string{"a", "a"},
			answer:  "a",
			wantErr: question.ErrDuplicateChoice,
		},
		{
			name:    "answer not a choice",
			prompt:  "p",
			choices: []string{"a", "b"},
			answer:  "c",
			wantErr: question.ErrAnswerNotInChoices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := question.New(tt.prompt, tt.choices, tt.answer, "", "")
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMatchesTopic(t *testing.T) {
	q, err := question.New("p", []string{"a", "b"}, "a", "", "Contracts")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !q.MatchesTopic("") || !q.MatchesTopic(question.TopicAll) {
		t.Error("expected empty and 'all' filters to match everything")
	}
	if !q.MatchesTopic("Contracts") {
		t.Error("expected matching topic to pass")
	}
	if q.MatchesTopic("Torts") {
		t.Error("expected non-matching topic to fail")
	}
}
