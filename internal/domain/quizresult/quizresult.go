package quizresult

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/barprep/backend/internal/domain/quizsession"
	"github.com/barprep/backend/internal/id"
)

var (
	ErrNoUser = errors.New("result requires an owning user")
)

// QuizResult is the persisted, immutable record of one completed quiz
// attempt. Created exactly once at submission and never updated.
type QuizResult struct {
	ID             string
	UserID         string
	Topic          string // filter used, "all" when unfiltered
	TotalQuestions int
	CorrectAnswers int
	Score          int // round(correct/total*100)
	QuestionIDs    []string
	UserAnswers    string // JSON-encoded map of questionID -> chosen option
	CompletedAt    time.Time
}

// FromSummary builds a QuizResult from a finished session's summary.
// The correct count is taken from the answer map itself, and the score
// is recomputed over every question drawn, so an early exit counts its
// unanswered questions as wrong and the stored fields always agree.
func FromSummary(userID string, summary quizsession.Summary, answers map[string]quizsession.Answer, questionIDs []string) (*QuizResult, error) {
	if userID == "" {
		return nil, ErrNoUser
	}

	choices := make(map[string]string, len(answers))
	correct := 0
	for qid, ans := range answers {
		choices[qid] = ans.Choice
		if ans.Correct {
			correct++
		}
	}
	encoded, err := json.Marshal(choices)
	if err != nil {
		return nil, fmt.Errorf("encode answers: %w", err)
	}

	r := &QuizResult{
		ID:             id.New(),
		UserID:         userID,
		Topic:          summary.Topic,
		TotalQuestions: summary.Asked,
		CorrectAnswers: correct,
		Score:          scoreFor(correct, summary.Asked),
		QuestionIDs:    questionIDs,
		UserAnswers:    string(encoded),
		CompletedAt:    time.Now().UTC(),
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks the count/score invariants of a result record.
func (r *QuizResult) Validate() error {
	if r.UserID == "" {
		return ErrNoUser
	}
	if r.CorrectAnswers > r.TotalQuestions {
		return fmt.Errorf("correct answers (%d) exceed total questions (%d)", r.CorrectAnswers, r.TotalQuestions)
	}
	if r.TotalQuestions < 0 || r.CorrectAnswers < 0 {
		return errors.New("counts cannot be negative")
	}
	if r.Score != scoreFor(r.CorrectAnswers, r.TotalQuestions) {
		return fmt.Errorf("score %d disagrees with %d/%d correct", r.Score, r.CorrectAnswers, r.TotalQuestions)
	}
	return nil
}

func scoreFor(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}

// DecodeAnswers unpacks the stored questionID -> choice map.
func (r *QuizResult) DecodeAnswers() (map[string]string, error) {
	out := make(map[string]string)
	if r.UserAnswers == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(r.UserAnswers), &out); err != nil {
		return nil, fmt.Errorf("decode answers: %w", err)
	}
	return out, nil
}
