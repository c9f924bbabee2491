package quizresult_test

import (
	"errors"
	"testing"

	"github.com/barprep/backend/internal/domain/quizresult"
	"github.com/barprep/backend/internal/domain/quizsession"
)

func TestFromSummary(t *testing.T) {
	summary := quizsession.Summary{
		SessionID: "s1",
		Topic:     "Contracts",
		Asked:     3,
		Score:     quizsession.Score{CorrectCount: 2, TotalAnswered: 3, Percentage: 67},
	}
	answers := map[string]quizsession.Answer{
		"q1": {QuestionID: "q1", Choice: "a", Correct: true},
		"q2": {QuestionID: "q2", Choice: "b", Correct: true},
		"q3": {QuestionID: "q3", Choice: "c", Correct: false},
	}

	r, err := quizresult.FromSummary("user-1", summary, answers, []string{"q1", "q2", "q3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.CorrectAnswers != 2 || r.TotalQuestions != 3 {
		t.Errorf("expected 2/3, got %d/%d", r.CorrectAnswers, r.TotalQuestions)
	}
	if r.Score != 67 {
		t.Errorf("expected score 67, got %d", r.Score)
	}
	if r.Topic != "Contracts" {
		t.Errorf("expected topic Contracts, got %q", r.Topic)
	}
	if r.CompletedAt.IsZero() {
		t.Error("expected completion timestamp")
	}

	decoded, err := r.DecodeAnswers()
	if err != nil {
		t.Fatalf("failed to decode answers: %v", err)
	}
	if decoded["q3"] != "c" {
		t.Errorf("expected stored choice c for q3, got %q", decoded["q3"])
	}
}

func TestFromSummary_EarlyExit(t *testing.T) {
	// Only 1 of the 3 drawn questions was answered before finishing.
	// The running percentage is 100 (1 of 1 answered), but the stored
	// score counts the abandoned questions as wrong.
	summary := quizsession.Summary{
		SessionID: "s1",
		Topic:     "all",
		Asked:     3,
		Score:     quizsession.Score{CorrectCount: 1, TotalAnswered: 1, Percentage: 100},
	}
	answers := map[string]quizsession.Answer{
		"q1": {QuestionID: "q1", Choice: "a", Correct: true},
	}

	r, err := quizresult.FromSummary("user-1", summary, answers, []string{"q1", "q2", "q3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.CorrectAnswers != 1 || r.TotalQuestions != 3 {
		t.Errorf("expected 1/3, got %d/%d", r.CorrectAnswers, r.TotalQuestions)
	}
	if r.Score != 33 {
		t.Errorf("expected score 33 for 1 of 3, got %d", r.Score)
	}
	if err := r.Validate(); err != nil {
		t.Errorf("record fails its own invariants: %v", err)
	}
}

func TestFromSummary_RequiresUser(t *testing.T) {
	_, err := quizresult.FromSummary("", quizsession.Summary{}, nil, nil)
	if !errors.Is(err, quizresult.ErrNoUser) {
		t.Errorf("expected ErrNoUser, got %v", err)
	}
}

func TestValidate_CountInvariant(t *testing.T) {
	r := &quizresult.QuizResult{
		UserID:         "u",
		TotalQuestions: 2,
		CorrectAnswers: 3,
	}
	if err := r.Validate(); err == nil {
		t.Error("expected error when correct exceeds total")
	}
}

func TestValidate_ScoreAgreesWithCounts(t *testing.T) {
	r := &quizresult.QuizResult{
		UserID:         "u",
		TotalQuestions: 3,
		CorrectAnswers: 1,
		Score:          100,
	}
	if err := r.Validate(); err == nil {
		t.Error("expected error when score disagrees with counts")
	}

	r.Score = 33
	if err := r.Validate(); err != nil {
		t.Errorf("expected consistent record to pass, got %v", err)
	}
}

func TestSummarize(t *testing.T) {
	results := []*quizresult.QuizResult{
		{TotalQuestions: 10, CorrectAnswers: 8, Score: 80},
		{TotalQuestions: 5, CorrectAnswers: 3, Score: 60},
	}

	s := quizresult.Summarize(results)

	if s.QuizzesTaken != 2 {
		t.Errorf("expected 2 quizzes, got %d", s.QuizzesTaken)
	}
	if s.QuestionsAnswered != 15 || s.CorrectAnswers != 11 {
		t.Errorf("expected 11/15, got %d/%d", s.CorrectAnswers, s.QuestionsAnswered)
	}
	if s.AverageScore != 70 {
		t.Errorf("expected average 70, got %d", s.AverageScore)
	}

	empty := quizresult.Summarize(nil)
	if empty.AverageScore != 0 || empty.QuizzesTaken != 0 {
		t.Errorf("expected zero summary for no results, got %+v", empty)
	}
}

func TestTopicStats_RecordAttempt(t *testing.T) {
	ts := quizresult.TopicStats{Topic: "Torts"}
	ts.RecordAttempt(true)
	ts.RecordAttempt(true)
	ts.RecordAttempt(false)

	if ts.Attempted != 3 || ts.Correct != 2 {
		t.Errorf("expected 2/3, got %d/%d", ts.Correct, ts.Attempted)
	}
	if ts.Accuracy != 67 {
		t.Errorf("expected accuracy 67, got %d", ts.Accuracy)
	}
}
