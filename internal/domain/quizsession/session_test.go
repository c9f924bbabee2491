package quizsession_test

import (
	"testing"

	"github.com/barprep/backend/internal/domain/question"
	"github.com/barprep/backend/internal/domain/quizsession"
)

func makeQuestions(t *testing.T, topics ...string) []question.Question {
	t.Helper()
	questions := make([]question.Question, len(topics))
	for i, topic := range topics {
		q, err := question.New(
			"Question "+string(rune('A'+i)),
			[]string{"right", "wrong one", "wrong two"},
			"right",
			"Explanation "+string(rune('A'+i)),
			topic,
		)
		if err != nil {
			t.Fatalf("failed to build question: %v", err)
		}
		questions[i] = *q
	}
	return questions
}

func mustStart(t *testing.T, all []question.Question, topic string, count int) *quizsession.Session {
	t.Helper()
	s, err := quizsession.New(all, topic, count, "")
	if err != nil {
		t.Fatalf("unexpected error starting session: %v", err)
	}
	return s
}

func TestNew_EmptyFilteredSet(t *testing.T) {
	all := makeQuestions(t, "Contracts", "Contracts")

	_, err := quizsession.New(all, "Torts", 10, "")
	if err != quizsession.ErrNoQuestions {
		t.Errorf("expected ErrNoQuestions, got %v", err)
	}

	_, err = quizsession.New(nil, "all", 10, "")
	if err != quizsession.ErrNoQuestions {
		t.Errorf("expected ErrNoQuestions for empty input, got %v", err)
	}
}

func TestNew_SubsetPermutation(t *testing.T) {
	all := makeQuestions(t, "A", "B", "C", "D", "E", "F", "G", "H")

	session := mustStart(t, all, "all", 5)

	if len(session.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(session.Questions))
	}

	// Every drawn question comes from the input, and none repeats.
	inputIDs := make(map[string]bool, len(all))
	for _, q := range all {
		inputIDs[q.ID] = true
	}
	seen := make(map[string]bool)
	for _, q := range session.Questions {
		if !inputIDs[q.ID] {
			t.Errorf("question %s not in input set", q.ID)
		}
		if seen[q.ID] {
			t.Errorf("question %s drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestNew_CountExceedsAvailable(t *testing.T) {
	all := makeQuestions(t, "A", "B", "C")

	session := mustStart(t, all, "all", 10)

	if len(session.Questions) != 3 {
		t.Errorf("expected all 3 available questions, got %d", len(session.Questions))
	}
}

func TestNew_Randomizes(t *testing.T) {
	all := makeQuestions(t,
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J",
		"K", "L", "M", "N", "O", "P", "Q", "R", "S", "T")

	first := mustStart(t, all, "all", 0)
	foundDifferentOrder := false
	for i := 0; i < 10; i++ {
		next := mustStart(t, all, "all", 0)
		if !sameOrder(first.Questions, next.Questions) {
			foundDifferentOrder = true
			break
		}
	}
	if !foundDifferentOrder {
		t.Error("expected question order to vary across sessions")
	}
}

func TestNew_TopicFilterScenario(t *testing.T) {
	// 10 questions, 4 of them Contracts, count 10 -> exactly the 4.
	all := makeQuestions(t,
		"Contracts", "Torts", "Contracts", "Evidence", "Torts",
		"Contracts", "Evidence", "Contracts", "Torts", "Evidence")

	session := mustStart(t, all, "Contracts", 10)

	if len(session.Questions) != 4 {
		t.Fatalf("expected 4 questions, got %d", len(session.Questions))
	}
	for _, q := range session.Questions {
		if q.Topic != "Contracts" {
			t.Errorf("expected topic Contracts, got %q", q.Topic)
		}
	}
	if session.Topic != "Contracts" {
		t.Errorf("expected session topic Contracts, got %q", session.Topic)
	}
}

func TestSelectChoice_LocksFirstAnswer(t *testing.T) {
	all := makeQuestions(t, "A")
	session := mustStart(t, all, "all", 0)
	qid := session.Questions[0].ID

	if !session.SelectChoice(qid, "wrong one") {
		t.Fatal("expected first selection to be recorded")
	}
	if session.SelectChoice(qid, "right") {
		t.Error("expected re-selection to be rejected")
	}

	ans := session.Answers()[qid]
	if ans.Choice != "wrong one" {
		t.Errorf("expected first choice to stick, got %q", ans.Choice)
	}
	if ans.Correct {
		t.Error("expected locked answer to stay incorrect")
	}
}

func TestSelectChoice_UnknownQuestion(t *testing.T) {
	all := makeQuestions(t, "A")
	session := mustStart(t, all, "all", 0)

	if session.SelectChoice("not-a-question", "right") {
		t.Error("expected unknown question to be a no-op")
	}
	if len(session.Answers()) != 0 {
		t.Error("expected no answer recorded for unknown question")
	}
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	all := makeQuestions(t, "A", "B")
	session := mustStart(t, all, "all", 0)

	if session.Advance() {
		t.Error("expected advance on unanswered question to be rejected")
	}
	if session.Cursor() != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", session.Cursor())
	}

	current, _ := session.Current()
	session.SelectChoice(current.ID, "right")
	if !session.Advance() {
		t.Error("expected advance after answering")
	}
	if session.Cursor() != 1 {
		t.Errorf("expected cursor 1, got %d", session.Cursor())
	}
}

func TestAdvance_LastQuestionFinishes(t *testing.T) {
	all := makeQuestions(t, "A")
	session := mustStart(t, all, "all", 0)

	current, _ := session.Current()
	session.SelectChoice(current.ID, "right")

	if !session.Advance() {
		t.Fatal("expected advance on last question to finish the session")
	}
	if !session.Finished() {
		t.Error("expected session to be finished")
	}
	if session.Advance() {
		t.Error("expected advance on finished session to be rejected")
	}
}

func TestScore_EmptyAndRounding(t *testing.T) {
	all := makeQuestions(t, "A", "B", "C")
	session := mustStart(t, all, "all", 0)

	score := session.Score()
	if score.Percentage != 0 || score.TotalAnswered != 0 {
		t.Errorf("expected zero score before answering, got %+v", score)
	}

	// 1 of 3 correct -> round(33.33) = 33, 2 of 3 -> round(66.67) = 67.
	session.SelectChoice(session.Questions[0].ID, "right")
	session.SelectChoice(session.Questions[1].ID, "wrong one")
	session.SelectChoice(session.Questions[2].ID, "wrong two")
	if got := session.Score().Percentage; got != 33 {
		t.Errorf("expected 33%%, got %d%%", got)
	}
}

func TestFinish_ThreeOfFiveScenario(t *testing.T) {
	all := makeQuestions(t, "Contracts", "Contracts", "Torts", "Torts", "Evidence")
	session := mustStart(t, all, "all", 0)

	// Answer 3 correctly, 2 incorrectly.
	for i, q := range session.Questions {
		choice := "right"
		if i >= 3 {
			choice = "wrong one"
		}
		session.SelectChoice(q.ID, choice)
	}

	summary := session.Finish()

	if summary.Score.CorrectCount != 3 || summary.Score.TotalAnswered != 5 {
		t.Errorf("expected 3/5, got %d/%d", summary.Score.CorrectCount, summary.Score.TotalAnswered)
	}
	if summary.Score.Percentage != 60 {
		t.Errorf("expected 60%%, got %d%%", summary.Score.Percentage)
	}
	if len(summary.Incorrect) != 2 {
		t.Fatalf("expected 2 incorrect reviews, got %d", len(summary.Incorrect))
	}
	for _, rev := range summary.Incorrect {
		if rev.UserChoice != "wrong one" {
			t.Errorf("expected user choice recorded, got %q", rev.UserChoice)
		}
		if rev.Answer != "right" {
			t.Errorf("expected correct answer in review, got %q", rev.Answer)
		}
		if rev.Explanation == "" {
			t.Error("expected explanation in review")
		}
	}

	// Per-topic totals sum back to the overall count.
	total := 0
	for _, ts := range summary.ByTopic {
		total += ts.Total
	}
	if total != 5 {
		t.Errorf("expected topic totals to sum to 5, got %d", total)
	}
}

func TestFinish_Idempotent(t *testing.T) {
	all := makeQuestions(t, "A", "B")
	session := mustStart(t, all, "all", 0)
	session.SelectChoice(session.Questions[0].ID, "right")

	first := session.Finish()
	second := session.Finish()

	if first.Score != second.Score {
		t.Errorf("expected identical scores, got %+v and %+v", first.Score, second.Score)
	}
	if len(first.Incorrect) != len(second.Incorrect) {
		t.Error("expected identical review lists")
	}
	if !session.Finished() {
		t.Error("expected session to stay finished")
	}
}

func TestFinish_EarlyExit(t *testing.T) {
	all := makeQuestions(t, "A", "B", "C")
	session := mustStart(t, all, "all", 0)
	session.SelectChoice(session.Questions[0].ID, "right")

	summary := session.Finish()

	if summary.Asked != 3 {
		t.Errorf("expected 3 asked, got %d", summary.Asked)
	}
	if summary.Score.TotalAnswered != 1 {
		t.Errorf("expected 1 answered, got %d", summary.Score.TotalAnswered)
	}
	if summary.Score.Percentage != 100 {
		t.Errorf("expected 100%% of answered, got %d%%", summary.Score.Percentage)
	}
	if session.SelectChoice(session.Questions[1].ID, "right") {
		t.Error("expected answering after finish to be rejected")
	}
}

func sameOrder(a, b []question.Question) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}
