package quizresult

import "math"

// TopicStats tracks a user's accuracy in one topic across their
// persisted results.
type TopicStats struct {
	Topic     string
	Attempted int
	Correct   int
	Accuracy  int // 0-100
}

// RecordAttempt folds one answered question into the tally.
func (ts *TopicStats) RecordAttempt(correct bool) {
	ts.Attempted++
	if correct {
		ts.Correct++
	}
	ts.Accuracy = accuracy(ts.Correct, ts.Attempted)
}

// HistorySummary aggregates a user's result history for the dashboard.
type HistorySummary struct {
	QuizzesTaken      int
	QuestionsAnswered int
	CorrectAnswers    int
	AverageScore      int // mean of per-quiz scores, rounded
}

// Summarize computes the history aggregate from a list of results.
func Summarize(results []*QuizResult) HistorySummary {
	s := HistorySummary{QuizzesTaken: len(results)}
	scoreSum := 0
	for _, r := range results {
		s.QuestionsAnswered += r.TotalQuestions
		s.CorrectAnswers += r.CorrectAnswers
		scoreSum += r.Score
	}
	if len(results) > 0 {
		s.AverageScore = int(math.Round(float64(scoreSum) / float64(len(results))))
	}
	return s
}

func accuracy(correct, attempted int) int {
	if attempted == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(attempted) * 100))
}
