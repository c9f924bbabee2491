package quizsession

// Score is the running tally of a session.
type Score struct {
	CorrectCount  int
	TotalAnswered int
	Percentage    int // round(correct/answered*100), 0 when nothing answered
}

// Review describes one incorrectly answered question for the review
// screen after a quiz.
type Review struct {
	QuestionID  string
	Prompt      string
	Topic       string
	UserChoice  string
	Answer      string
	Explanation string
}

// Summary is the final aggregate of a finished session. It is the only
// part of a session that ever leaves memory.
type Summary struct {
	SessionID string
	Topic     string
	Score     Score
	Asked     int // how many questions the session drew
	ByTopic   map[string]TopicScore
	Incorrect []Review
}
