package quizsession

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/barprep/backend/internal/domain/question"
	"github.com/barprep/backend/internal/id"
)

var (
	// ErrNoQuestions means the topic filter matched nothing; the caller
	// turns this into a user-facing message, no session is created.
	ErrNoQuestions = errors.New("no questions match the requested topic")
)

// Answer records the user's selection for one question. Created the
// instant a choice is picked and never mutated afterwards.
type Answer struct {
	QuestionID string
	Choice     string
	Correct    bool
}

// TopicScore is a per-topic running tally.
type TopicScore struct {
	Correct int
	Total   int
}

// Session is one in-progress quiz attempt. It lives entirely in memory
// and is discarded when the user starts over; only the final summary is
// ever persisted.
type Session struct {
	ID        string
	UserID    string // "" for anonymous quiz-takers
	Topic     string // filter used at start, question.TopicAll for none
	Questions []question.Question
	CreatedAt time.Time

	answers  map[string]Answer
	byTopic  map[string]*TopicScore
	correct  int
	cursor   int
	finished bool

	// Set once the summary has been persisted, so a retried finish
	// cannot write a second result record.
	ResultID string
}

// New selects the subset of allQuestions matching topicFilter, shuffles
// it uniformly, and truncates to count (count <= 0 means everything
// available). Returns ErrNoQuestions when the filtered set is empty.
func New(allQuestions []question.Question, topicFilter string, count int, userID string) (*Session, error) {
	var eligible []question.Question
	for _, q := range allQuestions {
		if q.MatchesTopic(topicFilter) {
			eligible = append(eligible, q)
		}
	}
	if len(eligible) == 0 {
		return nil, ErrNoQuestions
	}

	shuffled := make([]question.Question, len(eligible))
	copy(shuffled, eligible)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if count > 0 && count < len(shuffled) {
		shuffled = shuffled[:count]
	}

	topic := topicFilter
	if topic == "" {
		topic = question.TopicAll
	}

	return &Session{
		ID:        id.New(),
		UserID:    userID,
		Topic:     topic,
		Questions: shuffled,
		CreatedAt: time.Now().UTC(),
		answers:   make(map[string]Answer),
		byTopic:   make(map[string]*TopicScore),
	}, nil
}

// Current returns the question at the cursor. The second return is
// false once the session is finished.
func (s *Session) Current() (question.Question, bool) {
	if s.finished || s.cursor >= len(s.Questions) {
		return question.Question{}, false
	}
	return s.Questions[s.cursor], true
}

// Cursor returns the zero-based index of the current question.
func (s *Session) Cursor() int { return s.cursor }

// Finished reports whether the session has been completed.
func (s *Session) Finished() bool { return s.finished }

// Answers returns a copy of the recorded answers keyed by question ID.
func (s *Session) Answers() map[string]Answer {
	out := make(map[string]Answer, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

// SelectChoice records the user's choice for a question. The first
// recorded answer wins: re-selection is a silent no-op, as is a
// question ID that is not part of this session. Returns true only when
// a new answer was recorded.
func (s *Session) SelectChoice(questionID, choice string) bool {
	if s.finished {
		return false
	}
	if _, locked := s.answers[questionID]; locked {
		return false
	}
	q, ok := s.Question(questionID)
	if !ok {
		return false
	}

	ans := Answer{
		QuestionID: questionID,
		Choice:     choice,
		Correct:    q.IsCorrect(choice),
	}
	s.answers[questionID] = ans

	ts, ok := s.byTopic[q.Topic]
	if !ok {
		ts = &TopicScore{}
		s.byTopic[q.Topic] = ts
	}
	ts.Total++
	if ans.Correct {
		ts.Correct++
		s.correct++
	}
	return true
}

// Advance moves the cursor to the next question, or marks the session
// finished when the cursor is already on the last one. Advancing past
// an unanswered question is rejected regardless of what the UI allows.
// Returns true when the session state changed.
func (s *Session) Advance() bool {
	if s.finished {
		return false
	}
	current, ok := s.Current()
	if !ok {
		return false
	}
	if _, answered := s.answers[current.ID]; !answered {
		return false
	}
	if s.cursor >= len(s.Questions)-1 {
		s.finished = true
		return true
	}
	s.cursor++
	return true
}

// Score returns the running tally. Safe to call at any point;
// percentage is 0 when nothing has been answered yet.
func (s *Session) Score() Score {
	return Score{
		CorrectCount:  s.correct,
		TotalAnswered: len(s.answers),
		Percentage:    percentage(s.correct, len(s.answers)),
	}
}

// Finish marks the session finished (early exit included) and computes
// the final aggregate. Idempotent: calling it again yields the same
// summary.
func (s *Session) Finish() Summary {
	s.finished = true

	byTopic := make(map[string]TopicScore, len(s.byTopic))
	for topic, ts := range s.byTopic {
		byTopic[topic] = *ts
	}

	var incorrect []Review
	for _, q := range s.Questions {
		ans, answered := s.answers[q.ID]
		if !answered || ans.Correct {
			continue
		}
		incorrect = append(incorrect, Review{
			QuestionID:  q.ID,
			Prompt:      q.Prompt,
			Topic:       q.Topic,
			UserChoice:  ans.Choice,
			Answer:      q.Answer,
			Explanation: q.Explanation,
		})
	}

	return Summary{
		SessionID: s.ID,
		Topic:     s.Topic,
		Score:     s.Score(),
		Asked:     len(s.Questions),
		ByTopic:   byTopic,
		Incorrect: incorrect,
	}
}

// Question looks up a drawn question by ID. The second return is false
// when the question is not part of this session.
func (s *Session) Question(questionID string) (question.Question, bool) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return question.Question{}, false
}

func percentage(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
