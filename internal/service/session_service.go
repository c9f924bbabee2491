// internal/service/session_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/barprep/backend/internal/domain/question"
	"github.com/barprep/backend/internal/domain/quizresult"
	"github.com/barprep/backend/internal/domain/quizsession"
	"github.com/barprep/backend/internal/store"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownQuestion = errors.New("question not part of this session")
)

// FinishOutcome reports what happened when a session was finished.
// The summary is always present; persistence is best-effort and its
// failure never discards the in-memory session, so the caller can
// retry the save by finishing again.
type FinishOutcome struct {
	Summary  quizsession.Summary
	Saved    bool   // a result record exists for this session
	Skipped  bool   // anonymous session, persistence deliberately skipped
	ResultID string // set when Saved
	SaveErr  error  // set when a save was attempted and failed
}

// SessionView is a point-in-time snapshot of a live session, taken
// under the session's lock. Handlers work from views; the mutable
// session itself never leaves the registry.
type SessionView struct {
	ID            string
	Topic         string
	QuestionCount int
	Cursor        int
	Finished      bool
	AnsweredCount int
	Current       question.Question
	HasCurrent    bool
}

// liveSession pairs a session with its own lock so requests against
// one session serialize without stalling the rest of the registry.
type liveSession struct {
	mu   sync.Mutex
	quiz *quizsession.Session
}

// SessionService owns the in-memory registry of live quiz sessions.
// Sessions are never persisted; only the final summary is written,
// through the ResultSink, and only for signed-in users.
type SessionService struct {
	questions store.QuestionRepository
	results   store.ResultSink
	logger    *slog.Logger
	ttl       time.Duration

	mu       sync.Mutex // guards the maps only; session state is under liveSession.mu
	sessions map[string]*liveSession
	lastSeen map[string]time.Time
}

// NewSessionService creates a SessionService. Sessions idle longer
// than ttl are dropped on the next registry access.
func NewSessionService(questions store.QuestionRepository, results store.ResultSink, logger *slog.Logger, ttl time.Duration) *SessionService {
	return &SessionService{
		questions: questions,
		results:   results,
		logger:    logger,
		ttl:       ttl,
		sessions:  make(map[string]*liveSession),
		lastSeen:  make(map[string]time.Time),
	}
}

// Start draws a new session from a single bulk read of the question
// repository. Returns quizsession.ErrNoQuestions when the topic filter
// matches nothing; no session is registered in that case.
func (s *SessionService) Start(ctx context.Context, topicFilter string, count int, userID string) (SessionView, error) {
	all, err := s.questions.ListQuestions(ctx, topicFilter)
	if err != nil {
		return SessionView{}, fmt.Errorf("load questions: %w", err)
	}

	quiz, err := quizsession.New(all, topicFilter, count, userID)
	if err != nil {
		return SessionView{}, err
	}

	ls := &liveSession{quiz: quiz}
	s.mu.Lock()
	s.sweepLocked()
	s.sessions[quiz.ID] = ls
	s.lastSeen[quiz.ID] = time.Now()
	s.mu.Unlock()

	ls.mu.Lock()
	defer ls.mu.Unlock()
	return snapshot(quiz), nil
}

// Get looks up a live session. A session started by a signed-in user
// is invisible to anyone else, anonymous callers included.
func (s *SessionService) Get(sessionID, userID string) (SessionView, error) {
	ls, err := s.lookup(sessionID, userID)
	if err != nil {
		return SessionView{}, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	return snapshot(ls.quiz), nil
}

// SelectChoice records an answer on behalf of the user. The lock-on-
// first-answer rule lives in the session itself; recorded is false
// when the pick was rejected as a re-selection or because the session
// is already finished. A question that was never drawn for this
// session returns ErrUnknownQuestion.
func (s *SessionService) SelectChoice(sessionID, userID, questionID, choice string) (ans quizsession.Answer, q question.Question, recorded bool, err error) {
	ls, err := s.lookup(sessionID, userID)
	if err != nil {
		return quizsession.Answer{}, question.Question{}, false, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	q, ok := ls.quiz.Question(questionID)
	if !ok {
		return quizsession.Answer{}, question.Question{}, false, ErrUnknownQuestion
	}

	recorded = ls.quiz.SelectChoice(questionID, choice)
	// The zero Answer means a rejected pick on a finished session:
	// reported as a no-op, not an error.
	ans = ls.quiz.Answers()[questionID]
	return ans, q, recorded, nil
}

// Advance moves the session cursor forward. Returns false without an
// error when the current question has no recorded answer yet.
func (s *SessionService) Advance(sessionID, userID string) (advanced bool, view SessionView, err error) {
	ls, err := s.lookup(sessionID, userID)
	if err != nil {
		return false, SessionView{}, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()
	advanced = ls.quiz.Advance()
	return advanced, snapshot(ls.quiz), nil
}

// FinishAndSave finishes the session and, for signed-in users,
// persists the result exactly once. A failed save is reported in the
// outcome while the summary stays available; calling FinishAndSave
// again retries the save without redoing the quiz. The write runs
// under the session's own lock, so a slow save stalls only that
// session.
func (s *SessionService) FinishAndSave(ctx context.Context, sessionID, userID string) (FinishOutcome, error) {
	ls, err := s.lookup(sessionID, userID)
	if err != nil {
		return FinishOutcome{}, err
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	quiz := ls.quiz
	outcome := FinishOutcome{Summary: quiz.Finish()}

	if quiz.UserID == "" {
		outcome.Skipped = true
		return outcome, nil
	}
	if quiz.ResultID != "" {
		outcome.Saved = true
		outcome.ResultID = quiz.ResultID
		return outcome, nil
	}

	questionIDs := make([]string, len(quiz.Questions))
	for i, q := range quiz.Questions {
		questionIDs[i] = q.ID
	}

	result, err := quizresult.FromSummary(quiz.UserID, outcome.Summary, quiz.Answers(), questionIDs)
	if err != nil {
		return FinishOutcome{}, fmt.Errorf("build result: %w", err)
	}

	if err := s.results.SaveResult(ctx, result); err != nil {
		s.logger.Error("failed to save quiz result",
			"session_id", quiz.ID,
			"user_id", quiz.UserID,
			"error", err,
		)
		outcome.SaveErr = err
		return outcome, nil
	}

	quiz.ResultID = result.ID
	outcome.Saved = true
	outcome.ResultID = result.ID
	return outcome, nil
}

// snapshot captures the session state for handlers. Caller must hold
// the session's lock.
func snapshot(quiz *quizsession.Session) SessionView {
	view := SessionView{
		ID:            quiz.ID,
		Topic:         quiz.Topic,
		QuestionCount: len(quiz.Questions),
		Cursor:        quiz.Cursor(),
		Finished:      quiz.Finished(),
		AnsweredCount: len(quiz.Answers()),
	}
	if current, ok := quiz.Current(); ok {
		view.Current = current
		view.HasCurrent = true
	}
	return view
}

// lookup resolves a session under the registry lock and refreshes its
// idle timer. The session's own lock is NOT taken here; callers lock
// it before touching session state. The owner check reads UserID,
// which is immutable after creation.
func (s *SessionService) lookup(sessionID, userID string) (*liveSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ls, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	if expired(s.lastSeen[sessionID], s.ttl) {
		delete(s.sessions, sessionID)
		delete(s.lastSeen, sessionID)
		return nil, ErrSessionNotFound
	}
	if ls.quiz.UserID != "" && ls.quiz.UserID != userID {
		return nil, ErrSessionNotFound
	}
	s.lastSeen[sessionID] = time.Now()
	return ls, nil
}

// sweepLocked drops sessions idle past the TTL. Caller must hold s.mu.
func (s *SessionService) sweepLocked() {
	for id, seen := range s.lastSeen {
		if expired(seen, s.ttl) {
			delete(s.sessions, id)
			delete(s.lastSeen, id)
		}
	}
}

func expired(seen time.Time, ttl time.Duration) bool {
	return ttl > 0 && time.Since(seen) > ttl
}
