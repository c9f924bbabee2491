package store

import (
	"context"
	"errors"

	"github.com/barprep/backend/internal/domain/question"
	"github.com/barprep/backend/internal/domain/quizresult"
)

var (
	ErrNotFound = errors.New("not found")
)

// TopicCount pairs a topic label with how many questions carry it.
type TopicCount struct {
	Topic string
	Count int
}

// QuestionRepository is the bulk read/write contract for questions.
// The quiz engine only ever does a single bulk read at session start.
type QuestionRepository interface {
	SaveQuestion(ctx context.Context, q *question.Question) error
	GetQuestion(ctx context.Context, id string) (*question.Question, error)
	ListQuestions(ctx context.Context, topic string) ([]question.Question, error)
	UpdateQuestion(ctx context.Context, q *question.Question) error
	DeleteQuestion(ctx context.Context, id string) error
	ListTopics(ctx context.Context) ([]TopicCount, error)
}

// ResultSink persists completed quiz results. Results are immutable:
// there is deliberately no update or delete.
type ResultSink interface {
	SaveResult(ctx context.Context, r *quizresult.QuizResult) error
	ListResultsByUser(ctx context.Context, userID string) ([]*quizresult.QuizResult, error)
}
