package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/barprep/backend/internal/domain/question"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    prompt TEXT NOT NULL,
    choices TEXT NOT NULL,
    answer TEXT NOT NULL,
    explanation TEXT NOT NULL DEFAULT '',
    topic TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS quiz_results (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL,
    topic TEXT NOT NULL,
    total_questions INTEGER NOT NULL,
    correct_answers INTEGER NOT NULL,
    score INTEGER NOT NULL,
    question_ids TEXT NOT NULL,
    user_answers TEXT NOT NULL,
    completed_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_quiz_results_user ON quiz_results(user_id, completed_at);
`

// SQLiteStore implements QuestionRepository and ResultSink on a local
// SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

var (
	_ QuestionRepository = (*SQLiteStore)(nil)
	_ ResultSink         = (*SQLiteStore)(nil)
)

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ============================================================================
// Questions
// ============================================================================

func (s *SQLiteStore) SaveQuestion(ctx context.Context, q *question.Question) error {
	choices, err := json.Marshal(q.Choices)
	if err != nil {
		return fmt.Errorf("encode choices: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO questions (id, prompt, choices, answer, explanation, topic) VALUES (?, ?, ?, ?, ?, ?)",
		q.ID, q.Prompt, string(choices), q.Answer, q.Explanation, q.Topic)
	return err
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id string) (*question.Question, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, prompt, choices, answer, explanation, topic FROM questions WHERE id = ?", id)
	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ListQuestions returns all questions, optionally filtered by topic.
// An empty topic or the "all" sentinel returns everything.
func (s *SQLiteStore) ListQuestions(ctx context.Context, topic string) ([]question.Question, error) {
	query := "SELECT id, prompt, choices, answer, explanation, topic FROM questions"
	args := []any{}
	if topic != "" && topic != question.TopicAll {
		query += " WHERE topic = ?"
		args = append(args, topic)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []question.Question
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, *q)
	}
	return questions, rows.Err()
}

func (s *SQLiteStore) UpdateQuestion(ctx context.Context, q *question.Question) error {
	choices, err := json.Marshal(q.Choices)
	if err != nil {
		return fmt.Errorf("encode choices: %w", err)
	}
	result, err := s.db.ExecContext(ctx,
		"UPDATE questions SET prompt = ?, choices = ?, answer = ?, explanation = ?, topic = ? WHERE id = ?",
		q.Prompt, string(choices), q.Answer, q.Explanation, q.Topic, q.ID)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) DeleteQuestion(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM questions WHERE id = ?", id)
	if err != nil {
		return err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListTopics returns the distinct topic labels in use with their
// question counts, for the practice filter dropdown.
func (s *SQLiteStore) ListTopics(ctx context.Context) ([]TopicCount, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT topic, COUNT(*) FROM questions WHERE topic != '' GROUP BY topic ORDER BY topic")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []TopicCount
	for rows.Next() {
		var tc TopicCount
		if err := rows.Scan(&tc.Topic, &tc.Count); err != nil {
			return nil, err
		}
		topics = append(topics, tc)
	}
	return topics, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (*question.Question, error) {
	var q question.Question
	var choices string
	if err := row.Scan(&q.ID, &q.Prompt, &choices, &q.Answer, &q.Explanation, &q.Topic); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(choices), &q.Choices); err != nil {
		return nil, fmt.Errorf("decode choices for %s: %w", q.ID, err)
	}
	return &q, nil
}
