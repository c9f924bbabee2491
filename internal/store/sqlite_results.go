package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/barprep/backend/internal/domain/quizresult"
)

// ============================================================================
// Quiz results
// ============================================================================

// SaveResult writes one immutable result record. A duplicate ID is a
// caller bug and surfaces as a constraint error.
func (s *SQLiteStore) SaveResult(ctx context.Context, r *quizresult.QuizResult) error {
	if err := r.Validate(); err != nil {
		return err
	}
	questionIDs, err := json.Marshal(r.QuestionIDs)
	if err != nil {
		return fmt.Errorf("encode question ids: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quiz_results
		 (id, user_id, topic, total_questions, correct_answers, score, question_ids, user_answers, completed_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.UserID, r.Topic, r.TotalQuestions, r.CorrectAnswers, r.Score,
		string(questionIDs), r.UserAnswers, r.CompletedAt)
	return err
}

// ListResultsByUser returns the user's result history, newest first.
func (s *SQLiteStore) ListResultsByUser(ctx context.Context, userID string) ([]*quizresult.QuizResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, user_id, topic, total_questions, correct_answers, score, question_ids, user_answers, completed_at
		 FROM quiz_results WHERE user_id = ? ORDER BY completed_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []*quizresult.QuizResult
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// GetResult fetches one result record by ID.
func (s *SQLiteStore) GetResult(ctx context.Context, id string) (*quizresult.QuizResult, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, user_id, topic, total_questions, correct_answers, score, question_ids, user_answers, completed_at
		 FROM quiz_results WHERE id = ?`, id)
	r, err := scanResult(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func scanResult(row rowScanner) (*quizresult.QuizResult, error) {
	var r quizresult.QuizResult
	var questionIDs string
	if err := row.Scan(&r.ID, &r.UserID, &r.Topic, &r.TotalQuestions, &r.CorrectAnswers,
		&r.Score, &questionIDs, &r.UserAnswers, &r.CompletedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(questionIDs), &r.QuestionIDs); err != nil {
		return nil, fmt.Errorf("decode question ids for %s: %w", r.ID, err)
	}
	return &r, nil
}
