// internal/service/progress.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/barprep/backend/internal/domain/question"
	"github.com/barprep/backend/internal/domain/quizresult"
	"github.com/barprep/backend/internal/store"
)

// ProgressService computes history and weak-area views from a user's
// persisted results joined against the current question set.
type ProgressService struct {
	questions store.QuestionRepository
	results   store.ResultSink
	logger    *slog.Logger
}

func NewProgressService(questions store.QuestionRepository, results store.ResultSink, logger *slog.Logger) *ProgressService {
	return &ProgressService{
		questions: questions,
		results:   results,
		logger:    logger,
	}
}

// History returns the user's result records, newest first, with an
// aggregate summary.
func (p *ProgressService) History(ctx context.Context, userID string) (quizresult.HistorySummary, []*quizresult.QuizResult, error) {
	results, err := p.results.ListResultsByUser(ctx, userID)
	if err != nil {
		return quizresult.HistorySummary{}, nil, fmt.Errorf("load results: %w", err)
	}
	return quizresult.Summarize(results), results, nil
}

// TopicBreakdown computes per-topic accuracy across the user's entire
// history, weakest topics first. Answers referencing questions that
// have since been deleted are skipped rather than guessed at.
func (p *ProgressService) TopicBreakdown(ctx context.Context, userID string) ([]quizresult.TopicStats, error) {
	results, err := p.results.ListResultsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}

	all, err := p.questions.ListQuestions(ctx, question.TopicAll)
	if err != nil {
		return nil, fmt.Errorf("load questions: %w", err)
	}
	byID := make(map[string]question.Question, len(all))
	for _, q := range all {
		byID[q.ID] = q
	}

	stats := make(map[string]*quizresult.TopicStats)
	for _, r := range results {
		answers, err := r.DecodeAnswers()
		if err != nil {
			p.logger.Warn("skipping result with undecodable answers",
				"result_id", r.ID, "error", err)
			continue
		}
		for qid, choice := range answers {
			q, ok := byID[qid]
			if !ok {
				continue
			}
			topic := q.Topic
			if topic == "" {
				topic = question.TopicAll
			}
			ts, ok := stats[topic]
			if !ok {
				ts = &quizresult.TopicStats{Topic: topic}
				stats[topic] = ts
			}
			ts.RecordAttempt(q.IsCorrect(choice))
		}
	}

	out := make([]quizresult.TopicStats, 0, len(stats))
	for _, ts := range stats {
		out = append(out, *ts)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy < out[j].Accuracy
		}
		return out[i].Topic < out[j].Topic
	})
	return out, nil
}
