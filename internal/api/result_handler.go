package api

import (
	"net/http"
	"time"

	"github.com/barprep/backend/internal/domain/quizresult"
)

// ── Request / Response types ────────────────────────────────────────────────

type ResultResponse struct {
	ID             string `json:"id"`
	Topic          string `json:"topic"`
	TotalQuestions int    `json:"total_questions"`
	CorrectAnswers int    `json:"correct_answers"`
	Score          int    `json:"score"`
	CompletedAt    string `json:"completed_at"`
}

type HistoryResponse struct {
	QuizzesTaken      int              `json:"quizzes_taken"`
	QuestionsAnswered int              `json:"questions_answered"`
	CorrectAnswers    int              `json:"correct_answers"`
	AverageScore      int              `json:"average_score"`
	Results           []ResultResponse `json:"results"`
}

type TopicStatsResponse struct {
	Topic     string `json:"topic"`
	Attempted int    `json:"attempted"`
	Correct   int    `json:"correct"`
	Accuracy  int    `json:"accuracy"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listResults returns the signed-in user's quiz history.
// @Summary      Quiz history
// @Description  The caller's persisted results, newest first, with aggregate stats.
// @Tags         Results
// @Produce      json
// @Success      200  {object}  HistoryResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /results [get]
func (h *Handler) listResults(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	summary, results, err := h.progress.History(ctx, userID(r))
	if err != nil {
		h.logger.Error("failed to load history", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load history")
		return
	}

	response := HistoryResponse{
		QuizzesTaken:      summary.QuizzesTaken,
		QuestionsAnswered: summary.QuestionsAnswered,
		CorrectAnswers:    summary.CorrectAnswers,
		AverageScore:      summary.AverageScore,
		Results:           make([]ResultResponse, len(results)),
	}
	for i, res := range results {
		response.Results[i] = toResultResponse(res)
	}

	respondJSON(w, http.StatusOK, response)
}

// topicStats returns the caller's per-topic accuracy, weakest first.
// @Summary      Weak-area breakdown
// @Tags         Results
// @Produce      json
// @Success      200  {array}   TopicStatsResponse
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /results/stats/topics [get]
func (h *Handler) topicStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.progress.TopicBreakdown(ctx, userID(r))
	if err != nil {
		h.logger.Error("failed to compute topic stats", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	response := make([]TopicStatsResponse, len(stats))
	for i, ts := range stats {
		response[i] = TopicStatsResponse{
			Topic:     ts.Topic,
			Attempted: ts.Attempted,
			Correct:   ts.Correct,
			Accuracy:  ts.Accuracy,
		}
	}
	respondJSON(w, http.StatusOK, response)
}

func toResultResponse(r *quizresult.QuizResult) ResultResponse {
	return ResultResponse{
		ID:             r.ID,
		Topic:          r.Topic,
		TotalQuestions: r.TotalQuestions,
		CorrectAnswers: r.CorrectAnswers,
		Score:          r.Score,
		CompletedAt:    r.CompletedAt.Format(time.RFC3339),
	}
}
