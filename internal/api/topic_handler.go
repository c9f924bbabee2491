package api

import "net/http"

// ── Request / Response types ────────────────────────────────────────────────

type TopicResponse struct {
	Topic         string `json:"topic" example:"Contracts"`
	QuestionCount int    `json:"question_count" example:"12"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listTopics returns the topic labels available for filtered practice.
// @Summary      List topics
// @Description  Distinct topic labels in use, with question counts, for the practice filter.
// @Tags         Topics
// @Produce      json
// @Success      200  {array}   TopicResponse
// @Failure      500  {object}  map[string]string
// @Router       /topics [get]
func (h *Handler) listTopics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	topics, err := h.questions.ListTopics(ctx)
	if err != nil {
		h.logger.Error("failed to list topics", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load topics")
		return
	}

	response := make([]TopicResponse, len(topics))
	for i, tc := range topics {
		response[i] = TopicResponse{Topic: tc.Topic, QuestionCount: tc.Count}
	}
	respondJSON(w, http.StatusOK, response)
}
