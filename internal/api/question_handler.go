package api

import (
	"net/http"

	"github.com/barprep/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateQuestionRequest struct {
	Prompt      string   `json:"prompt" validate:"required" example:"Consideration is best described as:"`
	Choices     []string `json:"choices" validate:"required,min=2,dive,required" example:"A promise to make a gift,Bargained-for legal detriment"`
	Answer      string   `json:"answer" validate:"required" example:"Bargained-for legal detriment"`
	Explanation string   `json:"explanation,omitempty"`
	Topic       string   `json:"topic,omitempty" example:"Contracts"`
}

type UpdateQuestionRequest struct {
	Prompt      string   `json:"prompt" validate:"required"`
	Choices     []string `json:"choices" validate:"required,min=2,dive,required"`
	Answer      string   `json:"answer" validate:"required"`
	Explanation string   `json:"explanation,omitempty"`
	Topic       string   `json:"topic,omitempty"`
}

type QuestionResponse struct {
	ID          string   `json:"id"`
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Topic       string   `json:"topic,omitempty"`
}

func toQuestionResponse(q *question.Question) QuestionResponse {
	return QuestionResponse{
		ID:          q.ID,
		Prompt:      q.Prompt,
		Choices:     q.Choices,
		Answer:      q.Answer,
		Explanation: q.Explanation,
		Topic:       q.Topic,
	}
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions returns the question pool, optionally filtered.
// @Summary      List questions
// @Description  Returns all questions, optionally filtered by topic. Open to anonymous quiz-takers.
// @Tags         Questions
// @Produce      json
// @Param        topic  query     string  false  "Topic filter, omit or 'all' for everything"
// @Success      200    {array}   QuestionResponse
// @Failure      500    {object}  map[string]string
// @Router       /questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	topic := r.URL.Query().Get("topic")

	questions, err := h.questions.ListQuestions(ctx, topic)
	if err != nil {
		h.logger.Error("failed to list questions", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load questions")
		return
	}

	response := make([]QuestionResponse, len(questions))
	for i := range questions {
		response[i] = toQuestionResponse(&questions[i])
	}
	respondJSON(w, http.StatusOK, response)
}

// createQuestion adds a question to the pool.
// @Summary      Create a question
// @Description  Admin only. The answer must be one of the choices.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        body  body      CreateQuestionRequest  true  "Question to create"
// @Success      201   {object}  QuestionResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /admin/questions [post]
func (h *Handler) createQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := question.New(req.Prompt, req.Choices, req.Answer, req.Explanation, req.Topic)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.questions.SaveQuestion(ctx, q); err != nil {
		h.logger.Error("failed to save question", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save question")
		return
	}

	respondJSON(w, http.StatusCreated, toQuestionResponse(q))
}

// updateQuestion replaces a question's content.
// @Summary      Update a question
// @Description  Admin only. The answer must be one of the choices.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        questionID  path      string                 true  "Question ID"
// @Param        body        body      UpdateQuestionRequest  true  "New question content"
// @Success      200         {object}  QuestionResponse
// @Failure      400         {object}  map[string]string
// @Failure      404         {object}  map[string]string
// @Failure      500         {object}  map[string]string
// @Router       /admin/questions/{questionID} [put]
func (h *Handler) updateQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questionID := r.PathValue("questionID")

	q, err := h.questions.GetQuestion(ctx, questionID)
	if h.handleStoreError(w, err, "question") {
		return
	}

	var req UpdateQuestionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q.Prompt = req.Prompt
	q.Choices = req.Choices
	q.Answer = req.Answer
	q.Explanation = req.Explanation
	q.Topic = req.Topic
	if err := q.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if h.handleStoreError(w, h.questions.UpdateQuestion(ctx, q), "question") {
		return
	}

	respondJSON(w, http.StatusOK, toQuestionResponse(q))
}

// deleteQuestion removes a question from the pool.
// @Summary      Delete a question
// @Tags         Admin
// @Param        questionID  path  string  true  "Question ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /admin/questions/{questionID} [delete]
func (h *Handler) deleteQuestion(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questionID := r.PathValue("questionID")

	if h.handleStoreError(w, h.questions.DeleteQuestion(ctx, questionID), "question") {
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
