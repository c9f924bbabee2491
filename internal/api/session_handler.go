package api

import (
	"errors"
	"net/http"

	"github.com/barprep/backend/internal/domain/quizsession"
	"github.com/barprep/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type CreateSessionRequest struct {
	Topic string `json:"topic,omitempty" example:"Contracts"`
	Count int    `json:"count,omitempty" validate:"gte=0" example:"10"`
}

// SessionQuestion is a question as shown to the quiz-taker: the
// correct answer and explanation are withheld until the question is
// answered.
type SessionQuestion struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Choices []string `json:"choices"`
	Topic   string   `json:"topic,omitempty"`
}

type SessionResponse struct {
	ID              string           `json:"id"`
	Topic           string           `json:"topic"`
	QuestionCount   int              `json:"question_count"`
	Cursor          int              `json:"cursor"`
	Finished        bool             `json:"finished"`
	AnsweredCount   int              `json:"answered_count"`
	CurrentQuestion *SessionQuestion `json:"current_question,omitempty"`
}

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" validate:"required"`
	Choice     string `json:"choice" validate:"required"`
}

type SubmitAnswerResponse struct {
	Recorded    bool   `json:"recorded"` // false when the answer lock rejected a re-selection
	Choice      string `json:"choice,omitempty"`
	Correct     bool   `json:"correct"`
	Answer      string `json:"answer,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

type AdvanceResponse struct {
	Advanced bool `json:"advanced"`
	Cursor   int  `json:"cursor"`
	Finished bool `json:"finished"`
}

type ScoreResponse struct {
	CorrectCount  int `json:"correct_count"`
	TotalAnswered int `json:"total_answered"`
	Percentage    int `json:"percentage"`
}

type TopicScoreResponse struct {
	Topic   string `json:"topic"`
	Correct int    `json:"correct"`
	Total   int    `json:"total"`
}

type ReviewResponse struct {
	QuestionID  string `json:"question_id"`
	Prompt      string `json:"prompt"`
	Topic       string `json:"topic,omitempty"`
	UserChoice  string `json:"user_choice"`
	Answer      string `json:"answer"`
	Explanation string `json:"explanation,omitempty"`
}

type FinishSessionResponse struct {
	SessionID   string               `json:"session_id"`
	Topic       string               `json:"topic"`
	Asked       int                  `json:"asked"`
	Score       ScoreResponse        `json:"score"`
	ByTopic     []TopicScoreResponse `json:"by_topic"`
	Incorrect   []ReviewResponse     `json:"incorrect"`
	Saved       bool                 `json:"saved"`
	SaveSkipped bool                 `json:"save_skipped,omitempty"` // anonymous session
	ResultID    string               `json:"result_id,omitempty"`
	SaveError   string               `json:"save_error,omitempty"` // summary is still valid; re-finish to retry
}

// ── Handlers ────────────────────────────────────────────────────────────────

// createSession starts a new quiz attempt.
// @Summary      Start a quiz session
// @Description  Draws a shuffled subset of questions for the given topic. Anonymous users may play; only signed-in users get their result persisted.
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        body  body      CreateSessionRequest  true  "Topic filter and question count"
// @Success      201   {object}  SessionResponse
// @Failure      400   {object}  map[string]string  "no questions match the topic"
// @Failure      500   {object}  map[string]string
// @Router       /sessions [post]
func (h *Handler) createSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req CreateSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	view, err := h.sessions.Start(ctx, req.Topic, req.Count, userID(r))
	if errors.Is(err, quizsession.ErrNoQuestions) {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		h.logger.Error("failed to start session", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to load questions")
		return
	}

	respondJSON(w, http.StatusCreated, toSessionResponse(view))
}

// getSession returns the session's progress and current question.
// @Summary      Get a quiz session
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  SessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID} [get]
func (h *Handler) getSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	view, err := h.sessions.Get(sessionID, userID(r))
	if h.handleSessionError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, toSessionResponse(view))
}

// submitAnswer records the user's choice for a question. The first
// answer wins; a re-selection returns the originally recorded one with
// recorded=false, and answering after the session finished is the same
// kind of no-op. Only a question that was never drawn for the session
// is an error.
// @Summary      Answer a question
// @Tags         Sessions
// @Accept       json
// @Produce      json
// @Param        sessionID  path      string               true  "Session ID"
// @Param        body       body      SubmitAnswerRequest  true  "Question and chosen option"
// @Success      200        {object}  SubmitAnswerResponse
// @Failure      400        {object}  map[string]string
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	ans, q, recorded, err := h.sessions.SelectChoice(sessionID, userID(r), req.QuestionID, req.Choice)
	if h.handleSessionError(w, err) {
		return
	}

	response := SubmitAnswerResponse{Recorded: recorded}
	if ans.QuestionID != "" {
		response.Choice = ans.Choice
		response.Correct = ans.Correct
		response.Answer = q.Answer
		response.Explanation = q.Explanation
	}

	respondJSON(w, http.StatusOK, response)
}

// advanceSession moves to the next question, finishing the session
// when the last one has been answered.
// @Summary      Advance to the next question
// @Description  Rejected (advanced=false) while the current question is unanswered.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  AdvanceResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/advance [post]
func (h *Handler) advanceSession(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("sessionID")

	advanced, view, err := h.sessions.Advance(sessionID, userID(r))
	if h.handleSessionError(w, err) {
		return
	}

	respondJSON(w, http.StatusOK, AdvanceResponse{
		Advanced: advanced,
		Cursor:   view.Cursor,
		Finished: view.Finished,
	})
}

// finishSession completes the attempt and persists the result for
// signed-in users.
// @Summary      Finish a quiz session
// @Description  Idempotent. The score is computed regardless of persistence; a failed save is reported in save_error and retried on the next call.
// @Tags         Sessions
// @Produce      json
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  FinishSessionResponse
// @Failure      404        {object}  map[string]string
// @Router       /sessions/{sessionID}/finish [post]
func (h *Handler) finishSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := r.PathValue("sessionID")

	outcome, err := h.sessions.FinishAndSave(ctx, sessionID, userID(r))
	if h.handleSessionError(w, err) {
		return
	}

	summary := outcome.Summary
	byTopic := make([]TopicScoreResponse, 0, len(summary.ByTopic))
	for topic, ts := range summary.ByTopic {
		byTopic = append(byTopic, TopicScoreResponse{
			Topic:   topic,
			Correct: ts.Correct,
			Total:   ts.Total,
		})
	}

	incorrect := make([]ReviewResponse, len(summary.Incorrect))
	for i, rev := range summary.Incorrect {
		incorrect[i] = ReviewResponse{
			QuestionID:  rev.QuestionID,
			Prompt:      rev.Prompt,
			Topic:       rev.Topic,
			UserChoice:  rev.UserChoice,
			Answer:      rev.Answer,
			Explanation: rev.Explanation,
		}
	}

	response := FinishSessionResponse{
		SessionID:   summary.SessionID,
		Topic:       summary.Topic,
		Asked:       summary.Asked,
		Score:       toScoreResponse(summary.Score),
		ByTopic:     byTopic,
		Incorrect:   incorrect,
		Saved:       outcome.Saved,
		SaveSkipped: outcome.Skipped,
		ResultID:    outcome.ResultID,
	}
	if outcome.SaveErr != nil {
		response.SaveError = "failed to save result; finish again to retry"
	}

	respondJSON(w, http.StatusOK, response)
}

// ── Helpers ─────────────────────────────────────────────────────────────────

func toSessionResponse(view service.SessionView) SessionResponse {
	response := SessionResponse{
		ID:            view.ID,
		Topic:         view.Topic,
		QuestionCount: view.QuestionCount,
		Cursor:        view.Cursor,
		Finished:      view.Finished,
		AnsweredCount: view.AnsweredCount,
	}
	if view.HasCurrent {
		response.CurrentQuestion = &SessionQuestion{
			ID:      view.Current.ID,
			Prompt:  view.Current.Prompt,
			Choices: view.Current.Choices,
			Topic:   view.Current.Topic,
		}
	}
	return response
}

func toScoreResponse(score quizsession.Score) ScoreResponse {
	return ScoreResponse{
		CorrectCount:  score.CorrectCount,
		TotalAnswered: score.TotalAnswered,
		Percentage:    score.Percentage,
	}
}
