package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/barprep/backend/internal/domain/question"
)

// ── Request / Response types ────────────────────────────────────────────────

type ExportQuestion struct {
	Prompt      string   `json:"prompt"`
	Choices     []string `json:"choices"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation,omitempty"`
	Topic       string   `json:"topic,omitempty"`
}

type ExportData struct {
	Version    string           `json:"version"`
	ExportedAt string           `json:"exported_at"`
	Questions  []ExportQuestion `json:"questions"`
}

type ImportResult struct {
	QuestionsCreated int      `json:"questions_created"`
	Rejected         []string `json:"rejected,omitempty"` // prompts that failed validation
}

// ── Handlers ────────────────────────────────────────────────────────────────

// exportQuestions dumps the full question pool as JSON.
// @Summary      Export questions
// @Description  Admin only. Download the entire question pool for backup or transfer.
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  ExportData
// @Failure      500  {object}  map[string]string
// @Router       /admin/questions/export [get]
func (h *Handler) exportQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	questions, err := h.questions.ListQuestions(ctx, question.TopicAll)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load questions")
		return
	}

	exportData := ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Questions:  make([]ExportQuestion, len(questions)),
	}
	for i, q := range questions {
		exportData.Questions[i] = ExportQuestion{
			Prompt:      q.Prompt,
			Choices:     q.Choices,
			Answer:      q.Answer,
			Explanation: q.Explanation,
			Topic:       q.Topic,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=barprep-questions.json")
	json.NewEncoder(w).Encode(exportData)
}

// importQuestions bulk-loads questions from an export file. Entries
// that fail validation are reported and skipped, not fatal.
// @Summary      Import questions
// @Description  Admin only. Accepts the export format; invalid entries are listed in the response.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        body  body      ExportData  true  "Questions to import"
// @Success      201   {object}  ImportResult
// @Failure      400   {object}  map[string]string
// @Router       /admin/questions/import [post]
func (h *Handler) importQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var importData ExportData
	if !decodeJSON(w, r, &importData) {
		return
	}

	result := ImportResult{}
	for _, entry := range importData.Questions {
		q, err := question.New(entry.Prompt, entry.Choices, entry.Answer, entry.Explanation, entry.Topic)
		if err != nil {
			h.logger.Warn("rejected question on import", "prompt", entry.Prompt, "error", err)
			result.Rejected = append(result.Rejected, entry.Prompt)
			continue
		}
		if err := h.questions.SaveQuestion(ctx, q); err != nil {
			h.logger.Error("failed to save imported question", "prompt", entry.Prompt, "error", err)
			result.Rejected = append(result.Rejected, entry.Prompt)
			continue
		}
		result.QuestionsCreated++
	}

	respondJSON(w, http.StatusCreated, result)
}
