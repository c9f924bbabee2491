// internal/api/routes.go
package api

import "net/http"

// RegisterRoutes wires every endpoint onto the mux. Question reads and
// quiz play are open to anonymous callers; history requires a user and
// question writes require the admin group.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// Questions & topics (read)
	mux.HandleFunc("GET /questions", h.authenticate(h.listQuestions))
	mux.HandleFunc("GET /topics", h.authenticate(h.listTopics))

	// Question administration
	mux.HandleFunc("POST /admin/questions", h.requireAdmin(h.createQuestion))
	mux.HandleFunc("PUT /admin/questions/{questionID}", h.requireAdmin(h.updateQuestion))
	mux.HandleFunc("DELETE /admin/questions/{questionID}", h.requireAdmin(h.deleteQuestion))
	mux.HandleFunc("GET /admin/questions/export", h.requireAdmin(h.exportQuestions))
	mux.HandleFunc("POST /admin/questions/import", h.requireAdmin(h.importQuestions))

	// Quiz sessions
	mux.HandleFunc("POST /sessions", h.authenticate(h.createSession))
	mux.HandleFunc("GET /sessions/{sessionID}", h.authenticate(h.getSession))
	mux.HandleFunc("POST /sessions/{sessionID}/answers", h.authenticate(h.submitAnswer))
	mux.HandleFunc("POST /sessions/{sessionID}/advance", h.authenticate(h.advanceSession))
	mux.HandleFunc("POST /sessions/{sessionID}/finish", h.authenticate(h.finishSession))

	// Result history
	mux.HandleFunc("GET /results", h.requireUser(h.listResults))
	mux.HandleFunc("GET /results/stats/topics", h.requireUser(h.topicStats))
}
