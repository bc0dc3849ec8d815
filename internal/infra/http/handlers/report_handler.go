package handlers

import (
	"net/http"

	"github.com/xavierca1/leads-portal/internal/infra/http/middleware"
	"github.com/xavierca1/leads-portal/internal/usecase"
)

type ReportHandler struct {
	Performance *usecase.PerformanceUseCase
}

func NewReportHandler(performance *usecase.PerformanceUseCase) *ReportHandler {
	return &ReportHandler{Performance: performance}
}

// HandlePerformance serves the team summary. Agents asking get their
// own numbers instead; ?agent= narrows to one agent, ?from=/?to=
// bound the creation date (YYYY-MM-DD).
func (h *ReportHandler) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session"})
		return
	}

	q := r.URL.Query()
	agent := q.Get("agent")
	if sess.IsAgent() {
		agent = sess.Username
	}

	if agent != "" {
		summary, err := h.Performance.Agent(r.Context(), agent, q.Get("from"), q.Get("to"))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summary)
		return
	}

	summaries, err := h.Performance.Team(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}
