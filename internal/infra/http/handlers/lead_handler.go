package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leads-portal/internal/infra/http/middleware"
	"github.com/xavierca1/leads-portal/internal/usecase"
)

type LeadHandler struct {
	Onboard *usecase.OnboardLeadUseCase
	Update  *usecase.UpdateLeadUseCase
	Delete  *usecase.DeleteLeadUseCase
	Assign  *usecase.AssignLeadsUseCase
	List    *usecase.ListLeadsUseCase
}

func NewLeadHandler(
	onboard *usecase.OnboardLeadUseCase,
	update *usecase.UpdateLeadUseCase,
	del *usecase.DeleteLeadUseCase,
	assign *usecase.AssignLeadsUseCase,
	list *usecase.ListLeadsUseCase,
) *LeadHandler {
	return &LeadHandler{Onboard: onboard, Update: update, Delete: del, Assign: assign, List: list}
}

// HandleList serves the working set by default; ?all=true includes
// completed leads (the full-listing view).
func (h *LeadHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	includeCompleted := r.URL.Query().Get("all") == "true"
	leads, err := h.List.All(r.Context(), includeCompleted)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleMyLeads(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session"})
		return
	}
	leads, err := h.List.Mine(r.Context(), sess)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleUnassigned(w http.ResponseWriter, r *http.Request) {
	leads, err := h.List.Unassigned(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, leads)
}

func (h *LeadHandler) HandleOnboard(w http.ResponseWriter, r *http.Request) {
	var input usecase.OnboardLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	lead, err := h.Onboard.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadOnboarded()
	writeJSON(w, http.StatusCreated, lead)
}

func (h *LeadHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing session"})
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	lead, err := h.Update.Execute(r.Context(), sess, chi.URLParam(r, "id"), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, lead)
}

func (h *LeadHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.Delete.Execute(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"deleted": deleted,
	})
}

func (h *LeadHandler) HandleAssign(w http.ResponseWriter, r *http.Request) {
	var input usecase.AssignLeadsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	out, err := h.Assign.Execute(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.RecordLeadsAssigned(out.Assigned)
	writeJSON(w, http.StatusOK, out)
}
