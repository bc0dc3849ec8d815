package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/leads-portal/internal/usecase"
)

type UserHandler struct {
	Users *usecase.ManageUsersUseCase
}

func NewUserHandler(users *usecase.ManageUsersUseCase) *UserHandler {
	return &UserHandler{Users: users}
}

func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.Users.ListUsers(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *UserHandler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var input usecase.AddUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	if err := h.Users.AddUser(r.Context(), input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"username": input.Username})
}

func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var input usecase.UpdateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	username := chi.URLParam(r, "username")
	if err := h.Users.UpdateUser(r.Context(), username, input); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"username": username})
}

// HandleAgents lists the active agents offerable as assignment targets.
func (h *UserHandler) HandleAgents(w http.ResponseWriter, r *http.Request) {
	agents, err := h.Users.ListActiveAgents(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, agents)
}
