package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/xavierca1/leads-portal/internal/infra/http/middleware"
	"github.com/xavierca1/leads-portal/internal/infra/http/session"
	"github.com/xavierca1/leads-portal/internal/usecase"
)

type AuthHandler struct {
	Authenticate *usecase.AuthenticateUseCase
	Sessions     *session.Manager
}

func NewAuthHandler(authenticate *usecase.AuthenticateUseCase, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{Authenticate: authenticate, Sessions: sessions}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error()})
		return
	}

	sess, err := h.Authenticate.Execute(r.Context(), req.Username, req.Password)
	if err != nil {
		if err == usecase.ErrInvalidCredentials {
			middleware.RecordLoginFailure()
		}
		writeError(w, err)
		return
	}

	token := h.Sessions.Start(sess.Username, sess.Role)
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: sess.Username, Role: sess.Role})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		h.Sessions.End(strings.TrimPrefix(auth, "Bearer "))
	}
	w.WriteHeader(http.StatusNoContent)
}
