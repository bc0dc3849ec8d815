package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/xavierca1/leads-portal/internal/usecase"
)

type HealthHandler struct {
	Leads     usecase.LeadTable
	Users     usecase.UserStore
	StartTime time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(leads usecase.LeadTable, users usecase.UserStore) *HealthHandler {
	return &HealthHandler{
		Leads:     leads,
		Users:     users,
		StartTime: time.Now(),
	}
}

func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	deps := make(map[string]string)

	if h.Leads != nil {
		if _, err := h.Leads.Load(); err != nil {
			deps["lead_store"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["lead_store"] = "healthy"
		}
	} else {
		deps["lead_store"] = "not configured"
	}

	if h.Users != nil {
		if _, err := h.Users.Load(); err != nil {
			deps["credential_store"] = fmt.Sprintf("unhealthy: %v", err)
		} else {
			deps["credential_store"] = "healthy"
		}
	} else {
		deps["credential_store"] = "not configured"
	}

	status := "healthy"
	for _, v := range deps {
		if v != "healthy" && v != "not configured" {
			status = "degraded"
			break
		}
	}

	response := HealthResponse{
		Status:       status,
		Version:      "1.0.0",
		Uptime:       time.Since(h.StartTime).Round(time.Second).String(),
		Dependencies: deps,
	}

	if status == "degraded" {
		writeJSON(w, http.StatusServiceUnavailable, response)
		return
	}
	writeJSON(w, http.StatusOK, response)
}
