package usecase

import (
	"github.com/xavierca1/leads-portal/internal/entity"
)

// LeadTable is the load-mutate-save contract over the lead dataset.
// Mutate runs the whole unit atomically: either the returned table is
// durable afterwards, or the on-disk state is unchanged.
type LeadTable interface {
	Load() ([]entity.Lead, error)
	Mutate(fn func([]entity.Lead) ([]entity.Lead, error)) error
}

// UserStore is the credential file.
type UserStore interface {
	Load() (map[string]entity.User, error)
	Save(users map[string]entity.User) error
}

// AgentNotifier tells an agent that leads landed on their plate.
// Implementations may be nil-safe no-ops when mail is not configured.
type AgentNotifier interface {
	NotifyAssignment(agent string, count int) error
}

type OnboardLeadInput struct {
	CustomerName       string `json:"customer_name"`
	MobileNumber       string `json:"mobile_number"`
	BusinessName       string `json:"business_name"`
	BusinessType       string `json:"business_type"`
	Region             string `json:"region"`
	City               string `json:"city"`
	LeadSource         string `json:"lead_source"`
	CallStatus         string `json:"call_status"`
	TaxRegistered      string `json:"tax_registered"`
	Feedback           string `json:"feedback"`
	DisqualifiedReason string `json:"disqualified_reason"`
	Comment            string `json:"comment"`
}

type UpdateLeadInput struct {
	CallStatus         string `json:"call_status"`
	Feedback           string `json:"feedback"`
	Comment            string `json:"comment"`
	BusinessName       string `json:"business_name"`
	BusinessType       string `json:"business_type"`
	Region             string `json:"region"`
	City               string `json:"city"`
	LeadSource         string `json:"lead_source"`
	TaxRegistered      string `json:"tax_registered"`
	DisqualifiedReason string `json:"disqualified_reason"`
}

type AssignLeadsInput struct {
	LeadIDs []string `json:"lead_ids"`
	Agent   string   `json:"agent"`
}

type AssignLeadsOutput struct {
	Assigned int    `json:"assigned"`
	Message  string `json:"message"`
}

type AddUserInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

type UpdateUserInput struct {
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}
