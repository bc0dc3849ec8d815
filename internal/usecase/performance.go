package usecase

import (
	"context"
	"sort"

	"github.com/xavierca1/leads-portal/internal/entity"
)

// AgentSummaryOutput aggregates one agent's workload. Percent is the
// completed share of the agent's total, 0 when the agent has no leads.
type AgentSummaryOutput struct {
	Agent        string         `json:"agent"`
	Total        int            `json:"total"`
	Completed    int            `json:"completed"`
	Remaining    int            `json:"remaining"`
	Percent      float64        `json:"percent"`
	StatusCounts map[string]int `json:"status_counts"`
}

// AgentSummary aggregates the leads assigned to one agent. from and to
// are optional YYYY-MM-DD bounds on the lead creation date; empty means
// unbounded. Lexicographic comparison is correct for that format.
func AgentSummary(table []entity.Lead, agent, from, to string) AgentSummaryOutput {
	out := AgentSummaryOutput{Agent: agent, StatusCounts: map[string]int{}}

	for _, lead := range table {
		if lead.AssignedAgent != agent {
			continue
		}
		if from != "" && lead.Date < from {
			continue
		}
		if to != "" && lead.Date > to {
			continue
		}
		out.Total++
		if lead.Completed() {
			out.Completed++
		}
		out.StatusCounts[lead.CallStatus]++
	}

	out.Remaining = out.Total - out.Completed
	if out.Total > 0 {
		out.Percent = float64(out.Completed) / float64(out.Total) * 100
	}
	return out
}

// TeamSummary aggregates every active agent, best completion rate
// first. Ties keep the agents' alphabetical order.
func TeamSummary(table []entity.Lead, users map[string]entity.User) []AgentSummaryOutput {
	agents := ActiveAgents(users)
	summaries := make([]AgentSummaryOutput, 0, len(agents))
	for _, agent := range agents {
		summaries = append(summaries, AgentSummary(table, agent, "", ""))
	}
	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].Percent > summaries[j].Percent
	})
	return summaries
}

type PerformanceUseCase struct {
	Leads LeadTable
	Users UserStore
}

func NewPerformanceUseCase(leads LeadTable, users UserStore) *PerformanceUseCase {
	return &PerformanceUseCase{Leads: leads, Users: users}
}

func (uc *PerformanceUseCase) Agent(ctx context.Context, agent, from, to string) (AgentSummaryOutput, error) {
	table, err := uc.Leads.Load()
	if err != nil {
		return AgentSummaryOutput{}, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load leads: " + err.Error()}
	}
	return AgentSummary(table, agent, from, to), nil
}

func (uc *PerformanceUseCase) Team(ctx context.Context) ([]AgentSummaryOutput, error) {
	table, err := uc.Leads.Load()
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load leads: " + err.Error()}
	}
	users, err := uc.Users.Load()
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load users: " + err.Error()}
	}
	return TeamSummary(table, users), nil
}
