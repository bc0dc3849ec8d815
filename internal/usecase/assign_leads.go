package usecase

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/xavierca1/leads-portal/internal/entity"
)

type AssignLeadsUseCase struct {
	Leads    LeadTable
	Users    UserStore
	Notifier AgentNotifier
	Log      *logrus.Logger
}

func NewAssignLeadsUseCase(leads LeadTable, users UserStore, notifier AgentNotifier, log *logrus.Logger) *AssignLeadsUseCase {
	return &AssignLeadsUseCase{Leads: leads, Users: users, Notifier: notifier, Log: log}
}

// Execute hands the selected leads to an active agent. A lead that
// already has an agent keeps it; only empty assignments are filled.
// Picking zero assignable leads is a reported no-op, not an error.
func (uc *AssignLeadsUseCase) Execute(ctx context.Context, input AssignLeadsInput) (*AssignLeadsOutput, error) {
	if len(input.LeadIDs) == 0 {
		return nil, ValidationErrors{{Field: "lead_ids", Message: "select at least one lead to assign"}}
	}
	if input.Agent == "" {
		return nil, ValidationErrors{{Field: "agent", Message: "select an agent to assign the leads"}}
	}

	users, err := uc.Users.Load()
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load users: " + err.Error()}
	}
	target, ok := users[input.Agent]
	if !ok || target.Role != entity.RoleAgent || !target.Active {
		return nil, &DomainError{
			Code:    "INVALID_AGENT",
			Message: "leads can only be assigned to an active agent",
		}
	}

	selected := make(map[string]bool, len(input.LeadIDs))
	for _, id := range input.LeadIDs {
		selected[id] = true
	}

	assigned := 0
	err = uc.Leads.Mutate(func(table []entity.Lead) ([]entity.Lead, error) {
		for i := range table {
			if selected[table[i].ID] && !table[i].Assigned() {
				table[i].AssignedAgent = input.Agent
				assigned++
			}
		}
		return table, nil
	})
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to persist assignment: " + err.Error()}
	}

	out := &AssignLeadsOutput{Assigned: assigned}
	if assigned == 0 {
		out.Message = "no unassigned leads matched the selection"
		return out, nil
	}
	out.Message = "selected leads assigned to agent"

	if uc.Notifier != nil {
		agent, count := input.Agent, assigned
		go func() {
			if err := uc.Notifier.NotifyAssignment(agent, count); err != nil && uc.Log != nil {
				uc.Log.WithFields(logrus.Fields{"agent": agent, "count": count}).Warn("assignment notification failed: ", err)
			}
		}()
	}

	return out, nil
}
