package usecase

import (
	"context"

	"github.com/xavierca1/leads-portal/internal/entity"
)

// FilterActive returns the working set: every lead whose call status is
// not Completed. Applying it twice yields the same table.
func FilterActive(table []entity.Lead) []entity.Lead {
	active := make([]entity.Lead, 0, len(table))
	for _, lead := range table {
		if !lead.Completed() {
			active = append(active, lead)
		}
	}
	return active
}

// FilterUnassigned returns the working-set leads with no agent yet.
func FilterUnassigned(table []entity.Lead) []entity.Lead {
	unassigned := make([]entity.Lead, 0)
	for _, lead := range FilterActive(table) {
		if !lead.Assigned() {
			unassigned = append(unassigned, lead)
		}
	}
	return unassigned
}

// FilterByAgent returns the working-set leads assigned to one agent.
func FilterByAgent(table []entity.Lead, agent string) []entity.Lead {
	mine := make([]entity.Lead, 0)
	for _, lead := range FilterActive(table) {
		if lead.AssignedAgent == agent {
			mine = append(mine, lead)
		}
	}
	return mine
}

type ListLeadsUseCase struct {
	Leads LeadTable
}

func NewListLeadsUseCase(leads LeadTable) *ListLeadsUseCase {
	return &ListLeadsUseCase{Leads: leads}
}

// All returns the full table when includeCompleted is set, otherwise
// the working set.
func (uc *ListLeadsUseCase) All(ctx context.Context, includeCompleted bool) ([]entity.Lead, error) {
	table, err := uc.Leads.Load()
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load leads: " + err.Error()}
	}
	if includeCompleted {
		return table, nil
	}
	return FilterActive(table), nil
}

func (uc *ListLeadsUseCase) Mine(ctx context.Context, session entity.Session) ([]entity.Lead, error) {
	table, err := uc.Leads.Load()
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load leads: " + err.Error()}
	}
	return FilterByAgent(table, session.Username), nil
}

func (uc *ListLeadsUseCase) Unassigned(ctx context.Context) ([]entity.Lead, error) {
	table, err := uc.Leads.Load()
	if err != nil {
		return nil, &TechnicalError{Code: "STORAGE_ERROR", Message: "failed to load leads: " + err.Error()}
	}
	return FilterUnassigned(table), nil
}
