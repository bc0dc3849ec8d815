package usecase

import (
	"context"

	"github.com/xavierca1/leads-portal/internal/entity"
)

type UpdateLeadUseCase struct {
	Leads LeadTable
}

func NewUpdateLeadUseCase(leads LeadTable) *UpdateLeadUseCase {
	return &UpdateLeadUseCase{Leads: leads}
}

// Execute overwrites the mutable fields of one lead. Agents may only
// touch leads assigned to them; admins may touch any lead. Assigned
// Agent and Date are never changed here.
func (uc *UpdateLeadUseCase) Execute(ctx context.Context, session entity.Session, leadID string, input UpdateLeadInput) (*entity.Lead, error) {
	if errs := ValidateUpdateLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	var updated *entity.Lead
	err := uc.Leads.Mutate(func(table []entity.Lead) ([]entity.Lead, error) {
		for i := range table {
			if table[i].ID != leadID {
				continue
			}
			if !session.IsAdmin() && table[i].AssignedAgent != session.Username {
				return nil, ErrLeadNotFound
			}

			table[i].CallStatus = input.CallStatus
			table[i].Feedback = input.Feedback
			table[i].Comment = input.Comment
			table[i].BusinessName = input.BusinessName
			table[i].BusinessType = input.BusinessType
			table[i].Region = input.Region
			table[i].City = input.City
			table[i].LeadSource = input.LeadSource
			table[i].TaxRegistered = input.TaxRegistered
			table[i].DisqualifiedReason = input.DisqualifiedReason

			lead := table[i]
			updated = &lead
			return table, nil
		}
		return nil, ErrLeadNotFound
	})
	if err != nil {
		if err == ErrLeadNotFound {
			return nil, err
		}
		return nil, &TechnicalError{
			Code:    "STORAGE_ERROR",
			Message: "failed to persist lead update: " + err.Error(),
		}
	}

	return updated, nil
}
