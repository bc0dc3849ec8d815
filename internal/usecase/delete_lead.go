package usecase

import (
	"context"

	"github.com/xavierca1/leads-portal/internal/entity"
)

type DeleteLeadUseCase struct {
	Leads LeadTable
}

func NewDeleteLeadUseCase(leads LeadTable) *DeleteLeadUseCase {
	return &DeleteLeadUseCase{Leads: leads}
}

// Execute removes one lead for good. A stale selection (the lead was
// already deleted) is reported as deleted=false, never as a failure.
func (uc *DeleteLeadUseCase) Execute(ctx context.Context, leadID string) (bool, error) {
	deleted := false
	err := uc.Leads.Mutate(func(table []entity.Lead) ([]entity.Lead, error) {
		for i := range table {
			if table[i].ID == leadID {
				deleted = true
				return append(table[:i], table[i+1:]...), nil
			}
		}
		return table, nil
	})
	if err != nil {
		return false, &TechnicalError{
			Code:    "STORAGE_ERROR",
			Message: "failed to persist lead deletion: " + err.Error(),
		}
	}

	return deleted, nil
}
