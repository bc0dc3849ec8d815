package usecase

import (
	"context"

	"github.com/xavierca1/leads-portal/internal/entity"
)

type OnboardLeadUseCase struct {
	Leads LeadTable
}

func NewOnboardLeadUseCase(leads LeadTable) *OnboardLeadUseCase {
	return &OnboardLeadUseCase{Leads: leads}
}

// Execute validates the input and appends exactly one lead. On a
// validation failure the table is untouched. New leads always start
// unassigned with today's date.
func (uc *OnboardLeadUseCase) Execute(ctx context.Context, input OnboardLeadInput) (*entity.Lead, error) {
	if errs := ValidateOnboardLeadInput(input); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	lead := entity.NewLead(input.CustomerName, input.MobileNumber, input.BusinessName, input.BusinessType)
	lead.Region = input.Region
	lead.City = input.City
	lead.LeadSource = input.LeadSource
	lead.Feedback = input.Feedback
	lead.DisqualifiedReason = input.DisqualifiedReason
	lead.Comment = input.Comment
	if input.CallStatus != "" {
		lead.CallStatus = input.CallStatus
	}
	if input.TaxRegistered != "" {
		lead.TaxRegistered = input.TaxRegistered
	}

	err := uc.Leads.Mutate(func(table []entity.Lead) ([]entity.Lead, error) {
		return append(table, *lead), nil
	})
	if err != nil {
		return nil, &TechnicalError{
			Code:    "STORAGE_ERROR",
			Message: "failed to persist new lead: " + err.Error(),
		}
	}

	return lead, nil
}
