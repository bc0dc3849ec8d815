package usecase

import (
	"fmt"
	"strings"

	"github.com/xavierca1/leads-portal/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors lets a whole list of field failures travel as one
// error value; handlers unpack it into a per-field response.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, ve := range e {
		msgs[i] = ve.Error()
	}
	return "validation failed: " + strings.Join(msgs, ", ")
}

func AsValidationErrors(err error) (ValidationErrors, bool) {
	ve, ok := err.(ValidationErrors)
	return ve, ok
}

func ValidateOnboardLeadInput(input OnboardLeadInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.CustomerName) == "" {
		errs = append(errs, ValidationError{"customer_name", "is required"})
	}

	if strings.TrimSpace(input.MobileNumber) == "" {
		errs = append(errs, ValidationError{"mobile_number", "is required"})
	} else if !isValidMobileNumber(input.MobileNumber) {
		errs = append(errs, ValidationError{"mobile_number", "must be an 11-digit number"})
	}

	if strings.TrimSpace(input.BusinessName) == "" {
		errs = append(errs, ValidationError{"business_name", "is required"})
	}

	if strings.TrimSpace(input.BusinessType) == "" {
		errs = append(errs, ValidationError{"business_type", "is required"})
	} else if !entity.IsValidBusinessType(input.BusinessType) {
		errs = append(errs, ValidationError{"business_type", "must be one of " + strings.Join(entity.BusinessTypes, ", ")})
	}

	if input.CallStatus != "" && !entity.IsValidCallStatus(input.CallStatus) {
		errs = append(errs, ValidationError{"call_status", "must be one of " + strings.Join(entity.CallStatuses, ", ")})
	}

	if !isValidYesNo(input.TaxRegistered) {
		errs = append(errs, ValidationError{"tax_registered", "must be Yes or No"})
	}

	return errs
}

func ValidateUpdateLeadInput(input UpdateLeadInput) []ValidationError {
	var errs []ValidationError

	if !entity.IsValidCallStatus(input.CallStatus) {
		errs = append(errs, ValidationError{"call_status", "must be one of " + strings.Join(entity.CallStatuses, ", ")})
	}
	if !entity.IsValidBusinessType(input.BusinessType) {
		errs = append(errs, ValidationError{"business_type", "must be one of " + strings.Join(entity.BusinessTypes, ", ")})
	}
	if !isValidYesNo(input.TaxRegistered) {
		errs = append(errs, ValidationError{"tax_registered", "must be Yes or No"})
	}

	return errs
}

func ValidateAddUserInput(input AddUserInput) []ValidationError {
	var errs []ValidationError

	if strings.TrimSpace(input.Username) == "" {
		errs = append(errs, ValidationError{"username", "is required"})
	}
	if input.Password == "" {
		errs = append(errs, ValidationError{"password", "is required"})
	}
	if input.Role == "" {
		errs = append(errs, ValidationError{"role", "is required"})
	} else if !entity.IsValidRole(input.Role) {
		errs = append(errs, ValidationError{"role", "must be admin, agent or team_leader"})
	}

	return errs
}

func isValidMobileNumber(mobile string) bool {
	if len(mobile) != 11 {
		return false
	}
	for _, r := range mobile {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Empty is allowed; the factory defaults it to "No".
func isValidYesNo(v string) bool {
	return v == "" || v == "Yes" || v == "No"
}
