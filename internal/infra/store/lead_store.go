package store

import (
	"github.com/xavierca1/leads-portal/internal/entity"
)

// LeadSheet is the named region the lead table lives in. Other sheets
// in the same workbook are never touched.
const LeadSheet = "Leads"

// Column headers, in on-disk order. ID leads the canonical fourteen;
// it is generated for rows that predate it.
const (
	colID                 = "ID"
	colCustomerName       = "Customer Name"
	colMobileNumber       = "Mobile number"
	colBusinessName       = "Business Name"
	colBusinessType       = "Business type"
	colRegion             = "GOV"
	colCity               = "City"
	colLeadSource         = "Lead Source"
	colCallStatus         = "Call status"
	colTaxRegistered      = "Tax registered (electronic invoices)"
	colFeedback           = "Feedback"
	colDisqualifiedReason = "Disqualified reason"
	colComment            = "Comment"
	colAssignedAgent      = "Assigned Agent"
	colDate               = "Date"
)

var leadColumns = []string{
	colID,
	colCustomerName,
	colMobileNumber,
	colBusinessName,
	colBusinessType,
	colRegion,
	colCity,
	colLeadSource,
	colCallStatus,
	colTaxRegistered,
	colFeedback,
	colDisqualifiedReason,
	colComment,
	colAssignedAgent,
	colDate,
}

// LeadStore loads and fully replaces the persisted lead table.
type LeadStore interface {
	Load() ([]entity.Lead, error)
	Save(table []entity.Lead) error
}

func leadValues(l entity.Lead) []string {
	return []string{
		l.ID,
		l.CustomerName,
		l.MobileNumber,
		l.BusinessName,
		l.BusinessType,
		l.Region,
		l.City,
		l.LeadSource,
		l.CallStatus,
		l.TaxRegistered,
		l.Feedback,
		l.DisqualifiedReason,
		l.Comment,
		l.AssignedAgent,
		l.Date,
	}
}

func leadFromValues(get func(column string) string) entity.Lead {
	return entity.Lead{
		ID:                 get(colID),
		CustomerName:       get(colCustomerName),
		MobileNumber:       get(colMobileNumber),
		BusinessName:       get(colBusinessName),
		BusinessType:       get(colBusinessType),
		Region:             get(colRegion),
		City:               get(colCity),
		LeadSource:         get(colLeadSource),
		CallStatus:         get(colCallStatus),
		TaxRegistered:      get(colTaxRegistered),
		Feedback:           get(colFeedback),
		DisqualifiedReason: get(colDisqualifiedReason),
		Comment:            get(colComment),
		AssignedAgent:      get(colAssignedAgent),
		Date:               get(colDate),
	}
}
