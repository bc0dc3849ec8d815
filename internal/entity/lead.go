package entity

import (
	"time"

	"github.com/google/uuid"
)

// Business type options for a lead.
var BusinessTypes = []string{
	"Manufacturer",
	"Distributor",
	"Wholesaler",
	"Retailer",
	"Service Provider",
}

// Call status options. A lead leaves the working set once its status
// reaches Completed.
const (
	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
	StatusFailed     = "Failed"
)

var CallStatuses = []string{
	StatusPending,
	StatusInProgress,
	StatusCompleted,
	StatusFailed,
}

// Lead is one prospective customer tracked through the call workflow.
// ID is generated at creation and never changes; update, delete and
// assignment all key on it.
type Lead struct {
	ID                 string `json:"id"`
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
	AssignedAgent      string `json:"assigned_agent"`
	Date               string `json:"date"`
}

// Factory
func NewLead(customerName, mobileNumber, businessName, businessType string) *Lead {
	return &Lead{
		ID:            uuid.New().String(),
		CustomerName:  customerName,
		MobileNumber:  mobileNumber,
		BusinessName:  businessName,
		BusinessType:  businessType,
		CallStatus:    StatusPending,
		TaxRegistered: "No",
		Date:          time.Now().Format("2006-01-02"),
	}
}

func IsValidBusinessType(t string) bool {
	for _, bt := range BusinessTypes {
		if bt == t {
			return true
		}
	}
	return false
}

func IsValidCallStatus(s string) bool {
	for _, cs := range CallStatuses {
		if cs == s {
			return true
		}
	}
	return false
}

func (l *Lead) Assigned() bool {
	return l.AssignedAgent != ""
}

func (l *Lead) Completed() bool {
	return l.CallStatus == StatusCompleted
}
