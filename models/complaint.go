package models

import "time"

// Complaint statuses as used by the admin dashboard.
const (
	ComplaintStatusOpen       = "open"
	ComplaintStatusAssigned   = "assigned"
	ComplaintStatusResolved   = "resolved"
	ComplaintStatusEscalated  = "escalated"
	ComplaintStatusClosed     = "closed"
)

type Complaint struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId,omitempty"`
	CustomerName string    `json:"customerName"`
	Category     string    `json:"category"`
	Priority     string    `json:"priority"`
	Status       string    `json:"status"`
	Subject      string    `json:"subject"`
	Description  string    `json:"description,omitempty"`
	AssignedTo   string    `json:"assignedTo,omitempty"`
	SLABreached  bool      `json:"slaBreached"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ComplaintPage struct {
	Items      []Complaint `json:"items"`
	Pagination Pagination  `json:"pagination"`
}

type ComplaintFilter struct {
	ListFilter
	SLABreached *bool `form:"slaBreached" json:"slaBreached,omitempty"`
}
