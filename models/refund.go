package models

import "time"

// Refund statuses.
const (
	RefundStatusRequested = "requested"
	RefundStatusApproved  = "approved"
	RefundStatusRejected  = "rejected"
	RefundStatusEscalated = "escalated"
	RefundStatusProcessed = "processed"
)

// Refund action names offered to the dashboard.
const (
	RefundActionApprove  = "approve"
	RefundActionReject   = "reject"
	RefundActionEscalate = "escalate"
)

type Refund struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"orderId"`
	TicketID     string    `json:"ticketId,omitempty"` // set when raised from a support ticket
	CustomerName string    `json:"customerName"`
	Amount       float64   `json:"amount"`
	Reason       string    `json:"reason"`
	Status       string    `json:"status"`
	RequestedBy  string    `json:"requestedBy,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type RefundPage struct {
	Items      []Refund   `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type RefundFilter struct {
	ListFilter
	MinAmount float64 `form:"minAmount" json:"minAmount,omitempty"`
}
