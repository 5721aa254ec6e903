package models

import "time"

// Support ticket statuses.
const (
	TicketStatusOpen       = "open"
	TicketStatusInProgress = "in_progress"
	TicketStatusResolved   = "resolved"
	TicketStatusEscalated  = "escalated"
	TicketStatusClosed     = "closed"
)

type SupportTicket struct {
	ID           string    `json:"id"`
	Subject      string    `json:"subject"`
	CustomerName string    `json:"customerName"`
	OrderID      string    `json:"orderId,omitempty"`
	Status       string    `json:"status"`
	Priority     string    `json:"priority"`
	AssignedTo   string    `json:"assignedTo,omitempty"`
	SLADeadline  time.Time `json:"slaDeadline,omitempty"`
	Overdue      bool      `json:"overdue"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TicketMessage is one entry of the chronological thread. Internal
// notes are rendered differently and never shown to the customer.
type TicketMessage struct {
	ID         string    `json:"id"`
	TicketID   string    `json:"ticketId"`
	Author     string    `json:"author"`
	AuthorRole string    `json:"authorRole"` // customer | agent
	Body       string    `json:"body"`
	IsInternal bool      `json:"isInternal"`
	CreatedAt  time.Time `json:"createdAt"`
}

type TicketPage struct {
	Items      []SupportTicket `json:"items"`
	Pagination Pagination      `json:"pagination"`
}

// TicketDetail combines the ticket with its message thread.
type TicketDetail struct {
	Ticket   SupportTicket   `json:"ticket"`
	Messages []TicketMessage `json:"messages"`
}
