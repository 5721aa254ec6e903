package support

import (
	"context"
	"fmt"
	"strings"

	"freshpress/models"
)

type TicketError struct {
	Code    string
	Message string
}

func (e *TicketError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewTicketError(msg string) error {
	return &TicketError{Code: "ticketError", Message: msg}
}

// TicketAPI is the upstream slice the support panel needs.
type TicketAPI interface {
	ListTickets(ctx context.Context, token string, f models.ListFilter) (*models.TicketPage, error)
	GetTicket(ctx context.Context, token, id string) (*models.TicketDetail, error)
	SendTicketMessage(ctx context.Context, token, id, body string, isInternal bool) error
	TakeTicket(ctx context.Context, token, id string) error
	ResolveTicket(ctx context.Context, token, id, resolution string) error
	EscalateTicket(ctx context.Context, token, id, reason string) error
	CreateTicketRefund(ctx context.Context, token, ticketID string, amount float64, reason string) (*models.Refund, error)
}

type TicketService struct {
	API TicketAPI
}

// List fetches the ticket queue with sanitized paging.
func (s *TicketService) List(ctx context.Context, token string, f models.ListFilter) (*models.TicketPage, error) {
	f.Sanitize()
	return s.API.ListTickets(ctx, token, f)
}

// Detail fetches a ticket with its full message thread.
func (s *TicketService) Detail(ctx context.Context, token, id string) (*models.TicketDetail, error) {
	return s.API.GetTicket(ctx, token, id)
}

// SendMessage appends to the thread; the caller refetches afterwards.
func (s *TicketService) SendMessage(ctx context.Context, token, id, body string, isInternal bool) error {
	if strings.TrimSpace(body) == "" {
		return NewTicketError("message body is required")
	}
	return s.API.SendTicketMessage(ctx, token, id, body, isInternal)
}

// Take moves an open ticket to in_progress under the caller.
func (s *TicketService) Take(ctx context.Context, token, id string) error {
	return s.API.TakeTicket(ctx, token, id)
}

// Resolve closes the ticket with a structured resolution, rendered to
// the legacy text form the upstream field expects.
func (s *TicketService) Resolve(ctx context.Context, token, id string, resolution Resolution) error {
	if err := resolution.Validate(); err != nil {
		return err
	}
	return s.API.ResolveTicket(ctx, token, id, resolution.EncodeLegacy())
}

// Escalate raises the ticket; a reason is mandatory.
func (s *TicketService) Escalate(ctx context.Context, token, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return NewTicketError("an escalation reason is required")
	}
	return s.API.EscalateTicket(ctx, token, id, reason)
}

// CreateRefund raises a refund request carrying the ticket id for
// traceability.
func (s *TicketService) CreateRefund(ctx context.Context, token, ticketID string, amount float64, reason string) (*models.Refund, error) {
	if amount <= 0 {
		return nil, NewTicketError("a positive refund amount is required")
	}
	if strings.TrimSpace(reason) == "" {
		return nil, NewTicketError("a refund reason is required")
	}
	return s.API.CreateTicketRefund(ctx, token, ticketID, amount, reason)
}
