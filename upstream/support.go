package upstream

import (
	"context"
	"fmt"
	"net/url"

	"freshpress/models"
)

// ListTickets fetches the paginated support ticket queue.
func (c *Client) ListTickets(ctx context.Context, token string, f models.ListFilter) (*models.TicketPage, error) {
	var out models.TicketPage
	if err := c.get(ctx, withQuery("/support/tickets", listQuery(f)), token, &out); err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return &out, nil
}

// GetTicket fetches a ticket with its full message thread.
func (c *Client) GetTicket(ctx context.Context, token, id string) (*models.TicketDetail, error) {
	var out models.TicketDetail
	if err := c.get(ctx, "/support/tickets/"+url.PathEscape(id), token, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch ticket: %w", err)
	}
	return &out, nil
}

// SendTicketMessage appends a message to the thread.
func (c *Client) SendTicketMessage(ctx context.Context, token, id, body string, isInternal bool) error {
	payload := map[string]interface{}{"body": body, "isInternal": isInternal}
	return c.post(ctx, "/support/tickets/"+url.PathEscape(id)+"/messages", token, payload, nil)
}

// TakeTicket moves an open ticket to in_progress under the caller.
func (c *Client) TakeTicket(ctx context.Context, token, id string) error {
	return c.post(ctx, "/support/tickets/"+url.PathEscape(id)+"/take", token, nil, nil)
}

// ResolveTicket closes a ticket with resolution text.
func (c *Client) ResolveTicket(ctx context.Context, token, id, resolution string) error {
	payload := map[string]string{"resolution": resolution}
	return c.post(ctx, "/support/tickets/"+url.PathEscape(id)+"/resolve", token, payload, nil)
}

// EscalateTicket raises a ticket with a mandatory reason.
func (c *Client) EscalateTicket(ctx context.Context, token, id, reason string) error {
	payload := map[string]string{"reason": reason}
	return c.post(ctx, "/support/tickets/"+url.PathEscape(id)+"/escalate", token, payload, nil)
}

// CreateTicketRefund raises a refund request from a ticket, carrying the
// ticket id for traceability.
func (c *Client) CreateTicketRefund(ctx context.Context, token, ticketID string, amount float64, reason string) (*models.Refund, error) {
	payload := map[string]interface{}{
		"ticketId": ticketID,
		"amount":   amount,
		"reason":   reason,
	}
	var out models.Refund
	if err := c.post(ctx, "/admin/refunds", token, payload, &out); err != nil {
		return nil, fmt.Errorf("failed to create refund from ticket: %w", err)
	}
	return &out, nil
}
