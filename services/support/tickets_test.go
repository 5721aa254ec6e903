package support

import (
	"context"
	"testing"

	"freshpress/models"
)

type fakeTicketAPI struct {
	resolved  map[string]string
	messages  []string
	escalated []string
	refunds   []float64
}

func (f *fakeTicketAPI) ListTickets(ctx context.Context, token string, filter models.ListFilter) (*models.TicketPage, error) {
	return &models.TicketPage{}, nil
}

func (f *fakeTicketAPI) GetTicket(ctx context.Context, token, id string) (*models.TicketDetail, error) {
	return &models.TicketDetail{}, nil
}

func (f *fakeTicketAPI) SendTicketMessage(ctx context.Context, token, id, body string, isInternal bool) error {
	f.messages = append(f.messages, body)
	return nil
}

func (f *fakeTicketAPI) TakeTicket(ctx context.Context, token, id string) error {
	return nil
}

func (f *fakeTicketAPI) ResolveTicket(ctx context.Context, token, id, resolution string) error {
	if f.resolved == nil {
		f.resolved = map[string]string{}
	}
	f.resolved[id] = resolution
	return nil
}

func (f *fakeTicketAPI) EscalateTicket(ctx context.Context, token, id, reason string) error {
	f.escalated = append(f.escalated, reason)
	return nil
}

func (f *fakeTicketAPI) CreateTicketRefund(ctx context.Context, token, ticketID string, amount float64, reason string) (*models.Refund, error) {
	f.refunds = append(f.refunds, amount)
	return &models.Refund{ID: "rf-1", TicketID: ticketID, Amount: amount}, nil
}

func TestSendMessageRequiresBody(t *testing.T) {
	api := &fakeTicketAPI{}
	svc := &TicketService{API: api}

	if err := svc.SendMessage(context.Background(), "tok", "tk-1", "   ", false); err == nil {
		t.Fatalf("expected an empty message to be rejected")
	}
	if err := svc.SendMessage(context.Background(), "tok", "tk-1", "on it", true); err != nil {
		t.Fatalf("send failed: %v", err)
	}
	if len(api.messages) != 1 {
		t.Fatalf("expected one upstream message, got %d", len(api.messages))
	}
}

func TestResolveEncodesStructuredResolution(t *testing.T) {
	api := &fakeTicketAPI{}
	svc := &TicketService{API: api}

	err := svc.Resolve(context.Background(), "tok", "tk-1", Resolution{
		Kind:   ResolutionRefund,
		Amount: 150,
		Notes:  "stained shirt",
	})
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got := api.resolved["tk-1"]; got != "[REFUND: ₹150.00] stained shirt" {
		t.Fatalf("unexpected encoded resolution: %q", got)
	}

	// An invalid resolution never reaches upstream.
	err = svc.Resolve(context.Background(), "tok", "tk-2", Resolution{Kind: ResolutionRefund, Notes: "no amount"})
	if err == nil {
		t.Fatalf("expected an invalid resolution to be rejected")
	}
	if _, ok := api.resolved["tk-2"]; ok {
		t.Fatalf("expected no upstream resolve call for an invalid resolution")
	}
}

func TestCreateRefundValidatesInput(t *testing.T) {
	api := &fakeTicketAPI{}
	svc := &TicketService{API: api}

	if _, err := svc.CreateRefund(context.Background(), "tok", "tk-1", 0, "late"); err == nil {
		t.Fatalf("expected a zero amount to be rejected")
	}
	if _, err := svc.CreateRefund(context.Background(), "tok", "tk-1", 120, " "); err == nil {
		t.Fatalf("expected a missing reason to be rejected")
	}

	refund, err := svc.CreateRefund(context.Background(), "tok", "tk-1", 120, "damaged garment")
	if err != nil {
		t.Fatalf("create refund failed: %v", err)
	}
	if refund.TicketID != "tk-1" {
		t.Fatalf("expected the ticket id carried on the refund, got %q", refund.TicketID)
	}
}

func TestEscalateRequiresReason(t *testing.T) {
	api := &fakeTicketAPI{}
	svc := &TicketService{API: api}

	if err := svc.Escalate(context.Background(), "tok", "tk-1", ""); err == nil {
		t.Fatalf("expected escalation without a reason to fail")
	}
	if err := svc.Escalate(context.Background(), "tok", "tk-1", "sla breach"); err != nil {
		t.Fatalf("escalate failed: %v", err)
	}
}
