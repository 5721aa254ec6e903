package admin

import (
	"context"
	"strings"

	"freshpress/config"
	"freshpress/models"
)

// RefundAPI is the upstream slice the refund dashboard needs.
type RefundAPI interface {
	ListRefunds(ctx context.Context, token string, f models.RefundFilter) (*models.RefundPage, error)
	GetRefund(ctx context.Context, token, id string) (*models.Refund, error)
	ApproveRefund(ctx context.Context, token, id, note string) error
	RejectRefund(ctx context.Context, token, id, reason string) error
	EscalateRefund(ctx context.Context, token, id, reason string) error
}

// RefundService mirrors the backend approval policy so the dashboard
// never offers an action the backend would refuse. The backend remains
// authoritative either way.
type RefundService struct {
	API          RefundAPI
	ApproveLimit float64
}

func NewRefundService(api RefundAPI) *RefundService {
	limit := config.AppConfig.RefundApproveLimit
	if limit <= 0 {
		limit = 500
	}
	return &RefundService{API: api, ApproveLimit: limit}
}

// AvailableActions returns the actions offered for a refund. Only
// requested refunds are actionable; above the approval ceiling the
// approve action is withheld in favour of escalation.
func (s *RefundService) AvailableActions(r models.Refund) []string {
	if r.Status != models.RefundStatusRequested {
		return nil
	}
	if r.Amount > s.ApproveLimit {
		return []string{models.RefundActionEscalate, models.RefundActionReject}
	}
	return []string{models.RefundActionApprove, models.RefundActionReject, models.RefundActionEscalate}
}

// List fetches a page of refunds with sanitized paging.
func (s *RefundService) List(ctx context.Context, token string, f models.RefundFilter) (*models.RefundPage, error) {
	f.Sanitize()
	return s.API.ListRefunds(ctx, token, f)
}

// Approve approves a requested refund within the ceiling.
func (s *RefundService) Approve(ctx context.Context, token, id, note string) error {
	refund, err := s.API.GetRefund(ctx, token, id)
	if err != nil {
		return err
	}
	if refund.Status != models.RefundStatusRequested {
		return NewValidationError("only requested refunds can be approved")
	}
	if refund.Amount > s.ApproveLimit {
		return NewValidationError("refund exceeds the approval limit; escalate it instead")
	}
	return s.API.ApproveRefund(ctx, token, id, note)
}

// Reject rejects a requested refund; the reason is mandatory.
func (s *RefundService) Reject(ctx context.Context, token, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return NewValidationError("a rejection reason is required")
	}
	refund, err := s.API.GetRefund(ctx, token, id)
	if err != nil {
		return err
	}
	if refund.Status != models.RefundStatusRequested {
		return NewValidationError("only requested refunds can be rejected")
	}
	return s.API.RejectRefund(ctx, token, id, reason)
}

// Escalate routes a refund to a higher-authority reviewer; the reason
// is mandatory.
func (s *RefundService) Escalate(ctx context.Context, token, id, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return NewValidationError("an escalation reason is required")
	}
	refund, err := s.API.GetRefund(ctx, token, id)
	if err != nil {
		return err
	}
	if refund.Status != models.RefundStatusRequested {
		return NewValidationError("only requested refunds can be escalated")
	}
	return s.API.EscalateRefund(ctx, token, id, reason)
}
