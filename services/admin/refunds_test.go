package admin

import (
	"context"
	"testing"

	"freshpress/models"
)

type fakeRefundAPI struct {
	refund   *models.Refund
	approved []string
	rejected []string
}

func (f *fakeRefundAPI) ListRefunds(ctx context.Context, token string, filter models.RefundFilter) (*models.RefundPage, error) {
	return &models.RefundPage{}, nil
}

func (f *fakeRefundAPI) GetRefund(ctx context.Context, token, id string) (*models.Refund, error) {
	return f.refund, nil
}

func (f *fakeRefundAPI) ApproveRefund(ctx context.Context, token, id, note string) error {
	f.approved = append(f.approved, id)
	return nil
}

func (f *fakeRefundAPI) RejectRefund(ctx context.Context, token, id, reason string) error {
	f.rejected = append(f.rejected, id)
	return nil
}

func (f *fakeRefundAPI) EscalateRefund(ctx context.Context, token, id, reason string) error {
	return nil
}

func TestAvailableActionsRespectApproveLimit(t *testing.T) {
	svc := &RefundService{API: &fakeRefundAPI{}, ApproveLimit: 500}

	small := models.Refund{Status: models.RefundStatusRequested, Amount: 200}
	actions := svc.AvailableActions(small)
	if len(actions) != 3 {
		t.Fatalf("expected approve/reject/escalate below the limit, got %v", actions)
	}

	large := models.Refund{Status: models.RefundStatusRequested, Amount: 1200}
	actions = svc.AvailableActions(large)
	for _, a := range actions {
		if a == models.RefundActionApprove {
			t.Fatalf("expected approve withheld above the limit, got %v", actions)
		}
	}
	if len(actions) != 2 {
		t.Fatalf("expected escalate and reject above the limit, got %v", actions)
	}

	settled := models.Refund{Status: models.RefundStatusApproved, Amount: 200}
	if actions = svc.AvailableActions(settled); len(actions) != 0 {
		t.Fatalf("expected no actions on a settled refund, got %v", actions)
	}
}

func TestApproveEnforcesLimitAndStatus(t *testing.T) {
	api := &fakeRefundAPI{refund: &models.Refund{ID: "rf-1", Status: models.RefundStatusRequested, Amount: 900}}
	svc := &RefundService{API: api, ApproveLimit: 500}

	if err := svc.Approve(context.Background(), "tok", "rf-1", ""); err == nil {
		t.Fatalf("expected approval above the limit to be rejected")
	}
	if len(api.approved) != 0 {
		t.Fatalf("expected no upstream approve call")
	}

	api.refund.Amount = 300
	if err := svc.Approve(context.Background(), "tok", "rf-1", "verified"); err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if len(api.approved) != 1 {
		t.Fatalf("expected one upstream approve call, got %d", len(api.approved))
	}

	api.refund.Status = models.RefundStatusApproved
	if err := svc.Approve(context.Background(), "tok", "rf-1", "again"); err == nil {
		t.Fatalf("expected a second approval to be rejected")
	}
}

func TestRejectRequiresReason(t *testing.T) {
	api := &fakeRefundAPI{refund: &models.Refund{ID: "rf-1", Status: models.RefundStatusRequested, Amount: 100}}
	svc := &RefundService{API: api, ApproveLimit: 500}

	if err := svc.Reject(context.Background(), "tok", "rf-1", "   "); err == nil {
		t.Fatalf("expected rejection without a reason to fail")
	}
	if err := svc.Reject(context.Background(), "tok", "rf-1", "duplicate claim"); err != nil {
		t.Fatalf("reject failed: %v", err)
	}
	if len(api.rejected) != 1 {
		t.Fatalf("expected one upstream reject call, got %d", len(api.rejected))
	}
}
