package admin

import (
	"context"
	"testing"

	"freshpress/models"
)

type fakeOrderAPI struct {
	updated  []string
	assigned []string
}

func (f *fakeOrderAPI) ListOrders(ctx context.Context, token string, filter models.OrderFilter) (*models.OrderPage, error) {
	return &models.OrderPage{}, nil
}

func (f *fakeOrderAPI) UpdateOrderStatus(ctx context.Context, token, orderID, status, note string) error {
	f.updated = append(f.updated, orderID+":"+status)
	return nil
}

func (f *fakeOrderAPI) AssignOrderToBranch(ctx context.Context, token, orderID, branchID string) error {
	f.assigned = append(f.assigned, orderID+":"+branchID)
	return nil
}

func TestCanTransitionFollowsTable(t *testing.T) {
	allowed := [][2]string{
		{models.OrderStatusPlaced, models.OrderStatusAssignedToBranch},
		{models.OrderStatusPlaced, models.OrderStatusCancelled},
		{models.OrderStatusAssignedToBranch, models.OrderStatusInProcess},
		{models.OrderStatusInProcess, models.OrderStatusReady},
		{models.OrderStatusReady, models.OrderStatusOutForDelivery},
		{models.OrderStatusOutForDelivery, models.OrderStatusDelivered},
	}
	for _, pair := range allowed {
		if !CanTransition(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be allowed", pair[0], pair[1])
		}
	}

	blocked := [][2]string{
		{models.OrderStatusPlaced, models.OrderStatusDelivered},
		{models.OrderStatusDelivered, models.OrderStatusPlaced},
		{models.OrderStatusOutForDelivery, models.OrderStatusCancelled},
		{models.OrderStatusCancelled, models.OrderStatusPlaced},
		// Logistics-leg statuses move through the logistics flow, never
		// by hand from the dashboard.
		{models.OrderStatusLogisticsPickup, models.OrderStatusPicked},
		{models.OrderStatusPicked, models.OrderStatusInProcess},
	}
	for _, pair := range blocked {
		if CanTransition(pair[0], pair[1]) {
			t.Errorf("expected %s -> %s to be blocked", pair[0], pair[1])
		}
	}
}

func TestUpdateStatusValidatesBeforeUpstreamCall(t *testing.T) {
	api := &fakeOrderAPI{}
	svc := &OrderService{API: api}

	err := svc.UpdateStatus(context.Background(), "tok", "ord-1", models.OrderStatusPlaced, models.OrderStatusDelivered, "")
	if err == nil {
		t.Fatalf("expected an out-of-table transition to be rejected")
	}
	if len(api.updated) != 0 {
		t.Fatalf("expected no upstream call on a rejected transition")
	}

	err = svc.UpdateStatus(context.Background(), "tok", "ord-1", models.OrderStatusPlaced, models.OrderStatusCancelled, "  ")
	if err == nil {
		t.Fatalf("expected cancellation without a reason to be rejected")
	}

	err = svc.UpdateStatus(context.Background(), "tok", "ord-1", models.OrderStatusPlaced, models.OrderStatusCancelled, "customer request")
	if err != nil {
		t.Fatalf("expected cancellation with a reason to succeed, got %v", err)
	}
	if len(api.updated) != 1 || api.updated[0] != "ord-1:cancelled" {
		t.Fatalf("unexpected upstream calls: %v", api.updated)
	}
}

func TestAssignToBranchRequiresBranch(t *testing.T) {
	api := &fakeOrderAPI{}
	svc := &OrderService{API: api}

	if err := svc.AssignToBranch(context.Background(), "tok", "ord-1", ""); err == nil {
		t.Fatalf("expected an empty branch to be rejected")
	}
	if err := svc.AssignToBranch(context.Background(), "tok", "ord-1", "br-2"); err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if len(api.assigned) != 1 || api.assigned[0] != "ord-1:br-2" {
		t.Fatalf("unexpected upstream calls: %v", api.assigned)
	}
}
