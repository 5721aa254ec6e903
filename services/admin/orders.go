package admin

import (
	"context"
	"strings"

	"freshpress/models"
)

// OrderAPI is the upstream slice the order dashboard needs.
type OrderAPI interface {
	ListOrders(ctx context.Context, token string, f models.OrderFilter) (*models.OrderPage, error)
	UpdateOrderStatus(ctx context.Context, token, orderID, status, note string) error
	AssignOrderToBranch(ctx context.Context, token, orderID, branchID string) error
}

type OrderService struct {
	API OrderAPI
}

// nextStatuses encodes the manual forward transitions offered per
// current status. Deliberately partial: the logistics-leg statuses
// (assigned_to_logistics_pickup, picked) are display-only and move
// through the logistics flow upstream, never by hand from here.
var nextStatuses = map[string][]string{
	models.OrderStatusPlaced:           {models.OrderStatusAssignedToBranch, models.OrderStatusCancelled},
	models.OrderStatusAssignedToBranch: {models.OrderStatusInProcess, models.OrderStatusCancelled},
	models.OrderStatusInProcess:        {models.OrderStatusReady, models.OrderStatusCancelled},
	models.OrderStatusReady:            {models.OrderStatusOutForDelivery, models.OrderStatusCancelled},
	models.OrderStatusOutForDelivery:   {models.OrderStatusDelivered},
}

// NextStatuses returns the manual transitions allowed from a status.
func NextStatuses(current string) []string {
	return nextStatuses[current]
}

// CanTransition reports whether the dashboard may move an order from
// current to next by hand.
func CanTransition(current, next string) bool {
	for _, allowed := range nextStatuses[current] {
		if allowed == next {
			return true
		}
	}
	return false
}

// List fetches a page of orders with sanitized paging.
func (s *OrderService) List(ctx context.Context, token string, f models.OrderFilter) (*models.OrderPage, error) {
	f.Sanitize()
	return s.API.ListOrders(ctx, token, f)
}

// UpdateStatus transitions an order, rejecting moves outside the
// transition table before any upstream call.
func (s *OrderService) UpdateStatus(ctx context.Context, token, orderID, current, next, note string) error {
	if !CanTransition(current, next) {
		return NewValidationError("transition from " + current + " to " + next + " is not allowed")
	}
	if next == models.OrderStatusCancelled && strings.TrimSpace(note) == "" {
		return NewValidationError("a cancellation reason is required")
	}
	return s.API.UpdateOrderStatus(ctx, token, orderID, next, note)
}

// AssignToBranch routes a placed order to a fulfilling branch.
func (s *OrderService) AssignToBranch(ctx context.Context, token, orderID, branchID string) error {
	if strings.TrimSpace(branchID) == "" {
		return NewValidationError("a branch is required")
	}
	return s.API.AssignOrderToBranch(ctx, token, orderID, branchID)
}
