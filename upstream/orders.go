package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"freshpress/models"
)

// CreateOrder submits the assembled wizard payload. The echoed order
// number/id is all the client keeps.
func (c *Client) CreateOrder(ctx context.Context, token string, payload models.OrderPayload) (*models.OrderConfirmation, error) {
	var out models.OrderConfirmation
	if err := c.post(ctx, "/customer/orders", token, payload, &out); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &out, nil
}

// RescheduleOrder moves an existing order to a new pickup date and slot.
func (c *Client) RescheduleOrder(ctx context.Context, token, orderID, date, timeslot string) error {
	body := map[string]string{"pickupDate": date, "timeslot": timeslot}
	path := "/customer/orders/" + url.PathEscape(orderID) + "/reschedule"
	if err := c.put(ctx, path, token, body, nil); err != nil {
		return fmt.Errorf("failed to reschedule order: %w", err)
	}
	return nil
}

// ListOrders fetches the paginated admin order list.
func (c *Client) ListOrders(ctx context.Context, token string, f models.OrderFilter) (*models.OrderPage, error) {
	q := listQuery(f.ListFilter)
	if f.BranchID != "" {
		q.Set("branchId", f.BranchID)
	}
	if f.IsExpress != nil {
		q.Set("isExpress", strconv.FormatBool(*f.IsExpress))
	}
	var out models.OrderPage
	if err := c.get(ctx, withQuery("/admin/orders", q), token, &out); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return &out, nil
}

// UpdateOrderStatus transitions an order to a new status.
func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID, status, note string) error {
	body := map[string]string{"status": status}
	if note != "" {
		body["note"] = note
	}
	path := "/admin/orders/" + url.PathEscape(orderID) + "/status"
	if err := c.put(ctx, path, token, body, nil); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

// AssignOrderToBranch routes a placed order to a fulfilling branch.
func (c *Client) AssignOrderToBranch(ctx context.Context, token, orderID, branchID string) error {
	body := map[string]string{"branchId": branchID}
	path := "/admin/orders/" + url.PathEscape(orderID) + "/assign"
	if err := c.put(ctx, path, token, body, nil); err != nil {
		return fmt.Errorf("failed to assign order: %w", err)
	}
	return nil
}
