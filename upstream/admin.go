package upstream

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"freshpress/models"
)

// ListComplaints fetches the paginated complaint dashboard.
func (c *Client) ListComplaints(ctx context.Context, token string, f models.ComplaintFilter) (*models.ComplaintPage, error) {
	q := listQuery(f.ListFilter)
	if f.SLABreached != nil {
		q.Set("slaBreached", strconv.FormatBool(*f.SLABreached))
	}
	var out models.ComplaintPage
	if err := c.get(ctx, withQuery("/admin/complaints", q), token, &out); err != nil {
		return nil, fmt.Errorf("failed to list complaints: %w", err)
	}
	return &out, nil
}

// AssignComplaint routes a complaint to a staff member.
func (c *Client) AssignComplaint(ctx context.Context, token, id, assignee string) error {
	body := map[string]string{"assignedTo": assignee}
	return c.put(ctx, "/admin/complaints/"+url.PathEscape(id)+"/assign", token, body, nil)
}

// ResolveComplaint closes a complaint with a resolution note.
func (c *Client) ResolveComplaint(ctx context.Context, token, id, note string) error {
	body := map[string]string{"resolution": note}
	return c.put(ctx, "/admin/complaints/"+url.PathEscape(id)+"/resolve", token, body, nil)
}

// EscalateComplaint raises a complaint to a higher-authority reviewer.
func (c *Client) EscalateComplaint(ctx context.Context, token, id, reason string) error {
	body := map[string]string{"reason": reason}
	return c.put(ctx, "/admin/complaints/"+url.PathEscape(id)+"/escalate", token, body, nil)
}

// ListCustomers fetches the paginated customer dashboard.
func (c *Client) ListCustomers(ctx context.Context, token string, f models.CustomerFilter) (*models.CustomerPage, error) {
	q := listQuery(f.ListFilter)
	if f.ActiveOnly {
		q.Set("activeOnly", "true")
	}
	if f.VIPOnly {
		q.Set("vipOnly", "true")
	}
	var out models.CustomerPage
	if err := c.get(ctx, withQuery("/admin/customers", q), token, &out); err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return &out, nil
}

// SetCustomerActive toggles the active flag on a customer.
func (c *Client) SetCustomerActive(ctx context.Context, token, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.put(ctx, "/admin/customers/"+url.PathEscape(id)+"/active", token, body, nil)
}

// SetCustomerVIP toggles the VIP flag on a customer.
func (c *Client) SetCustomerVIP(ctx context.Context, token, id string, vip bool) error {
	body := map[string]bool{"isVip": vip}
	return c.put(ctx, "/admin/customers/"+url.PathEscape(id)+"/vip", token, body, nil)
}

// ListRefunds fetches the paginated refund dashboard.
func (c *Client) ListRefunds(ctx context.Context, token string, f models.RefundFilter) (*models.RefundPage, error) {
	q := listQuery(f.ListFilter)
	if f.MinAmount > 0 {
		q.Set("minAmount", strconv.FormatFloat(f.MinAmount, 'f', 2, 64))
	}
	var out models.RefundPage
	if err := c.get(ctx, withQuery("/admin/refunds", q), token, &out); err != nil {
		return nil, fmt.Errorf("failed to list refunds: %w", err)
	}
	return &out, nil
}

// GetRefund fetches a single refund.
func (c *Client) GetRefund(ctx context.Context, token, id string) (*models.Refund, error) {
	var out models.Refund
	if err := c.get(ctx, "/admin/refunds/"+url.PathEscape(id), token, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch refund: %w", err)
	}
	return &out, nil
}

// ApproveRefund approves a requested refund.
func (c *Client) ApproveRefund(ctx context.Context, token, id, note string) error {
	body := map[string]string{"note": note}
	return c.post(ctx, "/admin/refunds/"+url.PathEscape(id)+"/approve", token, body, nil)
}

// RejectRefund rejects a requested refund with a mandatory reason.
func (c *Client) RejectRefund(ctx context.Context, token, id, reason string) error {
	body := map[string]string{"reason": reason}
	return c.post(ctx, "/admin/refunds/"+url.PathEscape(id)+"/reject", token, body, nil)
}

// EscalateRefund escalates a refund above the approval ceiling.
func (c *Client) EscalateRefund(ctx context.Context, token, id, reason string) error {
	body := map[string]string{"reason": reason}
	return c.post(ctx, "/admin/refunds/"+url.PathEscape(id)+"/escalate", token, body, nil)
}

// ListLogisticsPartners fetches the paginated logistics dashboard.
func (c *Client) ListLogisticsPartners(ctx context.Context, token string, f models.ListFilter) (*models.LogisticsPage, error) {
	var out models.LogisticsPage
	if err := c.get(ctx, withQuery("/admin/logistics", listQuery(f)), token, &out); err != nil {
		return nil, fmt.Errorf("failed to list logistics partners: %w", err)
	}
	return &out, nil
}

// SetLogisticsActive toggles a logistics partner's active flag.
func (c *Client) SetLogisticsActive(ctx context.Context, token, id string, active bool) error {
	body := map[string]bool{"isActive": active}
	return c.put(ctx, "/admin/logistics/"+url.PathEscape(id)+"/active", token, body, nil)
}

// ListStaff fetches the paginated staff list.
func (c *Client) ListStaff(ctx context.Context, token string, f models.ListFilter) (*models.StaffPage, error) {
	var out models.StaffPage
	if err := c.get(ctx, withQuery("/admin/staff", listQuery(f)), token, &out); err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	return &out, nil
}

// CreateStaff creates an admin-portal staff member.
func (c *Client) CreateStaff(ctx context.Context, token string, input models.StaffInput) (*models.StaffMember, error) {
	var out models.StaffMember
	if err := c.post(ctx, "/admin/staff", token, input, &out); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}
	return &out, nil
}

// UpdateStaffPermissions replaces a staff member's permission matrix.
func (c *Client) UpdateStaffPermissions(ctx context.Context, token, id string, permissions models.PermissionMatrix) error {
	body := map[string]models.PermissionMatrix{"permissions": permissions}
	return c.put(ctx, "/admin/staff/"+url.PathEscape(id)+"/permissions", token, body, nil)
}

// ListCenterAdmins fetches branch-scoped admin accounts.
func (c *Client) ListCenterAdmins(ctx context.Context, token string, f models.ListFilter) (*models.StaffPage, error) {
	var out models.StaffPage
	if err := c.get(ctx, withQuery("/admin/center-admins", listQuery(f)), token, &out); err != nil {
		return nil, fmt.Errorf("failed to list center admins: %w", err)
	}
	return &out, nil
}

// CreateCenterAdmin creates a branch-scoped admin account.
func (c *Client) CreateCenterAdmin(ctx context.Context, token string, input models.StaffInput) (*models.CenterAdmin, error) {
	var out models.CenterAdmin
	if err := c.post(ctx, "/admin/center-admins", token, input, &out); err != nil {
		return nil, fmt.Errorf("failed to create center admin: %w", err)
	}
	return &out, nil
}

// ListAudit fetches the filtered audit log.
func (c *Client) ListAudit(ctx context.Context, token string, f models.AuditFilter) (*models.AuditPage, error) {
	q := listQuery(f.ListFilter)
	if f.Actor != "" {
		q.Set("actor", f.Actor)
	}
	if f.EntityType != "" {
		q.Set("entityType", f.EntityType)
	}
	if f.From != "" {
		q.Set("from", f.From)
	}
	if f.To != "" {
		q.Set("to", f.To)
	}
	var out models.AuditPage
	if err := c.get(ctx, withQuery("/admin/audit", q), token, &out); err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return &out, nil
}
