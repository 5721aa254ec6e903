package upstream

import (
	"context"
	"fmt"

	"freshpress/models"
)

// LoginResult is the upstream authentication response for any portal.
type LoginResult struct {
	Token       string                  `json:"token"`
	UserID      string                  `json:"userId"`
	Role        string                  `json:"role"`
	BranchID    string                  `json:"branchId,omitempty"`
	Permissions models.PermissionMatrix `json:"permissions,omitempty"`
}

// Login authenticates a portal user upstream. The portal segment picks
// the auth family (customer, admin, support, center-admin).
func (c *Client) Login(ctx context.Context, portal, email, password string) (*LoginResult, error) {
	payload := map[string]string{"email": email, "password": password}
	var out LoginResult
	if err := c.post(ctx, "/"+portal+"/auth/login", "", payload, &out); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}
	return &out, nil
}

// Logout revokes the upstream token.
func (c *Client) Logout(ctx context.Context, portal, token string) error {
	return c.post(ctx, "/"+portal+"/auth/logout", token, nil, nil)
}
