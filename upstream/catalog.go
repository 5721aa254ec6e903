package upstream

import (
	"context"
	"fmt"
	"net/url"

	"freshpress/models"
)

// Branches fetches all branch locations.
func (c *Client) Branches(ctx context.Context) ([]models.Branch, error) {
	var out struct {
		Branches []models.Branch `json:"branches"`
	}
	if err := c.get(ctx, "/services/branches", "", &out); err != nil {
		return nil, fmt.Errorf("failed to fetch branches: %w", err)
	}
	return out.Branches, nil
}

// BranchServices fetches the services offered by a branch.
func (c *Client) BranchServices(ctx context.Context, branchID string) ([]models.Service, error) {
	var out struct {
		Services []models.Service `json:"services"`
	}
	if err := c.get(ctx, "/services/branch/"+url.PathEscape(branchID), "", &out); err != nil {
		return nil, fmt.Errorf("failed to fetch branch services: %w", err)
	}
	return out.Services, nil
}

// ServiceItems fetches the item catalog for a branch, optionally scoped
// to one service code.
func (c *Client) ServiceItems(ctx context.Context, branchID, serviceCode string) ([]models.ServiceItem, error) {
	q := url.Values{}
	if serviceCode != "" {
		q.Set("service", serviceCode)
	}
	var out struct {
		Items []models.ServiceItem `json:"items"`
	}
	path := withQuery("/service-items/branch/"+url.PathEscape(branchID), q)
	if err := c.get(ctx, path, "", &out); err != nil {
		return nil, fmt.Errorf("failed to fetch service items: %w", err)
	}
	return out.Items, nil
}

// Addresses fetches the authenticated customer's saved addresses.
func (c *Client) Addresses(ctx context.Context, token string) ([]models.Address, error) {
	var out struct {
		Addresses []models.Address `json:"addresses"`
	}
	if err := c.get(ctx, "/customer/addresses", token, &out); err != nil {
		return nil, fmt.Errorf("failed to fetch addresses: %w", err)
	}
	return out.Addresses, nil
}

// CreateAddress saves a new address for the authenticated customer.
func (c *Client) CreateAddress(ctx context.Context, token string, addr models.Address) (*models.Address, error) {
	var out struct {
		Address models.Address `json:"address"`
	}
	if err := c.post(ctx, "/customer/addresses", token, addr, &out); err != nil {
		return nil, fmt.Errorf("failed to create address: %w", err)
	}
	return &out.Address, nil
}
