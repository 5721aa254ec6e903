package admin

import (
	"context"

	"freshpress/models"
)

// CustomerAPI is the upstream slice the customer dashboard needs.
type CustomerAPI interface {
	ListCustomers(ctx context.Context, token string, f models.CustomerFilter) (*models.CustomerPage, error)
	SetCustomerActive(ctx context.Context, token, id string, active bool) error
	SetCustomerVIP(ctx context.Context, token, id string, vip bool) error
}

type CustomerService struct {
	API CustomerAPI
}

// List fetches a page of customers with sanitized paging.
func (s *CustomerService) List(ctx context.Context, token string, f models.CustomerFilter) (*models.CustomerPage, error) {
	f.Sanitize()
	return s.API.ListCustomers(ctx, token, f)
}

// SetActive toggles the active flag.
func (s *CustomerService) SetActive(ctx context.Context, token, id string, active bool) error {
	return s.API.SetCustomerActive(ctx, token, id, active)
}

// SetVIP toggles the VIP flag.
func (s *CustomerService) SetVIP(ctx context.Context, token, id string, vip bool) error {
	return s.API.SetCustomerVIP(ctx, token, id, vip)
}
