package upstream

import (
	"context"
	"fmt"

	"freshpress/models"
)

// DistanceRequest is the delivery-charge preview request.
type DistanceRequest struct {
	PickupAddress string `json:"pickupAddress"` // address id
	BranchID      string `json:"branchId"`
	IsExpress     bool   `json:"isExpress"`
}

// CalculateDistance previews distance-based delivery feasibility and
// charge for a branch/address pair.
func (c *Client) CalculateDistance(ctx context.Context, token string, req DistanceRequest) (*models.DeliveryInfo, error) {
	var out models.DeliveryInfo
	if err := c.post(ctx, "/delivery/calculate-distance", token, req, &out); err != nil {
		return nil, fmt.Errorf("failed to calculate delivery charge: %w", err)
	}
	return &out, nil
}

// PricingRequest is the order pricing preview request.
type PricingRequest struct {
	Items     []models.OrderItem `json:"items"`
	IsExpress bool               `json:"isExpress"`
}

// CalculatePricing previews per-item and order-level totals.
func (c *Client) CalculatePricing(ctx context.Context, token string, req PricingRequest) (*models.PricingResult, error) {
	var out models.PricingResult
	if err := c.post(ctx, "/services/calculate-pricing", token, req, &out); err != nil {
		return nil, fmt.Errorf("failed to calculate pricing: %w", err)
	}
	return &out, nil
}
