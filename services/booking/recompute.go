package booking

import (
	"context"
	"fmt"
	"sort"

	"freshpress/models"
	"freshpress/upstream"
)

// refreshDelivery fetches a delivery preview for the session state at
// revision rev. The result is committed only if the session still sits
// at that revision; a response to a superseded request is dropped.
func (svc *DefaultWizardService) refreshDelivery(ctx context.Context, token, sessionID string, rev int64) error {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.DeliveryRev != rev {
		return nil
	}

	info, err := svc.API.CalculateDistance(ctx, token, upstream.DistanceRequest{
		PickupAddress: session.AddressID,
		BranchID:      session.BranchID,
		IsExpress:     session.IsExpress,
	})
	if err != nil {
		return fmt.Errorf("delivery preview failed: %w", err)
	}

	// Re-read: the session may have moved on while the request was in
	// flight.
	session, err = svc.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.DeliveryRev != rev {
		return nil
	}
	session.Delivery = info
	return svc.Store.Save(ctx, session)
}

// refreshPricing recomputes order totals under the same stale-response
// discipline as refreshDelivery.
func (svc *DefaultWizardService) refreshPricing(ctx context.Context, token, sessionID string, rev int64) error {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.PricingRev != rev {
		return nil
	}

	items := orderItems(session)
	if len(items) == 0 {
		return nil
	}
	result, err := svc.API.CalculatePricing(ctx, token, upstream.PricingRequest{
		Items:     items,
		IsExpress: session.IsExpress,
	})
	if err != nil {
		return fmt.Errorf("pricing preview failed: %w", err)
	}

	session, err = svc.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if session.PricingRev != rev {
		return nil
	}
	session.Pricing = result
	return svc.Store.Save(ctx, session)
}

// orderItems builds the order lines from the quantity map and the
// catalog snapshot, in deterministic item order.
func orderItems(session *models.WizardSession) []models.OrderItem {
	catalog := map[string]models.ServiceItem{}
	for _, item := range session.Items {
		catalog[item.ID] = item
	}

	ids := make([]string, 0, len(session.Quantities))
	for itemID, qty := range session.Quantities {
		if qty > 0 {
			ids = append(ids, itemID)
		}
	}
	sort.Strings(ids)

	lines := make([]models.OrderItem, 0, len(ids))
	for _, itemID := range ids {
		line := models.OrderItem{
			ItemType: itemID,
			Service:  session.ServiceCode,
			Category: "normal",
			Quantity: session.Quantities[itemID],
		}
		if item, ok := catalog[itemID]; ok {
			line.ItemType = item.Name
			if item.Category != "" {
				line.Category = item.Category
			}
		}
		lines = append(lines, line)
	}
	return lines
}
