package booking

import (
	"context"
	"fmt"
	"time"

	"freshpress/models"

	"github.com/google/uuid"
)

// DefaultWizardService drives the six-step booking flow over a session
// store and the upstream API.
type DefaultWizardService struct {
	Store SessionStore
	API   UpstreamAPI
}

// Initiate creates a fresh session at step 1 with empty selections.
// CustomerID is empty for unauthenticated browsing; it only becomes
// mandatory at the items -> address boundary.
func (svc *DefaultWizardService) Initiate(ctx context.Context, customerID string) (*models.WizardSession, error) {
	session := &models.WizardSession{
		SessionID:  uuid.New().String(),
		CustomerID: customerID,
		Step:       models.StepBranch,
		Quantities: map[string]int{},
		CreatedAt:  time.Now(),
	}
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to initiate wizard session: %w", err)
	}
	return session, nil
}

// Get returns the current session state.
func (svc *DefaultWizardService) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	return svc.Store.Get(ctx, sessionID)
}

// Update applies field changes and runs the dependent recomputations.
// Service selection always clears item quantities, selecting the same
// service again included, because the item catalog is service-scoped.
func (svc *DefaultWizardService) Update(ctx context.Context, sessionID, token string, input UpdateInput) (*models.WizardSession, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	deliveryChanged := false
	pricingChanged := false
	catalogChanged := false

	if input.BranchID != nil && *input.BranchID != session.BranchID {
		session.BranchID = *input.BranchID
		deliveryChanged = true
		catalogChanged = session.ServiceCode != ""
	}
	if input.ServiceCode != nil {
		session.ServiceCode = *input.ServiceCode
		session.Quantities = map[string]int{}
		session.Pricing = nil
		pricingChanged = true
		catalogChanged = true
	}
	if input.Quantities != nil {
		cleaned := map[string]int{}
		for itemID, qty := range input.Quantities {
			if qty < 0 {
				return nil, NewStepError("item quantities cannot be negative")
			}
			if qty > 0 {
				cleaned[itemID] = qty
			}
		}
		session.Quantities = cleaned
		pricingChanged = true
	}
	if input.AddressID != nil && *input.AddressID != session.AddressID {
		session.AddressID = *input.AddressID
		deliveryChanged = true
	}
	if input.Date != nil {
		session.Date = *input.Date
	}
	if input.Timeslot != nil {
		session.Timeslot = *input.Timeslot
	}
	if input.PaymentMethod != nil {
		session.Payment = *input.PaymentMethod
	}
	if input.IsExpress != nil && *input.IsExpress != session.IsExpress {
		session.IsExpress = *input.IsExpress
		pricingChanged = true
		// The delivery preview depends on the express flag too, but only
		// needs refreshing once one has been computed.
		if session.Delivery != nil {
			deliveryChanged = true
		}
	}

	if catalogChanged && session.BranchID != "" && session.ServiceCode != "" {
		items, err := svc.API.ServiceItems(ctx, session.BranchID, session.ServiceCode)
		if err != nil {
			return nil, fmt.Errorf("failed to load item catalog: %w", err)
		}
		session.Items = items
	}

	// Bump revisions before saving so any concurrent recompute issued
	// against the prior state can no longer commit.
	deliveryRev, pricingRev := session.DeliveryRev, session.PricingRev
	if deliveryChanged {
		session.DeliveryRev++
		session.Delivery = nil
		deliveryRev = session.DeliveryRev
	}
	if pricingChanged {
		session.PricingRev++
		session.Pricing = nil
		pricingRev = session.PricingRev
	}

	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save wizard session: %w", err)
	}

	if deliveryChanged && session.BranchID != "" && session.AddressID != "" {
		if err := svc.refreshDelivery(ctx, token, sessionID, deliveryRev); err != nil {
			return nil, err
		}
	}
	if pricingChanged && session.TotalQuantity() > 0 && session.ServiceCode != "" {
		if err := svc.refreshPricing(ctx, token, sessionID, pricingRev); err != nil {
			return nil, err
		}
	}

	return svc.Store.Get(ctx, sessionID)
}

// Advance moves forward one step when the current step's gate holds.
func (svc *DefaultWizardService) Advance(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step >= models.StepPayment {
		return nil, NewStepError("already at the final step")
	}
	if reason := proceedBlock(session, session.Step); reason != "" {
		return nil, NewStepError(reason)
	}
	// Leaving the items step requires a signed-in customer; surface the
	// login interrupt instead of a plain block.
	if session.Step == models.StepItems && session.CustomerID == "" {
		return nil, ErrLoginRequired
	}
	session.Step++
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save wizard session: %w", err)
	}
	return session, nil
}

// Back moves one step backwards. Always permitted while step > 1.
func (svc *DefaultWizardService) Back(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step > models.StepBranch {
		session.Step--
		if err := svc.Store.Save(ctx, session); err != nil {
			return nil, fmt.Errorf("failed to save wizard session: %w", err)
		}
	}
	return session, nil
}

// JumpTo revisits an earlier step directly ("Change Branch" from the
// address or schedule step). Completed steps are not re-validated.
func (svc *DefaultWizardService) JumpTo(ctx context.Context, sessionID string, step int) (*models.WizardSession, error) {
	if step < models.StepBranch || step > models.StepPayment {
		return nil, NewStepError("unknown wizard step")
	}
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if step > session.Step {
		return nil, NewStepError("cannot jump forward; advance step by step")
	}
	session.Step = step
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save wizard session: %w", err)
	}
	return session, nil
}

// Cancel discards the session entirely. A reopened wizard always starts
// from a fresh Initiate at step 1.
func (svc *DefaultWizardService) Cancel(ctx context.Context, sessionID string) error {
	return svc.Store.Delete(ctx, sessionID)
}
