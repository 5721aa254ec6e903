package booking

import (
	"context"
	"fmt"

	"freshpress/models"
)

// Submit assembles the order payload and performs the single upstream
// create call. On failure the session stays on the payment step for
// retry; on success the confirmation is recorded and the session kept
// alive so the order can still be rescheduled from the success screen.
func (svc *DefaultWizardService) Submit(ctx context.Context, sessionID, token string) (*models.WizardSession, error) {
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, NewStepError("this order has already been placed")
	}
	if session.CustomerID == "" {
		return nil, ErrLoginRequired
	}
	if reason := submitBlock(session); reason != "" {
		return nil, NewStepError(reason)
	}

	payload := models.OrderPayload{
		Items:         orderItems(session),
		AddressID:     session.AddressID,
		PickupDate:    session.Date,
		Timeslot:      session.Timeslot,
		PaymentMethod: session.Payment,
		IsExpress:     session.IsExpress,
		BranchID:      session.BranchID,
	}
	if session.Delivery != nil {
		payload.DeliveryCharge = session.Delivery.DeliveryCharge
		payload.Distance = session.Delivery.Distance
	}

	confirmation, err := svc.API.CreateOrder(ctx, token, payload)
	if err != nil {
		return nil, fmt.Errorf("order submission failed: %w", err)
	}

	session.Submitted = true
	session.OrderID = confirmation.OrderID
	session.OrderNumber = confirmation.OrderNumber
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save wizard session: %w", err)
	}
	return session, nil
}

// Reschedule moves the just-created order to a new date and slot from
// the success screen. It re-enters the schedule step and calls the
// upstream order-update endpoint rather than creating a second order.
func (svc *DefaultWizardService) Reschedule(ctx context.Context, sessionID, token, date, timeslot string) (*models.WizardSession, error) {
	if date == "" || timeslot == "" {
		return nil, NewStepError("choose a pickup date and timeslot to reschedule")
	}
	session, err := svc.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !session.Submitted || session.OrderID == "" {
		return nil, NewStepError("no placed order to reschedule in this session")
	}

	if err := svc.API.RescheduleOrder(ctx, token, session.OrderID, date, timeslot); err != nil {
		return nil, fmt.Errorf("reschedule failed: %w", err)
	}

	session.Date = date
	session.Timeslot = timeslot
	session.Step = models.StepSchedule
	if err := svc.Store.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save wizard session: %w", err)
	}
	return session, nil
}
