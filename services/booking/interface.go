package booking

import (
	"context"

	"freshpress/models"
	"freshpress/upstream"
)

// UpstreamAPI is the slice of the upstream client the wizard needs.
type UpstreamAPI interface {
	ServiceItems(ctx context.Context, branchID, serviceCode string) ([]models.ServiceItem, error)
	CalculateDistance(ctx context.Context, token string, req upstream.DistanceRequest) (*models.DeliveryInfo, error)
	CalculatePricing(ctx context.Context, token string, req upstream.PricingRequest) (*models.PricingResult, error)
	CreateOrder(ctx context.Context, token string, payload models.OrderPayload) (*models.OrderConfirmation, error)
	RescheduleOrder(ctx context.Context, token, orderID, date, timeslot string) error
}

// SessionStore persists in-flight wizard sessions.
type SessionStore interface {
	Save(ctx context.Context, session *models.WizardSession) error
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Delete(ctx context.Context, sessionID string) error
}

// UpdateInput carries the fields a single wizard update may touch. Nil
// pointers leave the current value alone.
type UpdateInput struct {
	BranchID      *string        `json:"branchId,omitempty"`
	ServiceCode   *string        `json:"serviceCode,omitempty"`
	Quantities    map[string]int `json:"quantities,omitempty"`
	AddressID     *string        `json:"addressId,omitempty"`
	Date          *string        `json:"date,omitempty"`
	Timeslot      *string        `json:"timeslot,omitempty"`
	PaymentMethod *string        `json:"paymentMethod,omitempty"`
	IsExpress     *bool          `json:"isExpress,omitempty"`
}

// WizardService drives the six-step booking flow.
type WizardService interface {
	Initiate(ctx context.Context, customerID string) (*models.WizardSession, error)
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Update(ctx context.Context, sessionID, token string, input UpdateInput) (*models.WizardSession, error)
	Advance(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Back(ctx context.Context, sessionID string) (*models.WizardSession, error)
	JumpTo(ctx context.Context, sessionID string, step int) (*models.WizardSession, error)
	Submit(ctx context.Context, sessionID, token string) (*models.WizardSession, error)
	Reschedule(ctx context.Context, sessionID, token, date, timeslot string) (*models.WizardSession, error)
	Cancel(ctx context.Context, sessionID string) error
}
