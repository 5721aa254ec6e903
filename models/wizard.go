package models

import "time"

// Wizard steps. The order is the forward path; Back/JumpTo may revisit
// any earlier step without re-validation.
const (
	StepBranch   = 1
	StepService  = 2
	StepItems    = 3
	StepAddress  = 4
	StepSchedule = 5
	StepPayment  = 6
)

// WizardSession holds one in-flight booking between step 1 and order
// creation. Stored as JSON in Redis with a TTL; everything here is
// transient and discarded on cancel.
type WizardSession struct {
	SessionID  string `json:"sessionId"`
	CustomerID string `json:"customerId,omitempty"` // empty while browsing unauthenticated
	Step       int    `json:"step"`

	BranchID    string         `json:"branchId,omitempty"`
	ServiceCode string         `json:"serviceCode,omitempty"`
	Quantities  map[string]int `json:"quantities,omitempty"` // itemID -> quantity
	Items       []ServiceItem  `json:"items,omitempty"`      // catalog snapshot for the selected service
	AddressID   string         `json:"addressId,omitempty"`
	Date        string         `json:"date,omitempty"`
	Timeslot    string         `json:"timeslot,omitempty"`
	Payment     string         `json:"paymentMethod,omitempty"`
	IsExpress   bool           `json:"isExpress"`

	// Derived values with their revision counters. A recompute result is
	// committed only when the session revision still matches the revision
	// the request was issued under.
	Delivery    *DeliveryInfo  `json:"delivery,omitempty"`
	DeliveryRev int64          `json:"deliveryRev"`
	Pricing     *PricingResult `json:"pricing,omitempty"`
	PricingRev  int64          `json:"pricingRev"`

	// Set after a successful submit.
	OrderID     string `json:"orderId,omitempty"`
	OrderNumber string `json:"orderNumber,omitempty"`
	Submitted   bool   `json:"submitted"`

	CreatedAt time.Time `json:"createdAt"`
}

// TotalQuantity sums the selected item quantities.
func (s *WizardSession) TotalQuantity() int {
	total := 0
	for _, qty := range s.Quantities {
		total += qty
	}
	return total
}
