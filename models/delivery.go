package models

// DeliveryInfo is a computed preview of distance-based delivery
// feasibility and charge for a branch/address pair. Never persisted.
type DeliveryInfo struct {
	Distance       *float64 `json:"distance"` // km, nullable when unknown
	DeliveryCharge float64  `json:"deliveryCharge"`
	IsServiceable  bool     `json:"isServiceable"`
	IsFallback     bool     `json:"isFallback"`
	Message        string   `json:"message,omitempty"`
}

// PricingResult holds per-item and order-level totals recomputed
// whenever item quantities, service or the express flag change.
type PricingResult struct {
	Items      []ItemTotal `json:"items"`
	Subtotal   float64     `json:"subtotal"`
	Tax        float64     `json:"tax"`
	Discount   float64     `json:"discount"`
	GrandTotal float64     `json:"grandTotal"`
}

type ItemTotal struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Total     float64 `json:"total"`
}
