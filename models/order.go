package models

import "time"

// Order status vocabulary. Fixed by the backend; rendered and filtered
// here, with manual transitions restricted to NextStatuses.
const (
	OrderStatusPlaced            = "placed"
	OrderStatusAssignedToBranch  = "assigned_to_branch"
	OrderStatusLogisticsPickup   = "assigned_to_logistics_pickup"
	OrderStatusPicked            = "picked"
	OrderStatusInProcess         = "in_process"
	OrderStatusReady             = "ready"
	OrderStatusOutForDelivery    = "out_for_delivery"
	OrderStatusDelivered         = "delivered"
	OrderStatusCancelled         = "cancelled"
)

// OrderItem is a single line of an order payload.
type OrderItem struct {
	ItemType string `json:"itemType"`
	Service  string `json:"service"`
	Category string `json:"category"`
	Quantity int    `json:"quantity"`
}

// OrderPayload is the full create-order request sent upstream once the
// wizard reaches the payment step.
type OrderPayload struct {
	Items          []OrderItem `json:"items"`
	AddressID      string      `json:"addressId"`
	PickupDate     string      `json:"pickupDate"`
	Timeslot       string      `json:"timeslot"`
	PaymentMethod  string      `json:"paymentMethod"`
	IsExpress      bool        `json:"isExpress"`
	BranchID       string      `json:"branchId"`
	DeliveryCharge float64     `json:"deliveryCharge"`
	Distance       *float64    `json:"distance,omitempty"`
}

// OrderConfirmation is the echo returned by the upstream create call.
type OrderConfirmation struct {
	OrderID     string `json:"orderId"`
	OrderNumber string `json:"orderNumber"`
}

// Order is the admin-side read model.
type Order struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"orderNumber"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone,omitempty"`
	BranchID      string    `json:"branchId"`
	BranchName    string    `json:"branchName,omitempty"`
	Status        string    `json:"status"`
	IsExpress     bool      `json:"isExpress"`
	Total         float64   `json:"total"`
	PickupDate    string    `json:"pickupDate"`
	Timeslot      string    `json:"timeslot"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OrderPage is the paginated admin order list.
type OrderPage struct {
	Items      []Order    `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// OrderFilter narrows the admin order list.
type OrderFilter struct {
	ListFilter
	BranchID  string `form:"branchId" json:"branchId,omitempty"`
	IsExpress *bool  `form:"isExpress" json:"isExpress,omitempty"`
}
