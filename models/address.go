package models

// Address is a customer-owned pickup/delivery address. One default per
// customer is assumed to be enforced upstream.
type Address struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2,omitempty"`
	Landmark     string `json:"landmark,omitempty"`
	City         string `json:"city"`
	Pincode      string `json:"pincode"`
	IsDefault    bool   `json:"isDefault"`
}
