package models

import "time"

type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	City       string    `json:"city,omitempty"`
	OrderCount int       `json:"orderCount"`
	TotalSpent float64   `json:"totalSpent"`
	IsActive   bool      `json:"isActive"`
	IsVIP      bool      `json:"isVip"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CustomerPage struct {
	Items      []Customer `json:"items"`
	Pagination Pagination `json:"pagination"`
}

type CustomerFilter struct {
	ListFilter
	ActiveOnly bool `form:"activeOnly" json:"activeOnly,omitempty"`
	VIPOnly    bool `form:"vipOnly" json:"vipOnly,omitempty"`
}

// LogisticsPartner is a pickup/delivery fleet partner.
type LogisticsPartner struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	VehicleType string    `json:"vehicleType,omitempty"`
	Zone        string    `json:"zone,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

type LogisticsPage struct {
	Items      []LogisticsPartner `json:"items"`
	Pagination Pagination         `json:"pagination"`
}
