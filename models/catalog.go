package models

// Branch is a physical service-center location capable of fulfilling
// orders. Immutable from this side; selected once per order.
type Branch struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Code    string        `json:"code"`
	Address BranchAddress `json:"address"`
	Phone   string        `json:"phone"`
}

type BranchAddress struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	Pincode string `json:"pincode"`
}

// Service is a laundry offering category (wash & fold, dry clean, ...)
// with its own catalog of orderable items.
type Service struct {
	ID                  string `json:"id"`
	Code                string `json:"code"`
	DisplayName         string `json:"displayName"`
	TurnaroundHours     int    `json:"turnaroundHours"`
	ExpressTurnaroundHr int    `json:"expressTurnaroundHours"`
}

// ServiceItem is a single orderable garment/unit type under a service.
type ServiceItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BasePrice   float64 `json:"basePrice"`
	Category    string  `json:"category"`
	ServiceCode string  `json:"serviceCode"`
}
