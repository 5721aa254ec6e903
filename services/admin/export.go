package admin

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"freshpress/models"
)

// CSV export is built from already-fetched page data, not a server-side
// export. The handler streams the bytes as a download.

// CustomersCSV renders a customer page as CSV.
func CustomersCSV(customers []models.Customer) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"ID", "Name", "Phone", "Email", "City", "Orders", "Total Spent", "Active", "VIP"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, c := range customers {
		row := []string{
			c.ID,
			c.Name,
			c.Phone,
			c.Email,
			c.City,
			strconv.Itoa(c.OrderCount),
			strconv.FormatFloat(c.TotalSpent, 'f', 2, 64),
			strconv.FormatBool(c.IsActive),
			strconv.FormatBool(c.IsVIP),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// OrdersCSV renders an order page as CSV.
func OrdersCSV(orders []models.Order) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Order Number", "Customer", "Branch", "Status", "Express", "Total", "Pickup Date", "Timeslot", "Created At"}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, o := range orders {
		row := []string{
			o.OrderNumber,
			o.CustomerName,
			o.BranchName,
			o.Status,
			strconv.FormatBool(o.IsExpress),
			strconv.FormatFloat(o.Total, 'f', 2, 64),
			o.PickupDate,
			o.Timeslot,
			o.CreatedAt.Format("2006-01-02 15:04"),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
