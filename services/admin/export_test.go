package admin

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"freshpress/models"
)

func TestCustomersCSV(t *testing.T) {
	data, err := CustomersCSV([]models.Customer{
		{
			ID:         "c-1",
			Name:       "Ravi, Kumar", // comma forces quoting
			Phone:      "9876543210",
			City:       "Pune",
			OrderCount: 12,
			TotalSpent: 4520.5,
			IsActive:   true,
			IsVIP:      false,
		},
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("generated csv does not parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[0][0] != "ID" || rows[0][6] != "Total Spent" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "Ravi, Kumar" || rows[1][6] != "4520.50" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}

func TestOrdersCSV(t *testing.T) {
	created := time.Date(2026, 8, 30, 14, 5, 0, 0, time.UTC)
	data, err := OrdersCSV([]models.Order{
		{
			OrderNumber:  "FP-1001",
			CustomerName: "Meera",
			BranchName:   "Koramangala",
			Status:       models.OrderStatusInProcess,
			IsExpress:    true,
			Total:        840,
			PickupDate:   "2026-08-29",
			Timeslot:     "10-12",
			CreatedAt:    created,
		},
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("generated csv does not parse: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header plus one row, got %d rows", len(rows))
	}
	if rows[1][0] != "FP-1001" || rows[1][4] != "true" || rows[1][8] != "2026-08-30 14:05" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}
