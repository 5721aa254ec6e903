package admin

import (
	"context"

	"freshpress/models"
)

// LogisticsAPI is the upstream slice the logistics dashboard needs.
type LogisticsAPI interface {
	ListLogisticsPartners(ctx context.Context, token string, f models.ListFilter) (*models.LogisticsPage, error)
	SetLogisticsActive(ctx context.Context, token, id string, active bool) error
}

type LogisticsService struct {
	API LogisticsAPI
}

// List fetches a page of logistics partners with sanitized paging.
func (s *LogisticsService) List(ctx context.Context, token string, f models.ListFilter) (*models.LogisticsPage, error) {
	f.Sanitize()
	return s.API.ListLogisticsPartners(ctx, token, f)
}

// SetActive toggles a partner's active flag.
func (s *LogisticsService) SetActive(ctx context.Context, token, id string, active bool) error {
	return s.API.SetLogisticsActive(ctx, token, id, active)
}
