// Package catalog serves branch/service/item reads through a Redis
// cache so the wizard's first steps don't hammer the upstream API.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"freshpress/models"
	"freshpress/utils"

	"github.com/go-redis/redis/v8"
)

// CatalogAPI is the upstream slice the catalog cache needs.
type CatalogAPI interface {
	Branches(ctx context.Context) ([]models.Branch, error)
	BranchServices(ctx context.Context, branchID string) ([]models.Service, error)
	ServiceItems(ctx context.Context, branchID, serviceCode string) ([]models.ServiceItem, error)
}

type Service struct {
	API   CatalogAPI
	Cache *redis.Client
}

// Branches returns the branch list, cache-first.
func (s *Service) Branches(ctx context.Context) ([]models.Branch, error) {
	var branches []models.Branch
	if s.cacheGet(ctx, "branches", &branches) {
		return branches, nil
	}
	return s.RefreshBranches(ctx)
}

// RefreshBranches fetches the branch list upstream and rewrites the
// cache entry. The background worker calls this on a schedule.
func (s *Service) RefreshBranches(ctx context.Context) ([]models.Branch, error) {
	branches, err := s.API.Branches(ctx)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, "branches", branches)
	return branches, nil
}

// BranchServices returns the services of a branch, cache-first.
func (s *Service) BranchServices(ctx context.Context, branchID string) ([]models.Service, error) {
	key := "services:" + branchID
	var services []models.Service
	if s.cacheGet(ctx, key, &services) {
		return services, nil
	}
	services, err := s.API.BranchServices(ctx, branchID)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, services)
	return services, nil
}

// ServiceItems returns the item catalog, cache-first.
func (s *Service) ServiceItems(ctx context.Context, branchID, serviceCode string) ([]models.ServiceItem, error) {
	key := fmt.Sprintf("items:%s:%s", branchID, serviceCode)
	var items []models.ServiceItem
	if s.cacheGet(ctx, key, &items) {
		return items, nil
	}
	items, err := s.API.ServiceItems(ctx, branchID, serviceCode)
	if err != nil {
		return nil, err
	}
	s.cacheSet(ctx, key, items)
	return items, nil
}

func (s *Service) cacheGet(ctx context.Context, key string, out interface{}) bool {
	if s.Cache == nil {
		return false
	}
	data, err := s.Cache.Get(ctx, utils.CatalogCachePrefix+key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(data), out) == nil
}

func (s *Service) cacheSet(ctx context.Context, key string, value interface{}) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	// Cache write failures are not worth failing the read over.
	s.Cache.Set(ctx, utils.CatalogCachePrefix+key, data, utils.CatalogCacheTTL)
}
