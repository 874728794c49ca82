package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"taskboard/internal/cache"
	"taskboard/internal/model"
	"taskboard/internal/repository"
)

const (
	statusCacheKey = "statuses"
	statusCacheTTL = 5 * time.Minute
)

// StatusService reads the fixed status reference data.
type StatusService interface {
	List(ctx context.Context) ([]model.Status, error)
}

type statusService struct {
	statuses repository.StatusRepository
	cache    *cache.Client
}

// NewStatusService creates the status service.
func NewStatusService(statuses repository.StatusRepository, cache *cache.Client) StatusService {
	return &statusService{statuses: statuses, cache: cache}
}

// List returns all statuses, cache-aside. Statuses are seeded out-of-band
// and never change through the API, so a short TTL is plenty.
func (s *statusService) List(ctx context.Context) ([]model.Status, error) {
	if data, _ := s.cache.Get(ctx, statusCacheKey); data != nil {
		var cached []model.Status
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	statuses, err := s.statuses.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}

	if payload, err := json.Marshal(statuses); err == nil {
		_ = s.cache.Set(ctx, statusCacheKey, payload, statusCacheTTL)
	}
	return statuses, nil
}
