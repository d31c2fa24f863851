package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"stagevault/internal/cache"
	"stagevault/internal/config"
	"stagevault/internal/hours"
	"stagevault/internal/model"
)

const teamCacheTTL = 5 * time.Minute

// HoursService exposes the team aggregate and per-person views.
type HoursService interface {
	TeamHours(ctx context.Context, rng model.DateRange) (*model.TeamAggregate, error)
	PersonHours(ctx context.Context, personID string, rng model.DateRange) ([]model.HoursRecord, error)
	Roster() []config.Person
}

type hoursService struct {
	aggregator *hours.Aggregator
	source     hours.Source
	cache      *cache.Client
}

// NewHoursService creates a new hours service.
func NewHoursService(aggregator *hours.Aggregator, source hours.Source, cache *cache.Client) HoursService {
	return &hoursService{
		aggregator: aggregator,
		source:     source,
		cache:      cache,
	}
}

func (s *hoursService) teamCacheKey(rng model.DateRange) string {
	return fmt.Sprintf("hours:team:%s:%s", rng.From, rng.To)
}

// TeamHours returns the ranked team aggregate for the range, serving a recent
// run from cache when available. Cache misses run a fresh aggregation pass;
// an older in-flight pass never overwrites the newer committed result.
func (s *hoursService) TeamHours(ctx context.Context, rng model.DateRange) (*model.TeamAggregate, error) {
	if data, _ := s.cache.Get(ctx, s.teamCacheKey(rng)); data != nil {
		var cached model.TeamAggregate
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	result := s.aggregator.Refresh(ctx, rng)

	if payload, err := json.Marshal(result); err == nil {
		_ = s.cache.Set(ctx, s.teamCacheKey(rng), payload, teamCacheTTL)
	}
	return result, nil
}

// PersonHours returns the normalized rows for one person. Source errors
// propagate here: the individual view has a single source, so there is no
// partial result to fall back on.
func (s *hoursService) PersonHours(ctx context.Context, personID string, rng model.DateRange) ([]model.HoursRecord, error) {
	raw, err := s.source.Fetch(ctx, personID, rng)
	if err != nil {
		return nil, err
	}
	return hours.NormalizeRows(raw), nil
}

// Roster returns the configured roster.
func (s *hoursService) Roster() []config.Person {
	return s.aggregator.Roster()
}
