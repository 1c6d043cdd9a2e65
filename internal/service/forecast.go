// Package service drives the fetch cycle: resolve the city query, issue
// one upstream request, parse the payload and swap the forecast snapshot
// wholesale. At most one request is in flight at a time.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/xiaoheizi112/Weather-Forecast/internal/citycode"
	"github.com/xiaoheizi112/Weather-Forecast/internal/model"
	"github.com/xiaoheizi112/Weather-Forecast/internal/parser"
	"go.uber.org/zap"
)

var (
	// ErrCityNotFound reports a resolver miss after all suffix attempts.
	ErrCityNotFound = errors.New("city not found")

	// ErrFetchInFlight rejects a refresh while another one is pending.
	ErrFetchInFlight = errors.New("a fetch is already in flight")
)

// Fetcher issues one upstream forecast request. An empty city code asks
// the upstream to pick the city by caller IP.
type Fetcher interface {
	FetchForecast(ctx context.Context, cityCode string) ([]byte, error)
}

type Service struct {
	resolver *citycode.Resolver
	fetcher  Fetcher
	logger   *zap.Logger

	mu           sync.RWMutex
	forecast     *model.Forecast
	inFlight     bool
	lastCity     string
	lastFetch    time.Time
	successCount int
	failureCount int
}

func New(resolver *citycode.Resolver, fetcher Fetcher, logger *zap.Logger) *Service {
	return &Service{
		resolver: resolver,
		fetcher:  fetcher,
		logger:   logger,
	}
}

// Refresh resolves cityQuery, fetches and parses the forecast, then
// replaces the snapshot. On any failure the previous snapshot is kept.
// An empty query skips resolution and lets the upstream default by IP.
func (s *Service) Refresh(ctx context.Context, cityQuery string) error {
	cityCode := ""
	if cityQuery != "" {
		cityCode = s.resolver.Resolve(cityQuery)
		if cityCode == "" {
			s.logger.Warn("City not found", zap.String("query", cityQuery))
			return fmt.Errorf("%w: %s", ErrCityNotFound, cityQuery)
		}
	}

	if err := s.begin(); err != nil {
		return err
	}
	defer s.end()

	rawData, err := s.fetcher.FetchForecast(ctx, cityCode)
	if err != nil {
		s.recordFailure()
		s.logger.Error("Forecast fetch failed",
			zap.String("city", cityQuery),
			zap.String("city_code", cityCode),
			zap.Error(err))
		return fmt.Errorf("fetching forecast: %w", err)
	}

	forecast, err := parser.Parse(rawData)
	if err != nil {
		// The original widget dropped these silently; surfacing them was
		// a deliberate fix.
		s.recordFailure()
		s.logger.Error("Forecast payload rejected",
			zap.String("city", cityQuery),
			zap.Error(err))
		return err
	}
	forecast.FetchedAt = time.Now()

	s.mu.Lock()
	s.forecast = forecast
	s.lastCity = cityQuery
	s.lastFetch = forecast.FetchedAt
	s.successCount++
	s.mu.Unlock()

	s.logger.Info("Forecast updated",
		zap.String("city", forecast.Today().City),
		zap.String("today", forecast.Today().Date))
	return nil
}

// Current returns a copy of the snapshot; false before the first
// successful refresh.
func (s *Service) Current() (*model.Forecast, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.forecast == nil {
		return nil, false
	}
	snapshot := *s.forecast
	return &snapshot, true
}

func (s *Service) Stats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return map[string]interface{}{
		"last_fetch_time": s.lastFetch,
		"last_city":       s.lastCity,
		"success_count":   s.successCount,
		"failure_count":   s.failureCount,
		"has_forecast":    s.forecast != nil,
	}
}

func (s *Service) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight {
		return ErrFetchInFlight
	}
	s.inFlight = true
	return nil
}

func (s *Service) end() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}

func (s *Service) recordFailure() {
	s.mu.Lock()
	s.failureCount++
	s.mu.Unlock()
}
