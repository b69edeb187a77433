package production

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pulseboard/internal/core/apperror"
	"pulseboard/internal/core/period"
	"pulseboard/pkg/logger"
)

// Service builds the production order trend report.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new production dashboard service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// OrderTrend returns the gap-filled started vs completed order series.
func (s *Service) OrderTrend(ctx context.Context, filter OrderTrendFilter) (*OrderTrendReport, error) {
	g := period.ParseGranularity(filter.Period, period.Monthly)

	rng, err := period.Resolve(filter.DateFrom, filter.DateTo, g, s.now(), period.ResolveOptions{
		Strategy: period.SpanCalendarHorizon,
	})
	if err != nil {
		var invalid *period.InvalidDateError
		if errors.As(err, &invalid) {
			return nil, apperror.NewInvalidDate(invalid.Field, invalid.Value)
		}
		return nil, fmt.Errorf("resolve range: %w", err)
	}

	started, err := s.repo.StartedCounts(ctx, rng, g, filter.WorkshopCode)
	if err != nil {
		return nil, fmt.Errorf("started counts: %w", err)
	}
	completed, err := s.repo.CompletedCounts(ctx, rng, g, filter.WorkshopCode)
	if err != nil {
		return nil, fmt.Errorf("completed counts: %w", err)
	}

	startedByKey := indexCounts(ctx, started, g)
	completedByKey := indexCounts(ctx, completed, g)

	series := period.FillMerged(period.Sequence(rng, g),
		func(key string) OrderTrendPoint {
			return OrderTrendPoint{Period: key}
		},
		func(key string, row *OrderTrendPoint) {
			row.Started = startedByKey[key]
		},
		func(key string, row *OrderTrendPoint) {
			row.Completed = completedByKey[key]
		},
	)

	report := &OrderTrendReport{
		Granularity: g.String(),
		DateFrom:    rng.Start,
		DateTo:      rng.End,
		Points:      period.Rows(series),
	}
	for _, point := range report.Points {
		report.TotalStarted += point.Started
		report.TotalCompleted += point.Completed
	}
	return report, nil
}

func indexCounts(ctx context.Context, rows []OrderCount, g period.Granularity) map[string]int64 {
	byKey := make(map[string]int64, len(rows))
	for _, row := range rows {
		key := period.Normalize(row.Period, g)
		if key != row.Period {
			logger.Debug(ctx, "normalized period key", "raw", row.Period, "key", key)
		}
		byKey[key] += row.Count
	}
	return byKey
}
