package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pulseboard/internal/core/apperror"
	"pulseboard/internal/core/period"
	"pulseboard/internal/core/types"
	"pulseboard/pkg/logger"
)

// defaultSpanDays bounds the range when only one of from/to is supplied.
const defaultSpanDays = 30

// Service builds the sales revenue trend report.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new sales dashboard service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// RevenueTrend returns the gap-filled revenue series. Buckets without
// invoices carry zero revenue and a zero invoice count.
func (s *Service) RevenueTrend(ctx context.Context, filter RevenueTrendFilter) (*RevenueTrendReport, error) {
	g := period.ParseGranularity(filter.Period, period.Monthly)

	rng, err := period.Resolve(filter.DateFrom, filter.DateTo, g, s.now(), period.ResolveOptions{
		Strategy:        period.SpanFixedDays,
		DefaultSpanDays: defaultSpanDays,
	})
	if err != nil {
		var invalid *period.InvalidDateError
		if errors.As(err, &invalid) {
			return nil, apperror.NewInvalidDate(invalid.Field, invalid.Value)
		}
		return nil, fmt.Errorf("resolve range: %w", err)
	}

	rows, err := s.repo.RevenueTotals(ctx, rng, g, filter.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("revenue totals: %w", err)
	}

	byKey := make(map[string]RevenueTotal, len(rows))
	for _, row := range rows {
		key := period.Normalize(row.Period, g)
		if key != row.Period {
			logger.Debug(ctx, "normalized period key", "raw", row.Period, "key", key)
		}
		merged := byKey[key]
		merged.Revenue = merged.Revenue.Add(row.Revenue)
		merged.Invoices += row.Invoices
		byKey[key] = merged
	}

	series := period.Fill(period.Sequence(rng, g), mapPoints(byKey), func(key string) RevenuePoint {
		return RevenuePoint{Period: key, Revenue: types.ZeroMoney()}
	})

	report := &RevenueTrendReport{
		Granularity:  g.String(),
		DateFrom:     rng.Start,
		DateTo:       rng.End,
		Points:       period.Rows(series),
		TotalRevenue: types.ZeroMoney(),
	}
	for _, point := range report.Points {
		report.TotalRevenue = report.TotalRevenue.Add(point.Revenue)
		report.TotalInvoices += point.Invoices
	}
	return report, nil
}

func mapPoints(byKey map[string]RevenueTotal) map[string]RevenuePoint {
	points := make(map[string]RevenuePoint, len(byKey))
	for key, total := range byKey {
		points[key] = RevenuePoint{Period: key, Revenue: total.Revenue, Invoices: total.Invoices}
	}
	return points
}
