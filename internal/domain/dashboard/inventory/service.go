package inventory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"pulseboard/internal/core/apperror"
	"pulseboard/internal/core/period"
	"pulseboard/pkg/logger"
)

// Service builds the stock movement trend report.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new inventory dashboard service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// StockTrend returns the gap-filled receipt/issue series for the requested
// range. Every bucket of the range is present in the result, zero-valued
// when no movements happened.
func (s *Service) StockTrend(ctx context.Context, filter StockTrendFilter) (*StockTrendReport, error) {
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

	receipts, err := s.repo.ReceiptTotals(ctx, rng, g, filter.WarehouseIDs)
	if err != nil {
		return nil, fmt.Errorf("receipt totals: %w", err)
	}
	issues, err := s.repo.IssueTotals(ctx, rng, g, filter.WarehouseIDs)
	if err != nil {
		return nil, fmt.Errorf("issue totals: %w", err)
	}

	keys := period.Sequence(rng, g)
	receiptByKey := indexTotals(ctx, receipts, g)
	issueByKey := indexTotals(ctx, issues, g)

	series := period.FillMerged(keys,
		func(key string) StockTrendPoint {
			return StockTrendPoint{Period: key}
		},
		func(key string, row *StockTrendPoint) {
			row.Receipt = receiptByKey[key]
		},
		func(key string, row *StockTrendPoint) {
			row.Issue = issueByKey[key]
		},
	)

	report := &StockTrendReport{
		Granularity: g.String(),
		DateFrom:    rng.Start,
		DateTo:      rng.End,
		Points:      make([]StockTrendPoint, 0, len(series)),
	}
	for _, entry := range series {
		point := entry.Row
		point.Net = point.Receipt - point.Issue
		report.Points = append(report.Points, point)
		report.TotalReceipt += point.Receipt
		report.TotalIssue += point.Issue
	}
	return report, nil
}

// indexTotals normalizes the raw database bucket keys and builds a lookup
// map. Duplicate keys after normalization are summed.
func indexTotals(ctx context.Context, rows []MovementTotal, g period.Granularity) map[string]float64 {
	byKey := make(map[string]float64, len(rows))
	for _, row := range rows {
		key := period.Normalize(row.Period, g)
		if key != row.Period {
			logger.Debug(ctx, "normalized period key", "raw", row.Period, "key", key)
		}
		byKey[key] += row.Total
	}
	return byKey
}
