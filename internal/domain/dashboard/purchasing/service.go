package purchasing

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
// Purchasing looks at a quarter by default, procurement cycles are slow.
const defaultSpanDays = 90

// Service builds the purchase receipt trend report.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new purchasing dashboard service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// ReceiptTrend returns the gap-filled purchase receipt series.
func (s *Service) ReceiptTrend(ctx context.Context, filter ReceiptTrendFilter) (*ReceiptTrendReport, error) {
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

	rows, err := s.repo.ReceiptTotals(ctx, rng, g, filter.SupplierID)
	if err != nil {
		return nil, fmt.Errorf("receipt totals: %w", err)
	}

	byKey := make(map[string]ReceiptPoint, len(rows))
	for _, row := range rows {
		key := period.Normalize(row.Period, g)
		if key != row.Period {
			logger.Debug(ctx, "normalized period key", "raw", row.Period, "key", key)
		}
		point := byKey[key]
		point.Period = key
		point.Amount = point.Amount.Add(row.Amount)
		point.Receipts += row.Receipts
		byKey[key] = point
	}

	series := period.Fill(period.Sequence(rng, g), byKey, func(key string) ReceiptPoint {
		return ReceiptPoint{Period: key, Amount: types.ZeroMoney()}
	})

	report := &ReceiptTrendReport{
		Granularity: g.String(),
		DateFrom:    rng.Start,
		DateTo:      rng.End,
		Points:      period.Rows(series),
		TotalAmount: types.ZeroMoney(),
	}
	for _, point := range report.Points {
		report.TotalAmount = report.TotalAmount.Add(point.Amount)
		report.TotalReceipts += point.Receipts
	}
	return report, nil
}
