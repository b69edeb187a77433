package sales

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/core/id"
	"pulseboard/internal/core/period"
	"pulseboard/internal/core/types"
)

type mockRepository struct {
	rows []RevenueTotal
	err  error

	lastRange    period.Range
	lastCustomer *id.ID
}

func (m *mockRepository) RevenueTotals(_ context.Context, rng period.Range, _ period.Granularity, customerID *id.ID) ([]RevenueTotal, error) {
	m.lastRange = rng
	m.lastCustomer = customerID
	return m.rows, m.err
}

func TestServiceRevenueTrendFillsGaps(t *testing.T) {
	repo := &mockRepository{
		rows: []RevenueTotal{
			{Period: "2024-01-01", Revenue: types.MustMoney("1500.50"), Invoices: 3},
			{Period: "2024-01-03", Revenue: types.MustMoney("200"), Invoices: 1},
		},
	}
	svc := NewService(repo)

	report, err := svc.RevenueTrend(context.Background(), RevenueTrendFilter{
		Period:   "daily",
		DateFrom: "2024-01-01",
		DateTo:   "2024-01-03",
	})
	require.NoError(t, err)

	require.Len(t, report.Points, 3)
	assert.Equal(t, "2024-01-02", report.Points[1].Period)
	assert.True(t, report.Points[1].Revenue.IsZero())
	assert.Zero(t, report.Points[1].Invoices)

	assert.True(t, report.TotalRevenue.Equal(types.MustMoney("1700.50")),
		"got total %s", report.TotalRevenue)
	assert.Equal(t, int64(4), report.TotalInvoices)
}

func TestServiceRevenueTrendDecimalPrecision(t *testing.T) {
	// Classic float trap: 0.1 + 0.2 must come out exactly 0.3.
	repo := &mockRepository{
		rows: []RevenueTotal{
			{Period: "2024-02-01", Revenue: types.MustMoney("0.1"), Invoices: 1},
			{Period: "2024-02-02", Revenue: types.MustMoney("0.2"), Invoices: 1},
		},
	}
	svc := NewService(repo)

	report, err := svc.RevenueTrend(context.Background(), RevenueTrendFilter{
		Period:   "daily",
		DateFrom: "2024-02-01",
		DateTo:   "2024-02-02",
	})
	require.NoError(t, err)
	assert.True(t, report.TotalRevenue.Equal(types.MustMoney("0.3")),
		"got total %s", report.TotalRevenue)
}

func TestServiceRevenueTrendFixedSpanFromOnly(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
	}

	report, err := svc.RevenueTrend(context.Background(), RevenueTrendFilter{
		Period:   "daily",
		DateFrom: "2024-03-01",
	})
	require.NoError(t, err)

	// Open upper bound extends 30 days forward from the given start.
	require.NotEmpty(t, report.Points)
	assert.Equal(t, "2024-03-01", report.Points[0].Period)
	assert.Equal(t, "2024-03-31", report.Points[len(report.Points)-1].Period)
}

func TestServiceRevenueTrendCustomerFilterPassthrough(t *testing.T) {
	repo := &mockRepository{}
	svc := NewService(repo)
	customerID := id.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")

	_, err := svc.RevenueTrend(context.Background(), RevenueTrendFilter{
		DateFrom:   "2024-01-01",
		DateTo:     "2024-01-31",
		CustomerID: &customerID,
	})
	require.NoError(t, err)
	require.NotNil(t, repo.lastCustomer)
	assert.Equal(t, customerID, *repo.lastCustomer)
}
