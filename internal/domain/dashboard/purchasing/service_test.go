package purchasing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/core/id"
	"pulseboard/internal/core/period"
	"pulseboard/internal/core/types"
)

type mockRepository struct {
	rows []ReceiptTotal
	err  error
}

func (m *mockRepository) ReceiptTotals(_ context.Context, _ period.Range, _ period.Granularity, _ *id.ID) ([]ReceiptTotal, error) {
	return m.rows, m.err
}

func TestServiceReceiptTrendYearly(t *testing.T) {
	repo := &mockRepository{
		rows: []ReceiptTotal{
			{Period: "2022", Amount: types.MustMoney("10000"), Receipts: 12},
			{Period: "2024", Amount: types.MustMoney("2500.25"), Receipts: 4},
		},
	}
	svc := NewService(repo)

	report, err := svc.ReceiptTrend(context.Background(), ReceiptTrendFilter{
		Period:   "yearly",
		DateFrom: "2022-03-01",
		DateTo:   "2024-06-30",
	})
	require.NoError(t, err)

	require.Len(t, report.Points, 3)
	assert.Equal(t, "2023", report.Points[1].Period)
	assert.True(t, report.Points[1].Amount.IsZero())
	assert.True(t, report.TotalAmount.Equal(types.MustMoney("12500.25")))
	assert.Equal(t, int64(16), report.TotalReceipts)
}

func TestServiceReceiptTrendReversedRangeIsEmpty(t *testing.T) {
	repo := &mockRepository{
		rows: []ReceiptTotal{{Period: "2024-01", Amount: types.MustMoney("5"), Receipts: 1}},
	}
	svc := NewService(repo)

	report, err := svc.ReceiptTrend(context.Background(), ReceiptTrendFilter{
		Period:   "monthly",
		DateFrom: "2024-06-01",
		DateTo:   "2024-01-01",
	})
	require.NoError(t, err)
	assert.Empty(t, report.Points)
	assert.True(t, report.TotalAmount.IsZero())
}
