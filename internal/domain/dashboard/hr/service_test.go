package hr

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseboard/internal/core/id"
	"pulseboard/internal/core/period"
)

type mockRepository struct {
	rows []AttendanceTotal
	err  error
}

func (m *mockRepository) AttendanceTotals(_ context.Context, _ period.Range, _ period.Granularity, _ *id.ID) ([]AttendanceTotal, error) {
	return m.rows, m.err
}

func TestServiceAttendanceTrendFillsWeekend(t *testing.T) {
	// Friday and Monday have records, Saturday and Sunday must still show
	// up as zero buckets.
	repo := &mockRepository{
		rows: []AttendanceTotal{
			{Period: "2024-03-01", Present: 40, Absent: 2, Late: 3},
			{Period: "2024-03-04", Present: 41, Absent: 1, Late: 0},
		},
	}
	svc := NewService(repo)

	report, err := svc.AttendanceTrend(context.Background(), AttendanceTrendFilter{
		DateFrom: "2024-03-01",
		DateTo:   "2024-03-04",
	})
	require.NoError(t, err)

	require.Len(t, report.Points, 4)
	assert.Equal(t, AttendancePoint{Period: "2024-03-02"}, report.Points[1])
	assert.Equal(t, AttendancePoint{Period: "2024-03-03"}, report.Points[2])

	assert.Equal(t, int64(81), report.TotalPresent)
	assert.Equal(t, int64(3), report.TotalAbsent)
	assert.Equal(t, int64(3), report.TotalLate)
	assert.Equal(t, "daily", report.Granularity)
}

func TestServiceAttendanceTrendMonthlyRollup(t *testing.T) {
	repo := &mockRepository{
		rows: []AttendanceTotal{
			{Period: "2024-01", Present: 800, Absent: 40, Late: 12},
			{Period: "2024-02", Present: 760, Absent: 35, Late: 9},
		},
	}
	svc := NewService(repo)

	report, err := svc.AttendanceTrend(context.Background(), AttendanceTrendFilter{
		Period:   "monthly",
		DateFrom: "2024-01-01",
		DateTo:   "2024-03-31",
	})
	require.NoError(t, err)

	require.Len(t, report.Points, 3)
	assert.Equal(t, AttendancePoint{Period: "2024-03"}, report.Points[2])
	assert.Equal(t, int64(1560), report.TotalPresent)
}
