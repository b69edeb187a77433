package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pulseboard/internal/core/apperror"
	"pulseboard/internal/core/id"
	"pulseboard/internal/core/period"
	"pulseboard/internal/domain/dashboard/hr"
	"pulseboard/internal/infrastructure/storage/postgres"
)

// HRRepo implements hr.Repository.
type HRRepo struct {
	pool    *postgres.Pool
	dialect period.Dialect
	builder squirrel.StatementBuilderType
}

// NewHRRepo creates a new hr report repository.
func NewHRRepo(pool *postgres.Pool, dialect period.Dialect) *HRRepo {
	return &HRRepo{
		pool:    pool,
		dialect: dialect,
		builder: newBuilder(),
	}
}

// AttendanceTotals aggregates attendance records per bucket. The three
// counters come out of a single grouped scan over hr_attendance.
func (r *HRRepo) AttendanceTotals(ctx context.Context, rng period.Range, g period.Granularity, departmentID *id.ID) ([]hr.AttendanceTotal, error) {
	ctx, span := tracer.Start(ctx, "hr.attendance_totals",
		trace.WithAttributes(attribute.String("granularity", g.String())))
	defer span.End()

	expr, err := period.Expression(g, "a.work_date", r.dialect)
	if err != nil {
		return nil, apperror.NewDialectConfig(err)
	}

	qb := r.builder.
		Select(
			expr+" AS period",
			"COUNT(*) FILTER (WHERE a.status = 'present') AS present",
			"COUNT(*) FILTER (WHERE a.status = 'absent') AS absent",
			"COUNT(*) FILTER (WHERE a.status = 'late') AS late",
		).
		From("hr_attendance a").
		Where(squirrel.GtOrEq{"a.work_date": rng.Start}).
		Where(squirrel.LtOrEq{"a.work_date": rng.End}).
		GroupBy(expr).
		OrderBy("period")

	if departmentID != nil {
		qb = qb.Where(squirrel.Eq{"a.department_id": *departmentID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []hr.AttendanceTotal
	if err := pgxscan.Select(ctx, r.pool, &rows, query, args...); err != nil {
		return nil, apperror.NewDatabase(fmt.Errorf("attendance totals: %w", err))
	}
	return rows, nil
}

// Ensure interface compliance
var _ hr.Repository = (*HRRepo)(nil)
