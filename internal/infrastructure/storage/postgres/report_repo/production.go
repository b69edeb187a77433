package report_repo

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"pulseboard/internal/core/apperror"
	"pulseboard/internal/core/period"
	"pulseboard/internal/domain/dashboard/production"
	"pulseboard/internal/infrastructure/storage/postgres"
)

// ProductionRepo implements production.Repository.
type ProductionRepo struct {
	pool    *postgres.Pool
	dialect period.Dialect
	builder squirrel.StatementBuilderType
}

// NewProductionRepo creates a new production report repository.
func NewProductionRepo(pool *postgres.Pool, dialect period.Dialect) *ProductionRepo {
	return &ProductionRepo{
		pool:    pool,
		dialect: dialect,
		builder: newBuilder(),
	}
}

// StartedCounts counts production orders by their start date.
func (r *ProductionRepo) StartedCounts(ctx context.Context, rng period.Range, g period.Granularity, workshopCode string) ([]production.OrderCount, error) {
	return r.orderCounts(ctx, "started_counts", "d.started_at", rng, g, workshopCode, nil)
}

// CompletedCounts counts production orders by their completion date.
func (r *ProductionRepo) CompletedCounts(ctx context.Context, rng period.Range, g period.Granularity, workshopCode string) ([]production.OrderCount, error) {
	return r.orderCounts(ctx, "completed_counts", "d.completed_at", rng, g, workshopCode,
		squirrel.NotEq{"d.completed_at": nil})
}

func (r *ProductionRepo) orderCounts(ctx context.Context, op, dateColumn string, rng period.Range, g period.Granularity, workshopCode string, extra squirrel.Sqlizer) ([]production.OrderCount, error) {
	ctx, span := tracer.Start(ctx, "production."+op,
		trace.WithAttributes(attribute.String("granularity", g.String())))
	defer span.End()

	expr, err := period.Expression(g, dateColumn, r.dialect)
	if err != nil {
		return nil, apperror.NewDialectConfig(err)
	}

	qb := r.builder.
		Select(
			expr+" AS period",
			"COUNT(*) AS count",
		).
		From("doc_production_orders d").
		Where(squirrel.Eq{"d.deletion_mark": false}).
		Where(squirrel.GtOrEq{dateColumn: rng.Start}).
		Where(squirrel.LtOrEq{dateColumn: rng.End}).
		GroupBy(expr).
		OrderBy("period")

	if extra != nil {
		qb = qb.Where(extra)
	}
	if workshopCode != "" {
		qb = qb.Where(squirrel.Eq{"d.workshop_code": workshopCode})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []production.OrderCount
	if err := pgxscan.Select(ctx, r.pool, &rows, query, args...); err != nil {
		return nil, apperror.NewDatabase(fmt.Errorf("production %s: %w", op, err))
	}
	return rows, nil
}

// Ensure interface compliance
var _ production.Repository = (*ProductionRepo)(nil)
