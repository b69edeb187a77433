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
	"pulseboard/internal/domain/dashboard/sales"
	"pulseboard/internal/infrastructure/storage/postgres"
)

// SalesRepo implements sales.Repository.
type SalesRepo struct {
	pool    *postgres.Pool
	dialect period.Dialect
	builder squirrel.StatementBuilderType
}

// NewSalesRepo creates a new sales report repository.
func NewSalesRepo(pool *postgres.Pool, dialect period.Dialect) *SalesRepo {
	return &SalesRepo{
		pool:    pool,
		dialect: dialect,
		builder: newBuilder(),
	}
}

// RevenueTotals aggregates posted sales invoices per bucket.
func (r *SalesRepo) RevenueTotals(ctx context.Context, rng period.Range, g period.Granularity, customerID *id.ID) ([]sales.RevenueTotal, error) {
	ctx, span := tracer.Start(ctx, "sales.revenue_totals",
		trace.WithAttributes(attribute.String("granularity", g.String())))
	defer span.End()

	expr, err := period.Expression(g, "d.date", r.dialect)
	if err != nil {
		return nil, apperror.NewDialectConfig(err)
	}

	qb := r.builder.
		Select(
			expr+" AS period",
			"COALESCE(SUM(d.total_amount), 0) AS revenue",
			"COUNT(*) AS invoices",
		).
		From("doc_sales_invoices d").
		Where(squirrel.Eq{"d.posted": true, "d.deletion_mark": false}).
		Where(squirrel.GtOrEq{"d.date": rng.Start}).
		Where(squirrel.LtOrEq{"d.date": rng.End}).
		GroupBy(expr).
		OrderBy("period")

	if customerID != nil {
		qb = qb.Where(squirrel.Eq{"d.customer_id": *customerID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []sales.RevenueTotal
	if err := pgxscan.Select(ctx, r.pool, &rows, query, args...); err != nil {
		return nil, apperror.NewDatabase(fmt.Errorf("revenue totals: %w", err))
	}
	return rows, nil
}

// Ensure interface compliance
var _ sales.Repository = (*SalesRepo)(nil)
