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
	"pulseboard/internal/domain/dashboard/purchasing"
	"pulseboard/internal/infrastructure/storage/postgres"
)

// PurchasingRepo implements purchasing.Repository.
type PurchasingRepo struct {
	pool    *postgres.Pool
	dialect period.Dialect
	builder squirrel.StatementBuilderType
}

// NewPurchasingRepo creates a new purchasing report repository.
func NewPurchasingRepo(pool *postgres.Pool, dialect period.Dialect) *PurchasingRepo {
	return &PurchasingRepo{
		pool:    pool,
		dialect: dialect,
		builder: newBuilder(),
	}
}

// ReceiptTotals aggregates posted purchase receipts per bucket.
func (r *PurchasingRepo) ReceiptTotals(ctx context.Context, rng period.Range, g period.Granularity, supplierID *id.ID) ([]purchasing.ReceiptTotal, error) {
	ctx, span := tracer.Start(ctx, "purchasing.receipt_totals",
		trace.WithAttributes(attribute.String("granularity", g.String())))
	defer span.End()

	expr, err := period.Expression(g, "d.date", r.dialect)
	if err != nil {
		return nil, apperror.NewDialectConfig(err)
	}

	qb := r.builder.
		Select(
			expr+" AS period",
			"COALESCE(SUM(d.total_amount), 0) AS amount",
			"COUNT(*) AS receipts",
		).
		From("doc_purchase_receipts d").
		Where(squirrel.Eq{"d.posted": true, "d.deletion_mark": false}).
		Where(squirrel.GtOrEq{"d.date": rng.Start}).
		Where(squirrel.LtOrEq{"d.date": rng.End}).
		GroupBy(expr).
		OrderBy("period")

	if supplierID != nil {
		qb = qb.Where(squirrel.Eq{"d.supplier_id": *supplierID})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []purchasing.ReceiptTotal
	if err := pgxscan.Select(ctx, r.pool, &rows, query, args...); err != nil {
		return nil, apperror.NewDatabase(fmt.Errorf("purchase receipt totals: %w", err))
	}
	return rows, nil
}

// Ensure interface compliance
var _ purchasing.Repository = (*PurchasingRepo)(nil)
