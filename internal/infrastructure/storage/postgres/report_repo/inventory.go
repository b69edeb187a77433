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
	"pulseboard/internal/domain/dashboard/inventory"
	"pulseboard/internal/infrastructure/storage/postgres"
)

// InventoryRepo implements inventory.Repository.
type InventoryRepo struct {
	pool    *postgres.Pool
	dialect period.Dialect
	builder squirrel.StatementBuilderType
}

// NewInventoryRepo creates a new inventory report repository.
func NewInventoryRepo(pool *postgres.Pool, dialect period.Dialect) *InventoryRepo {
	return &InventoryRepo{
		pool:    pool,
		dialect: dialect,
		builder: newBuilder(),
	}
}

// ReceiptTotals aggregates incoming stock movement quantities per bucket.
func (r *InventoryRepo) ReceiptTotals(ctx context.Context, rng period.Range, g period.Granularity, warehouseIDs []id.ID) ([]inventory.MovementTotal, error) {
	return r.movementTotals(ctx, "receipt_totals", "receipt", rng, g, warehouseIDs)
}

// IssueTotals aggregates outgoing stock movement quantities per bucket.
func (r *InventoryRepo) IssueTotals(ctx context.Context, rng period.Range, g period.Granularity, warehouseIDs []id.ID) ([]inventory.MovementTotal, error) {
	return r.movementTotals(ctx, "issue_totals", "expense", rng, g, warehouseIDs)
}

func (r *InventoryRepo) movementTotals(ctx context.Context, op, recordType string, rng period.Range, g period.Granularity, warehouseIDs []id.ID) ([]inventory.MovementTotal, error) {
	ctx, span := tracer.Start(ctx, "inventory."+op,
		trace.WithAttributes(attribute.String("granularity", g.String())))
	defer span.End()

	expr, err := period.Expression(g, "m.movement_date", r.dialect)
	if err != nil {
		return nil, apperror.NewDialectConfig(err)
	}

	qb := r.builder.
		Select(
			expr+" AS period",
			"COALESCE(SUM(m.quantity), 0)::float8 AS total",
		).
		From("reg_stock_movements m").
		Where(squirrel.Eq{"m.record_type": recordType}).
		Where(squirrel.GtOrEq{"m.movement_date": rng.Start}).
		Where(squirrel.LtOrEq{"m.movement_date": rng.End}).
		GroupBy(expr).
		OrderBy("period")

	if len(warehouseIDs) > 0 {
		qb = qb.Where(squirrel.Eq{"m.warehouse_id": warehouseIDs})
	}

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []inventory.MovementTotal
	if err := pgxscan.Select(ctx, r.pool, &rows, query, args...); err != nil {
		return nil, apperror.NewDatabase(fmt.Errorf("stock %s totals: %w", recordType, err))
	}
	return rows, nil
}

// Ensure interface compliance
var _ inventory.Repository = (*InventoryRepo)(nil)
