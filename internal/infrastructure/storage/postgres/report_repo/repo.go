// Package report_repo provides PostgreSQL implementations of the dashboard
// report repositories. All queries are read-only aggregates; grouping is
// done in SQL by a dialect-specific date expression and the services fill
// the gaps afterwards.
package report_repo

import (
	"github.com/Masterminds/squirrel"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("pulseboard/report")

func newBuilder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
