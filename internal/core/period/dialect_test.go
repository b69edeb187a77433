package period

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The expression table must stay exhaustive over dialects x granularities;
// a hole is a configuration defect that should fail here, not in production.
func TestExpression_Exhaustive(t *testing.T) {
	for _, d := range Dialects() {
		for _, g := range Granularities() {
			expr, err := Expression(g, "order_date", d)
			require.NoErrorf(t, err, "missing expression for %s/%s", d, g)
			assert.Contains(t, expr, "order_date")
		}
	}
}

func TestExpression_DialectsDifferButAlign(t *testing.T) {
	pg, err := Expression(Monthly, "order_date", DialectPostgres)
	require.NoError(t, err)
	my, err := Expression(Monthly, "order_date", DialectMySQL)
	require.NoError(t, err)

	// Same logical month boundary, different SQL text.
	assert.NotEqual(t, pg, my)
	assert.Equal(t, "to_char(order_date, 'YYYY-MM')", pg)
	assert.Equal(t, "DATE_FORMAT(order_date, '%Y-%m')", my)
}

func TestExpression_UnknownDialect(t *testing.T) {
	_, err := Expression(Monthly, "order_date", Dialect("oracle"))
	var unsupported *UnsupportedDialectError
	require.True(t, errors.As(err, &unsupported))
	assert.Equal(t, Dialect("oracle"), unsupported.Dialect)
	assert.Equal(t, Monthly, unsupported.Granularity)
}
