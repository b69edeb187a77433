package period

import "fmt"

// Dialect identifies the SQL syntax variant of a supported back-end. The
// value is resolved by the storage layer from connection configuration and
// passed in; this package never inspects a live connection.
type Dialect string

const (
	DialectPostgres  Dialect = "postgres"
	DialectMySQL     Dialect = "mysql"
	DialectSQLServer Dialect = "sqlserver"
)

// UnsupportedDialectError reports a (dialect, granularity) pair with no
// registered expression. This is a configuration defect, not user input:
// it propagates uncaught and should be caught by the exhaustiveness test.
type UnsupportedDialectError struct {
	Dialect     Dialect
	Granularity Granularity
}

func (e *UnsupportedDialectError) Error() string {
	return fmt.Sprintf("no date expression registered for dialect %q at granularity %q", e.Dialect, e.Granularity)
}

type dialectKey struct {
	d Dialect
	g Granularity
}

// expressions maps every supported (dialect, granularity) pair to a format
// string taking the column name. Each entry renders the column to the
// canonical bucket key layout of its granularity so that rows from any
// back-end align after Normalize.
var expressions = map[dialectKey]string{
	{DialectPostgres, Daily}:   "to_char(%s, 'YYYY-MM-DD')",
	{DialectPostgres, Monthly}: "to_char(%s, 'YYYY-MM')",
	{DialectPostgres, Yearly}:  "to_char(%s, 'YYYY')",

	{DialectMySQL, Daily}:   "DATE_FORMAT(%s, '%%Y-%%m-%%d')",
	{DialectMySQL, Monthly}: "DATE_FORMAT(%s, '%%Y-%%m')",
	{DialectMySQL, Yearly}:  "DATE_FORMAT(%s, '%%Y')",

	{DialectSQLServer, Daily}:   "FORMAT(%s, 'yyyy-MM-dd')",
	{DialectSQLServer, Monthly}: "FORMAT(%s, 'yyyy-MM')",
	{DialectSQLServer, Yearly}:  "FORMAT(%s, 'yyyy')",
}

// Dialects lists the supported dialects (used by the exhaustiveness test).
func Dialects() []Dialect {
	return []Dialect{DialectPostgres, DialectMySQL, DialectSQLServer}
}

// Granularities lists the supported granularities.
func Granularities() []Granularity {
	return []Granularity{Daily, Monthly, Yearly}
}

// Expression returns the ready-to-embed SQL fragment that formats column to
// the bucket key for granularity g in dialect d.
func Expression(g Granularity, column string, d Dialect) (string, error) {
	format, ok := expressions[dialectKey{d, g}]
	if !ok {
		return "", &UnsupportedDialectError{Dialect: d, Granularity: g}
	}
	return fmt.Sprintf(format, column), nil
}
