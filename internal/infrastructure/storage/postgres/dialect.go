package postgres

import (
	"fmt"
	"strings"

	"pulseboard/internal/core/period"
)

// DialectFromDriver maps a configured driver name to the SQL dialect used
// for report date expressions. The live path is pgx, the other names cover
// deployments where reports run against a mirrored MySQL or SQL Server ERP
// instance.
func DialectFromDriver(driver string) (period.Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "pgx", "postgres", "postgresql":
		return period.DialectPostgres, nil
	case "mysql", "mariadb":
		return period.DialectMySQL, nil
	case "sqlserver", "mssql":
		return period.DialectSQLServer, nil
	default:
		return "", fmt.Errorf("unknown database driver %q", driver)
	}
}
