package postgres

import (
	"testing"

	"pulseboard/internal/core/period"
)

func TestDialectFromDriver(t *testing.T) {
	tests := []struct {
		driver  string
		want    period.Dialect
		wantErr bool
	}{
		{driver: "pgx", want: period.DialectPostgres},
		{driver: "", want: period.DialectPostgres},
		{driver: "Postgres", want: period.DialectPostgres},
		{driver: "mysql", want: period.DialectMySQL},
		{driver: "mariadb", want: period.DialectMySQL},
		{driver: " sqlserver ", want: period.DialectSQLServer},
		{driver: "mssql", want: period.DialectSQLServer},
		{driver: "oracle", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := DialectFromDriver(tt.driver)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("DialectFromDriver(%q) expected error, got %q", tt.driver, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("DialectFromDriver(%q) unexpected error: %v", tt.driver, err)
			}
			if got != tt.want {
				t.Errorf("DialectFromDriver(%q) = %q, want %q", tt.driver, got, tt.want)
			}
		})
	}
}
