package repositories

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pressly/goose/v3"
)

// Dialect selects the SQL flavour and database/sql driver for a planet store.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite"
)

func ParseDialect(s string) (Dialect, error) {
	switch Dialect(strings.ToLower(strings.TrimSpace(s))) {
	case DialectPostgres, "postgres":
		return DialectPostgres, nil
	case DialectSQLite, "sqlite3":
		return DialectSQLite, nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", s)
	}
}

// DriverName is the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string { return string(d) }

func (d Dialect) gooseDialect() goose.Dialect {
	if d == DialectPostgres {
		return goose.DialectPostgres
	}
	return goose.DialectSQLite3
}

// placeholder returns the n-th (1-based) bind parameter.
func (d Dialect) placeholder(n int) string {
	if d == DialectPostgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}

// distanceOrder turns a display distance into a sortable value.
// Unparseable distances sort after every valid one.
func distanceOrder(km string) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(km), ",", ""), 64)
	if err != nil || math.IsNaN(v) {
		return math.MaxFloat64
	}
	return v
}
