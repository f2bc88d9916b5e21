package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"riskdesk/internal/domain"
)

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// nullString maps the empty string to SQL NULL for optional text columns.
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

// orderClause builds a safe ORDER BY fragment from a whitelist of sortable
// columns. Unknown sort fields fall back to the default column.
func orderClause(columns map[string]string, page domain.PageRequest, defaultColumn string) string {
	column, ok := columns[page.SortField]
	if !ok {
		column = defaultColumn
	}
	direction := "ASC"
	if page.SortDesc {
		direction = "DESC"
	}
	return column + " " + direction
}
