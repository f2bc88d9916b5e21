package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"riskdesk/internal/domain"
)

func TestIsUniqueViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	if !isUniqueViolation(wrapped) {
		t.Fatalf("expected wrapped 23505 to be recognized")
	}
	if isUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Fatalf("foreign key violation misread as unique violation")
	}
	if isUniqueViolation(errors.New("boom")) {
		t.Fatalf("plain error misread as unique violation")
	}
}

func TestNullString(t *testing.T) {
	if nullString("") != nil {
		t.Fatalf("expected empty string to map to NULL")
	}
	if nullString("REF-001") != "REF-001" {
		t.Fatalf("expected non-empty string to pass through")
	}
}

func TestNullDecimalRoundTrip(t *testing.T) {
	if fromNullDecimal(nullDecimal(nil)) != nil {
		t.Fatalf("expected nil to round-trip to nil")
	}

	d := decimal.RequireFromString("85.50")
	out := fromNullDecimal(nullDecimal(&d))
	if out == nil || !out.Equal(d) {
		t.Fatalf("expected 85.50 to round-trip, got %v", out)
	}
}

func TestOrderClause(t *testing.T) {
	columns := map[string]string{
		"legalName": "legal_name",
		"createdAt": "created_at",
	}

	tests := []struct {
		name string
		page domain.PageRequest
		want string
	}{
		{"known field ascending", domain.PageRequest{SortField: "legalName"}, "legal_name ASC"},
		{"known field descending", domain.PageRequest{SortField: "createdAt", SortDesc: true}, "created_at DESC"},
		{"unknown field falls back", domain.PageRequest{SortField: "legal_name; DROP TABLE x"}, "created_at ASC"},
		{"empty field falls back", domain.PageRequest{}, "created_at ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := orderClause(columns, tt.page, "created_at"); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
