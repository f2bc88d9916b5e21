package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func decimalPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func validCounterpartyDetails() CounterpartyDetails {
	return CounterpartyDetails{
		LegalName:     "Acme Corp",
		CountryCode:   "USA",
		CreditRating:  "AA-",
		RiskScore:     decimalPtr("85.50"),
		ExposureLimit: decimalPtr("1000000.00"),
	}
}

func TestNewCounterpartyRiskProfileEchoesInput(t *testing.T) {
	profile, err := NewCounterpartyRiskProfile(validCounterpartyDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.ID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatalf("expected generated id")
	}
	if profile.LegalName != "Acme Corp" || profile.CountryCode != "USA" || profile.CreditRating != "AA-" {
		t.Fatalf("string fields not echoed")
	}
	if !profile.RiskScore.Equal(decimal.RequireFromString("85.50")) {
		t.Fatalf("expected risk score 85.50, got %s", profile.RiskScore)
	}
	if !profile.ExposureLimit.Equal(decimal.RequireFromString("1000000.00")) {
		t.Fatalf("expected exposure limit 1000000.00, got %s", profile.ExposureLimit)
	}
	if profile.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp to be set")
	}
}

func TestNewCounterpartyRiskProfileValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CounterpartyDetails)
		field  string
	}{
		{"blank legal name", func(d *CounterpartyDetails) { d.LegalName = "  " }, "legalName"},
		{"blank country code", func(d *CounterpartyDetails) { d.CountryCode = "" }, "countryCode"},
		{"negative risk score", func(d *CounterpartyDetails) { d.RiskScore = decimalPtr("-0.01") }, "riskScore"},
		{"negative exposure limit", func(d *CounterpartyDetails) { d.ExposureLimit = decimalPtr("-100") }, "exposureLimit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := validCounterpartyDetails()
			tt.mutate(&details)

			_, err := NewCounterpartyRiskProfile(details)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Fatalf("expected field %s, got %s", tt.field, ve.Field)
			}
		})
	}
}

func TestNewCounterpartyRiskProfileAcceptsZeroAndOptionals(t *testing.T) {
	details := CounterpartyDetails{
		LegalName:   "Zero Ltd",
		CountryCode: "DE",
		RiskScore:   decimalPtr("0"),
	}
	profile, err := NewCounterpartyRiskProfile(details)
	if err != nil {
		t.Fatalf("expected zero risk score to be accepted, got %v", err)
	}
	if profile.ExposureLimit != nil {
		t.Fatalf("expected nil exposure limit")
	}
	if profile.CreditRating != "" {
		t.Fatalf("expected empty credit rating")
	}
}

func TestCounterpartyUpdateDetailsIsAtomic(t *testing.T) {
	profile, err := NewCounterpartyRiskProfile(validCounterpartyDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	createdAt := profile.CreatedAt

	bad := validCounterpartyDetails()
	bad.LegalName = "Updated Corp"
	bad.RiskScore = decimalPtr("-1")

	if err := profile.UpdateDetails(bad); err == nil {
		t.Fatalf("expected validation error")
	}
	if profile.LegalName != "Acme Corp" {
		t.Fatalf("failed update mutated legal name: %s", profile.LegalName)
	}

	good := validCounterpartyDetails()
	good.LegalName = "Updated Corp"
	if err := profile.UpdateDetails(good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.LegalName != "Updated Corp" {
		t.Fatalf("update did not apply: %s", profile.LegalName)
	}
	if !profile.CreatedAt.Equal(createdAt) {
		t.Fatalf("update mutated creation timestamp")
	}
}
