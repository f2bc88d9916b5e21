package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CounterpartyRiskProfile records a business partner's creditworthiness and
// exposure limits. Risk score and exposure limit, when present, are never
// negative.
type CounterpartyRiskProfile struct {
	ID            uuid.UUID
	LegalName     string
	CountryCode   string
	CreditRating  string
	RiskScore     *decimal.Decimal
	ExposureLimit *decimal.Decimal
	CreatedAt     time.Time
}

// CounterpartyDetails carries the caller-supplied profile fields shared by
// creation and update.
type CounterpartyDetails struct {
	LegalName     string
	CountryCode   string
	CreditRating  string
	RiskScore     *decimal.Decimal
	ExposureLimit *decimal.Decimal
}

// NewCounterpartyRiskProfile creates a profile with domain invariant
// validation. The id and creation timestamp are assigned once, here.
func NewCounterpartyRiskProfile(d CounterpartyDetails) (*CounterpartyRiskProfile, error) {
	if err := validateCounterpartyDetails(d); err != nil {
		return nil, err
	}
	return &CounterpartyRiskProfile{
		ID:            uuid.New(),
		LegalName:     d.LegalName,
		CountryCode:   d.CountryCode,
		CreditRating:  d.CreditRating,
		RiskScore:     d.RiskScore,
		ExposureLimit: d.ExposureLimit,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// UpdateDetails replaces the mutable fields of the profile. All fields are
// validated before any of them is assigned.
func (p *CounterpartyRiskProfile) UpdateDetails(d CounterpartyDetails) error {
	if err := validateCounterpartyDetails(d); err != nil {
		return err
	}
	p.LegalName = d.LegalName
	p.CountryCode = d.CountryCode
	p.CreditRating = d.CreditRating
	p.RiskScore = d.RiskScore
	p.ExposureLimit = d.ExposureLimit
	return nil
}

func validateCounterpartyDetails(d CounterpartyDetails) error {
	if strings.TrimSpace(d.LegalName) == "" {
		return &ValidationError{Field: "legalName", Message: "legal name must not be blank"}
	}
	if strings.TrimSpace(d.CountryCode) == "" {
		return &ValidationError{Field: "countryCode", Message: "country code must not be blank"}
	}
	if d.RiskScore != nil && d.RiskScore.Sign() < 0 {
		return &ValidationError{Field: "riskScore", Message: "risk score must not be negative"}
	}
	if d.ExposureLimit != nil && d.ExposureLimit.Sign() < 0 {
		return &ValidationError{Field: "exposureLimit", Message: "exposure limit must not be negative"}
	}
	return nil
}
