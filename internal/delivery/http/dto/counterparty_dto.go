package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"riskdesk/internal/domain"
)

// CounterpartyRequest is the payload for creating or updating a counterparty
// risk profile. Create and update accept the same fields.
type CounterpartyRequest struct {
	LegalName     string           `json:"legalName"`
	CountryCode   string           `json:"countryCode"`
	CreditRating  string           `json:"creditRating"`
	RiskScore     *decimal.Decimal `json:"riskScore"`
	ExposureLimit *decimal.Decimal `json:"exposureLimit"`
}

// Validate returns every violated field/message pair, empty when the payload
// is well formed.
func (r CounterpartyRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.LegalName) == "" {
		errs = append(errs, FieldError{Field: "legalName", Message: "legal name is required"})
	} else if len(r.LegalName) > 200 {
		errs = append(errs, FieldError{Field: "legalName", Message: "legal name must not exceed 200 characters"})
	}
	if strings.TrimSpace(r.CountryCode) == "" {
		errs = append(errs, FieldError{Field: "countryCode", Message: "country code is required"})
	} else if len(r.CountryCode) > 3 {
		errs = append(errs, FieldError{Field: "countryCode", Message: "country code must not exceed 3 characters"})
	}
	if len(r.CreditRating) > 10 {
		errs = append(errs, FieldError{Field: "creditRating", Message: "credit rating must not exceed 10 characters"})
	}
	if r.RiskScore != nil && r.RiskScore.Sign() < 0 {
		errs = append(errs, FieldError{Field: "riskScore", Message: "risk score must not be negative"})
	}
	if r.ExposureLimit != nil && r.ExposureLimit.Sign() < 0 {
		errs = append(errs, FieldError{Field: "exposureLimit", Message: "exposure limit must not be negative"})
	}
	return errs
}

// ToDetails projects the request onto the domain input type.
func (r CounterpartyRequest) ToDetails() domain.CounterpartyDetails {
	return domain.CounterpartyDetails{
		LegalName:     r.LegalName,
		CountryCode:   r.CountryCode,
		CreditRating:  r.CreditRating,
		RiskScore:     r.RiskScore,
		ExposureLimit: r.ExposureLimit,
	}
}

// CounterpartyResponse is the wire representation of a persisted profile.
type CounterpartyResponse struct {
	CounterpartyID string           `json:"counterpartyId"`
	LegalName      string           `json:"legalName"`
	CountryCode    string           `json:"countryCode"`
	CreditRating   string           `json:"creditRating,omitempty"`
	RiskScore      *decimal.Decimal `json:"riskScore,omitempty"`
	ExposureLimit  *decimal.Decimal `json:"exposureLimit,omitempty"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// FromCounterparty projects a persisted profile onto its response shape.
func FromCounterparty(p *domain.CounterpartyRiskProfile) CounterpartyResponse {
	return CounterpartyResponse{
		CounterpartyID: p.ID.String(),
		LegalName:      p.LegalName,
		CountryCode:    p.CountryCode,
		CreditRating:   p.CreditRating,
		RiskScore:      p.RiskScore,
		ExposureLimit:  p.ExposureLimit,
		CreatedAt:      p.CreatedAt,
	}
}
