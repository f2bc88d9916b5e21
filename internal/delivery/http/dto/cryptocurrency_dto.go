package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"riskdesk/internal/domain"
)

// CryptocurrencyRequest is the payload for creating or updating a
// cryptocurrency listing. Create and update accept the same fields; an
// omitted isActive defaults to true on create and is left unchanged on
// update.
type CryptocurrencyRequest struct {
	Name              string           `json:"name"`
	Symbol            string           `json:"symbol"`
	Slug              string           `json:"slug"`
	MarketCap         *decimal.Decimal `json:"marketCap"`
	PriceUSD          *decimal.Decimal `json:"priceUsd"`
	Volume24h         *decimal.Decimal `json:"volume24h"`
	CirculatingSupply *decimal.Decimal `json:"circulatingSupply"`
	MaxSupply         *decimal.Decimal `json:"maxSupply"`
	PercentChange1h   *decimal.Decimal `json:"percentChange1h"`
	PercentChange24h  *decimal.Decimal `json:"percentChange24h"`
	PercentChange7d   *decimal.Decimal `json:"percentChange7d"`
	RankPosition      *int             `json:"rankPosition"`
	IsActive          *bool            `json:"isActive"`
}

// Validate returns every violated field/message pair, empty when the payload
// is well formed. Percent-change fields may be negative.
func (r CryptocurrencyRequest) Validate() []FieldError {
	var errs []FieldError
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > 100 {
		errs = append(errs, FieldError{Field: "name", Message: "name must not exceed 100 characters"})
	}
	if strings.TrimSpace(r.Symbol) == "" {
		errs = append(errs, FieldError{Field: "symbol", Message: "symbol is required"})
	} else if len(r.Symbol) > 20 {
		errs = append(errs, FieldError{Field: "symbol", Message: "symbol must not exceed 20 characters"})
	}
	if strings.TrimSpace(r.Slug) == "" {
		errs = append(errs, FieldError{Field: "slug", Message: "slug is required"})
	} else if len(r.Slug) > 120 {
		errs = append(errs, FieldError{Field: "slug", Message: "slug must not exceed 120 characters"})
	}
	if r.PriceUSD != nil && r.PriceUSD.Sign() < 0 {
		errs = append(errs, FieldError{Field: "priceUsd", Message: "price must not be negative"})
	}
	return errs
}

// ToDetails projects the request onto the domain input type.
func (r CryptocurrencyRequest) ToDetails() domain.CryptocurrencyDetails {
	return domain.CryptocurrencyDetails{
		Name:              r.Name,
		Symbol:            r.Symbol,
		Slug:              r.Slug,
		MarketCap:         r.MarketCap,
		PriceUSD:          r.PriceUSD,
		Volume24h:         r.Volume24h,
		CirculatingSupply: r.CirculatingSupply,
		MaxSupply:         r.MaxSupply,
		PercentChange1h:   r.PercentChange1h,
		PercentChange24h:  r.PercentChange24h,
		PercentChange7d:   r.PercentChange7d,
		RankPosition:      r.RankPosition,
		IsActive:          r.IsActive,
	}
}

// CryptocurrencyResponse is the wire representation of a persisted listing.
type CryptocurrencyResponse struct {
	ID                int64            `json:"id"`
	Name              string           `json:"name"`
	Symbol            string           `json:"symbol"`
	Slug              string           `json:"slug"`
	MarketCap         *decimal.Decimal `json:"marketCap,omitempty"`
	PriceUSD          *decimal.Decimal `json:"priceUsd,omitempty"`
	Volume24h         *decimal.Decimal `json:"volume24h,omitempty"`
	CirculatingSupply *decimal.Decimal `json:"circulatingSupply,omitempty"`
	MaxSupply         *decimal.Decimal `json:"maxSupply,omitempty"`
	PercentChange1h   *decimal.Decimal `json:"percentChange1h,omitempty"`
	PercentChange24h  *decimal.Decimal `json:"percentChange24h,omitempty"`
	PercentChange7d   *decimal.Decimal `json:"percentChange7d,omitempty"`
	RankPosition      *int             `json:"rankPosition,omitempty"`
	IsActive          bool             `json:"isActive"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// FromCryptocurrency projects a persisted listing onto its response shape.
func FromCryptocurrency(c *domain.Cryptocurrency) CryptocurrencyResponse {
	return CryptocurrencyResponse{
		ID:                c.ID,
		Name:              c.Name,
		Symbol:            c.Symbol,
		Slug:              c.Slug,
		MarketCap:         c.MarketCap,
		PriceUSD:          c.PriceUSD,
		Volume24h:         c.Volume24h,
		CirculatingSupply: c.CirculatingSupply,
		MaxSupply:         c.MaxSupply,
		PercentChange1h:   c.PercentChange1h,
		PercentChange24h:  c.PercentChange24h,
		PercentChange7d:   c.PercentChange7d,
		RankPosition:      c.RankPosition,
		IsActive:          c.IsActive,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
