package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Cryptocurrency is a market listing for a coin or token. Symbol and slug are
// unique across the store; price, when present, is never negative.
type Cryptocurrency struct {
	ID                int64
	Name              string
	Symbol            string
	Slug              string
	MarketCap         *decimal.Decimal
	PriceUSD          *decimal.Decimal
	Volume24h         *decimal.Decimal
	CirculatingSupply *decimal.Decimal
	MaxSupply         *decimal.Decimal
	PercentChange1h   *decimal.Decimal
	PercentChange24h  *decimal.Decimal
	PercentChange7d   *decimal.Decimal
	RankPosition      *int
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CryptocurrencyDetails carries the caller-supplied listing fields shared by
// creation and update. IsActive is a pointer so callers can distinguish an
// omitted flag from an explicit false.
type CryptocurrencyDetails struct {
	Name              string
	Symbol            string
	Slug              string
	MarketCap         *decimal.Decimal
	PriceUSD          *decimal.Decimal
	Volume24h         *decimal.Decimal
	CirculatingSupply *decimal.Decimal
	MaxSupply         *decimal.Decimal
	PercentChange1h   *decimal.Decimal
	PercentChange24h  *decimal.Decimal
	PercentChange7d   *decimal.Decimal
	RankPosition      *int
	IsActive          *bool
}

// NewCryptocurrency creates a listing with domain invariant validation. The
// active flag defaults to true when omitted; both timestamps are set to now.
func NewCryptocurrency(d CryptocurrencyDetails) (*Cryptocurrency, error) {
	if err := validateCryptocurrencyDetails(d); err != nil {
		return nil, err
	}
	active := true
	if d.IsActive != nil {
		active = *d.IsActive
	}
	now := time.Now().UTC()
	return &Cryptocurrency{
		Name:              d.Name,
		Symbol:            d.Symbol,
		Slug:              d.Slug,
		MarketCap:         d.MarketCap,
		PriceUSD:          d.PriceUSD,
		Volume24h:         d.Volume24h,
		CirculatingSupply: d.CirculatingSupply,
		MaxSupply:         d.MaxSupply,
		PercentChange1h:   d.PercentChange1h,
		PercentChange24h:  d.PercentChange24h,
		PercentChange7d:   d.PercentChange7d,
		RankPosition:      d.RankPosition,
		IsActive:          active,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// UpdateDetails replaces the mutable fields of the listing and refreshes the
// updated timestamp. All fields are validated before any of them is assigned.
// A nil IsActive leaves the current flag unchanged.
func (c *Cryptocurrency) UpdateDetails(d CryptocurrencyDetails) error {
	if err := validateCryptocurrencyDetails(d); err != nil {
		return err
	}
	c.Name = d.Name
	c.Symbol = d.Symbol
	c.Slug = d.Slug
	c.MarketCap = d.MarketCap
	c.PriceUSD = d.PriceUSD
	c.Volume24h = d.Volume24h
	c.CirculatingSupply = d.CirculatingSupply
	c.MaxSupply = d.MaxSupply
	c.PercentChange1h = d.PercentChange1h
	c.PercentChange24h = d.PercentChange24h
	c.PercentChange7d = d.PercentChange7d
	c.RankPosition = d.RankPosition
	if d.IsActive != nil {
		c.IsActive = *d.IsActive
	}
	c.UpdatedAt = time.Now().UTC()
	return nil
}

func validateCryptocurrencyDetails(d CryptocurrencyDetails) error {
	if strings.TrimSpace(d.Name) == "" {
		return &ValidationError{Field: "name", Message: "name must not be blank"}
	}
	if strings.TrimSpace(d.Symbol) == "" {
		return &ValidationError{Field: "symbol", Message: "symbol must not be blank"}
	}
	if strings.TrimSpace(d.Slug) == "" {
		return &ValidationError{Field: "slug", Message: "slug must not be blank"}
	}
	if d.PriceUSD != nil && d.PriceUSD.Sign() < 0 {
		return &ValidationError{Field: "priceUsd", Message: "price must not be negative"}
	}
	return nil
}
