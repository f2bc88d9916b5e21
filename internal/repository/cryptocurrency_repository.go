package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"riskdesk/internal/domain"
)

// CryptocurrencyRepositoryImpl implements the CryptocurrencyRepository interface
type CryptocurrencyRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewCryptocurrencyRepository creates a new CryptocurrencyRepository
func NewCryptocurrencyRepository(db *pgxpool.Pool) domain.CryptocurrencyRepository {
	return &CryptocurrencyRepositoryImpl{db: db}
}

var cryptocurrencySortColumns = map[string]string{
	"name":         "name",
	"symbol":       "symbol",
	"slug":         "slug",
	"marketCap":    "market_cap",
	"priceUsd":     "price_usd",
	"rankPosition": "rank_position",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

const cryptocurrencyColumns = `
	id, name, symbol, slug, market_cap, price_usd, volume_24h,
	circulating_supply, max_supply, percent_change_1h, percent_change_24h,
	percent_change_7d, rank_position, is_active, created_at, updated_at
`

// Save inserts a new listing and assigns its generated id. A duplicate symbol
// or slug surfaces as a ConflictError.
func (r *CryptocurrencyRepositoryImpl) Save(ctx context.Context, crypto *domain.Cryptocurrency) error {
	query := `
		INSERT INTO cryptocurrencies (
			name, symbol, slug, market_cap, price_usd, volume_24h,
			circulating_supply, max_supply, percent_change_1h, percent_change_24h,
			percent_change_7d, rank_position, is_active, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15
		)
		RETURNING id
	`

	err := queryFrom(ctx, r.db).QueryRow(ctx, query,
		crypto.Name,
		crypto.Symbol,
		crypto.Slug,
		nullDecimal(crypto.MarketCap),
		nullDecimal(crypto.PriceUSD),
		nullDecimal(crypto.Volume24h),
		nullDecimal(crypto.CirculatingSupply),
		nullDecimal(crypto.MaxSupply),
		nullDecimal(crypto.PercentChange1h),
		nullDecimal(crypto.PercentChange24h),
		nullDecimal(crypto.PercentChange7d),
		crypto.RankPosition,
		crypto.IsActive,
		crypto.CreatedAt,
		crypto.UpdatedAt,
	).Scan(&crypto.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Message: fmt.Sprintf("cryptocurrency with symbol %q or slug %q already exists", crypto.Symbol, crypto.Slug)}
		}
		return fmt.Errorf("failed to save cryptocurrency: %w", err)
	}

	return nil
}

// GetByID retrieves a listing by id
func (r *CryptocurrencyRepositoryImpl) GetByID(ctx context.Context, id int64) (*domain.Cryptocurrency, error) {
	query := `SELECT ` + cryptocurrencyColumns + ` FROM cryptocurrencies WHERE id = $1`

	crypto, err := scanCryptocurrency(queryFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "cryptocurrency", ID: strconv.FormatInt(id, 10)}
		}
		return nil, fmt.Errorf("failed to get cryptocurrency by id: %w", err)
	}

	return crypto, nil
}

// GetAll retrieves one page of listings and the total row count
func (r *CryptocurrencyRepositoryImpl) GetAll(ctx context.Context, page domain.PageRequest) ([]*domain.Cryptocurrency, int64, error) {
	q := queryFrom(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM cryptocurrencies`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count cryptocurrencies: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM cryptocurrencies
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, cryptocurrencyColumns, orderClause(cryptocurrencySortColumns, page, "id"))

	rows, err := q.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query cryptocurrencies: %w", err)
	}
	defer rows.Close()

	var cryptos []*domain.Cryptocurrency
	for rows.Next() {
		crypto, err := scanCryptocurrency(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan cryptocurrency: %w", err)
		}
		cryptos = append(cryptos, crypto)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating cryptocurrencies: %w", err)
	}

	return cryptos, total, nil
}

// Update persists the mutable fields of an existing listing. A duplicate
// symbol or slug surfaces as a ConflictError.
func (r *CryptocurrencyRepositoryImpl) Update(ctx context.Context, crypto *domain.Cryptocurrency) error {
	query := `
		UPDATE cryptocurrencies
		SET name = $1,
		    symbol = $2,
		    slug = $3,
		    market_cap = $4,
		    price_usd = $5,
		    volume_24h = $6,
		    circulating_supply = $7,
		    max_supply = $8,
		    percent_change_1h = $9,
		    percent_change_24h = $10,
		    percent_change_7d = $11,
		    rank_position = $12,
		    is_active = $13,
		    updated_at = $14
		WHERE id = $15
	`

	tag, err := queryFrom(ctx, r.db).Exec(ctx, query,
		crypto.Name,
		crypto.Symbol,
		crypto.Slug,
		nullDecimal(crypto.MarketCap),
		nullDecimal(crypto.PriceUSD),
		nullDecimal(crypto.Volume24h),
		nullDecimal(crypto.CirculatingSupply),
		nullDecimal(crypto.MaxSupply),
		nullDecimal(crypto.PercentChange1h),
		nullDecimal(crypto.PercentChange24h),
		nullDecimal(crypto.PercentChange7d),
		crypto.RankPosition,
		crypto.IsActive,
		crypto.UpdatedAt,
		crypto.ID,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return &domain.ConflictError{Message: fmt.Sprintf("cryptocurrency with symbol %q or slug %q already exists", crypto.Symbol, crypto.Slug)}
		}
		return fmt.Errorf("failed to update cryptocurrency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "cryptocurrency", ID: strconv.FormatInt(crypto.ID, 10)}
	}

	return nil
}

// Delete removes a listing by id
func (r *CryptocurrencyRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := queryFrom(ctx, r.db).Exec(ctx, `DELETE FROM cryptocurrencies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete cryptocurrency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "cryptocurrency", ID: strconv.FormatInt(id, 10)}
	}
	return nil
}

func scanCryptocurrency(row pgx.Row) (*domain.Cryptocurrency, error) {
	crypto := &domain.Cryptocurrency{}
	var marketCap, priceUSD, volume24h decimal.NullDecimal
	var circulatingSupply, maxSupply decimal.NullDecimal
	var change1h, change24h, change7d decimal.NullDecimal
	err := row.Scan(
		&crypto.ID,
		&crypto.Name,
		&crypto.Symbol,
		&crypto.Slug,
		&marketCap,
		&priceUSD,
		&volume24h,
		&circulatingSupply,
		&maxSupply,
		&change1h,
		&change24h,
		&change7d,
		&crypto.RankPosition,
		&crypto.IsActive,
		&crypto.CreatedAt,
		&crypto.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	crypto.MarketCap = fromNullDecimal(marketCap)
	crypto.PriceUSD = fromNullDecimal(priceUSD)
	crypto.Volume24h = fromNullDecimal(volume24h)
	crypto.CirculatingSupply = fromNullDecimal(circulatingSupply)
	crypto.MaxSupply = fromNullDecimal(maxSupply)
	crypto.PercentChange1h = fromNullDecimal(change1h)
	crypto.PercentChange24h = fromNullDecimal(change24h)
	crypto.PercentChange7d = fromNullDecimal(change7d)
	return crypto, nil
}
