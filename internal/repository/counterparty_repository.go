package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"riskdesk/internal/domain"
)

// CounterpartyRepositoryImpl implements the CounterpartyRepository interface
type CounterpartyRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewCounterpartyRepository creates a new CounterpartyRepository
func NewCounterpartyRepository(db *pgxpool.Pool) domain.CounterpartyRepository {
	return &CounterpartyRepositoryImpl{db: db}
}

// counterpartySortColumns maps API sort fields to table columns.
var counterpartySortColumns = map[string]string{
	"legalName":   "legal_name",
	"countryCode": "country_code",
	"riskScore":   "risk_score",
	"createdAt":   "created_at",
}

// Save inserts a new profile
func (r *CounterpartyRepositoryImpl) Save(ctx context.Context, profile *domain.CounterpartyRiskProfile) error {
	query := `
		INSERT INTO counterparty_risk_profile (
			counterparty_id, legal_name, country_code, credit_rating,
			risk_score, exposure_limit, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
	`

	_, err := queryFrom(ctx, r.db).Exec(ctx, query,
		profile.ID,
		profile.LegalName,
		profile.CountryCode,
		nullString(profile.CreditRating),
		nullDecimal(profile.RiskScore),
		nullDecimal(profile.ExposureLimit),
		profile.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save counterparty risk profile: %w", err)
	}

	return nil
}

// GetByID retrieves a profile by id
func (r *CounterpartyRepositoryImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.CounterpartyRiskProfile, error) {
	query := `
		SELECT counterparty_id, legal_name, country_code, COALESCE(credit_rating, ''),
		       risk_score, exposure_limit, created_at
		FROM counterparty_risk_profile
		WHERE counterparty_id = $1
	`

	profile, err := scanCounterparty(queryFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "counterparty risk profile", ID: id.String()}
		}
		return nil, fmt.Errorf("failed to get counterparty risk profile by id: %w", err)
	}

	return profile, nil
}

// GetAll retrieves one page of profiles and the total row count
func (r *CounterpartyRepositoryImpl) GetAll(ctx context.Context, page domain.PageRequest) ([]*domain.CounterpartyRiskProfile, int64, error) {
	q := queryFrom(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM counterparty_risk_profile`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count counterparty risk profiles: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT counterparty_id, legal_name, country_code, COALESCE(credit_rating, ''),
		       risk_score, exposure_limit, created_at
		FROM counterparty_risk_profile
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, orderClause(counterpartySortColumns, page, "created_at"))

	rows, err := q.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query counterparty risk profiles: %w", err)
	}
	defer rows.Close()

	var profiles []*domain.CounterpartyRiskProfile
	for rows.Next() {
		profile, err := scanCounterparty(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan counterparty risk profile: %w", err)
		}
		profiles = append(profiles, profile)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating counterparty risk profiles: %w", err)
	}

	return profiles, total, nil
}

// Update persists the mutable fields of an existing profile
func (r *CounterpartyRepositoryImpl) Update(ctx context.Context, profile *domain.CounterpartyRiskProfile) error {
	query := `
		UPDATE counterparty_risk_profile
		SET legal_name = $1,
		    country_code = $2,
		    credit_rating = $3,
		    risk_score = $4,
		    exposure_limit = $5
		WHERE counterparty_id = $6
	`

	tag, err := queryFrom(ctx, r.db).Exec(ctx, query,
		profile.LegalName,
		profile.CountryCode,
		nullString(profile.CreditRating),
		nullDecimal(profile.RiskScore),
		nullDecimal(profile.ExposureLimit),
		profile.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update counterparty risk profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "counterparty risk profile", ID: profile.ID.String()}
	}

	return nil
}

// Delete removes a profile by id
func (r *CounterpartyRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := queryFrom(ctx, r.db).Exec(ctx, `DELETE FROM counterparty_risk_profile WHERE counterparty_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete counterparty risk profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "counterparty risk profile", ID: id.String()}
	}
	return nil
}

func scanCounterparty(row pgx.Row) (*domain.CounterpartyRiskProfile, error) {
	profile := &domain.CounterpartyRiskProfile{}
	var riskScore, exposureLimit decimal.NullDecimal
	err := row.Scan(
		&profile.ID,
		&profile.LegalName,
		&profile.CountryCode,
		&profile.CreditRating,
		&riskScore,
		&exposureLimit,
		&profile.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	profile.RiskScore = fromNullDecimal(riskScore)
	profile.ExposureLimit = fromNullDecimal(exposureLimit)
	return profile, nil
}
