package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TransferUpdate carries the full replacement state for a transfer update,
// including the raw status string parsed by the service.
type TransferUpdate struct {
	TransferDetails
	Status     string
	ExecutedAt *time.Time
}

// CounterpartyService orchestrates CRUD operations for counterparty risk profiles.
type CounterpartyService interface {
	Create(ctx context.Context, details CounterpartyDetails) (*CounterpartyRiskProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CounterpartyRiskProfile, error)
	GetAll(ctx context.Context, page PageRequest) ([]*CounterpartyRiskProfile, int64, error)
	Update(ctx context.Context, id uuid.UUID, details CounterpartyDetails) (*CounterpartyRiskProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CryptocurrencyService orchestrates CRUD operations for cryptocurrency listings.
type CryptocurrencyService interface {
	Create(ctx context.Context, details CryptocurrencyDetails) (*Cryptocurrency, error)
	GetByID(ctx context.Context, id int64) (*Cryptocurrency, error)
	GetAll(ctx context.Context, page PageRequest) ([]*Cryptocurrency, int64, error)
	Update(ctx context.Context, id int64, details CryptocurrencyDetails) (*Cryptocurrency, error)
	Delete(ctx context.Context, id int64) error
}

// TransferService orchestrates CRUD operations for transfers.
type TransferService interface {
	Create(ctx context.Context, details TransferDetails) (*Transfer, error)
	GetByID(ctx context.Context, id int64) (*Transfer, error)
	GetAll(ctx context.Context, page PageRequest) ([]*Transfer, int64, error)
	Update(ctx context.Context, id int64, update TransferUpdate) (*Transfer, error)
	Delete(ctx context.Context, id int64) error
}
