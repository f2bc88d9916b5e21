package domain

import (
	"context"

	"github.com/google/uuid"
)

// CounterpartyRepository defines storage operations for counterparty risk profiles.
type CounterpartyRepository interface {
	// Save inserts a new profile.
	Save(ctx context.Context, profile *CounterpartyRiskProfile) error

	// GetByID retrieves a profile by id, failing with NotFoundError if absent.
	GetByID(ctx context.Context, id uuid.UUID) (*CounterpartyRiskProfile, error)

	// GetAll retrieves one page of profiles and the total row count.
	GetAll(ctx context.Context, page PageRequest) ([]*CounterpartyRiskProfile, int64, error)

	// Update persists the mutable fields of an existing profile.
	Update(ctx context.Context, profile *CounterpartyRiskProfile) error

	// Delete removes a profile by id, failing with NotFoundError if absent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CryptocurrencyRepository defines storage operations for cryptocurrency listings.
type CryptocurrencyRepository interface {
	// Save inserts a new listing and assigns its generated id.
	Save(ctx context.Context, crypto *Cryptocurrency) error

	// GetByID retrieves a listing by id, failing with NotFoundError if absent.
	GetByID(ctx context.Context, id int64) (*Cryptocurrency, error)

	// GetAll retrieves one page of listings and the total row count.
	GetAll(ctx context.Context, page PageRequest) ([]*Cryptocurrency, int64, error)

	// Update persists the mutable fields of an existing listing.
	Update(ctx context.Context, crypto *Cryptocurrency) error

	// Delete removes a listing by id, failing with NotFoundError if absent.
	Delete(ctx context.Context, id int64) error
}

// TransferRepository defines storage operations for transfers.
type TransferRepository interface {
	// Save inserts a new transfer and assigns its generated id.
	Save(ctx context.Context, transfer *Transfer) error

	// GetByID retrieves a transfer by id, failing with NotFoundError if absent.
	GetByID(ctx context.Context, id int64) (*Transfer, error)

	// GetAll retrieves one page of transfers and the total row count.
	GetAll(ctx context.Context, page PageRequest) ([]*Transfer, int64, error)

	// Update persists the mutable fields of an existing transfer.
	Update(ctx context.Context, transfer *Transfer) error

	// Delete removes a transfer by id, failing with NotFoundError if absent.
	Delete(ctx context.Context, id int64) error
}

// TxManager scopes a function to one storage transaction. ReadWrite commits on
// success and rolls back entirely on any error; ReadOnly runs the function in
// a read-only transaction.
type TxManager interface {
	ReadWrite(ctx context.Context, fn func(ctx context.Context) error) error
	ReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}
