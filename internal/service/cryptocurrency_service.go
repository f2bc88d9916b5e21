package service

import (
	"context"

	"riskdesk/internal/domain"
)

// CryptocurrencyServiceImpl implements the CryptocurrencyService interface
type CryptocurrencyServiceImpl struct {
	repo domain.CryptocurrencyRepository
	tx   domain.TxManager
}

// NewCryptocurrencyService creates a new CryptocurrencyService
func NewCryptocurrencyService(repo domain.CryptocurrencyRepository, tx domain.TxManager) domain.CryptocurrencyService {
	return &CryptocurrencyServiceImpl{repo: repo, tx: tx}
}

// Create constructs a listing from the supplied details and persists it. A
// duplicate symbol or slug surfaces as a ConflictError from the store.
func (s *CryptocurrencyServiceImpl) Create(ctx context.Context, details domain.CryptocurrencyDetails) (*domain.Cryptocurrency, error) {
	crypto, err := domain.NewCryptocurrency(details)
	if err != nil {
		return nil, err
	}
	err = s.tx.ReadWrite(ctx, func(ctx context.Context) error {
		return s.repo.Save(ctx, crypto)
	})
	if err != nil {
		return nil, err
	}
	return crypto, nil
}

// GetByID loads a listing, failing with NotFoundError if absent.
func (s *CryptocurrencyServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Cryptocurrency, error) {
	var crypto *domain.Cryptocurrency
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		crypto, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return crypto, nil
}

// GetAll returns one page of listings plus the total count.
func (s *CryptocurrencyServiceImpl) GetAll(ctx context.Context, page domain.PageRequest) ([]*domain.Cryptocurrency, int64, error) {
	var cryptos []*domain.Cryptocurrency
	var total int64
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		cryptos, total, err = s.repo.GetAll(ctx, page)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return cryptos, total, nil
}

// Update loads a listing, applies the new details atomically and persists the
// result.
func (s *CryptocurrencyServiceImpl) Update(ctx context.Context, id int64, details domain.CryptocurrencyDetails) (*domain.Cryptocurrency, error) {
	var crypto *domain.Cryptocurrency
	err := s.tx.ReadWrite(ctx, func(ctx context.Context) error {
		var err error
		crypto, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := crypto.UpdateDetails(details); err != nil {
			return err
		}
		return s.repo.Update(ctx, crypto)
	})
	if err != nil {
		return nil, err
	}
	return crypto, nil
}

// Delete verifies existence and removes the listing.
func (s *CryptocurrencyServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.tx.ReadWrite(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}
