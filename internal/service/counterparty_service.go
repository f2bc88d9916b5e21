package service

import (
	"context"

	"github.com/google/uuid"

	"riskdesk/internal/domain"
)

// CounterpartyServiceImpl implements the CounterpartyService interface
type CounterpartyServiceImpl struct {
	repo domain.CounterpartyRepository
	tx   domain.TxManager
}

// NewCounterpartyService creates a new CounterpartyService
func NewCounterpartyService(repo domain.CounterpartyRepository, tx domain.TxManager) domain.CounterpartyService {
	return &CounterpartyServiceImpl{repo: repo, tx: tx}
}

// Create constructs a profile from the supplied details and persists it.
func (s *CounterpartyServiceImpl) Create(ctx context.Context, details domain.CounterpartyDetails) (*domain.CounterpartyRiskProfile, error) {
	profile, err := domain.NewCounterpartyRiskProfile(details)
	if err != nil {
		return nil, err
	}
	err = s.tx.ReadWrite(ctx, func(ctx context.Context) error {
		return s.repo.Save(ctx, profile)
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetByID loads a profile, failing with NotFoundError if absent.
func (s *CounterpartyServiceImpl) GetByID(ctx context.Context, id uuid.UUID) (*domain.CounterpartyRiskProfile, error) {
	var profile *domain.CounterpartyRiskProfile
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		profile, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// GetAll returns one page of profiles plus the total count.
func (s *CounterpartyServiceImpl) GetAll(ctx context.Context, page domain.PageRequest) ([]*domain.CounterpartyRiskProfile, int64, error) {
	var profiles []*domain.CounterpartyRiskProfile
	var total int64
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		profiles, total, err = s.repo.GetAll(ctx, page)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}

// Update loads a profile, applies the new details atomically and persists the
// result. A validation failure rolls the whole operation back.
func (s *CounterpartyServiceImpl) Update(ctx context.Context, id uuid.UUID, details domain.CounterpartyDetails) (*domain.CounterpartyRiskProfile, error) {
	var profile *domain.CounterpartyRiskProfile
	err := s.tx.ReadWrite(ctx, func(ctx context.Context) error {
		var err error
		profile, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := profile.UpdateDetails(details); err != nil {
			return err
		}
		return s.repo.Update(ctx, profile)
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Delete verifies existence and removes the profile.
func (s *CounterpartyServiceImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return s.tx.ReadWrite(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}
