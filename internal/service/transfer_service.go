package service

import (
	"context"

	"riskdesk/internal/domain"
)

// TransferServiceImpl implements the TransferService interface
type TransferServiceImpl struct {
	repo domain.TransferRepository
	tx   domain.TxManager
}

// NewTransferService creates a new TransferService
func NewTransferService(repo domain.TransferRepository, tx domain.TxManager) domain.TransferService {
	return &TransferServiceImpl{repo: repo, tx: tx}
}

// Create constructs a transfer from the supplied details and persists it. The
// transfer always starts in PENDIENTE.
func (s *TransferServiceImpl) Create(ctx context.Context, details domain.TransferDetails) (*domain.Transfer, error) {
	transfer, err := domain.NewTransfer(details)
	if err != nil {
		return nil, err
	}
	err = s.tx.ReadWrite(ctx, func(ctx context.Context) error {
		return s.repo.Save(ctx, transfer)
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// GetByID loads a transfer, failing with NotFoundError if absent.
func (s *TransferServiceImpl) GetByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	var transfer *domain.Transfer
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		transfer, err = s.repo.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// GetAll returns one page of transfers plus the total count.
func (s *TransferServiceImpl) GetAll(ctx context.Context, page domain.PageRequest) ([]*domain.Transfer, int64, error) {
	var transfers []*domain.Transfer
	var total int64
	err := s.tx.ReadOnly(ctx, func(ctx context.Context) error {
		var err error
		transfers, total, err = s.repo.GetAll(ctx, page)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return transfers, total, nil
}

// Update loads a transfer, parses the requested status and applies the new
// details atomically. An unrecognized status fails with UnknownStatusError
// and leaves the persisted transfer untouched.
func (s *TransferServiceImpl) Update(ctx context.Context, id int64, update domain.TransferUpdate) (*domain.Transfer, error) {
	var transfer *domain.Transfer
	err := s.tx.ReadWrite(ctx, func(ctx context.Context) error {
		var err error
		transfer, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		status, err := domain.ParseTransferStatus(update.Status)
		if err != nil {
			return err
		}
		if err := transfer.UpdateDetails(update.TransferDetails, status, update.ExecutedAt); err != nil {
			return err
		}
		return s.repo.Update(ctx, transfer)
	})
	if err != nil {
		return nil, err
	}
	return transfer, nil
}

// Delete verifies existence and removes the transfer.
func (s *TransferServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.tx.ReadWrite(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
}
