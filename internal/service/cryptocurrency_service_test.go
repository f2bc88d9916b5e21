package service

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"riskdesk/internal/domain"
)

type stubCryptoRepo struct {
	cryptos map[int64]*domain.Cryptocurrency
	nextID  int64
}

func newStubCryptoRepo() *stubCryptoRepo {
	return &stubCryptoRepo{cryptos: make(map[int64]*domain.Cryptocurrency), nextID: 1}
}

func (r *stubCryptoRepo) Save(_ context.Context, crypto *domain.Cryptocurrency) error {
	for _, existing := range r.cryptos {
		if existing.Symbol == crypto.Symbol || existing.Slug == crypto.Slug {
			return &domain.ConflictError{
				Message: "cryptocurrency with symbol " + strconv.Quote(crypto.Symbol) + " or slug " + strconv.Quote(crypto.Slug) + " already exists",
			}
		}
	}
	crypto.ID = r.nextID
	r.nextID++
	copied := *crypto
	r.cryptos[copied.ID] = &copied
	return nil
}

func (r *stubCryptoRepo) GetByID(_ context.Context, id int64) (*domain.Cryptocurrency, error) {
	stored, ok := r.cryptos[id]
	if !ok {
		return nil, &domain.NotFoundError{Resource: "cryptocurrency", ID: strconv.FormatInt(id, 10)}
	}
	copied := *stored
	return &copied, nil
}

func (r *stubCryptoRepo) GetAll(_ context.Context, _ domain.PageRequest) ([]*domain.Cryptocurrency, int64, error) {
	out := make([]*domain.Cryptocurrency, 0, len(r.cryptos))
	for _, c := range r.cryptos {
		copied := *c
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *stubCryptoRepo) Update(_ context.Context, crypto *domain.Cryptocurrency) error {
	if _, ok := r.cryptos[crypto.ID]; !ok {
		return &domain.NotFoundError{Resource: "cryptocurrency", ID: strconv.FormatInt(crypto.ID, 10)}
	}
	copied := *crypto
	r.cryptos[copied.ID] = &copied
	return nil
}

func (r *stubCryptoRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.cryptos[id]; !ok {
		return &domain.NotFoundError{Resource: "cryptocurrency", ID: strconv.FormatInt(id, 10)}
	}
	delete(r.cryptos, id)
	return nil
}

func validCryptoDetails() domain.CryptocurrencyDetails {
	return domain.CryptocurrencyDetails{
		Name:   "Bitcoin",
		Symbol: "BTC",
		Slug:   "bitcoin",
	}
}

func TestCryptocurrencyServiceCreateDefaultsToActive(t *testing.T) {
	repo := newStubCryptoRepo()
	svc := NewCryptocurrencyService(repo, &stubTxManager{})

	crypto, err := svc.Create(context.Background(), validCryptoDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if crypto.ID != 1 {
		t.Fatalf("expected generated id 1, got %d", crypto.ID)
	}
	if !crypto.IsActive {
		t.Fatalf("expected listing to default to active")
	}
}

func TestCryptocurrencyServiceCreateDuplicateConflicts(t *testing.T) {
	repo := newStubCryptoRepo()
	svc := NewCryptocurrencyService(repo, &stubTxManager{})

	if _, err := svc.Create(context.Background(), validCryptoDetails()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := svc.Create(context.Background(), validCryptoDetails())
	var ce *domain.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ConflictError, got %v", err)
	}
}

func TestCryptocurrencyServiceUpdateKeepsOmittedActiveFlag(t *testing.T) {
	repo := newStubCryptoRepo()
	svc := NewCryptocurrencyService(repo, &stubTxManager{})

	inactive := false
	details := validCryptoDetails()
	details.IsActive = &inactive
	created, err := svc.Create(context.Background(), details)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, validCryptoDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("omitted flag flipped the stored value")
	}
}

func TestCryptocurrencyServiceDeleteNotFound(t *testing.T) {
	svc := NewCryptocurrencyService(newStubCryptoRepo(), &stubTxManager{})

	if err := svc.Delete(context.Background(), 42); !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
