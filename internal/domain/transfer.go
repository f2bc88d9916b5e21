package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransferStatus is the closed set of transfer lifecycle states.
type TransferStatus string

const (
	TransferStatusPendiente  TransferStatus = "PENDIENTE"
	TransferStatusCompletada TransferStatus = "COMPLETADA"
	TransferStatusRechazada  TransferStatus = "RECHAZADA"
	TransferStatusCancelada  TransferStatus = "CANCELADA"
)

var transferStatuses = []TransferStatus{
	TransferStatusPendiente,
	TransferStatusCompletada,
	TransferStatusRechazada,
	TransferStatusCancelada,
}

// ParseTransferStatus parses a status string. An unrecognized value fails with
// an UnknownStatusError; it is never silently defaulted.
func ParseTransferStatus(value string) (TransferStatus, error) {
	for _, s := range transferStatuses {
		if string(s) == value {
			return s, nil
		}
	}
	return "", &UnknownStatusError{Value: value}
}

// IsValid reports whether s is a member of the closed enumeration.
func (s TransferStatus) IsValid() bool {
	for _, known := range transferStatuses {
		if s == known {
			return true
		}
	}
	return false
}

func allTransferStatuses() string {
	names := make([]string, len(transferStatuses))
	for i, s := range transferStatuses {
		names[i] = string(s)
	}
	return strings.Join(names, ", ")
}

// Transfer represents a directed money movement between two accounts
// (transferencia). Amount is always strictly positive and status is always a
// member of the closed enumeration.
type Transfer struct {
	ID                   int64
	SourceAccountID      int64
	DestinationAccountID int64
	Amount               decimal.Decimal
	Currency             string
	Description          string
	Status               TransferStatus
	CreatedAt            time.Time
	ExecutedAt           *time.Time
	ExternalReference    string
}

// TransferDetails carries the caller-supplied transfer fields shared by
// creation and update.
type TransferDetails struct {
	SourceAccountID      int64
	DestinationAccountID int64
	Amount               decimal.Decimal
	Currency             string
	Description          string
	ExternalReference    string
}

// NewTransfer creates a transfer with domain invariant validation. Status
// starts as PENDIENTE and the creation timestamp is set once.
func NewTransfer(d TransferDetails) (*Transfer, error) {
	if err := validateTransferDetails(d); err != nil {
		return nil, err
	}
	return &Transfer{
		SourceAccountID:      d.SourceAccountID,
		DestinationAccountID: d.DestinationAccountID,
		Amount:               d.Amount,
		Currency:             d.Currency,
		Description:          d.Description,
		Status:               TransferStatusPendiente,
		CreatedAt:            time.Now().UTC(),
		ExternalReference:    d.ExternalReference,
	}, nil
}

// UpdateDetails replaces the mutable fields of the transfer. All fields are
// validated before any of them is assigned; a failed update leaves the
// transfer untouched. Any status may be set to any other: the model does not
// enforce transition legality.
func (t *Transfer) UpdateDetails(d TransferDetails, status TransferStatus, executedAt *time.Time) error {
	if err := validateTransferDetails(d); err != nil {
		return err
	}
	if !status.IsValid() {
		return &UnknownStatusError{Value: string(status)}
	}
	t.SourceAccountID = d.SourceAccountID
	t.DestinationAccountID = d.DestinationAccountID
	t.Amount = d.Amount
	t.Currency = d.Currency
	t.Description = d.Description
	t.Status = status
	t.ExecutedAt = executedAt
	t.ExternalReference = d.ExternalReference
	return nil
}

func validateTransferDetails(d TransferDetails) error {
	if d.SourceAccountID == 0 {
		return &ValidationError{Field: "cuentaOrigenId", Message: "source account id is required"}
	}
	if d.DestinationAccountID == 0 {
		return &ValidationError{Field: "cuentaDestinoId", Message: "destination account id is required"}
	}
	if d.Amount.Sign() <= 0 {
		return &ValidationError{Field: "importe", Message: "amount must be positive"}
	}
	if strings.TrimSpace(d.Currency) == "" {
		return &ValidationError{Field: "divisa", Message: "currency must not be blank"}
	}
	return nil
}
