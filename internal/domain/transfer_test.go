package domain

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validTransferDetails() TransferDetails {
	return TransferDetails{
		SourceAccountID:      100,
		DestinationAccountID: 200,
		Amount:               decimal.RequireFromString("150.75"),
		Currency:             "EUR",
		Description:          "invoice 42",
		ExternalReference:    "REF-001",
	}
}

func TestNewTransferDefaultsToPendiente(t *testing.T) {
	transfer, err := NewTransfer(validTransferDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transfer.Status != TransferStatusPendiente {
		t.Fatalf("expected status PENDIENTE, got %s", transfer.Status)
	}
	if transfer.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp to be set")
	}
	if transfer.ExecutedAt != nil {
		t.Fatalf("expected no execution timestamp on creation")
	}
}

func TestNewTransferEchoesInput(t *testing.T) {
	details := validTransferDetails()
	transfer, err := NewTransfer(details)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transfer.SourceAccountID != 100 || transfer.DestinationAccountID != 200 {
		t.Fatalf("account ids not echoed: %d -> %d", transfer.SourceAccountID, transfer.DestinationAccountID)
	}
	if !transfer.Amount.Equal(decimal.RequireFromString("150.75")) {
		t.Fatalf("expected amount 150.75, got %s", transfer.Amount)
	}
	if transfer.Currency != "EUR" || transfer.Description != "invoice 42" || transfer.ExternalReference != "REF-001" {
		t.Fatalf("string fields not echoed")
	}
}

func TestNewTransferValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TransferDetails)
		field  string
	}{
		{"missing source account", func(d *TransferDetails) { d.SourceAccountID = 0 }, "cuentaOrigenId"},
		{"missing destination account", func(d *TransferDetails) { d.DestinationAccountID = 0 }, "cuentaDestinoId"},
		{"zero amount", func(d *TransferDetails) { d.Amount = decimal.Zero }, "importe"},
		{"negative amount", func(d *TransferDetails) { d.Amount = decimal.RequireFromString("-1") }, "importe"},
		{"blank currency", func(d *TransferDetails) { d.Currency = "   " }, "divisa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := validTransferDetails()
			tt.mutate(&details)

			_, err := NewTransfer(details)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if ve.Field != tt.field {
				t.Fatalf("expected field %s, got %s", tt.field, ve.Field)
			}
		})
	}
}

func TestParseTransferStatus(t *testing.T) {
	for _, valid := range []string{"PENDIENTE", "COMPLETADA", "RECHAZADA", "CANCELADA"} {
		status, err := ParseTransferStatus(valid)
		if err != nil {
			t.Fatalf("expected %s to parse, got %v", valid, err)
		}
		if string(status) != valid {
			t.Fatalf("expected %s, got %s", valid, status)
		}
	}

	_, err := ParseTransferStatus("INVALID_STATE")
	var use *UnknownStatusError
	if !errors.As(err, &use) {
		t.Fatalf("expected UnknownStatusError, got %v", err)
	}
	if !strings.Contains(err.Error(), "INVALID_STATE") {
		t.Fatalf("expected error message to name the received value, got %q", err.Error())
	}
}

func TestUpdateDetailsAllowsAnyTransition(t *testing.T) {
	transfer, err := NewTransfer(validTransferDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	executed := time.Now().UTC()
	if err := transfer.UpdateDetails(validTransferDetails(), TransferStatusCompletada, &executed); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if transfer.Status != TransferStatusCompletada {
		t.Fatalf("expected COMPLETADA, got %s", transfer.Status)
	}

	// Terminal-by-convention only: the model does not block going back
	if err := transfer.UpdateDetails(validTransferDetails(), TransferStatusPendiente, nil); err != nil {
		t.Fatalf("expected any-to-any transition to be allowed, got %v", err)
	}
	if transfer.ExecutedAt != nil {
		t.Fatalf("expected execution timestamp cleared by update")
	}
}

func TestUpdateDetailsIsAtomic(t *testing.T) {
	transfer, err := NewTransfer(validTransferDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := validTransferDetails()
	bad.SourceAccountID = 999
	bad.Amount = decimal.RequireFromString("-5")

	if err := transfer.UpdateDetails(bad, TransferStatusCompletada, nil); err == nil {
		t.Fatalf("expected validation error")
	}
	if transfer.SourceAccountID != 100 {
		t.Fatalf("failed update mutated source account: %d", transfer.SourceAccountID)
	}
	if !transfer.Amount.Equal(decimal.RequireFromString("150.75")) {
		t.Fatalf("failed update mutated amount: %s", transfer.Amount)
	}
	if transfer.Status != TransferStatusPendiente {
		t.Fatalf("failed update mutated status: %s", transfer.Status)
	}
}

func TestUpdateDetailsRejectsUnknownStatus(t *testing.T) {
	transfer, err := NewTransfer(validTransferDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = transfer.UpdateDetails(validTransferDetails(), TransferStatus("INVALID_STATE"), nil)
	var use *UnknownStatusError
	if !errors.As(err, &use) {
		t.Fatalf("expected UnknownStatusError, got %v", err)
	}
	if transfer.Status != TransferStatusPendiente {
		t.Fatalf("unknown status mutated the transfer: %s", transfer.Status)
	}
}
