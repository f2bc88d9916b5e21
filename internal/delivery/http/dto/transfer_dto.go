package dto

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"riskdesk/internal/domain"
)

// CreateTransferRequest is the payload for creating a transfer. The status is
// never supplied on creation; every transfer starts as PENDIENTE.
type CreateTransferRequest struct {
	CuentaOrigenID    *int64           `json:"cuentaOrigenId"`
	CuentaDestinoID   *int64           `json:"cuentaDestinoId"`
	Importe           *decimal.Decimal `json:"importe"`
	Divisa            string           `json:"divisa"`
	Concepto          string           `json:"concepto"`
	ReferenciaExterna string           `json:"referenciaExterna"`
}

// Validate returns every violated field/message pair, empty when the payload
// is well formed.
func (r CreateTransferRequest) Validate() []FieldError {
	return validateTransferFields(r.CuentaOrigenID, r.CuentaDestinoID, r.Importe, r.Divisa, r.Concepto, r.ReferenciaExterna)
}

// ToDetails projects the request onto the domain input type. Only call after
// a successful Validate.
func (r CreateTransferRequest) ToDetails() domain.TransferDetails {
	return domain.TransferDetails{
		SourceAccountID:      deref(r.CuentaOrigenID),
		DestinationAccountID: deref(r.CuentaDestinoID),
		Amount:               derefDecimal(r.Importe),
		Currency:             r.Divisa,
		Description:          r.Concepto,
		ExternalReference:    r.ReferenciaExterna,
	}
}

// UpdateTransferRequest is the payload for updating a transfer. Unlike
// creation it carries the status and the optional execution timestamp.
type UpdateTransferRequest struct {
	CuentaOrigenID    *int64           `json:"cuentaOrigenId"`
	CuentaDestinoID   *int64           `json:"cuentaDestinoId"`
	Importe           *decimal.Decimal `json:"importe"`
	Divisa            string           `json:"divisa"`
	Concepto          string           `json:"concepto"`
	Estado            string           `json:"estado"`
	FechaEjecucion    *time.Time       `json:"fechaEjecucion"`
	ReferenciaExterna string           `json:"referenciaExterna"`
}

// Validate returns every violated field/message pair. The status value itself
// is parsed by the service so an unrecognized name fails as a business-rule
// error, not a validation one.
func (r UpdateTransferRequest) Validate() []FieldError {
	errs := validateTransferFields(r.CuentaOrigenID, r.CuentaDestinoID, r.Importe, r.Divisa, r.Concepto, r.ReferenciaExterna)
	if strings.TrimSpace(r.Estado) == "" {
		errs = append(errs, FieldError{Field: "estado", Message: "state is required"})
	} else if len(r.Estado) > 20 {
		errs = append(errs, FieldError{Field: "estado", Message: "state must not exceed 20 characters"})
	}
	return errs
}

// ToUpdate projects the request onto the domain input type. Only call after a
// successful Validate.
func (r UpdateTransferRequest) ToUpdate() domain.TransferUpdate {
	return domain.TransferUpdate{
		TransferDetails: domain.TransferDetails{
			SourceAccountID:      deref(r.CuentaOrigenID),
			DestinationAccountID: deref(r.CuentaDestinoID),
			Amount:               derefDecimal(r.Importe),
			Currency:             r.Divisa,
			Description:          r.Concepto,
			ExternalReference:    r.ReferenciaExterna,
		},
		Status:     r.Estado,
		ExecutedAt: r.FechaEjecucion,
	}
}

func validateTransferFields(origen, destino *int64, importe *decimal.Decimal, divisa, concepto, referencia string) []FieldError {
	var errs []FieldError
	if origen == nil {
		errs = append(errs, FieldError{Field: "cuentaOrigenId", Message: "source account id is required"})
	}
	if destino == nil {
		errs = append(errs, FieldError{Field: "cuentaDestinoId", Message: "destination account id is required"})
	}
	switch {
	case importe == nil:
		errs = append(errs, FieldError{Field: "importe", Message: "amount is required"})
	case importe.Sign() <= 0:
		errs = append(errs, FieldError{Field: "importe", Message: "amount must be positive"})
	case importe.Exponent() < -2:
		errs = append(errs, FieldError{Field: "importe", Message: "amount must have at most 2 fractional digits"})
	}
	if strings.TrimSpace(divisa) == "" {
		errs = append(errs, FieldError{Field: "divisa", Message: "currency is required"})
	} else if len(divisa) > 3 {
		errs = append(errs, FieldError{Field: "divisa", Message: "currency must not exceed 3 characters"})
	}
	if len(concepto) > 255 {
		errs = append(errs, FieldError{Field: "concepto", Message: "description must not exceed 255 characters"})
	}
	if len(referencia) > 100 {
		errs = append(errs, FieldError{Field: "referenciaExterna", Message: "external reference must not exceed 100 characters"})
	}
	return errs
}

func deref(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefDecimal(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Decimal{}
	}
	return *v
}

// TransferResponse is the wire representation of a persisted transfer.
type TransferResponse struct {
	IDTransferencia   int64           `json:"idTransferencia"`
	CuentaOrigenID    int64           `json:"cuentaOrigenId"`
	CuentaDestinoID   int64           `json:"cuentaDestinoId"`
	Importe           decimal.Decimal `json:"importe"`
	Divisa            string          `json:"divisa"`
	Concepto          string          `json:"concepto,omitempty"`
	Estado            string          `json:"estado"`
	FechaCreacion     time.Time       `json:"fechaCreacion"`
	FechaEjecucion    *time.Time      `json:"fechaEjecucion,omitempty"`
	ReferenciaExterna string          `json:"referenciaExterna,omitempty"`
}

// FromTransfer projects a persisted transfer onto its response shape.
func FromTransfer(t *domain.Transfer) TransferResponse {
	return TransferResponse{
		IDTransferencia:   t.ID,
		CuentaOrigenID:    t.SourceAccountID,
		CuentaDestinoID:   t.DestinationAccountID,
		Importe:           t.Amount,
		Divisa:            t.Currency,
		Concepto:          t.Description,
		Estado:            string(t.Status),
		FechaCreacion:     t.CreatedAt,
		FechaEjecucion:    t.ExecutedAt,
		ReferenciaExterna: t.ExternalReference,
	}
}
