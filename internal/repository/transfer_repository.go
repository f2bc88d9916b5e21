package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"riskdesk/internal/domain"
)

// TransferRepositoryImpl implements the TransferRepository interface
type TransferRepositoryImpl struct {
	db *pgxpool.Pool
}

// NewTransferRepository creates a new TransferRepository
func NewTransferRepository(db *pgxpool.Pool) domain.TransferRepository {
	return &TransferRepositoryImpl{db: db}
}

var transferSortColumns = map[string]string{
	"cuentaOrigenId":  "cuenta_origen_id",
	"cuentaDestinoId": "cuenta_destino_id",
	"importe":         "importe",
	"divisa":          "divisa",
	"estado":          "estado",
	"fechaCreacion":   "fecha_creacion",
}

const transferColumns = `
	id_transferencia, cuenta_origen_id, cuenta_destino_id, importe, divisa,
	COALESCE(concepto, ''), estado, fecha_creacion, fecha_ejecucion,
	COALESCE(referencia_externa, '')
`

// Save inserts a new transfer and assigns its generated id
func (r *TransferRepositoryImpl) Save(ctx context.Context, transfer *domain.Transfer) error {
	query := `
		INSERT INTO transferencias (
			cuenta_origen_id, cuenta_destino_id, importe, divisa,
			concepto, estado, fecha_creacion, fecha_ejecucion, referencia_externa
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		)
		RETURNING id_transferencia
	`

	err := queryFrom(ctx, r.db).QueryRow(ctx, query,
		transfer.SourceAccountID,
		transfer.DestinationAccountID,
		transfer.Amount,
		transfer.Currency,
		nullString(transfer.Description),
		string(transfer.Status),
		transfer.CreatedAt,
		transfer.ExecutedAt,
		nullString(transfer.ExternalReference),
	).Scan(&transfer.ID)

	if err != nil {
		return fmt.Errorf("failed to save transfer: %w", err)
	}

	return nil
}

// GetByID retrieves a transfer by id
func (r *TransferRepositoryImpl) GetByID(ctx context.Context, id int64) (*domain.Transfer, error) {
	query := `SELECT ` + transferColumns + ` FROM transferencias WHERE id_transferencia = $1`

	transfer, err := scanTransfer(queryFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &domain.NotFoundError{Resource: "transfer", ID: strconv.FormatInt(id, 10)}
		}
		return nil, fmt.Errorf("failed to get transfer by id: %w", err)
	}

	return transfer, nil
}

// GetAll retrieves one page of transfers and the total row count
func (r *TransferRepositoryImpl) GetAll(ctx context.Context, page domain.PageRequest) ([]*domain.Transfer, int64, error) {
	q := queryFrom(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM transferencias`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transfers: %w", err)
	}

	query := fmt.Sprintf(`
		SELECT %s FROM transferencias
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, transferColumns, orderClause(transferSortColumns, page, "id_transferencia"))

	rows, err := q.Query(ctx, query, page.Size, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query transfers: %w", err)
	}
	defer rows.Close()

	var transfers []*domain.Transfer
	for rows.Next() {
		transfer, err := scanTransfer(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan transfer: %w", err)
		}
		transfers = append(transfers, transfer)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating transfers: %w", err)
	}

	return transfers, total, nil
}

// Update persists the mutable fields of an existing transfer
func (r *TransferRepositoryImpl) Update(ctx context.Context, transfer *domain.Transfer) error {
	query := `
		UPDATE transferencias
		SET cuenta_origen_id = $1,
		    cuenta_destino_id = $2,
		    importe = $3,
		    divisa = $4,
		    concepto = $5,
		    estado = $6,
		    fecha_ejecucion = $7,
		    referencia_externa = $8
		WHERE id_transferencia = $9
	`

	tag, err := queryFrom(ctx, r.db).Exec(ctx, query,
		transfer.SourceAccountID,
		transfer.DestinationAccountID,
		transfer.Amount,
		transfer.Currency,
		nullString(transfer.Description),
		string(transfer.Status),
		transfer.ExecutedAt,
		nullString(transfer.ExternalReference),
		transfer.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "transfer", ID: strconv.FormatInt(transfer.ID, 10)}
	}

	return nil
}

// Delete removes a transfer by id
func (r *TransferRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tag, err := queryFrom(ctx, r.db).Exec(ctx, `DELETE FROM transferencias WHERE id_transferencia = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transfer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return &domain.NotFoundError{Resource: "transfer", ID: strconv.FormatInt(id, 10)}
	}
	return nil
}

func scanTransfer(row pgx.Row) (*domain.Transfer, error) {
	transfer := &domain.Transfer{}
	var status string
	err := row.Scan(
		&transfer.ID,
		&transfer.SourceAccountID,
		&transfer.DestinationAccountID,
		&transfer.Amount,
		&transfer.Currency,
		&transfer.Description,
		&status,
		&transfer.CreatedAt,
		&transfer.ExecutedAt,
		&transfer.ExternalReference,
	)
	if err != nil {
		return nil, err
	}
	transfer.Status = domain.TransferStatus(status)
	return transfer, nil
}
