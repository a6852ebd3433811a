package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portsrepo "github.com/wsalem/rental_ledger_app/internal/core/ports/repositories"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepository {
	return &PgxInvoiceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.InvoiceRepository = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, owner_id, unit_id, tenant_id, period, scope, rent_base, utilities_base, total_base, created_at, created_by, last_updated_at, last_updated_by`

// SaveInvoice inserts a single invoice. There is no update path; invoices are
// frozen at creation.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	query := `
		INSERT INTO invoices (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		invoice.InvoiceID,
		invoice.OwnerID,
		invoice.UnitID,
		invoice.TenantID,
		invoice.Period,
		invoice.Scope,
		invoice.RentBase,
		invoice.UtilitiesBase,
		invoice.TotalBase,
		invoice.CreatedAt,
		invoice.CreatedBy,
		invoice.LastUpdatedAt,
		invoice.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save invoice %s: %w", invoice.InvoiceID, err)
	}
	return nil
}

// ListInvoices retrieves all invoices for an owner, newest first.
func (r *PgxInvoiceRepository) ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM invoices WHERE owner_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query invoices: %w", err)
	}
	defer rows.Close()

	invoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Invoice, error) {
		var inv domain.Invoice
		err := row.Scan(
			&inv.InvoiceID,
			&inv.OwnerID,
			&inv.UnitID,
			&inv.TenantID,
			&inv.Period,
			&inv.Scope,
			&inv.RentBase,
			&inv.UtilitiesBase,
			&inv.TotalBase,
			&inv.CreatedAt,
			&inv.CreatedBy,
			&inv.LastUpdatedAt,
			&inv.LastUpdatedBy,
		)
		return inv, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoices: %w", err)
	}
	return invoices, nil
}

// DeleteInvoice deletes a single invoice.
func (r *PgxInvoiceRepository) DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM invoices WHERE owner_id = $1 AND invoice_id = $2;`, ownerID, invoiceID)
	if err != nil {
		return fmt.Errorf("failed to delete invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
