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

type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepository = (*PgxPaymentRepository)(nil)

const paymentColumns = `payment_id, owner_id, tenant_id, unit_id, date, amount, currency, period, note, created_at, created_by, last_updated_at, last_updated_by`

// SavePayment inserts a new payment.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.Pool.Exec(ctx, query,
		payment.PaymentID,
		payment.OwnerID,
		payment.TenantID,
		payment.UnitID,
		payment.Date,
		payment.Amount,
		payment.Currency,
		payment.Period,
		payment.Note,
		payment.CreatedAt,
		payment.CreatedBy,
		payment.LastUpdatedAt,
		payment.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save payment %s: %w", payment.PaymentID, err)
	}
	return nil
}

// ListPayments retrieves all payments for an owner, newest first.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, ownerID string) ([]domain.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE owner_id = $1 ORDER BY date DESC, created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Payment, error) {
		var p domain.Payment
		err := row.Scan(
			&p.PaymentID,
			&p.OwnerID,
			&p.TenantID,
			&p.UnitID,
			&p.Date,
			&p.Amount,
			&p.Currency,
			&p.Period,
			&p.Note,
			&p.CreatedAt,
			&p.CreatedBy,
			&p.LastUpdatedAt,
			&p.LastUpdatedBy,
		)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}
	return payments, nil
}

// DeletePayment deletes a single payment.
func (r *PgxPaymentRepository) DeletePayment(ctx context.Context, ownerID, paymentID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM payments WHERE owner_id = $1 AND payment_id = $2;`, ownerID, paymentID)
	if err != nil {
		return fmt.Errorf("failed to delete payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
