package repositories

import (
	"context"

	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// InvoiceRepository defines persistence operations for generated invoices.
// Invoices are immutable once created; there is no update operation.
type InvoiceRepository interface {
	// SaveInvoice inserts a single invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// ListInvoices retrieves all invoices for an owner, newest first.
	ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error)

	// DeleteInvoice deletes a single invoice.
	DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error
}

// PaymentRepository defines persistence operations for payments.
type PaymentRepository interface {
	// SavePayment inserts a new payment.
	SavePayment(ctx context.Context, payment domain.Payment) error

	// ListPayments retrieves all payments for an owner, newest first.
	ListPayments(ctx context.Context, ownerID string) ([]domain.Payment, error)

	// DeletePayment deletes a single payment.
	DeletePayment(ctx context.Context, ownerID, paymentID string) error
}
