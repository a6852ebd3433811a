package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	"github.com/wsalem/rental_ledger_app/internal/dto"
)

// UserSvc defines user-account operations.
type UserSvc interface {
	// RegisterUser creates a new user account.
	RegisterUser(ctx context.Context, req dto.RegisterUserRequest) (*domain.User, error)

	// AuthenticateUser verifies credentials and returns the user.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
}

// SettingsSvc defines operations on the per-owner settings singleton.
type SettingsSvc interface {
	// GetSettings returns the owner's settings, falling back to defaults when
	// none have been saved yet.
	GetSettings(ctx context.Context, ownerID string) (*domain.Settings, error)

	// UpdateSettings saves the base currency and manual exchange rate.
	UpdateSettings(ctx context.Context, ownerID string, req dto.UpdateSettingsRequest) (*domain.Settings, error)
}

// RateSvc drives the exchange-rate refresh policy.
type RateSvc interface {
	// Refresh unconditionally fetches the JOD→ILS rate from the provider and
	// persists it for the owner. Errors are surfaced to the caller.
	Refresh(ctx context.Context, ownerID string) (decimal.Decimal, time.Time, error)

	// RefreshIfStale fetches and persists only when the owner has no recorded
	// fetch timestamp or it is older than the configured interval. The bool
	// reports whether a fetch happened.
	RefreshIfStale(ctx context.Context, ownerID string) (bool, error)

	// RefreshAll refreshes every owner's rate, returning the number of owners
	// updated and the first error encountered per owner, keyed by owner ID.
	RefreshAll(ctx context.Context) (int, map[string]error)
}

// UnitSvc defines operations on rental units.
type UnitSvc interface {
	CreateUnit(ctx context.Context, ownerID string, req dto.CreateUnitRequest) (*domain.Unit, error)
	ListUnits(ctx context.Context, ownerID string) ([]domain.Unit, error)
	// DeleteUnit removes a unit and cascades to every tenant, charge, invoice
	// and payment referencing it.
	DeleteUnit(ctx context.Context, ownerID, unitID string) error
}

// TenantSvc defines operations on tenants.
type TenantSvc interface {
	CreateTenant(ctx context.Context, ownerID string, req dto.CreateTenantRequest) (*domain.Tenant, error)
	ListTenants(ctx context.Context, ownerID string) ([]domain.Tenant, error)
	SetTenantActive(ctx context.Context, ownerID, tenantID string, active bool) error
	// DeleteTenant removes a tenant and cascades to its invoices and payments.
	DeleteTenant(ctx context.Context, ownerID, tenantID string) error
}

// UtilitySvc defines operations on utility charges.
type UtilitySvc interface {
	CreateUtilityCharge(ctx context.Context, ownerID string, req dto.CreateUtilityChargeRequest) (*domain.UtilityCharge, error)
	ListUtilityCharges(ctx context.Context, ownerID string) ([]domain.UtilityCharge, error)
	DeleteUtilityCharge(ctx context.Context, ownerID, chargeID string) error
}

// InvoiceSvc defines invoice generation and access.
type InvoiceSvc interface {
	// GenerateInvoices produces one invoice per eligible tenant for the
	// requested scope and period. Tenants already invoiced for that scope and
	// period are skipped; persistence failures for individual invoices are
	// reported without aborting the rest of the run.
	GenerateInvoices(ctx context.Context, ownerID string, req dto.GenerateInvoicesRequest) (*dto.GenerateInvoicesResponse, error)

	ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error)
	DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error
}

// PaymentSvc defines operations on payments.
type PaymentSvc interface {
	CreatePayment(ctx context.Context, ownerID string, req dto.CreatePaymentRequest) (*domain.Payment, error)
	ListPayments(ctx context.Context, ownerID string) ([]domain.Payment, error)
	DeletePayment(ctx context.Context, ownerID, paymentID string) error
}

// OverviewSvc loads the owner's full state.
type OverviewSvc interface {
	// GetOverview fetches every collection for the owner. When the store read
	// fails and a previously loaded snapshot exists in the in-process cache,
	// that snapshot is returned with fromCache set.
	GetOverview(ctx context.Context, ownerID string) (*domain.Snapshot, bool, error)
}

// BackupSvc defines backup and restore of an owner's full state.
type BackupSvc interface {
	CreateBackup(ctx context.Context, ownerID string) (*domain.Backup, error)
	ListBackups(ctx context.Context, ownerID string) ([]domain.Backup, error)
	RestoreBackup(ctx context.Context, ownerID, backupID string) error
}
