package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// Shared repository mocks for the service tests in this package.

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) FindSettings(ctx context.Context, ownerID string) (*domain.Settings, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Settings), args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

func (m *MockSettingsRepository) UpdateRate(ctx context.Context, ownerID string, rate decimal.Decimal, fetchedAt time.Time) error {
	args := m.Called(ctx, ownerID, rate, fetchedAt)
	return args.Error(0)
}

func (m *MockSettingsRepository) ListOwnerIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- Mock UnitRepository ---
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) SaveUnit(ctx context.Context, unit domain.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) FindUnitByID(ctx context.Context, ownerID, unitID string) (*domain.Unit, error) {
	args := m.Called(ctx, ownerID, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Unit), args.Error(1)
}

func (m *MockUnitRepository) ListUnits(ctx context.Context, ownerID string) ([]domain.Unit, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Unit), args.Error(1)
}

func (m *MockUnitRepository) DeleteUnitCascade(ctx context.Context, ownerID, unitID string) error {
	args := m.Called(ctx, ownerID, unitID)
	return args.Error(0)
}

// --- Mock TenantRepository ---
type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) SaveTenant(ctx context.Context, tenant domain.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) FindTenantByID(ctx context.Context, ownerID, tenantID string) (*domain.Tenant, error) {
	args := m.Called(ctx, ownerID, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) ListTenants(ctx context.Context, ownerID string) ([]domain.Tenant, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SetTenantActive(ctx context.Context, ownerID, tenantID string, active bool, updatedBy string) error {
	args := m.Called(ctx, ownerID, tenantID, active, updatedBy)
	return args.Error(0)
}

func (m *MockTenantRepository) DeleteTenantCascade(ctx context.Context, ownerID, tenantID string) error {
	args := m.Called(ctx, ownerID, tenantID)
	return args.Error(0)
}

// --- Mock UtilityRepository ---
type MockUtilityRepository struct {
	mock.Mock
}

func (m *MockUtilityRepository) SaveUtilityCharge(ctx context.Context, charge domain.UtilityCharge) error {
	args := m.Called(ctx, charge)
	return args.Error(0)
}

func (m *MockUtilityRepository) ListUtilityCharges(ctx context.Context, ownerID string) ([]domain.UtilityCharge, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.UtilityCharge), args.Error(1)
}

func (m *MockUtilityRepository) DeleteUtilityCharge(ctx context.Context, ownerID, chargeID string) error {
	args := m.Called(ctx, ownerID, chargeID)
	return args.Error(0)
}

// --- Mock InvoiceRepository ---
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ListInvoices(ctx context.Context, ownerID string) ([]domain.Invoice, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) DeleteInvoice(ctx context.Context, ownerID, invoiceID string) error {
	args := m.Called(ctx, ownerID, invoiceID)
	return args.Error(0)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, ownerID string) ([]domain.Payment, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) DeletePayment(ctx context.Context, ownerID, paymentID string) error {
	args := m.Called(ctx, ownerID, paymentID)
	return args.Error(0)
}

// --- Mock RateFetcher ---
type MockRateFetcher struct {
	mock.Mock
}

func (m *MockRateFetcher) LatestRate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	args := m.Called(ctx, base, quote)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
