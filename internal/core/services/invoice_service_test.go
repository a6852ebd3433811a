package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/core/services"
	"github.com/wsalem/rental_ledger_app/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	invoiceRepo  *MockInvoiceRepository
	unitRepo     *MockUnitRepository
	tenantRepo   *MockTenantRepository
	utilityRepo  *MockUtilityRepository
	settingsRepo *MockSettingsRepository
	service      portssvc.InvoiceSvc

	ownerID string
}

func (s *InvoiceServiceTestSuite) SetupTest() {
	s.invoiceRepo = new(MockInvoiceRepository)
	s.unitRepo = new(MockUnitRepository)
	s.tenantRepo = new(MockTenantRepository)
	s.utilityRepo = new(MockUtilityRepository)
	s.settingsRepo = new(MockSettingsRepository)
	s.service = services.NewInvoiceService(s.invoiceRepo, s.unitRepo, s.tenantRepo, s.utilityRepo, s.settingsRepo)
	s.ownerID = uuid.NewString()
}

func (s *InvoiceServiceTestSuite) jodSettings() *domain.Settings {
	return &domain.Settings{
		OwnerID:      s.ownerID,
		BaseCurrency: domain.CurrencyJOD,
		JODToILSRate: decimal.NewFromInt(5),
	}
}

func (s *InvoiceServiceTestSuite) apartment(rent int64) domain.Unit {
	return domain.Unit{
		UnitID:       uuid.NewString(),
		OwnerID:      s.ownerID,
		Name:         "Apt",
		Kind:         domain.UnitApartment,
		RentAmount:   decimal.NewFromInt(rent),
		RentCurrency: domain.CurrencyJOD,
	}
}

func (s *InvoiceServiceTestSuite) activeTenant(unitID string) domain.Tenant {
	return domain.Tenant{
		TenantID: uuid.NewString(),
		OwnerID:  s.ownerID,
		Name:     "Tenant",
		UnitID:   unitID,
		Active:   true,
	}
}

func (s *InvoiceServiceTestSuite) expectLoads(units []domain.Unit, tenants []domain.Tenant, charges []domain.UtilityCharge, existing []domain.Invoice) {
	ctx := mock.Anything
	s.settingsRepo.On("FindSettings", ctx, s.ownerID).Return(s.jodSettings(), nil).Once()
	s.unitRepo.On("ListUnits", ctx, s.ownerID).Return(units, nil).Once()
	s.tenantRepo.On("ListTenants", ctx, s.ownerID).Return(tenants, nil).Once()
	s.utilityRepo.On("ListUtilityCharges", ctx, s.ownerID).Return(charges, nil).Once()
	s.invoiceRepo.On("ListInvoices", ctx, s.ownerID).Return(existing, nil).Once()
}

func (s *InvoiceServiceTestSuite) TestGenerate_MonthlySumsRentAndUtilities() {
	unit := s.apartment(200)
	tenant := s.activeTenant(unit.UnitID)
	charges := []domain.UtilityCharge{
		{ChargeID: uuid.NewString(), UnitID: unit.UnitID, Period: "2025-03", Type: domain.UtilityWater, Amount: decimal.NewFromInt(50), Currency: domain.CurrencyJOD},
		// Different month, must not be included.
		{ChargeID: uuid.NewString(), UnitID: unit.UnitID, Period: "2025-04", Type: domain.UtilityWater, Amount: decimal.NewFromInt(99), Currency: domain.CurrencyJOD},
	}

	s.expectLoads([]domain.Unit{unit}, []domain.Tenant{tenant}, charges, nil)

	var saved domain.Invoice
	s.invoiceRepo.On("SaveInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		saved = inv
		return inv.TenantID == tenant.TenantID && inv.Period == "2025-03"
	})).Return(nil).Once()

	resp, err := s.service.GenerateInvoices(context.Background(), s.ownerID, dto.GenerateInvoicesRequest{
		Scope:  "monthly",
		Period: "2025-03",
	})

	s.Require().NoError(err)
	s.Require().Len(resp.Invoices, 1)
	s.True(decimal.NewFromInt(200).Equal(saved.RentBase))
	s.True(decimal.NewFromInt(50).Equal(saved.UtilitiesBase))
	s.True(decimal.NewFromInt(250).Equal(saved.TotalBase))
	s.Empty(resp.Skipped)
	s.Empty(resp.Failed)
	s.invoiceRepo.AssertExpectations(s.T())
}

func (s *InvoiceServiceTestSuite) TestGenerate_ConvertsChargeCurrency() {
	unit := s.apartment(200)
	tenant := s.activeTenant(unit.UnitID)
	// 100 ILS at rate 5 becomes 20 JOD.
	charges := []domain.UtilityCharge{
		{ChargeID: uuid.NewString(), UnitID: unit.UnitID, Period: "2025-03", Type: domain.UtilityElectricity, Amount: decimal.NewFromInt(100), Currency: domain.CurrencyILS},
	}

	s.expectLoads([]domain.Unit{unit}, []domain.Tenant{tenant}, charges, nil)

	var saved domain.Invoice
	s.invoiceRepo.On("SaveInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Invoice)
	}).Return(nil).Once()

	_, err := s.service.GenerateInvoices(context.Background(), s.ownerID, dto.GenerateInvoicesRequest{
		Scope:  "monthly",
		Period: "2025-03",
	})

	s.Require().NoError(err)
	s.True(decimal.NewFromInt(20).Equal(saved.UtilitiesBase), "got %s", saved.UtilitiesBase)
	s.True(decimal.NewFromInt(220).Equal(saved.TotalBase), "got %s", saved.TotalBase)
}

func (s *InvoiceServiceTestSuite) TestGenerate_YearlyIncludesWholeYearOnly() {
	shop := domain.Unit{
		UnitID:       uuid.NewString(),
		OwnerID:      s.ownerID,
		Name:         "Shop",
		Kind:         domain.UnitShop,
		RentAmount:   decimal.NewFromInt(1000),
		RentCurrency: domain.CurrencyJOD,
	}
	tenant := s.activeTenant(shop.UnitID)
	charges := []domain.UtilityCharge{
		{ChargeID: uuid.NewString(), UnitID: shop.UnitID, Period: "2025-02", Amount: decimal.NewFromInt(10), Currency: domain.CurrencyJOD},
		{ChargeID: uuid.NewString(), UnitID: shop.UnitID, Period: "2025", Amount: decimal.NewFromInt(30), Currency: domain.CurrencyJOD},
		// Previous year, excluded.
		{ChargeID: uuid.NewString(), UnitID: shop.UnitID, Period: "2024-12", Amount: decimal.NewFromInt(500), Currency: domain.CurrencyJOD},
	}

	s.expectLoads([]domain.Unit{shop}, []domain.Tenant{tenant}, charges, nil)

	var saved domain.Invoice
	s.invoiceRepo.On("SaveInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Invoice)
	}).Return(nil).Once()

	resp, err := s.service.GenerateInvoices(context.Background(), s.ownerID, dto.GenerateInvoicesRequest{
		Scope:  "yearly",
		Period: "2025",
	})

	s.Require().NoError(err)
	s.Require().Len(resp.Invoices, 1)
	s.Equal("2025", saved.Period)
	s.True(decimal.NewFromInt(40).Equal(saved.UtilitiesBase), "got %s", saved.UtilitiesBase)
	s.True(decimal.NewFromInt(1040).Equal(saved.TotalBase), "got %s", saved.TotalBase)
}

func (s *InvoiceServiceTestSuite) TestGenerate_SkipsAlreadyInvoicedTenant() {
	unit := s.apartment(200)
	tenant := s.activeTenant(unit.UnitID)
	existing := []domain.Invoice{
		{InvoiceID: uuid.NewString(), TenantID: tenant.TenantID, Scope: domain.ScopeMonthly, Period: "2025-03"},
	}

	s.expectLoads([]domain.Unit{unit}, []domain.Tenant{tenant}, nil, existing)

	resp, err := s.service.GenerateInvoices(context.Background(), s.ownerID, dto.GenerateInvoicesRequest{
		Scope:  "monthly",
		Period: "2025-03",
	})

	s.Require().NoError(err)
	s.Empty(resp.Invoices)
	s.Equal([]string{tenant.TenantID}, resp.Skipped)
	s.invoiceRepo.AssertNotCalled(s.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (s *InvoiceServiceTestSuite) TestGenerate_SkipsInactiveAndWrongScope() {
	apt := s.apartment(200)
	shop := domain.Unit{UnitID: uuid.NewString(), OwnerID: s.ownerID, Kind: domain.UnitShop, RentAmount: decimal.NewFromInt(900), RentCurrency: domain.CurrencyJOD}

	active := s.activeTenant(apt.UnitID)
	inactive := s.activeTenant(apt.UnitID)
	inactive.Active = false
	shopTenant := s.activeTenant(shop.UnitID)

	s.expectLoads([]domain.Unit{apt, shop}, []domain.Tenant{active, inactive, shopTenant}, nil, nil)

	s.invoiceRepo.On("SaveInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.TenantID == active.TenantID
	})).Return(nil).Once()

	resp, err := s.service.GenerateInvoices(context.Background(), s.ownerID, dto.GenerateInvoicesRequest{
		Scope:  "monthly",
		Period: "2025-03",
	})

	s.Require().NoError(err)
	s.Len(resp.Invoices, 1)
	s.invoiceRepo.AssertExpectations(s.T())
}

func (s *InvoiceServiceTestSuite) TestGenerate_SingleTenantFilter() {
	unit := s.apartment(200)
	wanted := s.activeTenant(unit.UnitID)
	other := s.activeTenant(unit.UnitID)

	s.expectLoads([]domain.Unit{unit}, []domain.Tenant{wanted, other}, nil, nil)

	s.invoiceRepo.On("SaveInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.TenantID == wanted.TenantID
	})).Return(nil).Once()

	resp, err := s.service.GenerateInvoices(context.Background(), s.ownerID, dto.GenerateInvoicesRequest{
		Scope:    "monthly",
		Period:   "2025-03",
		TenantID: wanted.TenantID,
	})

	s.Require().NoError(err)
	s.Len(resp.Invoices, 1)
	s.Equal(wanted.TenantID, resp.Invoices[0].TenantID)
}

func (s *InvoiceServiceTestSuite) TestGenerate_PersistFailureDoesNotAbortRun() {
	unit := s.apartment(200)
	first := s.activeTenant(unit.UnitID)
	second := s.activeTenant(unit.UnitID)

	s.expectLoads([]domain.Unit{unit}, []domain.Tenant{first, second}, nil, nil)

	s.invoiceRepo.On("SaveInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.TenantID == first.TenantID
	})).Return(assert.AnError).Once()
	s.invoiceRepo.On("SaveInvoice", mock.Anything, mock.MatchedBy(func(inv domain.Invoice) bool {
		return inv.TenantID == second.TenantID
	})).Return(nil).Once()

	resp, err := s.service.GenerateInvoices(context.Background(), s.ownerID, dto.GenerateInvoicesRequest{
		Scope:  "monthly",
		Period: "2025-03",
	})

	s.Require().NoError(err)
	s.Len(resp.Invoices, 1)
	s.Equal([]string{first.TenantID}, resp.Failed)
	s.invoiceRepo.AssertExpectations(s.T())
}

func (s *InvoiceServiceTestSuite) TestGenerate_DefaultSettingsWhenNoneSaved() {
	unit := domain.Unit{
		UnitID:       uuid.NewString(),
		OwnerID:      s.ownerID,
		Kind:         domain.UnitApartment,
		RentAmount:   decimal.NewFromInt(500),
		RentCurrency: domain.CurrencyILS,
	}
	tenant := s.activeTenant(unit.UnitID)

	ctx := mock.Anything
	s.settingsRepo.On("FindSettings", ctx, s.ownerID).Return(nil, apperrors.ErrNotFound).Once()
	s.unitRepo.On("ListUnits", ctx, s.ownerID).Return([]domain.Unit{unit}, nil).Once()
	s.tenantRepo.On("ListTenants", ctx, s.ownerID).Return([]domain.Tenant{tenant}, nil).Once()
	s.utilityRepo.On("ListUtilityCharges", ctx, s.ownerID).Return([]domain.UtilityCharge{}, nil).Once()
	s.invoiceRepo.On("ListInvoices", ctx, s.ownerID).Return([]domain.Invoice{}, nil).Once()

	var saved domain.Invoice
	s.invoiceRepo.On("SaveInvoice", mock.Anything, mock.AnythingOfType("domain.Invoice")).Run(func(args mock.Arguments) {
		saved = args.Get(1).(domain.Invoice)
	}).Return(nil).Once()

	_, err := s.service.GenerateInvoices(context.Background(), s.ownerID, dto.GenerateInvoicesRequest{
		Scope:  "monthly",
		Period: "2025-03",
	})

	// Default base JOD with rate 5: 500 ILS rent becomes 100 JOD.
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(100).Equal(saved.RentBase), "got %s", saved.RentBase)
}

func (s *InvoiceServiceTestSuite) TestGenerate_InvalidPeriodRejected() {
	_, err := s.service.GenerateInvoices(context.Background(), s.ownerID, dto.GenerateInvoicesRequest{
		Scope:  "monthly",
		Period: "2025",
	})
	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
