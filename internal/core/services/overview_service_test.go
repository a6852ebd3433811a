package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	"github.com/wsalem/rental_ledger_app/internal/core/services"
)

type OverviewServiceTestSuite struct {
	suite.Suite
	settingsRepo *MockSettingsRepository
	unitRepo     *MockUnitRepository
	tenantRepo   *MockTenantRepository
	utilityRepo  *MockUtilityRepository
	invoiceRepo  *MockInvoiceRepository
	paymentRepo  *MockPaymentRepository
	service      *services.OverviewService

	ownerID string
}

func (s *OverviewServiceTestSuite) SetupTest() {
	s.settingsRepo = new(MockSettingsRepository)
	s.unitRepo = new(MockUnitRepository)
	s.tenantRepo = new(MockTenantRepository)
	s.utilityRepo = new(MockUtilityRepository)
	s.invoiceRepo = new(MockInvoiceRepository)
	s.paymentRepo = new(MockPaymentRepository)
	// No rate service: the passive refresh path is exercised separately.
	s.service = services.NewOverviewService(
		services.NewSettingsService(s.settingsRepo),
		nil,
		s.unitRepo, s.tenantRepo, s.utilityRepo, s.invoiceRepo, s.paymentRepo,
	)
	s.ownerID = uuid.NewString()
}

func (s *OverviewServiceTestSuite) expectFullLoad(units []domain.Unit) {
	ctx := mock.Anything
	s.settingsRepo.On("FindSettings", ctx, s.ownerID).Return(&domain.Settings{
		OwnerID:      s.ownerID,
		BaseCurrency: domain.CurrencyJOD,
		JODToILSRate: decimal.NewFromInt(5),
	}, nil).Once()
	s.unitRepo.On("ListUnits", ctx, s.ownerID).Return(units, nil).Once()
	s.tenantRepo.On("ListTenants", ctx, s.ownerID).Return([]domain.Tenant{}, nil).Once()
	s.utilityRepo.On("ListUtilityCharges", ctx, s.ownerID).Return([]domain.UtilityCharge{}, nil).Once()
	s.invoiceRepo.On("ListInvoices", ctx, s.ownerID).Return([]domain.Invoice{}, nil).Once()
	s.paymentRepo.On("ListPayments", ctx, s.ownerID).Return([]domain.Payment{}, nil).Once()
}

func (s *OverviewServiceTestSuite) TestGetOverview_LoadsEverything() {
	units := []domain.Unit{{UnitID: uuid.NewString(), OwnerID: s.ownerID, Name: "Apt 1", Kind: domain.UnitApartment}}
	s.expectFullLoad(units)

	snapshot, fromCache, err := s.service.GetOverview(context.Background(), s.ownerID)

	s.Require().NoError(err)
	s.False(fromCache)
	s.Equal(units, snapshot.Units)
	s.Equal(s.ownerID, snapshot.Settings.OwnerID)
}

func (s *OverviewServiceTestSuite) TestGetOverview_ServesCacheAfterStoreFailure() {
	ctx := context.Background()
	units := []domain.Unit{{UnitID: uuid.NewString(), OwnerID: s.ownerID, Name: "Apt 1"}}

	// First load succeeds and warms the cache.
	s.expectFullLoad(units)
	_, fromCache, err := s.service.GetOverview(ctx, s.ownerID)
	s.Require().NoError(err)
	s.False(fromCache)

	// Second load hits a dead store.
	s.settingsRepo.On("FindSettings", mock.Anything, s.ownerID).Return(nil, assert.AnError).Once()

	snapshot, fromCache, err := s.service.GetOverview(ctx, s.ownerID)

	s.Require().NoError(err)
	s.True(fromCache)
	s.Equal(units, snapshot.Units)
}

func (s *OverviewServiceTestSuite) TestGetOverview_FailsWithoutCache() {
	s.settingsRepo.On("FindSettings", mock.Anything, s.ownerID).Return(nil, assert.AnError).Once()

	snapshot, fromCache, err := s.service.GetOverview(context.Background(), s.ownerID)

	s.Require().Error(err)
	s.Nil(snapshot)
	s.False(fromCache)
}

func (s *OverviewServiceTestSuite) TestGetOverview_CacheIsPerOwner() {
	ctx := context.Background()
	s.expectFullLoad([]domain.Unit{})
	_, _, err := s.service.GetOverview(ctx, s.ownerID)
	s.Require().NoError(err)

	otherOwner := uuid.NewString()
	s.settingsRepo.On("FindSettings", mock.Anything, otherOwner).Return(nil, assert.AnError).Once()

	_, _, err = s.service.GetOverview(ctx, otherOwner)
	s.Require().Error(err, "another owner's cache must not be served")
}

func TestOverviewServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OverviewServiceTestSuite))
}
