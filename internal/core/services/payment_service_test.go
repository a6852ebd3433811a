package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/wsalem/rental_ledger_app/internal/apperrors"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
	portssvc "github.com/wsalem/rental_ledger_app/internal/core/ports/services"
	"github.com/wsalem/rental_ledger_app/internal/core/services"
	"github.com/wsalem/rental_ledger_app/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	paymentRepo *MockPaymentRepository
	tenantRepo  *MockTenantRepository
	service     portssvc.PaymentSvc

	ownerID string
}

func (s *PaymentServiceTestSuite) SetupTest() {
	s.paymentRepo = new(MockPaymentRepository)
	s.tenantRepo = new(MockTenantRepository)
	s.service = services.NewPaymentService(s.paymentRepo, s.tenantRepo)
	s.ownerID = uuid.NewString()
}

func (s *PaymentServiceTestSuite) TestCreatePayment_Success() {
	ctx := context.Background()
	unitID := uuid.NewString()
	tenantID := uuid.NewString()
	req := dto.CreatePaymentRequest{
		TenantID: tenantID,
		UnitID:   unitID,
		Date:     time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.NewFromInt(250),
		Currency: "ILS",
		Period:   "2025-03",
		Note:     "cash",
	}

	s.tenantRepo.On("FindTenantByID", ctx, s.ownerID, tenantID).Return(&domain.Tenant{
		TenantID: tenantID, OwnerID: s.ownerID, UnitID: unitID,
	}, nil).Once()
	s.paymentRepo.On("SavePayment", ctx, mock.MatchedBy(func(p domain.Payment) bool {
		return p.TenantID == tenantID && p.Currency == domain.CurrencyILS && p.Note == "cash"
	})).Return(nil).Once()

	payment, err := s.service.CreatePayment(ctx, s.ownerID, req)

	s.Require().NoError(err)
	s.Equal("2025-03", payment.Period)
	s.paymentRepo.AssertExpectations(s.T())
}

func (s *PaymentServiceTestSuite) TestCreatePayment_TenantUnitMismatch() {
	ctx := context.Background()
	tenantID := uuid.NewString()

	s.tenantRepo.On("FindTenantByID", ctx, s.ownerID, tenantID).Return(&domain.Tenant{
		TenantID: tenantID, OwnerID: s.ownerID, UnitID: uuid.NewString(),
	}, nil).Once()

	_, err := s.service.CreatePayment(ctx, s.ownerID, dto.CreatePaymentRequest{
		TenantID: tenantID,
		UnitID:   uuid.NewString(),
		Date:     time.Now(),
		Amount:   decimal.NewFromInt(100),
		Currency: "JOD",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.paymentRepo.AssertNotCalled(s.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_RejectsNonPositiveAmount() {
	_, err := s.service.CreatePayment(context.Background(), s.ownerID, dto.CreatePaymentRequest{
		TenantID: uuid.NewString(),
		UnitID:   uuid.NewString(),
		Date:     time.Now(),
		Amount:   decimal.Zero,
		Currency: "JOD",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *PaymentServiceTestSuite) TestCreatePayment_UnknownTenant() {
	ctx := context.Background()
	tenantID := uuid.NewString()

	s.tenantRepo.On("FindTenantByID", ctx, s.ownerID, tenantID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CreatePayment(ctx, s.ownerID, dto.CreatePaymentRequest{
		TenantID: tenantID,
		UnitID:   uuid.NewString(),
		Date:     time.Now(),
		Amount:   decimal.NewFromInt(50),
		Currency: "JOD",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
