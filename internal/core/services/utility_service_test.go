package services_test

import (
	"context"
	"testing"

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

type UtilityServiceTestSuite struct {
	suite.Suite
	utilityRepo *MockUtilityRepository
	unitRepo    *MockUnitRepository
	service     portssvc.UtilitySvc

	ownerID string
	unitID  string
}

func (s *UtilityServiceTestSuite) SetupTest() {
	s.utilityRepo = new(MockUtilityRepository)
	s.unitRepo = new(MockUnitRepository)
	s.service = services.NewUtilityService(s.utilityRepo, s.unitRepo)
	s.ownerID = uuid.NewString()
	s.unitID = uuid.NewString()
}

func (s *UtilityServiceTestSuite) validRequest() dto.CreateUtilityChargeRequest {
	return dto.CreateUtilityChargeRequest{
		UnitID:   s.unitID,
		Period:   "2025-07",
		Type:     "water",
		Amount:   decimal.NewFromInt(40),
		Currency: "ILS",
	}
}

func (s *UtilityServiceTestSuite) TestCreateUtilityCharge_Success() {
	req := s.validRequest()

	s.unitRepo.On("FindUnitByID", mock.Anything, s.ownerID, s.unitID).
		Return(&domain.Unit{UnitID: s.unitID, OwnerID: s.ownerID}, nil).Once()
	s.utilityRepo.On("SaveUtilityCharge", mock.Anything, mock.MatchedBy(func(c domain.UtilityCharge) bool {
		return c.OwnerID == s.ownerID &&
			c.UnitID == s.unitID &&
			c.Type == domain.UtilityWater &&
			c.Period == "2025-07" &&
			c.Currency == domain.CurrencyILS
	})).Return(nil).Once()

	charge, err := s.service.CreateUtilityCharge(context.Background(), s.ownerID, req)

	s.NoError(err)
	s.NotNil(charge)
	s.NotEmpty(charge.ChargeID)
	s.True(charge.Amount.Equal(decimal.NewFromInt(40)))
	s.utilityRepo.AssertExpectations(s.T())
}

func (s *UtilityServiceTestSuite) TestCreateUtilityCharge_AcceptsYearlyPeriod() {
	req := s.validRequest()
	req.Period = "2025"

	s.unitRepo.On("FindUnitByID", mock.Anything, s.ownerID, s.unitID).
		Return(&domain.Unit{UnitID: s.unitID, OwnerID: s.ownerID}, nil).Once()
	s.utilityRepo.On("SaveUtilityCharge", mock.Anything, mock.Anything).Return(nil).Once()

	charge, err := s.service.CreateUtilityCharge(context.Background(), s.ownerID, req)

	s.NoError(err)
	s.Equal("2025", charge.Period)
}

func (s *UtilityServiceTestSuite) TestCreateUtilityCharge_RejectsBadPeriod() {
	req := s.validRequest()
	req.Period = "July 2025"

	_, err := s.service.CreateUtilityCharge(context.Background(), s.ownerID, req)

	s.ErrorIs(err, apperrors.ErrValidation)
	s.utilityRepo.AssertNotCalled(s.T(), "SaveUtilityCharge", mock.Anything, mock.Anything)
}

func (s *UtilityServiceTestSuite) TestCreateUtilityCharge_RejectsUnknownType() {
	req := s.validRequest()
	req.Type = "gas"

	_, err := s.service.CreateUtilityCharge(context.Background(), s.ownerID, req)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UtilityServiceTestSuite) TestCreateUtilityCharge_RejectsNegativeAmount() {
	req := s.validRequest()
	req.Amount = decimal.NewFromInt(-5)

	_, err := s.service.CreateUtilityCharge(context.Background(), s.ownerID, req)

	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UtilityServiceTestSuite) TestCreateUtilityCharge_UnknownUnit() {
	req := s.validRequest()

	s.unitRepo.On("FindUnitByID", mock.Anything, s.ownerID, s.unitID).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.CreateUtilityCharge(context.Background(), s.ownerID, req)

	s.ErrorIs(err, apperrors.ErrNotFound)
	s.utilityRepo.AssertNotCalled(s.T(), "SaveUtilityCharge", mock.Anything, mock.Anything)
}

func (s *UtilityServiceTestSuite) TestListUtilityCharges_EmptySliceWhenNone() {
	s.utilityRepo.On("ListUtilityCharges", mock.Anything, s.ownerID).Return(nil, nil).Once()

	charges, err := s.service.ListUtilityCharges(context.Background(), s.ownerID)

	s.NoError(err)
	s.NotNil(charges)
	s.Empty(charges)
}

func (s *UtilityServiceTestSuite) TestDeleteUtilityCharge_NotFound() {
	chargeID := uuid.NewString()
	s.utilityRepo.On("DeleteUtilityCharge", mock.Anything, s.ownerID, chargeID).
		Return(apperrors.ErrNotFound).Once()

	err := s.service.DeleteUtilityCharge(context.Background(), s.ownerID, chargeID)

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestUtilityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UtilityServiceTestSuite))
}
