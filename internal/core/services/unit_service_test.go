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

type UnitServiceTestSuite struct {
	suite.Suite
	unitRepo *MockUnitRepository
	service  portssvc.UnitSvc

	ownerID string
}

func (s *UnitServiceTestSuite) SetupTest() {
	s.unitRepo = new(MockUnitRepository)
	s.service = services.NewUnitService(s.unitRepo)
	s.ownerID = uuid.NewString()
}

func (s *UnitServiceTestSuite) TestCreateUnit_Success() {
	ctx := context.Background()
	req := dto.CreateUnitRequest{
		Name:         "Shop 3",
		Kind:         "shop",
		RentAmount:   decimal.NewFromInt(1200),
		RentCurrency: "JOD",
	}

	s.unitRepo.On("SaveUnit", ctx, mock.MatchedBy(func(u domain.Unit) bool {
		return u.OwnerID == s.ownerID && u.Kind == domain.UnitShop && u.UnitID != ""
	})).Return(nil).Once()

	unit, err := s.service.CreateUnit(ctx, s.ownerID, req)

	s.Require().NoError(err)
	s.Equal(domain.UnitShop, unit.Kind)
	s.Equal(domain.ScopeYearly, unit.Kind.BillingScope())
	s.unitRepo.AssertExpectations(s.T())
}

func (s *UnitServiceTestSuite) TestCreateUnit_RejectsBadKind() {
	_, err := s.service.CreateUnit(context.Background(), s.ownerID, dto.CreateUnitRequest{
		Name:         "Garage",
		Kind:         "garage",
		RentAmount:   decimal.NewFromInt(100),
		RentCurrency: "JOD",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.unitRepo.AssertNotCalled(s.T(), "SaveUnit", mock.Anything, mock.Anything)
}

func (s *UnitServiceTestSuite) TestCreateUnit_RejectsNegativeRent() {
	_, err := s.service.CreateUnit(context.Background(), s.ownerID, dto.CreateUnitRequest{
		Name:         "Apt 1",
		Kind:         "apartment",
		RentAmount:   decimal.NewFromInt(-5),
		RentCurrency: "JOD",
	})

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *UnitServiceTestSuite) TestDeleteUnit_Cascades() {
	ctx := context.Background()
	unitID := uuid.NewString()

	s.unitRepo.On("FindUnitByID", ctx, s.ownerID, unitID).Return(&domain.Unit{UnitID: unitID, OwnerID: s.ownerID}, nil).Once()
	s.unitRepo.On("DeleteUnitCascade", ctx, s.ownerID, unitID).Return(nil).Once()

	err := s.service.DeleteUnit(ctx, s.ownerID, unitID)

	s.Require().NoError(err)
	s.unitRepo.AssertExpectations(s.T())
}

func (s *UnitServiceTestSuite) TestDeleteUnit_NotFound() {
	ctx := context.Background()
	unitID := uuid.NewString()

	s.unitRepo.On("FindUnitByID", ctx, s.ownerID, unitID).Return(nil, apperrors.ErrNotFound).Once()

	err := s.service.DeleteUnit(ctx, s.ownerID, unitID)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrNotFound)
	s.unitRepo.AssertNotCalled(s.T(), "DeleteUnitCascade", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnitServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UnitServiceTestSuite))
}
