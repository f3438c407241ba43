package services_test

import (
	"context"
	"testing"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/core/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CatalogServiceTestSuite struct {
	suite.Suite
	catalogRepo *MockDefaultPositionsRepository
	service     portssvc.CatalogSvcFacade
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.catalogRepo = new(MockDefaultPositionsRepository)
	suite.service = services.NewCatalogService(suite.catalogRepo)
}

func (suite *CatalogServiceTestSuite) TestGetOrCreateDefaultPositions_NormalizesDepartments() {
	ctx := context.Background()

	suite.catalogRepo.On("UpsertDefaultPositions", ctx, mock.MatchedBy(func(set domain.DefaultPositionSet) bool {
		return set.StoreID == testStoreID &&
			set.Weekday == 2 &&
			set.Period == domain.PeriodDinner &&
			len(set.Positions) == 2 &&
			set.Positions[0].Department == domain.DeptKitchen &&
			set.Positions[1].Department == domain.DeptDriveThru
	})).Return(&domain.DefaultPositionSet{ID: "dp-1"}, nil).Once()

	stored, err := suite.service.GetOrCreateDefaultPositions(ctx, testStoreID, dto.UpsertDefaultPositionsRequest{
		Weekday: 2,
		Period:  "Dinner",
		Positions: []dto.PositionSeedPayload{
			{Name: "Grill", Department: "BOH"},
			{Name: "Window", Department: "drive-thru"},
		},
	}, testUserID)

	suite.Require().NoError(err)
	suite.Equal("dp-1", stored.ID)
	suite.catalogRepo.AssertExpectations(suite.T())
}

func (suite *CatalogServiceTestSuite) TestGetOrCreateDefaultPositions_RejectsUnknownPeriod() {
	ctx := context.Background()

	_, err := suite.service.GetOrCreateDefaultPositions(ctx, testStoreID, dto.UpsertDefaultPositionsRequest{
		Weekday: 0,
		Period:  "Brunch",
	}, testUserID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.catalogRepo.AssertNotCalled(suite.T(), "UpsertDefaultPositions", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestDeleteDefaultPositions_OtherStoreForbidden() {
	ctx := context.Background()
	suite.catalogRepo.On("FindDefaultPositionsByID", ctx, "dp-1").
		Return(&domain.DefaultPositionSet{ID: "dp-1", StoreID: "store-2"}, nil).Once()

	err := suite.service.DeleteDefaultPositions(ctx, testStoreID, "dp-1")

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.catalogRepo.AssertNotCalled(suite.T(), "DeleteDefaultPositions", mock.Anything, mock.Anything)
}

func (suite *CatalogServiceTestSuite) TestGetDefaultPositions_ValidatesInputs() {
	ctx := context.Background()

	_, err := suite.service.GetDefaultPositions(ctx, testStoreID, 9, domain.PeriodLunch)
	suite.Require().ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.GetDefaultPositions(ctx, testStoreID, 1, domain.LaborPeriod("Brunch"))
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
