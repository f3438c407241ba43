package services

import (
	"context"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/google/uuid"
)

type catalogService struct {
	BaseService
	catalogRepo portsrepo.DefaultPositionsRepositoryFacade
}

// NewCatalogService creates the default-position catalog service.
func NewCatalogService(catalogRepo portsrepo.DefaultPositionsRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{catalogRepo: catalogRepo}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

func (s *catalogService) GetOrCreateDefaultPositions(ctx context.Context, storeID string, req dto.UpsertDefaultPositionsRequest, userID string) (*domain.DefaultPositionSet, error) {
	period := domain.LaborPeriod(req.Period)
	if !period.Valid() {
		return nil, apperrors.NewValidationFailedError("unknown labor period " + req.Period)
	}

	seeds := make([]domain.PositionSeed, 0, len(req.Positions))
	for _, p := range req.Positions {
		dept, err := domain.ParseDepartment(p.Department)
		if err != nil {
			return nil, apperrors.NewValidationFailedError(err.Error())
		}
		seeds = append(seeds, domain.PositionSeed{Name: p.Name, Department: dept})
	}

	now := time.Now().UTC()
	set := domain.DefaultPositionSet{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Weekday:   req.Weekday,
		Period:    period,
		Positions: seeds,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	stored, err := s.catalogRepo.UpsertDefaultPositions(ctx, set)
	if err != nil {
		s.LogError(ctx, err, "failed to upsert catalog entry", "store_id", storeID, "weekday", req.Weekday, "period", req.Period)
		return nil, err
	}
	s.LogInfo(ctx, "catalog entry saved", "catalog_id", stored.ID, "weekday", stored.Weekday, "period", string(stored.Period))
	return stored, nil
}

func (s *catalogService) GetDefaultPositions(ctx context.Context, storeID string, weekday int, period domain.LaborPeriod) (*domain.DefaultPositionSet, error) {
	if weekday < 0 || weekday >= domain.DaysPerWeek {
		return nil, apperrors.NewValidationFailedError("weekday out of range")
	}
	if !period.Valid() {
		return nil, apperrors.NewValidationFailedError("unknown labor period " + string(period))
	}
	return s.catalogRepo.FindDefaultPositions(ctx, storeID, weekday, period)
}

func (s *catalogService) ListDefaultPositions(ctx context.Context, storeID string) ([]domain.DefaultPositionSet, error) {
	return s.catalogRepo.ListDefaultPositions(ctx, storeID)
}

func (s *catalogService) DeleteDefaultPositions(ctx context.Context, storeID string, id string) error {
	set, err := s.catalogRepo.FindDefaultPositionsByID(ctx, id)
	if err != nil {
		return err
	}
	if set.StoreID != storeID {
		return apperrors.ErrForbidden
	}
	return s.catalogRepo.DeleteDefaultPositions(ctx, id)
}
