package services

import (
	"context"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
)

// CatalogSvcFacade manages the per-store default-position catalog.
type CatalogSvcFacade interface {
	// GetOrCreateDefaultPositions upserts the canonical position list for one
	// store/weekday/period key.
	GetOrCreateDefaultPositions(ctx context.Context, storeID string, req dto.UpsertDefaultPositionsRequest, userID string) (*domain.DefaultPositionSet, error)

	// GetDefaultPositions retrieves one catalog entry.
	GetDefaultPositions(ctx context.Context, storeID string, weekday int, period domain.LaborPeriod) (*domain.DefaultPositionSet, error)

	// ListDefaultPositions retrieves the whole catalog for a store.
	ListDefaultPositions(ctx context.Context, storeID string) ([]domain.DefaultPositionSet, error)

	// DeleteDefaultPositions removes a catalog entry. Entries owned by another
	// store are rejected with ErrForbidden.
	DeleteDefaultPositions(ctx context.Context, storeID string, id string) error
}
