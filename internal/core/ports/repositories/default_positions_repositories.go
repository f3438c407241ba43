package repositories

import (
	"context"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
)

// DefaultPositionsReader defines read operations for the position catalog
type DefaultPositionsReader interface {
	// FindDefaultPositionsByID retrieves a catalog entry by its ID.
	FindDefaultPositionsByID(ctx context.Context, id string) (*domain.DefaultPositionSet, error)

	// FindDefaultPositions retrieves the catalog entry for one store, weekday
	// and labor period, or ErrNotFound when none was ever defined.
	FindDefaultPositions(ctx context.Context, storeID string, weekday int, period domain.LaborPeriod) (*domain.DefaultPositionSet, error)

	// ListDefaultPositions retrieves every catalog entry for a store.
	ListDefaultPositions(ctx context.Context, storeID string) ([]domain.DefaultPositionSet, error)
}

// DefaultPositionsWriter defines write operations for the position catalog
type DefaultPositionsWriter interface {
	// UpsertDefaultPositions inserts or replaces the catalog entry keyed by
	// (store, weekday, period) and returns the stored record.
	UpsertDefaultPositions(ctx context.Context, set domain.DefaultPositionSet) (*domain.DefaultPositionSet, error)

	// DeleteDefaultPositions hard-deletes a catalog entry.
	DeleteDefaultPositions(ctx context.Context, id string) error
}

// DefaultPositionsRepositoryFacade combines the catalog repository interfaces
type DefaultPositionsRepositoryFacade interface {
	DefaultPositionsReader
	DefaultPositionsWriter
}
