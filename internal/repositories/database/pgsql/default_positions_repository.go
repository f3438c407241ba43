package pgsql

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	"github.com/ShiftWise/shiftwise_app/pkg/database"
	"github.com/jackc/pgx/v5"
)

type PgxDefaultPositionsRepository struct {
	BaseRepository
}

// newPgxDefaultPositionsRepository creates a new repository for the position catalog.
func newPgxDefaultPositionsRepository(db database.Queryer) portsrepo.DefaultPositionsRepositoryFacade {
	return &PgxDefaultPositionsRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.DefaultPositionsRepositoryFacade = (*PgxDefaultPositionsRepository)(nil)

var FULL_DEFAULT_POSITIONS_SELECT_QUERY = `
SELECT
	d.id, d.store_id, d.weekday, d.period, d.positions,
	d.created_at, d.created_by, d.last_updated_at, d.last_updated_by
FROM default_positions d
`

func scanDefaultPositionSet(row pgx.Row) (*domain.DefaultPositionSet, error) {
	var set domain.DefaultPositionSet
	var positionsJSON []byte
	err := row.Scan(
		&set.ID,
		&set.StoreID,
		&set.Weekday,
		&set.Period,
		&positionsJSON,
		&set.CreatedAt,
		&set.CreatedBy,
		&set.LastUpdatedAt,
		&set.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(positionsJSON, &set.Positions); err != nil {
		return nil, apperrors.NewAppError(500, "failed to decode positions for catalog entry "+set.ID, err)
	}
	return &set, nil
}

func (r *PgxDefaultPositionsRepository) FindDefaultPositionsByID(ctx context.Context, id string) (*domain.DefaultPositionSet, error) {
	query := FULL_DEFAULT_POSITIONS_SELECT_QUERY + `WHERE d.id = $1;`
	set, err := scanDefaultPositionSet(r.DB.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to find catalog entry "+id, err)
	}
	return set, nil
}

func (r *PgxDefaultPositionsRepository) FindDefaultPositions(ctx context.Context, storeID string, weekday int, period domain.LaborPeriod) (*domain.DefaultPositionSet, error) {
	query := FULL_DEFAULT_POSITIONS_SELECT_QUERY + `WHERE d.store_id = $1 AND d.weekday = $2 AND d.period = $3;`
	set, err := scanDefaultPositionSet(r.DB.QueryRow(ctx, query, storeID, weekday, period))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.NewAppError(500, "failed to find catalog entry for store "+storeID, err)
	}
	return set, nil
}

func (r *PgxDefaultPositionsRepository) ListDefaultPositions(ctx context.Context, storeID string) ([]domain.DefaultPositionSet, error) {
	query := FULL_DEFAULT_POSITIONS_SELECT_QUERY + `WHERE d.store_id = $1 ORDER BY d.weekday, d.period;`
	rows, err := r.DB.Query(ctx, query, storeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query catalog entries for store "+storeID, err)
	}
	defer rows.Close()

	sets := []domain.DefaultPositionSet{}
	for rows.Next() {
		set, err := scanDefaultPositionSet(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan catalog entry row", err)
		}
		sets = append(sets, *set)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating catalog entry rows", err)
	}
	return sets, nil
}

func (r *PgxDefaultPositionsRepository) UpsertDefaultPositions(ctx context.Context, set domain.DefaultPositionSet) (*domain.DefaultPositionSet, error) {
	positionsJSON, err := json.Marshal(set.Positions)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to encode positions for catalog entry", err)
	}

	query := `
		INSERT INTO default_positions (
			id, store_id, weekday, period, positions,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (store_id, weekday, period) DO UPDATE SET
			positions = EXCLUDED.positions,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by
		RETURNING id, created_at, created_by;
	`
	err = r.DB.QueryRow(ctx, query,
		set.ID,
		set.StoreID,
		set.Weekday,
		set.Period,
		positionsJSON,
		set.CreatedAt,
		set.CreatedBy,
		set.LastUpdatedAt,
		set.LastUpdatedBy,
	).Scan(&set.ID, &set.CreatedAt, &set.CreatedBy)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to upsert catalog entry for store "+set.StoreID, err)
	}
	return &set, nil
}

func (r *PgxDefaultPositionsRepository) DeleteDefaultPositions(ctx context.Context, id string) error {
	query := `DELETE FROM default_positions WHERE id = $1;`
	result, err := r.DB.Exec(ctx, query, id)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete catalog entry "+id, err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
