package pgsql

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	pgxmock "github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"
)

var defaultPositionColumns = []string{
	"id", "store_id", "weekday", "period", "positions",
	"created_at", "created_by", "last_updated_at", "last_updated_by",
}

func TestFindDefaultPositions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxDefaultPositionsRepository(mock)
	now := time.Now().UTC()
	seeds := []domain.PositionSeed{
		{Name: "Grill", Department: domain.DeptKitchen},
		{Name: "Window", Department: domain.DeptDriveThru},
	}
	seedsJSON, err := json.Marshal(seeds)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT(.|\n)*FROM default_positions d(.|\n)*WHERE d\.store_id = \$1 AND d\.weekday = \$2 AND d\.period = \$3`).
		WithArgs("store-1", 2, domain.PeriodDinner).
		WillReturnRows(pgxmock.NewRows(defaultPositionColumns).AddRow(
			"dp-1", "store-1", 2, domain.PeriodDinner, seedsJSON, now, "user-1", now, "user-1",
		))

	set, err := repo.FindDefaultPositions(context.Background(), "store-1", 2, domain.PeriodDinner)
	require.NoError(t, err)
	require.Equal(t, "dp-1", set.ID)
	require.Len(t, set.Positions, 2)
	require.Equal(t, domain.DeptKitchen, set.Positions[0].Department)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindDefaultPositions_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxDefaultPositionsRepository(mock)

	mock.ExpectQuery(`SELECT(.|\n)*FROM default_positions d`).
		WithArgs("store-1", 0, domain.PeriodOpening).
		WillReturnRows(pgxmock.NewRows(defaultPositionColumns))

	_, err = repo.FindDefaultPositions(context.Background(), "store-1", 0, domain.PeriodOpening)
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertDefaultPositions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxDefaultPositionsRepository(mock)
	now := time.Now().UTC()
	set := domain.DefaultPositionSet{
		ID:      "dp-new",
		StoreID: "store-1",
		Weekday: 4,
		Period:  domain.PeriodLunch,
		Positions: []domain.PositionSeed{
			{Name: "Register 1", Department: domain.DeptFrontCounter},
		},
		AuditFields: domain.AuditFields{
			CreatedAt: now, CreatedBy: "user-1", LastUpdatedAt: now, LastUpdatedBy: "user-1",
		},
	}

	// Replacing an existing entry keeps the original row identity and audit origin.
	mock.ExpectQuery(`INSERT INTO default_positions(.|\n)*ON CONFLICT \(store_id, weekday, period\)(.|\n)*RETURNING id, created_at, created_by`).
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "created_by"}).
			AddRow("dp-existing", now.Add(-time.Hour), "user-0"))

	stored, err := repo.UpsertDefaultPositions(context.Background(), set)
	require.NoError(t, err)
	require.Equal(t, "dp-existing", stored.ID)
	require.Equal(t, "user-0", stored.CreatedBy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteDefaultPositions_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := newPgxDefaultPositionsRepository(mock)

	mock.ExpectExec(`DELETE FROM default_positions WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err = repo.DeleteDefaultPositions(context.Background(), "missing")
	require.ErrorIs(t, err, apperrors.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
