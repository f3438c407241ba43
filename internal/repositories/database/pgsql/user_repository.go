package pgsql

import (
	"context"
	"errors"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	"github.com/ShiftWise/shiftwise_app/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for the employee directory.
func newPgxUserRepository(db database.Queryer) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

var FULL_USER_SELECT_QUERY = `
SELECT
	u.user_id, u.username, u.password_hash, u.full_name, u.store_id, u.role,
	u.created_at, u.created_by, u.last_updated_at, u.last_updated_by
FROM users u
`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.UserID,
		&u.Username,
		&u.PasswordHash,
		&u.FullName,
		&u.StoreID,
		&u.Role,
		&u.CreatedAt,
		&u.CreatedBy,
		&u.LastUpdatedAt,
		&u.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := FULL_USER_SELECT_QUERY + `WHERE u.user_id = $1;`
	user, err := scanUser(r.DB.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user "+userID, err)
	}
	return user, nil
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := FULL_USER_SELECT_QUERY + `WHERE u.username = $1;`
	user, err := scanUser(r.DB.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find user by username", err)
	}
	return user, nil
}

func (r *PgxUserRepository) ListUsersByStore(ctx context.Context, storeID string) ([]domain.User, error) {
	query := FULL_USER_SELECT_QUERY + `WHERE u.store_id = $1 ORDER BY u.full_name;`
	rows, err := r.DB.Query(ctx, query, storeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query users for store "+storeID, err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan user row", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating user rows", err)
	}
	return users, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (
			user_id, username, password_hash, full_name, store_id, role,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.DB.Exec(ctx, query,
		user.UserID,
		user.Username,
		user.PasswordHash,
		user.FullName,
		user.StoreID,
		user.Role,
		user.CreatedAt,
		user.CreatedBy,
		user.LastUpdatedAt,
		user.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.NewConflictError("username " + user.Username + " already exists")
		}
		return apperrors.NewAppError(500, "failed to save user "+user.UserID, err)
	}
	return nil
}
