package pgsql

import (
	"github.com/ShiftWise/shiftwise_app/pkg/database"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB database.Queryer
}
