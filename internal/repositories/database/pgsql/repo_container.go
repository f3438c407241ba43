package pgsql

import (
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	"github.com/ShiftWise/shiftwise_app/pkg/database"
)

func NewRepositoryProvider(db database.Queryer) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ScheduleRepo:         newPgxScheduleRepository(db),
		DefaultPositionsRepo: newPgxDefaultPositionsRepository(db),
		UserRepo:             newPgxUserRepository(db),
	}
}
