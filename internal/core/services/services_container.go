package services

import (
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Schedule = NewScheduleService(repos.ScheduleRepo, repos.DefaultPositionsRepo, repos.UserRepo)
	container.Import = NewImportService(repos.ScheduleRepo, repos.UserRepo)
	container.Catalog = NewCatalogService(repos.DefaultPositionsRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Auth = NewAuthService(cfg, container.User)

	return container
}
