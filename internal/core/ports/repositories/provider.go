package repositories

// RepositoryProvider bundles all repository implementations for injection into
// the service container.
type RepositoryProvider struct {
	ScheduleRepo         ScheduleRepositoryFacade
	DefaultPositionsRepo DefaultPositionsRepositoryFacade
	UserRepo             UserRepositoryFacade
}
