package services_test

import (
	"context"

	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock ScheduleRepository ---

type MockScheduleRepository struct {
	mock.Mock
}

func (m *MockScheduleRepository) FindScheduleByID(ctx context.Context, scheduleID string) (*domain.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) ListSchedules(ctx context.Context, storeID string, filter portsrepo.ScheduleFilter) ([]domain.Schedule, error) {
	args := m.Called(ctx, storeID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Schedule), args.Error(1)
}

func (m *MockScheduleRepository) SaveSchedule(ctx context.Context, schedule domain.Schedule) error {
	args := m.Called(ctx, schedule)
	return args.Error(0)
}

func (m *MockScheduleRepository) UpdateSchedule(ctx context.Context, schedule domain.Schedule, expectedVersion *int64) error {
	args := m.Called(ctx, schedule, expectedVersion)
	return args.Error(0)
}

func (m *MockScheduleRepository) DeleteSchedule(ctx context.Context, scheduleID string) error {
	args := m.Called(ctx, scheduleID)
	return args.Error(0)
}

// --- Mock DefaultPositionsRepository ---

type MockDefaultPositionsRepository struct {
	mock.Mock
}

func (m *MockDefaultPositionsRepository) FindDefaultPositionsByID(ctx context.Context, id string) (*domain.DefaultPositionSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DefaultPositionSet), args.Error(1)
}

func (m *MockDefaultPositionsRepository) FindDefaultPositions(ctx context.Context, storeID string, weekday int, period domain.LaborPeriod) (*domain.DefaultPositionSet, error) {
	args := m.Called(ctx, storeID, weekday, period)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DefaultPositionSet), args.Error(1)
}

func (m *MockDefaultPositionsRepository) ListDefaultPositions(ctx context.Context, storeID string) ([]domain.DefaultPositionSet, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DefaultPositionSet), args.Error(1)
}

func (m *MockDefaultPositionsRepository) UpsertDefaultPositions(ctx context.Context, set domain.DefaultPositionSet) (*domain.DefaultPositionSet, error) {
	args := m.Called(ctx, set)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DefaultPositionSet), args.Error(1)
}

func (m *MockDefaultPositionsRepository) DeleteDefaultPositions(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ListUsersByStore(ctx context.Context, storeID string) ([]domain.User, error) {
	args := m.Called(ctx, storeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
