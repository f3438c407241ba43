package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portsrepo "github.com/ShiftWise/shiftwise_app/internal/core/ports/repositories"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/core/services"
	"github.com/ShiftWise/shiftwise_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const (
	testStoreID = "store-1"
	testUserID  = "user-1"
)

var testWeekStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// weekFixture builds a seven-day schema v1 schedule with one assignable
// position in the Lunch and Dinner shifts of every day.
func weekFixture() *domain.Schedule {
	days := make([]domain.Day, domain.DaysPerWeek)
	for i := range days {
		days[i] = domain.Day{
			Date: testWeekStart.AddDate(0, 0, i),
			Shifts: []domain.Shift{
				{Period: domain.PeriodLunch, StartTime: "11:00", EndTime: "14:00", Positions: []domain.Position{
					{ID: "lunch-register", Name: "Register 1", Department: domain.DeptFrontCounter, Status: domain.PositionUnassigned},
				}},
				{Period: domain.PeriodDinner, StartTime: "17:00", EndTime: "20:00", Positions: []domain.Position{
					{ID: "dinner-grill", Name: "Grill", Department: domain.DeptKitchen, Status: domain.PositionUnassigned},
				}},
			},
		}
	}
	return &domain.Schedule{
		ScheduleID:    "sched-1",
		StoreID:       testStoreID,
		Name:          "Week of Mar 2",
		WeekStartDate: testWeekStart,
		WeekEndDate:   testWeekStart.AddDate(0, 0, 6),
		Status:        domain.StatusDraft,
		SchemaVersion: 1,
		Days:          days,
		Version:       1,
		AuditFields: domain.AuditFields{
			CreatedAt:     testWeekStart,
			CreatedBy:     testUserID,
			LastUpdatedAt: testWeekStart,
			LastUpdatedBy: testUserID,
		},
	}
}

type ScheduleServiceTestSuite struct {
	suite.Suite
	scheduleRepo *MockScheduleRepository
	catalogRepo  *MockDefaultPositionsRepository
	userRepo     *MockUserRepository
	service      portssvc.ScheduleSvcFacade
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.scheduleRepo = new(MockScheduleRepository)
	suite.catalogRepo = new(MockDefaultPositionsRepository)
	suite.userRepo = new(MockUserRepository)
	suite.service = services.NewScheduleService(suite.scheduleRepo, suite.catalogRepo, suite.userRepo)
}

func (suite *ScheduleServiceTestSuite) TestCreateSchedule_SynthesizesSevenDays() {
	ctx := context.Background()

	// Only Monday lunch has a catalog entry; every other slot starts empty.
	suite.catalogRepo.On("FindDefaultPositions", ctx, testStoreID, 0, domain.PeriodLunch).
		Return(&domain.DefaultPositionSet{
			ID:      "dp-1",
			StoreID: testStoreID,
			Weekday: 0,
			Period:  domain.PeriodLunch,
			Positions: []domain.PositionSeed{
				{Name: "Register 1", Department: domain.DeptFrontCounter},
				{Name: "Register 2", Department: domain.DeptFrontCounter},
			},
		}, nil).Once()
	suite.catalogRepo.On("FindDefaultPositions", ctx, testStoreID, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrNotFound)
	suite.scheduleRepo.On("SaveSchedule", ctx, mock.AnythingOfType("domain.Schedule")).Return(nil).Once()

	sched, err := suite.service.CreateSchedule(ctx, testStoreID, dto.CreateScheduleRequest{
		Name:          "Week of Mar 2",
		WeekStartDate: "2026-03-02",
		WeekEndDate:   "2026-03-08",
		SchemaVersion: 1,
	}, testUserID)

	suite.Require().NoError(err)
	suite.Require().Len(sched.Days, domain.DaysPerWeek)
	suite.Equal(domain.StatusDraft, sched.Status)
	suite.Equal(int64(1), sched.Version)
	for i, day := range sched.Days {
		suite.Len(day.Shifts, domain.PeriodCount, "day %d", i)
		suite.Equal(testWeekStart.AddDate(0, 0, i), day.Date)
	}
	mondayLunch := sched.Days[0].Shifts[domain.PeriodLunch.Index()]
	suite.Require().Len(mondayLunch.Positions, 2)
	suite.Equal(domain.PositionUnassigned, mondayLunch.Positions[0].Status)
	suite.Empty(sched.Days[1].Shifts[domain.PeriodLunch.Index()].Positions)

	suite.scheduleRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestCreateSchedule_RejectsBadWeekSpan() {
	ctx := context.Background()

	_, err := suite.service.CreateSchedule(ctx, testStoreID, dto.CreateScheduleRequest{
		Name:          "Short week",
		WeekStartDate: "2026-03-02",
		WeekEndDate:   "2026-03-05",
		SchemaVersion: 1,
	}, testUserID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.scheduleRepo.AssertNotCalled(suite.T(), "SaveSchedule", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestGetSchedule_OtherStoreIsNotFound() {
	ctx := context.Background()
	sched := weekFixture()
	sched.StoreID = "store-2"
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()

	_, err := suite.service.GetSchedule(ctx, testStoreID, "sched-1")

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ScheduleServiceTestSuite) TestUpdateSchedule_PublishLockBlocksDays() {
	ctx := context.Background()
	sched := weekFixture()
	sched.Status = domain.StatusPublished
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()

	days := []dto.DayPayload{{Date: "2026-03-02"}}
	_, err := suite.service.UpdateSchedule(ctx, testStoreID, "sched-1", dto.UpdateScheduleRequest{Days: &days}, testUserID)

	suite.Require().ErrorIs(err, apperrors.ErrLockedSchedule)
	suite.scheduleRepo.AssertNotCalled(suite.T(), "UpdateSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestUpdateSchedule_UnpublishAndReplaceDaysTogether() {
	ctx := context.Background()
	sched := weekFixture()
	sched.Status = domain.StatusPublished
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()
	suite.scheduleRepo.On("UpdateSchedule", ctx, mock.AnythingOfType("domain.Schedule"), (*int64)(nil)).Return(nil).Once()

	days := make([]dto.DayPayload, domain.DaysPerWeek)
	for i := range days {
		days[i] = dto.DayPayload{
			Date: testWeekStart.AddDate(0, 0, i).Format(dto.DateLayout),
			Shifts: []dto.ShiftPayload{
				{Type: string(domain.PeriodLunch), StartTime: "11:00", EndTime: "14:00"},
			},
		}
	}
	draft := string(domain.StatusDraft)
	updated, err := suite.service.UpdateSchedule(ctx, testStoreID, "sched-1", dto.UpdateScheduleRequest{
		Status: &draft,
		Days:   &days,
	}, testUserID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, updated.Status)
	suite.Equal(int64(2), updated.Version)
	suite.scheduleRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestUpdateSchedule_RejectsIllegalTransition() {
	ctx := context.Background()
	sched := weekFixture()
	sched.Status = domain.StatusArchived
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()

	published := string(domain.StatusPublished)
	_, err := suite.service.UpdateSchedule(ctx, testStoreID, "sched-1", dto.UpdateScheduleRequest{Status: &published}, testUserID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ScheduleServiceTestSuite) TestUpdateSchedule_PassesExpectedVersion() {
	ctx := context.Background()
	sched := weekFixture()
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()

	expected := int64(1)
	suite.scheduleRepo.On("UpdateSchedule", ctx, mock.AnythingOfType("domain.Schedule"), &expected).
		Return(apperrors.ErrConflict).Once()

	name := "Renamed"
	_, err := suite.service.UpdateSchedule(ctx, testStoreID, "sched-1", dto.UpdateScheduleRequest{
		Name:            &name,
		ExpectedVersion: &expected,
	}, testUserID)

	suite.Require().ErrorIs(err, apperrors.ErrConflict)
	suite.scheduleRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestCopySchedule_IsDeepAndIndependent() {
	ctx := context.Background()
	src := weekFixture()
	src.Status = domain.StatusPublished
	src.UploadedEmployees = []domain.UploadedEmployee{{Name: "Jordan P", Time: "5:00a - 2:00p"}}
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(src, nil).Once()

	var saved domain.Schedule
	suite.scheduleRepo.On("SaveSchedule", ctx, mock.AnythingOfType("domain.Schedule")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Schedule) }).
		Return(nil).Once()

	newStart := "2026-03-09"
	clone, err := suite.service.CopySchedule(ctx, testStoreID, "sched-1", dto.CopyScheduleRequest{WeekStartDate: &newStart}, testUserID)

	suite.Require().NoError(err)
	suite.NotEqual(src.ScheduleID, clone.ScheduleID)
	suite.Equal(domain.StatusDraft, clone.Status)
	suite.Equal("Copy of Week of Mar 2", clone.Name)
	suite.Empty(clone.UploadedEmployees)
	suite.Equal(time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), saved.Days[0].Date)

	// Mutating the copy must not reach the source.
	clone.Days[0].Shifts[0].Positions[0].Name = "changed"
	suite.Equal("Register 1", src.Days[0].Shifts[0].Positions[0].Name)
	suite.scheduleRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestSaveAsTemplate() {
	ctx := context.Background()
	src := weekFixture()
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(src, nil).Once()

	suite.scheduleRepo.On("SaveSchedule", ctx, mock.MatchedBy(func(s domain.Schedule) bool {
		return s.IsTemplate && s.Status == domain.StatusDraft && s.Name == "Standard Week"
	})).Return(nil).Once()

	tmpl, err := suite.service.SaveAsTemplate(ctx, testStoreID, "sched-1", dto.SaveAsTemplateRequest{Name: "Standard Week"}, testUserID)

	suite.Require().NoError(err)
	suite.True(tmpl.IsTemplate)
	suite.scheduleRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestDeleteSchedule() {
	ctx := context.Background()
	sched := weekFixture()
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()
	suite.scheduleRepo.On("DeleteSchedule", ctx, "sched-1").Return(nil).Once()

	suite.Require().NoError(suite.service.DeleteSchedule(ctx, testStoreID, "sched-1"))
	suite.scheduleRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestListTemplates_FiltersOnTemplateFlag() {
	ctx := context.Background()
	suite.scheduleRepo.On("ListSchedules", ctx, testStoreID, mock.MatchedBy(func(f portsrepo.ScheduleFilter) bool {
		return f.IsTemplate != nil && *f.IsTemplate
	})).Return([]domain.Schedule{}, nil).Once()

	_, err := suite.service.ListTemplates(ctx, testStoreID)

	suite.Require().NoError(err)
	suite.scheduleRepo.AssertExpectations(suite.T())
}

func TestScheduleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}
