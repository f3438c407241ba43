package services_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ShiftWise/shiftwise_app/internal/apperrors"
	"github.com/ShiftWise/shiftwise_app/internal/core/domain"
	portssvc "github.com/ShiftWise/shiftwise_app/internal/core/ports/services"
	"github.com/ShiftWise/shiftwise_app/internal/core/services"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ImportServiceTestSuite struct {
	suite.Suite
	scheduleRepo *MockScheduleRepository
	userRepo     *MockUserRepository
	service      portssvc.ImportSvcFacade
}

func (suite *ImportServiceTestSuite) SetupTest() {
	suite.scheduleRepo = new(MockScheduleRepository)
	suite.userRepo = new(MockUserRepository)
	suite.service = services.NewImportService(suite.scheduleRepo, suite.userRepo)
}

func (suite *ImportServiceTestSuite) writeCSV(content string) string {
	path := filepath.Join(suite.T().TempDir(), "roster.csv")
	suite.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (suite *ImportServiceTestSuite) TestImportSpreadsheet_SkipsMalformedRows() {
	ctx := context.Background()
	sched := weekFixture()
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()
	suite.userRepo.On("ListUsersByStore", ctx, testStoreID).Return([]domain.User{
		{UserID: "u-jordan", FullName: "Jordan P", StoreID: testStoreID},
	}, nil).Once()

	var saved domain.Schedule
	suite.scheduleRepo.On("UpdateSchedule", ctx, mock.AnythingOfType("domain.Schedule"), (*int64)(nil)).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Schedule) }).
		Return(nil).Once()

	path := suite.writeCSV("Name,Shift Time,Day,Department\n" +
		"Jordan P,5:00a - 2:00p,Monday,Front Counter\n" +
		"Riley S,11:00a - 8:00p,2026-03-03,Kitchen\n" +
		"Bad Row,not a time,Monday,Kitchen\n")

	result, err := suite.service.ImportSpreadsheet(ctx, testStoreID, "sched-1", path, "roster.csv", testUserID)

	suite.Require().NoError(err)
	suite.Equal(2, result.Imported)
	suite.Equal(1, result.Skipped)
	// Counts are per availability record: each row spans three labor periods,
	// and the fixture only staffs Lunch and Dinner, so every row places once
	// and misses twice.
	suite.Equal(2, result.Assigned)
	suite.Equal(4, result.Unplaced)

	// Rows land verbatim, clock strings unconverted.
	suite.Require().Len(saved.UploadedEmployees, 2)
	suite.Equal("5:00a - 2:00p", saved.UploadedEmployees[0].Time)
	suite.Equal("Monday", saved.UploadedEmployees[0].Day)

	// Jordan resolved against the directory and took the Monday lunch register.
	lunchPos := saved.Days[0].Shifts[0].Positions[0]
	suite.Equal(domain.PositionAssigned, lunchPos.Status)
	suite.Require().NotNil(lunchPos.AssignedEmployee)
	suite.Equal("u-jordan", lunchPos.AssignedEmployee.UserID)

	// Riley is not in the directory and landed on Tuesday's kitchen slot by name.
	dinnerPos := saved.Days[1].Shifts[1].Positions[0]
	suite.Equal(domain.PositionAssigned, dinnerPos.Status)
	suite.Require().NotNil(dinnerPos.AssignedEmployee)
	suite.Equal("Riley S", dinnerPos.AssignedEmployee.Name)
	suite.Empty(dinnerPos.AssignedEmployee.UserID)

	suite.scheduleRepo.AssertExpectations(suite.T())
}

func (suite *ImportServiceTestSuite) TestImportSpreadsheet_UnresolvedDayIsUnplaced() {
	ctx := context.Background()
	sched := weekFixture()
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()
	suite.userRepo.On("ListUsersByStore", ctx, testStoreID).Return([]domain.User{}, nil).Once()
	suite.scheduleRepo.On("UpdateSchedule", ctx, mock.AnythingOfType("domain.Schedule"), (*int64)(nil)).Return(nil).Once()

	path := suite.writeCSV("Name,Shift Time,Day,Department\n" +
		"Casey L,11:00a - 2:00p,someday,Front Counter\n")

	result, err := suite.service.ImportSpreadsheet(ctx, testStoreID, "sched-1", path, "roster.csv", testUserID)

	suite.Require().NoError(err)
	suite.Equal(1, result.Imported)
	suite.Equal(0, result.Assigned)
	suite.Equal(1, result.Unplaced)
}

func (suite *ImportServiceTestSuite) TestImportSpreadsheet_RejectsPublishedSchedule() {
	ctx := context.Background()
	sched := weekFixture()
	sched.Status = domain.StatusPublished
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()

	path := suite.writeCSV("Name,Shift Time\nJordan P,5:00a - 2:00p\n")

	_, err := suite.service.ImportSpreadsheet(ctx, testStoreID, "sched-1", path, "roster.csv", testUserID)

	suite.Require().ErrorIs(err, apperrors.ErrLockedSchedule)
	suite.scheduleRepo.AssertNotCalled(suite.T(), "UpdateSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportSpreadsheet_RejectsUnknownFormat() {
	ctx := context.Background()

	_, err := suite.service.ImportSpreadsheet(ctx, testStoreID, "sched-1", "/tmp/whatever.pdf", "roster.pdf", testUserID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ImportServiceTestSuite) TestImportSpreadsheet_MissingColumns() {
	ctx := context.Background()
	sched := weekFixture()
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Twice()

	// Name, day, time, and department columns are all required.
	for _, header := range []string{"Who,When", "Name,Shift Time,Day"} {
		path := suite.writeCSV(header + "\nJordan P,5:00a - 2:00p,Monday\n")

		_, err := suite.service.ImportSpreadsheet(ctx, testStoreID, "sched-1", path, "roster.csv", testUserID)

		suite.Require().ErrorIs(err, apperrors.ErrValidation)
	}
}

func (suite *ImportServiceTestSuite) TestImportSpreadsheet_SpanningShiftFillsEachPeriod() {
	ctx := context.Background()
	sched := weekFixture()
	// Monday staffs Opening and Morning with one open register each.
	sched.Days[0].Shifts = []domain.Shift{
		{Period: domain.PeriodOpening, StartTime: "05:00", EndTime: "08:00", Positions: []domain.Position{
			{ID: "opening-register", Name: "Register 1", Department: domain.DeptFrontCounter, Status: domain.PositionUnassigned},
		}},
		{Period: domain.PeriodMorning, StartTime: "08:00", EndTime: "11:00", Positions: []domain.Position{
			{ID: "morning-register", Name: "Register 1", Department: domain.DeptFrontCounter, Status: domain.PositionUnassigned},
		}},
	}
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()
	suite.userRepo.On("ListUsersByStore", ctx, testStoreID).Return([]domain.User{}, nil).Once()

	var saved domain.Schedule
	suite.scheduleRepo.On("UpdateSchedule", ctx, mock.AnythingOfType("domain.Schedule"), (*int64)(nil)).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Schedule) }).
		Return(nil).Once()

	path := suite.writeCSV("Name,Shift Time,Day,Department\n" +
		"Jordan P,5:00a - 11:00a,Monday,Front Counter\n")

	result, err := suite.service.ImportSpreadsheet(ctx, testStoreID, "sched-1", path, "roster.csv", testUserID)

	suite.Require().NoError(err)
	// A shift spanning two labor periods fills an open position in each.
	suite.Equal(2, result.Assigned)
	suite.Equal(0, result.Unplaced)
	for _, shift := range saved.Days[0].Shifts {
		pos := shift.Positions[0]
		suite.Equal(domain.PositionAssigned, pos.Status)
		suite.Require().NotNil(pos.AssignedEmployee)
		suite.Equal("Jordan P", pos.AssignedEmployee.Name)
	}
}

func (suite *ImportServiceTestSuite) TestImportSpreadsheet_SkipsRowsMissingRequiredFields() {
	ctx := context.Background()
	sched := weekFixture()
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()
	suite.userRepo.On("ListUsersByStore", ctx, testStoreID).Return([]domain.User{}, nil).Once()

	var saved domain.Schedule
	suite.scheduleRepo.On("UpdateSchedule", ctx, mock.AnythingOfType("domain.Schedule"), (*int64)(nil)).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Schedule) }).
		Return(nil).Once()

	path := suite.writeCSV("Name,Shift Time,Day,Department\n" +
		"Jordan P,11:00a - 2:00p,,Front Counter\n" +
		"Riley S,11:00a - 2:00p,Monday,\n" +
		"Drew K,11:00a - 2:00p,Monday,Warehouse\n" +
		"Casey L,11:00a - 2:00p,Monday,Front Counter\n")

	result, err := suite.service.ImportSpreadsheet(ctx, testStoreID, "sched-1", path, "roster.csv", testUserID)

	suite.Require().NoError(err)
	// Empty day and department cells skip the row entirely; an unrecognized
	// department imports verbatim but is never auto-placed.
	suite.Equal(2, result.Imported)
	suite.Equal(2, result.Skipped)
	suite.Equal(1, result.Assigned)
	suite.Equal(1, result.Unplaced)

	suite.Require().Len(saved.UploadedEmployees, 2)
	suite.Equal("Drew K", saved.UploadedEmployees[0].Name)
	suite.Equal("Casey L", saved.UploadedEmployees[1].Name)

	pos := saved.Days[0].Shifts[0].Positions[0]
	suite.Require().NotNil(pos.AssignedEmployee)
	suite.Equal("Casey L", pos.AssignedEmployee.Name)
}

func (suite *ImportServiceTestSuite) TestImportSpreadsheet_AllRowsSkipped() {
	ctx := context.Background()
	sched := weekFixture()
	suite.scheduleRepo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()
	suite.userRepo.On("ListUsersByStore", ctx, testStoreID).Return([]domain.User{}, nil).Once()

	path := suite.writeCSV("Name,Shift Time,Day,Department\n" +
		"Jordan P,not a time,Monday,Front Counter\n" +
		"Riley S,11:00a - 2:00p,,Kitchen\n")

	_, err := suite.service.ImportSpreadsheet(ctx, testStoreID, "sched-1", path, "roster.csv", testUserID)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorContains(err, "2 skipped")
	suite.scheduleRepo.AssertNotCalled(suite.T(), "UpdateSchedule", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ImportServiceTestSuite) TestImportSpreadsheet_DeterministicFirstFit() {
	ctx := context.Background()

	runImport := func() domain.Schedule {
		sched := weekFixture()
		// Two open front-counter registers in Monday lunch.
		sched.Days[0].Shifts[0].Positions = append(sched.Days[0].Shifts[0].Positions,
			domain.Position{ID: "lunch-register-2", Name: "Register 2", Department: domain.DeptFrontCounter, Status: domain.PositionUnassigned})

		repo := new(MockScheduleRepository)
		users := new(MockUserRepository)
		svc := services.NewImportService(repo, users)

		repo.On("FindScheduleByID", ctx, "sched-1").Return(sched, nil).Once()
		users.On("ListUsersByStore", ctx, testStoreID).Return([]domain.User{}, nil).Once()
		var saved domain.Schedule
		repo.On("UpdateSchedule", ctx, mock.AnythingOfType("domain.Schedule"), (*int64)(nil)).
			Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Schedule) }).
			Return(nil).Once()

		path := suite.writeCSV("Name,Shift Time,Day,Department\n" +
			"First Person,11:00a - 2:00p,Monday,Front Counter\n" +
			"Second Person,11:00a - 2:00p,Monday,Front Counter\n")
		_, err := svc.ImportSpreadsheet(ctx, testStoreID, "sched-1", path, "roster.csv", testUserID)
		suite.Require().NoError(err)
		return saved
	}

	first := runImport()
	second := runImport()

	for _, saved := range []domain.Schedule{first, second} {
		positions := saved.Days[0].Shifts[0].Positions
		suite.Equal("First Person", positions[0].AssignedEmployee.Name)
		suite.Equal("Second Person", positions[1].AssignedEmployee.Name)
	}
}

func TestImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImportServiceTestSuite))
}
