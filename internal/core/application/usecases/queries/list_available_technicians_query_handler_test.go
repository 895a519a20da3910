package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aquaserve/internal/adapters/out/postgres/technicianrepo"
	"aquaserve/internal/core/application/usecases/queries"
	"aquaserve/internal/core/domain/model/kernel"
	"aquaserve/internal/core/domain/model/technician"
)

// mockAggregateTracker implements the repositories' tracker contract for
// test purposes.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

type ListAvailableTechniciansQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListAvailableTechniciansQueryHandler
	repo      *technicianrepo.GormTechnicianRepository
	orgID     kernel.OrgID
}

func (suite *ListAvailableTechniciansQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&technicianrepo.TechnicianDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListAvailableTechniciansQueryHandler(db)
	suite.repo = technicianrepo.NewGormTechnicianRepository(db, &mockAggregateTracker{})
}

func (suite *ListAvailableTechniciansQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListAvailableTechniciansQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE technicians CASCADE").Error
	suite.Require().NoError(err)
	suite.orgID = kernel.NewOrgID()
}

func (suite *ListAvailableTechniciansQueryHandlerTestSuite) addTechnician(
	orgID kernel.OrgID,
	name string,
	kycStatus kernel.KycStatus,
	workStatus technician.WorkStatus,
) *technician.Technician {
	tech, err := technician.RestoreTechnician(
		kernel.NewUUID(), orgID, kernel.NewUUID(), name,
		true, kycStatus, workStatus, kernel.DeviceUnlinked, 0,
	)
	suite.Require().NoError(err)

	err = suite.repo.Add(context.Background(), tech)
	suite.Require().NoError(err)
	return tech
}

func (suite *ListAvailableTechniciansQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListAvailableTechniciansQuery(suite.orgID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *ListAvailableTechniciansQueryHandlerTestSuite) TestHandle_FiltersBusyAndUnapproved() {
	eligible := suite.addTechnician(suite.orgID, "Anil Kumar", kernel.KycApproved, technician.WorkFree)
	suite.addTechnician(suite.orgID, "Busy Singh", kernel.KycApproved, technician.WorkBusy)
	suite.addTechnician(suite.orgID, "Pending Rao", kernel.KycPending, technician.WorkFree)
	suite.addTechnician(suite.orgID, "Rejected Das", kernel.KycRejected, technician.WorkFree)

	query, err := queries.NewListAvailableTechniciansQuery(suite.orgID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(eligible.ID()))
	suite.True(result[0].UserID.IsEqual(eligible.UserID()))
	suite.Equal("Anil Kumar", result[0].Name)
}

func (suite *ListAvailableTechniciansQueryHandlerTestSuite) TestHandle_TenantIsolation() {
	otherOrg := kernel.NewOrgID()
	suite.addTechnician(otherOrg, "Other Org Tech", kernel.KycApproved, technician.WorkFree)
	mine := suite.addTechnician(suite.orgID, "Anil Kumar", kernel.KycApproved, technician.WorkFree)

	query, err := queries.NewListAvailableTechniciansQuery(suite.orgID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(mine.ID()))
}

func (suite *ListAvailableTechniciansQueryHandlerTestSuite) TestHandle_SortedByName() {
	suite.addTechnician(suite.orgID, "Charu Mehta", kernel.KycApproved, technician.WorkFree)
	suite.addTechnician(suite.orgID, "Anil Kumar", kernel.KycApproved, technician.WorkFree)
	suite.addTechnician(suite.orgID, "Bina Patel", kernel.KycApproved, technician.WorkFree)

	query, err := queries.NewListAvailableTechniciansQuery(suite.orgID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Anil Kumar", result[0].Name)
	suite.Equal("Bina Patel", result[1].Name)
	suite.Equal("Charu Mehta", result[2].Name)
}

func (suite *ListAvailableTechniciansQueryHandlerTestSuite) TestHandle_ReflectsReleasedTechnician() {
	tech := suite.addTechnician(suite.orgID, "Anil Kumar", kernel.KycApproved, technician.WorkBusy)

	query, err := queries.NewListAvailableTechniciansQuery(suite.orgID)
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Empty(result)

	tech.MarkFree()
	err = suite.repo.Update(context.Background(), tech)
	suite.Require().NoError(err)

	result, err = suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].ID.IsEqual(tech.ID()))
}

func (suite *ListAvailableTechniciansQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListAvailableTechniciansQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewListAvailableTechniciansQuery constructor")
}

func TestListAvailableTechniciansQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListAvailableTechniciansQueryHandlerTestSuite))
}
