package service

import (
	"testing"

	"classroom-fund-registry/internal/models"
	"classroom-fund-registry/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the full service stack over an in-memory sqlite database
type testEnv struct {
	db          *gorm.DB
	auth        *AuthService
	buildings   *BuildingService
	rooms       *RoomService
	departments *DepartmentService
	reports     *ReportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Building{},
		&models.Department{},
		&models.Room{},
	))

	userRepo := repository.NewUserRepo(db)
	buildingRepo := repository.NewBuildingRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)

	return &testEnv{
		db:          db,
		auth:        NewAuthService(userRepo),
		buildings:   NewBuildingService(buildingRepo),
		rooms:       NewRoomService(roomRepo, buildingRepo, departmentRepo),
		departments: NewDepartmentService(departmentRepo),
		reports:     NewReportService(buildingRepo, departmentRepo),
	}
}

func uintPtr(v uint) *uint {
	return &v
}
