package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"aquaserve/cmd"
	httpin "aquaserve/internal/adapters/in/http"
	"aquaserve/internal/adapters/out/postgres/customerrepo"
	"aquaserve/internal/adapters/out/postgres/orderrepo"
	"aquaserve/internal/adapters/out/postgres/requestrepo"
	"aquaserve/internal/adapters/out/postgres/technicianrepo"
	"aquaserve/internal/jobs"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app, err := cmd.NewCompositionRoot(configs, gormDB, logger)
	if err != nil {
		log.Fatalf("failed to build composition root: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateReconcileWorkStatusCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:      goDotEnvVariable("HTTP_PORT"),
		DBHost:        goDotEnvVariable("DB_HOST"),
		DBPort:        goDotEnvVariable("DB_PORT"),
		DBUser:        goDotEnvVariable("DB_USER"),
		DBPassword:    goDotEnvVariable("DB_PASSWORD"),
		DBName:        goDotEnvVariable("DB_NAME"),
		DBSslMode:     goDotEnvVariable("DB_SSLMODE"),
		JwtSecret:     goDotEnvVariable("JWT_SECRET"),
		FileStoreRoot: goDotEnvVariable("FILE_STORE_ROOT"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	return gormDB
}

func mustMigrate(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&customerrepo.CustomerDTO{},
		&technicianrepo.TechnicianDTO{},
		&requestrepo.RequestDTO{},
	)
	if err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpin.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateReceivePaymentCommandHandler(),
		app.CreateReviewOrderKycCommandHandler(),
		app.CreateAssignTechnicianCommandHandler(),
		app.CreateRemoveAssignmentCommandHandler(),
		app.CreateRecordTechnicianDecisionCommandHandler(),
		app.CreateCompleteInstallationCommandHandler(),
		app.CreateReviewCustomerKycCommandHandler(),
		app.CreateRegisterCustomerCommandHandler(),
		app.CreateRegisterTechnicianCommandHandler(),
		app.CreateReviewTechnicianOnboardingCommandHandler(),
		app.CreateCreateServiceRequestCommandHandler(),
		app.CreateAssignServiceRequestCommandHandler(),
		app.CreateUpdateServiceRequestStatusCommandHandler(),
		app.CreateListAvailableTechniciansQueryHandler(),
		app.CreateGetOpenOrdersQueryHandler(),
	)
	server.RegisterRoutes(e, httpin.PrincipalMiddleware(app.IdentityResolver()))

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
