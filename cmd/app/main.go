package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"stockflow/cmd"
	httpadapter "stockflow/internal/adapters/in/http"
	"stockflow/internal/adapters/out/postgres/orderrepo"
	"stockflow/internal/adapters/out/postgres/receiptrepo"
	"stockflow/internal/core/domain/model/kernel"
	"stockflow/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		StaleOrderTTLMinutes: goDotEnvVariable("STALE_ORDER_TTL_MINUTES"),
		SystemActorID:        goDotEnvVariable("SYSTEM_ACTOR_ID"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		configs.DBHost, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBPort, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.LineDTO{},
		&receiptrepo.ReceiptDTO{}, &receiptrepo.LineDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	ttlMinutes, err := strconv.Atoi(configs.StaleOrderTTLMinutes)
	if err != nil || ttlMinutes <= 0 {
		log.Fatalf("Invalid STALE_ORDER_TTL_MINUTES: %s", configs.StaleOrderTTLMinutes)
	}

	systemActor, err := kernel.ActorIDFromString(configs.SystemActorID)
	if err != nil {
		log.Fatalf("Invalid SYSTEM_ACTOR_ID: %v", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreateCancelStaleOrdersCommandHandler(),
		time.Duration(ttlMinutes)*time.Minute,
		systemActor,
		logger,
	)

	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateChangeOrderStatusCommandHandler(),
		app.CreateChangeOrdersStatusCommandHandler(),
		app.CreateDeleteOrdersCommandHandler(),
		app.CreateRestoreOrdersCommandHandler(),
		app.CreateCreateReceiptCommandHandler(),
		app.CreateUpdateReceiptCommandHandler(),
		app.CreateChangeReceiptStatusCommandHandler(),
		app.CreateChangeReceiptsStatusCommandHandler(),
		app.CreateDeleteReceiptsCommandHandler(),
		app.CreateRestoreReceiptsCommandHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetReceiptsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
