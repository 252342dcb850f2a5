package main

import (
	"context"
	"fmt"
	nethttp "net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"routeadmin/cmd"
	adapterhttp "routeadmin/internal/adapters/in/http"
	"routeadmin/internal/adapters/out/postgres/assignmentrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultSessionTTLMinutes = 240

func main() {
	configs := getConfigs()

	gormDB := openDatabase(configs)
	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := adapterhttp.NewServer(
		app.CreateGeneratePlansCommandHandler(),
		app.CreateOptimizePlansCommandHandler(),
		app.CreateFetchScheduleCommandHandler(),
		app.CreateDeletePlansCommandHandler(),
		app.CreateCommitAssignmentCommandHandler(),
		app.CreateGenerateSheetCommandHandler(),
		app.CreateGetPlansQueryHandler(),
		app.CreateGetDriversQueryHandler(),
		app.CreateGetWorkloadQueryHandler(),
		app.CreateGetProjectedWorkloadQueryHandler(),
		app.CreateGetAssignmentQueryHandler(),
		app.Monitor(),
		app.JobBackend(),
	)
	server.RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && err != nethttp.ErrServerClosed {
			log.Fatalf("Web server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	app.Monitor().CancelAll()
	jobManager.StopAll()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Web server shutdown failed: %v", err)
	}
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		RoutingAPIBaseURL: goDotEnvVariable("ROUTING_API_BASE_URL"),
		DriversAPIBaseURL: goDotEnvVariable("DRIVERS_API_BASE_URL"),
		SessionTTLMinutes: defaultSessionTTLMinutes,
	}

	if raw := os.Getenv("SESSION_TTL_MINUTES"); raw != "" {
		minutes, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("Invalid SESSION_TTL_MINUTES: %v", err)
		}
		config.SessionTTLMinutes = minutes
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

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err = db.AutoMigrate(&assignmentrepo.PlanAssignmentDTO{}, &assignmentrepo.RouteSegmentDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}
