package cmd

import (
	"log/slog"
	"os"
	"time"

	"routeadmin/internal/adapters/out/drivers"
	"routeadmin/internal/adapters/out/postgres"
	"routeadmin/internal/adapters/out/routing"
	"routeadmin/internal/core/application/polling"
	"routeadmin/internal/core/application/session"
	"routeadmin/internal/core/application/usecases/commands"
	"routeadmin/internal/core/application/usecases/queries"
	"routeadmin/internal/core/ports"
	"routeadmin/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	config     Config
	store      *session.Store
	routing    *routing.Client
	drivers    *drivers.Client
	monitor    *polling.Monitor
	uowFactory *postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	routingClient := routing.NewClient(config.RoutingAPIBaseURL, logger)
	poller := polling.NewPoller(routingClient, logger)

	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		config:     config,
		store:      session.NewStore(),
		routing:    routingClient,
		drivers:    drivers.NewClient(config.DriversAPIBaseURL, logger),
		monitor:    polling.NewMonitor(poller, logger),
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) JobBackend() ports.JobBackend {
	return c.routing
}

func (c *CompositionRoot) Monitor() *polling.Monitor {
	return c.monitor
}

func (c *CompositionRoot) CreateGeneratePlansCommandHandler() commands.GeneratePlansCommandHandler {
	return commands.NewGeneratePlansCommandHandler(c.routing, c.monitor)
}

func (c *CompositionRoot) CreateOptimizePlansCommandHandler() commands.OptimizePlansCommandHandler {
	return commands.NewOptimizePlansCommandHandler(c.routing, c.monitor)
}

func (c *CompositionRoot) CreateFetchScheduleCommandHandler() commands.FetchScheduleCommandHandler {
	return commands.NewFetchScheduleCommandHandler(c.routing, c.monitor)
}

func (c *CompositionRoot) CreateDeletePlansCommandHandler() commands.DeletePlansCommandHandler {
	return commands.NewDeletePlansCommandHandler(c.routing, c.store)
}

func (c *CompositionRoot) CreateCommitAssignmentCommandHandler() commands.CommitAssignmentCommandHandler {
	return commands.NewCommitAssignmentCommandHandler(c.store, c.uowFactory)
}

func (c *CompositionRoot) CreateGenerateSheetCommandHandler() commands.GenerateSheetCommandHandler {
	return commands.NewGenerateSheetCommandHandler(c.routing, c.store, c.monitor)
}

func (c *CompositionRoot) CreateGetPlansQueryHandler() queries.GetPlansQueryHandler {
	return queries.NewGetPlansQueryHandler(c.routing)
}

func (c *CompositionRoot) CreateGetDriversQueryHandler() queries.GetDriversQueryHandler {
	return queries.NewGetDriversQueryHandler(c.drivers)
}

func (c *CompositionRoot) CreateGetWorkloadQueryHandler() queries.GetWorkloadQueryHandler {
	return queries.NewGetWorkloadQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetProjectedWorkloadQueryHandler() queries.GetProjectedWorkloadQueryHandler {
	return queries.NewGetProjectedWorkloadQueryHandler(c.store)
}

func (c *CompositionRoot) CreateGetAssignmentQueryHandler() queries.GetAssignmentQueryHandler {
	return queries.NewGetAssignmentQueryHandler(c.store, c.gormDB)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	ttl := time.Duration(c.config.SessionTTLMinutes) * time.Minute
	return jobs.NewJobManager(c.store, ttl, c.logger)
}
