// Package http exposes the admin API over labstack/echo. Handlers bind
// request DTOs, delegate to command and query handlers, and map the
// error taxonomy onto scoped HTTP statuses; nothing here contains
// business logic.
package http

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"routeadmin/internal/core/application/polling"
	"routeadmin/internal/core/application/usecases/commands"
	"routeadmin/internal/core/application/usecases/queries"
	"routeadmin/internal/core/domain/model/segment"
	"routeadmin/internal/core/domain/services"
	"routeadmin/internal/core/ports"
	"routeadmin/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	generatePlansHandler    commands.GeneratePlansCommandHandler
	optimizePlansHandler    commands.OptimizePlansCommandHandler
	fetchScheduleHandler    commands.FetchScheduleCommandHandler
	deletePlansHandler      commands.DeletePlansCommandHandler
	commitAssignmentHandler commands.CommitAssignmentCommandHandler
	generateSheetHandler    commands.GenerateSheetCommandHandler

	// Query handlers
	getPlansHandler             queries.GetPlansQueryHandler
	getDriversHandler           queries.GetDriversQueryHandler
	getWorkloadHandler          queries.GetWorkloadQueryHandler
	getProjectedWorkloadHandler queries.GetProjectedWorkloadQueryHandler
	getAssignmentHandler        queries.GetAssignmentQueryHandler

	monitor    *polling.Monitor
	backend    ports.JobBackend
	calculator services.SegmentCalculator
}

// NewServer creates the HTTP server with its use case handlers.
func NewServer(
	generatePlansHandler commands.GeneratePlansCommandHandler,
	optimizePlansHandler commands.OptimizePlansCommandHandler,
	fetchScheduleHandler commands.FetchScheduleCommandHandler,
	deletePlansHandler commands.DeletePlansCommandHandler,
	commitAssignmentHandler commands.CommitAssignmentCommandHandler,
	generateSheetHandler commands.GenerateSheetCommandHandler,
	getPlansHandler queries.GetPlansQueryHandler,
	getDriversHandler queries.GetDriversQueryHandler,
	getWorkloadHandler queries.GetWorkloadQueryHandler,
	getProjectedWorkloadHandler queries.GetProjectedWorkloadQueryHandler,
	getAssignmentHandler queries.GetAssignmentQueryHandler,
	monitor *polling.Monitor,
	backend ports.JobBackend,
) *Server {
	return &Server{
		generatePlansHandler:        generatePlansHandler,
		optimizePlansHandler:        optimizePlansHandler,
		fetchScheduleHandler:        fetchScheduleHandler,
		deletePlansHandler:          deletePlansHandler,
		commitAssignmentHandler:     commitAssignmentHandler,
		generateSheetHandler:        generateSheetHandler,
		getPlansHandler:             getPlansHandler,
		getDriversHandler:           getDriversHandler,
		getWorkloadHandler:          getWorkloadHandler,
		getProjectedWorkloadHandler: getProjectedWorkloadHandler,
		getAssignmentHandler:        getAssignmentHandler,
		monitor:                     monitor,
		backend:                     backend,
		calculator:                  services.NewSegmentCalculator(),
	}
}

// RegisterRoutes mounts every endpoint under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/plans/generate", s.GeneratePlans)
	api.POST("/plans/optimize", s.OptimizePlans)
	api.GET("/plans", s.GetPlans)
	api.DELETE("/plans", s.DeletePlans)

	api.POST("/plans/:planId/schedule", s.FetchSchedule)
	api.GET("/plans/:planId/schedule", s.GetSchedule)
	api.POST("/plans/:planId/segments/preview", s.PreviewSegments)
	api.PUT("/plans/:planId/assignment", s.PutAssignment)
	api.GET("/plans/:planId/assignment", s.GetAssignment)

	api.GET("/jobs/:jobId", s.GetJob)
	api.DELETE("/jobs/:jobId", s.CancelJob)
	api.GET("/jobs/:jobId/download", s.DownloadSheet)

	api.GET("/workload", s.GetWorkload)
	api.GET("/workload/projected", s.GetProjectedWorkload)

	api.POST("/sheets/generate", s.GenerateSheet)
	api.GET("/drivers", s.GetDrivers)
}

// GeneratePlans handles POST /api/v1/plans/generate.
func (s *Server) GeneratePlans(ctx echo.Context) error {
	var req GeneratePlansRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewGeneratePlansCommand(req.Date.Time)
	if err != nil {
		return writeError(ctx, err)
	}

	jobID, err := s.generatePlansHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, JobCreatedResponse{JobID: jobID})
}

// OptimizePlans handles POST /api/v1/plans/optimize.
func (s *Server) OptimizePlans(ctx echo.Context) error {
	var planIDs []string
	if err := ctx.Bind(&planIDs); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewOptimizePlansCommand(planIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	jobID, err := s.optimizePlansHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, JobCreatedResponse{JobID: jobID})
}

// GetPlans handles GET /api/v1/plans?date=.
func (s *Server) GetPlans(ctx echo.Context) error {
	date, err := parseDateParam(ctx.QueryParam("date"))
	if err != nil {
		return badRequest(ctx, "Invalid or missing date parameter")
	}

	query, err := queries.NewGetPlansQuery(date)
	if err != nil {
		return writeError(ctx, err)
	}

	plans, err := s.getPlansHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, plansToResponse(plans))
}

// DeletePlans handles DELETE /api/v1/plans.
func (s *Server) DeletePlans(ctx echo.Context) error {
	var planIDs []string
	if err := ctx.Bind(&planIDs); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewDeletePlansCommand(planIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.deletePlansHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FetchSchedule handles POST /api/v1/plans/:planId/schedule.
func (s *Server) FetchSchedule(ctx echo.Context) error {
	var req FetchScheduleRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFetchScheduleCommand(ctx.Param("planId"), req.Date.Time)
	if err != nil {
		return writeError(ctx, err)
	}

	jobID, err := s.fetchScheduleHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, JobCreatedResponse{JobID: jobID})
}

// GetSchedule handles GET /api/v1/plans/:planId/schedule. It serves the
// stops cached by a completed schedule-fetch job.
func (s *Server) GetSchedule(ctx echo.Context) error {
	stops, ok := s.monitor.Schedule(ctx.Param("planId"))
	if !ok {
		return notFound(ctx, "No fetched schedule for this plan")
	}

	return ctx.JSON(http.StatusOK, stopsToResponse(stops))
}

// PreviewSegments handles POST /api/v1/plans/:planId/segments/preview.
// Pure calculation for the segmentation screen; nothing is committed.
func (s *Server) PreviewSegments(ctx echo.Context) error {
	var req SegmentPreviewRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	planID := ctx.Param("planId")
	previous, err := payloadToSegments(planID, req.Previous)
	if err != nil {
		return writeError(ctx, err)
	}

	segments, err := s.calculator.Calculate(req.CutPoints, req.StopsAdded, planID, previous)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, segmentsToResponse(segments))
}

// PutAssignment handles PUT /api/v1/plans/:planId/assignment.
func (s *Server) PutAssignment(ctx echo.Context) error {
	var req PutAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	planID := ctx.Param("planId")
	segments, err := payloadToSegments(planID, req.Segments)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCommitAssignmentCommand(planID, segments, req.ExpectedVersion)
	if err != nil {
		return writeError(ctx, err)
	}

	data, err := s.commitAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignmentResponse{
		PlanID:   data.PlanID(),
		Splits:   data.Splits(),
		Segments: segmentsToResponse(data.Segments()),
		Version:  data.Version().String(),
	})
}

// GetAssignment handles GET /api/v1/plans/:planId/assignment.
func (s *Server) GetAssignment(ctx echo.Context) error {
	query, err := queries.NewGetAssignmentQuery(ctx.Param("planId"))
	if err != nil {
		return writeError(ctx, err)
	}

	response, err := s.getAssignmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, AssignmentResponse{
		PlanID:   response.PlanID,
		Splits:   response.Splits,
		Segments: segmentsToResponse(response.Segments),
		Version:  response.Version,
	})
}

// GetJob handles GET /api/v1/jobs/:jobId.
func (s *Server) GetJob(ctx echo.Context) error {
	state, ok := s.monitor.State(ctx.Param("jobId"))
	if !ok {
		return notFound(ctx, "Unknown job")
	}

	return ctx.JSON(http.StatusOK, JobStateResponse{
		JobID:    state.JobID,
		Kind:     state.Kind.String(),
		Status:   state.Status.String(),
		Progress: state.Progress,
		Message:  state.Message,
	})
}

// CancelJob handles DELETE /api/v1/jobs/:jobId. Stops observing the job;
// the backend job itself keeps running.
func (s *Server) CancelJob(ctx echo.Context) error {
	s.monitor.Cancel(ctx.Param("jobId"))
	return ctx.NoContent(http.StatusNoContent)
}

// DownloadSheet handles GET /api/v1/jobs/:jobId/download.
func (s *Server) DownloadSheet(ctx echo.Context) error {
	body, err := s.backend.DownloadSheet(ctx.Request().Context(), ctx.Param("jobId"))
	if err != nil {
		return writeError(ctx, err)
	}
	defer body.Close()

	ctx.Response().Header().Set(echo.HeaderContentType, "application/octet-stream")
	ctx.Response().WriteHeader(http.StatusOK)
	_, err = io.Copy(ctx.Response(), body)
	return err
}

// GetWorkload handles GET /api/v1/workload.
func (s *Server) GetWorkload(ctx echo.Context) error {
	workload, err := s.getWorkloadHandler.Handle(ctx.Request().Context(), queries.NewGetWorkloadQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, WorkloadResponse{SegmentsByDriver: workload})
}

// GetProjectedWorkload handles GET /api/v1/workload/projected.
func (s *Server) GetProjectedWorkload(ctx echo.Context) error {
	endStopPosition, err := strconv.Atoi(ctx.QueryParam("endStopPosition"))
	if err != nil {
		return badRequest(ctx, "Invalid endStopPosition parameter")
	}
	driverID, err := strconv.Atoi(ctx.QueryParam("driverId"))
	if err != nil {
		return badRequest(ctx, "Invalid driverId parameter")
	}

	query, err := queries.NewGetProjectedWorkloadQuery(ctx.QueryParam("planId"), endStopPosition, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	projected, err := s.getProjectedWorkloadHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ProjectedWorkloadResponse{
		DriverID:  driverID,
		Projected: projected,
	})
}

// GenerateSheet handles POST /api/v1/sheets/generate.
func (s *Server) GenerateSheet(ctx echo.Context) error {
	var req GenerateSheetRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewGenerateSheetCommand(req.Date.Time, req.PlanIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	jobID, err := s.generateSheetHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, JobCreatedResponse{JobID: jobID})
}

// GetDrivers handles GET /api/v1/drivers.
func (s *Server) GetDrivers(ctx echo.Context) error {
	pageNumber, err := strconv.Atoi(ctx.QueryParam("pageNumber"))
	if err != nil {
		return badRequest(ctx, "Invalid pageNumber parameter")
	}
	pageSize, err := strconv.Atoi(ctx.QueryParam("pageSize"))
	if err != nil {
		return badRequest(ctx, "Invalid pageSize parameter")
	}

	query, err := queries.NewGetDriversQuery(pageNumber, pageSize)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getDriversHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driversToResponse(result))
}

func payloadToSegments(planID string, payloads []SegmentPayload) ([]segment.Segment, error) {
	segments := make([]segment.Segment, 0, len(payloads))
	for _, p := range payloads {
		seg, err := segment.NewSegment(planID, p.EndStopPosition, p.DriverID)
		if err != nil {
			return nil, err
		}
		segments = append(segments, seg)
	}
	return segments, nil
}

// writeError maps the error taxonomy onto HTTP statuses. Every failure
// stays scoped to its request; nothing is fatal.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrIncompleteAssignment):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrVersionConflict):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrSubmissionFailed),
		errors.Is(err, errs.ErrPollFailed):
		status = http.StatusBadGateway
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func notFound(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusNotFound, ErrorResponse{
		Code:    http.StatusNotFound,
		Message: message,
	})
}

func parseDateParam(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}
