// Package routing implements ports.JobBackend against the routing
// provider's HTTP API. Job endpoints follow the submit-then-poll
// contract; plan listing and deletion are synchronous.
package routing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"routeadmin/internal/core/domain/model/job"
	"routeadmin/internal/core/domain/model/plan"
	"routeadmin/internal/core/ports"
	"routeadmin/internal/pkg/errs"
)

const defaultRequestTimeout = 30 * time.Second

// httpStatusError carries a non-2xx response for error classification.
type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("status %d: %s", e.Code, e.Body)
}

// Client talks to the routing provider. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a routing client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger.With("component", "routing_client"),
	}
}

// SubmitGeneratePlans starts delivery-plan generation for a date.
func (c *Client) SubmitGeneratePlans(ctx context.Context, date time.Time) (string, error) {
	jobID, err := c.submit(ctx, "/jobs/generate-plans", generatePlansRequest{
		Date: date.Format(wireDateFormat),
	})
	if err != nil {
		return "", errs.NewSubmissionErrorWithCause("generate plans", err)
	}
	return jobID, nil
}

// SubmitOptimizePlans starts geographic optimization of the given plans.
func (c *Client) SubmitOptimizePlans(ctx context.Context, planIDs []string) (string, error) {
	jobID, err := c.submit(ctx, "/jobs/optimize-plans", planIDs)
	if err != nil {
		return "", errs.NewSubmissionErrorWithCause("optimize plans", err)
	}
	return jobID, nil
}

// SubmitGenerateSheet starts picking-sheet generation.
func (c *Client) SubmitGenerateSheet(ctx context.Context, req ports.SheetGenerationRequest) (string, error) {
	payload := generateSheetRequest{
		Plans:    make([]planSplitDTO, 0, len(req.Plans)),
		Date:     req.Date.Format(wireDateFormat),
		Segments: make([]segmentDTO, 0, len(req.Segments)),
	}
	for _, split := range req.Plans {
		splitStops := split.SplitStops
		if splitStops == nil {
			splitStops = []int{}
		}
		payload.Plans = append(payload.Plans, planSplitDTO{
			PlanID:     split.PlanID,
			SplitStops: splitStops,
		})
	}
	for _, seg := range req.Segments {
		payload.Segments = append(payload.Segments, segmentDTO{
			EndStopPosition: seg.EndStopPosition(),
			DriverID:        seg.DriverID(),
			PlanID:          seg.PlanID(),
		})
	}

	jobID, err := c.submit(ctx, "/jobs/generate-sheet", payload)
	if err != nil {
		return "", errs.NewSubmissionErrorWithCause("generate sheet", err)
	}
	return jobID, nil
}

// SubmitFetchSortedSchedules starts the per-plan stop schedule fetch.
func (c *Client) SubmitFetchSortedSchedules(ctx context.Context, planID string, date time.Time) (string, error) {
	jobID, err := c.submit(ctx, "/jobs/fetch-sorted-schedules", fetchSortedSchedulesRequest{
		PlanID: planID,
		Date:   date.Format(wireDateFormat),
	})
	if err != nil {
		return "", errs.NewSubmissionErrorWithCause("fetch sorted schedules", err)
	}
	return jobID, nil
}

// GetJob polls the current state of a job. Failures surface as
// errs.PollError; an unknown status string in the response does too,
// since the snapshot cannot be trusted.
func (c *Client) GetJob(ctx context.Context, jobID string, kind job.Kind) (job.Snapshot, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil)
	if err != nil {
		return job.Snapshot{}, errs.NewPollErrorWithCause(jobID, err)
	}

	resp, err := c.do(req)
	if err != nil {
		return job.Snapshot{}, errs.NewPollErrorWithCause(jobID, err)
	}
	defer resp.Body.Close()

	var status jobStatusResponse
	if err = json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return job.Snapshot{}, errs.NewPollErrorWithCause(jobID, err)
	}

	parsedStatus, err := job.StatusFromString(status.Status)
	if err != nil {
		return job.Snapshot{}, errs.NewPollErrorWithCause(jobID, err)
	}

	snapshot, err := job.NewSnapshot(jobID, kind, parsedStatus, status.Progress, status.Message, status.Result)
	if err != nil {
		return job.Snapshot{}, errs.NewPollErrorWithCause(jobID, err)
	}

	return snapshot, nil
}

// DownloadSheet streams the artifact of a completed sheet-generation job.
func (c *Client) DownloadSheet(ctx context.Context, jobID string) (io.ReadCloser, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/jobs/"+url.PathEscape(jobID)+"/download", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	return resp.Body, nil
}

// PlansByDate lists the provider's plans for a date.
func (c *Client) PlansByDate(ctx context.Context, date time.Time) ([]plan.Plan, error) {
	path := "/routing/plans-by-date?date=" + url.QueryEscape(date.Format(wireDateFormat))
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var dtos []planDTO
	if err = json.NewDecoder(resp.Body).Decode(&dtos); err != nil {
		return nil, errs.NewParseErrorWithCause("plans", err)
	}

	plans := make([]plan.Plan, 0, len(dtos))
	for _, dto := range dtos {
		p, planErr := plan.NewPlan(dto.PlanID, dto.RouteID, dto.PlanTitle, dto.StopsAdded, dto.PlanURL)
		if planErr != nil {
			return nil, errs.NewParseErrorWithCause("plans", planErr)
		}
		plans = append(plans, p)
	}

	return plans, nil
}

// DeletePlans removes the given plans from the provider.
func (c *Client) DeletePlans(ctx context.Context, planIDs []string) error {
	body, err := json.Marshal(planIDs)
	if err != nil {
		return err
	}

	req, err := c.newRequest(ctx, http.MethodDelete, "/routing/delete-plans", bytes.NewReader(body))
	if err != nil {
		return err
	}

	resp, err := c.do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}

// submit posts a job request and returns the created job identifier.
func (c *Client) submit(ctx context.Context, path string, payload any) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var created jobCreatedResponse
	if err = json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}
	if created.JobID == "" {
		return "", fmt.Errorf("response carries no job id")
	}

	c.logger.InfoContext(ctx, "Job submitted", "path", path, "jobId", created.JobID)
	return created.JobID, nil
}

func (c *Client) newRequest(ctx context.Context, method string, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		return nil, &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		}
	}
	return resp, nil
}
