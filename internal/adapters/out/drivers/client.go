// Package drivers implements ports.DriverDirectory against the driver
// reference-data HTTP API.
package drivers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"routeadmin/internal/core/domain/model/driver"
	"routeadmin/internal/pkg/errs"
)

const defaultRequestTimeout = 15 * time.Second

type driverDTO struct {
	ID        int    `json:"id"`
	FirstName string `json:"firstName"`
	Surname   string `json:"surname"`
}

type driversPageResponse struct {
	Data []driverDTO `json:"data"`
}

// Client talks to the driver directory. Safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a driver directory client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultRequestTimeout},
		logger:     logger.With("component", "drivers_client"),
	}
}

// GetDrivers returns one page of drivers. Pages are 1-based.
func (c *Client) GetDrivers(ctx context.Context, pageNumber int, pageSize int) ([]driver.Driver, error) {
	url := fmt.Sprintf("%s/drivers?pageNumber=%d&pageSize=%d", c.baseURL, pageNumber, pageSize)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var page driversPageResponse
	if err = json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, errs.NewParseErrorWithCause("drivers", err)
	}

	result := make([]driver.Driver, 0, len(page.Data))
	for _, dto := range page.Data {
		d, driverErr := driver.NewDriver(dto.ID, dto.FirstName, dto.Surname)
		if driverErr != nil {
			return nil, errs.NewParseErrorWithCause("drivers", driverErr)
		}
		result = append(result, d)
	}

	return result, nil
}
