// Package googlemaps resolves station ground elevations through the Google
// Elevation API.
package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/NonGT/ddpm-tools/internal/observability"
)

// Client implements domain.ElevationResolver using the Google Elevation
// API. A transport-level failure from the API (non-200) is retried with a
// short pause; an in-band failure (HTTP 200 with a non-OK API status) is a
// definitive "no elevation here" and is not retried.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	maxRetries int
	backoff    time.Duration
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// NewClient creates a Google Elevation API client.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL:    "https://maps.googleapis.com/maps/api/elevation/json",
		maxRetries: 3,
		backoff:    200 * time.Millisecond,
		logger:     logger,
		metrics:    metrics,
	}
}

// Elevation resolves the ground elevation at a coordinate. A nil result
// with a nil error means the API answered but had no elevation for the
// point.
func (c *Client) Elevation(ctx context.Context, lat, lon float64) (*float64, error) {
	params := url.Values{
		"locations": {fmt.Sprintf("%v,%v", lat, lon)},
		"key":       {c.apiKey},
	}
	fullURL := c.baseURL + "?" + params.Encode()

	var lastStatus int
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.backoff):
			}
		}

		elevation, status, err := c.doRequest(ctx, fullURL)
		if err != nil {
			c.metrics.ElevationRequests.WithLabelValues("error").Inc()
			return nil, err
		}
		if status == http.StatusOK {
			if elevation == nil {
				c.metrics.ElevationRequests.WithLabelValues("unavailable").Inc()
			} else {
				c.metrics.ElevationRequests.WithLabelValues("resolved").Inc()
			}
			return elevation, nil
		}

		lastStatus = status
		c.logger.Warn("elevation API returned non-200, retrying",
			"status", status,
			"attempt", attempt+1,
		)
	}

	c.metrics.ElevationRequests.WithLabelValues("error").Inc()
	return nil, fmt.Errorf("elevation API error after %d attempts: status %d", c.maxRetries+1, lastStatus)
}

func (c *Client) doRequest(ctx context.Context, fullURL string) (*float64, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("elevation request: %w", err)
	}
	defer resp.Body.Close()
	c.metrics.ElevationAPIDuration.Observe(time.Since(start).Seconds())

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, nil
	}

	var apiResp response
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, 0, fmt.Errorf("decode response: %w", err)
	}

	if apiResp.Status != "OK" || len(apiResp.Results) == 0 {
		return nil, http.StatusOK, nil
	}
	elevation := apiResp.Results[0].Elevation
	return &elevation, http.StatusOK, nil
}

// Google Elevation API response types.

type response struct {
	Status  string   `json:"status"`
	Results []result `json:"results"`
}

type result struct {
	Elevation float64 `json:"elevation"`
}
