// internal/twin/client/client.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"foresight/internal/common/errors"
	"foresight/internal/common/httpclient"
	"foresight/internal/common/logger"
	"foresight/internal/common/metrics"
	"foresight/internal/models"
)

// genericServerError is the fallback message for non-200 responses whose
// body carries no parseable "error" field.
const genericServerError = "Unknown server error"

// Client performs exactly one round trip per prediction and converts every
// failure mode into the Failure variant of PredictionOutcome. It never
// returns an error and never panics past its boundary.
type Client struct {
	config *Config
	http   *httpclient.Client
	logger logger.Logger
}

func New(config *Config, log logger.Logger) *Client {
	return &Client{
		config: config,
		http:   httpclient.New(config.Timeout),
		logger: log.WithFields(map[string]interface{}{
			"component": "twin-client",
		}),
	}
}

// Predict posts the request to the configured endpoint and maps the HTTP
// outcome into a PredictionOutcome. No retries, no cancellation; the only
// timeout is the transport default fixed at construction.
func (c *Client) Predict(ctx context.Context, req *models.PredictionRequest) models.PredictionOutcome {
	start := time.Now()
	metrics.PredictionsInFlight.Inc()
	defer metrics.PredictionsInFlight.Dec()

	outcome := c.predict(ctx, req)

	status := "success"
	if !outcome.Succeeded() {
		status = "failure"
	}
	metrics.PredictionsTotal.WithLabelValues(status).Inc()
	metrics.PredictionDuration.WithLabelValues(status).Observe(time.Since(start).Seconds())

	return outcome
}

func (c *Client) predict(ctx context.Context, req *models.PredictionRequest) models.PredictionOutcome {
	endpoint := c.config.endpoint()

	body, err := json.Marshal(req)
	if err != nil {
		return c.failure(errors.NewResponseDecodeFailedError(endpoint, fmt.Errorf("encode request: %w", err)))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return c.failure(errors.NewTransportFailedError(endpoint, err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return c.failure(errors.NewTransportFailedError(endpoint, err))
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.failure(errors.NewTransportFailedError(endpoint, err))
	}

	if resp.StatusCode != http.StatusOK {
		return c.failure(errors.NewUnexpectedStatusError(resp.StatusCode, errorMessage(respBody)))
	}

	// The server reports application errors in the body even on 200.
	var probe struct {
		Error *string `json:"error"`
	}
	if err := json.Unmarshal(respBody, &probe); err == nil && probe.Error != nil {
		return c.failure(errors.NewServerReportedError(*probe.Error))
	}

	forecast, err := decodeForecast(respBody)
	if err != nil {
		return c.failure(errors.NewResponseDecodeFailedError(endpoint, err))
	}

	c.logger.Info("prediction completed", map[string]interface{}{
		"projectionMonths": req.ProjectionMonths,
		"projectedAge":     forecast.ProjectedAge,
	})

	return models.SuccessOutcome(forecast)
}

func (c *Client) failure(stdErr *errors.StandardError) models.PredictionOutcome {
	c.logger.Warn("prediction failed", map[string]interface{}{
		"errorCode": string(stdErr.Code),
		"details":   stdErr.Details,
	})
	metrics.PredictionFailures.WithLabelValues(string(stdErr.Code)).Inc()
	return models.FailureOutcome(stdErr.Message)
}

// errorMessage extracts the server's "error" field from a response body,
// falling back to the generic message.
func errorMessage(body []byte) string {
	var probe struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &probe); err == nil && probe.Error != "" {
		return probe.Error
	}
	return genericServerError
}

// decodeForecast maps a success body onto the Forecast contract. Every
// required field must be present and well typed; anything else is a decode
// error the caller turns into a Failure outcome.
func decodeForecast(body []byte) (*models.Forecast, error) {
	var raw struct {
		ProjectedAge          *int           `json:"projected_age"`
		HealthIncreasePercent *float64       `json:"health_increase_percent"`
		PredictedSalary       *models.Salary `json:"predicted_salary"`
		RecommendedJobs       *[]string      `json:"recommended_jobs"`
		TimeProjectionMonths  *int           `json:"time_projection_months"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	missing := ""
	switch {
	case raw.ProjectedAge == nil:
		missing = "projected_age"
	case raw.HealthIncreasePercent == nil:
		missing = "health_increase_percent"
	case raw.PredictedSalary == nil:
		missing = "predicted_salary"
	case raw.RecommendedJobs == nil:
		missing = "recommended_jobs"
	case raw.TimeProjectionMonths == nil:
		missing = "time_projection_months"
	}
	if missing != "" {
		return nil, fmt.Errorf("missing required field %q", missing)
	}

	return &models.Forecast{
		ProjectedAge:          *raw.ProjectedAge,
		HealthIncreasePercent: *raw.HealthIncreasePercent,
		PredictedSalary:       *raw.PredictedSalary,
		RecommendedJobs:       *raw.RecommendedJobs,
		TimeProjectionMonths:  *raw.TimeProjectionMonths,
	}, nil
}
