package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// HTTPClient implements DataSource by calling the liftlog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// the processed run is served elsewhere (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// bucketToAgg maps MCP bucket values to REST API agg parameter values.
func bucketToAgg(bucket string) string {
	switch bucket {
	case "1 week":
		return "weekly"
	case "1 month":
		return "monthly"
	default:
		return "monthly"
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, params url.Values, what string, v any) error {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", what, err)
	}
	return nil
}

// timeParams encodes the set bounds of a range. Zero bounds are omitted.
func timeParams(start, end time.Time) url.Values {
	v := url.Values{}
	if !start.IsZero() {
		v.Set("start", start.Format(time.RFC3339))
	}
	if !end.IsZero() {
		v.Set("end", end.Format(time.RFC3339))
	}
	return v
}

func (c *HTTPClient) QueryWorkoutSets(ctx context.Context, start, end time.Time, exerciseFilter string) ([]models.WorkoutSet, error) {
	params := timeParams(start, end)
	if exerciseFilter != "" {
		params.Set("exercise", exerciseFilter)
	}

	var sets []models.WorkoutSet
	if err := c.getJSON(ctx, "/api/v1/sets", params, "workout sets", &sets); err != nil {
		return nil, err
	}
	return sets, nil
}

func (c *HTTPClient) QueryBodyweight(ctx context.Context, start, end time.Time) ([]models.BodyweightRecord, error) {
	var recs []models.BodyweightRecord
	if err := c.getJSON(ctx, "/api/v1/bodyweight", timeParams(start, end), "bodyweight", &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

func (c *HTTPClient) GetTrainingSummary(ctx context.Context, start, end time.Time, bucket string) ([]storage.TrainingSummaryPeriod, error) {
	params := timeParams(start, end)
	params.Set("agg", bucketToAgg(bucket))

	var periods []storage.TrainingSummaryPeriod
	if err := c.getJSON(ctx, "/api/v1/summary", params, "training summary", &periods); err != nil {
		return nil, err
	}
	return periods, nil
}

func (c *HTTPClient) GetPersonalRecords(ctx context.Context) ([]storage.PersonalRecord, error) {
	var records []storage.PersonalRecord
	if err := c.getJSON(ctx, "/api/v1/records", nil, "personal records", &records); err != nil {
		return nil, err
	}
	return records, nil
}

func (c *HTTPClient) GetRelativeStrength(ctx context.Context, exerciseName string) ([]storage.RelativeStrengthPoint, error) {
	params := url.Values{}
	params.Set("exercise", exerciseName)

	var points []storage.RelativeStrengthPoint
	if err := c.getJSON(ctx, "/api/v1/relative-strength", params, "relative strength", &points); err != nil {
		return nil, err
	}
	return points, nil
}

func (c *HTTPClient) GetExerciseSummaries(ctx context.Context, start, end time.Time) ([]storage.ExerciseSummary, error) {
	var summaries []storage.ExerciseSummary
	if err := c.getJSON(ctx, "/api/v1/exercises/summary", timeParams(start, end), "exercise summaries", &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (c *HTTPClient) GetDataStats(ctx context.Context) (*storage.DataStats, error) {
	var stats storage.DataStats
	if err := c.getJSON(ctx, "/api/v1/stats", nil, "data stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *HTTPClient) UnknownExercises(ctx context.Context) ([]string, error) {
	var names []string
	if err := c.getJSON(ctx, "/api/v1/exercises/unknown", nil, "unknown exercises", &names); err != nil {
		return nil, err
	}
	return names, nil
}
