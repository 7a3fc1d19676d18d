package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/server"
	"github.com/claude/liftlog/internal/storage"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.Path]
		if !ok {
			t.Errorf("unexpected request path: %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestQueryWorkoutSets verifies the HTTP client sends the range and exercise
// filter and parses the JSON array response.
func TestQueryWorkoutSets(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/sets": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("exercise"); got != "Barbell Squat" {
				t.Errorf("exercise=%q, want Barbell Squat", got)
			}
			if got := r.URL.Query().Get("start"); got != "2026-01-01T00:00:00Z" {
				t.Errorf("start=%q, want 2026-01-01T00:00:00Z", got)
			}
			if r.URL.Query().Has("end") {
				t.Errorf("end=%q, want it omitted", r.URL.Query().Get("end"))
			}

			writeTestJSON(t, w, []models.WorkoutSet{
				{ExerciseName: "Barbell Squat", Repetitions: 5, WeightKg: 100},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL + "/")
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	sets, err := client.QueryWorkoutSets(context.Background(), start, time.Time{}, "Barbell Squat")
	if err != nil {
		t.Fatal(err)
	}
	if len(sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(sets))
	}
	if sets[0].WeightKg != 100 {
		t.Errorf("weight=%v, want 100", sets[0].WeightKg)
	}
}

// TestGetTrainingSummary verifies that the bucket is sent as agg.
func TestGetTrainingSummary(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/summary": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("agg"); got != "weekly" {
				t.Errorf("agg=%q, want weekly", got)
			}
			writeTestJSON(t, w, []storage.TrainingSummaryPeriod{
				{Period: "2026-01-05", Strength: storage.StrengthVolumeSummary{WorkingSets: 12}},
			})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	periods, err := client.GetTrainingSummary(context.Background(), time.Time{}, time.Time{}, "1 week")
	if err != nil {
		t.Fatal(err)
	}
	if len(periods) != 1 || periods[0].Strength.WorkingSets != 12 {
		t.Errorf("periods = %+v, want one period with 12 sets", periods)
	}
}

// TestGetDataStats verifies the HTTP client correctly parses a single struct response.
func TestGetDataStats(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/stats": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, storage.DataStats{RunID: "abc", TotalSets: 30})
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	stats, err := client.GetDataStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalSets != 30 || stats.RunID != "abc" {
		t.Errorf("stats = %+v, want run abc with 30 sets", stats)
	}
}

// TestBucketToAgg verifies the bucket-to-agg mapping used for summary requests.
func TestBucketToAgg(t *testing.T) {
	cases := []struct {
		bucket string
		want   string
	}{
		{"1 week", "weekly"},
		{"1 month", "monthly"},
		{"", "monthly"},
	}
	for _, tc := range cases {
		if got := bucketToAgg(tc.bucket); got != tc.want {
			t.Errorf("bucketToAgg(%q) = %q, want %q", tc.bucket, got, tc.want)
		}
	}
}

// TestHTTPClientServerError verifies the client returns an error on non-200 responses.
func TestHTTPClientServerError(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/records": func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"store unavailable"}`))
		},
	})
	defer ts.Close()

	client := NewHTTPClient(ts.URL)
	_, err := client.GetPersonalRecords(context.Background())
	if err == nil {
		t.Fatal("expected error for 500 response")
	}
}

// TestHTTPClientAgainstServer verifies that every DataSource method round
// trips through the real REST API and matches the store it serves.
func TestHTTPClientAgainstServer(t *testing.T) {
	store := testStore()
	ts := httptest.NewServer(server.New(store, nil))
	defer ts.Close()

	ctx := context.Background()
	client := NewHTTPClient(ts.URL)

	sets, err := client.QueryWorkoutSets(ctx, time.Time{}, time.Time{}, "barbell squat")
	if err != nil {
		t.Fatal(err)
	}
	want, _ := store.QueryWorkoutSets(ctx, time.Time{}, time.Time{}, "barbell squat")
	if len(sets) != len(want) {
		t.Errorf("sets = %d, want %d", len(sets), len(want))
	}

	bw, err := client.QueryBodyweight(ctx, time.Time{}, time.Time{})
	if err != nil || len(bw) != 1 {
		t.Errorf("bodyweight = %v, %v, want one record", bw, err)
	}

	periods, err := client.GetTrainingSummary(ctx, time.Time{}, time.Time{}, "1 month")
	if err != nil || len(periods) != 2 {
		t.Errorf("summary = %v, %v, want two months", periods, err)
	}

	records, err := client.GetPersonalRecords(ctx)
	if err != nil || len(records) != 1 {
		t.Errorf("records = %v, %v, want one", records, err)
	}

	points, err := client.GetRelativeStrength(ctx, "Barbell Squat")
	if err != nil || len(points) != 3 {
		t.Errorf("relative strength = %v, %v, want three points", points, err)
	}

	summaries, err := client.GetExerciseSummaries(ctx, time.Time{}, time.Time{})
	if err != nil || len(summaries) != 1 {
		t.Errorf("exercise summaries = %v, %v, want one", summaries, err)
	}

	stats, err := client.GetDataStats(ctx)
	if err != nil || stats.TotalSets != 3 {
		t.Errorf("stats = %+v, %v, want 3 sets", stats, err)
	}

	unknown, err := client.UnknownExercises(ctx)
	if err != nil || len(unknown) != 1 || unknown[0] != "Mystery Move" {
		t.Errorf("unknown = %v, %v, want [Mystery Move]", unknown, err)
	}
}
