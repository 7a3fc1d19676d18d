package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/claude/liftlog/internal/exercise"
)

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.store.GetDataStats(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleQuerySets(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	sets, err := s.store.QueryWorkoutSets(r.Context(), start, end, r.URL.Query().Get("exercise"))
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sets)
}

func (s *Server) handleQueryBodyweight(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	recs, err := s.store.QueryBodyweight(r.Context(), start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleTrainingSummary(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	var bucket string
	switch agg := r.URL.Query().Get("agg"); agg {
	case "weekly", "":
		bucket = "1 week"
	case "monthly":
		bucket = "1 month"
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "agg must be weekly or monthly"})
		return
	}

	periods, err := s.store.GetTrainingSummary(r.Context(), start, end, bucket)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, periods)
}

func (s *Server) handlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	records, err := s.store.GetPersonalRecords(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleRelativeStrength(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("exercise")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise parameter required"})
		return
	}

	points, err := s.store.GetRelativeStrength(r.Context(), name)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleExerciseSummaries(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	summaries, err := s.store.GetExerciseSummaries(r.Context(), start, end)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleSearchExercises(w http.ResponseWriter, r *http.Request) {
	c, err := parseCriteria(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, s.store.Library().SearchExercises(c))
}

func (s *Server) handleUnknownExercises(w http.ResponseWriter, r *http.Request) {
	names, err := s.store.UnknownExercises(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleGetExercise(w http.ResponseWriter, r *http.Request) {
	name := exerciseParam(r)
	e, ok := s.store.Library().Lookup(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) handleSimilarExercises(w http.ResponseWriter, r *http.Request) {
	name := exerciseParam(r)
	if e, ok := s.store.Library().Lookup(name); ok {
		name = e.Name
	}

	similar, err := s.store.Library().GetSimilarExercises(name)
	if errors.Is(err, exercise.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "exercise not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, similar)
}

func exerciseParam(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

// parseCriteria reads the exercise search filters from a query string.
func parseCriteria(q url.Values) (exercise.Criteria, error) {
	return exercise.ParseCriteria(q["muscle"], q.Get("primary") == "true",
		q.Get("category"), q.Get("equipment"), q.Get("mechanic"), q.Get("force"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseTimeRange reads the optional start and end query parameters. A missing
// bound leaves the range open on that side. Date-only ends include the whole day.
func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr != "" {
		start, err = time.Parse(time.RFC3339, startStr)
		if err != nil {
			start, err = time.Parse("2006-01-02", startStr)
			if err != nil {
				return time.Time{}, time.Time{}, fmt.Errorf("invalid start %q", startStr)
			}
		}
	}

	if endStr != "" {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, fmt.Errorf("invalid end %q", endStr)
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}

	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start must be before end")
	}
	return start, end, nil
}
