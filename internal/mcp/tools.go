package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/liftlog/internal/exercise"
)

// timeRange parses optional start/end bounds. An empty bound leaves the
// range open; a date-only end includes that whole day.
func timeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if startStr != "" {
		start, _, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr != "" {
		var dateOnly bool
		end, dateOnly, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		if dateOnly {
			end = end.AddDate(0, 0, 1)
		}
	}

	if !start.IsZero() && !end.IsZero() && !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("start %s is not before end %s", startStr, endStr)
	}
	return start, end, nil
}

func parseFlexTime(s string) (time.Time, bool, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, false, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, true, nil
	}
	return time.Time{}, false, err
}

// --- Tool definitions ---

var toolGetWorkoutSets = mcp.NewTool("get_workout_sets",
	mcp.WithDescription("Query harmonized strength training sets from both workout apps. Returns time, exercise, set order, reps, weight, comments, volume, estimated 1RM and exercise taxonomy for each set."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to the first recorded set.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD, inclusive for dates). Defaults to the last recorded set.")),
	mcp.WithString("exercise", mcp.Description("Filter by exact exercise name, case-insensitive (e.g. 'barbell squat')")),
)

var toolGetTrainingSummary = mcp.NewTool("get_training_summary",
	mcp.WithDescription("Weekly/monthly aggregated strength training volume. Returns set, rep, tonnage and session totals per period plus a per muscle category breakdown."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to the first recorded set.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to the last recorded set.")),
	mcp.WithString("bucket", mcp.Description("Aggregation period. Defaults to '1 month'."), mcp.Enum("1 week", "1 month")),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Best estimated one-rep max (Brzycki) per exercise, using weighted sets of at most 12 reps."),
)

var toolGetRelativeStrength = mcp.NewTool("get_relative_strength",
	mcp.WithDescription("Relate every set of an exercise to the bodyweight measured that day (or the latest earlier day). Sets of at most 8 reps get weight/bodyweight; higher-rep sets get volume/bodyweight."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name, case-insensitive")),
)

var toolGetExerciseSummaries = mcp.NewTool("get_exercise_summaries",
	mcp.WithDescription("Per-exercise totals (sets, reps, tonnage, max weight, sessions), most trained exercise first."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to the first recorded set.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to the last recorded set.")),
)

var toolGetBodyweight = mcp.NewTool("get_bodyweight",
	mcp.WithDescription("Bodyweight measurements from the daily log and the smart scale (lowest reading per day)."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to the first measurement.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to the last measurement.")),
)

var toolSearchExercises = mcp.NewTool("search_exercises",
	mcp.WithDescription("Search the exercise library. All given filters must match. Returns exercises sorted by name."),
	mcp.WithString("muscles", mcp.Description("Comma-separated muscles, any of which may match (e.g. 'quads, glutes')")),
	mcp.WithBoolean("only_primary", mcp.Description("Match muscles against prime movers only")),
	mcp.WithString("category", mcp.Description("Muscle category of the first prime mover (e.g. legs, back, chest)")),
	mcp.WithString("equipment", mcp.Description("Equipment (barbell, body weight, dumbbell, machine, kettlebell, hex bar, other)")),
	mcp.WithString("mechanic", mcp.Description("Mechanic (isolation, mixed, compound, strength, aerobic)")),
	mcp.WithString("force", mcp.Description("Force (push, pull, isometric, endurance)")),
)

var toolGetSimilarExercises = mcp.NewTool("get_similar_exercises",
	mcp.WithDescription("Return an exercise together with its variation family: its variations, or its parent and sibling variations."),
	mcp.WithString("name", mcp.Required(), mcp.Description("Exercise name, case-insensitive")),
)

var toolListUnknownExercises = mcp.NewTool("list_unknown_exercises",
	mcp.WithDescription("Exercise names found in the workout logs that the exercise library does not know. Their taxonomy fields read 'Unknown'."),
)

// --- Tool handlers ---

func (h *handlers) getWorkoutSets(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := timeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	exerciseFilter := req.GetString("exercise", "")

	sets, err := h.ds.QueryWorkoutSets(ctx, start, end, exerciseFilter)
	if err != nil {
		h.log.Error("mcp get_workout_sets", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(sets)
}

func (h *handlers) getTrainingSummary(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := timeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	bucket := req.GetString("bucket", "1 month")

	summary, err := h.ds.GetTrainingSummary(ctx, start, end, bucket)
	if err != nil {
		h.log.Error("mcp get_training_summary", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(summary)
}

func (h *handlers) getPersonalRecords(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	records, err := h.ds.GetPersonalRecords(ctx)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(records)
}

func (h *handlers) getRelativeStrength(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	points, err := h.ds.GetRelativeStrength(ctx, name)
	if err != nil {
		h.log.Error("mcp get_relative_strength", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(points)
}

func (h *handlers) getExerciseSummaries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := timeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	summaries, err := h.ds.GetExerciseSummaries(ctx, start, end)
	if err != nil {
		h.log.Error("mcp get_exercise_summaries", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(summaries)
}

func (h *handlers) getBodyweight(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := timeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	recs, err := h.ds.QueryBodyweight(ctx, start, end)
	if err != nil {
		h.log.Error("mcp get_bodyweight", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(recs)
}

func (h *handlers) searchExercises(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	c, err := searchCriteria(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(h.lib.SearchExercises(c))
}

func searchCriteria(req mcp.CallToolRequest) (exercise.Criteria, error) {
	var muscles []string
	if v := req.GetString("muscles", ""); v != "" {
		muscles = strings.Split(v, ",")
	}
	return exercise.ParseCriteria(muscles, req.GetBool("only_primary", false),
		req.GetString("category", ""), req.GetString("equipment", ""),
		req.GetString("mechanic", ""), req.GetString("force", ""))
}

func (h *handlers) getSimilarExercises(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name parameter is required"), nil
	}
	if e, ok := h.lib.Lookup(name); ok {
		name = e.Name
	}

	similar, err := h.lib.GetSimilarExercises(name)
	if errors.Is(err, exercise.ErrNotFound) {
		return mcp.NewToolResultError("exercise not found: " + name), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(similar)
}

func (h *handlers) listUnknownExercises(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names, err := h.ds.UnknownExercises(ctx)
	if err != nil {
		h.log.Error("mcp list_unknown_exercises", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(names)
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
