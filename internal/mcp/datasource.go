package mcp

import (
	"context"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.Store
// (local run) and HTTPClient (remote via REST API) satisfy this interface.
type DataSource interface {
	QueryWorkoutSets(ctx context.Context, start, end time.Time, exerciseFilter string) ([]models.WorkoutSet, error)
	QueryBodyweight(ctx context.Context, start, end time.Time) ([]models.BodyweightRecord, error)
	GetTrainingSummary(ctx context.Context, start, end time.Time, bucket string) ([]storage.TrainingSummaryPeriod, error)
	GetPersonalRecords(ctx context.Context) ([]storage.PersonalRecord, error)
	GetRelativeStrength(ctx context.Context, exerciseName string) ([]storage.RelativeStrengthPoint, error)
	GetExerciseSummaries(ctx context.Context, start, end time.Time) ([]storage.ExerciseSummary, error)
	GetDataStats(ctx context.Context) (*storage.DataStats, error)
	UnknownExercises(ctx context.Context) ([]string, error)
}

// Compile-time check: *storage.Store satisfies DataSource.
var _ DataSource = (*storage.Store)(nil)
