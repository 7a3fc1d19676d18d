// Package pipeline turns the raw workout and bodyweight exports into the
// unified, enriched set table. Stages run in sequence and each takes and
// returns fresh values, so every stage can be called on its own.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/claude/liftlog/internal/bodyweight"
	"github.com/claude/liftlog/internal/exercise"
	"github.com/claude/liftlog/internal/ingest"
	"github.com/claude/liftlog/internal/ingest/gymbook"
	"github.com/claude/liftlog/internal/ingest/progression"
	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/names"
)

// Result is the output of one run.
type Result struct {
	RunID            string                    `json:"run_id"`
	Sets             []models.WorkoutSet       `json:"sets"`
	Bodyweight       []models.BodyweightRecord `json:"bodyweight"`
	UnknownExercises []string                  `json:"unknown_exercises"`
	Stats            Stats                     `json:"stats"`
}

// Runner executes the pipeline against one exercise library.
type Runner struct {
	lib        *exercise.Library
	reconciler *names.Reconciler
	opts       Options
	log        *slog.Logger
}

// New creates a Runner. A nil logger discards output.
func New(lib *exercise.Library, opts Options, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Runner{lib: lib, reconciler: names.NewReconciler(), opts: opts, log: log}
}

// Run loads the four inputs and produces the unified tables. Any structural
// or conversion error aborts the run without a partial result.
func (r *Runner) Run(ctx context.Context, in Inputs) (*Result, error) {
	if err := ingest.CheckFiles(in.Paths()...); err != nil {
		return nil, err
	}
	res := &Result{RunID: uuid.New().String()}
	res.Stats.DroppedColumns = make(map[string][]string)
	log := r.log.With("run", res.RunID)

	// Phase 1: load and pre-clean both workout exports
	prog, err := progression.Load(in.Progression, progression.Options{Policy: r.opts.CommentPolicy, TempDir: r.opts.TempDir})
	if err != nil {
		return nil, fmt.Errorf("loading progression export: %w", err)
	}
	gb, err := gymbook.Load(in.GymBook, gymbook.Options{Encoding: r.opts.GymBookEncoding})
	if err != nil {
		return nil, fmt.Errorf("loading gymbook export: %w", err)
	}
	res.Stats.ProgressionRows = prog.Len()
	res.Stats.GymBookRows = gb.Len()

	prog, progReport := PrecleanProgression(prog)
	gb, gbReport := PrecleanGymBook(gb)
	res.Stats.SkippedSets = gbReport.Skipped
	res.Stats.DroppedColumns[models.SourceProgression] = progReport.Dropped
	res.Stats.DroppedColumns[models.SourceGymBook] = gbReport.Dropped
	log.Info("pre-cleaned exports",
		"progression_dropped", progReport.Dropped,
		"gymbook_dropped", gbReport.Dropped,
		"skipped_sets", gbReport.Skipped)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 2: harmonize into one set table
	progSets, err := HarmonizeProgression(prog)
	if err != nil {
		return nil, fmt.Errorf("harmonizing progression export: %w", err)
	}
	gbSets, err := HarmonizeGymBook(gb)
	if err != nil {
		return nil, fmt.Errorf("harmonizing gymbook export: %w", err)
	}
	recs := ReconcileNames(Union(progSets, gbSets), r.reconciler)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 3: post-clean and enrich
	sets, report := Postclean(recs, r.opts)
	res.Stats.ZeroRepSets = report.ZeroRepSets
	res.Stats.DroppedOutliers = report.DroppedOutliers
	res.Stats.SmoothedGaps = report.SmoothedGaps
	if report.ZeroRepSets > 0 {
		log.Warn("dropped sets without repetitions", "count", report.ZeroRepSets)
	}
	log.Info("repaired sessions", "dropped_outliers", report.DroppedOutliers, "smoothed_gaps", report.SmoothedGaps)

	res.Sets, res.UnknownExercises = Enrich(sets, r.lib)
	if len(res.UnknownExercises) > 0 {
		log.Warn("exercises missing from library", "count", len(res.UnknownExercises), "names", res.UnknownExercises)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Phase 4: bodyweight
	res.Bodyweight, err = bodyweight.Load(in.BodyweightDaily, in.BodyweightScale, r.opts.BodyweightDefaultTime)
	if err != nil {
		return nil, err
	}

	res.Stats.Sets = len(res.Sets)
	res.Stats.BodyweightRecords = len(res.Bodyweight)
	res.Stats.UnknownExercises = len(res.UnknownExercises)
	log.Info("pipeline finished", "sets", res.Stats.Sets, "bodyweight_records", res.Stats.BodyweightRecords)
	return res, nil
}
