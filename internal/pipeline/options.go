package pipeline

import (
	"time"

	"github.com/claude/liftlog/internal/csvfix"
	"github.com/claude/liftlog/internal/ingest/gymbook"
)

// Inputs names the four export files of one run.
type Inputs struct {
	Progression     string
	GymBook         string
	BodyweightDaily string
	BodyweightScale string
}

// Paths returns the inputs in a fixed order.
func (in Inputs) Paths() []string {
	return []string{in.Progression, in.GymBook, in.BodyweightDaily, in.BodyweightScale}
}

// Options tunes the repair heuristics.
type Options struct {
	CommentPolicy csvfix.CommentPolicy

	// SessionLimit is the duration above which a day is inspected for a
	// stray late entry separated by more than OutlierGap.
	SessionLimit time.Duration
	OutlierGap   time.Duration

	// SmoothGaps compresses same-day gaps strictly between SmoothMin and
	// SmoothMax down to SmoothTarget.
	SmoothGaps   bool
	SmoothMin    time.Duration
	SmoothMax    time.Duration
	SmoothTarget time.Duration

	GymBookEncoding string
	// BodyweightDefaultTime is the clock time (15:04:05) given to date-only
	// bodyweight entries.
	BodyweightDefaultTime string

	// TempDir holds the repaired Progression copy. Empty uses os.TempDir.
	TempDir string
}

// DefaultOptions returns the settings used when nothing is configured.
func DefaultOptions() Options {
	return Options{
		CommentPolicy:         csvfix.PolicyMerge,
		SessionLimit:          3 * time.Hour,
		OutlierGap:            time.Hour,
		SmoothGaps:            true,
		SmoothMin:             time.Hour,
		SmoothMax:             12 * time.Hour,
		SmoothTarget:          5 * time.Minute,
		GymBookEncoding:       gymbook.EncodingUTF8,
		BodyweightDefaultTime: "09:00:00",
	}
}
