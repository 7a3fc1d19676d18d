package gymbook

import "strings"

// Canonical (German) export column names.
const (
	ColDate           = "Datum"
	ColWorkout        = "Training"
	ColTime           = "Zeit"
	ColExercise       = "Übung"
	ColRegion         = "Bereich"
	ColSetType        = "Satz / Aufwärmsatz / Abkühlungssatz"
	ColReps           = "Wiederholungen / Zeit"
	ColWeight         = "Gewicht / Strecke"
	ColNotes          = "Notizen"
	ColSkipped        = "Ausgelassen"
	ColPrimaryMuscles = "Muskelgruppen (Primäre)"
	ColOtherMuscles   = "Muskelgruppen (Sekundäre)"
)

// headerMap maps lowercased English export headers to the German names.
// German headers map onto themselves so lookups never need a second pass.
var headerMap = map[string]string{
	// English
	"date":                      ColDate,
	"workout":                   ColWorkout,
	"time":                      ColTime,
	"exercise":                  ColExercise,
	"region":                    ColRegion,
	"area":                      ColRegion,
	"reps / time":               ColReps,
	"repetitions / time":        ColReps,
	"weight / distance":         ColWeight,
	"notes":                     ColNotes,
	"skipped":                   ColSkipped,
	"muscle groups (primary)":   ColPrimaryMuscles,
	"muscle groups (secondary)": ColOtherMuscles,

	"set / warm-up set / cool-down set": ColSetType,
	"set / warmup set / cooldown set":   ColSetType,

	// German
	"datum":                               ColDate,
	"training":                            ColWorkout,
	"zeit":                                ColTime,
	"übung":                               ColExercise,
	"bereich":                             ColRegion,
	"satz / aufwärmsatz / abkühlungssatz": ColSetType,
	"wiederholungen / zeit":               ColReps,
	"gewicht / strecke":                   ColWeight,
	"notizen":                             ColNotes,
	"ausgelassen":                         ColSkipped,
	"muskelgruppen (primäre)":             ColPrimaryMuscles,
	"muskelgruppen (sekundäre)":           ColOtherMuscles,
}

// NormalizeHeader maps a possibly English column name to its German
// equivalent. Returns the canonical name and true if recognized, or the
// original string and false if unknown.
func NormalizeHeader(raw string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if canonical, ok := headerMap[lower]; ok {
		return canonical, true
	}
	return raw, false
}

// skippedValues are the localized "yes" markers of the skipped column.
var skippedValues = map[string]bool{"ja": true, "yes": true}

// IsSkipped reports whether a skipped-column cell marks the set as not performed.
func IsSkipped(cell string) bool {
	return skippedValues[strings.ToLower(strings.TrimSpace(cell))]
}
