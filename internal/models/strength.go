package models

// ReliableRepLimit is the highest repetition count for which the Brzycki
// estimate is considered meaningful.
const ReliableRepLimit = 12

// OneRepMax estimates the one-repetition maximum with the Brzycki formula.
// The value is only meaningful up to ReliableRepLimit reps; callers filter.
func OneRepMax(weightKg float64, reps int) float64 {
	return weightKg / (1.0278 - 0.0278*float64(reps))
}

// Volume is the lifted tonnage of a set.
func Volume(weightKg float64, reps int) float64 {
	return weightKg * float64(reps)
}
