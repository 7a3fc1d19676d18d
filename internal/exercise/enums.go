package exercise

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidValue is returned for enumeration values outside the closed sets.
var ErrInvalidValue = errors.New("invalid value")

// Force is the direction of effort of an exercise.
type Force string

const (
	ForcePush      Force = "push"
	ForcePull      Force = "pull"
	ForceIsometric Force = "isometric"
	ForceEndurance Force = "endurance"
)

// Forces lists every Force in declaration order.
func Forces() []Force {
	return []Force{ForcePush, ForcePull, ForceIsometric, ForceEndurance}
}

// Mechanic classifies how many joints an exercise loads.
type Mechanic string

const (
	MechanicIsolation Mechanic = "isolation"
	MechanicMixed     Mechanic = "mixed"
	MechanicCompound  Mechanic = "compound"
	MechanicStrength  Mechanic = "strength"
	MechanicAerobic   Mechanic = "aerobic"
)

// Mechanics lists every Mechanic in declaration order.
func Mechanics() []Mechanic {
	return []Mechanic{MechanicIsolation, MechanicMixed, MechanicCompound, MechanicStrength, MechanicAerobic}
}

// Equipment is the primary implement an exercise needs.
type Equipment string

const (
	EquipmentBarbell    Equipment = "barbell"
	EquipmentBodyWeight Equipment = "body weight"
	EquipmentDumbbell   Equipment = "dumbbell"
	EquipmentMachine    Equipment = "machine"
	EquipmentKettlebell Equipment = "kettlebell"
	EquipmentHexBar     Equipment = "hex bar"
	EquipmentOther      Equipment = "other"
)

// Equipments lists every Equipment in declaration order.
func Equipments() []Equipment {
	return []Equipment{
		EquipmentBarbell, EquipmentBodyWeight, EquipmentDumbbell, EquipmentMachine,
		EquipmentKettlebell, EquipmentHexBar, EquipmentOther,
	}
}

// Muscle is a trained muscle or muscle group.
type Muscle string

const (
	MuscleAbs          Muscle = "abs"
	MuscleBiceps       Muscle = "biceps"
	MuscleCalves       Muscle = "calves"
	MuscleChest        Muscle = "chest"
	MuscleForearms     Muscle = "forearms"
	MuscleGlutes       Muscle = "glutes"
	MuscleHamstrings   Muscle = "hamstrings"
	MuscleHipAbductors Muscle = "hip abductors"
	MuscleHipAdductors Muscle = "hip adductors"
	MuscleHipFlexors   Muscle = "hip flexors"
	MuscleLats         Muscle = "lats"
	MuscleLowerBack    Muscle = "lower back"
	MuscleMiddleBack   Muscle = "middle back"
	MuscleObliques     Muscle = "obliques"
	MuscleQuads        Muscle = "quads"
	MuscleRearDelts    Muscle = "rear delts"
	MuscleShoulders    Muscle = "shoulders"
	MuscleTibialis     Muscle = "tibialis"
	MuscleTraps        Muscle = "traps"
	MuscleTriceps      Muscle = "triceps"
	MuscleUpperBack    Muscle = "upper back"
)

// MuscleCategory groups muscles into body regions.
type MuscleCategory string

const (
	CategoryBack      MuscleCategory = "back"
	CategoryShoulders MuscleCategory = "shoulders"
	CategoryCore      MuscleCategory = "core"
	CategoryBiceps    MuscleCategory = "biceps"
	CategoryTriceps   MuscleCategory = "triceps"
	CategoryForearms  MuscleCategory = "forearms"
	CategoryLegs      MuscleCategory = "legs"
	CategoryGlutes    MuscleCategory = "glutes"
	CategoryHips      MuscleCategory = "hips"
	CategoryChest     MuscleCategory = "chest"
)

// MuscleCategories lists every MuscleCategory in declaration order.
func MuscleCategories() []MuscleCategory {
	return []MuscleCategory{
		CategoryBack, CategoryShoulders, CategoryCore, CategoryBiceps, CategoryTriceps,
		CategoryForearms, CategoryLegs, CategoryGlutes, CategoryHips, CategoryChest,
	}
}

var muscleCategory = map[Muscle]MuscleCategory{
	MuscleLowerBack:    CategoryBack,
	MuscleMiddleBack:   CategoryBack,
	MuscleUpperBack:    CategoryBack,
	MuscleLats:         CategoryBack,
	MuscleTraps:        CategoryBack,
	MuscleShoulders:    CategoryShoulders,
	MuscleRearDelts:    CategoryShoulders,
	MuscleAbs:          CategoryCore,
	MuscleObliques:     CategoryCore,
	MuscleBiceps:       CategoryBiceps,
	MuscleTriceps:      CategoryTriceps,
	MuscleForearms:     CategoryForearms,
	MuscleQuads:        CategoryLegs,
	MuscleHamstrings:   CategoryLegs,
	MuscleCalves:       CategoryLegs,
	MuscleTibialis:     CategoryLegs,
	MuscleGlutes:       CategoryGlutes,
	MuscleHipAbductors: CategoryHips,
	MuscleHipAdductors: CategoryHips,
	MuscleHipFlexors:   CategoryHips,
	MuscleChest:        CategoryChest,
}

// Muscles lists every Muscle in alphabetical order.
func Muscles() []Muscle {
	return []Muscle{
		MuscleAbs, MuscleBiceps, MuscleCalves, MuscleChest, MuscleForearms, MuscleGlutes,
		MuscleHamstrings, MuscleHipAbductors, MuscleHipAdductors, MuscleHipFlexors, MuscleLats,
		MuscleLowerBack, MuscleMiddleBack, MuscleObliques, MuscleQuads, MuscleRearDelts,
		MuscleShoulders, MuscleTibialis, MuscleTraps, MuscleTriceps, MuscleUpperBack,
	}
}

// Category returns the body region of m.
func (m Muscle) Category() MuscleCategory {
	return muscleCategory[m]
}

// MusclesIn returns the muscles belonging to category c.
func MusclesIn(c MuscleCategory) []Muscle {
	var out []Muscle
	for _, m := range Muscles() {
		if muscleCategory[m] == c {
			out = append(out, m)
		}
	}
	return out
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Join(strings.Fields(strings.ReplaceAll(s, "_", " ")), " ")
}

func parseEnum[T ~string](kind, s string, values []T) (T, error) {
	n := normalize(s)
	for _, v := range values {
		if string(v) == n {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %s %q", ErrInvalidValue, kind, s)
}

// ParseForce accepts any case and either spaces or underscores.
func ParseForce(s string) (Force, error) { return parseEnum("force", s, Forces()) }

// ParseMechanic accepts any case and either spaces or underscores.
func ParseMechanic(s string) (Mechanic, error) { return parseEnum("mechanic", s, Mechanics()) }

// ParseEquipment accepts any case and either spaces or underscores.
func ParseEquipment(s string) (Equipment, error) { return parseEnum("equipment", s, Equipments()) }

// ParseMuscle accepts any case and either spaces or underscores.
func ParseMuscle(s string) (Muscle, error) { return parseEnum("muscle", s, Muscles()) }

// ParseMuscleCategory accepts any case and either spaces or underscores.
func ParseMuscleCategory(s string) (MuscleCategory, error) {
	return parseEnum("muscle category", s, MuscleCategories())
}
