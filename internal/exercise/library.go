// Package exercise holds the exercise taxonomy: closed enumerations for
// force, mechanic, equipment and muscles, and an indexed in-memory library
// loaded from the embedded catalog.
package exercise

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

// ErrNotFound is returned when no exercise has the requested name.
var ErrNotFound = errors.New("exercise not found")

// Exercise is one catalog entry. VariationOf names the parent exercise and may
// point at a name the library does not hold.
type Exercise struct {
	Name             string    `yaml:"name" json:"name"`
	Force            Force     `yaml:"force" json:"force"`
	Mechanic         Mechanic  `yaml:"mechanic" json:"mechanic"`
	Equipment        Equipment `yaml:"equipment" json:"equipment"`
	PrimeMuscles     []Muscle  `yaml:"prime" json:"prime_muscles"`
	SecondaryMuscles []Muscle  `yaml:"secondary,omitempty" json:"secondary_muscles,omitempty"`
	TertiaryMuscles  []Muscle  `yaml:"tertiary,omitempty" json:"tertiary_muscles,omitempty"`
	VariationOf      string    `yaml:"variation_of,omitempty" json:"variation_of,omitempty"`
	Description      string    `yaml:"description,omitempty" json:"description,omitempty"`
}

// MuscleCategory is the category of the first prime muscle.
func (e Exercise) MuscleCategory() MuscleCategory {
	if len(e.PrimeMuscles) == 0 {
		return ""
	}
	return e.PrimeMuscles[0].Category()
}

// Muscles returns prime, secondary and tertiary muscles in that order.
func (e Exercise) Muscles() []Muscle {
	out := make([]Muscle, 0, len(e.PrimeMuscles)+len(e.SecondaryMuscles)+len(e.TertiaryMuscles))
	out = append(out, e.PrimeMuscles...)
	out = append(out, e.SecondaryMuscles...)
	return append(out, e.TertiaryMuscles...)
}

// clone returns a copy that shares no muscle slices with e.
func (e Exercise) clone() Exercise {
	e.PrimeMuscles = slices.Clone(e.PrimeMuscles)
	e.SecondaryMuscles = slices.Clone(e.SecondaryMuscles)
	e.TertiaryMuscles = slices.Clone(e.TertiaryMuscles)
	return e
}

// Validate checks the name, the prime muscles and every enumeration value.
func (e Exercise) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return fmt.Errorf("%w: empty exercise name", ErrInvalidValue)
	}
	if len(e.PrimeMuscles) == 0 {
		return fmt.Errorf("%w: %s has no prime muscle", ErrInvalidValue, e.Name)
	}
	if !slices.Contains(Forces(), e.Force) {
		return fmt.Errorf("%w: %s force %q", ErrInvalidValue, e.Name, e.Force)
	}
	if !slices.Contains(Mechanics(), e.Mechanic) {
		return fmt.Errorf("%w: %s mechanic %q", ErrInvalidValue, e.Name, e.Mechanic)
	}
	if !slices.Contains(Equipments(), e.Equipment) {
		return fmt.Errorf("%w: %s equipment %q", ErrInvalidValue, e.Name, e.Equipment)
	}
	for _, m := range e.Muscles() {
		if _, ok := muscleCategory[m]; !ok {
			return fmt.Errorf("%w: %s muscle %q", ErrInvalidValue, e.Name, m)
		}
	}
	return nil
}

// Criteria filters SearchExercises. Zero-valued fields do not filter.
// Muscles match any listed muscle; OnlyPrimary restricts that match to prime
// muscles.
type Criteria struct {
	Muscles        []Muscle
	OnlyPrimary    bool
	MuscleCategory MuscleCategory
	Equipment      Equipment
	Mechanic       Mechanic
	Force          Force
}

// ParseCriteria builds Criteria from user-supplied filter strings. Empty
// strings leave the matching field unset.
func ParseCriteria(muscles []string, onlyPrimary bool, category, equipment, mechanic, force string) (Criteria, error) {
	c := Criteria{OnlyPrimary: onlyPrimary}
	for _, v := range muscles {
		if strings.TrimSpace(v) == "" {
			continue
		}
		m, err := ParseMuscle(v)
		if err != nil {
			return c, err
		}
		c.Muscles = append(c.Muscles, m)
	}

	var err error
	if category != "" {
		if c.MuscleCategory, err = ParseMuscleCategory(category); err != nil {
			return c, err
		}
	}
	if equipment != "" {
		if c.Equipment, err = ParseEquipment(equipment); err != nil {
			return c, err
		}
	}
	if mechanic != "" {
		if c.Mechanic, err = ParseMechanic(mechanic); err != nil {
			return c, err
		}
	}
	if force != "" {
		if c.Force, err = ParseForce(force); err != nil {
			return c, err
		}
	}
	return c, nil
}

type nameSet map[string]struct{}

func (s nameSet) add(name string) { s[name] = struct{}{} }

// Library is an indexed collection of exercises keyed by name. It is safe
// for concurrent use.
type Library struct {
	mu        sync.RWMutex
	exercises map[string]Exercise
	folded    map[string]string

	byMuscle      map[Muscle]nameSet
	byPrimeMuscle map[Muscle]nameSet
	byCategory    map[MuscleCategory]nameSet
	byEquipment   map[Equipment]nameSet
	byMechanic    map[Mechanic]nameSet
	byForce       map[Force]nameSet
	variations    map[string]nameSet
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	l := &Library{exercises: make(map[string]Exercise)}
	l.resetIndices()
	return l
}

func (l *Library) resetIndices() {
	l.folded = make(map[string]string)
	l.byMuscle = make(map[Muscle]nameSet)
	l.byPrimeMuscle = make(map[Muscle]nameSet)
	l.byCategory = make(map[MuscleCategory]nameSet)
	l.byEquipment = make(map[Equipment]nameSet)
	l.byMechanic = make(map[Mechanic]nameSet)
	l.byForce = make(map[Force]nameSet)
	l.variations = make(map[string]nameSet)
}

func addTo[K comparable](idx map[K]nameSet, key K, name string) {
	s, ok := idx[key]
	if !ok {
		s = make(nameSet)
		idx[key] = s
	}
	s.add(name)
}

func (l *Library) index(e Exercise) {
	l.folded[strings.ToLower(e.Name)] = e.Name
	for _, m := range e.Muscles() {
		addTo(l.byMuscle, m, e.Name)
	}
	for _, m := range e.PrimeMuscles {
		addTo(l.byPrimeMuscle, m, e.Name)
	}
	addTo(l.byCategory, e.MuscleCategory(), e.Name)
	addTo(l.byEquipment, e.Equipment, e.Name)
	addTo(l.byMechanic, e.Mechanic, e.Name)
	addTo(l.byForce, e.Force, e.Name)
	if e.VariationOf != "" {
		addTo(l.variations, e.VariationOf, e.Name)
	}
}

// AddExercise validates and stores a copy of e. Replacing an existing name rebuilds
// every index so no stale entries remain.
func (l *Library) AddExercise(e Exercise) error {
	if err := e.Validate(); err != nil {
		return err
	}
	e = e.clone()
	l.mu.Lock()
	defer l.mu.Unlock()

	_, replaced := l.exercises[e.Name]
	l.exercises[e.Name] = e
	if !replaced {
		l.index(e)
		return nil
	}
	l.resetIndices()
	for _, ex := range l.exercises {
		l.index(ex)
	}
	return nil
}

// GetExercise returns the exercise stored under exactly name.
func (l *Library) GetExercise(name string) (Exercise, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	e, ok := l.exercises[name]
	if !ok {
		return Exercise{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return e.clone(), nil
}

// Lookup resolves name exactly, then ignoring case.
func (l *Library) Lookup(name string) (Exercise, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if e, ok := l.exercises[name]; ok {
		return e.clone(), true
	}
	key, ok := l.folded[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Exercise{}, false
	}
	return l.exercises[key].clone(), true
}

// Len returns the number of exercises.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.exercises)
}

// Names returns every exercise name, sorted.
func (l *Library) Names() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return slices.Sorted(maps.Keys(l.exercises))
}

// SearchExercises returns the exercises matching every set filter, sorted by
// name. An empty Criteria returns the whole library.
func (l *Library) SearchExercises(c Criteria) []Exercise {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var result nameSet
	narrow := func(s nameSet) {
		if result == nil {
			result = make(nameSet, len(s))
			for n := range s {
				result.add(n)
			}
			return
		}
		for n := range result {
			if _, ok := s[n]; !ok {
				delete(result, n)
			}
		}
	}

	if len(c.Muscles) > 0 {
		idx := l.byMuscle
		if c.OnlyPrimary {
			idx = l.byPrimeMuscle
		}
		union := make(nameSet)
		for _, m := range c.Muscles {
			for n := range idx[m] {
				union.add(n)
			}
		}
		narrow(union)
	}
	if c.MuscleCategory != "" {
		narrow(l.byCategory[c.MuscleCategory])
	}
	if c.Equipment != "" {
		narrow(l.byEquipment[c.Equipment])
	}
	if c.Mechanic != "" {
		narrow(l.byMechanic[c.Mechanic])
	}
	if c.Force != "" {
		narrow(l.byForce[c.Force])
	}

	if result == nil {
		return l.collect(slices.Collect(maps.Keys(l.exercises)))
	}
	return l.collect(slices.Collect(maps.Keys(result)))
}

// GetExercisesByMuscle returns exercises training m, sorted by name.
func (l *Library) GetExercisesByMuscle(m Muscle, onlyPrimary bool) []Exercise {
	return l.SearchExercises(Criteria{Muscles: []Muscle{m}, OnlyPrimary: onlyPrimary})
}

// GetSimilarExercises returns the exercise itself plus its one-level family:
// a parent brings its variations, a variation brings its parent (when held)
// and its siblings.
func (l *Library) GetSimilarExercises(name string) ([]Exercise, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.exercises[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	family := nameSet{e.Name: {}}
	if e.VariationOf == "" {
		for n := range l.variations[e.Name] {
			family.add(n)
		}
	} else {
		for n := range l.variations[e.VariationOf] {
			family.add(n)
		}
		if _, ok := l.exercises[e.VariationOf]; ok {
			family.add(e.VariationOf)
		}
	}
	return l.collect(slices.Collect(maps.Keys(family))), nil
}

// DanglingVariations maps each missing parent name to the variations that
// reference it.
func (l *Library) DanglingVariations() map[string][]string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make(map[string][]string)
	for parent, children := range l.variations {
		if _, ok := l.exercises[parent]; ok {
			continue
		}
		out[parent] = slices.Sorted(maps.Keys(children))
	}
	return out
}

// collect resolves names to exercises sorted by name. Callers hold mu.
func (l *Library) collect(names []string) []Exercise {
	slices.Sort(names)
	out := make([]Exercise, 0, len(names))
	for _, n := range names {
		out = append(out, l.exercises[n].clone())
	}
	return out
}
