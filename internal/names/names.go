// Package names reconciles the exercise vocabularies of the two workout apps
// into one spelling per exercise.
package names

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// lowercaseWords stay lowercase unless they open the name.
var lowercaseWords = map[string]bool{"and": true, "in": true, "with": true}

// pluralLookalikes end in "s" without being plural.
var pluralLookalikes = []string{"Biceps", "Triceps"}

// Singularize returns the singular form of a plural exercise name and
// whether a rule applied.
func Singularize(name string) (string, bool) {
	for _, w := range pluralLookalikes {
		if strings.HasSuffix(name, w) {
			return name, false
		}
	}
	switch {
	case strings.HasSuffix(name, "es"):
		if strings.Contains(name, "Lunges") || strings.Contains(name, "Raises") {
			return name[:len(name)-1], true
		}
		return name[:len(name)-2], true
	case strings.HasSuffix(name, "s") && !strings.HasSuffix(name, "ss"):
		return name[:len(name)-1], true
	}
	return name, false
}

// SingularMap builds the plural to singular replacements for the observed names.
func SingularMap(observed []string) map[string]string {
	m := make(map[string]string)
	for _, n := range observed {
		if s, ok := Singularize(n); ok {
			m[n] = s
		}
	}
	return m
}

// TitleCase capitalizes every word, keeping the rest of each word as is.
// "and", "in" and "with" are lowercased after the first word.
func TitleCase(name string) string {
	caser := cases.Title(language.Und, cases.NoLower)
	words := strings.Fields(name)
	for i, w := range words {
		if i > 0 && lowercaseWords[strings.ToLower(strings.Trim(w, "()"))] {
			words[i] = strings.ToLower(w)
			continue
		}
		words[i] = caser.String(w)
	}
	return strings.Join(words, " ")
}

// maxRounds bounds the fixpoint iteration in Reconcile.
const maxRounds = 4

// Reconciler maps exercise names from either app onto one spelling.
type Reconciler struct {
	tables []map[string]string
}

// NewReconciler returns a reconciler over the built-in equivalence tables,
// applied in order GymBook to Progression, Progression to GymBook, then the
// renames shared by both. Keys match ignoring case and surrounding spaces.
func NewReconciler() *Reconciler {
	r := &Reconciler{}
	for _, t := range []map[string]string{gymBookToProgression, progressionToGymBook, renameInBoth} {
		r.tables = append(r.tables, foldKeys(t))
	}
	return r
}

func foldKeys(t map[string]string) map[string]string {
	out := make(map[string]string, len(t))
	for k, v := range t {
		out[fold(k)] = v
	}
	return out
}

func fold(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// Reconcile maps one name through singularization, the equivalence tables
// and title casing. The chain repeats until the name stops changing, so
// reconciling a reconciled name is a no-op.
func (r *Reconciler) Reconcile(name string) string {
	cur := r.round(name)
	for i := 1; i < maxRounds; i++ {
		next := r.round(cur)
		if next == cur {
			break
		}
		cur = next
	}
	return cur
}

func (r *Reconciler) round(name string) string {
	name = strings.TrimSpace(name)
	if s, ok := Singularize(name); ok {
		name = s
	}
	for _, t := range r.tables {
		if v, ok := t[fold(name)]; ok {
			name = v
		}
	}
	return TitleCase(name)
}

// Map reconciles every distinct observed name. The result covers every input.
func (r *Reconciler) Map(observed []string) map[string]string {
	out := make(map[string]string, len(observed))
	for _, n := range observed {
		if _, ok := out[n]; !ok {
			out[n] = r.Reconcile(n)
		}
	}
	return out
}
