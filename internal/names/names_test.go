package names

import "testing"

// TestSingularize covers the plural endings and the lookalike exceptions.
func TestSingularize(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"Barbell Rows", "Barbell Row", true},
		{"Calf Raises", "Calf Raise", true},
		{"Walking Lunges", "Walking Lunge", true},
		{"Crunches", "Crunch", true},
		{"Bench Press", "Bench Press", false},
		{"Dumbbell Triceps", "Dumbbell Triceps", false},
		{"Squat", "Squat", false},
	}
	for _, tt := range tests {
		got, ok := Singularize(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Singularize(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

// TestSingularMap builds replacements only for plural names.
func TestSingularMap(t *testing.T) {
	m := SingularMap([]string{"Barbell Rows", "Calf Raises", "Crunches", "Deadlift"})
	want := map[string]string{"Barbell Rows": "Barbell Row", "Calf Raises": "Calf Raise", "Crunches": "Crunch"}
	if len(m) != len(want) {
		t.Fatalf("SingularMap = %v, want %v", m, want)
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("SingularMap[%q] = %q, want %q", k, m[k], v)
		}
	}
}

// TestTitleCase keeps connectives lowercase after the first word.
func TestTitleCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"farmer's walk and carry", "Farmer's Walk and Carry"},
		{"pistol squat", "Pistol Squat"},
		{"EZ-Bar Curl", "EZ-Bar Curl"},
		{"Cable Pushdown (With Bar Handle)", "Cable Pushdown (with Bar Handle)"},
		{"in and out", "In and Out"},
	}
	for _, tt := range tests {
		if got := TitleCase(tt.in); got != tt.want {
			t.Errorf("TitleCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestReconcile runs names from both apps through the full chain.
func TestReconcile(t *testing.T) {
	r := NewReconciler()
	tests := []struct{ in, want string }{
		{"Ab Wheel", "Ab Roller"},
		{"Push-Ups", "Pushup"},
		{"Pullups Weighted ", "Weighted Pullup"},
		{"Bulgarian Split Squat ", "Bulgarian Split Squat"},
		{"Crunches", "Weighted Crunch"},
		{"Cable Row", "Seated Cable Row"},
		{"Machine Calf Press", "Calf Press in Leg Press"},
		{"Weighted pistol squat", "Pistol Squat"},
		{"Chest Dip", "Dip"},
		{"Parallel Bar Dips", "Dip"},
		{"Deficit Deadlift", "Barbell Deficit Deadlift"},
		{"Machine Bench Press", "Seated Machine Bench Press"},
		{"Push Down", "Cable Pushdown (with Bar Handle)"},
		{"Unheard Of Exercise", "Unheard Of Exercise"},
	}
	for _, tt := range tests {
		if got := r.Reconcile(tt.in); got != tt.want {
			t.Errorf("Reconcile(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestReconcileIdempotent reconciles every table key and value twice.
func TestReconcileIdempotent(t *testing.T) {
	r := NewReconciler()
	var inputs []string
	for _, table := range []map[string]string{gymBookToProgression, progressionToGymBook, renameInBoth} {
		for k, v := range table {
			inputs = append(inputs, k, v)
		}
	}
	inputs = append(inputs, "crunch", "push-up", "Calf Raises", "Barbell Rows")
	for _, in := range inputs {
		once := r.Reconcile(in)
		if twice := r.Reconcile(once); twice != once {
			t.Errorf("Reconcile(%q) = %q, but Reconcile(%q) = %q", in, once, once, twice)
		}
	}
}

// TestMap covers every observed name.
func TestMap(t *testing.T) {
	m := NewReconciler().Map([]string{"Hammer Curls", "Hammer Curls", "Squat"})
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if m["Hammer Curls"] != "Dumbbell Hammer Curl" {
		t.Errorf("Map[Hammer Curls] = %q", m["Hammer Curls"])
	}
}
