package names

// gymBookToProgression maps GymBook spellings onto Progression spellings.
// Keys are kept as the app exports them, trailing spaces included.
var gymBookToProgression = map[string]string{
	"Ab Wheel":                           "Ab Roller",
	"Alternating Dumbbell Preacher Curl": "Alternating Dumbbell Curl",
	"Arnold Press":                       "Arnold Dumbbell Press (Seated)",
	"Back Extension":                     "Machine Hyperextension",
	"Bulgarian Split Squat ":             "Bulgarian Split Squat",
	"Cable Fly":                          "Cable Back Fly",
	"Calf Press in Leg Press":            "Machine Calf Press",
	"Chin-Up":                            "Chinup",
	"Concentration Curl":                 "Dumbbell Concentration Curl",
	"Crunch":                             "Weighted Crunch",
	"Decline Push-Up":                    "Decline Pushup",
	"Dumbbell Lateral Raise":             "Dumbbell Side Raise",
	"Dumbbell Press":                     "Dumbbell Shoulder Press",
	"Dumbbell Row":                       "Bent-Over Dumbbell Row",
	"Dumbbell Skullcrusher":              "Lying Dumbbell Skull Crusher",
	"Hammer Curl":                        "Dumbbell Hammer Curl",
	"Kneeling Cable Crunch":              "Cable Crunch",
	"Lat Pull-Down":                      "Machine Lat Pulldown",
	"Leg Extension":                      "Machine Leg Extension",
	"Leg Press":                          "Machine Leg Press",
	"Low Cable One-Arm Lateral Raise":    "Cable Side Raise",
	"Lying Dumbbell Triceps Extension":   "Dumbbell Triceps Extension",
	"Lying EZ-Bar Triceps Extension":     "Lying Barbell Skull Crusher",
	"Lying Leg Curl":                     "Machine Lying Leg Curl",
	"Machine Back Extension":             "Machine Hyperextension",
	"Machine Hip Abduction":              "Machine Thigh Abduction (Out)",
	"Machine Trunk Rotation":             "Torso Rotation Machine",
	"One-Leg Leg Extension":              "Machine Single-Leg Extension",
	"Power Clean":                        "Barbell Power Clean",
	"Pullups Weighted ":                  "Weighted Pullup",
	"Push Down":                          "Cable Pushdown (with Bar Handle)",
	"Push Press":                         "Barbell Push Press",
	"Push-Up":                            "Pushup",
	"Seated Leg Curl":                    "Machine Leg Curl",
	"Seated Machine Hip Abduction":       "Machine Thigh Abduction (Out)",
	"Seated Machine Row":                 "Machine Row",
	"Standing Calf Raise":                "Machine Calf Raise",
	"Standing Machine Calf Raise":        "Machine Calf Raise",
	"Wide-Grip Lat Pull-Down":            "Wide-Grip Machine Lat Pulldown",
}

// progressionToGymBook maps Progression spellings onto GymBook spellings.
var progressionToGymBook = map[string]string{
	"Barbell Curl":                       "EZ-Bar Curl",
	"Bent-Over Barbell Row":              "Barbell Row",
	"Butterfly Reverse":                  "Reverse Machine Fly",
	"Cable Row":                          "Seated Cable Row",
	"Dumbbell Pullover (Targeting back)": "Dumbbell Lat Pullover",
	"Farmer's Walk (with Dumbbells)":     "Farmers Walk",
	"Farmer's Walk (with Weight Plate)":  "Farmers Walk",
	"Machine Calf Press":                 "Calf Press In Leg Press",
	"Press around":                       "Press Around",
	"Romanian Deadlift":                  "Barbell Romanian Deadlift",
	"Stiff-Leg Deadlift (Wide Stance)":   "Straight-Leg Barbell Deadlift",
	"Sumo Deadlift":                      "Barbell Sumo Deadlift",
	"Weighted pistol squat":              "Pistol squat",
}

// renameInBoth moves names from either app to a third spelling.
var renameInBoth = map[string]string{
	// GymBook
	"Close-Grip Lat Pull-Down": "Close-Grip Machine Lat Pull-Down",
	"Parallel Bar Dip":         "Dip",
	// Progression
	"Barbell Shrug (Behind the Back)": "Barbell Shrug",
	"Chest Dip":                       "Dip",
	"Deficit Deadlift":                "Barbell Deficit Deadlift",
	"Machine Bench Press":             "Seated Machine Bench Press",
}
