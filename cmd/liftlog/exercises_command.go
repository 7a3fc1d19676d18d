package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/claude/liftlog/internal/exercise"
)

var exerciseColumns = columnsOf([]string{"Name", "Category", "Equipment", "Mechanic", "Force", "Prime Muscles", "Variation Of"})

func newExercisesCommand() *cobra.Command {
	var (
		muscles     []string
		onlyPrimary bool
		category    string
		equipment   string
		mechanic    string
		force       string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:         "exercises",
		Short:       "Search the exercise library",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := exercise.ParseCriteria(muscles, onlyPrimary, category, equipment, mechanic, force)
			if err != nil {
				return err
			}
			found := exercise.Default().SearchExercises(c)
			return writeExercises(cmd, "Exercises", found, asJSON)
		},
	}

	cmd.Flags().StringSliceVar(&muscles, "muscle", nil, "Muscle to match; repeat or comma-separate for any of several")
	cmd.Flags().BoolVar(&onlyPrimary, "primary", false, "Match muscles against prime movers only")
	cmd.Flags().StringVar(&category, "category", "", "Muscle category of the first prime mover")
	cmd.Flags().StringVar(&equipment, "equipment", "", "Equipment")
	cmd.Flags().StringVar(&mechanic, "mechanic", "", "Mechanic")
	cmd.Flags().StringVar(&force, "force", "", "Force")
	cmd.PersistentFlags().BoolVar(&asJSON, "json", false, "Print JSON instead of a table")

	cmd.AddCommand(newSimilarCommand(&asJSON))

	return cmd
}

func newSimilarCommand(asJSON *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "similar NAME",
		Short: "Show an exercise together with its variation family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := exercise.Default()
			name := args[0]
			if e, ok := lib.Lookup(name); ok {
				name = e.Name
			}
			family, err := lib.GetSimilarExercises(name)
			if err != nil {
				return err
			}
			return writeExercises(cmd, "Family of "+name, family, *asJSON)
		},
	}
}

func writeExercises(cmd *cobra.Command, title string, exercises []exercise.Exercise, asJSON bool) error {
	if asJSON {
		return report{value: exercises}.write(cmd, formatJSON)
	}
	if len(exercises) == 0 {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "No matching exercises")
		return err
	}
	rows := make([][]string, 0, len(exercises))
	for _, e := range exercises {
		prime := make([]string, 0, len(e.PrimeMuscles))
		for _, m := range e.PrimeMuscles {
			prime = append(prime, string(m))
		}
		rows = append(rows, []string{
			e.Name,
			string(e.MuscleCategory()),
			string(e.Equipment),
			string(e.Mechanic),
			string(e.Force),
			strings.Join(prime, ", "),
			e.VariationOf,
		})
	}
	return report{title: title, columns: exerciseColumns, rows: rows}.write(cmd, formatTable)
}
