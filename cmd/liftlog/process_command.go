package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/claude/liftlog/internal/models"
)

// Right-aligned numeric columns of models.SetColumns and
// models.BodyweightColumns.
var (
	setColumns        = columnsOf(models.SetColumns, 4, 5, 6, 9, 11, 12)
	bodyweightColumns = columnsOf(models.BodyweightColumns, 1)
)

func newProcessCommand(ctx *commandContext) *cobra.Command {
	var format string
	var bodyweight bool

	cmd := &cobra.Command{
		Use:   "process",
		Short: "Run the pipeline and print the unified set table",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(format); err != nil {
				return err
			}

			log := ctx.logger(cmd)
			res, _, err := ctx.runPipeline(cmd, log)
			if err != nil {
				return err
			}

			rep := setReport(res.Sets)
			if bodyweight {
				rep = bodyweightReport(res.Bodyweight)
			}
			if format == formatJSON {
				rep.value = res
			}
			if err := rep.write(cmd, format); err != nil {
				return err
			}
			if format == formatTable && !bodyweight && len(res.UnknownExercises) > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d exercises not in the library: %v\n", len(res.UnknownExercises), res.UnknownExercises)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format (table, csv, json)")
	cmd.Flags().BoolVar(&bodyweight, "bodyweight", false, "Print the bodyweight table instead of the set table")

	return cmd
}

func setReport(sets []models.WorkoutSet) report {
	rows := make([][]string, 0, len(sets))
	for _, s := range sets {
		rows = append(rows, s.Record())
	}
	return report{title: "Sets", columns: setColumns, rows: rows, value: sets}
}

func bodyweightReport(recs []models.BodyweightRecord) report {
	rows := make([][]string, 0, len(recs))
	for _, b := range recs {
		rows = append(rows, b.Record())
	}
	return report{title: "Bodyweight", columns: bodyweightColumns, rows: rows, value: recs}
}
