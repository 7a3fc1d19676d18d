package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatCSV   = "csv"
	formatJSON  = "json"
)

func checkFormat(format string) error {
	switch format {
	case formatTable, formatCSV, formatJSON:
		return nil
	}
	return fmt.Errorf("unknown format %q (want table, csv or json)", format)
}

type column struct {
	header string
	right  bool
}

// columnsOf builds columns from headers, right-aligning the listed indices.
func columnsOf(headers []string, right ...int) []column {
	cols := make([]column, len(headers))
	for i, h := range headers {
		cols[i] = column{header: h}
	}
	for _, i := range right {
		cols[i].right = true
	}
	return cols
}

// report is one command result. JSON output encodes value; CSV and table
// output use columns and rows.
type report struct {
	title   string
	columns []column
	rows    [][]string
	value   any
}

func (r report) headers() []string {
	out := make([]string, len(r.columns))
	for i, c := range r.columns {
		out[i] = c.header
	}
	return out
}

func (r report) write(cmd *cobra.Command, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(r.value)
	case formatCSV:
		w := csv.NewWriter(out)
		if err := w.Write(r.headers()); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		if err := w.WriteAll(r.rows); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		return nil
	}
	_, err := fmt.Fprintln(out, r.render(out))
	return err
}

// render draws the report as a table titled with its row count. Terminals
// get rounded borders; pipes and files get plain ASCII.
func (r report) render(w io.Writer) string {
	if len(r.columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	if isTerminal(w) {
		tw.SetStyle(table.StyleRounded)
	} else {
		tw.SetStyle(table.StyleDefault)
	}
	if r.title != "" {
		tw.SetTitle("%s (%d)", r.title, len(r.rows))
	}

	header := make(table.Row, len(r.columns))
	configs := make([]table.ColumnConfig, len(r.columns))
	for i, c := range r.columns {
		header[i] = c.header
		align := text.AlignLeft
		if c.right {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft}
	}
	tw.AppendHeader(header)
	tw.SetColumnConfigs(configs)

	for _, row := range r.rows {
		cells := make(table.Row, len(r.columns))
		for i := range cells {
			cells[i] = ""
			if i < len(row) {
				cells[i] = row[i]
			}
		}
		tw.AppendRow(cells)
	}
	return tw.Render()
}
