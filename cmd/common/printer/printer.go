// Package printer provides output formatting utilities for the CLI
package printer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pterm/pterm"

	"github.com/mocksmith/mocksmith-cli/config"
)

// ColumnMapping defines a mapping between original field names and display names
// Format: [["originalField", "Display Name"], ...]
type ColumnMapping [][]string

// PrintOptions combines options for both JSON and table output
type PrintOptions struct {
	// Format specifies the output format ("json" or "table")
	Format string
	// Writer is the output destination (defaults to os.Stdout if nil)
	Writer io.Writer
	// JsonIndent specifies if JSON should be pretty-printed
	JsonIndent bool
	// ColumnMapping defines custom column ordering and display names for table format
	ColumnMapping ColumnMapping
}

// DefaultPrintOptions returns standard print options using the global config
func DefaultPrintOptions() PrintOptions {
	return PrintOptions{
		Format:     config.Global.Format,
		Writer:     os.Stdout,
		JsonIndent: true,
	}
}

// Print formats and outputs data based on the global format setting
func Print(res any, mapping ColumnMapping) error {
	options := DefaultPrintOptions()
	options.ColumnMapping = mapping
	return PrintWithOptions(res, options)
}

// PrintWithOptions formats and outputs data using the provided options
func PrintWithOptions(res any, options PrintOptions) error {
	writer := options.Writer
	if writer == nil {
		writer = os.Stdout
	}

	if options.Format == "json" {
		encoder := json.NewEncoder(writer)
		if options.JsonIndent {
			encoder.SetIndent("", "  ")
		}
		return encoder.Encode(res)
	}

	return printTable(res, writer, options.ColumnMapping)
}

// printTable renders res as a pterm table. The value is round-tripped
// through JSON so the same field tags drive both output formats.
func printTable(res any, writer io.Writer, mapping ColumnMapping) error {
	data, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		// Single objects render as a one-row table.
		var row map[string]any
		if err := json.Unmarshal(data, &row); err != nil {
			return fmt.Errorf("parse result: %w", err)
		}
		rows = []map[string]any{row}
	}
	if len(rows) == 0 {
		return nil
	}

	var header []string
	fields := make([]string, 0, len(mapping))

	if len(mapping) > 0 {
		for _, m := range mapping {
			if len(m) >= 2 {
				fields = append(fields, m[0])
				header = append(header, m[1])
			}
		}
	} else {
		// Fall back to alphabetical ordering
		for k := range rows[0] {
			fields = append(fields, k)
		}
		sort.Strings(fields)
		header = fields
	}

	table := pterm.TableData{header} // first row = header

	for _, r := range rows {
		row := make([]string, len(fields))
		for i, field := range fields {
			val, ok := r[field]
			if !ok || val == nil {
				row[i] = "-" // missing key
				continue
			}
			row[i] = fmt.Sprint(val) // stringify numbers, bools, etc.
		}
		table = append(table, row)
	}

	return pterm.DefaultTable.
		WithHasHeader().
		WithBoxed(true).
		WithWriter(writer).
		WithData(table).
		Render()
}
