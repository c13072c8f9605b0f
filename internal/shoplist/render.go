package shoplist

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// SortByName returns a copy of lines ordered by name, then measurement unit.
func SortByName(lines []Line) []Line {
	sorted := slices.Clone(lines)
	slices.SortStableFunc(sorted, func(a, b Line) int {
		if c := cmp.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return cmp.Compare(a.MeasurementUnit, b.MeasurementUnit)
	})
	return sorted
}

// WriteText renders lines as a numbered plain-text list, one
// "<index>. <name> (<unit>) <dash> <total>" entry per line.
func WriteText(w io.Writer, lines []Line) error {
	for i, line := range lines {
		if _, err := fmt.Fprintf(w, "%d. %s (%s) — %d\n",
			i+1, line.Name, line.MeasurementUnit, line.Total); err != nil {
			return fmt.Errorf("failed to write shopping list: %w", err)
		}
	}
	return nil
}

// WriteCSV renders lines as CSV with a header row.
func WriteCSV(w io.Writer, lines []Line) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"name", "measurement_unit", "amount"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, line := range lines {
		if err := cw.Write([]string{line.Name, line.MeasurementUnit, strconv.Itoa(line.Total)}); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
