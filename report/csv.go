package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tourbench/bench"
)

// formatLength renders a tour length for CSV with stable precision.
func formatLength(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteBestCSV emits the best-performance table: one row per tied
// per-method minimum.
//
// Header: method,trial,length.
func WriteBestCSV(w io.Writer, rows []bench.BestRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"method", "trial", "length"}); err != nil {
		return fmt.Errorf("report: write best table: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Method, strconv.Itoa(r.Trial), formatLength(r.Length)}); err != nil {
			return fmt.Errorf("report: write best table: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteRoutesCSV emits the best-routes table in long form: one row per stop
// of every global-best path.
//
// Header: method,trial,position,label.
func WriteRoutesCSV(w io.Writer, rows []bench.RouteRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"method", "trial", "position", "label"}); err != nil {
		return fmt.Errorf("report: write routes table: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{r.Method, strconv.Itoa(r.Trial), strconv.Itoa(r.Position), r.Label}); err != nil {
			return fmt.Errorf("report: write routes table: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteDistributionCSV emits the full unfiltered distribution table.
//
// Header: trial,method,length.
func WriteDistributionCSV(w io.Writer, rows []bench.DistributionRow) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"trial", "method", "length"}); err != nil {
		return fmt.Errorf("report: write distribution table: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write([]string{strconv.Itoa(r.Trial), r.Method, formatLength(r.Length)}); err != nil {
			return fmt.Errorf("report: write distribution table: %w", err)
		}
	}
	cw.Flush()

	return cw.Error()
}
