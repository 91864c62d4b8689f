package batch

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/codr1/flagcolors/internal/palette"
)

// Report writes the human-readable run summary: per-flag color lists,
// a frequency histogram over the canonical palette, and a fixed sample
// of flags for manual spot-checking.
func Report(w io.Writer, runID string, records map[string]Record, summary Summary, samples int) {
	ids := make([]string, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Fprintf(w, "flag color report (run %s)\n", runID)
	fmt.Fprintf(w, "processed %d, skipped %d, empty %d\n\n", summary.Processed, summary.Skipped, summary.Empty)

	for _, id := range ids {
		rec := records[id]
		fmt.Fprintf(w, "%s: %-60s raw=%d blueish=%d\n",
			id, joinColors(rec.Colors), rec.RawColorCount, rec.rawBlueCount)
	}

	fmt.Fprintf(w, "\ncolor frequency:\n")
	hist := Histogram(records)
	for _, c := range palette.All() {
		fmt.Fprintf(w, "  %-10s %4d\n", c, hist[c])
	}

	fmt.Fprintf(w, "\nspot-check sample:\n")
	for _, id := range sampleIDs(ids, samples) {
		fmt.Fprintf(w, "  %s: %s\n", id, joinColors(records[id].Colors))
	}
}

// Histogram counts how many flags carry each canonical color.
func Histogram(records map[string]Record) map[palette.Color]int {
	hist := make(map[palette.Color]int, len(palette.All()))
	for _, rec := range records {
		for _, c := range rec.Colors {
			hist[c]++
		}
	}
	return hist
}

// sampleIDs picks an evenly strided, deterministic subset of the sorted
// identifier list for manual review.
func sampleIDs(sorted []string, n int) []string {
	if n <= 0 || len(sorted) == 0 {
		return nil
	}
	if len(sorted) <= n {
		return sorted
	}

	out := make([]string, 0, n)
	stride := len(sorted) / n
	for i := 0; i < len(sorted) && len(out) < n; i += stride {
		out = append(out, sorted[i])
	}
	return out
}

func joinColors(colors []palette.Color) string {
	if len(colors) == 0 {
		return "(none)"
	}
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.String()
	}
	return strings.Join(names, ", ")
}
