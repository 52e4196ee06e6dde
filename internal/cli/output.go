package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/mhellwig/vvcal/internal/export"
)

// OutputFormat specifies the report format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// ExportResult contains the run report to be written
type ExportResult struct {
	GeneratedAt time.Time              `json:"generated_at"`
	Results     []export.Result        `json:"courses"`
	Exported    int                    `json:"exported"`
	Failed      int                    `json:"failed"`
	Metrics     map[string]interface{} `json:"metrics,omitempty"`
}

// WriteOutput writes the report in the specified format
func WriteOutput(w io.Writer, result *ExportResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the report as JSON
func writeJSON(w io.Writer, result *ExportResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs the report as human-readable text
func writeText(w io.Writer, result *ExportResult, verbose bool) error {
	for _, res := range result.Results {
		if res.Error != "" {
			fmt.Fprintf(w, "FAILED: %s\n", res.Error)
			continue
		}

		fmt.Fprintf(w, "%s: %d sessions -> %s\n", res.CourseName, res.Sessions, res.OutputPath)
		if verbose {
			fmt.Fprintf(w, "     course: %s, semester: %s\n", res.CourseID, res.Semester)
		}
	}

	if result.Failed > 0 {
		fmt.Fprintf(w, "\nExported %d of %d courses, %d failed\n",
			result.Exported, len(result.Results), result.Failed)
	} else {
		fmt.Fprintf(w, "\nExported %d courses\n", result.Exported)
	}

	if verbose && result.Metrics != nil {
		writeMetrics(w, result.Metrics)
	}

	return nil
}

// writeMetrics prints the counters and timing statistics of the run
func writeMetrics(w io.Writer, metrics map[string]interface{}) {
	if counters, ok := metrics["counters"].(map[string]int64); ok && len(counters) > 0 {
		names := make([]string, 0, len(counters))
		for name := range counters {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "\nCounters:")
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %d\n", name, counters[name])
		}
	}

	if timings, ok := metrics["timings"].(map[string]map[string]interface{}); ok && len(timings) > 0 {
		names := make([]string, 0, len(timings))
		for name := range timings {
			names = append(names, name)
		}
		sort.Strings(names)

		fmt.Fprintln(w, "\nTimings:")
		for _, name := range names {
			stats := timings[name]
			fmt.Fprintf(w, "  %s: count=%v total=%v average=%v\n",
				name, stats["count"], stats["total"], stats["average"])
		}
	}
}
