// Package cli implements the command-line interface for vvcal.
//
// The cli package provides the Cobra-based CLI: it loads the run
// configuration, wires the scraper, calendar builder, and storage into the
// export runner, and writes the run report as text or JSON. The process exits
// non-zero when any course fails.
package cli
