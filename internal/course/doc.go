// Package course defines the schedule data model: validated time intervals,
// session occurrences, and the course they belong to, together with the
// parser for the catalog's human-readable timespan lines.
//
// All values are created once during extraction and never mutated afterwards.
// Nothing in this package carries state between runs.
package course
