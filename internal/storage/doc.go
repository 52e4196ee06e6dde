// Package storage persists generated calendar files.
//
// The storage package owns the output directory: it creates the directory on
// construction, expands a leading ~ to the user's home, and writes each .ics
// file atomically through a temp file and rename. Existing files are replaced
// in place; a failed write never leaves a partial calendar behind.
package storage
