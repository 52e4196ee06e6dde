package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage handles persistence of generated calendar files
type Storage struct {
	outDir string
}

// New creates a new Storage instance rooted at outDir
func New(outDir string) (*Storage, error) {
	// Expand ~ to home directory
	if strings.HasPrefix(outDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		outDir = filepath.Join(home, outDir[2:])
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Storage{
		outDir: outDir,
	}, nil
}

// Path returns the path the named calendar file is written to
func (s *Storage) Path(filename string) string {
	return filepath.Join(s.outDir, filename)
}

// WriteCalendar writes serialized calendar data to filename inside the output
// directory, replacing any existing file in place. The data lands via a temp
// file and rename; a failed write never leaves a partial calendar behind.
func (s *Storage) WriteCalendar(filename, data string) (string, error) {
	path := s.Path(filename)

	tmp, err := os.CreateTemp(s.outDir, ".vvcal-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Clean up the temp file on any failure before the rename.
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("writing calendar: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("flushing calendar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Chmod(tmpName, 0644); err != nil {
		return "", fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("moving calendar into place: %w", err)
	}

	return path, nil
}
