package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vvcal.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() is not valid: %v", err)
	}

	if len(cfg.Courses) != 7 {
		t.Fatalf("Default() has %d courses, want 7", len(cfg.Courses))
	}
	for i, req := range cfg.Courses {
		if req.Semester != defaultSemester {
			t.Errorf("course %d semester = %q, want %q", i, req.Semester, defaultSemester)
		}
		if !strings.HasSuffix(req.OutputFile, ".ics") {
			t.Errorf("course %d output file = %q, want an .ics name", i, req.OutputFile)
		}
	}

	if cfg.Courses[0].CourseID != "524870" {
		t.Errorf("first course id = %q, want %q", cfg.Courses[0].CourseID, "524870")
	}
	if cfg.Courses[0].OutputFile != "oc1_vorlesung.ics" {
		t.Errorf("first output file = %q, want %q", cfg.Courses[0].OutputFile, "oc1_vorlesung.ics")
	}
	if cfg.Courses[6].OutputFile != "botanik_seminar_b.ics" {
		t.Errorf("last output file = %q, want %q", cfg.Courses[6].OutputFile, "botanik_seminar_b.ics")
	}

	if cfg.BaseURL == "" || cfg.Locale == "" {
		t.Error("Default() should name the catalog host and locale")
	}
	if !cfg.SelfLink() {
		t.Error("Default() should keep the first event's self link")
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}

	if len(cfg.Courses) != 7 {
		t.Errorf("Load(\"\") has %d courses, want the 7 built-in ones", len(cfg.Courses))
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
base_url: https://catalog.example.test
locale: en
link_first_event_to_self: false
courses:
  - course_id: "111"
    semester: "498562"
    output_file: first.ics
  - course_id: "222"
    semester: "498562"
    output_file: second.ics
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.BaseURL != "https://catalog.example.test" {
		t.Errorf("BaseURL = %q, want %q", cfg.BaseURL, "https://catalog.example.test")
	}
	if cfg.Locale != "en" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "en")
	}
	if cfg.SelfLink() {
		t.Error("SelfLink() = true, want false")
	}
	if len(cfg.Courses) != 2 {
		t.Fatalf("config has %d courses, want 2", len(cfg.Courses))
	}
	if cfg.Courses[1].OutputFile != "second.ics" {
		t.Errorf("second output file = %q, want %q", cfg.Courses[1].OutputFile, "second.ics")
	}
}

func TestLoad_FillsDefaults(t *testing.T) {
	path := writeConfig(t, `
courses:
  - course_id: "111"
    semester: "498562"
    output_file: first.ics
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.BaseURL == "" {
		t.Error("BaseURL should be filled with the public catalog host")
	}
	if cfg.Locale != "de" {
		t.Errorf("Locale = %q, want %q", cfg.Locale, "de")
	}
	if !cfg.SelfLink() {
		t.Error("SelfLink() should default to true")
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "no courses",
			content: "base_url: https://catalog.example.test\n",
		},
		{
			name:    "empty course list",
			content: "courses: []\n",
		},
		{
			name: "course without semester",
			content: `
courses:
  - course_id: "111"
    output_file: first.ics
`,
		},
		{
			name: "course without output file",
			content: `
courses:
  - course_id: "111"
    semester: "498562"
`,
		},
		{
			name:    "not yaml",
			content: "courses: [\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load() expected error, got nil")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.yaml")
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for a missing file, got nil")
	}
}
