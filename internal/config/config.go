// Package config holds the run configuration: which courses to export and how
// to reach the catalog. Without a config file the built-in course list is
// used; a YAML file can override the list and the catalog endpoint.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mhellwig/vvcal/internal/scraper"
)

// defaultSemester is the catalog id of the semester the built-in course list
// belongs to.
const defaultSemester = "498562"

// CourseRequest names one course to export.
type CourseRequest struct {
	// CourseID is the course's id in the catalog URL.
	CourseID string `yaml:"course_id"`
	// Semester is the catalog id of the semester, passed as the sm parameter.
	Semester string `yaml:"semester"`
	// OutputFile is the .ics filename inside the output directory.
	OutputFile string `yaml:"output_file"`
}

// Config is the top-level run configuration.
type Config struct {
	// BaseURL is the catalog host. Empty means the public host.
	BaseURL string `yaml:"base_url"`

	// Locale is the language segment of catalog URLs. Empty means "de".
	Locale string `yaml:"locale"`

	// LinkFirstEventToSelf keeps the self-referential series link on the
	// first event of each calendar. Unset means true, matching the form the
	// catalog's own calendars use.
	LinkFirstEventToSelf *bool `yaml:"link_first_event_to_self"`

	// Courses is the list of courses to export.
	Courses []CourseRequest `yaml:"courses"`
}

// Default returns the built-in export list: the chemistry and botany courses
// this tool was written for. Running without a config file processes exactly
// these.
func Default() *Config {
	return &Config{
		BaseURL: scraper.DefaultBaseURL,
		Locale:  scraper.DefaultLocale,
		Courses: []CourseRequest{
			{CourseID: "524870", Semester: defaultSemester, OutputFile: "oc1_vorlesung.ics"},
			{CourseID: "524871", Semester: defaultSemester, OutputFile: "oc1_uebung.ics"},
			{CourseID: "525101", Semester: defaultSemester, OutputFile: "bc1_vorlesung.ics"},
			{CourseID: "525102", Semester: defaultSemester, OutputFile: "bc1_uebung.ics"},
			{CourseID: "503925", Semester: defaultSemester, OutputFile: "botanik_vorlesung.ics"},
			{CourseID: "503926", Semester: defaultSemester, OutputFile: "botanik_seminar_a.ics"},
			{CourseID: "503927", Semester: defaultSemester, OutputFile: "botanik_seminar_b.ics"},
		},
	}
}

// Load reads a YAML configuration from path. An empty path returns the
// built-in default configuration; an explicit path must exist.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}

	return &cfg, nil
}

// Normalize fills in missing values so a config naming only its courses still
// points at the public catalog.
func (c *Config) Normalize() {
	if c.BaseURL == "" {
		c.BaseURL = scraper.DefaultBaseURL
	}
	if c.Locale == "" {
		c.Locale = scraper.DefaultLocale
	}
}

// Validate checks that the config describes at least one complete course
// request.
func (c *Config) Validate() error {
	if len(c.Courses) == 0 {
		return errors.New("no courses configured")
	}
	for i, req := range c.Courses {
		if req.CourseID == "" {
			return fmt.Errorf("course %d: course_id is empty", i)
		}
		if req.Semester == "" {
			return fmt.Errorf("course %d: semester is empty", i)
		}
		if req.OutputFile == "" {
			return fmt.Errorf("course %d: output_file is empty", i)
		}
	}
	return nil
}

// SelfLink reports whether the first event of each calendar keeps its
// self-referential series link.
func (c *Config) SelfLink() bool {
	return c.LinkFirstEventToSelf == nil || *c.LinkFirstEventToSelf
}
