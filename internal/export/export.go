package export

import (
	"fmt"
	"time"

	"github.com/mhellwig/vvcal/internal/calendar"
	"github.com/mhellwig/vvcal/internal/config"
	"github.com/mhellwig/vvcal/internal/logger"
	"github.com/mhellwig/vvcal/internal/scraper"
	"github.com/mhellwig/vvcal/internal/storage"
)

// Runner exports a list of course requests through the scraper, calendar
// builder, and storage it is handed.
type Runner struct {
	Scraper *scraper.Scraper
	Store   *storage.Storage
	Options calendar.Options

	// KeepGoing attempts every request even after a failure. Off, the first
	// failed course aborts the run.
	KeepGoing bool
}

// Result is the outcome of one course request.
type Result struct {
	CourseID   string `json:"course_id"`
	Semester   string `json:"semester"`
	CourseName string `json:"course_name,omitempty"`
	Sessions   int    `json:"sessions,omitempty"`
	OutputPath string `json:"output_path,omitempty"`
	Error      string `json:"error,omitempty"`

	// Err carries the wrapped error chain behind Error.
	Err error `json:"-"`
}

// Report collects the per-course results of one run, in request order.
type Report struct {
	Results []Result `json:"courses"`
	Failed  int      `json:"failed"`
}

// Exported returns how many courses were written.
func (r *Report) Exported() int {
	return len(r.Results) - r.Failed
}

// Run exports every requested course in order. It returns the report of what
// happened together with the first failure (default) or, with KeepGoing, a
// summary error after all requests were attempted. An empty request list is
// an error.
func (r *Runner) Run(requests []config.CourseRequest) (*Report, error) {
	if len(requests) == 0 {
		return nil, fmt.Errorf("no course requests")
	}

	report := &Report{Results: make([]Result, 0, len(requests))}

	for _, req := range requests {
		res := r.exportOne(req)
		report.Results = append(report.Results, res)

		if res.Err == nil {
			continue
		}
		report.Failed++

		if !r.KeepGoing {
			return report, res.Err
		}
	}

	if report.Failed > 0 {
		return report, fmt.Errorf("%d of %d courses failed", report.Failed, len(requests))
	}

	return report, nil
}

// exportOne runs the fetch, build, and write stages for a single course.
func (r *Runner) exportOne(req config.CourseRequest) Result {
	res := Result{CourseID: req.CourseID, Semester: req.Semester}

	logger.Debug("exporting course", logger.Fields{
		"course_id": req.CourseID,
		"semester":  req.Semester,
		"output":    req.OutputFile,
	})

	fetchStart := time.Now()
	c, err := r.Scraper.FetchCourse(req.CourseID, req.Semester)
	if err != nil {
		return res.failed(fmt.Errorf("course %s: %w", req.CourseID, err))
	}
	logger.RecordTiming("fetch", time.Since(fetchStart))

	res.CourseName = c.Name
	res.Sessions = len(c.Occurrences)

	buildStart := time.Now()
	cal, err := calendar.Build(c, r.Options)
	if err != nil {
		return res.failed(fmt.Errorf("course %s: %w", req.CourseID, err))
	}
	logger.RecordTiming("build", time.Since(buildStart))

	writeStart := time.Now()
	path, err := r.Store.WriteCalendar(req.OutputFile, calendar.Serialize(cal))
	if err != nil {
		return res.failed(fmt.Errorf("course %s: %w", req.CourseID, err))
	}
	logger.RecordTiming("write", time.Since(writeStart))

	res.OutputPath = path
	logger.IncrCounter("courses.exported")
	logger.Info("course exported", logger.Fields{
		"course":   c.Name,
		"sessions": len(c.Occurrences),
		"path":     path,
	})

	return res
}

// failed marks the result with err and logs it.
func (res Result) failed(err error) Result {
	res.Err = err
	res.Error = err.Error()

	logger.IncrCounter("courses.failed")
	logger.Error("course export failed", logger.Fields{
		"course_id": res.CourseID,
		"semester":  res.Semester,
	}, err)

	return res
}
