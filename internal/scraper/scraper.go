package scraper

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/mhellwig/vvcal/internal/course"
)

const (
	DefaultBaseURL = "https://www.fu-berlin.de"
	DefaultLocale  = "de"
	UserAgent      = "vvcal/1.0 (github.com/mhellwig/vvcal)"
	Timeout        = 30 * time.Second
)

// anchorPrefix is stripped from the id attribute of a details link to obtain
// the session's occurrence ID.
const anchorPrefix = "link_to_details_"

// Scraper handles fetching course pages from the catalog
type Scraper struct {
	client  *http.Client
	baseURL string
	locale  string
}

// New creates a Scraper against the public catalog host
func New() *Scraper {
	return NewWithBaseURL(DefaultBaseURL, DefaultLocale)
}

// NewWithBaseURL creates a Scraper against a specific host and catalog locale.
// Tests point this at a local test server.
func NewWithBaseURL(baseURL, locale string) *Scraper {
	return &Scraper{
		client: &http.Client{
			Timeout: Timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		locale:  locale,
	}
}

// courseURL builds the catalog page URL for one course in one semester.
func (s *Scraper) courseURL(courseID, semesterID string) string {
	return fmt.Sprintf("%s/vv/%s/lv/%s?sm=%s", s.baseURL, s.locale, courseID, semesterID)
}

// Fetch retrieves the catalog page for the given course and semester and
// returns the raw body. The body is always drained, even for error statuses;
// any status outside the 2xx range and any non-UTF-8 body are errors.
func (s *Scraper) Fetch(courseID, semesterID string) ([]byte, error) {
	req, err := http.NewRequest("GET", s.courseURL(courseID, semesterID), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching course page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading course page: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if !utf8.Valid(body) {
		return nil, fmt.Errorf("course page is not valid UTF-8")
	}

	return body, nil
}

// FetchCourse fetches and extracts a single course schedule
func (s *Scraper) FetchCourse(courseID, semesterID string) (*course.Course, error) {
	body, err := s.Fetch(courseID, semesterID)
	if err != nil {
		return nil, err
	}

	c, err := ExtractCourse(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("extracting schedule: %w", err)
	}

	return c, nil
}

// ExtractCourse extracts the course name and all session occurrences from a
// catalog page. Occurrences keep document order; nothing is sorted or
// deduplicated. The first malformed element fails the whole extraction.
func ExtractCourse(r io.Reader) (*course.Course, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	heading := doc.Find(".subc h1").First()
	if heading.Length() == 0 {
		return nil, fmt.Errorf("course name heading not found")
	}
	name := strings.TrimSpace(heading.Text())
	if name == "" {
		return nil, fmt.Errorf("course name heading is empty")
	}

	occurrences := make([]course.Occurrence, 0)

	var extractErr error
	doc.Find(".link_to_details").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		anchor, ok := sel.Attr("id")
		if !ok {
			extractErr = fmt.Errorf("details link %d has no id attribute", i)
			return false
		}

		dateTime := sel.Find(".course_date_time").First()
		if dateTime.Length() == 0 {
			extractErr = fmt.Errorf("details link %q has no date/time block", anchor)
			return false
		}

		interval, err := course.ParseTimespan(strings.TrimSpace(dateTime.Text()))
		if err != nil {
			extractErr = fmt.Errorf("details link %q: %w", anchor, err)
			return false
		}

		occurrences = append(occurrences, course.Occurrence{
			ID:       strings.TrimPrefix(anchor, anchorPrefix),
			Interval: interval,
		})
		return true
	})
	if extractErr != nil {
		return nil, extractErr
	}

	return &course.Course{
		Name:        name,
		Occurrences: occurrences,
	}, nil
}
