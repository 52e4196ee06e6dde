// Package scraper fetches course pages from the university course catalog and
// extracts the course name together with its scheduled sessions.
//
// Fetching and extraction are separate steps: Fetch returns the raw page after
// status and encoding checks, ExtractCourse turns an HTML document into a
// course.Course, and FetchCourse combines the two. Extraction fails on the
// first malformed element; there is no best-effort mode.
package scraper
