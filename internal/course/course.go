package course

// Occurrence is one scheduled session of a course: the per-session anchor id
// from the catalog page plus the session's time interval.
type Occurrence struct {
	ID       string
	Interval Interval
}

// Course is a display name plus the course's sessions in document order.
// The order is taken from the page as-is; sessions are neither sorted nor
// deduplicated.
type Course struct {
	Name        string
	Occurrences []Occurrence
}
