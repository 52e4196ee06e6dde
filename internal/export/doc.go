// Package export drives the course export pipeline: fetch the catalog page,
// extract the schedule, build the calendar, write the .ics file.
//
// Requests are processed strictly in order, one at a time. By default the
// first failed course aborts the run; KeepGoing attempts every request and
// collects the failures instead. Files written before a failure stay in place.
package export
