package main

import (
	"fmt"
	"os"

	"github.com/mhellwig/vvcal/internal/calendar"
	"github.com/mhellwig/vvcal/internal/course"
)

func main() {
	// Build a sample course from two catalog-style timespan lines
	lines := []string{
		"Mo, 21.10.2019 10:00 - 13:00",
		"Mo, 28.10.2019 10:00 - 13:00",
	}

	occurrences := make([]course.Occurrence, 0, len(lines))
	for i, line := range lines {
		interval, err := course.ParseTimespan(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing timespan: %v\n", err)
			os.Exit(1)
		}
		occurrences = append(occurrences, course.Occurrence{
			ID:       fmt.Sprintf("52487%d", i),
			Interval: interval,
		})
	}

	c := &course.Course{
		Name:        "21720a Organische Chemie I (Vorlesung)",
		Occurrences: occurrences,
	}

	// Generate the .ics document
	cal, err := calendar.Build(c, calendar.DefaultOptions())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building calendar: %v\n", err)
		os.Exit(1)
	}
	icsContent := calendar.Serialize(cal)

	// Write to file (owner read/write only for security)
	filename := "test-course-calendar.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
