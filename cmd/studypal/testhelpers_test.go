package main

import "time"

// testDay is a fixed creation date for deck fixtures; far enough in the
// past that fixture cards are always due when a command runs against the
// real clock.
func testDay() time.Time {
	return time.Date(2020, time.January, 2, 0, 0, 0, 0, time.UTC)
}
