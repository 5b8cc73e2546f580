// Package statistics computes read-only reporting queries over a deck.
package statistics

import (
	"time"

	"github.com/wojakkk/studypal/internal/deck"
)

// UpcomingDays is the histogram horizon: offsets 0 (today) through 7.
const UpcomingDays = 7

// DeckStatistics is a point-in-time snapshot of a deck's review state.
type DeckStatistics struct {
	TotalCards   int
	DueCards     int
	LearnedCards int     // repetitions >= 2
	AverageEase  float64 // 0 for an empty deck
	Upcoming     [UpcomingDays + 1]int
}

// Calculate aggregates the reporting queries in a single pass. Cards whose
// due date does not parse still count as due (the same fail-open rule as
// Card.IsDue) but are left out of the upcoming histogram: the histogram is
// display-only and must not guess a bucket for bad data.
func Calculate(d *deck.Deck, today time.Time) DeckStatistics {
	stats := DeckStatistics{TotalCards: len(d.Cards)}

	var easeSum float64
	for _, card := range d.Cards {
		if card.IsDue(today) {
			stats.DueCards++
		}
		if card.Repetitions >= 2 {
			stats.LearnedCards++
		}
		easeSum += card.Ease

		offset, err := deck.DaysUntil(card.Due, today)
		if err != nil {
			continue
		}
		if offset >= 0 && offset <= UpcomingDays {
			stats.Upcoming[offset]++
		}
	}

	if stats.TotalCards > 0 {
		stats.AverageEase = easeSum / float64(stats.TotalCards)
	}
	return stats
}
