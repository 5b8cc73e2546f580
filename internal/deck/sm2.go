package deck

import (
	"math"
	"time"
)

const (
	// DefaultEase is the ease factor assigned to new cards.
	DefaultEase = 2.5
	// MinEase is the floor the ease factor never drops below.
	MinEase = 1.3
)

// Schedule applies one SM-2 grading event and returns the updated card.
// quality is clamped into [0,5] before use. The function is pure: no clock,
// no I/O, the argument is left unmodified.
//
// A grade below 3 is a lapse and always reschedules the card for tomorrow,
// regardless of how far out it was. The first two successes use the fixed
// 1-day and 6-day steps; from then on the interval grows by the updated
// ease factor, rounded half-up (math.Round, all operands positive), so
// 2 x 1.75 = 3.5 becomes 4 days.
func Schedule(card Card, quality int, today time.Time) Card {
	q := clampQuality(quality)

	card.Ease = NextEase(card.Ease, q)

	switch {
	case q < 3:
		card.Repetitions = 0
		card.Interval = 1
	case card.Repetitions == 0:
		card.Interval = 1
		card.Repetitions = 1
	case card.Repetitions == 1:
		card.Interval = 6
		card.Repetitions = 2
	default:
		card.Interval = int(math.Round(float64(card.Interval) * card.Ease))
		card.Repetitions++
	}

	card.Due = FormatDate(today.AddDate(0, 0, card.Interval))
	card.LastReview = FormatDate(today)
	return card
}

// NextEase computes the updated ease factor for a grade. Quality 5 nudges
// the ease up, quality 0 drops it sharply; the result never goes below
// MinEase. A zero ease (old data) is treated as DefaultEase.
func NextEase(ease float64, quality int) float64 {
	if ease == 0 {
		ease = DefaultEase
	}
	q := float64(clampQuality(quality))
	next := ease + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	return math.Max(next, MinEase)
}

func clampQuality(quality int) int {
	if quality < 0 {
		return 0
	}
	if quality > 5 {
		return 5
	}
	return quality
}
