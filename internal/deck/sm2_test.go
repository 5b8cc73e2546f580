package deck

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextEase(t *testing.T) {
	tests := []struct {
		name    string
		ease    float64
		quality int
		want    float64
	}{
		{
			name:    "quality 5 increases ease",
			ease:    2.5,
			quality: 5,
			want:    2.6,
		},
		{
			name:    "quality 4 maintains ease",
			ease:    2.5,
			quality: 4,
			want:    2.5,
		},
		{
			name:    "quality 3 decreases ease slightly",
			ease:    2.5,
			quality: 3,
			want:    2.36,
		},
		{
			name:    "quality 0 decreases ease sharply",
			ease:    2.5,
			quality: 0,
			want:    1.7, // 2.5 - 0.8
		},
		{
			name:    "never goes below MinEase",
			ease:    1.3,
			quality: 0,
			want:    MinEase,
		},
		{
			name:    "floor holds from minimal starting ease",
			ease:    1.3,
			quality: 1,
			want:    MinEase,
		},
		{
			name:    "quality above 5 is clamped",
			ease:    2.5,
			quality: 9,
			want:    2.6,
		},
		{
			name:    "negative quality is clamped to 0",
			ease:    2.5,
			quality: -3,
			want:    1.7,
		},
		{
			name:    "zero ease is treated as the default",
			ease:    0,
			quality: 5,
			want:    2.6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NextEase(tt.ease, tt.quality), 1e-9)
		})
	}
}

func TestNextEaseIsMonotonicInQuality(t *testing.T) {
	for _, ease := range []float64{1.3, 2.0, 2.5, 3.1} {
		previous := NextEase(ease, 0)
		for quality := 1; quality <= 5; quality++ {
			next := NextEase(ease, quality)
			assert.GreaterOrEqual(t, next, previous, "ease %v quality %d", ease, quality)
			previous = next
		}
	}
}

func TestSchedule(t *testing.T) {
	today := time.Date(2026, time.March, 10, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name            string
		card            Card
		quality         int
		wantRepetitions int
		wantInterval    int
		wantDue         string
	}{
		{
			name:            "first success schedules for tomorrow",
			card:            Card{Ease: 2.5},
			quality:         4,
			wantRepetitions: 1,
			wantInterval:    1,
			wantDue:         "2026-03-11",
		},
		{
			name:            "second success uses the fixed six day step",
			card:            Card{Ease: 2.5, Repetitions: 1, Interval: 1},
			quality:         4,
			wantRepetitions: 2,
			wantInterval:    6,
			wantDue:         "2026-03-16",
		},
		{
			name:            "first success ignores ease for the interval",
			card:            Card{Ease: 1.3},
			quality:         3,
			wantRepetitions: 1,
			wantInterval:    1,
			wantDue:         "2026-03-11",
		},
		{
			name:            "third success grows by the updated ease",
			card:            Card{Ease: 2.5, Repetitions: 2, Interval: 6},
			quality:         5,
			wantRepetitions: 3,
			wantInterval:    16, // round(6 * 2.6)
			wantDue:         "2026-03-26",
		},
		{
			name:            "half intervals round up",
			card:            Card{Ease: 1.65, Repetitions: 2, Interval: 2},
			quality:         5,
			wantRepetitions: 3,
			wantInterval:    4, // 2 * 1.75 = 3.5, half-up
			wantDue:         "2026-03-14",
		},
		{
			name:            "lapse resets a mature card to tomorrow",
			card:            Card{Ease: 2.5, Repetitions: 3, Interval: 10},
			quality:         1,
			wantRepetitions: 0,
			wantInterval:    1,
			wantDue:         "2026-03-11",
		},
		{
			name:            "quality above 5 is clamped before branching",
			card:            Card{Ease: 2.5},
			quality:         42,
			wantRepetitions: 1,
			wantInterval:    1,
			wantDue:         "2026-03-11",
		},
		{
			name:            "negative quality is a lapse",
			card:            Card{Ease: 2.5, Repetitions: 2, Interval: 6},
			quality:         -1,
			wantRepetitions: 0,
			wantInterval:    1,
			wantDue:         "2026-03-11",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Schedule(tt.card, tt.quality, today)

			assert.Equal(t, tt.wantRepetitions, got.Repetitions)
			assert.Equal(t, tt.wantInterval, got.Interval)
			assert.Equal(t, tt.wantDue, got.Due)
			assert.Equal(t, "2026-03-10", got.LastReview)
			assert.GreaterOrEqual(t, got.Ease, MinEase)

			days, err := DaysUntil(got.Due, today)
			assert.NoError(t, err)
			assert.Equal(t, got.Interval, days, "due date must sit exactly interval days out")
		})
	}
}

func TestScheduleIsPure(t *testing.T) {
	today := time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC)
	card := Card{ID: 1, Ease: 2.5, Repetitions: 2, Interval: 6, Due: "2026-03-10"}

	_ = Schedule(card, 5, today)

	assert.Equal(t, Card{ID: 1, Ease: 2.5, Repetitions: 2, Interval: 6, Due: "2026-03-10"}, card)
}

// Walks the concrete progression from the spec of the original tool: three
// reviews of a brand new card, then a lapse on a mature one.
func TestScheduleProgression(t *testing.T) {
	day := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	card := NewCard(1, "q", "a", day)

	card = Schedule(card, 4, day)
	assert.Equal(t, 1, card.Repetitions)
	assert.Equal(t, 1, card.Interval)
	assert.Equal(t, "2026-01-06", card.Due)
	assert.InDelta(t, 2.5, card.Ease, 1e-9)

	day = day.AddDate(0, 0, 1)
	card = Schedule(card, 4, day)
	assert.Equal(t, 2, card.Repetitions)
	assert.Equal(t, 6, card.Interval)
	assert.Equal(t, "2026-01-12", card.Due)

	day = day.AddDate(0, 0, 6)
	card = Schedule(card, 5, day)
	assert.Equal(t, 3, card.Repetitions)
	assert.InDelta(t, 2.6, card.Ease, 1e-9)
	assert.Equal(t, 16, card.Interval) // round(6 * 2.6)
	assert.Equal(t, "2026-01-28", card.Due)

	// Lapse: everything resets except the (lowered) ease.
	day = day.AddDate(0, 0, 16)
	card = Schedule(card, 1, day)
	assert.Equal(t, 0, card.Repetitions)
	assert.Equal(t, 1, card.Interval)
	assert.InDelta(t, 2.06, card.Ease, 1e-9) // 2.6 - 0.54
	assert.Equal(t, FormatDate(day.AddDate(0, 0, 1)), card.Due)
}
