package deck

import (
	"strings"
	"time"
)

// DateFormat is the calendar-date layout used for every persisted date.
const DateFormat = "2006-01-02"

// Card is one question/answer pair together with its scheduling state.
//
// Dates stay strings on the struct: a malformed due date read from storage
// must survive a load/save round-trip and still count as due (see IsDue),
// which parsing into time.Time at the boundary would make impossible.
type Card struct {
	ID          int     `json:"id" yaml:"id"`
	Question    string  `json:"question" yaml:"question"`
	Answer      string  `json:"answer" yaml:"answer"`
	Repetitions int     `json:"repetitions" yaml:"repetitions"`
	Interval    int     `json:"interval" yaml:"interval"`
	Ease        float64 `json:"ease" yaml:"ease"`
	Due         string  `json:"due" yaml:"due"`
	Created     string  `json:"created" yaml:"created"`
	LastReview  string  `json:"last_review,omitempty" yaml:"last_review,omitempty"`
}

// NewCard builds a card due immediately. The creation date is injected so
// construction stays deterministic under test.
func NewCard(id int, question, answer string, today time.Time) Card {
	return Card{
		ID:       id,
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
		Ease:     DefaultEase,
		Due:      FormatDate(today),
		Created:  FormatDate(today),
	}
}

// IsDue reports whether the card is eligible for review on today's date.
// A due date that cannot be parsed counts as due: bad data never blocks a
// review. The upcoming histogram takes the opposite stance and skips such
// cards (statistics.Calculate).
func (c Card) IsDue(today time.Time) bool {
	if _, err := ParseDate(c.Due); err != nil {
		return true
	}
	// The fixed-width YYYY-MM-DD layout orders lexicographically.
	return c.Due <= FormatDate(today)
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateFormat, value)
}

// FormatDate renders the calendar date of t, dropping the time of day.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// DaysUntil returns how many whole days lie between today's calendar date
// and the given date value. Negative for past dates.
func DaysUntil(value string, today time.Time) (int, error) {
	date, err := ParseDate(value)
	if err != nil {
		return 0, err
	}
	// Both sides end up at UTC midnight, so the difference is an exact
	// multiple of 24 hours.
	start, err := ParseDate(FormatDate(today))
	if err != nil {
		return 0, err
	}
	return int(date.Sub(start).Hours() / 24), nil
}
