// Package cli drives the interactive practice session over due cards.
package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/wojakkk/studypal/internal/deck"
)

// errEnd signals the explicit exit of a practice session.
var errEnd = errors.New("end")

// Saver persists the deck after each applied grade.
type Saver interface {
	Save(*deck.Deck) error
}

// PracticeSession runs one review pass over the cards due today: shuffled
// order, every due card at most once, the whole deck saved after every
// grade so an interrupted session keeps everything already graded.
type PracticeSession struct {
	deck    *deck.Deck
	saver   Saver
	console Console
	today   time.Time
	queue   []deck.Card

	graded  int
	correct int

	bold   *color.Color
	italic *color.Color
}

// NewPracticeSession selects today's due cards and shuffles them.
func NewPracticeSession(d *deck.Deck, saver Saver, console Console, today time.Time) *PracticeSession {
	queue := d.DueCards(today)
	rand.Shuffle(len(queue), func(i, j int) {
		queue[i], queue[j] = queue[j], queue[i]
	})

	return &PracticeSession{
		deck:    d,
		saver:   saver,
		console: console,
		today:   today,
		queue:   queue,
		bold:    color.New(color.Bold),
		italic:  color.New(color.Italic),
	}
}

// DueCount returns the number of cards selected for this session.
func (s *PracticeSession) DueCount() int {
	return len(s.queue)
}

// Run presents every queued card once. The exit signal ("q", or a cancelled
// context between cards) ends the session immediately; grades applied so
// far are already on disk, the remaining cards stay due.
func (s *PracticeSession) Run(ctx context.Context) error {
	if len(s.queue) == 0 {
		s.console.Display("No cards due today.")
		return nil
	}

	s.console.Display(fmt.Sprintf("Due today: %d cards", len(s.queue)))
	s.console.Display("(Enter 'q' anytime to stop)")
	s.console.Display("")

	for _, card := range s.queue {
		select {
		case <-ctx.Done():
			s.summarize()
			return nil
		default:
		}

		if err := s.review(card); err != nil {
			if errors.Is(err, errEnd) {
				s.console.Display("Saved. Bye!")
				s.summarize()
				return nil
			}
			return err
		}
	}

	s.summarize()
	return nil
}

// review runs the two-phase reveal and grading of a single card. The deck
// is persisted before review returns so the grade survives a crash on any
// later card.
func (s *PracticeSession) review(card deck.Card) error {
	s.console.Display(strings.Repeat("-", 60))
	s.console.Display(fmt.Sprintf("#%d Q: %s", card.ID, s.bold.Sprint(card.Question)))

	reveal, err := s.console.Prompt("Show answer (Enter)...")
	if err != nil {
		return err
	}
	if isExit(reveal) {
		return errEnd
	}
	s.console.Display(fmt.Sprintf("A: %s", s.italic.Sprint(card.Answer)))

	grade, err := s.promptGrade()
	if err != nil {
		return err
	}

	updated := deck.Schedule(card, grade, s.today)
	if err := s.deck.Update(updated); err != nil {
		return fmt.Errorf("deck.Update(#%d) > %w", updated.ID, err)
	}
	if err := s.saver.Save(s.deck); err != nil {
		return fmt.Errorf("saving deck > %w", err)
	}

	s.graded++
	if grade >= 3 {
		s.correct++
		s.console.Display(color.GreenString("Next review in %d day(s).", updated.Interval))
	} else {
		s.console.Display(color.RedString("Back again tomorrow."))
	}
	return nil
}

// promptGrade re-prompts until it reads a grade in 0..5 or the exit signal.
// Out-of-range or non-numeric input never propagates.
func (s *PracticeSession) promptGrade() (int, error) {
	for {
		input, err := s.console.Prompt("Grade 0..5: ")
		if err != nil {
			return 0, err
		}
		if isExit(input) {
			return 0, errEnd
		}
		grade, err := strconv.Atoi(strings.TrimSpace(input))
		if err == nil && grade >= 0 && grade <= 5 {
			return grade, nil
		}
		s.console.Display("Please enter a number 0..5 or 'q'.")
	}
}

func isExit(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), "q")
}

// summarize reports accuracy over the cards actually graded this session,
// not the original due count.
func (s *PracticeSession) summarize() {
	s.console.Display(strings.Repeat("-", 60))
	accuracy := 0.0
	if s.graded > 0 {
		accuracy = 100 * float64(s.correct) / float64(s.graded)
	}
	s.console.Display(fmt.Sprintf("Session done. Accuracy (>=3): %.1f%% | Reviewed: %d", accuracy, s.graded))
}
