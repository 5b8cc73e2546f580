// Package deck holds the flashcard data model and the SM-2 scheduler that
// decides when each card comes back for review.
package deck

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrCardNotFound is returned when an operation addresses an id that is not
// in the deck.
var ErrCardNotFound = errors.New("card not found")

// Deck owns the ordered card list and the id counter. NextID only ever
// grows, so the id of a deleted card is never handed out again.
type Deck struct {
	NextID int    `json:"next_id" yaml:"next_id"`
	Cards  []Card `json:"cards" yaml:"cards"`
}

// NewDeck returns an empty deck ready for its first card.
func NewDeck() *Deck {
	return &Deck{NextID: 1, Cards: []Card{}}
}

// Add creates a card from the trimmed question/answer pair, appends it and
// advances the id counter.
func (d *Deck) Add(question, answer string, today time.Time) (Card, error) {
	if strings.TrimSpace(question) == "" {
		return Card{}, errors.New("question must not be empty")
	}
	if strings.TrimSpace(answer) == "" {
		return Card{}, errors.New("answer must not be empty")
	}

	card := NewCard(d.NextID, question, answer, today)
	d.Cards = append(d.Cards, card)
	d.NextID++
	return card, nil
}

// Find returns the card with the given id.
func (d *Deck) Find(id int) (Card, error) {
	for _, card := range d.Cards {
		if card.ID == id {
			return card, nil
		}
	}
	return Card{}, fmt.Errorf("%w: #%d", ErrCardNotFound, id)
}

// Update replaces the stored card that has card.ID.
func (d *Deck) Update(card Card) error {
	for i := range d.Cards {
		if d.Cards[i].ID == card.ID {
			d.Cards[i] = card
			return nil
		}
	}
	return fmt.Errorf("%w: #%d", ErrCardNotFound, card.ID)
}

// Edit replaces the question and/or answer of the card with the given id.
// An empty value keeps the current text. Scheduling state is untouched.
func (d *Deck) Edit(id int, question, answer string) error {
	for i := range d.Cards {
		if d.Cards[i].ID != id {
			continue
		}
		if strings.TrimSpace(question) != "" {
			d.Cards[i].Question = strings.TrimSpace(question)
		}
		if strings.TrimSpace(answer) != "" {
			d.Cards[i].Answer = strings.TrimSpace(answer)
		}
		return nil
	}
	return fmt.Errorf("%w: #%d", ErrCardNotFound, id)
}

// Delete removes the card with the given id. NextID is left alone, so the
// id is not recycled.
func (d *Deck) Delete(id int) error {
	for i := range d.Cards {
		if d.Cards[i].ID == id {
			d.Cards = append(d.Cards[:i], d.Cards[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: #%d", ErrCardNotFound, id)
}

// DueCards returns the cards eligible for review today, in deck order.
func (d *Deck) DueCards(today time.Time) []Card {
	var due []Card
	for _, card := range d.Cards {
		if card.IsDue(today) {
			due = append(due, card)
		}
	}
	return due
}
