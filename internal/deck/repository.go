package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/wojakkk/studypal/internal/storage"
)

// Repository loads and saves one deck at a fixed storage location.
type Repository struct {
	storage storage.Storage
	path    string
}

func NewRepository(st storage.Storage, path string) *Repository {
	return &Repository{storage: st, path: path}
}

// Load reads the deck from storage. A missing location is not an error and
// yields a fresh empty deck. Corrupt content is fatal and propagated; there
// is no partial recovery.
func (r *Repository) Load() (*Deck, error) {
	data, err := r.storage.Read(r.path)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			slog.Debug("no deck file yet, starting empty", "path", r.path)
			return NewDeck(), nil
		}
		return nil, fmt.Errorf("storage.Read(%s) > %w", r.path, err)
	}

	var d Deck
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("deck file %s is not valid JSON > %w", r.path, err)
	}
	if err := applyDefaults(&d); err != nil {
		return nil, fmt.Errorf("deck file %s > %w", r.path, err)
	}

	slog.Debug("loaded deck", "path", r.path, "cards", len(d.Cards))
	return &d, nil
}

// applyDefaults fills the documented defaults for absent fields and rejects
// records for which no default is safe. Repetitions and interval default to
// their zero values; a missing due string stays empty, which the fail-open
// rule in Card.IsDue treats as immediately due.
func applyDefaults(d *Deck) error {
	for i := range d.Cards {
		if d.Cards[i].ID <= 0 {
			return fmt.Errorf("card at index %d has no valid id", i)
		}
		if d.Cards[i].Ease == 0 {
			d.Cards[i].Ease = DefaultEase
		}
	}
	if d.Cards == nil {
		d.Cards = []Card{}
	}
	if d.NextID == 0 {
		d.NextID = len(d.Cards) + 1
	}
	return nil
}

// Save serializes the whole deck and overwrites the storage location. An
// error is a durability failure: the in-memory deck may now be ahead of
// what was persisted, and the caller must not report success.
func (r *Repository) Save(d *Deck) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("json.MarshalIndent > %w", err)
	}
	if err := r.storage.Write(r.path, data); err != nil {
		return fmt.Errorf("storage.Write(%s) > %w", r.path, err)
	}
	return nil
}
