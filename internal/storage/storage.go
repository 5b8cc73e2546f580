package storage

import "errors"

// ErrNotFound is returned by Read when the location does not exist yet.
// Callers decide whether that is an error; the deck repository treats it as
// an empty deck.
var ErrNotFound = errors.New("storage: not found")

//go:generate mockgen -source=storage.go -destination=../mocks/storage/mock_storage.go -package=mock_storage Storage

// Storage reads and writes opaque payloads at a named location. The deck
// repository depends only on this contract, not on the filesystem.
type Storage interface {
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
}
