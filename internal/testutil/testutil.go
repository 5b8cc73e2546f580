// Package testutil provides shared test helpers for creating config files
// and deck fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wojakkk/studypal/internal/deck"
	"github.com/wojakkk/studypal/internal/storage"
)

// SetupTestConfig writes a config file pointing the deck at a file inside
// tmpDir. It returns the config path and the deck path.
func SetupTestConfig(t *testing.T, tmpDir string) (string, string) {
	t.Helper()

	deckPath := filepath.Join(tmpDir, "deck.json")
	configPath := filepath.Join(tmpDir, "config.yml")
	configContent := fmt.Sprintf("deck:\n  path: %s\n", deckPath)
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))

	return configPath, deckPath
}

// SaveDeck persists a deck fixture to the given path.
func SaveDeck(t *testing.T, path string, d *deck.Deck) {
	t.Helper()
	require.NoError(t, deck.NewRepository(storage.NewFileStorage(), path).Save(d))
}

// LoadDeck reads the deck back for assertions.
func LoadDeck(t *testing.T, path string) *deck.Deck {
	t.Helper()
	d, err := deck.NewRepository(storage.NewFileStorage(), path).Load()
	require.NoError(t, err)
	return d
}
