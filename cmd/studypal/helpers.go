package main

import (
	"fmt"
	"time"

	"github.com/wojakkk/studypal/internal/config"
	"github.com/wojakkk/studypal/internal/deck"
	"github.com/wojakkk/studypal/internal/storage"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// openDeck loads the deck together with the repository that persists it.
func openDeck() (*deck.Deck, *deck.Repository, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	repo := deck.NewRepository(storage.NewFileStorage(), cfg.Deck.Path)
	d, err := repo.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("repo.Load() > %w", err)
	}
	return d, repo, nil
}

func today() time.Time {
	return time.Now()
}
