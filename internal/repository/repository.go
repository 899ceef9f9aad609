// Package repository persists game aggregates of one variant as a single
// JSON array stored under a fixed key.
package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/mcoot/scorekeeper/internal/model"
	"github.com/mcoot/scorekeeper/internal/storage"
	"github.com/mcoot/scorekeeper/internal/validation"
)

// Storage keys for each variant's collection
const (
	EverdellKey = "everdell:games"
	Flip7Key    = "flip7:games"
	Phase10Key  = "phase10:games"
)

// RecordChecker decides whether a stored record is structurally valid
type RecordChecker interface {
	Valid(raw []byte) bool
}

// Repository is a whole-collection read, whole-collection write store for
// one game variant. Records that fail to parse or fail the checker are
// dropped from every read.
type Repository[G model.Aggregate] struct {
	store   storage.Storage
	key     string
	checker RecordChecker
	logger  *slog.Logger
}

// New creates a repository storing its collection under key
func New[G model.Aggregate](store storage.Storage, key string, checker RecordChecker, logger *slog.Logger) *Repository[G] {
	return &Repository[G]{
		store:   store,
		key:     key,
		checker: checker,
		logger:  logger,
	}
}

// NewEverdell creates the Everdell repository
func NewEverdell(store storage.Storage, logger *slog.Logger) *Repository[model.EverdellGame] {
	return New[model.EverdellGame](store, EverdellKey, validation.EverdellRecord(), logger)
}

// NewFlip7 creates the Flip 7 repository
func NewFlip7(store storage.Storage, logger *slog.Logger) *Repository[model.Flip7Game] {
	return New[model.Flip7Game](store, Flip7Key, validation.Flip7Record(), logger)
}

// NewPhase10 creates the Phase 10 repository
func NewPhase10(store storage.Storage, logger *slog.Logger) *Repository[model.Phase10Game] {
	return New[model.Phase10Game](store, Phase10Key, validation.Phase10Record(), logger)
}

// List returns every stored game, most recently started first
func (r *Repository[G]) List(ctx context.Context) ([]G, error) {
	games, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(games, func(a, b G) int {
		return b.StartedTime().Compare(a.StartedTime())
	})
	return games, nil
}

// GetByID returns the game with the given id or model.ErrGameNotFound
func (r *Repository[G]) GetByID(ctx context.Context, id model.GameID) (G, error) {
	var zero G
	games, err := r.load(ctx)
	if err != nil {
		return zero, err
	}
	for _, g := range games {
		if g.GameID() == id {
			return g, nil
		}
	}
	return zero, model.ErrGameNotFound
}

// Save replaces the stored game with the same id, or appends it
func (r *Repository[G]) Save(ctx context.Context, game G) error {
	games, err := r.load(ctx)
	if err != nil {
		return err
	}
	idx := slices.IndexFunc(games, func(g G) bool { return g.GameID() == game.GameID() })
	if idx >= 0 {
		games[idx] = game
	} else {
		games = append(games, game)
	}
	return storage.WriteJSON(ctx, r.store, r.key, games)
}

// Delete removes the game with the given id. Deleting an unknown id is a
// no-op.
func (r *Repository[G]) Delete(ctx context.Context, id model.GameID) error {
	games, err := r.load(ctx)
	if err != nil {
		return err
	}
	kept := slices.DeleteFunc(games, func(g G) bool { return g.GameID() == id })
	return storage.WriteJSON(ctx, r.store, r.key, kept)
}

func (r *Repository[G]) load(ctx context.Context) ([]G, error) {
	raw, err := storage.ReadJSON(ctx, r.store, r.key, []json.RawMessage{})
	if err != nil {
		r.logger.Error("failed to read games",
			slog.String("key", r.key),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	games := make([]G, 0, len(raw))
	for i, item := range raw {
		if r.checker != nil && !r.checker.Valid(item) {
			r.logger.Warn("skipping invalid stored game",
				slog.String("key", r.key),
				slog.Int("index", i),
			)
			continue
		}
		var game G
		if err := json.Unmarshal(item, &game); err != nil {
			r.logger.Warn("skipping unreadable stored game",
				slog.String("key", r.key),
				slog.Int("index", i),
				slog.String("error", err.Error()),
			)
			continue
		}
		games = append(games, game)
	}
	return games, nil
}
