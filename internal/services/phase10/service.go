// Package phase10 keeps score for Phase 10 games. Each round records the
// phase a player reached and the points they were left holding.
package phase10

import (
	"context"
	"log/slog"
	"time"

	"github.com/mcoot/scorekeeper/internal/dependencies/clock"
	"github.com/mcoot/scorekeeper/internal/dependencies/idgen"
	"github.com/mcoot/scorekeeper/internal/metrics"
	"github.com/mcoot/scorekeeper/internal/model"
	"github.com/mcoot/scorekeeper/internal/repository"
	"github.com/mcoot/scorekeeper/internal/services/roster"
	"github.com/mcoot/scorekeeper/internal/validation"
)

var variant = string(model.VariantPhase10)

// Service implements the Phase 10 use cases
type Service struct {
	repo    *repository.Repository[model.Phase10Game]
	clock   clock.Clock
	ids     idgen.Generator
	players *validation.Validator
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// New creates a Phase 10 service
func New(
	repo *repository.Repository[model.Phase10Game],
	clk clock.Clock,
	ids idgen.Generator,
	rec *metrics.Recorder,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:    repo,
		clock:   clk,
		ids:     ids,
		players: validation.NewPlayersValidator(1, model.Phase10MaxPlayers),
		metrics: rec,
		logger:  logger,
	}
}

// ValidatePlayers checks game creation input, reporting every issue
func (s *Service) ValidatePlayers(players []model.PlayerInput) []model.Issue {
	issues := validation.ValidatePlayers(s.players, players)
	if len(issues) > 0 {
		s.metrics.ValidationFailed(variant)
	}
	return issues
}

// ValidateRound checks a raw round body, so a missing phase or score
// is reported instead of being read as zero.
func (s *Service) ValidateRound(data []byte) []model.Issue {
	issues := validation.Phase10Round().ValidateJSON(data)
	if len(issues) > 0 {
		s.metrics.ValidationFailed(variant)
	}
	return issues
}

// CreateGame starts a game with every player on phase 1. The player count
// is checked before names are compared.
func (s *Service) CreateGame(ctx context.Context, players []model.PlayerInput) (model.Phase10Game, error) {
	if len(players) > model.Phase10MaxPlayers {
		return model.Phase10Game{}, &model.TooManyPlayersError{Max: model.Phase10MaxPlayers}
	}
	if err := roster.EnsureUnique(players); err != nil {
		return model.Phase10Game{}, err
	}

	game := newGame(
		model.GameID(s.ids.NewID()),
		s.clock.Now(),
		roster.AssignIDs(players, s.ids),
	)
	if err := s.repo.Save(ctx, game); err != nil {
		return model.Phase10Game{}, err
	}

	s.metrics.GameCreated(variant)
	s.logger.Info("game created",
		slog.String("game", variant),
		slog.String("game_id", string(game.ID)),
		slog.Int("players", len(game.Players)),
	)
	return game, nil
}

// AddRound records one round. Only players listed in the input receive a
// round entry, but the game's round counter always advances by one.
func (s *Service) AddRound(ctx context.Context, id model.GameID, input model.Phase10RoundInput) (model.Phase10Game, error) {
	if issues := validation.ValidatePhase10Round(input); len(issues) > 0 {
		s.metrics.ValidationFailed(variant)
		return model.Phase10Game{}, &model.ValidationError{Issues: issues}
	}

	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Phase10Game{}, err
	}
	if game.IsCompleted() {
		return model.Phase10Game{}, model.ErrGameCompleted
	}

	updated := applyRound(game, input)
	if err := s.repo.Save(ctx, updated); err != nil {
		return model.Phase10Game{}, err
	}

	s.metrics.RoundRecorded(variant)
	s.logger.Info("round recorded",
		slog.String("game", variant),
		slog.String("game_id", string(updated.ID)),
		slog.Int("round", updated.Rounds),
	)
	return updated, nil
}

// GetGame returns a single game
func (s *Service) GetGame(ctx context.Context, id model.GameID) (model.Phase10Game, error) {
	return s.repo.GetByID(ctx, id)
}

// ListGames returns every game, most recently started first
func (s *Service) ListGames(ctx context.Context) ([]model.Phase10Game, error) {
	return s.repo.List(ctx)
}

// DeleteGame removes a game; unknown ids are ignored
func (s *Service) DeleteGame(ctx context.Context, id model.GameID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.metrics.GameDeleted(variant)
	s.logger.Info("game deleted",
		slog.String("game", variant),
		slog.String("game_id", string(id)),
	)
	return nil
}

func newGame(id model.GameID, startedAt time.Time, players []model.PlayerInput) model.Phase10Game {
	game := model.Phase10Game{
		ID:        id,
		StartedAt: startedAt,
		Players:   make([]model.Phase10Player, len(players)),
	}
	for i, p := range players {
		game.Players[i] = model.Phase10Player{
			ID:     p.ID,
			Name:   p.Name,
			Phase:  model.Phase10PhaseMin,
			Rounds: []model.Phase10Round{},
		}
	}
	return game
}

// applyRound returns a copy of game with the round applied. A phase counts
// as completed only when the new phase is above the player's previous one;
// the phase is taken as given even if it went down.
func applyRound(game model.Phase10Game, input model.Phase10RoundInput) model.Phase10Game {
	next := game.Clone()
	for i := range next.Players {
		p := &next.Players[i]
		entry, ok := findEntry(input.Players, p.ID)
		if !ok {
			continue
		}
		p.Rounds = append(p.Rounds, model.Phase10Round{
			Phase:          entry.Phase,
			Score:          entry.Score,
			PhaseCompleted: entry.Phase > p.Phase,
		})
		p.Phase = entry.Phase
		p.Score += entry.Score
	}
	next.Rounds = game.Rounds + 1
	return next
}

func findEntry(entries []model.Phase10RoundEntry, id model.PlayerID) (model.Phase10RoundEntry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.Phase10RoundEntry{}, false
}
