// Package everdell keeps score for Everdell games. Scores are entered per
// module component and overwrite the previous value; there is no round
// history.
package everdell

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

var variant = string(model.VariantEverdell)

// Service implements the Everdell use cases
type Service struct {
	repo    *repository.Repository[model.EverdellGame]
	clock   clock.Clock
	ids     idgen.Generator
	players *validation.Validator
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// New creates an Everdell service. maxPlayers bounds game creation input;
// values below one fall back to validation.DefaultEverdellMaxPlayers.
func New(
	repo *repository.Repository[model.EverdellGame],
	clk clock.Clock,
	ids idgen.Generator,
	maxPlayers int,
	rec *metrics.Recorder,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:    repo,
		clock:   clk,
		ids:     ids,
		players: validation.NewPlayerValidators(maxPlayers).Everdell,
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

// ValidateScores checks a raw add-score body, reporting every issue. It
// runs before decoding so absent fields are not read as zero values.
func (s *Service) ValidateScores(data []byte) []model.Issue {
	issues := validation.EverdellScore().ValidateJSON(data)
	if len(issues) > 0 {
		s.metrics.ValidationFailed(variant)
	}
	return issues
}

// CreateGame starts a game with every catalogue cell at zero
func (s *Service) CreateGame(ctx context.Context, players []model.PlayerInput) (model.EverdellGame, error) {
	if err := roster.EnsureUnique(players); err != nil {
		return model.EverdellGame{}, err
	}

	game := newGame(
		model.GameID(s.ids.NewID()),
		s.clock.Now(),
		roster.AssignIDs(players, s.ids),
	)
	if err := s.repo.Save(ctx, game); err != nil {
		return model.EverdellGame{}, err
	}

	s.metrics.GameCreated(variant)
	s.logger.Info("game created",
		slog.String("game", variant),
		slog.String("game_id", string(game.ID)),
		slog.Int("players", len(game.Players)),
	)
	return game, nil
}

// AddScore overwrites one module component for the players listed in the
// input. Players without an entry keep their current value.
func (s *Service) AddScore(ctx context.Context, input model.EverdellScoreInput) (model.EverdellGame, error) {
	game, err := s.repo.GetByID(ctx, input.GameID)
	if err != nil {
		return model.EverdellGame{}, err
	}
	if game.IsCompleted() {
		return model.EverdellGame{}, model.ErrGameCompleted
	}
	if _, _, err := ModuleComponent(input.Module, input.Component); err != nil {
		return model.EverdellGame{}, err
	}

	updated := applyScore(game, input.Module, input.Component, input.Scores)
	if err := s.repo.Save(ctx, updated); err != nil {
		return model.EverdellGame{}, err
	}

	s.metrics.RoundRecorded(variant)
	s.logger.Info("score recorded",
		slog.String("game", variant),
		slog.String("game_id", string(updated.ID)),
		slog.String("module", input.Module),
		slog.String("component", input.Component),
	)
	return updated, nil
}

// GetGame returns a single game
func (s *Service) GetGame(ctx context.Context, id model.GameID) (model.EverdellGame, error) {
	return s.repo.GetByID(ctx, id)
}

// ListGames returns every game, most recently started first
func (s *Service) ListGames(ctx context.Context) ([]model.EverdellGame, error) {
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

func newGame(id model.GameID, startedAt time.Time, players []model.PlayerInput) model.EverdellGame {
	game := model.EverdellGame{
		ID:        id,
		StartedAt: startedAt,
		Players:   make([]model.EverdellPlayer, len(players)),
	}
	for i, p := range players {
		game.Players[i] = model.EverdellPlayer{
			ID:     p.ID,
			Name:   p.Name,
			Scores: emptyScoreSheet(),
		}
	}
	return game
}

// applyScore returns a copy of game with the cell updated for matching
// players and every total recomputed from the full sheet.
func applyScore(game model.EverdellGame, module, component string, scores []model.EverdellScore) model.EverdellGame {
	next := game.Clone()
	for i := range next.Players {
		p := &next.Players[i]
		if value, ok := findScore(scores, p.ID); ok {
			if p.Scores == nil {
				p.Scores = model.ScoreSheet{}
			}
			if p.Scores[module] == nil {
				p.Scores[module] = map[string]int{}
			}
			p.Scores[module][component] = value
		}
		p.Total = p.Scores.Sum()
	}
	return next
}

func findScore(scores []model.EverdellScore, id model.PlayerID) (int, bool) {
	for _, sc := range scores {
		if sc.PlayerID == id {
			return sc.Score, true
		}
	}
	return 0, false
}
