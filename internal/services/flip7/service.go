// Package flip7 keeps score for Flip 7 games. Round scores accumulate into
// player totals until a single player leads at or above the winning score.
package flip7

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
	"github.com/mcoot/scorekeeper/internal/services/scoring"
	"github.com/mcoot/scorekeeper/internal/validation"
)

var variant = string(model.VariantFlip7)

// Service implements the Flip 7 use cases
type Service struct {
	repo    *repository.Repository[model.Flip7Game]
	clock   clock.Clock
	ids     idgen.Generator
	scoring *scoring.Service
	players *validation.Validator
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// New creates a Flip 7 service
func New(
	repo *repository.Repository[model.Flip7Game],
	clk clock.Clock,
	ids idgen.Generator,
	scorer *scoring.Service,
	rec *metrics.Recorder,
	logger *slog.Logger,
) *Service {
	return &Service{
		repo:    repo,
		clock:   clk,
		ids:     ids,
		scoring: scorer,
		players: validation.NewPlayersValidator(validation.Flip7MinPlayers, validation.Flip7MaxPlayers),
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

// ValidateRound checks a raw round body, so a missing score is
// reported instead of being read as zero.
func (s *Service) ValidateRound(data []byte) []model.Issue {
	issues := validation.Flip7Round().ValidateJSON(data)
	if len(issues) > 0 {
		s.metrics.ValidationFailed(variant)
	}
	return issues
}

// CreateGame starts a game with every total at zero
func (s *Service) CreateGame(ctx context.Context, players []model.PlayerInput) (model.Flip7Game, error) {
	if err := roster.EnsureUnique(players); err != nil {
		return model.Flip7Game{}, err
	}

	game := newGame(
		model.GameID(s.ids.NewID()),
		s.clock.Now(),
		roster.AssignIDs(players, s.ids),
	)
	if err := s.repo.Save(ctx, game); err != nil {
		return model.Flip7Game{}, err
	}

	s.metrics.GameCreated(variant)
	s.logger.Info("game created",
		slog.String("game", variant),
		slog.String("game_id", string(game.ID)),
		slog.Int("players", len(game.Players)),
	)
	return game, nil
}

// AddRoundScore records a round and completes the game once a single
// player leads at or above the winning score.
func (s *Service) AddRoundScore(ctx context.Context, id model.GameID, input model.Flip7RoundInput) (model.Flip7Game, error) {
	if issues := validation.ValidateFlip7Round(input); len(issues) > 0 {
		s.metrics.ValidationFailed(variant)
		return model.Flip7Game{}, &model.ValidationError{Issues: issues}
	}

	game, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.Flip7Game{}, err
	}
	if game.IsCompleted() {
		return model.Flip7Game{}, model.ErrGameCompleted
	}

	updated := applyRound(game, input, s.clock.Now(), s.scoring)
	if err := s.repo.Save(ctx, updated); err != nil {
		return model.Flip7Game{}, err
	}

	s.metrics.RoundRecorded(variant)
	s.logger.Info("round recorded",
		slog.String("game", variant),
		slog.String("game_id", string(updated.ID)),
		slog.Int("round", len(updated.Rounds)),
	)
	if updated.IsCompleted() {
		s.metrics.GameCompleted(variant)
		s.logger.Info("game completed",
			slog.String("game", variant),
			slog.String("game_id", string(updated.ID)),
			slog.String("winner_id", string(*updated.WinnerID)),
		)
	}
	return updated, nil
}

// GetGame returns the full details of one game
func (s *Service) GetGame(ctx context.Context, id model.GameID) (model.Flip7Game, error) {
	return s.repo.GetByID(ctx, id)
}

// ListGames returns a summary of every game, most recently created first
func (s *Service) ListGames(ctx context.Context) ([]model.Flip7Summary, error) {
	games, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.Flip7Summary, len(games))
	for i, g := range games {
		summaries[i] = g.Summary()
	}
	return summaries, nil
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

func newGame(id model.GameID, createdAt time.Time, players []model.PlayerInput) model.Flip7Game {
	game := model.Flip7Game{
		ID:        id,
		CreatedAt: createdAt,
		Players:   make([]model.Flip7Player, len(players)),
		Rounds:    []model.Flip7Round{},
	}
	for i, p := range players {
		game.Players[i] = model.Flip7Player{ID: p.ID, Name: p.Name}
	}
	return game
}

// applyRound returns a copy of game with the round appended, matching
// players' totals increased and the winner settled if there is one.
func applyRound(game model.Flip7Game, input model.Flip7RoundInput, now time.Time, scorer *scoring.Service) model.Flip7Game {
	next := game.Clone()

	scores := make([]model.Flip7Score, len(input.Players))
	for i, entry := range input.Players {
		scores[i] = model.Flip7Score{PlayerID: entry.ID, Score: entry.Score}
	}
	next.Rounds = append(next.Rounds, model.Flip7Round{
		Index:   len(game.Rounds) + 1,
		Scores:  scores,
		SavedAt: now,
	})

	for i := range next.Players {
		if score, ok := findScore(input.Players, next.Players[i].ID); ok {
			next.Players[i].Total += score
		}
	}

	if winner, ok := scorer.Flip7Winner(next.Players); ok {
		completedAt := now
		next.CompletedAt = &completedAt
		next.WinnerID = &winner
	}
	return next
}

func findScore(entries []model.Flip7RoundEntry, id model.PlayerID) (int, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e.Score, true
		}
	}
	return 0, false
}
