package phase10

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scorekeeper/internal/dependencies/mocks"
	"github.com/mcoot/scorekeeper/internal/model"
	"github.com/mcoot/scorekeeper/internal/repository"
	"github.com/mcoot/scorekeeper/internal/storage/memory"
	"github.com/mcoot/scorekeeper/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	repo    *repository.Repository[model.Phase10Game]
	clock   *mocks.MockClock
	ids     *mocks.MockIDGenerator
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.repo = repository.NewPhase10(s.storage, logger)
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.ids = mocks.NewMockIDGenerator()
	s.service = New(s.repo, s.clock, s.ids, nil, logger)
	s.ctx = context.Background()
}

func (s *ServiceSuite) createGame(names ...string) model.Phase10Game {
	players := make([]model.PlayerInput, len(names))
	for i, n := range names {
		players[i] = model.PlayerInput{ID: model.PlayerID("p" + n), Name: n}
	}
	game, err := s.service.CreateGame(s.ctx, players)
	s.Require().NoError(err)
	return game
}

func (s *ServiceSuite) addRound(id model.GameID, entries ...model.Phase10RoundEntry) model.Phase10Game {
	game, err := s.service.AddRound(s.ctx, id, model.Phase10RoundInput{Players: entries})
	s.Require().NoError(err)
	return game
}

func names(n int) []model.PlayerInput {
	players := make([]model.PlayerInput, n)
	for i := range players {
		players[i] = model.PlayerInput{Name: string(rune('A' + i))}
	}
	return players
}

// CreateGame tests

func (s *ServiceSuite) TestCreateGame() {
	s.ids.Queue("game-1")

	game, err := s.service.CreateGame(s.ctx, []model.PlayerInput{{Name: "Alice"}, {ID: "bob", Name: "Bob"}})
	s.Require().NoError(err)

	s.Equal(model.GameID("game-1"), game.ID)
	s.Equal(s.clock.Now(), game.StartedAt)
	s.Nil(game.CompletedAt)
	s.Equal(0, game.Rounds)
	s.Require().Len(game.Players, 2)
	s.NotEmpty(game.Players[0].ID)
	s.Equal(model.PlayerID("bob"), game.Players[1].ID)
	for _, p := range game.Players {
		s.Equal(1, p.Phase)
		s.Equal(0, p.Score)
		s.Empty(p.Rounds)
	}

	stored, err := s.service.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game, stored)
}

func (s *ServiceSuite) TestCreateGameTooManyPlayers() {
	_, err := s.service.CreateGame(s.ctx, names(7))

	s.ErrorIs(err, model.ErrTooManyPlayers)
	s.EqualError(err, "maximum number of players exceeded: you can add up to 6 players")
	s.Equal(0, s.storage.Writes())
}

func (s *ServiceSuite) TestCreateGameCountCheckedBeforeNames() {
	players := names(7)
	players[6].Name = "a"

	_, err := s.service.CreateGame(s.ctx, players)

	s.ErrorIs(err, model.ErrTooManyPlayers)
	s.NotErrorIs(err, model.ErrDuplicatePlayerName)
}

func (s *ServiceSuite) TestCreateGameSixPlayersAllowed() {
	game, err := s.service.CreateGame(s.ctx, names(6))
	s.Require().NoError(err)
	s.Len(game.Players, 6)
}

func (s *ServiceSuite) TestCreateGameRejectsDuplicateNames() {
	_, err := s.service.CreateGame(s.ctx, []model.PlayerInput{{Name: "Alice"}, {Name: "alice "}})

	s.ErrorIs(err, model.ErrDuplicatePlayerName)
	s.Equal(0, s.storage.Writes())
}

// AddRound tests

func (s *ServiceSuite) TestAddRoundPhaseCompletion() {
	game := s.createGame("A", "B")
	game = s.addRound(game.ID,
		model.Phase10RoundEntry{ID: "pA", Phase: 3, Score: 10},
		model.Phase10RoundEntry{ID: "pB", Phase: 2, Score: 20},
	)

	game = s.addRound(game.ID,
		model.Phase10RoundEntry{ID: "pA", Phase: 3, Score: 15},
		model.Phase10RoundEntry{ID: "pB", Phase: 3, Score: 5},
	)

	a, b := game.Players[0], game.Players[1]
	s.Equal([]model.Phase10Round{
		{Phase: 3, Score: 10, PhaseCompleted: true},
		{Phase: 3, Score: 15, PhaseCompleted: false},
	}, a.Rounds)
	s.Equal([]model.Phase10Round{
		{Phase: 2, Score: 20, PhaseCompleted: true},
		{Phase: 3, Score: 5, PhaseCompleted: true},
	}, b.Rounds)
	s.Equal(3, a.Phase)
	s.Equal(25, a.Score)
	s.Equal(3, b.Phase)
	s.Equal(25, b.Score)
	s.Equal(2, game.Rounds)
}

func (s *ServiceSuite) TestAddRoundPhaseMayGoDown() {
	game := s.createGame("A")
	game = s.addRound(game.ID, model.Phase10RoundEntry{ID: "pA", Phase: 4, Score: 0})

	game = s.addRound(game.ID, model.Phase10RoundEntry{ID: "pA", Phase: 2, Score: 0})

	s.Equal(2, game.Players[0].Phase)
	s.False(game.Players[0].Rounds[1].PhaseCompleted)
}

func (s *ServiceSuite) TestAddRoundCounterIgnoresPlayerCount() {
	game := s.createGame("A", "B", "C")

	game = s.addRound(game.ID, model.Phase10RoundEntry{ID: "pB", Phase: 1, Score: 50})

	s.Equal(1, game.Rounds)
	s.Empty(game.Players[0].Rounds)
	s.Len(game.Players[1].Rounds, 1)
	s.Empty(game.Players[2].Rounds)
	s.Equal(0, game.Players[0].Score)
	s.Equal(1, game.Players[0].Phase)

	game = s.addRound(game.ID, model.Phase10RoundEntry{ID: "unknown", Phase: 1, Score: 5})
	s.Equal(2, game.Rounds)
}

func (s *ServiceSuite) TestAddRoundInvalidInput() {
	game := s.createGame("A")
	writes := s.storage.Writes()

	_, err := s.service.AddRound(s.ctx, game.ID, model.Phase10RoundInput{
		Players: []model.Phase10RoundEntry{
			{ID: "pA", Phase: 11, Score: 7},
		},
	})

	var verr *model.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.ErrorIs(err, model.ErrInvalidRoundInput)
	s.Equal([]model.Issue{
		{Path: "players.0.phase", Message: "Phase must be <= 10"},
		{Path: "players.0.score", Message: "Score must be divisible by 5"},
	}, verr.Issues)
	s.EqualError(err, "invalid round input: players.0.phase: Phase must be <= 10; players.0.score: Score must be divisible by 5")
	s.Equal(writes, s.storage.Writes())
}

func (s *ServiceSuite) TestAddRoundRejectsEmptyPlayerID() {
	game := s.createGame("A", "B")
	writes := s.storage.Writes()

	_, err := s.service.AddRound(s.ctx, game.ID, model.Phase10RoundInput{
		Players: []model.Phase10RoundEntry{{ID: "", Phase: 1, Score: 10}},
	})

	var verr *model.ValidationError
	s.Require().ErrorAs(err, &verr)
	s.Equal([]model.Issue{{Path: "players.0.id", Message: "Required"}}, verr.Issues)
	s.Equal(writes, s.storage.Writes())

	stored, err := s.service.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(0, stored.Rounds)
}

func (s *ServiceSuite) TestValidateRoundReportsMissingPhase() {
	issues := s.service.ValidateRound([]byte(`{"players":[{"id":"pA","score":10}]}`))

	s.Equal([]model.Issue{{Path: "players.0.phase", Message: "Required"}}, issues)
	s.Empty(s.service.ValidateRound([]byte(`{"players":[{"id":"pA","phase":2,"score":10}]}`)))
}

func (s *ServiceSuite) TestAddRoundGameNotFound() {
	_, err := s.service.AddRound(s.ctx, "missing", model.Phase10RoundInput{
		Players: []model.Phase10RoundEntry{{ID: "p", Phase: 1, Score: 0}},
	})
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ServiceSuite) TestAddRoundRejectsCompletedGame() {
	game := s.createGame("A")
	completed := s.clock.Now()
	game.CompletedAt = &completed
	s.Require().NoError(s.repo.Save(s.ctx, game))
	writes := s.storage.Writes()

	_, err := s.service.AddRound(s.ctx, game.ID, model.Phase10RoundInput{
		Players: []model.Phase10RoundEntry{{ID: "pA", Phase: 2, Score: 0}},
	})

	s.ErrorIs(err, model.ErrGameCompleted)
	s.Equal(writes, s.storage.Writes())
}

func (s *ServiceSuite) TestApplyRoundDoesNotModifyInput() {
	game := s.createGame("A")

	next := applyRound(game, model.Phase10RoundInput{
		Players: []model.Phase10RoundEntry{{ID: "pA", Phase: 2, Score: 5}},
	})

	s.Equal(1, next.Rounds)
	s.Len(next.Players[0].Rounds, 1)
	s.Equal(0, game.Rounds)
	s.Empty(game.Players[0].Rounds)
	s.Equal(1, game.Players[0].Phase)
}

// List, delete and phase details tests

func (s *ServiceSuite) TestListAndDelete() {
	first := s.createGame("A")
	s.clock.Advance(time.Second)
	second := s.createGame("B")

	games, err := s.service.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(second.ID, games[0].ID)

	s.Require().NoError(s.service.DeleteGame(s.ctx, second.ID))
	games, err = s.service.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(first.ID, games[0].ID)
}

func (s *ServiceSuite) TestValidatePlayers() {
	s.Equal([]model.Issue{{Path: "players", Message: "Max 6 players"}}, s.service.ValidatePlayers(names(7)))
	s.Empty(s.service.ValidatePlayers(names(6)))
}

func (s *ServiceSuite) TestPhaseDetails() {
	s.Equal("2 sets of 3", PhaseDetails(1))
	s.Equal("7 cards of a color", PhaseDetails(8))
	s.Equal("1 set of 5 and 1 set of 3", PhaseDetails(10))
	s.Equal(InvalidPhase, PhaseDetails(0))
	s.Equal(InvalidPhase, PhaseDetails(11))
}
