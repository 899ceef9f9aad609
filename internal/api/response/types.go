package response

import (
	"time"

	"github.com/mcoot/scorekeeper/internal/model"
)

func optionalString[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

// EverdellPlayer represents an Everdell player in API responses
type EverdellPlayer struct {
	ID     string                    `json:"id"`
	Name   string                    `json:"name"`
	Scores map[string]map[string]int `json:"scores"`
	Total  int                       `json:"total"`
}

// EverdellGame represents an Everdell game in API responses
type EverdellGame struct {
	ID          string           `json:"id"`
	StartedAt   time.Time        `json:"started_at"`
	CompletedAt *time.Time       `json:"completed_at"`
	Players     []EverdellPlayer `json:"players"`
}

// EverdellGameFromModel converts a model.EverdellGame
func EverdellGameFromModel(g model.EverdellGame) EverdellGame {
	players := make([]EverdellPlayer, len(g.Players))
	for i, p := range g.Players {
		players[i] = EverdellPlayer{
			ID:     string(p.ID),
			Name:   p.Name,
			Scores: p.Scores,
			Total:  p.Total,
		}
	}
	return EverdellGame{
		ID:          string(g.ID),
		StartedAt:   g.StartedAt,
		CompletedAt: g.CompletedAt,
		Players:     players,
	}
}

// EverdellGamesFromModel converts a list of Everdell games
func EverdellGamesFromModel(games []model.EverdellGame) []EverdellGame {
	out := make([]EverdellGame, len(games))
	for i, g := range games {
		out[i] = EverdellGameFromModel(g)
	}
	return out
}

// ScoreCell is one player's value within a score row
type ScoreCell struct {
	Key      string `json:"key"`
	PlayerID string `json:"player_id"`
	Value    int    `json:"value"`
}

// ScoreRow is one catalogue component with every player's value
type ScoreRow struct {
	Key    string      `json:"key"`
	Title  string      `json:"title"`
	Scores []ScoreCell `json:"scores"`
}

// ScoreRowsFromModel converts the tabular Everdell view
func ScoreRowsFromModel(rows []model.ScoreRow) []ScoreRow {
	out := make([]ScoreRow, len(rows))
	for i, row := range rows {
		cells := make([]ScoreCell, len(row.Scores))
		for j, c := range row.Scores {
			cells[j] = ScoreCell{Key: c.Key, PlayerID: string(c.PlayerID), Value: c.Value}
		}
		out[i] = ScoreRow{Key: row.Key, Title: row.Title, Scores: cells}
	}
	return out
}

// Flip7Player represents a Flip 7 player in API responses
type Flip7Player struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Total int    `json:"total"`
}

// Flip7Score is one player's points within a round
type Flip7Score struct {
	PlayerID string `json:"player_id"`
	Score    int    `json:"score"`
}

// Flip7Round represents a recorded Flip 7 round
type Flip7Round struct {
	Index   int          `json:"index"`
	Scores  []Flip7Score `json:"scores"`
	SavedAt time.Time    `json:"saved_at"`
}

// Flip7Game represents a Flip 7 game in API responses
type Flip7Game struct {
	ID          string        `json:"id"`
	CreatedAt   time.Time     `json:"created_at"`
	CompletedAt *time.Time    `json:"completed_at"`
	Status      string        `json:"status"`
	Players     []Flip7Player `json:"players"`
	Rounds      []Flip7Round  `json:"rounds"`
	WinnerID    *string       `json:"winner_id"`
}

// Flip7GameFromModel converts a model.Flip7Game
func Flip7GameFromModel(g model.Flip7Game) Flip7Game {
	players := make([]Flip7Player, len(g.Players))
	for i, p := range g.Players {
		players[i] = Flip7Player{ID: string(p.ID), Name: p.Name, Total: p.Total}
	}
	rounds := make([]Flip7Round, len(g.Rounds))
	for i, r := range g.Rounds {
		scores := make([]Flip7Score, len(r.Scores))
		for j, s := range r.Scores {
			scores[j] = Flip7Score{PlayerID: string(s.PlayerID), Score: s.Score}
		}
		rounds[i] = Flip7Round{Index: r.Index, Scores: scores, SavedAt: r.SavedAt}
	}
	return Flip7Game{
		ID:          string(g.ID),
		CreatedAt:   g.CreatedAt,
		CompletedAt: g.CompletedAt,
		Status:      string(g.Status()),
		Players:     players,
		Rounds:      rounds,
		WinnerID:    optionalString(g.WinnerID),
	}
}

// Flip7Summary is the list view of a Flip 7 game
type Flip7Summary struct {
	ID          string     `json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at"`
	PlayerCount int        `json:"player_count"`
	RoundsCount int        `json:"rounds_count"`
	Status      string     `json:"status"`
	WinnerID    *string    `json:"winner_id"`
}

// Flip7SummariesFromModel converts Flip 7 list views
func Flip7SummariesFromModel(summaries []model.Flip7Summary) []Flip7Summary {
	out := make([]Flip7Summary, len(summaries))
	for i, s := range summaries {
		out[i] = Flip7Summary{
			ID:          string(s.ID),
			CreatedAt:   s.CreatedAt,
			CompletedAt: s.CompletedAt,
			PlayerCount: s.PlayerCount,
			RoundsCount: s.RoundsCount,
			Status:      string(s.Status),
			WinnerID:    optionalString(s.WinnerID),
		}
	}
	return out
}

// Phase10Round is one player's result for a round
type Phase10Round struct {
	Phase          int  `json:"phase"`
	Score          int  `json:"score"`
	PhaseCompleted bool `json:"phase_completed"`
}

// Phase10Player represents a Phase 10 player in API responses
type Phase10Player struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Score  int            `json:"score"`
	Phase  int            `json:"phase"`
	Rounds []Phase10Round `json:"rounds"`
}

// Phase10Game represents a Phase 10 game in API responses
type Phase10Game struct {
	ID          string          `json:"id"`
	StartedAt   time.Time       `json:"started_at"`
	CompletedAt *time.Time      `json:"completed_at"`
	Players     []Phase10Player `json:"players"`
	Rounds      int             `json:"rounds"`
}

// Phase10GameFromModel converts a model.Phase10Game
func Phase10GameFromModel(g model.Phase10Game) Phase10Game {
	players := make([]Phase10Player, len(g.Players))
	for i, p := range g.Players {
		rounds := make([]Phase10Round, len(p.Rounds))
		for j, r := range p.Rounds {
			rounds[j] = Phase10Round{Phase: r.Phase, Score: r.Score, PhaseCompleted: r.PhaseCompleted}
		}
		players[i] = Phase10Player{
			ID:     string(p.ID),
			Name:   p.Name,
			Score:  p.Score,
			Phase:  p.Phase,
			Rounds: rounds,
		}
	}
	return Phase10Game{
		ID:          string(g.ID),
		StartedAt:   g.StartedAt,
		CompletedAt: g.CompletedAt,
		Players:     players,
		Rounds:      g.Rounds,
	}
}

// Phase10GamesFromModel converts a list of Phase 10 games
func Phase10GamesFromModel(games []model.Phase10Game) []Phase10Game {
	out := make([]Phase10Game, len(games))
	for i, g := range games {
		out[i] = Phase10GameFromModel(g)
	}
	return out
}

// PhaseDetails describes a single Phase 10 phase
type PhaseDetails struct {
	Phase       int    `json:"phase"`
	Description string `json:"description"`
}

// Health is the health check response
type Health struct {
	Status string `json:"status"`
}
