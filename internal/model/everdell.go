package model

import "time"

// ScoreSheet maps module name -> component name -> points
type ScoreSheet map[string]map[string]int

// Clone returns a deep copy of the sheet
func (s ScoreSheet) Clone() ScoreSheet {
	if s == nil {
		return nil
	}
	out := make(ScoreSheet, len(s))
	for module, components := range s {
		cells := make(map[string]int, len(components))
		for component, value := range components {
			cells[component] = value
		}
		out[module] = cells
	}
	return out
}

// Sum adds every cell across all modules
func (s ScoreSheet) Sum() int {
	total := 0
	for _, components := range s {
		for _, value := range components {
			total += value
		}
	}
	return total
}

// EverdellPlayer is a player in an Everdell game
type EverdellPlayer struct {
	ID     PlayerID   `json:"id"`
	Name   string     `json:"name"`
	Scores ScoreSheet `json:"scores"`
	Total  int        `json:"total"` // derived from Scores
}

// EverdellGame is the persisted Everdell aggregate.
// Only current per-component values are kept; there is no round history.
type EverdellGame struct {
	ID          GameID           `json:"id"`
	StartedAt   time.Time        `json:"startedAt"`
	CompletedAt *time.Time       `json:"completedAt"`
	Players     []EverdellPlayer `json:"players"`
}

func (g EverdellGame) GameID() GameID         { return g.ID }
func (g EverdellGame) StartedTime() time.Time { return g.StartedAt }
func (g EverdellGame) IsCompleted() bool      { return g.CompletedAt != nil }

// Clone returns a deep copy of the game
func (g EverdellGame) Clone() EverdellGame {
	out := g
	out.CompletedAt = cloneTime(g.CompletedAt)
	out.Players = make([]EverdellPlayer, len(g.Players))
	for i, p := range g.Players {
		p.Scores = p.Scores.Clone()
		out.Players[i] = p
	}
	return out
}

// EverdellScore is one player's value for a single module component
type EverdellScore struct {
	PlayerID PlayerID `json:"playerId"`
	Score    int      `json:"score"`
}

// EverdellScoreInput updates one module component for some or all players
type EverdellScoreInput struct {
	GameID    GameID
	Module    string
	Component string
	Scores    []EverdellScore
}

// ScoreRow is one component of the catalogue with every player's value,
// ready for tabular display.
type ScoreRow struct {
	Key    string      `json:"key"`
	Title  string      `json:"title"`
	Scores []ScoreCell `json:"scores"`
}

// ScoreCell is a single player's value within a ScoreRow
type ScoreCell struct {
	Key      string   `json:"key"`
	PlayerID PlayerID `json:"playerId"`
	Value    int      `json:"value"`
}
