package model

import (
	"slices"
	"time"
)

// Phase 10 bounds
const (
	Phase10MaxPlayers = 6
	Phase10PhaseMin   = 1
	Phase10PhaseMax   = 10
	Phase10ScoreMin   = 0
	Phase10ScoreStep  = 5
)

// Phase10Round is one player's result for a single round
type Phase10Round struct {
	Phase          int  `json:"phase"`
	Score          int  `json:"score"`
	PhaseCompleted bool `json:"phaseCompleted"`
}

// Phase10Player is a player in a Phase 10 game
type Phase10Player struct {
	ID     PlayerID       `json:"id"`
	Name   string         `json:"name"`
	Score  int            `json:"score"`
	Phase  int            `json:"phase"`
	Rounds []Phase10Round `json:"rounds"`
}

// Phase10Game is the persisted Phase 10 aggregate
type Phase10Game struct {
	ID          GameID          `json:"id"`
	StartedAt   time.Time       `json:"startedAt"`
	CompletedAt *time.Time      `json:"completedAt"`
	Players     []Phase10Player `json:"players"`
	Rounds      int             `json:"rounds"` // number of rounds played
}

func (g Phase10Game) GameID() GameID         { return g.ID }
func (g Phase10Game) StartedTime() time.Time { return g.StartedAt }
func (g Phase10Game) IsCompleted() bool      { return g.CompletedAt != nil }

// Clone returns a deep copy of the game
func (g Phase10Game) Clone() Phase10Game {
	out := g
	out.CompletedAt = cloneTime(g.CompletedAt)
	out.Players = make([]Phase10Player, len(g.Players))
	for i, p := range g.Players {
		p.Rounds = slices.Clone(p.Rounds)
		out.Players[i] = p
	}
	return out
}

// Phase10RoundEntry is one player's result within a round submission
type Phase10RoundEntry struct {
	ID    PlayerID `json:"id"`
	Phase int      `json:"phase"`
	Score int      `json:"score"`
}

// Phase10RoundInput is the payload for recording a Phase 10 round
type Phase10RoundInput struct {
	Players []Phase10RoundEntry `json:"players"`
}
