package model

import (
	"slices"
	"time"
)

// Flip7WinningScore is the total a player must reach before a winner
// can be declared.
const Flip7WinningScore = 200

// Flip7Status summarises whether a Flip 7 game is still being played
type Flip7Status string

const (
	Flip7StatusInProgress Flip7Status = "in-progress"
	Flip7StatusCompleted  Flip7Status = "completed"
)

// Flip7Player is a player in a Flip 7 game
type Flip7Player struct {
	ID    PlayerID `json:"id"`
	Name  string   `json:"name"`
	Total int      `json:"total"`
}

// Flip7Score is one player's points for a round
type Flip7Score struct {
	PlayerID PlayerID `json:"playerId"`
	Score    int      `json:"score"`
}

// Flip7Round is an immutable record of one scoring submission
type Flip7Round struct {
	Index   int          `json:"index"`
	Scores  []Flip7Score `json:"scores"`
	SavedAt time.Time    `json:"savedAt"`
}

// Flip7Game is the persisted Flip 7 aggregate
type Flip7Game struct {
	ID          GameID        `json:"id"`
	CreatedAt   time.Time     `json:"createdAt"`
	CompletedAt *time.Time    `json:"completedAt"`
	Players     []Flip7Player `json:"players"`
	Rounds      []Flip7Round  `json:"rounds"`
	WinnerID    *PlayerID     `json:"winnerId"`
}

func (g Flip7Game) GameID() GameID         { return g.ID }
func (g Flip7Game) StartedTime() time.Time { return g.CreatedAt }
func (g Flip7Game) IsCompleted() bool      { return g.CompletedAt != nil }

// Status reports completed once completedAt has been set
func (g Flip7Game) Status() Flip7Status {
	if g.CompletedAt != nil {
		return Flip7StatusCompleted
	}
	return Flip7StatusInProgress
}

// Clone returns a deep copy of the game
func (g Flip7Game) Clone() Flip7Game {
	out := g
	out.CompletedAt = cloneTime(g.CompletedAt)
	out.Players = slices.Clone(g.Players)
	out.Rounds = make([]Flip7Round, len(g.Rounds))
	for i, r := range g.Rounds {
		r.Scores = slices.Clone(r.Scores)
		out.Rounds[i] = r
	}
	if g.WinnerID != nil {
		id := *g.WinnerID
		out.WinnerID = &id
	}
	return out
}

// Flip7Summary is the list view of a Flip 7 game
type Flip7Summary struct {
	ID          GameID      `json:"id"`
	CreatedAt   time.Time   `json:"createdAt"`
	CompletedAt *time.Time  `json:"completedAt"`
	PlayerCount int         `json:"playerCount"`
	RoundsCount int         `json:"roundsCount"`
	Status      Flip7Status `json:"status"`
	WinnerID    *PlayerID   `json:"winnerId"`
}

// Summary projects the game into its list view
func (g Flip7Game) Summary() Flip7Summary {
	return Flip7Summary{
		ID:          g.ID,
		CreatedAt:   g.CreatedAt,
		CompletedAt: cloneTime(g.CompletedAt),
		PlayerCount: len(g.Players),
		RoundsCount: len(g.Rounds),
		Status:      g.Status(),
		WinnerID:    g.WinnerID,
	}
}

// Flip7RoundEntry is one player's score within a round submission
type Flip7RoundEntry struct {
	ID    PlayerID `json:"id"`
	Score int      `json:"score"`
}

// Flip7RoundInput is the payload for recording a Flip 7 round
type Flip7RoundInput struct {
	Players []Flip7RoundEntry `json:"players"`
}
