package request

import (
	"github.com/mcoot/scorekeeper/internal/model"
)

// Player is one entry in a create-game request. ID is optional.
type Player struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// CreateGameRequest is the request body for creating a game of any variant
type CreateGameRequest struct {
	Players []Player `json:"players"`
}

// ToModel converts the request into service input
func (r CreateGameRequest) ToModel() []model.PlayerInput {
	players := make([]model.PlayerInput, len(r.Players))
	for i, p := range r.Players {
		players[i] = model.PlayerInput{ID: model.PlayerID(p.ID), Name: p.Name}
	}
	return players
}

// EverdellScoreEntry is one player's value in an Everdell add-score request
type EverdellScoreEntry struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	Score    int    `json:"score"`
}

// EverdellScoreRequest is the request body for updating one component
type EverdellScoreRequest struct {
	Module    string               `json:"module"`
	Component string               `json:"component"`
	Players   []EverdellScoreEntry `json:"players"`
}

// ToModel converts the request into service input for the given game
func (r EverdellScoreRequest) ToModel(id model.GameID) model.EverdellScoreInput {
	scores := make([]model.EverdellScore, len(r.Players))
	for i, p := range r.Players {
		scores[i] = model.EverdellScore{PlayerID: model.PlayerID(p.PlayerID), Score: p.Score}
	}
	return model.EverdellScoreInput{
		GameID:    id,
		Module:    r.Module,
		Component: r.Component,
		Scores:    scores,
	}
}

// Flip7RoundEntry is one player's points in a Flip 7 round request
type Flip7RoundEntry struct {
	ID    string `json:"id"`
	Score int    `json:"score"`
}

// Flip7RoundRequest is the request body for recording a Flip 7 round
type Flip7RoundRequest struct {
	Players []Flip7RoundEntry `json:"players"`
}

// ToModel converts the request into service input
func (r Flip7RoundRequest) ToModel() model.Flip7RoundInput {
	entries := make([]model.Flip7RoundEntry, len(r.Players))
	for i, p := range r.Players {
		entries[i] = model.Flip7RoundEntry{ID: model.PlayerID(p.ID), Score: p.Score}
	}
	return model.Flip7RoundInput{Players: entries}
}

// Phase10RoundEntry is one player's result in a Phase 10 round request
type Phase10RoundEntry struct {
	ID    string `json:"id"`
	Phase int    `json:"phase"`
	Score int    `json:"score"`
}

// Phase10RoundRequest is the request body for recording a Phase 10 round
type Phase10RoundRequest struct {
	Players []Phase10RoundEntry `json:"players"`
}

// ToModel converts the request into service input
func (r Phase10RoundRequest) ToModel() model.Phase10RoundInput {
	entries := make([]model.Phase10RoundEntry, len(r.Players))
	for i, p := range r.Players {
		entries[i] = model.Phase10RoundEntry{ID: model.PlayerID(p.ID), Phase: p.Phase, Score: p.Score}
	}
	return model.Phase10RoundInput{Players: entries}
}
