package model

// PlayerID uniquely identifies a player within a game
type PlayerID string

// PlayerInput describes a player supplied when creating a game.
// ID is optional; players without one are assigned a fresh identifier.
type PlayerInput struct {
	ID   PlayerID `json:"id,omitempty"`
	Name string   `json:"name"`
}

// DisplayName returns the name as entered, used for duplicate detection
func (p PlayerInput) DisplayName() string {
	return p.Name
}
