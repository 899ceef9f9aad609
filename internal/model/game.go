package model

import "time"

// GameID uniquely identifies a game
type GameID string

// Variant names a supported board game
type Variant string

const (
	VariantEverdell Variant = "everdell"
	VariantFlip7    Variant = "flip7"
	VariantPhase10  Variant = "phase10"
)

// Aggregate is implemented by every persisted game record so the
// repository can handle all variants uniformly.
type Aggregate interface {
	GameID() GameID
	StartedTime() time.Time
	IsCompleted() bool
}

// cloneTime copies an optional timestamp so next-state values never share
// a pointer with the state they were built from.
func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
