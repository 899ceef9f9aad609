package model

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound   = errors.New("game not found")
	ErrGameCompleted  = errors.New("game already completed")
	ErrTooManyPlayers = errors.New("maximum number of players exceeded")

	// Player errors
	ErrDuplicatePlayerName = errors.New("player names must be unique")

	// Everdell catalogue errors
	ErrModuleNotFound    = errors.New("module not found")
	ErrComponentNotFound = errors.New("component not found")

	// Input errors
	ErrInvalidRoundInput = errors.New("invalid round input")
)

// DuplicatePlayerNameError is returned when a game is created with two
// players whose names collide after normalization.
type DuplicatePlayerNameError struct {
	Name string
}

func (e *DuplicatePlayerNameError) Error() string {
	if e.Name == "" {
		return ErrDuplicatePlayerName.Error()
	}
	return fmt.Sprintf("%s: duplicate name %q", ErrDuplicatePlayerName, e.Name)
}

// Is lets errors.Is match against ErrDuplicatePlayerName.
func (e *DuplicatePlayerNameError) Is(target error) bool {
	return target == ErrDuplicatePlayerName
}

// TooManyPlayersError carries the limit that was exceeded.
type TooManyPlayersError struct {
	Max int
}

func (e *TooManyPlayersError) Error() string {
	return fmt.Sprintf("%s: you can add up to %d players", ErrTooManyPlayers, e.Max)
}

func (e *TooManyPlayersError) Is(target error) bool {
	return target == ErrTooManyPlayers
}

// Issue is a single structural problem found in an input payload.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}

// ValidationError aggregates every issue found while validating round input.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidRoundInput, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidRoundInput
}

// ModuleNotFoundError names the Everdell module that was requested.
type ModuleNotFoundError struct {
	Module string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("module %s not found", e.Module)
}

func (e *ModuleNotFoundError) Is(target error) bool {
	return target == ErrModuleNotFound
}

// ComponentNotFoundError names the component missing from a module.
type ComponentNotFoundError struct {
	Module    string
	Component string
}

func (e *ComponentNotFoundError) Error() string {
	return fmt.Sprintf("component %s not found in module %s", e.Component, e.Module)
}

func (e *ComponentNotFoundError) Is(target error) bool {
	return target == ErrComponentNotFound
}
