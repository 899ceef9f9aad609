package validation

import (
	"encoding/json"
	"fmt"

	"github.com/mcoot/scorekeeper/internal/model"
	"github.com/mcoot/scorekeeper/internal/names"
)

// Player count bounds for the variants with fixed limits
const (
	Flip7MinPlayers = 3
	Flip7MaxPlayers = 18

	DefaultEverdellMaxPlayers = 4
)

// PlayersInput is the payload accepted when creating a game
type PlayersInput struct {
	Players []model.PlayerInput `json:"players"`
}

// NewPlayersValidator builds a validator for game-creation payloads with
// between minPlayers and maxPlayers named players. Duplicate names are
// reported against every offending entry.
func NewPlayersValidator(minPlayers, maxPlayers int) *Validator {
	schema := map[string]any{
		"type":     "object",
		"required": []string{"players"},
		"properties": map[string]any{
			"players": map[string]any{
				"type":     "array",
				"minItems": minPlayers,
				"maxItems": maxPlayers,
				"items": map[string]any{
					"type":     "object",
					"required": []string{"name"},
					"properties": map[string]any{
						"name": map[string]any{"type": "string", "minLength": 1},
					},
				},
			},
		},
	}

	minMessage := fmt.Sprintf("Min %d players", minPlayers)
	if minPlayers == 1 {
		minMessage = "At least one player"
	}

	messages := map[string]string{
		"players:array_min_items": minMessage,
		"players:array_max_items": fmt.Sprintf("Max %d players", maxPlayers),
		"name:string_gte":         "Required",
	}

	return mustValidator(schema, messages, duplicateNames)
}

// duplicateNames flags every entry whose name collides with another
func duplicateNames(doc []byte) []model.Issue {
	var payload struct {
		Players []struct {
			Name *string `json:"name"`
		} `json:"players"`
	}
	if err := json.Unmarshal(doc, &payload); err != nil {
		return nil
	}

	type indexed struct {
		idx  int
		name string
	}
	var entries []indexed
	for i, p := range payload.Players {
		if p.Name != nil {
			entries = append(entries, indexed{idx: i, name: *p.Name})
		}
	}

	var issues []model.Issue
	for _, group := range names.DuplicateGroups(entries, func(e indexed) string { return e.name }) {
		for _, pos := range group.Indices {
			e := entries[pos]
			issues = append(issues, model.Issue{
				Path:    fmt.Sprintf("players.%d.name", e.idx),
				Message: fmt.Sprintf("Duplicate player name '%s'.", e.name),
			})
		}
	}
	return issues
}

// PlayerValidators holds the creation validators for each variant
type PlayerValidators struct {
	Everdell *Validator
	Flip7    *Validator
	Phase10  *Validator
}

// NewPlayerValidators builds creation validators. everdellMax bounds the
// Everdell player count; values below one fall back to the default.
func NewPlayerValidators(everdellMax int) PlayerValidators {
	if everdellMax < 1 {
		everdellMax = DefaultEverdellMaxPlayers
	}
	return PlayerValidators{
		Everdell: NewPlayersValidator(1, everdellMax),
		Flip7:    NewPlayersValidator(Flip7MinPlayers, Flip7MaxPlayers),
		Phase10:  NewPlayersValidator(1, model.Phase10MaxPlayers),
	}
}

// ValidatePlayers validates typed creation input, treating a nil slice as
// an empty one.
func ValidatePlayers(v *Validator, players []model.PlayerInput) []model.Issue {
	if players == nil {
		players = []model.PlayerInput{}
	}
	return v.Validate(PlayersInput{Players: players})
}
