package validation

import (
	"fmt"

	"github.com/mcoot/scorekeeper/internal/model"
)

const atLeastOneScore = "At least one player score required"

var flip7Round = mustValidator(
	map[string]any{
		"type":     "object",
		"required": []string{"players"},
		"properties": map[string]any{
			"players": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []string{"id", "score"},
					"properties": map[string]any{
						"id":    map[string]any{"type": "string", "minLength": 1},
						"score": map[string]any{"type": "integer", "minimum": 0},
					},
				},
			},
		},
	},
	map[string]string{
		"players:array_min_items": atLeastOneScore,
		"id:string_gte":           "Required",
		"score:number_gte":        "Invalid value",
	},
	nil,
)

var phase10Round = mustValidator(
	map[string]any{
		"type":     "object",
		"required": []string{"players"},
		"properties": map[string]any{
			"players": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []string{"id", "phase", "score"},
					"properties": map[string]any{
						"id": map[string]any{"type": "string", "minLength": 1},
						"phase": map[string]any{
							"type":    "integer",
							"minimum": model.Phase10PhaseMin,
							"maximum": model.Phase10PhaseMax,
						},
						"score": map[string]any{
							"type":       "integer",
							"minimum":    model.Phase10ScoreMin,
							"multipleOf": model.Phase10ScoreStep,
						},
					},
				},
			},
		},
	},
	map[string]string{
		"players:array_min_items": atLeastOneScore,
		"id:string_gte":           "Required",
		"phase:number_gte":        fmt.Sprintf("Phase must be >= %d", model.Phase10PhaseMin),
		"phase:number_lte":        fmt.Sprintf("Phase must be <= %d", model.Phase10PhaseMax),
		"score:number_gte":        "Invalid value",
		"score:multiple_of":       fmt.Sprintf("Score must be divisible by %d", model.Phase10ScoreStep),
	},
	nil,
)

// everdellScore checks the add-score form: the name is required but is not
// compared with the stored player. Keys match the API request body.
var everdellScore = mustValidator(
	map[string]any{
		"type":     "object",
		"required": []string{"players"},
		"properties": map[string]any{
			"players": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type":     "object",
					"required": []string{"player_id", "name", "score"},
					"properties": map[string]any{
						"player_id": map[string]any{"type": "string", "minLength": 1},
						"name":      map[string]any{"type": "string"},
						"score":     map[string]any{"type": "integer"},
					},
				},
			},
		},
	},
	map[string]string{
		"players:array_min_items": atLeastOneScore,
		"player_id:string_gte":    "Required",
	},
	nil,
)

// Flip7Round returns the validator for Flip 7 round submissions
func Flip7Round() *Validator { return flip7Round }

// Phase10Round returns the validator for Phase 10 round submissions
func Phase10Round() *Validator { return phase10Round }

// EverdellScore returns the validator for Everdell add-score submissions
func EverdellScore() *Validator { return everdellScore }

// ValidateFlip7Round validates typed Flip 7 round input
func ValidateFlip7Round(input model.Flip7RoundInput) []model.Issue {
	if input.Players == nil {
		input.Players = []model.Flip7RoundEntry{}
	}
	return flip7Round.Validate(input)
}

// ValidatePhase10Round validates typed Phase 10 round input
func ValidatePhase10Round(input model.Phase10RoundInput) []model.Issue {
	if input.Players == nil {
		input.Players = []model.Phase10RoundEntry{}
	}
	return phase10Round.Validate(input)
}
