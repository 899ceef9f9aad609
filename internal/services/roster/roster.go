// Package roster prepares the player list supplied when a game is created.
package roster

import (
	"github.com/mcoot/scorekeeper/internal/dependencies/idgen"
	"github.com/mcoot/scorekeeper/internal/model"
	"github.com/mcoot/scorekeeper/internal/names"
)

// EnsureUnique fails with a *model.DuplicatePlayerNameError naming the
// first colliding name when two players share a normalized name.
func EnsureUnique(players []model.PlayerInput) error {
	groups := names.DuplicateGroups(players, model.PlayerInput.DisplayName)
	if len(groups) == 0 {
		return nil
	}
	return &model.DuplicatePlayerNameError{Name: groups[0].FirstOriginal}
}

// AssignIDs returns a copy of players where every entry without an id has
// been given a fresh one. Supplied ids are kept as they are.
func AssignIDs(players []model.PlayerInput, ids idgen.Generator) []model.PlayerInput {
	out := make([]model.PlayerInput, len(players))
	for i, p := range players {
		if p.ID == "" {
			p.ID = model.PlayerID(ids.NewID())
		}
		out[i] = p
	}
	return out
}
