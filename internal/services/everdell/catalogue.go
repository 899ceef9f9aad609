package everdell

import (
	"github.com/mcoot/scorekeeper/internal/model"
)

// BaseModule is the module every game is scored with
const BaseModule = "base"

// Component is one scoring category within a module
type Component struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Module groups the components scored together
type Module struct {
	Type       string      `json:"type"`
	Components []Component `json:"components"`
}

var modules = []Module{
	{
		Type: BaseModule,
		Components: []Component{
			{Key: "cards", Title: "Cards"},
			{Key: "prosperity", Title: "Prosperity"},
			{Key: "events", Title: "Events"},
			{Key: "journey", Title: "Journey"},
			{Key: "tokens", Title: "Tokens"},
		},
	},
}

// Modules returns the scoring catalogue in display order
func Modules() []Module {
	out := make([]Module, len(modules))
	for i, m := range modules {
		m.Components = append([]Component(nil), m.Components...)
		out[i] = m
	}
	return out
}

// ModuleComponent looks up a component of a module
func ModuleComponent(module, component string) (Module, Component, error) {
	for _, m := range modules {
		if m.Type != module {
			continue
		}
		for _, c := range m.Components {
			if c.Key == component {
				return m, c, nil
			}
		}
		return Module{}, Component{}, &model.ComponentNotFoundError{Module: module, Component: component}
	}
	return Module{}, Component{}, &model.ModuleNotFoundError{Module: module}
}

// emptyScoreSheet has every catalogue cell set to zero
func emptyScoreSheet() model.ScoreSheet {
	sheet := make(model.ScoreSheet, len(modules))
	for _, m := range modules {
		cells := make(map[string]int, len(m.Components))
		for _, c := range m.Components {
			cells[c.Key] = 0
		}
		sheet[m.Type] = cells
	}
	return sheet
}

// ScoreRows lays the catalogue out as one row per component, holding each
// player's value in game order. Cells missing from a player's sheet read as 0.
func ScoreRows(game model.EverdellGame) []model.ScoreRow {
	var rows []model.ScoreRow
	for _, m := range modules {
		for _, c := range m.Components {
			rowKey := m.Type + "_" + c.Key
			cells := make([]model.ScoreCell, len(game.Players))
			for i, p := range game.Players {
				cells[i] = model.ScoreCell{
					Key:      rowKey + "_" + string(p.ID),
					PlayerID: p.ID,
					Value:    p.Scores[m.Type][c.Key],
				}
			}
			rows = append(rows, model.ScoreRow{Key: rowKey, Title: c.Title, Scores: cells})
		}
	}
	return rows
}
