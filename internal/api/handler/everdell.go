package handler

import (
	"net/http"

	"github.com/mcoot/scorekeeper/internal/api/request"
	"github.com/mcoot/scorekeeper/internal/api/response"
	"github.com/mcoot/scorekeeper/internal/services/everdell"
)

// EverdellHandler handles Everdell endpoints
type EverdellHandler struct {
	service *everdell.Service
}

// NewEverdellHandler creates a new Everdell handler
func NewEverdellHandler(service *everdell.Service) *EverdellHandler {
	return &EverdellHandler{service: service}
}

// Create handles POST /api/v1/everdell/games
func (h *EverdellHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	players := req.ToModel()
	if issues := h.service.ValidatePlayers(players); len(issues) > 0 {
		WriteError(w, NewValidationError("Invalid players", issues))
		return
	}

	game, err := h.service.CreateGame(r.Context(), players)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.EverdellGameFromModel(game))
}

// List handles GET /api/v1/everdell/games
func (h *EverdellHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EverdellGamesFromModel(games))
}

// Get handles GET /api/v1/everdell/games/{id}
func (h *EverdellHandler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := h.service.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EverdellGameFromModel(game))
}

// Delete handles DELETE /api/v1/everdell/games/{id}
func (h *EverdellHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AddScore handles POST /api/v1/everdell/games/{id}/scores
func (h *EverdellHandler) AddScore(w http.ResponseWriter, r *http.Request) {
	var req request.EverdellScoreRequest
	body, err := readBody(r, &req)
	if err != nil {
		WriteError(w, err)
		return
	}

	if issues := h.service.ValidateScores(body); len(issues) > 0 {
		WriteError(w, NewValidationError("Invalid scores", issues))
		return
	}

	game, err := h.service.AddScore(r.Context(), req.ToModel(gameID(r)))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.EverdellGameFromModel(game))
}

// Rows handles GET /api/v1/everdell/games/{id}/rows
func (h *EverdellHandler) Rows(w http.ResponseWriter, r *http.Request) {
	game, err := h.service.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreRowsFromModel(everdell.ScoreRows(game)))
}
