package handler

import (
	"net/http"

	"github.com/mcoot/scorekeeper/internal/api/request"
	"github.com/mcoot/scorekeeper/internal/api/response"
	"github.com/mcoot/scorekeeper/internal/model"
	"github.com/mcoot/scorekeeper/internal/services/flip7"
)

// Flip7Handler handles Flip 7 endpoints
type Flip7Handler struct {
	service *flip7.Service
}

// NewFlip7Handler creates a new Flip 7 handler
func NewFlip7Handler(service *flip7.Service) *Flip7Handler {
	return &Flip7Handler{service: service}
}

// Create handles POST /api/v1/flip7/games
func (h *Flip7Handler) Create(w http.ResponseWriter, r *http.Request) {
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

	response.JSON(w, http.StatusCreated, response.Flip7GameFromModel(game))
}

// List handles GET /api/v1/flip7/games
func (h *Flip7Handler) List(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.service.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Flip7SummariesFromModel(summaries))
}

// Get handles GET /api/v1/flip7/games/{id}
func (h *Flip7Handler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := h.service.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Flip7GameFromModel(game))
}

// Delete handles DELETE /api/v1/flip7/games/{id}
func (h *Flip7Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AddRound handles POST /api/v1/flip7/games/{id}/rounds
// Failures carry the round input error message whether the raw body or
// the decoded round is rejected.
func (h *Flip7Handler) AddRound(w http.ResponseWriter, r *http.Request) {
	var req request.Flip7RoundRequest
	body, err := readBody(r, &req)
	if err != nil {
		WriteError(w, err)
		return
	}
	if issues := h.service.ValidateRound(body); len(issues) > 0 {
		WriteError(w, &model.ValidationError{Issues: issues})
		return
	}

	game, err := h.service.AddRoundScore(r.Context(), gameID(r), req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Flip7GameFromModel(game))
}
