package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mcoot/scorekeeper/internal/api/request"
	"github.com/mcoot/scorekeeper/internal/api/response"
	"github.com/mcoot/scorekeeper/internal/model"
	"github.com/mcoot/scorekeeper/internal/services/phase10"
)

// Phase10Handler handles Phase 10 endpoints
type Phase10Handler struct {
	service *phase10.Service
}

// NewPhase10Handler creates a new Phase 10 handler
func NewPhase10Handler(service *phase10.Service) *Phase10Handler {
	return &Phase10Handler{service: service}
}

// Create handles POST /api/v1/phase10/games
func (h *Phase10Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := decodeBody(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	// The service reports an oversized roster as TOO_MANY_PLAYERS, so only
	// structural problems are rejected here.
	players := req.ToModel()
	if len(players) <= model.Phase10MaxPlayers {
		if issues := h.service.ValidatePlayers(players); len(issues) > 0 {
			WriteError(w, NewValidationError("Invalid players", issues))
			return
		}
	}

	game, err := h.service.CreateGame(r.Context(), players)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Phase10GameFromModel(game))
}

// List handles GET /api/v1/phase10/games
func (h *Phase10Handler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.service.ListGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Phase10GamesFromModel(games))
}

// Get handles GET /api/v1/phase10/games/{id}
func (h *Phase10Handler) Get(w http.ResponseWriter, r *http.Request) {
	game, err := h.service.GetGame(r.Context(), gameID(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Phase10GameFromModel(game))
}

// Delete handles DELETE /api/v1/phase10/games/{id}
func (h *Phase10Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteGame(r.Context(), gameID(r)); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// AddRound handles POST /api/v1/phase10/games/{id}/rounds
func (h *Phase10Handler) AddRound(w http.ResponseWriter, r *http.Request) {
	var req request.Phase10RoundRequest
	body, err := readBody(r, &req)
	if err != nil {
		WriteError(w, err)
		return
	}
	if issues := h.service.ValidateRound(body); len(issues) > 0 {
		WriteError(w, &model.ValidationError{Issues: issues})
		return
	}

	game, err := h.service.AddRound(r.Context(), gameID(r), req.ToModel())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Phase10GameFromModel(game))
}

// Phase handles GET /api/v1/phase10/phases/{phase}
func (h *Phase10Handler) Phase(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(mux.Vars(r)["phase"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("Phase must be a number"))
		return
	}

	response.JSON(w, http.StatusOK, response.PhaseDetails{
		Phase:       n,
		Description: phase10.PhaseDetails(n),
	})
}
