package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scorekeeper/internal/api"
	"github.com/mcoot/scorekeeper/internal/api/apierr"
	"github.com/mcoot/scorekeeper/internal/api/response"
	"github.com/mcoot/scorekeeper/internal/factory"
	"github.com/mcoot/scorekeeper/internal/testutil"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	router := api.NewRouter(api.RouterConfig{
		Logger:          testutil.NopLogger(),
		Metrics:         app.Metrics,
		EverdellService: app.EverdellService,
		Flip7Service:    app.Flip7Service,
		Phase10Service:  app.Phase10Service,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody io.Reader = bytes.NewBuffer(nil)
	switch b := body.(type) {
	case nil:
	case string:
		reqBody = strings.NewReader(b)
	default:
		data, _ := json.Marshal(b)
		reqBody = bytes.NewBuffer(data)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func players(names ...string) map[string]any {
	list := make([]map[string]string, len(names))
	for i, n := range names {
		list[i] = map[string]string{"id": strings.ToLower(n), "name": n}
	}
	return map[string]any{"players": list}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", decode[response.Health](t, rr).Status)
	assert.Equal(t, "no-store", rr.Header().Get("Cache-Control"))
}

func TestServerAddr(t *testing.T) {
	cfg := api.DefaultServerConfig()
	assert.Equal(t, ":8080", api.NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger()).Addr())

	cfg.Host, cfg.Port = "::1", 9090
	assert.Equal(t, "[::1]:9090", api.NewServer(http.NotFoundHandler(), cfg, testutil.NopLogger()).Addr())
}

func TestMalformedBodyIsInvalidRequest(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/flip7/games", `{"players":`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidRequest, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestUnknownGameIsNotFound(t *testing.T) {
	ts := newTestServer(t)

	for _, path := range []string{
		"/api/v1/everdell/games/missing",
		"/api/v1/everdell/games/missing/rows",
		"/api/v1/flip7/games/missing",
		"/api/v1/phase10/games/missing",
	} {
		rr := ts.request(http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, rr.Code, path)
		resp := decode[apierr.ErrorResponse](t, rr)
		assert.Equal(t, apierr.CodeGameNotFound, resp.Error.Code)
		assert.Equal(t, "Game not found", resp.Error.Message)
	}
}

func TestEverdellFlow(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/everdell/games", players("Alice", "Bob"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	game := decode[response.EverdellGame](t, rr)
	assert.Equal(t, "id-1", game.ID)
	require.Len(t, game.Players, 2)
	assert.Equal(t, 0, game.Players[0].Scores["base"]["cards"])

	score := map[string]any{
		"module":    "base",
		"component": "cards",
		"players": []map[string]any{
			{"player_id": "alice", "name": "Alice", "score": 21},
			{"player_id": "bob", "name": "Bob", "score": 17},
		},
	}
	rr = ts.request(http.MethodPost, "/api/v1/everdell/games/id-1/scores", score)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	game = decode[response.EverdellGame](t, rr)
	assert.Equal(t, 21, game.Players[0].Total)
	assert.Equal(t, 17, game.Players[1].Total)

	rr = ts.request(http.MethodGet, "/api/v1/everdell/games/id-1/rows", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rows := decode[[]response.ScoreRow](t, rr)
	require.Len(t, rows, 5)
	assert.Equal(t, "base_cards", rows[0].Key)
	assert.Equal(t, "Cards", rows[0].Title)
	assert.Equal(t, response.ScoreCell{Key: "base_cards_alice", PlayerID: "alice", Value: 21}, rows[0].Scores[0])

	rr = ts.request(http.MethodGet, "/api/v1/everdell/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]response.EverdellGame](t, rr), 1)

	rr = ts.request(http.MethodDelete, "/api/v1/everdell/games/id-1", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = ts.request(http.MethodGet, "/api/v1/everdell/games/id-1", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestEverdellRejectsUnknownCatalogueEntries(t *testing.T) {
	ts := newTestServer(t)
	rr := ts.request(http.MethodPost, "/api/v1/everdell/games", players("Alice"))
	require.Equal(t, http.StatusCreated, rr.Code)

	body := func(module, component string) map[string]any {
		return map[string]any{
			"module":    module,
			"component": component,
			"players":   []map[string]any{{"player_id": "alice", "name": "Alice", "score": 3}},
		}
	}

	rr = ts.request(http.MethodPost, "/api/v1/everdell/games/id-1/scores", body("pearlbrook", "cards"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeModuleNotFound, resp.Error.Code)
	assert.Equal(t, "Module pearlbrook not found", resp.Error.Message)

	rr = ts.request(http.MethodPost, "/api/v1/everdell/games/id-1/scores", body("base", "pearls"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeComponentNotFound, decode[apierr.ErrorResponse](t, rr).Error.Code)
}

func TestEverdellScoreValidation(t *testing.T) {
	ts := newTestServer(t)
	rr := ts.request(http.MethodPost, "/api/v1/everdell/games", players("Alice"))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/everdell/games/id-1/scores",
		map[string]any{"module": "base", "component": "cards", "players": []any{}})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeValidationFailed, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.Issues)
}

func TestEverdellPlayerLimit(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/everdell/games", players("A", "B", "C", "D", "E"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeValidationFailed, resp.Error.Code)
	require.NotEmpty(t, resp.Error.Issues)
	assert.Equal(t, "Max 4 players", resp.Error.Issues[0].Message)
}

func TestFlip7CreateValidation(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/flip7/games", players("Alice", "Bob"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeValidationFailed, resp.Error.Code)
	require.NotEmpty(t, resp.Error.Issues)
	assert.Equal(t, "Min 3 players", resp.Error.Issues[0].Message)

	rr = ts.request(http.MethodPost, "/api/v1/flip7/games", map[string]any{
		"players": []map[string]string{{"name": "Alice"}, {"name": "Bob"}, {"name": " alice "}},
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp = decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeValidationFailed, resp.Error.Code)
	assert.Len(t, resp.Error.Issues, 2)

	// Nothing was persisted
	assert.Empty(t, ts.app.Backend.Keys())
}

func flip7Round(alice, bob, cara int) map[string]any {
	return map[string]any{"players": []map[string]any{
		{"id": "alice", "score": alice},
		{"id": "bob", "score": bob},
		{"id": "cara", "score": cara},
	}}
}

func TestFlip7PlayToCompletion(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/flip7/games", players("Alice", "Bob", "Cara"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	game := decode[response.Flip7Game](t, rr)
	assert.Equal(t, "in-progress", game.Status)
	assert.Empty(t, game.Rounds)

	rr = ts.request(http.MethodPost, "/api/v1/flip7/games/id-1/rounds", flip7Round(100, 40, 0))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	game = decode[response.Flip7Game](t, rr)
	assert.Nil(t, game.WinnerID)
	assert.Equal(t, 1, game.Rounds[0].Index)

	rr = ts.request(http.MethodPost, "/api/v1/flip7/games/id-1/rounds", flip7Round(100, 40, 0))
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	game = decode[response.Flip7Game](t, rr)
	assert.Equal(t, "completed", game.Status)
	require.NotNil(t, game.WinnerID)
	assert.Equal(t, "alice", *game.WinnerID)
	assert.NotNil(t, game.CompletedAt)
	assert.Equal(t, 200, game.Players[0].Total)

	rr = ts.request(http.MethodPost, "/api/v1/flip7/games/id-1/rounds", flip7Round(5, 5, 5))
	assert.Equal(t, http.StatusConflict, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeGameCompleted, resp.Error.Code)
	assert.Equal(t, "Game already completed", resp.Error.Message)

	rr = ts.request(http.MethodGet, "/api/v1/flip7/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	summaries := decode[[]response.Flip7Summary](t, rr)
	require.Len(t, summaries, 1)
	assert.Equal(t, 3, summaries[0].PlayerCount)
	assert.Equal(t, 2, summaries[0].RoundsCount)
	assert.Equal(t, "completed", summaries[0].Status)
}

func TestFlip7InvalidRound(t *testing.T) {
	ts := newTestServer(t)
	rr := ts.request(http.MethodPost, "/api/v1/flip7/games", players("Alice", "Bob", "Cara"))
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = ts.request(http.MethodPost, "/api/v1/flip7/games/id-1/rounds", flip7Round(-1, 0, 0))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeValidationFailed, resp.Error.Code)
	assert.Equal(t, "Invalid round input: players.0.score: Invalid value", resp.Error.Message)
	assert.Equal(t, "players.0.score", resp.Error.Issues[0].Path)
}

func TestFlip7EmptyPlayerIDLeavesGameReadable(t *testing.T) {
	ts := newTestServer(t)
	rr := ts.request(http.MethodPost, "/api/v1/flip7/games", players("Alice", "Bob", "Cara"))
	require.Equal(t, http.StatusCreated, rr.Code)

	for _, body := range []string{
		`{"players":[{"id":"","score":5}]}`,
		`{"players":[{"score":5}]}`,
	} {
		rr = ts.request(http.MethodPost, "/api/v1/flip7/games/id-1/rounds", body)
		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		resp := decode[apierr.ErrorResponse](t, rr)
		assert.Equal(t, apierr.CodeValidationFailed, resp.Error.Code)
		assert.Equal(t, "Invalid round input: players.0.id: Required", resp.Error.Message)
	}

	rr = ts.request(http.MethodGet, "/api/v1/flip7/games/id-1", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Empty(t, decode[response.Flip7Game](t, rr).Rounds)

	rr = ts.request(http.MethodGet, "/api/v1/flip7/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]response.Flip7Summary](t, rr), 1)
}

func TestMissingRoundFieldsAreRequired(t *testing.T) {
	tests := []struct {
		name    string
		create  string
		players map[string]any
		path    string
		body    string
		issue   string
	}{
		{"flip7 score", "/api/v1/flip7/games", players("Alice", "Bob", "Cara"),
			"/api/v1/flip7/games/id-1/rounds", `{"players":[{"id":"alice"}]}`, "players.0.score"},
		{"flip7 id", "/api/v1/flip7/games", players("Alice", "Bob", "Cara"),
			"/api/v1/flip7/games/id-1/rounds", `{"players":[{"score":5}]}`, "players.0.id"},
		{"phase10 phase", "/api/v1/phase10/games", players("Alice", "Bob"),
			"/api/v1/phase10/games/id-1/rounds", `{"players":[{"id":"alice","score":10}]}`, "players.0.phase"},
		{"phase10 score", "/api/v1/phase10/games", players("Alice", "Bob"),
			"/api/v1/phase10/games/id-1/rounds", `{"players":[{"id":"alice","phase":2}]}`, "players.0.score"},
		{"phase10 id", "/api/v1/phase10/games", players("Alice", "Bob"),
			"/api/v1/phase10/games/id-1/rounds", `{"players":[{"phase":2,"score":10}]}`, "players.0.id"},
		{"everdell score", "/api/v1/everdell/games", players("Alice"),
			"/api/v1/everdell/games/id-1/scores",
			`{"module":"base","component":"cards","players":[{"player_id":"alice","name":"Alice"}]}`, "players.0.score"},
		{"everdell player id", "/api/v1/everdell/games", players("Alice"),
			"/api/v1/everdell/games/id-1/scores",
			`{"module":"base","component":"cards","players":[{"name":"Alice","score":4}]}`, "players.0.player_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			rr := ts.request(http.MethodPost, tt.create, tt.players)
			require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
			writes := ts.app.Backend.Writes()

			rr = ts.request(http.MethodPost, tt.path, tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			resp := decode[apierr.ErrorResponse](t, rr)
			assert.Equal(t, apierr.CodeValidationFailed, resp.Error.Code)
			require.Len(t, resp.Error.Issues, 1)
			assert.Equal(t, tt.issue, resp.Error.Issues[0].Path)
			assert.Equal(t, "Required", resp.Error.Issues[0].Message)
			assert.Equal(t, writes, ts.app.Backend.Writes())
		})
	}
}

func TestPhase10Flow(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/phase10/games", players("Alice", "Bob"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	game := decode[response.Phase10Game](t, rr)
	assert.Equal(t, 1, game.Players[0].Phase)

	round := map[string]any{"players": []map[string]any{
		{"id": "alice", "phase": 2, "score": 15},
		{"id": "bob", "phase": 1, "score": 50},
	}}
	rr = ts.request(http.MethodPost, "/api/v1/phase10/games/id-1/rounds", round)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	game = decode[response.Phase10Game](t, rr)
	assert.Equal(t, 1, game.Rounds)
	assert.Equal(t, 2, game.Players[0].Phase)
	assert.True(t, game.Players[0].Rounds[0].PhaseCompleted)
	assert.False(t, game.Players[1].Rounds[0].PhaseCompleted)
	assert.Equal(t, 50, game.Players[1].Score)

	bad := map[string]any{"players": []map[string]any{{"id": "alice", "phase": 11, "score": 7}}}
	rr = ts.request(http.MethodPost, "/api/v1/phase10/games/id-1/rounds", bad)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Len(t, decode[apierr.ErrorResponse](t, rr).Error.Issues, 2)
}

func TestPhase10TooManyPlayers(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodPost, "/api/v1/phase10/games", players("A", "B", "C", "D", "E", "F", "G"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, apierr.CodeTooManyPlayers, resp.Error.Code)
	assert.Equal(t, "Maximum number of players exceeded. You can add up to 6 players", resp.Error.Message)
}

func TestPhase10PhaseDetails(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/phase10/phases/4", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, response.PhaseDetails{Phase: 4, Description: "1 run of 7"}, decode[response.PhaseDetails](t, rr))

	rr = ts.request(http.MethodGet, "/api/v1/phase10/phases/11", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Invalid phase number", decode[response.PhaseDetails](t, rr).Description)

	rr = ts.request(http.MethodGet, "/api/v1/phase10/phases/four", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestVariantsAreStoredSeparately(t *testing.T) {
	ts := newTestServer(t)

	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/everdell/games", players("Alice")).Code)
	require.Equal(t, http.StatusCreated, ts.request(http.MethodPost, "/api/v1/phase10/games", players("Alice")).Code)

	assert.ElementsMatch(t,
		[]string{"boardgames:everdell:games", "boardgames:phase10:games"},
		ts.app.Backend.Keys(),
	)

	rr := ts.request(http.MethodGet, "/api/v1/flip7/games", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[[]response.Flip7Summary](t, rr))
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)

	ts.request(http.MethodPost, "/api/v1/phase10/games", players("Alice"))
	ts.request(http.MethodGet, "/api/v1/phase10/games/id-1", nil)

	rr := ts.request(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	assert.Contains(t, body, `scorekeeper_games_created_total{game="phase10"} 1`)
	assert.Contains(t, body, `route="/api/v1/phase10/games/{id}"`)
}
