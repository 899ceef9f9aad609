package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mcoot/scorekeeper/internal/api/request"
)

// playersFromArgs builds create-game players. Each argument is either a
// bare name or id=name.
func playersFromArgs(args []string) []request.Player {
	players := make([]request.Player, len(args))
	for i, arg := range args {
		if id, name, ok := strings.Cut(arg, "="); ok {
			players[i] = request.Player{ID: id, Name: name}
		} else {
			players[i] = request.Player{Name: arg}
		}
	}
	return players
}

type playerScore struct {
	id    string
	score int
}

// parseScores reads id=score pairs
func parseScores(values []string) ([]playerScore, error) {
	scores := make([]playerScore, 0, len(values))
	for _, v := range values {
		id, raw, ok := strings.Cut(v, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid score %q: expected <player-id>=<score>", v)
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid score %q: %w", v, err)
		}
		scores = append(scores, playerScore{id: id, score: n})
	}
	return scores, nil
}

// parsePhase10Results reads id=phase:score triples
func parsePhase10Results(values []string) ([]request.Phase10RoundEntry, error) {
	entries := make([]request.Phase10RoundEntry, 0, len(values))
	for _, v := range values {
		id, rest, ok := strings.Cut(v, "=")
		if !ok || id == "" {
			return nil, fmt.Errorf("invalid result %q: expected <player-id>=<phase>:<score>", v)
		}
		rawPhase, rawScore, ok := strings.Cut(rest, ":")
		if !ok {
			return nil, fmt.Errorf("invalid result %q: expected <player-id>=<phase>:<score>", v)
		}
		phase, err := strconv.Atoi(rawPhase)
		if err != nil {
			return nil, fmt.Errorf("invalid phase in %q: %w", v, err)
		}
		score, err := strconv.Atoi(rawScore)
		if err != nil {
			return nil, fmt.Errorf("invalid score in %q: %w", v, err)
		}
		entries = append(entries, request.Phase10RoundEntry{ID: id, Phase: phase, Score: score})
	}
	return entries, nil
}
