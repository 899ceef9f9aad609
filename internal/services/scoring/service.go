package scoring

import "github.com/mcoot/scorekeeper/internal/model"

// Service determines winners from accumulated player totals
type Service struct {
	winningScore int
}

// New creates a scoring service; totals below winningScore never win
func New(winningScore int) *Service {
	return &Service{
		winningScore: winningScore,
	}
}

// NewFlip7 creates a scoring service using the Flip 7 threshold
func NewFlip7() *Service {
	return New(model.Flip7WinningScore)
}

// WinningScore returns the threshold a total must reach
func (s *Service) WinningScore() int {
	return s.winningScore
}

// DetermineWinner returns the index of the single player holding the
// highest total at or above the threshold. It reports false when nobody
// has reached the threshold or when two or more players share the top total.
func (s *Service) DetermineWinner(totals []int) (int, bool) {
	winner := -1
	highest := 0
	tieCount := 0

	for i, total := range totals {
		if total < s.winningScore {
			continue
		}
		switch {
		case winner < 0 || total > highest:
			winner = i
			highest = total
			tieCount = 1
		case total == highest:
			tieCount++
		}
	}

	if tieCount != 1 {
		return -1, false
	}
	return winner, true
}

// Flip7Winner applies DetermineWinner to Flip 7 players
func (s *Service) Flip7Winner(players []model.Flip7Player) (model.PlayerID, bool) {
	totals := make([]int, len(players))
	for i, p := range players {
		totals[i] = p.Total
	}
	idx, ok := s.DetermineWinner(totals)
	if !ok {
		return "", false
	}
	return players[idx].ID, true
}

// Interface for dependency injection
type ServiceInterface interface {
	DetermineWinner(totals []int) (int, bool)
	Flip7Winner(players []model.Flip7Player) (model.PlayerID, bool)
}

var _ ServiceInterface = (*Service)(nil)
