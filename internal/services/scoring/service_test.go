package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scorekeeper/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = NewFlip7()
}

func (s *ServiceSuite) TestThreshold() {
	s.Equal(200, s.service.WinningScore())
}

func (s *ServiceSuite) TestNoPlayers() {
	_, ok := s.service.DetermineWinner(nil)
	s.False(ok)
}

func (s *ServiceSuite) TestNobodyAtThreshold() {
	_, ok := s.service.DetermineWinner([]int{199, 150, 0})
	s.False(ok)
}

func (s *ServiceSuite) TestSinglePlayerAtThreshold() {
	idx, ok := s.service.DetermineWinner([]int{150, 200, 199})
	s.True(ok)
	s.Equal(1, idx)
}

func (s *ServiceSuite) TestHighestAboveThresholdWins() {
	idx, ok := s.service.DetermineWinner([]int{204, 160, 230})
	s.True(ok)
	s.Equal(2, idx)
}

func (s *ServiceSuite) TestLowerLaterTotalDoesNotTakeLead() {
	idx, ok := s.service.DetermineWinner([]int{230, 210})
	s.True(ok)
	s.Equal(0, idx)
}

func (s *ServiceSuite) TestTieAtTopHasNoWinner() {
	_, ok := s.service.DetermineWinner([]int{205, 205})
	s.False(ok)
}

func (s *ServiceSuite) TestTieBelowTopDoesNotBlockWinner() {
	idx, ok := s.service.DetermineWinner([]int{210, 210, 250})
	s.True(ok)
	s.Equal(2, idx)
}

func (s *ServiceSuite) TestTieBrokenLaterStillTies() {
	_, ok := s.service.DetermineWinner([]int{250, 210, 250})
	s.False(ok)
}

func (s *ServiceSuite) TestCustomThreshold() {
	svc := New(10)
	idx, ok := svc.DetermineWinner([]int{5, 11})
	s.True(ok)
	s.Equal(1, idx)
}

func (s *ServiceSuite) TestFlip7Winner() {
	players := []model.Flip7Player{
		{ID: "alice", Total: 204},
		{ID: "bob", Total: 160},
	}

	id, ok := s.service.Flip7Winner(players)
	s.True(ok)
	s.Equal(model.PlayerID("alice"), id)
}

func (s *ServiceSuite) TestFlip7WinnerTie() {
	players := []model.Flip7Player{
		{ID: "alice", Total: 205},
		{ID: "bob", Total: 205},
	}

	id, ok := s.service.Flip7Winner(players)
	s.False(ok)
	s.Empty(id)
}
