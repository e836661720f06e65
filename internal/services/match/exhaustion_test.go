package match

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go2/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/testutil"
)

// A full fleet is always sunk before its attacker runs out of cells, so these
// tests fill attack histories directly to reach the exhaustion check.
type ExhaustionSuite struct {
	suite.Suite
	match *Match
}

func TestExhaustionSuite(t *testing.T) {
	suite.Run(t, new(ExhaustionSuite))
}

func (s *ExhaustionSuite) SetupTest() {
	s.match = New("match-1", mocks.NewMockRandom())
	s.Require().NoError(s.match.PlaceFleet(model.SideHuman, testutil.StandardFleet(0)))
	s.Require().NoError(s.match.PlaceFleet(model.SideComputer, testutil.StandardFleet(5)))
}

// fillHistory records every cell except keep as fired by side, without
// resolving anything against the opponent's board
func (s *ExhaustionSuite) fillHistory(side model.Side, keep model.Position) {
	history := s.match.sides[side].history
	for _, p := range model.AllPositions() {
		if p == keep || history.HasAttacked(p) {
			continue
		}
		_, err := history.RecordAttack(p)
		s.Require().NoError(err)
	}
}

func (s *ExhaustionSuite) TestExhaustionWithUnequalCountsPicksMoreAfloat() {
	// Human sinks the destroyer and the submarine
	for _, cell := range []model.Position{{Row: 8, Col: 5}, {Row: 8, Col: 6}, {Row: 6, Col: 5}, {Row: 6, Col: 6}, {Row: 6, Col: 7}} {
		_, err := s.match.Attack(model.SideHuman, cell)
		s.Require().NoError(err)
	}
	s.Require().Equal(3, s.match.ShipsRemaining(model.SideComputer))

	last := model.Position{Row: 9, Col: 9}
	s.fillHistory(model.SideHuman, last)
	s.fillHistory(model.SideComputer, model.Position{Row: -1, Col: -1})

	out, err := s.match.Attack(model.SideHuman, last)
	s.Require().NoError(err)

	s.False(out.Hit)
	s.True(out.GameOver)
	s.False(out.TurnSwitched)
	s.Equal(model.WinnerHuman, out.Winner)
	s.Equal(model.WinnerHuman, s.match.Winner())
	s.Equal(5, s.match.ShipsRemaining(model.SideHuman))
	s.Equal(model.SideHuman, s.match.CurrentTurn())
}

func (s *ExhaustionSuite) TestExhaustionWithEqualCountsIsTie() {
	last := model.Position{Row: 9, Col: 9}
	s.fillHistory(model.SideHuman, last)

	out, err := s.match.Attack(model.SideHuman, last)
	s.Require().NoError(err)

	s.True(out.GameOver)
	s.Equal(model.WinnerTie, out.Winner)
	s.True(s.match.IsOver())

	_, err = s.match.Attack(model.SideHuman, model.Position{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrGameOver)
}

func (s *ExhaustionSuite) TestExhaustedComputerPassesTurn() {
	_, err := s.match.Attack(model.SideHuman, model.Position{Row: 9, Col: 9})
	s.Require().NoError(err)
	s.Require().Equal(model.SideComputer, s.match.CurrentTurn())
	s.fillHistory(model.SideComputer, model.Position{Row: -1, Col: -1})

	out, err := s.match.ComputerTurn()
	s.Require().NoError(err)

	s.True(out.Exhausted)
	s.True(out.TurnSwitched)
	s.Equal(model.SideHuman, s.match.CurrentTurn())
	s.True(out.GameOver)
	s.Equal(model.WinnerTie, out.Winner)
	s.Len(s.match.Log(), 2)
}

func (s *ExhaustionSuite) TestWinnerSetIffOver() {
	s.Equal(model.WinnerNone, s.match.Winner())
	s.False(s.match.IsOver())

	s.match.checkGameOver()
	s.Equal(model.WinnerNone, s.match.Winner())
	s.False(s.match.IsOver())
}

func (s *ExhaustionSuite) TestSunkFleetAwardsOpponent() {
	human := s.match.sides[model.SideHuman].board
	for _, cell := range testutil.FleetCells(testutil.StandardFleet(0)) {
		human.ReceiveAttack(cell)
	}

	s.match.checkGameOver()
	s.True(s.match.IsOver())
	s.Equal(model.WinnerComputer, s.match.Winner())
}
