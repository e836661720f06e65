package board

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go2/internal/model"
)

type BoardSuite struct {
	suite.Suite
	board *Board
}

func TestBoardSuite(t *testing.T) {
	suite.Run(t, new(BoardSuite))
}

func (s *BoardSuite) SetupTest() {
	s.board = New()
}

func pos(row, col int) model.Position {
	return model.Position{Row: row, Col: col}
}

// PlaceShip tests

func (s *BoardSuite) TestPlaceShipHorizontalAdvancesColumn() {
	ship, err := s.board.PlaceShip(3, pos(2, 3), model.DirectionHorizontal)
	s.Require().NoError(err)

	s.Equal(3, ship.Length())
	s.Equal([]model.Position{pos(2, 3), pos(2, 4), pos(2, 5)}, s.board.ShipCoordinates(ship))
}

func (s *BoardSuite) TestPlaceShipVerticalAdvancesRow() {
	ship, err := s.board.PlaceShip(3, pos(2, 3), model.DirectionVertical)
	s.Require().NoError(err)

	s.Equal([]model.Position{pos(2, 3), pos(3, 3), pos(4, 3)}, s.board.ShipCoordinates(ship))
}

func (s *BoardSuite) TestPlaceShipRunIsContiguousAndInBounds() {
	for _, dir := range []model.Direction{model.DirectionHorizontal, model.DirectionVertical} {
		for length := 1; length <= 5; length++ {
			b := New()
			ship, err := b.PlaceShip(length, pos(9-length+1, 9-length+1), dir)
			s.Require().NoError(err)

			run := b.ShipCoordinates(ship)
			s.Len(run, length)
			for i, p := range run {
				s.True(p.IsValid())
				s.Equal(dir.Step(run[0], i), p)
			}
		}
	}
}

func (s *BoardSuite) TestPlaceShipOriginOutOfBounds() {
	for _, origin := range []model.Position{pos(-1, 0), pos(0, -1), pos(10, 0), pos(0, 10)} {
		_, err := s.board.PlaceShip(2, origin, model.DirectionHorizontal)
		s.ErrorIs(err, model.ErrOutOfBounds)
	}
	s.Equal(0, s.board.ShipCount())
}

func (s *BoardSuite) TestPlaceShipRunOffGrid() {
	_, err := s.board.PlaceShip(3, pos(0, 8), model.DirectionHorizontal)
	s.ErrorIs(err, model.ErrOutOfBounds)

	_, err = s.board.PlaceShip(5, pos(6, 0), model.DirectionVertical)
	s.ErrorIs(err, model.ErrOutOfBounds)

	s.Empty(s.board.Occupied())
}

func (s *BoardSuite) TestPlaceShipLongerThanGrid() {
	for _, length := range []int{model.GridSize + 1, 1 << 30, 1 << 62} {
		_, err := s.board.PlaceShip(length, pos(0, 0), model.DirectionHorizontal)
		s.ErrorIs(err, model.ErrOutOfBounds, "length %d", length)

		_, err = s.board.PlaceShip(length, pos(0, 0), model.DirectionVertical)
		s.ErrorIs(err, model.ErrOutOfBounds, "length %d", length)
	}

	ship, err := s.board.PlaceShip(model.GridSize, pos(0, 0), model.DirectionHorizontal)
	s.Require().NoError(err)
	s.Len(s.board.ShipCoordinates(ship), model.GridSize)
}

func (s *BoardSuite) TestPlaceShipOverlapIsAdjacencyConflict() {
	_, err := s.board.PlaceShip(3, pos(2, 3), model.DirectionHorizontal)
	s.Require().NoError(err)

	_, err = s.board.PlaceShip(3, pos(1, 4), model.DirectionVertical)
	s.ErrorIs(err, model.ErrAdjacencyConflict)
	s.Equal(1, s.board.ShipCount())
}

func (s *BoardSuite) TestPlaceShipTouchingIsAdjacencyConflict() {
	_, err := s.board.PlaceShip(3, pos(2, 3), model.DirectionHorizontal)
	s.Require().NoError(err)
	before := s.board.Occupied()

	neighbours := []struct {
		origin model.Position
		dir    model.Direction
	}{
		{pos(3, 3), model.DirectionHorizontal}, // directly below
		{pos(1, 1), model.DirectionHorizontal}, // ends diagonally above-left
		{pos(3, 6), model.DirectionVertical},   // diagonal below-right
		{pos(2, 6), model.DirectionHorizontal}, // end to end
		{pos(0, 2), model.DirectionVertical},   // touches (1,2) diagonal of (2,3)
	}
	for _, n := range neighbours {
		_, err := s.board.PlaceShip(2, n.origin, n.dir)
		s.ErrorIs(err, model.ErrAdjacencyConflict, "origin %s", n.origin)
	}

	s.Equal(1, s.board.ShipCount())
	s.Equal(before, s.board.Occupied())
}

func (s *BoardSuite) TestPlaceShipWithOneCellGapSucceeds() {
	_, err := s.board.PlaceShip(3, pos(2, 3), model.DirectionHorizontal)
	s.Require().NoError(err)

	_, err = s.board.PlaceShip(3, pos(4, 3), model.DirectionHorizontal)
	s.NoError(err)
	_, err = s.board.PlaceShip(2, pos(0, 7), model.DirectionVertical)
	s.NoError(err)
	s.Equal(3, s.board.ShipCount())
}

func (s *BoardSuite) TestPlaceShipInvalidInput() {
	_, err := s.board.PlaceShip(0, pos(0, 0), model.DirectionHorizontal)
	s.ErrorIs(err, model.ErrInvalidShipLength)

	_, err = s.board.PlaceShip(2, pos(0, 0), model.Direction("diagonal"))
	s.ErrorIs(err, model.ErrInvalidDirection)
}

func (s *BoardSuite) TestPlaceNamedShipKeepsClass() {
	ship, err := s.board.PlaceNamedShip("Destroyer", 2, pos(0, 0), model.DirectionHorizontal)
	s.Require().NoError(err)
	s.Equal("Destroyer", ship.Class())
}

// ReceiveAttack tests

func (s *BoardSuite) TestReceiveAttackHitAndMiss() {
	ship, _ := s.board.PlaceShip(3, pos(2, 3), model.DirectionHorizontal)

	s.True(s.board.ReceiveAttack(pos(2, 3)))
	s.Equal(1, ship.Hits())

	s.False(s.board.ReceiveAttack(pos(5, 5)))
	s.Equal([]model.Position{pos(5, 5)}, s.board.MissedAttacks())
	s.Equal([]model.Position{pos(2, 3)}, s.board.HitAttacks())
}

func (s *BoardSuite) TestReceiveAttackHitIsNotRecordedAsMiss() {
	_, _ = s.board.PlaceShip(3, pos(2, 3), model.DirectionHorizontal)

	s.board.ReceiveAttack(pos(2, 4))
	s.NotContains(s.board.MissedAttacks(), pos(2, 4))
}

func (s *BoardSuite) TestReceiveAttackRepeatedMissAppendsDuplicate() {
	s.board.ReceiveAttack(pos(1, 1))
	s.board.ReceiveAttack(pos(1, 1))

	s.Equal([]model.Position{pos(1, 1), pos(1, 1)}, s.board.MissedAttacks())
}

func (s *BoardSuite) TestReceiveAttackHitIffCellInSomeRun() {
	_, _ = s.board.PlaceShip(5, pos(0, 0), model.DirectionHorizontal)
	_, _ = s.board.PlaceShip(4, pos(2, 0), model.DirectionVertical)
	_, _ = s.board.PlaceShip(3, pos(9, 7), model.DirectionHorizontal)

	occupied := make(map[model.Position]bool)
	for _, p := range s.board.Occupied() {
		occupied[p] = true
	}
	s.Len(occupied, 12)

	for _, p := range model.AllPositions() {
		s.Equal(occupied[p], s.board.ReceiveAttack(p), "cell %s", p)
	}
	s.True(s.board.AllShipsSunk())
	s.Len(s.board.MissedAttacks(), model.CellCount-12)
}

// AllShipsSunk tests

func (s *BoardSuite) TestAllShipsSunkFalseOnEmptyBoard() {
	s.False(s.board.AllShipsSunk())
}

func (s *BoardSuite) TestAllShipsSunkOnlyAfterLastHit() {
	ship, _ := s.board.PlaceShip(2, pos(0, 0), model.DirectionHorizontal)

	s.board.ReceiveAttack(pos(0, 0))
	s.False(s.board.AllShipsSunk())
	s.False(ship.IsSunk())

	s.board.ReceiveAttack(pos(0, 1))
	s.True(ship.IsSunk())
	s.True(s.board.AllShipsSunk())
}

func (s *BoardSuite) TestAllShipsSunkFalseWhileOneShipAfloat() {
	_, _ = s.board.PlaceShip(2, pos(0, 0), model.DirectionHorizontal)
	_, _ = s.board.PlaceShip(3, pos(3, 3), model.DirectionVertical)

	s.board.ReceiveAttack(pos(0, 0))
	s.board.ReceiveAttack(pos(0, 1))

	s.False(s.board.AllShipsSunk())
	s.Equal(1, s.board.ShipsRemaining())
}

// Query tests

func (s *BoardSuite) TestShipCoordinatesUnknownShipIsEmpty() {
	other := New()
	ship, _ := other.PlaceShip(2, pos(0, 0), model.DirectionHorizontal)

	s.Empty(s.board.ShipCoordinates(ship))
}

func (s *BoardSuite) TestShipCoordinatesReturnsCopy() {
	ship, _ := s.board.PlaceShip(2, pos(0, 0), model.DirectionHorizontal)

	run := s.board.ShipCoordinates(ship)
	run[0] = pos(9, 9)

	s.Equal(pos(0, 0), s.board.ShipCoordinates(ship)[0])
}

func (s *BoardSuite) TestIsShipAtAndShipAt() {
	ship, _ := s.board.PlaceShip(2, pos(4, 4), model.DirectionVertical)

	s.True(s.board.IsShipAt(pos(5, 4)))
	s.False(s.board.IsShipAt(pos(4, 5)))
	s.Same(ship, s.board.ShipAt(pos(5, 4)))
	s.Nil(s.board.ShipAt(pos(0, 0)))
}
