package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go2/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/board"
	"github.com/mcoot/battleship-go2/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *bot.RandomStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = bot.NewRandomStrategy(s.mockRandom)
}

func (s *StrategySuite) TestPlanFleetUsesQueuedDraws() {
	// direction, row, col for each ship, longest first
	s.mockRandom.QueueIntn(
		0, 0, 0, // Carrier horizontal at (0,0)
		1, 2, 9, // Battleship vertical at (2,9)
		0, 9, 0, // Cruiser horizontal at (9,0)
		0, 4, 2, // Submarine horizontal at (4,2)
		1, 6, 5, // Destroyer vertical at (6,5)
	)

	placements, err := s.strategy.PlanFleet()
	s.Require().NoError(err)
	s.Require().Len(placements, 5)

	s.Equal(model.Placement{Class: "Carrier", Length: 5, Origin: model.Position{Row: 0, Col: 0}, Direction: model.DirectionHorizontal}, placements[0])
	s.Equal(model.Placement{Class: "Battleship", Length: 4, Origin: model.Position{Row: 2, Col: 9}, Direction: model.DirectionVertical}, placements[1])
	s.Equal(model.Placement{Class: "Destroyer", Length: 2, Origin: model.Position{Row: 6, Col: 5}, Direction: model.DirectionVertical}, placements[4])
	s.Equal(0, s.mockRandom.Remaining())
}

func (s *StrategySuite) TestPlanFleetRetriesConflictingOrigin() {
	s.mockRandom.QueueIntn(
		0, 0, 0, // Carrier horizontal at (0,0)
		0, 1, 0, // Battleship touching the carrier, rejected
		0, 2, 0, // Battleship at (2,0)
		0, 4, 0,
		0, 6, 0,
		0, 8, 0,
	)

	placements, err := s.strategy.PlanFleet()
	s.Require().NoError(err)
	s.Equal(model.Position{Row: 2, Col: 0}, placements[1].Origin)
}

func (s *StrategySuite) TestPlanFleetGivesUpWhenNothingFits() {
	// An empty queue draws zero forever, so every ship after the carrier collides
	_, err := s.strategy.PlanFleet()
	s.ErrorIs(err, model.ErrFleetPlacementFailed)
}

func (s *StrategySuite) TestPlanFleetAlwaysLegalWithRealRandom() {
	strategy := bot.NewRandomStrategy(random.New())
	for i := 0; i < 50; i++ {
		placements, err := strategy.PlanFleet()
		s.Require().NoError(err)
		s.Require().Len(placements, len(model.Fleet()))

		b := board.New()
		for _, p := range placements {
			_, err := b.PlaceNamedShip(p.Class, p.Length, p.Origin, p.Direction)
			s.Require().NoError(err)
		}
		s.Equal(17, len(b.Occupied()))
	}
}
