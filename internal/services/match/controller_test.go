package match

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/battleship-go2/internal/dependencies/mocks"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/commitment"
	"github.com/mcoot/battleship-go2/internal/storage/memory"
	"github.com/mcoot/battleship-go2/internal/testutil"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []model.Event
}

func (p *recordingPublisher) Publish(event model.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []model.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]model.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.Type
	}
	return out
}

func (p *recordingPublisher) last() model.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

func (p *recordingPublisher) reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = nil
}

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	planner    *testutil.FixedPlanner
	publisher  *recordingPublisher
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.planner = &testutil.FixedPlanner{Placements: testutil.StandardFleet(5)}
	s.publisher = &recordingPublisher{}
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.clock.Step = time.Second
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, s.planner, s.publisher, s.clock, s.random, testutil.NopLogger())
	s.ctx = context.Background()
}

// createReadyMatch creates a match and places the human fleet at column 0
func (s *ControllerSuite) createReadyMatch() model.MatchID {
	m, err := s.controller.CreateMatch(s.ctx)
	s.Require().NoError(err)
	for _, p := range testutil.StandardFleet(0) {
		_, err := s.controller.PlaceShip(s.ctx, m.ID(), model.SideHuman, p.Length, p.Origin, p.Direction)
		s.Require().NoError(err)
	}
	s.publisher.reset()
	return m.ID()
}

// CreateMatch tests

func (s *ControllerSuite) TestLogsCarryComponent() {
	logger, logs := testutil.CaptureLogger()
	s.controller = NewController(s.storage, s.planner, s.publisher, s.clock, s.random, logger)

	m, err := s.controller.CreateMatch(s.ctx)
	s.Require().NoError(err)

	entry := logs.Find("match created")
	s.Require().NotNil(entry)
	s.Equal("match-controller", entry["component"])
	s.Equal(string(m.ID()), entry["match_id"])
}

func (s *ControllerSuite) TestCreateMatchPlacesAndCommitsComputerFleet() {
	m, err := s.controller.CreateMatch(s.ctx)
	s.Require().NoError(err)

	s.NotEmpty(m.ID())
	s.Equal(model.PhaseSetup, m.Phase())
	s.True(m.FleetComplete(model.SideComputer))
	s.False(m.FleetComplete(model.SideHuman))
	s.Equal(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), m.CreatedAt())

	c := m.Commitment()
	s.Require().NotNil(c)
	s.NotEmpty(c.Root)
	s.Empty(c.Salt)

	rec, err := s.storage.GetMatch(s.ctx, m.ID())
	s.Require().NoError(err)
	s.Len(rec.Placements[model.SideComputer], 5)
	s.NotEmpty(rec.Commitment.Salt)

	s.Equal([]model.EventType{model.EventMatchCreated}, s.publisher.types())
}

func (s *ControllerSuite) TestCreateMatchPlannerFailure() {
	s.planner.Err = model.ErrFleetPlacementFailed

	_, err := s.controller.CreateMatch(s.ctx)
	s.ErrorIs(err, model.ErrFleetPlacementFailed)

	summaries, err := s.controller.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Empty(summaries)
	s.Empty(s.publisher.types())
}

func (s *ControllerSuite) TestCreateMatchIncompletePlan() {
	s.planner.Placements = s.planner.Placements[:2]

	_, err := s.controller.CreateMatch(s.ctx)
	s.ErrorIs(err, model.ErrFleetPlacementFailed)
}

// Placement tests

func (s *ControllerSuite) TestPlaceShipPersistsAndPublishes() {
	m, err := s.controller.CreateMatch(s.ctx)
	s.Require().NoError(err)
	s.publisher.reset()

	updated, err := s.controller.PlaceShip(s.ctx, m.ID(), model.SideHuman, 2, model.Position{Row: 3, Col: 3}, model.DirectionVertical)
	s.Require().NoError(err)
	s.True(updated.IsShipAt(model.SideHuman, model.Position{Row: 4, Col: 3}))

	stored, err := s.controller.GetMatch(s.ctx, m.ID())
	s.Require().NoError(err)
	s.True(stored.IsShipAt(model.SideHuman, model.Position{Row: 4, Col: 3}))
	s.True(stored.UpdatedAt().After(stored.CreatedAt()))

	event := s.publisher.last()
	s.Equal(model.EventShipPlaced, event.Type)
	s.Equal(m.ID(), event.MatchID)
	s.Equal(model.SideHuman, event.Side)
	s.Equal("Destroyer", event.Payload.(model.ShipPlacedPayload).Placement.Class)
}

func (s *ControllerSuite) TestPlaceShipFailureIsNotSaved() {
	m, err := s.controller.CreateMatch(s.ctx)
	s.Require().NoError(err)
	_, err = s.controller.PlaceShip(s.ctx, m.ID(), model.SideHuman, 5, model.Position{Row: 0, Col: 0}, model.DirectionHorizontal)
	s.Require().NoError(err)
	s.publisher.reset()

	before, err := s.storage.GetMatch(s.ctx, m.ID())
	s.Require().NoError(err)

	_, err = s.controller.PlaceShip(s.ctx, m.ID(), model.SideHuman, 4, model.Position{Row: 1, Col: 0}, model.DirectionHorizontal)
	s.ErrorIs(err, model.ErrAdjacencyConflict)

	after, err := s.storage.GetMatch(s.ctx, m.ID())
	s.Require().NoError(err)
	s.Equal(before, after)
	s.Empty(s.publisher.types())
}

func (s *ControllerSuite) TestPlaceShipMatchNotFound() {
	_, err := s.controller.PlaceShip(s.ctx, "missing", model.SideHuman, 2, model.Position{}, model.DirectionHorizontal)
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *ControllerSuite) TestRandomizeFleetReplacesPartialFleet() {
	m, err := s.controller.CreateMatch(s.ctx)
	s.Require().NoError(err)
	_, err = s.controller.PlaceShip(s.ctx, m.ID(), model.SideHuman, 2, model.Position{Row: 9, Col: 8}, model.DirectionHorizontal)
	s.Require().NoError(err)
	s.publisher.reset()

	updated, err := s.controller.RandomizeFleet(s.ctx, m.ID(), model.SideHuman)
	s.Require().NoError(err)

	s.True(updated.FleetComplete(model.SideHuman))
	s.Equal(testutil.StandardFleet(5), updated.Placements(model.SideHuman))
	s.Equal([]model.EventType{
		model.EventFleetCleared,
		model.EventShipPlaced, model.EventShipPlaced, model.EventShipPlaced, model.EventShipPlaced, model.EventShipPlaced,
	}, s.publisher.types())
}

func (s *ControllerSuite) TestRandomizeComputerFleetRecommits() {
	m, err := s.controller.CreateMatch(s.ctx)
	s.Require().NoError(err)
	s.random.QueueBytes([]byte("another salt for the new layout"))
	s.planner.Placements = testutil.StandardFleet(0)

	updated, err := s.controller.RandomizeFleet(s.ctx, m.ID(), model.SideComputer)
	s.Require().NoError(err)
	s.NotEqual(m.Commitment().Root, updated.Commitment().Root)
}

func (s *ControllerSuite) TestClearFleet() {
	id := s.createReadyMatch()

	updated, err := s.controller.ClearFleet(s.ctx, id, model.SideHuman)
	s.Require().NoError(err)
	s.False(updated.FleetComplete(model.SideHuman))
	s.Equal([]model.EventType{model.EventFleetCleared}, s.publisher.types())
}

// Attack tests

func (s *ControllerSuite) TestAttackMissPassesTurn() {
	id := s.createReadyMatch()

	out, err := s.controller.Attack(s.ctx, id, model.SideHuman, model.Position{Row: 9, Col: 9})
	s.Require().NoError(err)
	s.False(out.Hit)
	s.True(out.TurnSwitched)

	m, err := s.controller.GetMatch(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.SideComputer, m.CurrentTurn())
	s.True(m.WasAttacked(model.SideComputer, model.Position{Row: 9, Col: 9}))

	s.Equal([]model.EventType{model.EventAttackResolved, model.EventTurnPassed}, s.publisher.types())
	s.Equal(model.SideComputer, s.publisher.last().Payload.(model.TurnPassedPayload).NextTurn)
}

func (s *ControllerSuite) TestAttackRejectedIsNotSaved() {
	id := s.createReadyMatch()
	_, err := s.controller.Attack(s.ctx, id, model.SideHuman, model.Position{Row: 0, Col: 5})
	s.Require().NoError(err)
	before, err := s.storage.GetMatch(s.ctx, id)
	s.Require().NoError(err)

	_, err = s.controller.Attack(s.ctx, id, model.SideHuman, model.Position{Row: 0, Col: 5})
	s.ErrorIs(err, model.ErrAlreadyAttacked)
	_, err = s.controller.Attack(s.ctx, id, model.SideComputer, model.Position{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrNotYourTurn)

	after, err := s.storage.GetMatch(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(before, after)
}

func (s *ControllerSuite) TestComputerTurn() {
	id := s.createReadyMatch()
	_, err := s.controller.Attack(s.ctx, id, model.SideHuman, model.Position{Row: 9, Col: 9})
	s.Require().NoError(err)
	s.publisher.reset()

	out, err := s.controller.ComputerTurn(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(model.SideComputer, out.Side)
	s.Equal(model.Position{Row: 0, Col: 0}, out.Position)
	s.True(out.Hit)

	m, err := s.controller.GetMatch(s.ctx, id)
	s.Require().NoError(err)
	s.Equal(1, m.Board(model.SideHuman).ShipAt(model.Position{Row: 0, Col: 0}).Hits())
	s.Equal([]model.EventType{model.EventAttackResolved}, s.publisher.types())
}

func (s *ControllerSuite) TestMatchOverRevealsVerifiableCommitment() {
	id := s.createReadyMatch()

	var out model.Outcome
	for _, cell := range testutil.FleetCells(testutil.StandardFleet(5)) {
		var err error
		out, err = s.controller.Attack(s.ctx, id, model.SideHuman, cell)
		s.Require().NoError(err)
	}
	s.True(out.GameOver)
	s.Equal(model.WinnerHuman, out.Winner)

	event := s.publisher.last()
	s.Require().Equal(model.EventMatchOver, event.Type)
	payload := event.Payload.(model.MatchOverPayload)
	s.Equal(model.WinnerHuman, payload.Winner)
	s.Require().NotNil(payload.Commitment)
	s.NotEmpty(payload.Commitment.Salt)

	m, err := s.controller.GetMatch(s.ctx, id)
	s.Require().NoError(err)
	s.NoError(commitment.VerifyPlacements(*m.Commitment(), m.Placements(model.SideComputer)))

	_, err = s.controller.Attack(s.ctx, id, model.SideHuman, model.Position{Row: 9, Col: 9})
	s.ErrorIs(err, model.ErrGameOver)
}

func (s *ControllerSuite) TestConcurrentAttacksAreSerialised() {
	id := s.createReadyMatch()
	cells := testutil.FleetCells(testutil.StandardFleet(5))[:10]

	var wg sync.WaitGroup
	errs := make(chan error, len(cells))
	for _, cell := range cells {
		wg.Add(1)
		go func(cell model.Position) {
			defer wg.Done()
			if _, err := s.controller.Attack(s.ctx, id, model.SideHuman, cell); err != nil {
				errs <- err
			}
		}(cell)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		s.NoError(err)
	}

	m, err := s.controller.GetMatch(s.ctx, id)
	s.Require().NoError(err)
	s.Len(m.Log(), len(cells))
	s.Equal(0, s.controller.locks.size())
}

// Lifecycle tests

func (s *ControllerSuite) TestDeleteMatch() {
	m, err := s.controller.CreateMatch(s.ctx)
	s.Require().NoError(err)

	s.Require().NoError(s.controller.DeleteMatch(s.ctx, m.ID()))
	s.Equal(model.EventMatchDeleted, s.publisher.last().Type)

	_, err = s.controller.GetMatch(s.ctx, m.ID())
	s.ErrorIs(err, model.ErrMatchNotFound)
	s.ErrorIs(s.controller.DeleteMatch(s.ctx, m.ID()), model.ErrMatchNotFound)
}

func (s *ControllerSuite) TestListMatchesMostRecentFirst() {
	first, err := s.controller.CreateMatch(s.ctx)
	s.Require().NoError(err)
	second, err := s.controller.CreateMatch(s.ctx)
	s.Require().NoError(err)

	s.clock.Advance(time.Hour)
	_, err = s.controller.PlaceShip(s.ctx, first.ID(), model.SideHuman, 2, model.Position{Row: 9, Col: 0}, model.DirectionHorizontal)
	s.Require().NoError(err)

	summaries, err := s.controller.ListMatches(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(summaries, 2)
	s.Equal(first.ID(), summaries[0].ID)
	s.Equal(second.ID(), summaries[1].ID)
	s.Equal(model.PhaseSetup, summaries[0].Phase)
	s.True(summaries[0].UpdatedAt.Sub(summaries[1].UpdatedAt) >= time.Hour)
}

func (s *ControllerSuite) TestGetMatchNotFound() {
	_, err := s.controller.GetMatch(s.ctx, "missing")
	s.ErrorIs(err, model.ErrMatchNotFound)
}
