package match

import (
	"context"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/mcoot/battleship-go2/internal/dependencies/clock"
	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/commitment"
	"github.com/mcoot/battleship-go2/internal/storage"
)

// FleetPlanner lays out a complete legal fleet
type FleetPlanner interface {
	PlanFleet() ([]model.Placement, error)
}

// Publisher receives match events once the change they describe is saved
type Publisher interface {
	Publish(event model.Event)
}

// NopPublisher discards every event
type NopPublisher struct{}

func (NopPublisher) Publish(model.Event) {}

// Controller runs matches against storage, one operation per match at a time
type Controller struct {
	storage   storage.Storage
	planner   FleetPlanner
	publisher Publisher
	clock     clock.Clock
	random    random.Random
	logger    *slog.Logger
	locks     *keyedMutex
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	planner FleetPlanner,
	publisher Publisher,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Controller{
		storage:   storage,
		planner:   planner,
		publisher: publisher,
		clock:     clock,
		random:    random,
		logger:    logger.With(slog.String("component", "match-controller")),
		locks:     newKeyedMutex(),
	}
}

// CreateMatch starts a match with the computer's fleet already placed and committed
func (c *Controller) CreateMatch(ctx context.Context) (*Match, error) {
	id := model.MatchID(uuid.NewString())
	m := New(id, c.random)

	placements, err := c.planner.PlanFleet()
	if err != nil {
		return nil, err
	}
	if err := m.PlaceFleet(model.SideComputer, placements); err != nil {
		return nil, err
	}
	if !m.FleetComplete(model.SideComputer) {
		return nil, model.ErrFleetPlacementFailed
	}
	if err := c.commitFleet(m); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	m.Touch(now)
	if err := c.storage.SaveMatch(ctx, m.Record()); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match created",
		slog.String("match_id", string(id)),
		slog.String("commitment", m.Commitment().Root),
	)
	c.publisher.Publish(model.Event{
		Type:      model.EventMatchCreated,
		Timestamp: now,
		MatchID:   id,
	})

	return m, nil
}

// GetMatch rebuilds a match from storage
func (c *Controller) GetMatch(ctx context.Context, id model.MatchID) (*Match, error) {
	rec, err := c.storage.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	return Restore(rec, c.random)
}

// ListMatches returns a summary of every stored match, most recently updated first
func (c *Controller) ListMatches(ctx context.Context) ([]model.MatchSummary, error) {
	records, err := c.storage.ListMatches(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]model.MatchSummary, 0, len(records))
	for _, rec := range records {
		m, err := Restore(rec, c.random)
		if err != nil {
			c.logger.Warn("skipping unreadable match",
				slog.String("match_id", string(rec.ID)),
				slog.String("error", err.Error()),
			)
			continue
		}
		summaries = append(summaries, m.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].UpdatedAt.Equal(summaries[j].UpdatedAt) {
			return summaries[i].ID < summaries[j].ID
		}
		return summaries[i].UpdatedAt.After(summaries[j].UpdatedAt)
	})
	return summaries, nil
}

// DeleteMatch removes a match
func (c *Controller) DeleteMatch(ctx context.Context, id model.MatchID) error {
	unlock := c.locks.Lock(id)
	defer unlock()

	if err := c.storage.DeleteMatch(ctx, id); err != nil {
		return err
	}

	c.logger.Info("match deleted", slog.String("match_id", string(id)))
	c.publisher.Publish(model.Event{
		Type:      model.EventMatchDeleted,
		Timestamp: c.clock.Now(),
		MatchID:   id,
	})
	return nil
}

// PlaceShip places one ship of the side's fleet
func (c *Controller) PlaceShip(ctx context.Context, id model.MatchID, side model.Side, length int, origin model.Position, direction model.Direction) (*Match, error) {
	return c.mutate(ctx, id, func(m *Match) ([]model.Event, error) {
		if _, err := m.PlaceShip(side, length, origin, direction); err != nil {
			return nil, err
		}
		if err := c.commitFleet(m); err != nil {
			return nil, err
		}
		placements := m.Placements(side)
		return []model.Event{{
			Type:    model.EventShipPlaced,
			Side:    side,
			Payload: model.ShipPlacedPayload{Placement: placements[len(placements)-1]},
		}}, nil
	})
}

// RandomizeFleet replaces the side's fleet with a freshly planned layout
func (c *Controller) RandomizeFleet(ctx context.Context, id model.MatchID, side model.Side) (*Match, error) {
	return c.mutate(ctx, id, func(m *Match) ([]model.Event, error) {
		placements, err := c.planner.PlanFleet()
		if err != nil {
			return nil, err
		}
		if err := m.ClearFleet(side); err != nil {
			return nil, err
		}
		if err := m.PlaceFleet(side, placements); err != nil {
			return nil, err
		}
		if err := c.commitFleet(m); err != nil {
			return nil, err
		}

		events := []model.Event{{Type: model.EventFleetCleared, Side: side}}
		for _, p := range m.Placements(side) {
			events = append(events, model.Event{
				Type:    model.EventShipPlaced,
				Side:    side,
				Payload: model.ShipPlacedPayload{Placement: p},
			})
		}
		return events, nil
	})
}

// ClearFleet removes every ship the side has placed
func (c *Controller) ClearFleet(ctx context.Context, id model.MatchID, side model.Side) (*Match, error) {
	return c.mutate(ctx, id, func(m *Match) ([]model.Event, error) {
		if err := m.ClearFleet(side); err != nil {
			return nil, err
		}
		return []model.Event{{Type: model.EventFleetCleared, Side: side}}, nil
	})
}

// Attack fires the side's shot at the opponent
func (c *Controller) Attack(ctx context.Context, id model.MatchID, side model.Side, pos model.Position) (model.Outcome, error) {
	var out model.Outcome
	_, err := c.mutate(ctx, id, func(m *Match) ([]model.Event, error) {
		var err error
		out, err = m.Attack(side, pos)
		if err != nil {
			return nil, err
		}
		return c.outcomeEvents(m, out), nil
	})
	return out, err
}

// ComputerTurn plays one computer attack
func (c *Controller) ComputerTurn(ctx context.Context, id model.MatchID) (model.Outcome, error) {
	var out model.Outcome
	_, err := c.mutate(ctx, id, func(m *Match) ([]model.Event, error) {
		var err error
		out, err = m.ComputerTurn()
		if err != nil {
			return nil, err
		}
		return c.outcomeEvents(m, out), nil
	})
	return out, err
}

// mutate loads a match, applies fn and saves the result under the match's lock.
// Nothing is saved or published when fn fails.
func (c *Controller) mutate(ctx context.Context, id model.MatchID, fn func(m *Match) ([]model.Event, error)) (*Match, error) {
	unlock := c.locks.Lock(id)
	defer unlock()

	m, err := c.GetMatch(ctx, id)
	if err != nil {
		return nil, err
	}

	events, err := fn(m)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	m.Touch(now)
	if err := c.storage.SaveMatch(ctx, m.Record()); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	for _, event := range events {
		event.Timestamp = now
		event.MatchID = id
		c.publisher.Publish(event)
	}
	return m, nil
}

func (c *Controller) outcomeEvents(m *Match, out model.Outcome) []model.Event {
	c.logger.Debug("attack resolved",
		slog.String("match_id", string(m.ID())),
		slog.String("side", string(out.Side)),
		slog.String("position", out.Position.String()),
		slog.Bool("hit", out.Hit),
		slog.Bool("exhausted", out.Exhausted),
	)

	var events []model.Event
	if !out.Exhausted {
		events = append(events, model.Event{
			Type:    model.EventAttackResolved,
			Side:    out.Side,
			Payload: model.AttackResolvedPayload{Outcome: out},
		})
	}
	if out.TurnSwitched {
		events = append(events, model.Event{
			Type:    model.EventTurnPassed,
			Side:    out.Side,
			Payload: model.TurnPassedPayload{NextTurn: m.CurrentTurn()},
		})
	}
	if out.GameOver {
		c.logger.Info("match over",
			slog.String("match_id", string(m.ID())),
			slog.String("winner", string(out.Winner)),
			slog.Int("attacks", len(m.Log())),
		)
		events = append(events, model.Event{
			Type:    model.EventMatchOver,
			Side:    out.Side,
			Payload: model.MatchOverPayload{Winner: out.Winner, Commitment: m.Commitment()},
		})
	}
	return events
}

// commitFleet commits to the computer's fleet once it is complete
func (c *Controller) commitFleet(m *Match) error {
	if m.commitment != nil || !m.FleetComplete(model.SideComputer) {
		return nil
	}
	fc, err := commitment.Commit(c.random, m.Board(model.SideComputer).Occupied())
	if err != nil {
		return err
	}
	m.SetCommitment(fc)
	return nil
}
