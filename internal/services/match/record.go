package match

import (
	"fmt"

	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
)

// Record captures everything needed to rebuild the match
func (m *Match) Record() *model.MatchRecord {
	rec := &model.MatchRecord{
		ID:         m.id,
		Placements: make(map[model.Side][]model.Placement, len(m.sides)),
		Attacks:    m.Log(),
		CreatedAt:  m.createdAt,
		UpdatedAt:  m.updatedAt,
	}
	for _, side := range model.Sides() {
		rec.Placements[side] = m.Placements(side)
	}
	if m.commitment != nil {
		c := *m.commitment
		rec.Commitment = &c
	}
	return rec
}

// Restore rebuilds a match by replaying its placements then its attack log
func Restore(rec *model.MatchRecord, rnd random.Random) (*Match, error) {
	m := New(rec.ID, rnd)
	m.createdAt = rec.CreatedAt
	m.updatedAt = rec.UpdatedAt

	for _, side := range model.Sides() {
		for i, p := range rec.Placements[side] {
			ship, err := m.PlaceShip(side, p.Length, p.Origin, p.Direction)
			if err != nil {
				return nil, fmt.Errorf("%w: %s placement %d: %v", model.ErrInvalidRecord, side, i, err)
			}
			if p.Class != "" && ship.Class() != p.Class {
				return nil, fmt.Errorf("%w: %s placement %d is %s, not %s", model.ErrInvalidRecord, side, i, ship.Class(), p.Class)
			}
		}
	}
	if rec.Commitment != nil {
		m.SetCommitment(*rec.Commitment)
	}

	for i, entry := range rec.Attacks {
		if err := m.replay(entry); err != nil {
			return nil, fmt.Errorf("%w: attack %d: %v", model.ErrInvalidRecord, i, err)
		}
	}
	return m, nil
}

func (m *Match) replay(entry model.AttackRecord) error {
	if err := m.checkCanAttack(entry.Side); err != nil {
		return err
	}
	if entry.Exhausted {
		if !m.sides[entry.Side].history.Exhausted() {
			return fmt.Errorf("%s still has legal targets", entry.Side)
		}
		m.passExhausted()
		return nil
	}
	if _, err := m.sides[entry.Side].history.RecordAttack(entry.Position); err != nil {
		return err
	}
	if out := m.resolve(entry.Side, entry.Position); out.Hit != entry.Hit {
		return fmt.Errorf("%s at %s resolved hit=%t, recorded hit=%t", entry.Side, entry.Position, out.Hit, entry.Hit)
	}
	return nil
}
