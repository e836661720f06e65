package match

import (
	"fmt"
	"time"

	"github.com/mcoot/battleship-go2/internal/dependencies/random"
	"github.com/mcoot/battleship-go2/internal/model"
	"github.com/mcoot/battleship-go2/internal/services/attack"
	"github.com/mcoot/battleship-go2/internal/services/board"
)

// fleetSide pairs a side's own board with the history of shots it has fired
type fleetSide struct {
	board      *board.Board
	history    *attack.History
	placements []model.Placement
}

func newFleetSide(rnd random.Random) *fleetSide {
	return &fleetSide{
		board:   board.New(),
		history: attack.NewHistory(rnd),
	}
}

// Match is the game-state machine for one human versus computer session.
// A Match is not safe for concurrent use; Controller serialises access.
type Match struct {
	id     model.MatchID
	random random.Random
	sides  map[model.Side]*fleetSide

	currentTurn model.Side
	over        bool
	winner      model.Winner
	log         []model.AttackRecord

	commitment *model.FleetCommitment
	createdAt  time.Time
	updatedAt  time.Time
}

// New creates a match in the setup phase with the human to move first
func New(id model.MatchID, rnd random.Random) *Match {
	m := &Match{
		id:          id,
		random:      rnd,
		sides:       make(map[model.Side]*fleetSide, 2),
		currentTurn: model.SideHuman,
	}
	for _, side := range model.Sides() {
		m.sides[side] = newFleetSide(rnd)
	}
	return m
}

// ID returns the match identifier
func (m *Match) ID() model.MatchID {
	return m.id
}

// Placement

// PlaceShip places the next unplaced fleet ship of the given length on a side's board
func (m *Match) PlaceShip(side model.Side, length int, origin model.Position, direction model.Direction) (*board.Ship, error) {
	fs, err := m.side(side)
	if err != nil {
		return nil, err
	}
	if m.Phase() != model.PhaseSetup {
		return nil, model.ErrPlacementClosed
	}

	class, ok := m.nextClass(side, length)
	if !ok {
		return nil, fmt.Errorf("%w: length %d", model.ErrShipNotInFleet, length)
	}

	ship, err := fs.board.PlaceNamedShip(class.Name, length, origin, direction)
	if err != nil {
		return nil, err
	}
	fs.placements = append(fs.placements, model.Placement{
		Class:     class.Name,
		Length:    length,
		Origin:    origin,
		Direction: direction,
	})
	return ship, nil
}

// PlaceFleet places every given ship or none of them
func (m *Match) PlaceFleet(side model.Side, placements []model.Placement) error {
	fs, err := m.side(side)
	if err != nil {
		return err
	}
	saved := append([]model.Placement(nil), fs.placements...)

	for _, p := range placements {
		if _, err := m.PlaceShip(side, p.Length, p.Origin, p.Direction); err != nil {
			m.rebuildFleet(fs, saved)
			return err
		}
	}
	return nil
}

// rebuildFleet resets a side's board to exactly the given, already validated, placements
func (m *Match) rebuildFleet(fs *fleetSide, placements []model.Placement) {
	fs.board = board.New()
	fs.placements = nil
	for _, p := range placements {
		if _, err := fs.board.PlaceNamedShip(p.Class, p.Length, p.Origin, p.Direction); err == nil {
			fs.placements = append(fs.placements, p)
		}
	}
}

// ClearFleet discards every ship placed on a side's board during setup
func (m *Match) ClearFleet(side model.Side) error {
	fs, err := m.side(side)
	if err != nil {
		return err
	}
	if m.Phase() != model.PhaseSetup {
		return model.ErrPlacementClosed
	}
	fs.board = board.New()
	fs.placements = nil
	if side == model.SideComputer {
		m.commitment = nil
	}
	return nil
}

// nextClass returns the first fleet class of the given length not yet placed
func (m *Match) nextClass(side model.Side, length int) (model.ShipClass, bool) {
	placed := make(map[string]bool)
	for _, p := range m.sides[side].placements {
		placed[p.Class] = true
	}
	for _, class := range model.Fleet() {
		if class.Length == length && !placed[class.Name] {
			return class, true
		}
	}
	return model.ShipClass{}, false
}

// RemainingFleet returns the fleet classes a side still has to place
func (m *Match) RemainingFleet(side model.Side) []model.ShipClass {
	fs, ok := m.sides[side]
	if !ok {
		return nil
	}
	placed := make(map[string]bool)
	for _, p := range fs.placements {
		placed[p.Class] = true
	}
	var remaining []model.ShipClass
	for _, class := range model.Fleet() {
		if !placed[class.Name] {
			remaining = append(remaining, class)
		}
	}
	return remaining
}

// FleetComplete returns true once a side has placed its whole fleet
func (m *Match) FleetComplete(side model.Side) bool {
	fs, ok := m.sides[side]
	return ok && len(fs.placements) == len(model.Fleet())
}

// Attacks

// Attack fires the given side's shot at the opponent's board
func (m *Match) Attack(side model.Side, pos model.Position) (model.Outcome, error) {
	if err := m.checkCanAttack(side); err != nil {
		return model.Outcome{}, err
	}
	if !pos.IsValid() {
		return model.Outcome{}, fmt.Errorf("%w: %s", model.ErrOutOfBounds, pos)
	}
	if _, err := m.sides[side].history.RecordAttack(pos); err != nil {
		return model.Outcome{}, err
	}
	return m.resolve(side, pos), nil
}

// ComputerTurn lets the computer fire at a uniformly random legal cell.
// If the computer has no legal cell left the turn passes to the human
// without an attack being resolved.
func (m *Match) ComputerTurn() (model.Outcome, error) {
	if err := m.checkCanAttack(model.SideComputer); err != nil {
		return model.Outcome{}, err
	}
	pos, ok := m.sides[model.SideComputer].history.RandomLegalAttack()
	if !ok {
		return m.passExhausted(), nil
	}
	return m.resolve(model.SideComputer, pos), nil
}

// checkCanAttack applies the guards shared by every attack path, in order
func (m *Match) checkCanAttack(side model.Side) error {
	if m.over {
		return model.ErrGameOver
	}
	if !side.IsValid() {
		return model.ErrInvalidSide
	}
	if side != m.currentTurn {
		return model.ErrNotYourTurn
	}
	if !m.FleetComplete(model.SideHuman) || !m.FleetComplete(model.SideComputer) {
		return model.ErrFleetIncomplete
	}
	return nil
}

// resolve applies an already recorded shot to the defending board
func (m *Match) resolve(side model.Side, pos model.Position) model.Outcome {
	defender := m.sides[side.Opponent()].board
	hit := defender.ReceiveAttack(pos)

	out := model.Outcome{Side: side, Position: pos, Hit: hit}
	if hit {
		// Each cell is fired at once per side, so the sinking shot is the one
		// that brings hits exactly to length
		if ship := defender.ShipAt(pos); ship.Hits() == ship.Length() {
			out.Sunk = ship.Class()
		}
	}
	m.log = append(m.log, model.AttackRecord{Side: side, Position: pos, Hit: hit})

	m.checkGameOver()

	// Extra turn on a hit; a miss hands the turn over unless the match ended
	if !hit && !m.over {
		m.currentTurn = side.Opponent()
		out.TurnSwitched = true
	}
	out.GameOver = m.over
	out.Winner = m.winner
	return out
}

func (m *Match) passExhausted() model.Outcome {
	m.log = append(m.log, model.AttackRecord{Side: model.SideComputer, Exhausted: true})
	m.currentTurn = model.SideHuman
	m.checkGameOver()
	return model.Outcome{
		Side:         model.SideComputer,
		Exhausted:    true,
		TurnSwitched: true,
		GameOver:     m.over,
		Winner:       m.winner,
	}
}

// checkGameOver ends the match when a fleet is fully sunk, or when either
// side has fired at every cell of the grid
func (m *Match) checkGameOver() {
	if m.over {
		return
	}
	human, computer := m.sides[model.SideHuman], m.sides[model.SideComputer]

	for _, side := range model.Sides() {
		if m.sides[side].board.AllShipsSunk() {
			m.finish(model.WinnerFor(side.Opponent()))
			return
		}
	}

	if human.history.Exhausted() || computer.history.Exhausted() {
		humanAfloat, computerAfloat := human.board.ShipsRemaining(), computer.board.ShipsRemaining()
		switch {
		case humanAfloat > computerAfloat:
			m.finish(model.WinnerFor(model.SideHuman))
		case computerAfloat > humanAfloat:
			m.finish(model.WinnerFor(model.SideComputer))
		default:
			m.finish(model.WinnerTie)
		}
	}
}

func (m *Match) finish(winner model.Winner) {
	m.over = true
	m.winner = winner
}

// Queries

// Phase reports where the match is in its lifecycle
func (m *Match) Phase() model.Phase {
	switch {
	case m.over:
		return model.PhaseOver
	case len(m.log) > 0:
		return model.PhaseInProgress
	default:
		return model.PhaseSetup
	}
}

// IsOver returns true once the match has reached a terminal state
func (m *Match) IsOver() bool {
	return m.over
}

// Winner returns the winner, or WinnerNone while the match is running
func (m *Match) Winner() model.Winner {
	return m.winner
}

// CurrentTurn returns the side expected to attack next
func (m *Match) CurrentTurn() model.Side {
	return m.currentTurn
}

// IsShipAt returns true if a ship occupies pos on the side's own board
func (m *Match) IsShipAt(side model.Side, pos model.Position) bool {
	fs, ok := m.sides[side]
	return ok && fs.board.IsShipAt(pos)
}

// WasAttacked returns true if the cell on the side's own board has been fired at
func (m *Match) WasAttacked(side model.Side, pos model.Position) bool {
	if !side.IsValid() {
		return false
	}
	return m.sides[side.Opponent()].history.HasAttacked(pos)
}

// ShipsRemaining returns the number of the side's ships still afloat
func (m *Match) ShipsRemaining(side model.Side) int {
	fs, ok := m.sides[side]
	if !ok {
		return 0
	}
	return fs.board.ShipsRemaining()
}

// AttacksMade returns the cells the side has fired at, in order
func (m *Match) AttacksMade(side model.Side) []model.Position {
	fs, ok := m.sides[side]
	if !ok {
		return nil
	}
	return fs.history.Attacks()
}

// Placements returns the ships the side has placed, in order
func (m *Match) Placements(side model.Side) []model.Placement {
	fs, ok := m.sides[side]
	if !ok {
		return nil
	}
	out := make([]model.Placement, len(fs.placements))
	copy(out, fs.placements)
	return out
}

// Log returns every resolved attack in order
func (m *Match) Log() []model.AttackRecord {
	out := make([]model.AttackRecord, len(m.log))
	copy(out, m.log)
	return out
}

// Board returns a read-only view of the side's own board
func (m *Match) Board(side model.Side) BoardView {
	fs, ok := m.sides[side]
	if !ok {
		return BoardView{board: board.New()}
	}
	return BoardView{board: fs.board}
}

// Commitment returns the computer's fleet commitment. The salt is only
// included once the match is over.
func (m *Match) Commitment() *model.FleetCommitment {
	if m.commitment == nil {
		return nil
	}
	c := *m.commitment
	if !m.over {
		c.Salt = ""
	}
	return &c
}

// SetCommitment records the computer's fleet commitment
func (m *Match) SetCommitment(c model.FleetCommitment) {
	m.commitment = &c
}

// CreatedAt returns when the match was created
func (m *Match) CreatedAt() time.Time {
	return m.createdAt
}

// UpdatedAt returns when the match last changed
func (m *Match) UpdatedAt() time.Time {
	return m.updatedAt
}

// Touch sets the modification time, and the creation time on first use
func (m *Match) Touch(now time.Time) {
	if m.createdAt.IsZero() {
		m.createdAt = now
	}
	m.updatedAt = now
}

// Summary returns a lightweight listing entry for the match
func (m *Match) Summary() model.MatchSummary {
	return model.MatchSummary{
		ID:          m.id,
		Phase:       m.Phase(),
		CurrentTurn: m.currentTurn,
		Winner:      m.winner,
		UpdatedAt:   m.updatedAt,
	}
}

func (m *Match) side(side model.Side) (*fleetSide, error) {
	fs, ok := m.sides[side]
	if !ok {
		return nil, model.ErrInvalidSide
	}
	return fs, nil
}
