package model

import "errors"

// Common errors used across the application
var (
	// Placement errors
	ErrOutOfBounds          = errors.New("coordinate is outside the grid")
	ErrAdjacencyConflict    = errors.New("ship overlaps or touches another ship")
	ErrInvalidShipLength    = errors.New("ship length must be positive")
	ErrInvalidDirection     = errors.New("direction must be horizontal or vertical")
	ErrShipNotInFleet       = errors.New("no unplaced ship of that length in the fleet")
	ErrPlacementClosed      = errors.New("ships can only be placed before the first attack")
	ErrFleetPlacementFailed = errors.New("could not place fleet")

	// Attack errors
	ErrAlreadyAttacked = errors.New("coordinate was already attacked")
	ErrNotYourTurn     = errors.New("not this side's turn")
	ErrGameOver        = errors.New("match is over")
	ErrFleetIncomplete = errors.New("both fleets must be placed before attacking")
	ErrInvalidSide     = errors.New("side must be human or computer")

	// Match errors
	ErrMatchNotFound      = errors.New("match not found")
	ErrInvalidRecord      = errors.New("match record does not replay")
	ErrCommitmentMismatch = errors.New("fleet does not match commitment")
)
