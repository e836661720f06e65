package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventMatchCreated   EventType = "match_created"
	EventShipPlaced     EventType = "ship_placed"
	EventFleetCleared   EventType = "fleet_cleared"
	EventAttackResolved EventType = "attack_resolved"
	EventTurnPassed     EventType = "turn_passed"
	EventMatchOver      EventType = "match_over"
	EventMatchDeleted   EventType = "match_deleted"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	MatchID   MatchID   `json:"match_id"`
	Side      Side      `json:"side,omitempty"` // The side that triggered the event
	Payload   any       `json:"payload,omitempty"`
}

// ShipPlacedPayload contains data for ship placed events
type ShipPlacedPayload struct {
	Placement Placement `json:"placement"`
}

// AttackResolvedPayload contains data for attack resolved events
type AttackResolvedPayload struct {
	Outcome Outcome `json:"outcome"`
}

// TurnPassedPayload contains data for turn passed events
type TurnPassedPayload struct {
	NextTurn Side `json:"next_turn"`
}

// MatchOverPayload contains data for match over events
type MatchOverPayload struct {
	Winner     Winner           `json:"winner"`
	Commitment *FleetCommitment `json:"commitment,omitempty"`
}
