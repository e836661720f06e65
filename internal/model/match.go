package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// Phase is the lifecycle state of a match
type Phase string

const (
	PhaseSetup      Phase = "setup"       // Fleets being placed, no attack resolved yet
	PhaseInProgress Phase = "in_progress" // At least one attack resolved
	PhaseOver       Phase = "over"        // Terminal
)

// Outcome is the structured result of one resolved (or skipped) attack
type Outcome struct {
	Side         Side     `json:"side"`
	Position     Position `json:"position"`
	Hit          bool     `json:"hit"`
	Sunk         string   `json:"sunk,omitempty"` // Class name of a ship sunk by this attack
	GameOver     bool     `json:"game_over"`
	Winner       Winner   `json:"winner,omitempty"`
	TurnSwitched bool     `json:"turn_switched"`
	Exhausted    bool     `json:"exhausted,omitempty"` // No legal target was left; nothing was fired
}

// Placement records where a ship was put on a board
type Placement struct {
	Class     string    `json:"class"`
	Length    int       `json:"length"`
	Origin    Position  `json:"origin"`
	Direction Direction `json:"direction"`
}

// AttackRecord is one entry of a match's attack log
type AttackRecord struct {
	Side      Side     `json:"side"`
	Position  Position `json:"position"`
	Hit       bool     `json:"hit"`
	Exhausted bool     `json:"exhausted,omitempty"`
}

// FleetCommitment binds the computer to its fleet layout before play
type FleetCommitment struct {
	Root string `json:"root"`            // Hex MiMC digest
	Salt string `json:"salt,omitempty"` // Hex salt, only revealed once the match is over
}

// MatchRecord is the persisted form of a match.
// Replaying Placements then Attacks reproduces the full match state.
type MatchRecord struct {
	ID         MatchID              `json:"id"`
	Placements map[Side][]Placement `json:"placements"`
	Attacks    []AttackRecord       `json:"attacks"`
	Commitment *FleetCommitment     `json:"commitment,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
}

// MatchSummary is a lightweight listing entry
type MatchSummary struct {
	ID          MatchID   `json:"id"`
	Phase       Phase     `json:"phase"`
	CurrentTurn Side      `json:"current_turn"`
	Winner      Winner    `json:"winner,omitempty"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Clone returns a deep copy of the record
func (r *MatchRecord) Clone() *MatchRecord {
	out := *r
	out.Placements = make(map[Side][]Placement, len(r.Placements))
	for side, placements := range r.Placements {
		out.Placements[side] = append([]Placement(nil), placements...)
	}
	out.Attacks = append([]AttackRecord(nil), r.Attacks...)
	if r.Commitment != nil {
		c := *r.Commitment
		out.Commitment = &c
	}
	return &out
}
