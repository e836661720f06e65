package model

// Side is one of the two participants of a match
type Side string

const (
	SideHuman    Side = "human"
	SideComputer Side = "computer"
)

// IsValid returns true for the two known sides
func (s Side) IsValid() bool {
	return s == SideHuman || s == SideComputer
}

// Opponent returns the other side
func (s Side) Opponent() Side {
	if s == SideHuman {
		return SideComputer
	}
	return SideHuman
}

// Sides returns both sides in a stable order
func Sides() []Side {
	return []Side{SideHuman, SideComputer}
}

// Winner is the result of a finished match
type Winner string

const (
	WinnerNone     Winner = "" // Match still running
	WinnerHuman    Winner = "human"
	WinnerComputer Winner = "computer"
	WinnerTie      Winner = "tie"
)

// WinnerFor converts a side into the matching winner value
func WinnerFor(side Side) Winner {
	if side == SideHuman {
		return WinnerHuman
	}
	return WinnerComputer
}
