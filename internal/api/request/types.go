package request

import (
	"github.com/mcoot/battleship-go2/internal/model"
)

// PlaceShipRequest is the request body for placing one ship
type PlaceShipRequest struct {
	Side      string `json:"side"`
	Length    int    `json:"length"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
}

// SideRequest is the request body for fleet-wide operations
type SideRequest struct {
	Side string `json:"side"`
}

// AttackRequest is the request body for firing a shot
type AttackRequest struct {
	Side string `json:"side"`
	Row  int    `json:"row"`
	Col  int    `json:"col"`
}

// ParseSide converts a request side, defaulting to the human
func ParseSide(s string) (model.Side, error) {
	if s == "" {
		return model.SideHuman, nil
	}
	side := model.Side(s)
	if !side.IsValid() {
		return "", model.ErrInvalidSide
	}
	return side, nil
}
