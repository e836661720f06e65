package model

// ShipClass names one of the fixed ships of a fleet
type ShipClass struct {
	Name   string `json:"name"`
	Length int    `json:"length"`
}

// Fleet returns the fixed fleet composition every side places exactly once
func Fleet() []ShipClass {
	return []ShipClass{
		{Name: "Carrier", Length: 5},
		{Name: "Battleship", Length: 4},
		{Name: "Cruiser", Length: 3},
		{Name: "Submarine", Length: 3},
		{Name: "Destroyer", Length: 2},
	}
}
