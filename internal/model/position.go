package model

import "fmt"

// GridSize is the dimension of every board (10x10)
const GridSize = 10

// CellCount is the number of cells on a board
const CellCount = GridSize * GridSize

// Position identifies a cell on the board
type Position struct {
	Row int `json:"row"` // 0-indexed from top
	Col int `json:"col"` // 0-indexed from left
}

// IsValid returns true if the position is within the grid
func (p Position) IsValid() bool {
	return p.Row >= 0 && p.Row < GridSize && p.Col >= 0 && p.Col < GridSize
}

// Index returns the row-major index of the position
func (p Position) Index() int {
	return p.Row*GridSize + p.Col
}

// PositionFromIndex is the inverse of Index
func PositionFromIndex(idx int) Position {
	return Position{Row: idx / GridSize, Col: idx % GridSize}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// AllPositions returns every cell of the grid in row-major order
func AllPositions() []Position {
	out := make([]Position, 0, CellCount)
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			out = append(out, Position{Row: row, Col: col})
		}
	}
	return out
}

// Direction is the axis a ship extends along from its origin
type Direction string

const (
	// DirectionHorizontal advances the column
	DirectionHorizontal Direction = "horizontal"
	// DirectionVertical advances the row
	DirectionVertical Direction = "vertical"
)

// IsValid returns true for the two known directions
func (d Direction) IsValid() bool {
	return d == DirectionHorizontal || d == DirectionVertical
}

// Step returns the i-th cell of a run starting at origin
func (d Direction) Step(origin Position, i int) Position {
	if d == DirectionHorizontal {
		return Position{Row: origin.Row, Col: origin.Col + i}
	}
	return Position{Row: origin.Row + i, Col: origin.Col}
}
