package board

// Ship tracks hits against a fixed length. Ships are created by a Board
// and only that Board records hits on them.
type Ship struct {
	class  string
	length int
	hits   int
}

func newShip(class string, length int) *Ship {
	return &Ship{class: class, length: length}
}

// Class returns the ship's class name, empty for unnamed ships
func (s *Ship) Class() string {
	return s.class
}

// Length returns the number of cells the ship occupies
func (s *Ship) Length() int {
	return s.length
}

// Hits returns how many times the ship has been hit
func (s *Ship) Hits() int {
	return s.hits
}

// hit records a hit; the count never decreases
func (s *Ship) hit() {
	s.hits++
}

// IsSunk returns true once hits reach the ship's length
func (s *Ship) IsSunk() bool {
	return s.hits >= s.length
}
