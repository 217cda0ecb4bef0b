package model

import "fmt"

// Position is a square on the board. Row and Col both run from 1 to 8,
// row 1 being White's back rank and col 1 the a-file.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func NewPosition(row, col int) Position {
	return Position{Row: row, Col: col}
}

func (p Position) IsValid() bool {
	return p.Row >= 1 && p.Row <= 8 && p.Col >= 1 && p.Col <= 8
}

// Offset returns the position shifted by (dr, dc) and whether it is still on the board.
func (p Position) Offset(dr, dc int) (Position, bool) {
	next := Position{Row: p.Row + dr, Col: p.Col + dc}
	return next, next.IsValid()
}

func (p Position) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
	}
	return fmt.Sprintf("%c%d", 'a'+p.Col-1, p.Row)
}
