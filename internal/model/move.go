package model

// Move is a from/to pair plus an optional promotion. Promotion is empty
// unless a pawn reaches the last rank. Moves compare with ==.
type Move struct {
	Start     Position  `json:"start"`
	End       Position  `json:"end"`
	Promotion PieceType `json:"promotion,omitempty"`
}

func NewMove(start, end Position, promotion PieceType) Move {
	return Move{Start: start, End: end, Promotion: promotion}
}

func (m Move) String() string {
	s := m.Start.String() + m.End.String()
	if m.Promotion != "" {
		s += "=" + m.Promotion.notation()
	}
	return s
}

// Ply records a move applied to a game, with the piece that made it and
// whatever it captured.
type Ply struct {
	Move          Move   `json:"move"`
	Piece         Piece  `json:"piece"`
	CapturedPiece *Piece `json:"capturedPiece"`
}
