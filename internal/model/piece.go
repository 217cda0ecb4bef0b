package model

import "strings"

type TeamColor string

const (
	White TeamColor = "white"
	Black TeamColor = "black"
)

func (c TeamColor) Opponent() TeamColor {
	if c == White {
		return Black
	}
	return White
}

type PieceType string

const (
	King   PieceType = "king"
	Queen  PieceType = "queen"
	Rook   PieceType = "rook"
	Bishop PieceType = "bishop"
	Knight PieceType = "knight"
	Pawn   PieceType = "pawn"
)

func (p PieceType) notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	case Pawn:
		return "P"
	}
	return ""
}

// promotionTypes is the order promotion candidates are generated in.
var promotionTypes = []PieceType{Queen, Rook, Bishop, Knight}

// Piece is immutable. Moving or promoting a piece puts a different value
// on the board rather than changing this one.
type Piece struct {
	Color TeamColor `json:"color"`
	Type  PieceType `json:"type"`
}

func NewPiece(color TeamColor, t PieceType) *Piece {
	return &Piece{Color: color, Type: t}
}

// Symbol returns the piece letter, upper case for White.
func (p Piece) Symbol() string {
	if p.Color == Black {
		return strings.ToLower(p.Type.notation())
	}
	return p.Type.notation()
}

var (
	kingDirs    = []Position{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	knightDirs  = []Position{{2, 1}, {2, -1}, {-2, 1}, {-2, -1}, {1, 2}, {1, -2}, {-1, 2}, {-1, -2}}
	rookDirs    = []Position{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
	bishopDirs  = []Position{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	pawnCapture = []int{-1, 1}
)

// Moves returns the pseudo-legal moves of p standing on at. Whether a move
// leaves the mover's own king attacked is not considered here.
func (p Piece) Moves(board *Board, at Position) []Move {
	switch p.Type {
	case King:
		return p.stepMoves(board, at, kingDirs)
	case Knight:
		return p.stepMoves(board, at, knightDirs)
	case Rook:
		return p.slideMoves(board, at, rookDirs)
	case Bishop:
		return p.slideMoves(board, at, bishopDirs)
	case Queen:
		return append(p.slideMoves(board, at, rookDirs), p.slideMoves(board, at, bishopDirs)...)
	case Pawn:
		return p.pawnMoves(board, at)
	default:
		return nil
	}
}

// canLand reports whether p may finish on target: empty or enemy-occupied.
func (p Piece) canLand(board *Board, target Position) bool {
	occupant := board.PieceAt(target)
	return occupant == nil || occupant.Color != p.Color
}

func (p Piece) stepMoves(board *Board, at Position, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		target, ok := at.Offset(dir.Row, dir.Col)
		if ok && p.canLand(board, target) {
			moves = append(moves, Move{Start: at, End: target})
		}
	}
	return moves
}

func (p Piece) slideMoves(board *Board, at Position, dirs []Position) []Move {
	moves := []Move{}
	for _, dir := range dirs {
		target, ok := at.Offset(dir.Row, dir.Col)
		for ok {
			occupant := board.PieceAt(target)
			if occupant == nil {
				moves = append(moves, Move{Start: at, End: target})
			} else {
				if occupant.Color != p.Color {
					moves = append(moves, Move{Start: at, End: target})
				}
				break
			}
			target, ok = target.Offset(dir.Row, dir.Col)
		}
	}
	return moves
}

func (p Piece) pawnMoves(board *Board, at Position) []Move {
	dir, startRow, promotionRow := 1, 2, 8
	if p.Color == Black {
		dir, startRow, promotionRow = -1, 7, 1
	}

	moves := []Move{}
	add := func(target Position) {
		if target.Row != promotionRow {
			moves = append(moves, Move{Start: at, End: target})
			return
		}
		for _, t := range promotionTypes {
			moves = append(moves, Move{Start: at, End: target, Promotion: t})
		}
	}

	// forward pushes
	if one, ok := at.Offset(dir, 0); ok && board.PieceAt(one) == nil {
		add(one)
		if at.Row == startRow {
			if two, ok := at.Offset(2*dir, 0); ok && board.PieceAt(two) == nil {
				add(two)
			}
		}
	}

	// captures need an enemy on the target square
	for _, dc := range pawnCapture {
		target, ok := at.Offset(dir, dc)
		if !ok {
			continue
		}
		if occupant := board.PieceAt(target); occupant != nil && occupant.Color != p.Color {
			add(target)
		}
	}
	return moves
}
