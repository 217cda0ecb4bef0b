package model

import (
	"fmt"
	"strings"
)

// Board is an 8x8 grid of optional pieces. The grid is held by value, so
// copying a Board copies every square.
type Board struct {
	squares [8][8]*Piece
}

var backRank = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStartingBoard returns a board holding the standard opening position.
func NewStartingBoard() *Board {
	b := NewBoard()
	b.Reset()
	return b
}

func index(pos Position) (int, int) {
	if !pos.IsValid() {
		panic(fmt.Sprintf("model: position %s is off the board", pos))
	}
	return pos.Row - 1, pos.Col - 1
}

// Place writes piece to pos, replacing any occupant. A nil piece clears the square.
func (b *Board) Place(pos Position, piece *Piece) {
	r, c := index(pos)
	b.squares[r][c] = piece
}

// PieceAt returns the piece on pos, or nil if the square is empty.
func (b *Board) PieceAt(pos Position) *Piece {
	r, c := index(pos)
	return b.squares[r][c]
}

// Reset overwrites the whole board with the standard starting position.
func (b *Board) Reset() {
	b.squares = [8][8]*Piece{}
	for col, t := range backRank {
		b.squares[0][col] = &Piece{Color: White, Type: t}
		b.squares[1][col] = &Piece{Color: White, Type: Pawn}
		b.squares[6][col] = &Piece{Color: Black, Type: Pawn}
		b.squares[7][col] = &Piece{Color: Black, Type: t}
	}
}

// Clone returns an owned copy of the board. Pieces are immutable so the
// copy may share them.
func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}

func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			x, y := b.squares[r][c], other.squares[r][c]
			if x == nil || y == nil {
				if x != y {
					return false
				}
				continue
			}
			if *x != *y {
				return false
			}
		}
	}
	return true
}

// Each calls fn for every occupied square, row 1 first, col 1 first.
func (b *Board) Each(fn func(pos Position, piece Piece)) {
	for r := 0; r < 8; r++ {
		for c := 0; c < 8; c++ {
			if p := b.squares[r][c]; p != nil {
				fn(Position{Row: r + 1, Col: c + 1}, *p)
			}
		}
	}
}

// Squares returns the grid as rows of pieces, row 8 first, for clients
// that draw the board from White's side.
func (b *Board) Squares() [][]*Piece {
	rows := make([][]*Piece, 0, 8)
	for r := 7; r >= 0; r-- {
		row := make([]*Piece, 8)
		copy(row, b.squares[r][:])
		rows = append(rows, row)
	}
	return rows
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 7; r >= 0; r-- {
		for c := 0; c < 8; c++ {
			if p := b.squares[r][c]; p != nil {
				sb.WriteString(p.Symbol())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
