package model

import "testing"

func pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// boardWith builds a board from a square-to-piece mapping.
func boardWith(pieces map[Position]Piece) *Board {
	b := NewBoard()
	for p, piece := range pieces {
		piece := piece
		b.Place(p, &piece)
	}
	return b
}

func TestResetBoard(t *testing.T) {
	b := NewStartingBoard()

	for col := 1; col <= 8; col++ {
		cases := []struct {
			row  int
			want Piece
		}{
			{1, Piece{White, backRank[col-1]}},
			{2, Piece{White, Pawn}},
			{7, Piece{Black, Pawn}},
			{8, Piece{Black, backRank[col-1]}},
		}
		for _, tc := range cases {
			got := b.PieceAt(pos(tc.row, col))
			if got == nil || *got != tc.want {
				t.Errorf("square %s: got %v, want %v", pos(tc.row, col), got, tc.want)
			}
		}
		for row := 3; row <= 6; row++ {
			if got := b.PieceAt(pos(row, col)); got != nil {
				t.Errorf("square %s: expected empty, got %v", pos(row, col), *got)
			}
		}
	}

	if got := b.PieceAt(pos(1, 5)); got.Type != King {
		t.Errorf("e1 should hold the white king, got %v", *got)
	}
	if got := b.PieceAt(pos(8, 4)); got.Type != Queen || got.Color != Black {
		t.Errorf("d8 should hold the black queen, got %v", *got)
	}
}

func TestResetClearsExistingPieces(t *testing.T) {
	b := NewBoard()
	b.Place(pos(4, 4), NewPiece(White, Queen))
	b.Reset()
	if b.PieceAt(pos(4, 4)) != nil {
		t.Error("Reset should clear squares outside the opening position")
	}
	if !b.Equal(NewStartingBoard()) {
		t.Error("Reset board should equal a fresh starting board")
	}
}

func TestPlaceOverwrites(t *testing.T) {
	b := NewBoard()
	b.Place(pos(3, 3), NewPiece(White, Knight))
	b.Place(pos(3, 3), NewPiece(Black, Rook))

	got := b.PieceAt(pos(3, 3))
	if got == nil || *got != (Piece{Black, Rook}) {
		t.Fatalf("expected black rook, got %v", got)
	}

	b.Place(pos(3, 3), nil)
	if b.PieceAt(pos(3, 3)) != nil {
		t.Error("placing nil should clear the square")
	}
}

func TestBoardEqual(t *testing.T) {
	a := NewBoard()
	b := NewBoard()
	if !a.Equal(b) {
		t.Error("empty boards should be equal")
	}

	a.Place(pos(2, 2), NewPiece(White, Pawn))
	if a.Equal(b) {
		t.Error("boards with different occupants should differ")
	}

	// distinct pointers, equal values
	b.Place(pos(2, 2), NewPiece(White, Pawn))
	if !a.Equal(b) {
		t.Error("equality should compare piece values, not identity")
	}

	b.Place(pos(2, 2), NewPiece(Black, Pawn))
	if a.Equal(b) {
		t.Error("boards with different colours should differ")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := NewStartingBoard()
	cp := b.Clone()

	cp.Place(pos(2, 5), nil)
	cp.Place(pos(4, 5), NewPiece(White, Pawn))

	if b.PieceAt(pos(2, 5)) == nil {
		t.Error("mutating the clone changed the original board")
	}
	if b.PieceAt(pos(4, 5)) != nil {
		t.Error("mutating the clone changed the original board")
	}
}

func TestOffBoardPanics(t *testing.T) {
	cases := []Position{{0, 1}, {1, 0}, {9, 4}, {4, 9}, {-1, -1}}
	for _, p := range cases {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("PieceAt(%v) should panic", p)
				}
			}()
			NewBoard().PieceAt(p)
		}()
	}
}

func TestBoardString(t *testing.T) {
	want := "rnbqkbnr\npppppppp\n........\n........\n........\n........\nPPPPPPPP\nRNBQKBNR\n"
	if got := NewStartingBoard().String(); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestSquaresOrientation(t *testing.T) {
	rows := NewStartingBoard().Squares()
	if len(rows) != 8 {
		t.Fatalf("expected 8 rows, got %d", len(rows))
	}
	if p := rows[0][4]; p == nil || *p != (Piece{Black, King}) {
		t.Errorf("first row should be rank 8, got %v", p)
	}
	if p := rows[7][4]; p == nil || *p != (Piece{White, King}) {
		t.Errorf("last row should be rank 1, got %v", p)
	}
}
