package model

import (
	"sort"
	"testing"
)

func ends(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		s := m.End.String()
		if m.Promotion != "" {
			s += "=" + m.Promotion.notation()
		}
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPieceMoves(t *testing.T) {
	tests := []struct {
		name   string
		pieces map[Position]Piece
		at     Position
		want   []string
	}{
		{
			name:   "king in corner",
			pieces: map[Position]Piece{pos(1, 1): {White, King}},
			at:     pos(1, 1),
			want:   []string{"a2", "b1", "b2"},
		},
		{
			name: "king skips friends and captures enemies",
			pieces: map[Position]Piece{
				pos(4, 4): {White, King},
				pos(5, 4): {White, Pawn},
				pos(5, 5): {Black, Pawn},
			},
			at:   pos(4, 4),
			want: []string{"c3", "c4", "c5", "d3", "e3", "e4", "e5"},
		},
		{
			name:   "knight in centre",
			pieces: map[Position]Piece{pos(4, 4): {Black, Knight}},
			at:     pos(4, 4),
			want:   []string{"b3", "b5", "c2", "c6", "e2", "e6", "f3", "f5"},
		},
		{
			name: "knight on edge with friendly target",
			pieces: map[Position]Piece{
				pos(1, 2): {White, Knight},
				pos(3, 3): {White, Pawn},
			},
			at:   pos(1, 2),
			want: []string{"a3", "d2"},
		},
		{
			name: "rook stops at friend and captures enemy",
			pieces: map[Position]Piece{
				pos(1, 1): {White, Rook},
				pos(4, 1): {White, Pawn},
				pos(1, 3): {Black, Knight},
			},
			at:   pos(1, 1),
			want: []string{"a2", "a3", "b1", "c1"},
		},
		{
			name: "bishop rays",
			pieces: map[Position]Piece{
				pos(1, 3): {White, Bishop},
				pos(3, 1): {Black, Pawn},
				pos(3, 5): {White, Pawn},
			},
			at:   pos(1, 3),
			want: []string{"a3", "b2", "d2"},
		},
		{
			name:   "queen on empty board",
			pieces: map[Position]Piece{pos(1, 1): {White, Queen}},
			at:     pos(1, 1),
			want: []string{
				"a2", "a3", "a4", "a5", "a6", "a7", "a8",
				"b1", "b2", "c1", "c3", "d1", "d4", "e1", "e5",
				"f1", "f6", "g1", "g7", "h1", "h8",
			},
		},
		{
			name:   "white pawn on start rank",
			pieces: map[Position]Piece{pos(2, 5): {White, Pawn}},
			at:     pos(2, 5),
			want:   []string{"e3", "e4"},
		},
		{
			name:   "black pawn on start rank",
			pieces: map[Position]Piece{pos(7, 5): {Black, Pawn}},
			at:     pos(7, 5),
			want:   []string{"e5", "e6"},
		},
		{
			name: "pawn double push blocked on far square",
			pieces: map[Position]Piece{
				pos(2, 5): {White, Pawn},
				pos(4, 5): {Black, Knight},
			},
			at:   pos(2, 5),
			want: []string{"e3"},
		},
		{
			name: "pawn fully blocked",
			pieces: map[Position]Piece{
				pos(2, 5): {White, Pawn},
				pos(3, 5): {Black, Knight},
			},
			at:   pos(2, 5),
			want: []string{},
		},
		{
			name:   "pawn off start rank moves one",
			pieces: map[Position]Piece{pos(3, 5): {White, Pawn}},
			at:     pos(3, 5),
			want:   []string{"e4"},
		},
		{
			name: "pawn captures only enemies",
			pieces: map[Position]Piece{
				pos(4, 4): {White, Pawn},
				pos(5, 3): {Black, Bishop},
				pos(5, 5): {White, Knight},
			},
			at:   pos(4, 4),
			want: []string{"c5", "d5"},
		},
		{
			name: "white pawn promotes",
			pieces: map[Position]Piece{
				pos(7, 1): {White, Pawn},
				pos(8, 2): {Black, Rook},
			},
			at: pos(7, 1),
			want: []string{
				"a8=B", "a8=N", "a8=Q", "a8=R",
				"b8=B", "b8=N", "b8=Q", "b8=R",
			},
		},
		{
			name:   "black pawn promotes on rank one",
			pieces: map[Position]Piece{pos(2, 8): {Black, Pawn}},
			at:     pos(2, 8),
			want:   []string{"h1=B", "h1=N", "h1=Q", "h1=R"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardWith(tt.pieces)
			piece := b.PieceAt(tt.at)
			got := ends(piece.Moves(b, tt.at))
			want := append([]string(nil), tt.want...)
			sort.Strings(want)
			if !equalStrings(got, want) {
				t.Errorf("got %v, want %v", got, want)
			}
		})
	}
}

func TestQueenIsRookPlusBishop(t *testing.T) {
	b := boardWith(map[Position]Piece{
		pos(4, 4): {White, Queen},
		pos(6, 6): {Black, Pawn},
		pos(4, 7): {White, Pawn},
	})
	queen := b.PieceAt(pos(4, 4))
	rook := Piece{White, Rook}
	bishop := Piece{White, Bishop}

	want := append(rook.Moves(b, pos(4, 4)), bishop.Moves(b, pos(4, 4))...)
	got := queen.Moves(b, pos(4, 4))
	if len(got) != len(want) {
		t.Fatalf("got %d moves, want %d", len(got), len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("move %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPromotionOrder(t *testing.T) {
	b := boardWith(map[Position]Piece{pos(7, 3): {White, Pawn}})
	moves := b.PieceAt(pos(7, 3)).Moves(b, pos(7, 3))
	want := []PieceType{Queen, Rook, Bishop, Knight}
	if len(moves) != len(want) {
		t.Fatalf("got %d moves, want %d", len(moves), len(want))
	}
	for i, m := range moves {
		if m.Promotion != want[i] {
			t.Errorf("move %d: got promotion %q, want %q", i, m.Promotion, want[i])
		}
	}
}

func TestNonPromotingMovesHaveNoPromotion(t *testing.T) {
	b := NewStartingBoard()
	b.Each(func(p Position, piece Piece) {
		for _, m := range piece.Moves(b, p) {
			if m.Promotion != "" {
				t.Errorf("%s: unexpected promotion on %v", piece.Symbol(), m)
			}
			if m.Start != p {
				t.Errorf("%s: move %v does not start on %s", piece.Symbol(), m, p)
			}
		}
	})
}

func TestSymbol(t *testing.T) {
	if s := (Piece{White, Knight}).Symbol(); s != "N" {
		t.Errorf("got %q", s)
	}
	if s := (Piece{Black, Pawn}).Symbol(); s != "p" {
		t.Errorf("got %q", s)
	}
}
