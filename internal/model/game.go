package model

// Game holds a board and the side to move. It has no internal locking:
// concurrent reads are fine while nothing mutates it, but callers must
// serialise MakeMove, SetBoard and SetTeamTurn.
type Game struct {
	board    *Board
	teamTurn TeamColor
}

// NewGame returns a game at the standard starting position with White to move.
func NewGame() *Game {
	return &Game{
		board:    NewStartingBoard(),
		teamTurn: White,
	}
}

func (g *Game) TeamTurn() TeamColor {
	return g.teamTurn
}

// SetTeamTurn overrides the side to move without any validation.
func (g *Game) SetTeamTurn(team TeamColor) {
	g.teamTurn = team
}

func (g *Game) Board() *Board {
	return g.board
}

// SetBoard replaces the board wholesale without any validation.
func (g *Game) SetBoard(board *Board) {
	g.board = board
}

func (g *Game) Piece(pos Position) *Piece {
	return g.board.PieceAt(pos)
}

// ValidMoves returns the legal moves of the piece on pos in generation
// order. ok is false when the square is empty, which is distinct from a
// piece that has no legal moves.
func (g *Game) ValidMoves(pos Position) (moves []Move, ok bool) {
	piece := g.board.PieceAt(pos)
	if piece == nil {
		return nil, false
	}

	legal := []Move{}
	for _, move := range piece.Moves(g.board, pos) {
		scratch := &Game{board: g.board.Clone(), teamTurn: g.teamTurn}
		scratch.apply(move)
		if !scratch.IsInCheck(piece.Color) {
			legal = append(legal, move)
		}
	}
	return legal, true
}

// MakeMove applies move for the side to move. On failure it returns a
// *MoveError and leaves the game unchanged.
func (g *Game) MakeMove(move Move) error {
	piece := g.board.PieceAt(move.Start)
	if piece == nil {
		return &MoveError{Move: move, Reason: ErrNoPiece}
	}
	if piece.Color != g.teamTurn {
		return &MoveError{Move: move, Reason: ErrWrongTurn}
	}
	if !g.isValidMove(move) {
		return &MoveError{Move: move, Reason: ErrIllegalMove}
	}

	g.apply(move)
	g.switchTurn()
	return nil
}

func (g *Game) isValidMove(move Move) bool {
	legal, ok := g.ValidMoves(move.Start)
	if !ok {
		return false
	}
	for _, m := range legal {
		if m == move {
			return true
		}
	}
	return false
}

// apply moves the piece on move.Start to move.End, promoting when asked.
// It performs no checks.
func (g *Game) apply(move Move) {
	piece := g.board.PieceAt(move.Start)
	g.board.Place(move.Start, nil)
	if move.Promotion != "" {
		piece = NewPiece(piece.Color, move.Promotion)
	}
	g.board.Place(move.End, piece)
}

func (g *Game) switchTurn() {
	g.teamTurn = g.teamTurn.Opponent()
}

func (g *Game) findKing(team TeamColor) (Position, bool) {
	var (
		kingPos Position
		found   bool
	)
	g.board.Each(func(pos Position, piece Piece) {
		if !found && piece.Color == team && piece.Type == King {
			kingPos, found = pos, true
		}
	})
	return kingPos, found
}

// IsInCheck reports whether any enemy piece attacks team's king. A team
// without a king is never in check.
func (g *Game) IsInCheck(team TeamColor) bool {
	kingPos, ok := g.findKing(team)
	if !ok {
		return false
	}

	attacked := false
	enemy := team.Opponent()
	g.board.Each(func(pos Position, piece Piece) {
		if attacked || piece.Color != enemy {
			return
		}
		for _, move := range piece.Moves(g.board, pos) {
			if move.End == kingPos {
				attacked = true
				return
			}
		}
	})
	return attacked
}

func (g *Game) hasLegalMoves(team TeamColor) bool {
	for row := 1; row <= 8; row++ {
		for col := 1; col <= 8; col++ {
			pos := Position{Row: row, Col: col}
			piece := g.board.PieceAt(pos)
			if piece == nil || piece.Color != team {
				continue
			}
			if moves, _ := g.ValidMoves(pos); len(moves) > 0 {
				return true
			}
		}
	}
	return false
}

// IsInCheckmate reports whether team is in check with no legal move.
func (g *Game) IsInCheckmate(team TeamColor) bool {
	return g.IsInCheck(team) && !g.hasLegalMoves(team)
}

// IsInStalemate reports whether team is not in check but has no legal move.
// A team with no pieces at all counts as stalemated.
func (g *Game) IsInStalemate(team TeamColor) bool {
	return !g.IsInCheck(team) && !g.hasLegalMoves(team)
}

// Equal reports whether both games have equal boards and the same side to move.
func (g *Game) Equal(other *Game) bool {
	return other != nil && g.teamTurn == other.teamTurn && g.board.Equal(other.board)
}

type Status string

const (
	StatusOngoing   Status = "ongoing"
	StatusCheck     Status = "check"
	StatusCheckmate Status = "checkmate"
	StatusStalemate Status = "stalemate"
)

// Status summarises the position from team's point of view.
func (g *Game) Status(team TeamColor) Status {
	inCheck := g.IsInCheck(team)
	if g.hasLegalMoves(team) {
		if inCheck {
			return StatusCheck
		}
		return StatusOngoing
	}
	if inCheck {
		return StatusCheckmate
	}
	return StatusStalemate
}

func (s Status) IsOver() bool {
	return s == StatusCheckmate || s == StatusStalemate
}
