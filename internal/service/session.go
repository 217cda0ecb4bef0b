package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/gofiber/websocket/v2"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

// GameConnections holds the websocket observers of one game.
type GameConnections struct {
	connections map[string]*SyncConn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*SyncConn),
	}
}

type Players struct {
	White string `json:"white"`
	Black string `json:"black"`
}

type CapturedPieces struct {
	White []model.Piece `json:"white"`
	Black []model.Piece `json:"black"`
}

// GameState is the snapshot sent to clients.
type GameState struct {
	ID             string           `json:"id"`
	Board          [][]*model.Piece `json:"board"`
	ToMove         model.TeamColor  `json:"toMove"`
	Status         model.Status     `json:"status"`
	IsCheck        bool             `json:"isCheck"`
	MoveHistory    []model.Ply      `json:"moveHistory"`
	CapturedPieces CapturedPieces   `json:"capturedPieces"`
	LastMove       *model.Move      `json:"lastMove"`
	Players        Players          `json:"players"`
}

// Session is a single hosted game: the rules engine plus seating, history
// and the websocket observers. model.Game is not safe for concurrent
// mutation, so every access goes through mu.
type Session struct {
	ID          string
	mu          sync.Mutex
	game        *model.Game
	players     Players
	history     []model.Ply
	captured    CapturedPieces
	lastMove    *model.Move
	status      model.Status
	connections *GameConnections
}

func NewSession(id string) *Session {
	return &Session{
		ID:          id,
		game:        model.NewGame(),
		history:     make([]model.Ply, 0),
		captured:    CapturedPieces{White: make([]model.Piece, 0), Black: make([]model.Piece, 0)},
		status:      model.StatusOngoing,
		connections: NewGameConnections(),
	}
}

// AddPlayer seats playerID, White first. A player who is already seated
// gets their existing colour back.
func (s *Session) AddPlayer(playerID string) (model.TeamColor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if color, ok := s.colorOf(playerID); ok {
		return color, nil
	}
	if s.players.White == "" {
		s.players.White = playerID
		return model.White, nil
	}
	if s.players.Black == "" {
		s.players.Black = playerID
		return model.Black, nil
	}
	return "", ErrGameFull
}

func (s *Session) colorOf(playerID string) (model.TeamColor, bool) {
	switch {
	case playerID == "":
		return "", false
	case s.players.White == playerID:
		return model.White, true
	case s.players.Black == playerID:
		return model.Black, true
	}
	return "", false
}

func (s *Session) IsPlayerInGame(playerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.colorOf(playerID)
	return ok
}

func (s *Session) hasOpenSeat() bool {
	return s.players.White == "" || s.players.Black == ""
}

func (s *Session) State() GameState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state()
}

func (s *Session) state() GameState {
	history := make([]model.Ply, len(s.history))
	copy(history, s.history)
	captured := CapturedPieces{
		White: append(make([]model.Piece, 0, len(s.captured.White)), s.captured.White...),
		Black: append(make([]model.Piece, 0, len(s.captured.Black)), s.captured.Black...),
	}
	return GameState{
		ID:             s.ID,
		Board:          s.game.Board().Squares(),
		ToMove:         s.game.TeamTurn(),
		Status:         s.status,
		IsCheck:        s.status == model.StatusCheck || s.status == model.StatusCheckmate,
		MoveHistory:    history,
		CapturedPieces: captured,
		LastMove:       s.lastMove,
		Players:        s.players,
	}
}

// Status is the status of the side to move after the last move.
func (s *Session) Status() model.Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// ValidMoves returns the legal moves of the piece on pos. ok is false when
// the square is empty.
func (s *Session) ValidMoves(pos model.Position) ([]model.Move, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.game.ValidMoves(pos)
}

// MakeMove plays move on behalf of playerID and broadcasts the new state.
func (s *Session) MakeMove(ctx context.Context, playerID string, move model.Move) (GameState, error) {
	state, err := s.lockedMakeMove(playerID, move)
	if err != nil {
		return GameState{}, err
	}

	logx.WithContext(ctx).Infow("move played",
		logx.Field("game", s.ID),
		logx.Field("player", playerID),
		logx.Field("move", move.String()),
		logx.Field("status", state.Status))
	s.broadcast(ctx, state)
	return state, nil
}

func (s *Session) lockedMakeMove(playerID string, move model.Move) (GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.makeMove(playerID, move)
}

func (s *Session) makeMove(playerID string, move model.Move) (GameState, error) {
	if s.status.IsOver() {
		return GameState{}, ErrGameOver
	}
	color, ok := s.colorOf(playerID)
	if !ok {
		return GameState{}, ErrNotSeated
	}
	if color != s.game.TeamTurn() {
		return GameState{}, ErrNotYourTurn
	}

	mover := s.game.Piece(move.Start)
	captured := s.game.Piece(move.End)
	if err := s.game.MakeMove(move); err != nil {
		return GameState{}, err
	}

	ply := model.Ply{Move: move, Piece: *mover, CapturedPiece: captured}
	s.history = append(s.history, ply)
	if captured != nil {
		switch color {
		case model.White:
			s.captured.White = append(s.captured.White, *captured)
		case model.Black:
			s.captured.Black = append(s.captured.Black, *captured)
		}
	}
	s.lastMove = &move
	s.status = s.game.Status(s.game.TeamTurn())

	return s.state(), nil
}

// RegisterConnection attaches conn for playerID and sends it the current
// state. Seated players and, while a seat is open, anyone else may connect.
// Every other write to the connection must go through conn as well.
func (s *Session) RegisterConnection(ctx context.Context, playerID string, conn *SyncConn) error {
	s.mu.Lock()
	_, seated := s.colorOf(playerID)
	isAuthorized := seated || s.hasOpenSeat()
	state := s.state()
	s.mu.Unlock()

	if !isAuthorized {
		return ErrNotAuthorized
	}

	s.connections.mu.Lock()
	if _, exists := s.connections.connections[playerID]; exists {
		// keep the existing connection and turn the new one away
		s.connections.mu.Unlock()
		_ = conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ErrDuplicateConnect.Error()),
		)
		_ = conn.Close()
		return ErrDuplicateConnect
	}
	s.connections.connections[playerID] = conn
	s.connections.mu.Unlock()

	logx.WithContext(ctx).Infow("connection registered",
		logx.Field("game", s.ID),
		logx.Field("player", playerID),
		logx.Field("conn", fmt.Sprintf("%p", conn)),
		logx.Field("connections", s.ConnectionCount()))

	s.send(ctx, playerID, conn, state)
	return nil
}

// UnregisterConnection drops playerID's connection if conn is still the
// current one.
func (s *Session) UnregisterConnection(ctx context.Context, playerID string, conn *SyncConn) {
	s.connections.mu.Lock()
	defer s.connections.mu.Unlock()

	current, exists := s.connections.connections[playerID]
	if !exists || current != conn {
		return
	}
	delete(s.connections.connections, playerID)
	logx.WithContext(ctx).Infow("connection unregistered",
		logx.Field("game", s.ID),
		logx.Field("player", playerID),
		logx.Field("connections", len(s.connections.connections)))
}

func (s *Session) ConnectionCount() int {
	s.connections.mu.RLock()
	defer s.connections.mu.RUnlock()
	return len(s.connections.connections)
}

func (s *Session) broadcast(ctx context.Context, state GameState) {
	// snapshot so writes happen without holding the lock
	s.connections.mu.RLock()
	active := make(map[string]*SyncConn, len(s.connections.connections))
	for playerID, conn := range s.connections.connections {
		active[playerID] = conn
	}
	s.connections.mu.RUnlock()

	for playerID, conn := range active {
		s.send(ctx, playerID, conn, state)
	}
}

func (s *Session) send(ctx context.Context, playerID string, conn *SyncConn, state GameState) {
	frame, err := ws.Encode(ws.MessageTypeGameState, state)
	if err != nil {
		logx.WithContext(ctx).Errorf("failed to encode state for game %s: %v", s.ID, err)
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
		logx.WithContext(ctx).Errorf("failed to send state to player %s: %v", playerID, err)
		s.UnregisterConnection(ctx, playerID, conn)
	}
}
