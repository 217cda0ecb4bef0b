package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame(ctx context.Context) (string, error) {
	gameID := uuid.New().String()

	if _, err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	logx.WithContext(ctx).Infow("game created",
		logx.Field("game", gameID),
		logx.Field("games", gs.gameManager.GameCount()))
	return gameID, nil
}

func (gs *GameService) JoinGame(ctx context.Context, gameID, playerID string) (model.TeamColor, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return "", err
	}

	color, err := session.AddPlayer(playerID)
	if err != nil {
		return "", err
	}
	logx.WithContext(ctx).Infow("player joined",
		logx.Field("game", gameID),
		logx.Field("player", playerID),
		logx.Field("color", color))
	return color, nil
}

func (gs *GameService) GetGameState(gameID string) (GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return GameState{}, err
	}
	return session.State(), nil
}

// ValidMoves returns the legal moves from pos. hasPiece is false for an
// empty square.
func (gs *GameService) ValidMoves(gameID string, pos model.Position) (moves []model.Move, hasPiece bool, err error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return nil, false, err
	}
	moves, hasPiece = session.ValidMoves(pos)
	return moves, hasPiece, nil
}

func (gs *GameService) HandleMove(ctx context.Context, gameID, playerID string, move model.Move) (GameState, error) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return GameState{}, err
	}

	state, err := session.MakeMove(ctx, playerID, move)
	if err != nil {
		logx.WithContext(ctx).Infow("move rejected",
			logx.Field("game", gameID),
			logx.Field("player", playerID),
			logx.Field("move", move.String()),
			logx.Field("reason", err.Error()))
		return GameState{}, err
	}
	return state, nil
}

func (gs *GameService) JoinMatchmaking(ctx context.Context, playerID string) (*Match, error) {
	return gs.gameManager.JoinMatchmaking(ctx, playerID)
}

func (gs *GameService) MatchStatus(playerID string) (*Match, bool) {
	return gs.gameManager.MatchStatus(playerID)
}

func (gs *GameService) LeaveMatchmaking(playerID string) bool {
	return gs.gameManager.LeaveMatchmaking(playerID)
}

func (gs *GameService) RegisterConnection(ctx context.Context, gameID, playerID string, conn *SyncConn) error {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return err
	}
	return session.RegisterConnection(ctx, playerID, conn)
}

func (gs *GameService) UnregisterConnection(ctx context.Context, gameID, playerID string, conn *SyncConn) {
	session, err := gs.gameManager.GetGame(gameID)
	if err != nil {
		return
	}
	session.UnregisterConnection(ctx, playerID, conn)
}
