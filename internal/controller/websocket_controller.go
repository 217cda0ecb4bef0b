package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/gofiber/websocket/v2"
	"github.com/zeromicro/go-zero/core/logx"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
	"github.com/benbeisheim/chessrules-backend/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	ctx := context.Background()
	logger := logx.WithContext(ctx)

	gameID := c.Params("gameId")
	playerID, _ := c.Locals(middleware.PlayerIDKey).(string)
	// broadcasts from other players' moves write to the same connection
	conn := service.NewSyncConn(c)

	if err := wsc.gameService.RegisterConnection(ctx, gameID, playerID, conn); err != nil {
		logger.Errorf("failed to register connection: %v", err)
		wsc.sendError(conn, err.Error())
		_ = conn.Close()
		return
	}
	defer wsc.gameService.UnregisterConnection(ctx, gameID, playerID, conn)

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			logger.Infof("read error on game %s: %v", gameID, err)
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		msg, err := ws.Decode(message)
		if err != nil {
			logger.Errorf("parse error: %v", err)
			wsc.sendError(conn, "malformed message")
			continue
		}

		if err := wsc.handleMessage(ctx, conn, gameID, playerID, msg); err != nil {
			logger.Infof("handle error: %v", err)
			wsc.sendError(conn, err.Error())
		}
	}
}

func (wsc *WebSocketController) handleMessage(ctx context.Context, c service.Conn, gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.Move
		if err := sonic.Unmarshal(msg.Payload, &move); err != nil {
			return err
		}
		if !move.Start.IsValid() || !move.End.IsValid() {
			return errors.New("invalid move, out of bounds")
		}
		// the new state reaches this connection through the broadcast
		_, err := wsc.gameService.HandleMove(ctx, gameID, playerID, move)
		return err

	case ws.MessageTypeValidMoves:
		var req ws.ValidMovesRequest
		if err := sonic.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		if !req.Position.IsValid() {
			return fmt.Errorf("position %s is off the board", req.Position)
		}
		moves, hasPiece, err := wsc.gameService.ValidMoves(gameID, req.Position)
		if err != nil {
			return err
		}
		frame, err := ws.Encode(ws.MessageTypeValidMoves, ws.ValidMovesResponse{
			Position: req.Position,
			HasPiece: hasPiece,
			Moves:    moves,
		})
		if err != nil {
			return err
		}
		return c.WriteMessage(websocket.TextMessage, frame)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

// Helper method to send error messages
func (wsc *WebSocketController) sendError(c service.Conn, errorMsg string) {
	frame, err := ws.Encode(ws.MessageTypeError, ws.ErrorPayload{Error: errorMsg})
	if err != nil {
		return
	}
	_ = c.WriteMessage(websocket.TextMessage, frame)
}
