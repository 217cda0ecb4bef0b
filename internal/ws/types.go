package ws

import (
	"encoding/json"

	"github.com/bytedance/sonic"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

// MessageType represents the different kinds of messages our system can handle
type MessageType string

const (
	MessageTypeMove       MessageType = "move"
	MessageTypeValidMoves MessageType = "validMoves"
	MessageTypeGameState  MessageType = "gameState"
	MessageTypeError      MessageType = "error"
)

// Message represents a WebSocket message in our system
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// ValidMovesRequest asks for the legal moves of the piece on Position.
type ValidMovesRequest struct {
	Position model.Position `json:"position"`
}

// ValidMovesResponse answers a ValidMovesRequest. HasPiece is false when
// the square is empty.
type ValidMovesResponse struct {
	Position model.Position `json:"position"`
	HasPiece bool           `json:"hasPiece"`
	Moves    []model.Move   `json:"moves"`
}

type ErrorPayload struct {
	Error string `json:"error"`
}

// Encode wraps payload in a Message of the given type and returns the frame bytes.
func Encode(t MessageType, payload any) ([]byte, error) {
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return sonic.Marshal(Message{Type: t, Payload: raw})
}

func Decode(data []byte) (Message, error) {
	var msg Message
	err := sonic.Unmarshal(data, &msg)
	return msg, err
}
