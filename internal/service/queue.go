package service

import (
	"sync"
	"time"

	"github.com/benbeisheim/chessrules-backend/internal/model"
)

type QueuedPlayer struct {
	PlayerID string
	JoinedAt time.Time
}

// Match tells a queued player which game they were paired into.
type Match struct {
	GameID string          `json:"gameId"`
	Color  model.TeamColor `json:"color"`
}

// Queue holds players waiting for an opponent, oldest first.
type Queue struct {
	players []QueuedPlayer
	mu      sync.Mutex
}

func NewQueue() *Queue {
	return &Queue{
		players: []QueuedPlayer{},
	}
}

func (q *Queue) AddPlayer(playerID string) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, p := range q.players {
		if p.PlayerID == playerID {
			return ErrAlreadyQueued
		}
	}

	q.players = append(q.players, QueuedPlayer{
		PlayerID: playerID,
		JoinedAt: time.Now(),
	})
	return nil
}

// NextPair removes and returns the two players who have waited longest.
// ok is false when fewer than two are queued.
func (q *Queue) NextPair() (first, second QueuedPlayer, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.players) < 2 {
		return QueuedPlayer{}, QueuedPlayer{}, false
	}
	first, second = q.players[0], q.players[1]
	q.players = q.players[2:]
	return first, second, true
}

func (q *Queue) Remove(playerID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	for i, p := range q.players {
		if p.PlayerID == playerID {
			q.players = append(q.players[:i], q.players[i+1:]...)
			return true
		}
	}
	return false
}

func (q *Queue) Size() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.players)
}
