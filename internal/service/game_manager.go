package service

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
)

// GameManager is the registry of hosted games and the matchmaking queue.
type GameManager struct {
	games   map[string]*Session
	queue   *Queue
	matches map[string]Match // playerID -> match of the game they were paired into
	mu      sync.RWMutex
}

func NewGameManager() *GameManager {
	return &GameManager{
		games:   make(map[string]*Session),
		queue:   NewQueue(),
		matches: make(map[string]Match),
	}
}

func (gm *GameManager) CreateGame(gameID string) (*Session, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return nil, ErrGameExists
	}

	session := NewSession(gameID)
	gm.games[gameID] = session
	return session, nil
}

func (gm *GameManager) GetGame(gameID string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	session, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}
	return session, nil
}

func (gm *GameManager) GameCount() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

// JoinMatchmaking queues playerID and pairs the two longest-waiting players
// into a new game. The returned match is nil while the player is still
// waiting. A player whose matched game is still being played gets that
// match back instead of a second game.
func (gm *GameManager) JoinMatchmaking(ctx context.Context, playerID string) (*Match, error) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if m, ok := gm.matches[playerID]; ok {
		if gm.isLive(m) {
			return &m, nil
		}
		delete(gm.matches, playerID)
	}
	if err := gm.queue.AddPlayer(playerID); err != nil {
		return nil, err
	}

	first, second, ok := gm.queue.NextPair()
	if !ok {
		logx.WithContext(ctx).Infow("player queued",
			logx.Field("player", playerID),
			logx.Field("queued", gm.queue.Size()))
		return nil, nil
	}

	gm.pruneMatches()

	gameID := uuid.New().String()
	session := NewSession(gameID)
	for _, p := range []QueuedPlayer{first, second} {
		color, err := session.AddPlayer(p.PlayerID)
		if err != nil {
			return nil, err
		}
		gm.matches[p.PlayerID] = Match{GameID: gameID, Color: color}
	}
	gm.games[gameID] = session

	logx.WithContext(ctx).Infow("match made",
		logx.Field("game", gameID),
		logx.Field("white", first.PlayerID),
		logx.Field("black", second.PlayerID),
		logx.Field("games", len(gm.games)))

	if m, ok := gm.matches[playerID]; ok {
		return &m, nil
	}
	return nil, nil
}

// isLive reports whether the game of m is still being played. Callers hold
// gm.mu.
func (gm *GameManager) isLive(m Match) bool {
	session, ok := gm.games[m.GameID]
	return ok && !session.Status().IsOver()
}

// pruneMatches drops the matches whose game has ended. Callers hold gm.mu.
func (gm *GameManager) pruneMatches() {
	for playerID, m := range gm.matches {
		if !gm.isLive(m) {
			delete(gm.matches, playerID)
		}
	}
}

// MatchStatus returns the match made for playerID, if any. A match keeps
// answering until the player leaves matchmaking or queues again after its
// game has ended.
func (gm *GameManager) MatchStatus(playerID string) (*Match, bool) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	m, ok := gm.matches[playerID]
	if !ok {
		return nil, false
	}
	return &m, true
}

// LeaveMatchmaking takes playerID out of the queue and forgets any match
// made for them. It reports whether there was anything to leave.
func (gm *GameManager) LeaveMatchmaking(playerID string) bool {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	_, matched := gm.matches[playerID]
	delete(gm.matches, playerID)
	return gm.queue.Remove(playerID) || matched
}
