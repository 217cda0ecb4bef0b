package service

import "errors"

var (
	ErrGameNotFound     = errors.New("game not found")
	ErrGameExists       = errors.New("game already exists")
	ErrGameFull         = errors.New("game is full")
	ErrGameOver         = errors.New("game is over")
	ErrNotSeated        = errors.New("player not in game")
	ErrNotYourTurn      = errors.New("not your turn")
	ErrAlreadyQueued    = errors.New("player already in queue")
	ErrNotAuthorized    = errors.New("not authorized to join this game")
	ErrDuplicateConnect = errors.New("connection already exists")
)
