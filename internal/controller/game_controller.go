package controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chessrules-backend/internal/middleware"
	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
)

type GameController struct {
	gameService *service.GameService
}

func NewGameController(gameService *service.GameService) *GameController {
	return &GameController{gameService: gameService}
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame(c.UserContext())
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Game created",
		"game_id": gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := middleware.PlayerID(c)

	color, err := gc.gameService.JoinGame(c.UserContext(), gameID, playerID)
	if err != nil {
		return sendError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"color":   color,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameState, err := gc.gameService.GetGameState(c.Params("gameId"))
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(gameState)
}

// ValidMoves answers GET /:gameId/moves?row=&col= with the legal moves of
// the piece on that square.
func (gc *GameController) ValidMoves(c *fiber.Ctx) error {
	pos := model.Position{Row: c.QueryInt("row"), Col: c.QueryInt("col")}
	if !pos.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "row and col must be between 1 and 8",
		})
	}

	moves, hasPiece, err := gc.gameService.ValidMoves(c.Params("gameId"), pos)
	if err != nil {
		return sendError(c, err)
	}
	if !hasPiece {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no piece at " + pos.String(),
		})
	}
	return c.JSON(fiber.Map{
		"position": pos,
		"moves":    moves,
	})
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	var move model.Move
	if err := c.BodyParser(&move); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move body",
		})
	}
	if !move.Start.IsValid() || !move.End.IsValid() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid move, out of bounds",
		})
	}

	state, err := gc.gameService.HandleMove(c.UserContext(), c.Params("gameId"), middleware.PlayerID(c), move)
	if err != nil {
		return sendError(c, err)
	}
	return c.JSON(state)
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	match, err := gc.gameService.JoinMatchmaking(c.UserContext(), middleware.PlayerID(c))
	if err != nil {
		return sendError(c, err)
	}
	if match == nil {
		return c.JSON(fiber.Map{
			"status": "queued",
		})
	}
	return c.JSON(fiber.Map{
		"status": "matched",
		"match":  match,
	})
}

func (gc *GameController) MatchmakingStatus(c *fiber.Ctx) error {
	match, ok := gc.gameService.MatchStatus(middleware.PlayerID(c))
	if !ok {
		return c.JSON(fiber.Map{
			"status": "queued",
		})
	}
	return c.JSON(fiber.Map{
		"status": "matched",
		"match":  match,
	})
}

func (gc *GameController) LeaveMatchmaking(c *fiber.Ctx) error {
	if !gc.gameService.LeaveMatchmaking(middleware.PlayerID(c)) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "player not in queue",
		})
	}
	return c.JSON(fiber.Map{
		"status": "left",
	})
}
