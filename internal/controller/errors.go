package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/benbeisheim/chessrules-backend/internal/model"
	"github.com/benbeisheim/chessrules-backend/internal/service"
)

// statusFor maps service and rules errors to HTTP status codes.
func statusFor(err error) int {
	var moveErr *model.MoveError
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrNotSeated), errors.Is(err, service.ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.As(err, &moveErr),
		errors.Is(err, service.ErrNotYourTurn),
		errors.Is(err, service.ErrGameOver),
		errors.Is(err, service.ErrGameFull),
		errors.Is(err, service.ErrGameExists),
		errors.Is(err, service.ErrAlreadyQueued):
		return fiber.StatusConflict
	}
	return fiber.StatusInternalServerError
}

func sendError(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}
