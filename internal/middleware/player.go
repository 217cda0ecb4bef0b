package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zeromicro/go-zero/core/logx"
)

const PlayerIDKey = "playerID"

// EnsurePlayerID reads the caller's player ID from the X-Player-ID header or
// the playerId query parameter and stores it in the request locals.
func EnsurePlayerID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(PlayerIDKey) != nil {
			return c.Next()
		}

		// header first
		playerID := c.Get("X-Player-ID")
		if playerID == "" {
			playerID = c.Query("playerId")
		}

		if playerID == "" {
			logx.WithContext(c.UserContext()).Debugf("rejecting %s %s without player ID", c.Method(), c.Path())
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Player ID is required. Please ensure client is properly initialized.",
			})
		}

		c.Locals(PlayerIDKey, playerID)
		return c.Next()
	}
}

// PlayerID returns the ID stored by EnsurePlayerID.
func PlayerID(c *fiber.Ctx) string {
	id, _ := c.Locals(PlayerIDKey).(string)
	return id
}
