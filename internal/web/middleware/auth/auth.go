package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler/login"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler/logout"
)

// publicPaths are reachable without a session token.
var publicPaths = []string{
	login.Path,
	logout.Path,
	"/checkalive",
}

// New returns the session guard. Every request outside the public paths
// must carry a live token; anything else gets a uniform 401 with the login
// redirect target, never a partial page.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		for _, public := range publicPaths {
			if path == public || strings.HasPrefix(path, public+"/") {
				return c.Next()
			}
		}

		sessData := auth.ReadSession(c)
		if sessData == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message":  auth.MsgUnauthorized,
				"redirect": "/login",
			})
		}

		c.Locals("session", sessData)

		return c.Next()
	}
}
