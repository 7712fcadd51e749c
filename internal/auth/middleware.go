package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/session"
)

const (
	// MsgUnauthorized is the uniform response body for a missing or
	// invalid session.
	MsgUnauthorized = "No autorizado"

	// MsgForbidden is the response body for a valid session lacking the
	// required permission.
	MsgForbidden = "No tiene permiso para acceder a este recurso"

	bearerPrefix = "Bearer "
)

// BearerToken extracts the bearer token of the request: the Authorization
// header first, the session cookie as fallback.
func BearerToken(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimPrefix(header, bearerPrefix)
	}

	return c.Cookies("session")
}

// ReadSession loads the session data for the request's bearer token.
// It returns nil when the token is absent, unknown or the stored data is
// malformed; callers treat nil uniformly as "unauthenticated".
func ReadSession(c *fiber.Ctx) *session.Data {
	token := BearerToken(c)
	if token == "" {
		return nil
	}

	sessData := new(session.Data)
	if err := sessData.Read(token); err != nil {
		return nil
	}

	if sessData.User.ID == 0 {
		return nil
	}

	return sessData
}

// RequirePermission creates Fiber middleware that requires a specific permission.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessData := ReadSession(c)
		if sessData == nil {
			return unauthorized(c)
		}

		if !HasPermission(sessData, permission) {
			log.Warn().Uint64("user_id", sessData.User.ID).Str("permission", permission).
				Msg("User lacks required permission")

			return forbidden(c)
		}

		c.Locals("session", sessData)

		return c.Next()
	}
}

// RequireAnyPermission creates Fiber middleware that requires at least one of the given permissions.
func RequireAnyPermission(permissions ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessData := ReadSession(c)
		if sessData == nil {
			return unauthorized(c)
		}

		if !HasAnyPermission(sessData, permissions...) {
			log.Warn().Uint64("user_id", sessData.User.ID).Strs("permissions", permissions).
				Msg("User lacks required permissions")

			return forbidden(c)
		}

		c.Locals("session", sessData)

		return c.Next()
	}
}

// RequireAuthenticated creates Fiber middleware that only requires a valid
// session, without a specific permission.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessData := ReadSession(c)
		if sessData == nil {
			return unauthorized(c)
		}

		c.Locals("session", sessData)

		return c.Next()
	}
}

// SessionFromContext returns the session data a Require* middleware stored
// in the request locals, or nil when none is present.
func SessionFromContext(c *fiber.Ctx) *session.Data {
	sessData, ok := c.Locals("session").(*session.Data)
	if !ok {
		return nil
	}

	return sessData
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message":  MsgUnauthorized,
		"redirect": "/login",
	})
}

func forbidden(c *fiber.Ctx) error {
	return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"message": MsgForbidden,
	})
}
