package logout

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/config"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/session"
)

// Path is the path of the logout endpoint.
const Path = handler.APIPath + "/logout"

// Service is the logout handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the logout handler.
var Handler = Service{}

// Init initializes the logout handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(Path, s.Logout)
	app.Post(Path, s.Logout)
}

// Logout closes the session named by the request token. Closing an already
// closed or unknown session is not an error.
func (s *Service) Logout(c *fiber.Ctx) error {
	if token := auth.BearerToken(c); token != "" {
		if err := session.Delete(token); err != nil {
			log.Error().Err(err).Msg("failed to delete session")
		}

		// drop any state derived from the closed session
		session.NotifyUserDataChanged(token)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    "",
		MaxAge:   -1,
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Sesion cerrada",
	})
}
