package menu

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/config"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/navigation"
)

// Path is the path of the menu endpoint.
const Path = handler.APIPath + "/menu"

// MsgNoModules is returned when the session grants no visible menu entries.
const MsgNoModules = "No hay módulos disponibles"

// Service is the menu handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the menu handler.
var Handler = Service{}

// Init initializes the menu handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config) {
	if app == nil || cfg == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg

	app.Get(Path, auth.RequireAuthenticated(), s.Get)
}

// Get renders the session's module tree as menu entries. Only permissions
// flagged as menu-visible appear; modules whose permissions are all hidden
// are dropped together with any empty ancestors.
func (s *Service) Get(c *fiber.Ctx) error {
	sessData := auth.SessionFromContext(c)

	items := navigation.BuildMenu(sessData.Modules)
	if len(items) == 0 {
		return c.JSON(fiber.Map{
			"menu":    []navigation.MenuItem{},
			"message": MsgNoModules,
		})
	}

	return c.JSON(fiber.Map{
		"menu": items,
	})
}
