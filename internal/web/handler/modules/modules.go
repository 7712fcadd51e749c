package modules

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/config"
	moduledb "github.com/GoRetail-Admin/GoRetail-Admin/internal/db/controller/module"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/navigation"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/session"
)

// Path is the base path of the module administration API.
const Path = handler.APIPath + "/modulos"

// renameRequest is the body of a module rename request.
type renameRequest struct {
	Description string `json:"description" validate:"required,min=1,max=120"`
}

// Service is the module administration handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	validate *validator.Validate
}

// Handler is the module administration handler.
var Handler = Service{}

// Init initializes the module administration handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.validate = validator.New()

	app.Get(Path, auth.RequirePermission(auth.PermModulesManage), s.List)
	app.Put(Path+"/:id", auth.RequirePermission(auth.PermModulesManage), s.Rename)

	return nil
}

// List returns every module as a flat list, parents before children,
// permissions in position order.
func (s *Service) List(c *fiber.Ctx) error {
	mods, err := moduledb.GetAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to list modules")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error interno del servidor",
		})
	}

	views := make([]*navigation.Module, 0, len(mods))
	for i := range mods {
		views = append(views, toView(&mods[i]))
	}

	return c.JSON(fiber.Map{
		"modulos": views,
	})
}

// Rename updates a module's description and patches the caller's session so
// the new name shows up without a re-login. Permission grants are untouched.
func (s *Service) Rename(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Identificador de modulo invalido",
		})
	}

	req := new(renameRequest)
	if err = c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cuerpo de la peticion invalido",
		})
	}

	if err = s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "La descripcion es obligatoria",
		})
	}

	mod, err := moduledb.Rename(s.db, uint(id), req.Description)
	if err != nil {
		if errors.Is(err, moduledb.ErrModuleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Modulo no encontrado",
			})
		}

		log.Error().Err(err).Uint64("module_id", id).Msg("failed to rename module")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Error interno del servidor",
		})
	}

	// keep the caller's session tree in sync with the new name
	token := auth.BearerToken(c)
	if patchErr := session.PatchModuleDescription(
		token, mod.ID, mod.Description, s.cfg.Webserver.Session.ExpiryTime,
	); patchErr != nil {
		log.Warn().Err(patchErr).Uint("module_id", mod.ID).Msg("failed to patch session module")
	}

	return c.JSON(fiber.Map{
		"modulo": toView(mod),
	})
}

func toView(mod *models.Module) *navigation.Module {
	view := &navigation.Module{
		ID:          mod.ID,
		Description: mod.Description,
		ParentID:    mod.ParentID,
	}

	for _, perm := range mod.Permissions {
		view.Permissions = append(view.Permissions, navigation.Permission{
			ID:            perm.ID,
			Description:   perm.Description,
			Route:         perm.Route,
			VisibleInMenu: perm.VisibleInMenu,
		})
	}

	return view
}
