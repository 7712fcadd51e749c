package user

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/config"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler"
)

// Path is the base path of the user administration API.
const Path = handler.APIPath + "/usuarios"

// createRequest is the body of a user creation request.
type createRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=60"`
	LastName  string `json:"last_name" validate:"max=60"`
	ProfileID uint   `json:"profile_id" validate:"required"`
}

// updateRequest is the body of a user update request.
type updateRequest struct {
	Email     string `json:"email" validate:"required,email"`
	FirstName string `json:"first_name" validate:"required,max=60"`
	LastName  string `json:"last_name" validate:"max=60"`
	ProfileID uint   `json:"profile_id" validate:"required"`
	Active    *bool  `json:"active"`
}

// Service is the user administration handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	provider *auth.LocalProvider
	validate *validator.Validate
}

// Handler is the user administration handler.
var Handler = Service{}

// Init initializes the user administration handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg
	s.db = db
	s.provider = auth.NewLocalProvider(db)
	s.validate = validator.New()

	app.Get(Path, auth.RequirePermission(auth.PermUsersView), s.List)
	app.Get(Path+"/:id", auth.RequirePermission(auth.PermUsersView), s.Get)
	app.Post(Path, auth.RequirePermission(auth.PermUserAdd), s.Create)
	app.Put(Path+"/:id", auth.RequirePermission(auth.PermUsersView), s.Update)
	app.Delete(Path+"/:id", auth.RequirePermission(auth.PermUsersView), s.Delete)

	return nil
}

// List returns user accounts, paginated via limit and offset query params.
func (s *Service) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	users, total, err := s.provider.ListUsers(nil, limit, offset)
	if err != nil {
		log.Error().Err(err).Msg("failed to list users")

		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"usuarios": users,
		"total":    total,
	})
}

// Get returns a single user account.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}

	usr, err := s.provider.GetUserByID(id)
	if err != nil {
		return notFound(c)
	}

	return c.JSON(fiber.Map{
		"usuario": usr,
	})
}

// Create registers a new user account bound to a permission profile.
func (s *Service) Create(c *fiber.Ctx) error {
	req := new(createRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cuerpo de la peticion invalido",
		})
	}

	if err := s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Datos de usuario invalidos",
		})
	}

	usr, err := s.provider.CreateUser(req.Email, req.Password, req.FirstName, req.LastName, req.ProfileID)
	if err != nil {
		if errors.Is(err, auth.ErrEmailExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "El correo ya esta registrado",
			})
		}

		log.Error().Err(err).Str("email", req.Email).Msg("failed to create user")

		return internalError(c)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"usuario": usr,
	})
}

// Update edits a user account's profile and contact data.
func (s *Service) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}

	req := new(updateRequest)
	if err = c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Cuerpo de la peticion invalido",
		})
	}

	if err = s.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Datos de usuario invalidos",
		})
	}

	if err = s.provider.UpdateUser(id, req.Email, req.FirstName, req.LastName, req.ProfileID); err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return notFound(c)
		}

		log.Error().Err(err).Uint64("user_id", id).Msg("failed to update user")

		return internalError(c)
	}

	if req.Active != nil {
		if *req.Active {
			err = s.provider.ActivateUser(id)
		} else {
			err = s.provider.DeactivateUser(id)
		}

		if err != nil {
			log.Error().Err(err).Uint64("user_id", id).Msg("failed to toggle user state")

			return internalError(c)
		}
	}

	usr, err := s.provider.GetUserByID(id)
	if err != nil {
		return notFound(c)
	}

	return c.JSON(fiber.Map{
		"usuario": usr,
	})
}

// Delete removes a user account.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return badID(c)
	}

	if err = s.provider.DeleteUser(id); err != nil {
		log.Error().Err(err).Uint64("user_id", id).Msg("failed to delete user")

		return internalError(c)
	}

	return c.JSON(fiber.Map{
		"message": "Usuario eliminado",
	})
}

func parseID(c *fiber.Ctx) (uint64, error) {
	return strconv.ParseUint(c.Params("id"), 10, 64)
}

func badID(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Identificador de usuario invalido",
	})
}

func notFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"message": "Usuario no encontrado",
	})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "Error interno del servidor",
	})
}
