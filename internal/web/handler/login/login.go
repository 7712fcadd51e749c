package login

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/config"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/handler"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/navigation"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/session"
)

const (
	// Path is the base path of the login API.
	Path = handler.APIPath + "/login"

	// VerifyTokenPath is the path of the token verification endpoint.
	VerifyTokenPath = Path + "/verify-token"
)

// credentials is the expected login request body.
type credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// sessionUser is the login response payload. It carries the authenticated
// user together with the module tree their profile grants.
type sessionUser struct {
	models.User
	Modules []*navigation.Module `json:"modulos"`
}

// Service is the login handler service.
type Service struct {
	handler.Service
	cfg      *config.Config
	db       *gorm.DB
	auth     *auth.Service
	provider *auth.LocalProvider
	validate *validator.Validate
}

// Handler is the login handler.
var Handler = Service{}

// Init initializes the login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return ErrNilAppConfigDB
	}

	s.cfg = cfg
	s.db = db
	s.auth = auth.NewService(db)
	s.provider = auth.NewLocalProvider(db)
	s.validate = validator.New()

	app.Post(Path, s.Post)
	app.Get(VerifyTokenPath, s.VerifyToken)

	return nil
}

// Post authenticates a user and opens a session.
//
// On success the response carries the session token and the user together
// with the module tree their profile grants. The tree is also persisted in
// the session store so later permission checks never touch the database.
func (s *Service) Post(c *fiber.Ctx) error {
	creds := new(credentials)

	if err := c.BodyParser(creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": ErrInvalidCredentialsBody.Error(),
		})
	}

	if err := s.validate.Struct(creds); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": ErrInvalidCredentialsBody.Error(),
		})
	}

	user, err := s.provider.Authenticate(creds.Email, creds.Password)
	if err != nil {
		log.Debug().Err(err).Str("email", creds.Email).Msg("login rejected")

		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": MsgInvalidCredentials,
		})
	}

	modules, err := s.auth.GetUserModuleTree(user.ID)
	if err != nil {
		log.Error().Err(err).Uint64("user_id", user.ID).Msg("failed to load user modules")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": MsgInternalError,
		})
	}

	token := session.GenerateToken()

	userSession := &session.Data{
		User:    *user,
		Modules: modules,
	}

	if err = userSession.Write(token, s.cfg.Webserver.Session.ExpiryTime); err != nil {
		log.Error().Err(err).Msg("failed to write session")

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": MsgInternalError,
		})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "session",
		Value:    token,
		MaxAge:   int(s.cfg.Webserver.Session.ExpiryTime.Seconds()),
		Secure:   !s.cfg.DevMode,
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"token": token,
		"usuario": sessionUser{
			User:    *user,
			Modules: modules,
		},
	})
}

// VerifyToken reports whether the request carries a live session token.
// Only the status code matters to the caller.
func (s *Service) VerifyToken(c *fiber.Ctx) error {
	token := auth.BearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": auth.MsgUnauthorized,
		})
	}

	sessData := new(session.Data)
	if err := sessData.Read(token); err != nil || sessData.User.ID == 0 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": auth.MsgUnauthorized,
		})
	}

	return c.JSON(fiber.Map{
		"message": "ok",
	})
}
