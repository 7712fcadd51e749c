package login

import "errors"

const (
	// MsgInvalidCredentials is returned to the client on failed authentication.
	// It is deliberately the same for unknown users, wrong passwords and
	// inactive accounts.
	MsgInvalidCredentials = "Credenciales invalidas"

	// MsgInternalError is returned to the client when session handling fails.
	MsgInternalError = "Error interno del servidor"
)

var (
	// ErrNilAppConfigDB is returned by Init when a required dependency is nil.
	ErrNilAppConfigDB = errors.New("app, cfg or db is nil")

	// ErrInvalidCredentialsBody is returned when the login request body cannot
	// be parsed or fails validation.
	ErrInvalidCredentialsBody = errors.New("invalid credentials body")
)
