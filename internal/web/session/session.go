// Package session is the single read/write surface for the client session:
// the bearer token and the logged-in user's data including the module and
// permission tree. Other packages treat it as read-only and re-derive their
// views of it whenever the user-data-changed signal fires.
package session

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/storage"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/uniuri"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/navigation"
)

// TokenLength is the length of generated bearer tokens.
const TokenLength = 48

// Store is the global session store instance.
var Store *session.Store

// Data represents the session data structure: the user profile plus the
// nested module/permission tree issued at login.
type Data struct {
	User    models.User          `json:"usuario"`
	Modules []*navigation.Module `json:"modulos"`
}

// Write writes the session data for the given bearer token with an
// expiration duration. Token and user data are persisted in one store
// operation, so readers never observe a partial session.
func (s *Data) Write(token string, exp time.Duration) error {
	out, err := json.Marshal(s)
	if err != nil {
		return err
	}

	return Store.Storage.Set(token, out, exp)
}

// Read reads the session data for the given bearer token.
func (s *Data) Read(token string) error {
	byteData, err := Store.Storage.Get(token)
	if err != nil {
		return err
	}

	return json.Unmarshal(byteData, s)
}

// Delete removes the session for the given bearer token. Deleting an
// absent session is not an error, so the call is idempotent.
func Delete(token string) error {
	return Store.Storage.Delete(token)
}

// Init initializes the session store with the provided storage backend.
func Init(storage storage.Storage) {
	if storage == nil {
		panic("storage is nil")
	}

	Store = session.New(session.Config{
		Storage: storage,
	})
}

// GenerateToken generates a new secure random bearer token.
func GenerateToken() string {
	return uniuri.NewLen(TokenLength)
}

var (
	subscribersMu sync.RWMutex
	subscribers   []func(token string)
)

// OnUserDataChanged registers a callback invoked whenever the user data of
// a session changes. Mounted consumers (menu, route table) use it to
// refresh their derived state without a re-login.
func OnUserDataChanged(fn func(token string)) {
	subscribersMu.Lock()
	defer subscribersMu.Unlock()

	subscribers = append(subscribers, fn)
}

// NotifyUserDataChanged emits the process-wide user-data-changed signal
// for the given session token.
func NotifyUserDataChanged(token string) {
	subscribersMu.RLock()
	defer subscribersMu.RUnlock()

	for _, fn := range subscribers {
		fn(token)
	}
}

// PatchModuleDescription updates only the description of the module with
// the given id inside the stored session data and fires the
// user-data-changed signal. The tree shape and the permissions stay
// untouched. Patching a module absent from the session is a no-op.
func PatchModuleDescription(token string, moduleID uint, description string, exp time.Duration) error {
	data := new(Data)
	if err := data.Read(token); err != nil {
		return err
	}

	if !patchModule(data.Modules, moduleID, description) {
		return nil
	}

	if err := data.Write(token, exp); err != nil {
		return err
	}

	NotifyUserDataChanged(token)

	return nil
}

func patchModule(modules []*navigation.Module, moduleID uint, description string) bool {
	for _, mod := range modules {
		if mod.ID == moduleID {
			mod.Description = description
			return true
		}

		if patchModule(mod.Children, moduleID, description) {
			return true
		}
	}

	return false
}
