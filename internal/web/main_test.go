package web

import (
	"encoding/json"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/config"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/session"
)

type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

var _ storage.Storage = (*testStorage)(nil)

func (s *testStorage) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

func (s *testStorage) Set(key string, val []byte, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(val))
	copy(buf, val)
	s.data[key] = buf

	return nil
}

func (s *testStorage) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *testStorage) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string][]byte)

	return nil
}

func (s *testStorage) Close() error { return nil }

func newTestConfig() *config.Config {
	return &config.Config{
		DevMode: true,
		Title:   "GoRetail-Admin Test",
		Webserver: config.Webserver{
			URL:     "http://localhost",
			Port:    3000,
			Session: config.Session{ExpiryTime: time.Minute},
		},
	}
}

// newTestService builds the full web service on an in-memory database with
// two profiles: "Deposito" sees only the inventory module, "Administrador"
// sees everything.
func newTestService(t *testing.T) (*Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Module{},
		&models.Permission{},
		&models.Profile{},
		&models.ProfileModule{},
		&models.User{},
	))

	inventory := models.Module{
		Description: "Inventario",
		Position:    1,
		Permissions: []models.Permission{
			{Description: auth.PermProductsView, Route: "/inventario/productos", VisibleInMenu: true, Position: 1},
			{Description: auth.PermStockManage, Route: "/inventario/stock", VisibleInMenu: false, Position: 2},
		},
	}
	require.NoError(t, db.Create(&inventory).Error)

	admin := models.Module{
		Description: "Administracion",
		Position:    2,
		Permissions: []models.Permission{
			{Description: auth.PermUsersView, Route: "/admin/usuarios", VisibleInMenu: true, Position: 1},
			{Description: auth.PermModulesManage, Route: "/admin/modulos", VisibleInMenu: true, Position: 2},
		},
	}
	require.NoError(t, db.Create(&admin).Error)

	warehouse := models.Profile{Description: "Deposito", Modules: []models.Module{inventory}}
	require.NoError(t, db.Create(&warehouse).Error)

	full := models.Profile{Description: "Administrador", Modules: []models.Module{inventory, admin}}
	require.NoError(t, db.Create(&full).Error)

	users := []models.User{
		{
			Active: true, Email: "deposito@example.com",
			Password: models.HashPassword("s3cretpass"), FirstName: "Pedro",
			ProfileID: warehouse.ID,
		},
		{
			Active: true, Email: "admin@example.com",
			Password: models.HashPassword("s3cretpass"), FirstName: "Ana",
			ProfileID: full.ID,
		},
	}
	require.NoError(t, db.Create(&users).Error)

	session.Init(&testStorage{data: make(map[string][]byte)})

	return New(newTestConfig(), db), db
}

// loginAs runs the real login flow and returns the session token.
func loginAs(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	req := httptest.NewRequest(fiber.MethodPost, "/api/login",
		strings.NewReader(`{"email":"`+email+`","password":"s3cretpass"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.NotEmpty(t, payload.Token)

	return payload.Token
}


func TestGuard_RejectsAnonymous(t *testing.T) {
	svc, _ := newTestService(t)

	paths := []string{"/api/menu", "/api/modulos", "/inventario/productos", "/whatever"}

	for _, path := range paths {
		req := httptest.NewRequest(fiber.MethodGet, path, nil)

		resp, err := svc.App.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, path)

		var payload map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "/login", payload["redirect"], path)
	}
}

func TestGuard_PublicPaths(t *testing.T) {
	svc, _ := newTestService(t)

	req := httptest.NewRequest(fiber.MethodGet, "/checkalive", nil)
	resp, err := svc.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// logging out without a session is still a clean 200
	req = httptest.NewRequest(fiber.MethodPost, "/api/logout", nil)
	resp, err = svc.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestDispatch(t *testing.T) {
	svc, _ := newTestService(t)
	token := loginAs(t, svc.App, "deposito@example.com")

	t.Run("granted route serves its page", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/inventario/productos", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := svc.App.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "products", payload["page"])
	})

	t.Run("existing but ungranted route is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/admin/usuarios", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := svc.App.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})

	t.Run("unknown route falls back to home", func(t *testing.T) {
		req := httptest.NewRequest(fiber.MethodGet, "/no-such-page", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

		resp, err := svc.App.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
		assert.Equal(t, "home", payload["page"])
	})
}

func TestMenu_FiltersHiddenPermissions(t *testing.T) {
	svc, _ := newTestService(t)
	token := loginAs(t, svc.App, "deposito@example.com")

	req := httptest.NewRequest(fiber.MethodGet, "/api/menu", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := svc.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Menu []struct {
			Title string `json:"title"`
			Items []struct {
				Title string `json:"title"`
				Route string `json:"route"`
			} `json:"items"`
		} `json:"menu"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	require.Len(t, payload.Menu, 1)
	assert.Equal(t, "Inventario", payload.Menu[0].Title)

	// the stock permission is granted but hidden from the sidebar
	require.Len(t, payload.Menu[0].Items, 1)
	assert.Equal(t, auth.PermProductsView, payload.Menu[0].Items[0].Title)
}

// TestRenameFlow renames a module and checks the caller's session follows
// without a re-login while the access grants stay intact.
func TestRenameFlow(t *testing.T) {
	svc, db := newTestService(t)
	token := loginAs(t, svc.App, "admin@example.com")

	var inventory models.Module
	require.NoError(t, db.Where("description = ?", "Inventario").First(&inventory).Error)

	req := httptest.NewRequest(fiber.MethodPut, "/api/modulos/"+itoa(inventory.ID),
		strings.NewReader(`{"description":"Deposito Central"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err := svc.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// menu shows the new name immediately
	req = httptest.NewRequest(fiber.MethodGet, "/api/menu", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err = svc.App.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var payload struct {
		Menu []struct {
			Title string `json:"title"`
		} `json:"menu"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))

	titles := make([]string, 0, len(payload.Menu))
	for _, item := range payload.Menu {
		titles = append(titles, item.Title)
	}

	assert.Contains(t, titles, "Deposito Central")
	assert.NotContains(t, titles, "Inventario")

	// access checks keyed on permission names are untouched by the rename
	req = httptest.NewRequest(fiber.MethodGet, "/inventario/productos", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)

	resp, err = svc.App.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func itoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
