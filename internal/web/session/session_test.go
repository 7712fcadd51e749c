package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/navigation"
)

// testStorage is a minimal in-memory implementation of storage.Storage.
type testStorage struct {
	mu   sync.RWMutex
	data map[string][]byte
}

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

	if s.data == nil {
		s.data = make(map[string][]byte)
	}

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

func initTestStore() {
	Init(&testStorage{data: make(map[string][]byte)})
}

func uintPtr(v uint) *uint { return &v }

func testData() *Data {
	return &Data{
		User: models.User{ID: 1, Email: "admin@example.com", Active: true},
		Modules: []*navigation.Module{
			{
				ID:          1,
				Description: "Administracion",
				Permissions: []navigation.Permission{
					{ID: 10, Description: "Ver Usuarios", Route: "/admin/usuarios", VisibleInMenu: true},
				},
				Children: []*navigation.Module{
					{
						ID:          7,
						Description: "Stock",
						ParentID:    uintPtr(1),
						Permissions: []navigation.Permission{
							{ID: 11, Description: "Gestionar Stock", Route: "/stock", VisibleInMenu: true},
						},
					},
				},
			},
		},
	}
}

func TestWriteRead(t *testing.T) {
	initTestStore()

	token := GenerateToken()
	require.Len(t, token, TokenLength)

	require.NoError(t, testData().Write(token, time.Minute))

	got := new(Data)
	require.NoError(t, got.Read(token))
	assert.Equal(t, uint64(1), got.User.ID)
	require.Len(t, got.Modules, 1)
	require.Len(t, got.Modules[0].Children, 1)
	assert.Equal(t, "Stock", got.Modules[0].Children[0].Description)
}

func TestRead_AbsentToken(t *testing.T) {
	initTestStore()

	got := new(Data)
	err := got.Read("no-such-token")
	// storage miss yields no payload; Read surfaces that as an error and
	// the caller falls back to "no session"
	assert.Error(t, err)
	assert.Zero(t, got.User.ID)
}

func TestDelete_Idempotent(t *testing.T) {
	initTestStore()

	token := GenerateToken()
	require.NoError(t, testData().Write(token, time.Minute))

	require.NoError(t, Delete(token))
	require.NoError(t, Delete(token)) // second delete is a no-op

	got := new(Data)
	assert.Error(t, got.Read(token))
}

func TestGenerateToken_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateToken(), GenerateToken())
}

func TestNotifyUserDataChanged(t *testing.T) {
	initTestStore()

	var got []string

	OnUserDataChanged(func(token string) {
		got = append(got, token)
	})

	NotifyUserDataChanged("tok-1")
	assert.Equal(t, []string{"tok-1"}, got)
}

func TestPatchModuleDescription(t *testing.T) {
	initTestStore()

	token := GenerateToken()
	require.NoError(t, testData().Write(token, time.Minute))

	notified := 0

	OnUserDataChanged(func(string) { notified++ })

	// nested module gets renamed, permissions survive
	require.NoError(t, PatchModuleDescription(token, 7, "Inventario", time.Minute))

	got := new(Data)
	require.NoError(t, got.Read(token))
	assert.Equal(t, "Inventario", got.Modules[0].Children[0].Description)
	require.Len(t, got.Modules[0].Children[0].Permissions, 1)
	assert.Equal(t, "Gestionar Stock", got.Modules[0].Children[0].Permissions[0].Description)
	assert.Equal(t, 1, notified)

	// unknown module id patches nothing and stays silent
	require.NoError(t, PatchModuleDescription(token, 99, "Nada", time.Minute))
	assert.Equal(t, 1, notified)
}
