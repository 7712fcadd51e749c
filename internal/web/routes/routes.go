// Package routes derives the dynamic route table of an authenticated
// session: every permission carrying a navigable path maps that path to a
// page, resolved against a declarative registry keyed by permission
// description. The table is immutable once built and rebuilt only on a
// session-change event, so stale tables never outlive a session change.
package routes

import (
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/navigation"
)

// Page is a renderable page component of the console.
type Page struct {
	Name    string
	Handler fiber.Handler
}

// Registry maps permission descriptions to their page components.
// Permissions with a route but no registry entry render the fallback page.
type Registry map[string]Page

// Entry is one resolved route of the table.
type Entry struct {
	Path       string
	Permission string
	Page       Page
}

// Table is the immutable route table of one session.
type Table struct {
	entries map[string]Entry
}

// Build derives a route table from a flattened permission list. Only
// permissions with a route participate. When two permissions declare the
// same route, the later one in flatten order wins; this is policy, not an
// error.
func Build(perms []navigation.Permission, registry Registry, fallback Page) *Table {
	entries := make(map[string]Entry, len(perms))

	for _, perm := range perms {
		if perm.Route == "" {
			continue
		}

		page, ok := registry[perm.Description]
		if !ok {
			page = fallback
		}

		entries[perm.Route] = Entry{
			Path:       perm.Route,
			Permission: perm.Description,
			Page:       page,
		}
	}

	return &Table{entries: entries}
}

// Resolve looks up the entry registered for a path.
func (t *Table) Resolve(path string) (Entry, bool) {
	entry, ok := t.entries[path]
	return entry, ok
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	return len(t.entries)
}

// Cache keeps one route table per session token. A table is built on first
// use and dropped when the session's user data changes, so the next
// request re-derives it from the fresh module tree.
type Cache struct {
	mu       sync.RWMutex
	tables   map[string]*Table
	registry Registry
	fallback Page
}

// NewCache creates a route table cache over the given page registry.
func NewCache(registry Registry, fallback Page) *Cache {
	return &Cache{
		tables:   make(map[string]*Table),
		registry: registry,
		fallback: fallback,
	}
}

// For returns the route table of the session token, building it from the
// given flattened permissions when no cached table exists.
func (c *Cache) For(token string, perms []navigation.Permission) *Table {
	c.mu.RLock()
	table, ok := c.tables[token]
	c.mu.RUnlock()

	if ok {
		return table
	}

	table = Build(perms, c.registry, c.fallback)

	c.mu.Lock()
	c.tables[token] = table
	c.mu.Unlock()

	return table
}

// Invalidate drops the cached table of a session token.
func (c *Cache) Invalidate(token string) {
	c.mu.Lock()
	delete(c.tables, token)
	c.mu.Unlock()
}
