package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uintPtr(v uint) *uint { return &v }

func testModules() []*Module {
	return []*Module{
		{
			ID:          1,
			Description: "Administracion",
			Permissions: []Permission{
				{ID: 10, Description: "Ver Usuarios", Route: "/admin/usuarios", VisibleInMenu: true},
			},
		},
		{
			ID:          2,
			Description: "Usuarios",
			ParentID:    uintPtr(1),
			Permissions: []Permission{
				{ID: 11, Description: "Agregar Usuario", Route: "/admin/usuarios/agregar"},
			},
		},
		{
			ID:          3,
			Description: "Productos",
			Permissions: []Permission{
				{ID: 12, Description: "Ver Productos", Route: "/productos", VisibleInMenu: true},
				{ID: 13, Description: "Exportar Productos", VisibleInMenu: true},
			},
		},
	}
}

func countNodes(modules []*Module) int {
	n := 0
	for _, mod := range modules {
		n += 1 + countNodes(mod.Children)
	}

	return n
}

func TestBuildHierarchy(t *testing.T) {
	roots := BuildHierarchy(testModules())

	require.Len(t, roots, 2)
	assert.Equal(t, uint(1), roots[0].ID)
	assert.Equal(t, uint(3), roots[1].ID)

	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, uint(2), roots[0].Children[0].ID)
	assert.Empty(t, roots[1].Children)

	// every input node appears exactly once
	assert.Equal(t, 3, countNodes(roots))
}

func TestBuildHierarchy_ParentAfterChild(t *testing.T) {
	modules := []*Module{
		{ID: 2, Description: "Usuarios", ParentID: uintPtr(1)},
		{ID: 1, Description: "Administracion"},
	}

	roots := BuildHierarchy(modules)

	require.Len(t, roots, 1)
	assert.Equal(t, uint(1), roots[0].ID)
	require.Len(t, roots[0].Children, 1)
	assert.Equal(t, uint(2), roots[0].Children[0].ID)
}

func TestBuildHierarchy_OrphanBecomesRoot(t *testing.T) {
	modules := []*Module{
		{ID: 5, Description: "Stock", ParentID: uintPtr(99)},
		{ID: 6, Description: "Ventas"},
	}

	roots := BuildHierarchy(modules)

	require.Len(t, roots, 2)
	assert.Equal(t, uint(5), roots[0].ID)
	assert.Equal(t, uint(6), roots[1].ID)
}

func TestBuildHierarchy_SiblingOrderPreserved(t *testing.T) {
	modules := []*Module{
		{ID: 1, Description: "Root"},
		{ID: 4, Description: "C", ParentID: uintPtr(1)},
		{ID: 2, Description: "A", ParentID: uintPtr(1)},
		{ID: 3, Description: "B", ParentID: uintPtr(1)},
	}

	roots := BuildHierarchy(modules)

	require.Len(t, roots, 1)
	require.Len(t, roots[0].Children, 3)
	assert.Equal(t, "C", roots[0].Children[0].Description)
	assert.Equal(t, "A", roots[0].Children[1].Description)
	assert.Equal(t, "B", roots[0].Children[2].Description)
}

func TestBuildHierarchy_DoesNotMutateInput(t *testing.T) {
	modules := testModules()
	_ = BuildHierarchy(modules)

	for _, mod := range modules {
		assert.Nil(t, mod.Children, "input modules must stay untouched")
	}
}

func TestFlattenPermissions(t *testing.T) {
	roots := BuildHierarchy(testModules())
	perms := FlattenPermissions(roots)

	require.Len(t, perms, 4)

	descriptions := make([]string, 0, len(perms))
	for _, p := range perms {
		descriptions = append(descriptions, p.Description)
	}

	// own permissions before children, siblings in input order
	assert.Equal(t, []string{
		"Ver Usuarios",
		"Agregar Usuario",
		"Ver Productos",
		"Exportar Productos",
	}, descriptions)
}

func TestFlattenPermissions_Empty(t *testing.T) {
	assert.Empty(t, FlattenPermissions(nil))
	assert.Empty(t, FlattenPermissions([]*Module{{ID: 1, Description: "Vacio"}}))
}

func TestHasPermission(t *testing.T) {
	roots := BuildHierarchy(testModules())

	// nested permission found at any depth
	assert.True(t, HasPermission(roots, "Agregar Usuario"))
	assert.True(t, HasPermission(roots, "Ver Productos"))

	// exact, case-sensitive match only
	assert.False(t, HasPermission(roots, "ver productos"))
	assert.False(t, HasPermission(roots, "Gestionar Stock"))

	// nil forest holds nothing
	assert.False(t, HasPermission(nil, "Ver Productos"))
}

func TestBuildMenu(t *testing.T) {
	roots := BuildHierarchy(testModules())
	menu := BuildMenu(roots)

	require.Len(t, menu, 2)
	assert.Equal(t, "Administracion", menu[0].Title)

	// "Agregar Usuario" is not menu-visible, and its "Usuarios" module
	// holds nothing else, so the whole sub-module is dropped
	assert.Empty(t, menu[0].Children)
	require.Len(t, menu[0].Items, 1)
	assert.Equal(t, "Ver Usuarios", menu[0].Items[0].Title)

	require.Len(t, menu[1].Items, 2)
	assert.True(t, menu[1].Items[0].Navigable)
	assert.Equal(t, "/productos", menu[1].Items[0].Route)

	// visible permission without route renders as inert text
	assert.False(t, menu[1].Items[1].Navigable)
	assert.Empty(t, menu[1].Items[1].Route)
}

func TestNewContext(t *testing.T) {
	ctx := NewContext("Usuarios", "admin", "usuarios")

	assert.Equal(t, "Usuarios", ctx.PageTitle)
	assert.Equal(t, "admin", ctx.ActiveSection)
	assert.Equal(t, "usuarios", ctx.ActivePage)
	assert.NotNil(t, ctx.Breadcrumbs)
	assert.Empty(t, ctx.Breadcrumbs)
}

func TestContext_AddBreadcrumb_Chaining(t *testing.T) {
	ctx := NewContext("Usuarios", "admin", "usuarios").
		AddBreadcrumb("Inicio", "/", false).
		AddBreadcrumb("Usuarios", "/admin/usuarios", true)

	require.Len(t, ctx.Breadcrumbs, 2)
	assert.Equal(t, "Inicio", ctx.Breadcrumbs[0].Title)
	assert.True(t, ctx.Breadcrumbs[1].Active)
}

func TestContext_IsActive(t *testing.T) {
	ctx := NewContext("Usuarios", "admin", "usuarios")

	assert.True(t, ctx.IsActive("admin", "usuarios"))
	assert.False(t, ctx.IsActive("admin", "perfiles"))
	assert.False(t, ctx.IsActive("stock", "usuarios"))
	assert.True(t, ctx.IsSectionActive("admin"))
	assert.False(t, ctx.IsSectionActive("stock"))
}
