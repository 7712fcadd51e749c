// Package pages maps permission names to the console pages they unlock.
//
// Each page handler answers a navigable route resolved by the dynamic
// dispatcher and returns a JSON page descriptor: its name, a breadcrumb
// context and any data the page needs on first render. The single-page
// client owns the actual rendering.
package pages

import (
	"github.com/gofiber/fiber/v2"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/navigation"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/routes"
)

// HomePath is the route of the fallback page.
const HomePath = "/"

// descriptor is the JSON shape every page responds with.
type descriptor struct {
	Page       string              `json:"page"`
	Navigation *navigation.Context `json:"navigation"`
}

func render(c *fiber.Ctx, name string, nav *navigation.Context) error {
	return c.JSON(descriptor{
		Page:       name,
		Navigation: nav,
	})
}

// Home is the default landing page, served when a request path maps to no
// granted permission.
var Home = routes.Page{
	Name: "home",
	Handler: func(c *fiber.Ctx) error {
		return render(c, "home",
			navigation.NewContext("Inicio", "", ""))
	},
}

// Registry binds every known permission to its page. Permissions without a
// route in the database never reach these handlers.
func Registry() routes.Registry {
	return routes.Registry{
		auth.PermDashboardView: {
			Name: "dashboard",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "dashboard",
					navigation.NewContext("Dashboard", "dashboard", "overview").
						AddBreadcrumb("Dashboard", "/admin/dashboard", true))
			},
		},
		auth.PermUsersView: {
			Name: "users",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "users",
					navigation.NewContext("Usuarios", "admin", "users").
						AddBreadcrumb("Administracion", "", false).
						AddBreadcrumb("Usuarios", "/admin/usuarios", true))
			},
		},
		auth.PermUserAdd: {
			Name: "user-add",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "user-add",
					navigation.NewContext("Agregar Usuario", "admin", "user-add").
						AddBreadcrumb("Administracion", "", false).
						AddBreadcrumb("Usuarios", "/admin/usuarios", false).
						AddBreadcrumb("Agregar", "/admin/usuarios/agregar", true))
			},
		},
		auth.PermProfilesView: {
			Name: "profiles",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "profiles",
					navigation.NewContext("Perfiles", "admin", "profiles").
						AddBreadcrumb("Administracion", "", false).
						AddBreadcrumb("Perfiles", "/admin/perfiles", true))
			},
		},
		auth.PermModulesManage: {
			Name: "modules",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "modules",
					navigation.NewContext("Modulos", "admin", "modules").
						AddBreadcrumb("Administracion", "", false).
						AddBreadcrumb("Modulos", "/admin/modulos", true))
			},
		},
		auth.PermProductsView: {
			Name: "products",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "products",
					navigation.NewContext("Productos", "inventory", "products").
						AddBreadcrumb("Inventario", "", false).
						AddBreadcrumb("Productos", "/inventario/productos", true))
			},
		},
		auth.PermCategoriesManage: {
			Name: "categories",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "categories",
					navigation.NewContext("Categorias", "inventory", "categories").
						AddBreadcrumb("Inventario", "", false).
						AddBreadcrumb("Categorias", "/inventario/categorias", true))
			},
		},
		auth.PermStockManage: {
			Name: "stock",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "stock",
					navigation.NewContext("Stock", "inventory", "stock").
						AddBreadcrumb("Inventario", "", false).
						AddBreadcrumb("Stock", "/inventario/stock", true))
			},
		},
		auth.PermQuickOrder: {
			Name: "quick-order",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "quick-order",
					navigation.NewContext("Pedido Rapido", "inventory", "quick-order").
						AddBreadcrumb("Inventario", "", false).
						AddBreadcrumb("Pedido Rapido", "/inventario/pedido-rapido", true))
			},
		},
		auth.PermSalesView: {
			Name: "sales",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "sales",
					navigation.NewContext("Ventas", "sales", "overview").
						AddBreadcrumb("Ventas", "/ventas", true))
			},
		},
		auth.PermClientsView: {
			Name: "clients",
			Handler: func(c *fiber.Ctx) error {
				return render(c, "clients",
					navigation.NewContext("Clientes", "sales", "clients").
						AddBreadcrumb("Ventas", "", false).
						AddBreadcrumb("Clientes", "/ventas/clientes", true))
			},
		},
	}
}

// UserEdit answers the parametrized user edit route, which is registered
// statically because its path carries an id segment.
var UserEdit = routes.Page{
	Name: "user-edit",
	Handler: func(c *fiber.Ctx) error {
		return render(c, "user-edit",
			navigation.NewContext("Editar Usuario", "admin", "users").
				AddBreadcrumb("Administracion", "", false).
				AddBreadcrumb("Usuarios", "/admin/usuarios", false).
				AddBreadcrumb("Editar", c.Path(), true))
	},
}
