package auth

// Permission constants define the capabilities known to the console.
// The backend issues these exact descriptions inside the user's module
// tree; access-control decisions compare against them case-sensitively,
// so call sites must use the constants, never re-typed literals.
const (
	// PermDashboardView allows viewing the main dashboard.
	PermDashboardView = "Ver Dashboard"

	// PermUsersView allows listing and viewing user accounts.
	PermUsersView = "Ver Usuarios"
	// PermUserAdd allows creating new user accounts.
	PermUserAdd = "Agregar Usuario"
	// PermProfilesView allows managing permission profiles.
	PermProfilesView = "Ver Perfiles"
	// PermModulesManage allows renaming and organizing console modules.
	PermModulesManage = "Gestionar Modulos"

	// PermProductsView allows browsing the product catalog.
	PermProductsView = "Ver Productos"
	// PermCategoriesManage allows managing product categories.
	PermCategoriesManage = "Gestionar Categorias"

	// PermStockManage allows managing stock quantities.
	PermStockManage = "Gestionar Stock"
	// PermQuickOrder allows building the missing-stock quick order cart.
	PermQuickOrder = "Pedido Rapido"

	// PermSalesView allows viewing sales and orders.
	PermSalesView = "Ver Ventas"
	// PermClientsView allows managing clients.
	PermClientsView = "Ver Clientes"
)
