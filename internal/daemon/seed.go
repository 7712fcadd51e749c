package daemon

import (
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/auth"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/config"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
)

// seed creates the default module tree, the administrator profile and the
// initial admin account. It only runs against an empty database.
func seed(_ *config.Config, db *gorm.DB) {
	var count int64

	db.Model(&models.Module{}).Count(&count)
	if count == 0 {
		seedModules(db)
	}

	db.Model(&models.User{}).Count(&count)
	if count == 0 {
		seedAdmin(db)
	}
}

// seedModules creates the console's module tree. Permissions with a route
// are navigable pages; the rest are pure capabilities.
func seedModules(db *gorm.DB) {
	modules := []models.Module{
		{
			Description: "Dashboard",
			Position:    1,
			Permissions: []models.Permission{
				{Description: auth.PermDashboardView, Route: "/admin/dashboard", VisibleInMenu: true, Position: 1},
			},
		},
		{
			Description: "Administracion",
			Position:    2,
			Permissions: []models.Permission{
				{Description: auth.PermUsersView, Route: "/admin/usuarios", VisibleInMenu: true, Position: 1},
				{Description: auth.PermUserAdd, Route: "/admin/usuarios/agregar", VisibleInMenu: false, Position: 2},
				{Description: auth.PermProfilesView, Route: "/admin/perfiles", VisibleInMenu: true, Position: 3},
				{Description: auth.PermModulesManage, Route: "/admin/modulos", VisibleInMenu: true, Position: 4},
			},
		},
		{
			Description: "Inventario",
			Position:    3,
			Permissions: []models.Permission{
				{Description: auth.PermProductsView, Route: "/inventario/productos", VisibleInMenu: true, Position: 1},
				{Description: auth.PermCategoriesManage, Route: "/inventario/categorias", VisibleInMenu: true, Position: 2},
			},
		},
		{
			Description: "Ventas",
			Position:    4,
			Permissions: []models.Permission{
				{Description: auth.PermSalesView, Route: "/ventas", VisibleInMenu: true, Position: 1},
				{Description: auth.PermClientsView, Route: "/ventas/clientes", VisibleInMenu: true, Position: 2},
			},
		},
	}

	for i := range modules {
		if err := db.Create(&modules[i]).Error; err != nil {
			log.Fatal().Err(err).Str("module", modules[i].Description).Msg("failed to seed module")
		}
	}

	// Stock lives under Inventario
	inventoryID := modules[2].ID

	stock := models.Module{
		Description: "Stock",
		ParentID:    &inventoryID,
		Position:    1,
		Permissions: []models.Permission{
			{Description: auth.PermStockManage, Route: "/inventario/stock", VisibleInMenu: true, Position: 1},
			{Description: auth.PermQuickOrder, Route: "/inventario/pedido-rapido", VisibleInMenu: true, Position: 2},
		},
	}

	if err := db.Create(&stock).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed stock module")
	}
}

// seedAdmin creates the system administrator profile, grants it every
// module and adds the initial login.
func seedAdmin(db *gorm.DB) {
	var modules []models.Module

	if err := db.Find(&modules).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to load modules for admin profile")
	}

	profile := models.Profile{
		Description: "Administrador",
		IsSystem:    true,
		Modules:     modules,
	}

	if err := db.Create(&profile).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin profile")
	}

	admin := models.User{
		Active:    true,
		Email:     "admin@localhost",
		Password:  models.HashPassword("changeme"),
		FirstName: "Admin",
		ProfileID: profile.ID,
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Fatal().Err(err).Msg("failed to seed admin user")
	}

	log.Info().Str("email", admin.Email).Msg("seeded default admin user, change the password")
}
