package models

import "time"

// Permission represents a single grantable capability, optionally bound to
// a navigable page route of the SPA. The description is the access-control
// key used throughout the console; it must match exactly (case-sensitive)
// between the data issued at login and every call site that checks it.
type Permission struct {
	// ID is the unique identifier for the permission.
	ID uint `gorm:"primaryKey"`
	// ModuleID is the ID of the owning module.
	ModuleID uint `gorm:"column:module_id;not null"`
	// Description is the unique capability name (e.g. "Ver Usuarios").
	Description string `gorm:"unique;size:100;not null"`
	// Route is the navigable page path; empty for permissions without a
	// dedicated page.
	Route string `gorm:"size:255"`
	// VisibleInMenu indicates whether the sidebar lists this permission.
	VisibleInMenu bool `gorm:"not null;default:false"`
	// Position is the declared order within the owning module.
	Position int `gorm:"not null;default:0"`
	// CreatedAt is the timestamp when the permission was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the permission was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Permission model.
// This overrides GORM's default pluralized table naming.
func (Permission) TableName() string {
	return "permissions"
}
