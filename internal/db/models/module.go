// Package models contains database model definitions.
package models

import "time"

// Module represents a navigable or organizational grouping in the admin
// console. Modules form a forest via the nullable ParentID self-reference
// and carry the permissions of the pages grouped under them.
type Module struct {
	// ID is the unique identifier for the module.
	ID uint `gorm:"primaryKey"`
	// Description is the display name shown in the navigation menu.
	Description string `gorm:"size:100;not null"`
	// ParentID references the parent module; nil means the module is a root.
	ParentID *uint `gorm:"column:parent_id"`
	// Position is the declared order among siblings.
	Position int `gorm:"not null;default:0"`
	// Permissions are the capabilities grouped under this module,
	// in declared order.
	Permissions []Permission `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
	// CreatedAt is the timestamp when the module was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the module was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Module model.
// This overrides GORM's default pluralized table naming.
func (Module) TableName() string {
	return "modules"
}
