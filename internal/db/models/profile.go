package models

import "time"

// Profile represents a permission profile ("perfil") assigned to users.
// A profile groups the modules, and through them the permissions, a user
// receives on login. Examples include "Administrador" and "Vendedor".
type Profile struct {
	// ID is the unique identifier for the profile.
	ID uint `gorm:"primaryKey"`
	// Description is the unique display name of the profile.
	Description string `gorm:"unique;size:100;not null"`
	// IsSystem indicates if this is a system profile that cannot be deleted.
	IsSystem bool `gorm:"default:false"`
	// Modules are the modules granted by this profile.
	Modules []Module `gorm:"many2many:profile_modules;"`
	// CreatedAt is the timestamp when the profile was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the profile was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Profile model.
// This overrides GORM's default pluralized table naming.
func (Profile) TableName() string {
	return "profiles"
}
