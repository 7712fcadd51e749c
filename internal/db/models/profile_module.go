package models

// ProfileModule represents the many-to-many relationship between profiles and modules.
// This junction table maps which modules are granted by which profiles.
// When a profile is deleted, its module assignments are automatically removed (CASCADE).
type ProfileModule struct {
	// ProfileID is the ID of the profile in this mapping.
	ProfileID uint `gorm:"primaryKey;column:profile_id"`
	// ModuleID is the ID of the module in this mapping.
	ModuleID uint `gorm:"primaryKey;column:module_id"`
	// Profile is the associated profile (loaded via foreign key).
	Profile Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	// Module is the associated module (loaded via foreign key).
	Module Module `gorm:"foreignKey:ModuleID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for the ProfileModule model.
// This overrides GORM's default pluralized table naming.
func (ProfileModule) TableName() string {
	return "profile_modules"
}
