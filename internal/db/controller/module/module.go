// Package module provides CRUD operations for managing console modules.
package module

import (
	"errors"

	"gorm.io/gorm"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
)

var (
	// ErrModuleNotFound is returned when a module is not found.
	ErrModuleNotFound = errors.New("module not found")
	// ErrDescriptionEmpty is returned when attempting to create or rename a module with an empty description.
	ErrDescriptionEmpty = errors.New("module description cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// GetByID retrieves a module by its ID, permissions included.
func GetByID(db *gorm.DB, id uint) (*models.Module, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var mod models.Module
	result := db.Preload("Permissions", orderByPosition).First(&mod, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, result.Error
	}

	return &mod, nil
}

// GetAll retrieves all modules in declared order, permissions included.
func GetAll(db *gorm.DB) ([]models.Module, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var modules []models.Module
	result := db.Preload("Permissions", orderByPosition).
		Order("position, id").
		Find(&modules)
	if result.Error != nil {
		return nil, result.Error
	}

	return modules, nil
}

// Create creates a new module in the database.
func Create(db *gorm.DB, mod *models.Module) error {
	if db == nil {
		return ErrDBNil
	}
	if mod.Description == "" {
		return ErrDescriptionEmpty
	}

	result := db.Create(mod)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Rename updates only the description of an existing module.
// The module tree shape and its permissions are not touched.
func Rename(db *gorm.DB, id uint, description string) (*models.Module, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if description == "" {
		return nil, ErrDescriptionEmpty
	}

	var mod models.Module
	result := db.First(&mod, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrModuleNotFound
		}
		return nil, result.Error
	}

	mod.Description = description
	result = db.Save(&mod)
	if result.Error != nil {
		return nil, result.Error
	}

	return &mod, nil
}

// Delete deletes a module by ID. Permissions cascade with the module.
func Delete(db *gorm.DB, id uint) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Module{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrModuleNotFound
	}

	return nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position, id")
}
