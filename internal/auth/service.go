package auth

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/navigation"
	"github.com/GoRetail-Admin/GoRetail-Admin/internal/web/session"
)

// Service provides authentication and authorization functionality.
type Service struct {
	db *gorm.DB
}

// NewService creates a new auth service.
func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// GetUserModules loads the flat, ordered module list granted to a user
// through their profile, permissions included. This runs once per login;
// afterwards the session data is the only source of authorization truth.
func (s *Service) GetUserModules(userID uint64) ([]*navigation.Module, error) {
	var modules []models.Module

	err := s.db.
		Joins("JOIN profile_modules ON profile_modules.module_id = modules.id").
		Joins("JOIN users ON users.profile_id = profile_modules.profile_id").
		Where("users.id = ?", userID).
		Preload("Permissions", func(db *gorm.DB) *gorm.DB {
			return db.Order("position, id")
		}).
		Order("modules.position, modules.id").
		Find(&modules).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load user modules: %w", err)
	}

	return toNavigation(modules), nil
}

// GetUserModuleTree loads the user's modules and builds the rooted forest
// issued inside the login response.
func (s *Service) GetUserModuleTree(userID uint64) ([]*navigation.Module, error) {
	modules, err := s.GetUserModules(userID)
	if err != nil {
		return nil, err
	}

	return navigation.BuildHierarchy(modules), nil
}

// HasPermission checks whether the session holds a permission with the
// exact description anywhere in its module tree. It returns false, never
// an error, when the session is nil, empty or malformed; permission
// faults always recover to deny.
func HasPermission(sessData *session.Data, description string) bool {
	if sessData == nil {
		return false
	}

	return navigation.HasPermission(sessData.Modules, description)
}

// HasAnyPermission checks whether the session holds at least one of the
// given permissions.
func HasAnyPermission(sessData *session.Data, permissions ...string) bool {
	for _, perm := range permissions {
		if HasPermission(sessData, perm) {
			return true
		}
	}

	return false
}

// HasAllPermissions checks whether the session holds all of the given
// permissions.
func HasAllPermissions(sessData *session.Data, permissions ...string) bool {
	for _, perm := range permissions {
		if !HasPermission(sessData, perm) {
			return false
		}
	}

	return true
}

// GetSessionPermissions returns the flat list of all permissions held by
// the session, in flatten order. It doubles as the input for route table
// derivation, so both views stay consistent.
func GetSessionPermissions(sessData *session.Data) []navigation.Permission {
	if sessData == nil {
		return nil
	}

	return navigation.FlattenPermissions(sessData.Modules)
}

func toNavigation(modules []models.Module) []*navigation.Module {
	out := make([]*navigation.Module, 0, len(modules))

	for i := range modules {
		mod := &modules[i]

		perms := make([]navigation.Permission, 0, len(mod.Permissions))
		for _, p := range mod.Permissions {
			perms = append(perms, navigation.Permission{
				ID:            p.ID,
				Description:   p.Description,
				Route:         p.Route,
				VisibleInMenu: p.VisibleInMenu,
			})
		}

		out = append(out, &navigation.Module{
			ID:          mod.ID,
			Description: mod.Description,
			ParentID:    mod.ParentID,
			Permissions: perms,
		})
	}

	return out
}
