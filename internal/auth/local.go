package auth

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/GoRetail-Admin/GoRetail-Admin/internal/db/models"
)

// LocalProvider handles database authentication and user account management.
type LocalProvider struct {
	db *gorm.DB
}

const whereID = "id = ?"

// NewLocalProvider creates a new local authentication provider.
func NewLocalProvider(db *gorm.DB) *LocalProvider {
	return &LocalProvider{
		db: db,
	}
}

// Authenticate authenticates a user by email and password.
func (p *LocalProvider) Authenticate(email, password string) (*models.User, error) {
	var user models.User

	err := p.db.Where("email = ?", email).First(&user).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	if !user.Active {
		return nil, ErrUserAccountDisabled
	}

	if !user.VerifyPassword(password) {
		return nil, ErrInvalidPassword
	}

	return &user, nil
}

// CreateUser creates a new user account.
func (p *LocalProvider) CreateUser(
	email, password, firstName, lastName string,
	profileID uint,
) (*models.User, error) {
	var existingUser models.User

	err := p.db.Where("email = ?", email).First(&existingUser).Error
	if err == nil {
		return nil, ErrEmailExists
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	user := models.User{
		Active:    true,
		Email:     email,
		Password:  models.HashPassword(password),
		FirstName: firstName,
		LastName:  lastName,
		ProfileID: profileID,
	}

	if err := p.db.Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// UpdateUser updates an existing user account.
func (p *LocalProvider) UpdateUser(userID uint64, email, firstName, lastName string, profileID uint) error {
	updates := map[string]interface{}{
		"email":      email,
		"first_name": firstName,
		"last_name":  lastName,
		"profile_id": profileID,
		"updated_at": time.Now(),
	}

	return p.db.Model(&models.User{}).
		Where(whereID, userID).
		Updates(updates).Error
}

// ChangePassword changes a user's password after verifying the old one.
func (p *LocalProvider) ChangePassword(userID uint64, oldPassword, newPassword string) error {
	var user models.User
	if err := p.db.Where(whereID, userID).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	if !user.VerifyPassword(oldPassword) {
		return ErrInvalidOldPassword
	}

	return p.db.Model(&models.User{}).
		Where(whereID, userID).
		Update("password", models.HashPassword(newPassword)).Error
}

// ResetPassword resets a user's password (admin function).
func (p *LocalProvider) ResetPassword(userID uint64, newPassword string) error {
	return p.db.Model(&models.User{}).
		Where(whereID, userID).
		Update("password", models.HashPassword(newPassword)).Error
}

// ActivateUser activates a user account.
func (p *LocalProvider) ActivateUser(userID uint64) error {
	return p.db.Model(&models.User{}).
		Where(whereID, userID).
		Update("active", true).Error
}

// DeactivateUser deactivates a user account.
func (p *LocalProvider) DeactivateUser(userID uint64) error {
	return p.db.Model(&models.User{}).
		Where(whereID, userID).
		Update("active", false).Error
}

// DeleteUser soft deletes a user.
func (p *LocalProvider) DeleteUser(userID uint64) error {
	return p.db.Delete(&models.User{}, userID).Error
}

// GetUserByID retrieves a user by ID.
func (p *LocalProvider) GetUserByID(userID uint64) (*models.User, error) {
	var user models.User
	if err := p.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	return &user, nil
}

// ListUsers lists all users with an optional active filter.
func (p *LocalProvider) ListUsers(active *bool, limit, offset int) ([]models.User, int64, error) {
	var users []models.User

	var total int64

	query := p.db.Model(&models.User{})

	if active != nil {
		query = query.Where("active = ?", *active)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query.Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, total, nil
}
