package models

import (
	"time"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog/log"
)

// User represents an account of the admin console.
// Users authenticate with email and password and receive their module and
// permission tree through the profile assigned to them.
type User struct {
	// ID is the unique identifier for the user.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Active indicates whether the user account is active and can log in.
	Active bool `json:"active"`
	// Email is the unique address used for login.
	Email string `gorm:"unique;size:255;not null" json:"email"`
	// Password is the Argon2id hashed password. Never serialized.
	Password string `gorm:"size:255" json:"-"`
	// FirstName is the user's first or given name.
	FirstName string `gorm:"size:100" json:"first_name"`
	// LastName is the user's last or family name.
	LastName string `gorm:"size:100" json:"last_name"`
	// ProfileID is the ID of the permission profile assigned to this user.
	ProfileID uint `gorm:"column:profile_id;not null" json:"profile_id"`
	// Profile is the associated profile (enforced with a foreign key constraint).
	Profile Profile `gorm:"foreignKey:ProfileID;references:ID;constraint:OnDelete:RESTRICT,OnUpdate:CASCADE" json:"-"`
	// CreatedAt is the timestamp when the user was created (managed by GORM).
	CreatedAt time.Time `json:"-"`
	// UpdatedAt is the timestamp when the user was last updated (managed by GORM).
	UpdatedAt time.Time `json:"-"`
	// DeletedAt is the soft delete timestamp (nil if not deleted, managed by GORM).
	DeletedAt *time.Time `json:"-"`
}

// HashPassword hashes a plaintext password using the Argon2id algorithm.
// This function should be used when creating or updating user passwords.
func HashPassword(password string) string {
	hashedPassword, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		log.Fatal().Msgf("failed to hash password: %v", err)
	}

	return hashedPassword
}

// VerifyPassword verifies a plaintext password against the user's stored hashed password.
// It uses constant-time comparison to prevent timing attacks.
// Returns true if the password matches, false otherwise.
func (u *User) VerifyPassword(password string) bool {
	match, err := argon2id.ComparePasswordAndHash(password, u.Password)
	if err != nil {
		log.Error().Msgf("failed to verify password: %v", err)
		return false
	}

	return match
}
