package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"size:150;uniqueIndex" json:"username"`
	Email        string    `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"size:255" json:"-"` // store hashed password, never return in JSON
	RoleID       uint      `gorm:"index" json:"role_id"`
	Role         Role      `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewUser hashes the password and binds the user to exactly one role.
func NewUser(username, email, password string, role Role) (User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}
	return User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       role.ID,
		Role:         role,
	}, nil
}
