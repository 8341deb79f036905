package models

import "time"

// The role set is fixed; nothing creates roles outside the seeder.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

type Role struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;uniqueIndex" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
