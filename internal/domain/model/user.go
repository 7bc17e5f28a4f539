package model

import "time"

// User is consumed read-only here except for the lazily provisioned base
// account that owns guest delivery addresses.
type User struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Name         string    `gorm:"type:varchar(255);not null" json:"name"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
