package model

import (
	"time"

	"gorm.io/gorm"
)

// Variant is the sellable inventory unit. Stock is mutated only through
// the conditional decrement / increment repository operations.
type Variant struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID int64          `gorm:"not null;index" json:"product_id"`
	Value     string         `gorm:"type:varchar(255);not null" json:"value"`
	Price     int64          `gorm:"not null" json:"price"`
	Stock     int64          `gorm:"not null;default:0" json:"stock"`
	Thumbnail string         `gorm:"type:text" json:"thumbnail"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
