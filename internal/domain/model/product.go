package model

import (
	"time"

	"gorm.io/gorm"
)

// Product is the catalog root. Catalog CRUD lives outside this service;
// the rows exist here for order-item back-references and migrations.
type Product struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string         `gorm:"type:varchar(255);not null" json:"name"`
	BasePrice int64          `gorm:"not null" json:"base_price"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
