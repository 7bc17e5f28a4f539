package model

import (
	"time"

	"gorm.io/gorm"
)

type TableStatus string

const (
	TableStatusAvailable TableStatus = "Available"
	TableStatusOccupied  TableStatus = "Occupied"
	TableStatusReserved  TableStatus = "Reserved"
	TableStatusCleaning  TableStatus = "Cleaning"
	TableStatusDisabled  TableStatus = "Disabled"
)

type Table struct {
	ID        int64          `gorm:"primaryKey;autoIncrement" json:"id"`
	Code      string         `gorm:"type:varchar(50);not null;uniqueIndex" json:"code"`
	Capacity  int            `gorm:"not null;default:2" json:"capacity"`
	Status    TableStatus    `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
