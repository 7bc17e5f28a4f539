package model

import "time"

// Address is a delivery destination. Staff-created delivery orders attach
// addresses owned by the base system user.
type Address struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID         int64     `gorm:"not null;index" json:"user_id"`
	RecipientName  string    `gorm:"type:varchar(255);not null" json:"recipient_name"`
	RecipientPhone string    `gorm:"type:varchar(30);not null" json:"recipient_phone"`
	ProvinceID     int64     `gorm:"not null" json:"province_id"`
	DistrictID     int64     `gorm:"not null" json:"district_id"`
	WardID         int64     `gorm:"not null" json:"ward_id"`
	DetailAddress  string    `gorm:"type:varchar(500);not null" json:"detail_address"`
	DeliveryNote   string    `gorm:"type:text" json:"delivery_note"`
	CreatedAt      time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
