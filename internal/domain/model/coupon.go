package model

import (
	"time"

	"gorm.io/gorm"
)

type CouponDiscountType string

const (
	CouponDiscountPercent CouponDiscountType = "Percent"
	CouponDiscountAmount  CouponDiscountType = "Amount"
)

type Coupon struct {
	ID            int64              `gorm:"primaryKey;autoIncrement" json:"id"`
	Code          string             `gorm:"type:varchar(100);not null;uniqueIndex" json:"code"`
	DiscountType  CouponDiscountType `gorm:"type:varchar(20);not null" json:"discount_type"`
	DiscountValue int64              `gorm:"not null" json:"discount_value"`

	// Times the coupon has been applied. No exhaustion check is enforced.
	UsageCount int64 `gorm:"not null;default:0" json:"usage_count"`

	IsActive  bool       `gorm:"not null;default:true" json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
