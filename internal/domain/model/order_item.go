package model

import "time"

// OrderItem is an immutable snapshot of one purchased line. Display fields
// are frozen at creation time; the variant reference exists only so stock
// can be adjusted on cancellation.
type OrderItem struct {
	ID      int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID int64 `gorm:"not null;index" json:"order_id"`

	ProductID *int64 `gorm:"index" json:"product_id"`
	VariantID *int64 `gorm:"index" json:"variant_id"`

	ProductName  string `gorm:"type:varchar(255);not null" json:"product_name"`
	VariantValue string `gorm:"type:varchar(255);not null;default:''" json:"variant_value"`
	Thumbnail    string `gorm:"type:text" json:"thumbnail"`

	Quantity int64 `gorm:"not null" json:"quantity"`
	Price    int64 `gorm:"not null" json:"price"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
