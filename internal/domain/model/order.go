package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderChannel string

const (
	OrderChannelOnline   OrderChannel = "Online"
	OrderChannelTakeaway OrderChannel = "Takeaway"
	OrderChannelDelivery OrderChannel = "Delivery"
	OrderChannelDineIn   OrderChannel = "DineIn"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusConfirmed OrderStatus = "Confirmed"
	OrderStatusPreparing OrderStatus = "Preparing"
	OrderStatusReady     OrderStatus = "Ready"
	OrderStatusServed    OrderStatus = "Served"
	OrderStatusCompleted OrderStatus = "Completed"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Completed and Cancelled are terminal.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "Cash"
	PaymentMethodMOMO  PaymentMethod = "MOMO"
	PaymentMethodVNPay PaymentMethod = "VNPay"
	PaymentMethodCOD   PaymentMethod = "COD"
)

// IsAsync reports whether the method settles through a gateway callback.
func (m PaymentMethod) IsAsync() bool {
	return m == PaymentMethodMOMO || m == PaymentMethodVNPay
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusSucceeded PaymentStatus = "Succeeded"
	PaymentStatusFailed    PaymentStatus = "Failed"
	PaymentStatusRefunded  PaymentStatus = "Refunded"
)

// Payment is embedded in Order, one payment per order.
type Payment struct {
	Method        PaymentMethod `gorm:"type:varchar(20);not null" json:"method"`
	Status        PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	TransactionID string        `gorm:"type:varchar(255);not null;default:''" json:"transaction_id"`
	PaidAt        *time.Time    `json:"paid_at"`
}

// Order is the transactional root. Amounts are VND, no fractional unit.
type Order struct {
	ID      int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Channel OrderChannel `gorm:"type:varchar(20);not null;index" json:"channel"`

	// Placing customer; nil for guest takeaway/dine-in.
	UserID *int64 `gorm:"index" json:"user_id"`

	// Staff member who created or last touched the order.
	HandlerID *int64 `gorm:"index" json:"handler_id"`

	// Display name when no account exists.
	CustomerName string `gorm:"type:varchar(255);not null;default:''" json:"customer_name"`

	DeliveryAddressID *int64  `json:"delivery_address_id"`
	ReservationID     *int64  `json:"reservation_id"`
	CouponID          *int64  `json:"coupon_id"`
	Tables            []Table `gorm:"many2many:order_tables" json:"tables"`

	// Staging session the order was finalized from, kept for audit.
	DraftCode string `gorm:"type:varchar(100);not null;default:'';index" json:"draft_code"`

	TotalAmount    int64 `gorm:"not null" json:"total_amount"`
	FeeAmount      int64 `gorm:"not null" json:"fee_amount"`
	DiscountAmount int64 `gorm:"not null" json:"discount_amount"`
	FinalAmount    int64 `gorm:"not null" json:"final_amount"`

	Payment Payment     `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	Status  OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	Note    string      `gorm:"type:text" json:"note"`

	CreatedAt time.Time      `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
