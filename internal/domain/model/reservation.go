package model

import (
	"time"

	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusArrived   ReservationStatus = "Arrived"
	ReservationStatusCompleted ReservationStatus = "Completed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

// Reservation supplies the guest identity when a dine-in order closes it
// out. Reservation management itself lives outside this service.
type Reservation struct {
	ID         int64             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *int64            `gorm:"index" json:"user_id"`
	GuestName  string            `gorm:"type:varchar(255);not null" json:"guest_name"`
	GuestPhone string            `gorm:"type:varchar(30);not null;default:''" json:"guest_phone"`
	Status     ReservationStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	CreatedAt  time.Time         `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time         `gorm:"not null;autoUpdateTime" json:"updated_at"`
	DeletedAt  gorm.DeletedAt    `gorm:"index" json:"-"`
}
