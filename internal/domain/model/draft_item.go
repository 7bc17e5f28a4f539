package model

import "time"

type DraftItemStatus string

const (
	DraftItemStatusPending DraftItemStatus = "Pending"
	DraftItemStatusReady   DraftItemStatus = "Ready"
	DraftItemStatusServed  DraftItemStatus = "Served"
)

// DraftItem is one staged line in a draft session. Items sharing a
// draftCode are bulk-converted into a real order and then deleted.
type DraftItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	DraftCode string          `gorm:"type:varchar(100);not null;index" json:"draft_code"`
	VariantID int64           `gorm:"not null;index" json:"variant_id"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	Status    DraftItemStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Tables    []Table         `gorm:"many2many:draft_item_tables" json:"tables"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
