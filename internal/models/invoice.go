package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses this service reads and writes. The store may hold more;
// payment confirmation only ever moves unpaid to paid, never back.
const (
	InvoiceStatusUnpaid = "unpaid"
	InvoiceStatusPaid   = "paid"
)

type Invoice struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID   uuid.UUID `gorm:"type:uuid;index"`
	Amount    float64
	Status    string `gorm:"index"`
	DueDate   time.Time
	CreatedAt time.Time
}
