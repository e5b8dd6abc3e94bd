package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Payment attempt outcomes. Rejected processor hosts never produce a row
// because no outbound call is made for them.
const (
	AttemptOutcomeSucceeded = "succeeded"
	AttemptOutcomeDeclined  = "declined"
	AttemptOutcomeError     = "error"
)

// PaymentAttempt records one outbound processor call for audit.
type PaymentAttempt struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID     uuid.UUID `gorm:"index"`
	OwnerID       uuid.UUID `gorm:"index"`
	ProcessorHost string
	StatusCode    int
	Outcome       string
	Details       datatypes.JSON
	CreatedAt     time.Time
}
