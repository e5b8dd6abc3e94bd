package repository

import (
	"invoice-access-backend/internal/models"

	"gorm.io/gorm"
)

type PaymentAttemptRepository struct {
	db *gorm.DB
}

func NewPaymentAttemptRepository(db *gorm.DB) *PaymentAttemptRepository {
	return &PaymentAttemptRepository{db: db}
}

// Create inserts one audit row for an outbound processor call.
func (r *PaymentAttemptRepository) Create(attempt *models.PaymentAttempt) error {
	return r.db.Create(attempt).Error
}
