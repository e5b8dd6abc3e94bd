package repository

import (
	"errors"

	"invoice-access-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvoiceNotFound is returned when no invoice row matches a lookup.
var ErrInvoiceNotFound = errors.New("invoice row not found")

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// ListByOwner returns the owner's invoices, optionally narrowed by a status
// comparison. The operator selects the comparison fragment from the closed
// enumeration; the compared value travels as a bound parameter.
func (r *InvoiceRepository) ListByOwner(ownerID uuid.UUID, filter *StatusFilter) ([]models.Invoice, error) {
	var invoices []models.Invoice
	q := r.db.Where("owner_id = ?", ownerID)
	if filter != nil {
		q = q.Where(filter.Operator.sql(), filter.Value)
	}
	err := q.Find(&invoices).Error
	return invoices, err
}

// GetByID fetches a single invoice by ID alone.
func (r *InvoiceRepository) GetByID(id uuid.UUID) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// MarkPaid flips the invoice scoped by both id and owner to paid and reports
// how many rows the update touched. Zero rows means no such scoped invoice.
func (r *InvoiceRepository) MarkPaid(id, ownerID uuid.UUID) (int64, error) {
	res := r.db.Model(&models.Invoice{}).
		Where("id = ? AND owner_id = ?", id, ownerID).
		Update("status", models.InvoiceStatusPaid)
	return res.RowsAffected, res.Error
}
