package invoices

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"invoice-access-backend/internal/gateway"
	"invoice-access-backend/internal/models"
	"invoice-access-backend/internal/repository"

	"github.com/google/uuid"
)

// InvoiceStore is the slice of the record store this service depends on.
// Every predicate behind it is parameterized; see internal/repository.
type InvoiceStore interface {
	ListByOwner(ownerID uuid.UUID, filter *repository.StatusFilter) ([]models.Invoice, error)
	GetByID(id uuid.UUID) (*models.Invoice, error)
	MarkPaid(id, ownerID uuid.UUID) (int64, error)
}

// AttemptRecorder persists one audit row per outbound processor call.
type AttemptRecorder interface {
	Create(attempt *models.PaymentAttempt) error
}

// ProcessorClient is the outbound payment transport. The allow-list decision
// lives in this service, never in the client.
type ProcessorClient interface {
	Charge(host string, card gateway.Card) (*gateway.Response, error)
}

// allowedProcessors is the fixed set of contactable processor hosts. Anything
// else is rejected before a request is even constructed.
var allowedProcessors = map[string]struct{}{
	"payment.visa.com":       {},
	"payment.mastercard.com": {},
	"payment.amex.com":       {},
}

// receiptNamePattern admits only names built from the safe character set, so
// path separators and traversal sequences are rejected at the character level.
var receiptNamePattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

type InvoiceService struct {
	store      InvoiceStore
	attempts   AttemptRecorder
	processor  ProcessorClient
	receiptDir string
}

// NewInvoiceService wires the service. receiptDir must already be absolute
// and symlink-resolved (config.Load does this); it is the fixed storage root
// all receipt lookups are confined to.
func NewInvoiceService(store InvoiceStore, attempts AttemptRecorder, processor ProcessorClient, receiptDir string) *InvoiceService {
	return &InvoiceService{
		store:      store,
		attempts:   attempts,
		processor:  processor,
		receiptDir: receiptDir,
	}
}

// List returns the owner's invoices. A non-empty statusValue narrows the
// result with the given comparison operator (equality when empty); operators
// outside the fixed set fail before any query is issued.
func (s *InvoiceService) List(ownerID uuid.UUID, statusValue, operator string) ([]models.Invoice, error) {
	var filter *repository.StatusFilter
	if statusValue != "" {
		op, ok := repository.ParseCompareOp(operator)
		if !ok {
			return nil, ErrInvalidFilter
		}
		filter = &repository.StatusFilter{Operator: op, Value: statusValue}
	}
	return s.store.ListByOwner(ownerID, filter)
}

// Get fetches a single invoice by id alone. Owner scoping at this boundary is
// the HTTP layer's call; see DESIGN.md.
func (s *InvoiceService) Get(invoiceID uuid.UUID) (*models.Invoice, error) {
	invoice, err := s.store.GetByID(invoiceID)
	if errors.Is(err, repository.ErrInvoiceNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return invoice, nil
}

// ConfirmPayment charges the invoice through the named processor and, on
// success, marks the owner's invoice paid. The host must be on the fixed
// allow-list; nothing is sent anywhere otherwise.
func (s *InvoiceService) ConfirmPayment(ownerID, invoiceID uuid.UUID, processorHost string, card gateway.Card) error {
	if _, ok := allowedProcessors[processorHost]; !ok {
		return ErrUnsupportedProcessor
	}

	resp, err := s.processor.Charge(processorHost, card)
	if err != nil {
		log.Printf("payment call to %s failed for invoice %s: %v", processorHost, invoiceID, err)
		s.recordAttempt(invoiceID, ownerID, processorHost, 0, models.AttemptOutcomeError, map[string]any{
			"transport_error": true,
		})
		return ErrPaymentFailed
	}
	if resp.StatusCode != http.StatusOK {
		s.recordAttempt(invoiceID, ownerID, processorHost, resp.StatusCode, models.AttemptOutcomeDeclined, nil)
		return ErrPaymentFailed
	}

	s.recordAttempt(invoiceID, ownerID, processorHost, resp.StatusCode, models.AttemptOutcomeSucceeded, nil)

	rows, err := s.store.MarkPaid(invoiceID, ownerID)
	if err != nil {
		return err
	}
	if rows == 0 {
		// The processor charged but no invoice matched id+owner; surface it
		// rather than pretending the update happened.
		return ErrNotFound
	}
	return nil
}

// GetReceipt returns the raw bytes of a previously generated receipt PDF.
// The requested name is validated and confined to the storage root; every
// failure, validation or I/O, surfaces uniformly as ErrReceiptUnavailable
// with the detail kept in the server log.
func (s *InvoiceService) GetReceipt(invoiceID uuid.UUID, requestedName string) ([]byte, error) {
	if _, err := s.Get(invoiceID); err != nil {
		return nil, err
	}

	path, err := s.resolveReceiptPath(requestedName)
	if err != nil {
		log.Printf("receipt lookup rejected for invoice %s: %v", invoiceID, err)
		return nil, ErrReceiptUnavailable
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("receipt read failed for invoice %s: %v", invoiceID, err)
		return nil, ErrReceiptUnavailable
	}
	return data, nil
}

// resolveReceiptPath turns a caller-supplied name into an absolute path
// strictly inside the receipt root, or reports why it cannot. The checks are
// independent rejection points, in order: safe character set, pdf extension,
// separator-qualified containment after normalization.
func (s *InvoiceService) resolveReceiptPath(name string) (string, error) {
	if !receiptNamePattern.MatchString(name) {
		return "", fmt.Errorf("name %q outside safe character set", name)
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") {
		return "", fmt.Errorf("name %q does not end in .pdf", name)
	}

	resolved, err := filepath.Abs(filepath.Join(s.receiptDir, name))
	if err != nil {
		return "", err
	}
	// root+separator, not a bare prefix: a sibling like /data/receipts-evil
	// shares the root's prefix but not this one.
	if !strings.HasPrefix(resolved, s.receiptDir+string(os.PathSeparator)) {
		return "", fmt.Errorf("resolved path escapes receipt root")
	}
	return resolved, nil
}

func (s *InvoiceService) recordAttempt(invoiceID, ownerID uuid.UUID, host string, statusCode int, outcome string, details map[string]any) {
	detailsJSON, _ := json.Marshal(details)
	attempt := &models.PaymentAttempt{
		ID:            uuid.New(),
		InvoiceID:     invoiceID,
		OwnerID:       ownerID,
		ProcessorHost: host,
		StatusCode:    statusCode,
		Outcome:       outcome,
		Details:       detailsJSON,
		CreatedAt:     time.Now(),
	}
	// Audit failure must not fail the payment path.
	if err := s.attempts.Create(attempt); err != nil {
		log.Println("failed to record payment attempt:", err)
	}
}
