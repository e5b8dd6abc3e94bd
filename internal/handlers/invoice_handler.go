package handler

import (
	"errors"
	"log"
	"net/http"

	"invoice-access-backend/internal/gateway"
	"invoice-access-backend/internal/middleware"
	service "invoice-access-backend/internal/services/invoices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type InvoiceHandler struct {
	service *service.InvoiceService
}

func NewInvoiceHandler(s *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{service: s}
}

// ListInvoices handles GET /invoices?status=&operator=
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	invoices, err := h.service.List(ownerID, c.Query("status"), c.Query("operator"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoices": invoices})
}

// GetInvoice handles GET /invoices/:id
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	invoice, err := h.service.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"invoice": invoice})
}

// ConfirmPayment handles POST /invoices/:id/payment
func (h *InvoiceHandler) ConfirmPayment(c *gin.Context) {
	ownerID, ok := middleware.OwnerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	var payload struct {
		ProcessorHost string `json:"processor_host" binding:"required"`
		CardNumber    string `json:"card_number" binding:"required"`
		CVV           string `json:"cvv" binding:"required"`
		Expiry        string `json:"expiry" binding:"required"`
	}
	if err := c.BindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	card := gateway.Card{
		Number: payload.CardNumber,
		CVV:    payload.CVV,
		Expiry: payload.Expiry,
	}
	if err := h.service.ConfirmPayment(ownerID, id, payload.ProcessorHost, card); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "payment confirmed"})
}

// GetReceipt handles GET /invoices/:id/receipt?file=<name>.pdf
func (h *InvoiceHandler) GetReceipt(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid invoice ID"})
		return
	}

	data, err := h.service.GetReceipt(id, c.Query("file"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/pdf", data)
}

// respondError maps service failure kinds onto HTTP responses. Unknown errors
// become an opaque 500 so internal detail stays in the server log.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidFilter),
		errors.Is(err, service.ErrUnsupportedProcessor):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound),
		errors.Is(err, service.ErrReceiptUnavailable):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrPaymentFailed):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": err.Error()})
	default:
		log.Println("unhandled service error:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
