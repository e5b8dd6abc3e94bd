package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-access-backend/internal/config"
	"invoice-access-backend/internal/gateway"
	handler "invoice-access-backend/internal/handlers"
	"invoice-access-backend/internal/middleware"
	"invoice-access-backend/internal/repository"
	service "invoice-access-backend/internal/services/invoices"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {
	invoiceRepo := repository.NewInvoiceRepository(db)
	attemptRepo := repository.NewPaymentAttemptRepository(db)
	processor := gateway.NewClient(nil)

	invoiceService := service.NewInvoiceService(invoiceRepo, attemptRepo, processor, cfg.ReceiptDir)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Invoice routes, all behind token auth
	invoices := api.Group("/invoices", middleware.RequireAuth(cfg.JWTSecret))
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/payment", invoiceHandler.ConfirmPayment)
		invoices.GET("/:id/receipt", invoiceHandler.GetReceipt)
	}
}
