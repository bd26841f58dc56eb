package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoice_normalizer_app/internal/apperrors"
	portssvc "github.com/SscSPs/invoice_normalizer_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_normalizer_app/internal/dto"
	"github.com/SscSPs/invoice_normalizer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// invoiceHandler handles HTTP requests related to invoice normalization.
type invoiceHandler struct {
	normalizerService portssvc.NormalizerSvcFacade
}

// newInvoiceHandler creates a new invoiceHandler.
func newInvoiceHandler(ns portssvc.NormalizerSvcFacade) *invoiceHandler {
	return &invoiceHandler{
		normalizerService: ns,
	}
}

// RegisterInvoiceRoutes registers routes related to invoice normalization.
func RegisterInvoiceRoutes(rg *gin.RouterGroup, normalizerService portssvc.NormalizerSvcFacade) {
	h := newInvoiceHandler(normalizerService)

	invoices := rg.Group("/invoices")
	{
		invoices.POST("/normalize", h.normalizeInvoice)
	}
}

// normalizeInvoice godoc
// @Summary Normalize an extracted invoice field map
// @Description Converts the monetary fields of an extracted invoice record into the target currency and removes the currency field. Fields that cannot be converted are left untouched and reported as warnings.
// @Tags invoices
// @Accept  json
// @Produce  json
// @Param   strict query bool false "Fail with 422 when the declared currency has no rate anywhere (default: leave amounts unconverted and warn)"
// @Param   record body dto.NormalizeInvoiceRequest true "Extracted field map"
// @Success 200 {object} dto.NormalizeInvoiceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Unsupported currency in strict mode"
// @Router /invoices/normalize [post]
func (h *invoiceHandler) normalizeInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.NormalizeInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for NormalizeInvoice", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	strict := c.Query("strict") == "true"

	record, issues, err := h.normalizerService.NormalizeRecord(c.Request.Context(), dto.ToInvoiceRecord(req))
	if err != nil {
		if !errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			logger.Error("Failed to normalize invoice record", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to normalize invoice"})
			return
		}
		if strict {
			logger.Warn("Unsupported currency in strict mode", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		// Non-strict: amounts stay unconverted, the issue list tells the caller why.
		logger.Warn("Unsupported currency, returning record unconverted", slog.String("error", err.Error()))
	}

	c.JSON(http.StatusOK, dto.ToNormalizeInvoiceResponse(record, issues))
}
