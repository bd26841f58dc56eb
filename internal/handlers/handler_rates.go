package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/invoice_normalizer_app/internal/apperrors"
	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_normalizer_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_normalizer_app/internal/dto"
	"github.com/SscSPs/invoice_normalizer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// rateHandler handles HTTP requests related to exchange rates.
type rateHandler struct {
	conversionService portssvc.ConversionSvcFacade
}

// newRateHandler creates a new rateHandler.
func newRateHandler(cs portssvc.ConversionSvcFacade) *rateHandler {
	return &rateHandler{
		conversionService: cs,
	}
}

// RegisterRateRoutes registers routes related to exchange rates.
func RegisterRateRoutes(rg *gin.RouterGroup, conversionService portssvc.ConversionSvcFacade) {
	h := newRateHandler(conversionService)

	rates := rg.Group("/rates")
	{
		rates.GET("/:code", h.getRateByCode)
	}
}

// getRateByCode godoc
// @Summary Resolve an exchange rate into the target currency
// @Description Resolves the rate for a 3-letter currency code, reporting which path produced it (identity, cached, fetched, fallback).
// @Tags rates
// @Produce  json
// @Param   code path string true "Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Success 200 {object} dto.RateResponse
// @Failure 400 {object} map[string]string "Invalid currency code"
// @Failure 404 {object} map[string]string "No rate available anywhere"
// @Router /rates/{code} [get]
func (h *rateHandler) getRateByCode(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	code := domain.NormalizeCurrencyCode(c.Param("code"))

	if len(code) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency code must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("currency_code", code))
	logger.Info("Received request to resolve rate")

	rate, outcome, err := h.conversionService.GetRate(c.Request.Context(), code)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnsupportedCurrency) {
			logger.Warn("No rate available for currency", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to resolve rate", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve rate"})
		return
	}

	c.JSON(http.StatusOK, dto.RateResponse{
		CurrencyCode:   code,
		TargetCurrency: h.conversionService.TargetCurrency(),
		Rate:           rate,
		Outcome:        outcome,
	})
}
