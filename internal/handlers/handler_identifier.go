package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/invoice_normalizer_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_normalizer_app/internal/dto"
	"github.com/SscSPs/invoice_normalizer_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// identifierHandler handles HTTP requests related to tax identifiers.
type identifierHandler struct {
	identifierService portssvc.IdentifierSvcFacade
}

// newIdentifierHandler creates a new identifierHandler.
func newIdentifierHandler(is portssvc.IdentifierSvcFacade) *identifierHandler {
	return &identifierHandler{
		identifierService: is,
	}
}

// RegisterIdentifierRoutes registers routes related to tax identifiers.
func RegisterIdentifierRoutes(rg *gin.RouterGroup, identifierService portssvc.IdentifierSvcFacade) {
	h := newIdentifierHandler(identifierService)

	identifiers := rg.Group("/identifiers")
	{
		identifiers.POST("/gstin", h.verifyGSTIN)
	}
}

// verifyGSTIN godoc
// @Summary Verify a GSTIN
// @Description Checks format and checksum of a 15-character GSTIN. An invalid identifier is a valid request whose answer is false, not an error.
// @Tags identifiers
// @Accept  json
// @Produce  json
// @Param   identifier body dto.VerifyGSTINRequest true "Identifier to verify"
// @Success 200 {object} dto.VerifyGSTINResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Router /identifiers/gstin [post]
func (h *identifierHandler) verifyGSTIN(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.VerifyGSTINRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for VerifyGSTIN", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	valid := h.identifierService.VerifyGSTIN(req.GSTIN)
	logger.Info("Verified GSTIN", slog.Bool("valid", valid))

	c.JSON(http.StatusOK, dto.VerifyGSTINResponse{
		GSTIN: req.GSTIN,
		Valid: valid,
	})
}
