package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Show service information.
// @Description lists the available endpoints.
// @Tags root
// @Accept */*
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func getHome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status":  "running",
		"message": "Invoice Normalizer API",
		"endpoints": gin.H{
			"POST /api/v1/invoices/normalize": "Normalize an extracted invoice field map into the target currency",
			"GET /api/v1/rates/:code":         "Resolve an exchange rate into the target currency",
			"POST /api/v1/identifiers/gstin":  "Verify a GSTIN format and checksum",
			"GET /health":                     "Health check",
		},
	})
}

// getHealth godoc
// @Summary Health check.
// @Description reports whether the service is up.
// @Tags root
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func getHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "invoice-normalizer"})
}
