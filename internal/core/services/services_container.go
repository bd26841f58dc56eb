package services

import (
	"log/slog"

	"github.com/SscSPs/invoice_normalizer_app/internal/core/ports"
	portssvc "github.com/SscSPs/invoice_normalizer_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_normalizer_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, source ports.RateSource, cache ports.RateCache, logger *slog.Logger) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Conversion = NewConversionService(cfg.TargetCurrency, source, cache, logger)
	container.Normalizer = NewNormalizerService(container.Conversion, logger)
	container.Identifier = NewIdentifierService()

	return container
}

// Compile-time checks that the implementations satisfy their facades.
var (
	_ portssvc.ConversionSvcFacade = (*ConversionService)(nil)
	_ portssvc.NormalizerSvcFacade = (*NormalizerService)(nil)
	_ portssvc.IdentifierSvcFacade = (*IdentifierService)(nil)
)
