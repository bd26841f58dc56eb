package services

import (
	"github.com/SscSPs/invoice_normalizer_app/internal/utils/gstin"
)

// IdentifierService validates structured tax identifiers. It is stateless;
// identifiers are verified and discarded, never stored.
type IdentifierService struct{}

// NewIdentifierService creates a new IdentifierService.
func NewIdentifierService() *IdentifierService {
	return &IdentifierService{}
}

// VerifyGSTIN reports whether the identifier passes GSTIN format and
// checksum verification.
func (s *IdentifierService) VerifyGSTIN(identifier string) bool {
	return gstin.Verify(identifier)
}
