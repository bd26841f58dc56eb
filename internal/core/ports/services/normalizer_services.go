package services

import (
	"context"

	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
)

// NormalizerSvcFacade turns an extracted invoice field map into a
// currency-unified record.
type NormalizerSvcFacade interface {
	// NormalizeRecord converts the record's monetary fields into the target
	// currency and removes the currency key. The record is mutated in place
	// and returned. Per-field problems are reported as issues without
	// aborting the rest; the returned error is non-nil only when the
	// declared currency had no rate anywhere, in which case amounts are left
	// unconverted and the caller decides how to react.
	NormalizeRecord(ctx context.Context, record domain.InvoiceRecord) (domain.InvoiceRecord, []domain.FieldIssue, error)
}

// IdentifierSvcFacade validates structured tax identifiers.
type IdentifierSvcFacade interface {
	// VerifyGSTIN reports whether the identifier is structurally valid and
	// carries the correct checksum character. Malformed input is simply
	// false; there is no separate error channel.
	VerifyGSTIN(identifier string) bool
}
