package domain

import "strings"

// Recognized keys in an extracted invoice field map. Anything else in the
// map passes through normalization untouched.
const (
	KeyTotalAmount = "total_amount"
	KeyTaxAmount   = "tax_amount"
	KeyCurrency    = "currency"
)

// MonetaryKeys are the field-map keys whose values are converted into the
// target currency during normalization.
var MonetaryKeys = []string{KeyTotalAmount, KeyTaxAmount}

// Field is a single attribute extracted from an invoice document together
// with the extraction collaborator's confidence in it. A nil Value means no
// value was extracted. Confidence is never adjusted by normalization; it is
// carried through unchanged.
type Field struct {
	Value      any      `json:"value"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// InvoiceRecord is the open field map produced by the extraction
// collaborator for one invoice. It is owned by a single request during
// normalization and is mutated in place.
type InvoiceRecord map[string]Field

// NormalizeSentinels rewrites the upstream extractor's literal "nil"
// sentinel (any case, surrounding whitespace ignored) into an absent value,
// so the rest of the engine only has one representation of "no value".
func (r InvoiceRecord) NormalizeSentinels() {
	for key, field := range r {
		if isNilSentinel(field.Value) {
			field.Value = nil
			r[key] = field
		}
	}
}

func isNilSentinel(v any) bool {
	s, ok := v.(string)
	return ok && strings.EqualFold(strings.TrimSpace(s), "nil")
}

// FieldIssue describes a monetary field that could not be converted during
// normalization. Normalization continues past these; one bad field never
// blocks conversion of the others.
type FieldIssue struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}
