package dto

import (
	"encoding/json"

	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FieldRequest mirrors one extracted invoice attribute on the wire. The
// upstream extractor may send the literal string "nil" for Value to mean
// "no value"; the domain layer normalizes that away.
type FieldRequest struct {
	Value      any      `json:"value"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// NormalizeInvoiceRequest is the open field map produced by the extraction
// collaborator. Unknown keys are carried through normalization untouched.
type NormalizeInvoiceRequest map[string]FieldRequest

// FieldWarning reports one monetary field that could not be converted.
type FieldWarning struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
}

// NormalizeInvoiceResponse carries the normalized record; converted amounts
// are in the target currency and the currency key is gone.
type NormalizeInvoiceResponse struct {
	Record   map[string]FieldRequest `json:"record"`
	Warnings []FieldWarning          `json:"warnings,omitempty"`
}

// ToInvoiceRecord converts the request body into the domain field map.
func ToInvoiceRecord(req NormalizeInvoiceRequest) domain.InvoiceRecord {
	record := make(domain.InvoiceRecord, len(req))
	for key, field := range req {
		record[key] = domain.Field{
			Value:      field.Value,
			Confidence: field.Confidence,
		}
	}
	return record
}

// ToNormalizeInvoiceResponse converts a normalized record and its issues
// into the response DTO.
func ToNormalizeInvoiceResponse(record domain.InvoiceRecord, issues []domain.FieldIssue) NormalizeInvoiceResponse {
	resp := NormalizeInvoiceResponse{
		Record: make(map[string]FieldRequest, len(record)),
	}
	for key, field := range record {
		resp.Record[key] = FieldRequest{
			Value:      wireValue(field.Value),
			Confidence: field.Confidence,
		}
	}
	for _, issue := range issues {
		resp.Warnings = append(resp.Warnings, FieldWarning{Key: issue.Key, Reason: issue.Reason})
	}
	return resp
}

// wireValue renders converted decimals as plain JSON numbers instead of the
// quoted form shopspring/decimal marshals to by default.
func wireValue(v any) any {
	if d, ok := v.(decimal.Decimal); ok {
		return json.Number(d.String())
	}
	return v
}
