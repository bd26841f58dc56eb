package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/invoice_normalizer_app/internal/apperrors"
	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_normalizer_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// NormalizerService applies currency conversion to the known monetary fields
// of an extracted invoice record and strips the then-redundant currency key.
type NormalizerService struct {
	converter portssvc.ConversionSvcFacade
	logger    *slog.Logger
}

// NewNormalizerService creates a new NormalizerService.
func NewNormalizerService(converter portssvc.ConversionSvcFacade, logger *slog.Logger) *NormalizerService {
	return &NormalizerService{
		converter: converter,
		logger:    logger,
	}
}

// NormalizeRecord converts total_amount and tax_amount into the target
// currency and removes the currency key. The operation is destructive and
// one-way: a record that already lost its currency key is treated as
// already normalized, so a second pass is a no-op.
//
// Partial success is the design: a field that cannot be coerced to a number
// is left exactly as it was, reported as an issue, and the remaining fields
// are still converted. A currency with no rate anywhere leaves the amounts
// unconverted and surfaces apperrors.ErrUnsupportedCurrency for the caller
// to decide on; the currency key is removed regardless.
func (s *NormalizerService) NormalizeRecord(ctx context.Context, record domain.InvoiceRecord) (domain.InvoiceRecord, []domain.FieldIssue, error) {
	if record == nil {
		return record, nil, nil
	}

	record.NormalizeSentinels()

	code := s.currencyOf(record)
	s.logger.Info("normalizing invoice record",
		slog.String("source_currency", code),
		slog.String("target_currency", s.converter.TargetCurrency()))

	var issues []domain.FieldIssue
	var unsupportedErr error

	for _, key := range domain.MonetaryKeys {
		field, ok := record[key]
		if !ok || field.Value == nil {
			continue
		}

		amount, err := coerceDecimal(field.Value)
		if err != nil {
			s.logger.Warn("monetary field not convertible, leaving as-is",
				slog.String("field", key),
				slog.String("error", err.Error()))
			issues = append(issues, domain.FieldIssue{Key: key, Reason: err.Error()})
			continue
		}

		converted, err := s.converter.ConvertToTarget(ctx, amount, code)
		if err != nil {
			issues = append(issues, domain.FieldIssue{Key: key, Reason: err.Error()})
			unsupportedErr = err
			continue
		}

		// Confidence stays whatever the extractor reported.
		field.Value = converted
		record[key] = field
	}

	// The currency indicator goes away even when nothing was convertible;
	// amounts without a currency key are by definition already normalized.
	delete(record, domain.KeyCurrency)

	return record, issues, unsupportedErr
}

// currencyOf reads the declared source currency off the record. A missing,
// empty, or absent-sentinel currency means the record is already in the
// target currency.
func (s *NormalizerService) currencyOf(record domain.InvoiceRecord) string {
	field, ok := record[domain.KeyCurrency]
	if !ok || field.Value == nil {
		return s.converter.TargetCurrency()
	}
	code, ok := field.Value.(string)
	if !ok || strings.TrimSpace(code) == "" {
		return s.converter.TargetCurrency()
	}
	return domain.NormalizeCurrencyCode(code)
}

// coerceDecimal turns the loosely-typed extractor output into a decimal.
// JSON numbers arrive as float64 or json.Number depending on the decoder.
func coerceDecimal(v any) (decimal.Decimal, error) {
	switch value := v.(type) {
	case decimal.Decimal:
		return value, nil
	case float64:
		return decimal.NewFromFloat(value), nil
	case int:
		return decimal.NewFromInt(int64(value)), nil
	case int64:
		return decimal.NewFromInt(value), nil
	case json.Number:
		d, err := decimal.NewFromString(value.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrCoercion, value.String())
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(value))
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %q", apperrors.ErrCoercion, value)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unexpected type %T", apperrors.ErrCoercion, v)
	}
}
