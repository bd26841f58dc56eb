package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/invoice_normalizer_app/internal/adapters/ratecache"
	"github.com/SscSPs/invoice_normalizer_app/internal/apperrors"
	"github.com/SscSPs/invoice_normalizer_app/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_normalizer_app/internal/core/ports/services"
	"github.com/SscSPs/invoice_normalizer_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type NormalizerServiceTestSuite struct {
	suite.Suite
	mockSource *MockRateSource
	service    portssvc.NormalizerSvcFacade
}

func (suite *NormalizerServiceTestSuite) SetupTest() {
	suite.mockSource = new(MockRateSource)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cache := ratecache.NewMemory(time.Hour)
	converter := services.NewConversionService("INR", suite.mockSource, cache, logger)
	suite.service = services.NewNormalizerService(converter, logger)
}

func confidence(v float64) *float64 {
	return &v
}

func (suite *NormalizerServiceTestSuite) decimalValue(record domain.InvoiceRecord, key string) decimal.Decimal {
	field, ok := record[key]
	suite.Require().True(ok, "field %s missing", key)
	d, ok := field.Value.(decimal.Decimal)
	suite.Require().True(ok, "field %s is %T, not a decimal", key, field.Value)
	return d
}

// --- Test Cases ---

func (suite *NormalizerServiceTestSuite) TestNormalizeRecord_FallbackRates() {
	ctx := context.Background()

	// Live source down for the whole request: the static table drives it.
	suite.mockSource.On("FetchRate", ctx, "USD", "INR").Return(decimal.Zero, apperrors.ErrRateSourceUnavailable)

	record := domain.InvoiceRecord{
		"total_amount": {Value: 100.0, Confidence: confidence(0.9)},
		"tax_amount":   {Value: 18.0, Confidence: confidence(0.9)},
		"currency":     {Value: "USD", Confidence: confidence(0.8)},
	}

	normalized, issues, err := suite.service.NormalizeRecord(ctx, record)

	suite.Require().NoError(err)
	suite.Empty(issues)
	suite.True(suite.decimalValue(normalized, "total_amount").Equal(decimal.NewFromFloat(8312.00)))
	suite.True(suite.decimalValue(normalized, "tax_amount").Equal(decimal.NewFromFloat(1496.16)))
	suite.NotContains(normalized, "currency")

	// Confidence rides along untouched.
	suite.Equal(0.9, *normalized["total_amount"].Confidence)
}

func (suite *NormalizerServiceTestSuite) TestNormalizeRecord_MissingCurrencyMeansTarget() {
	ctx := context.Background()

	record := domain.InvoiceRecord{
		"total_amount": {Value: 250.0},
	}

	normalized, issues, err := suite.service.NormalizeRecord(ctx, record)

	suite.Require().NoError(err)
	suite.Empty(issues)
	suite.True(suite.decimalValue(normalized, "total_amount").Equal(decimal.NewFromFloat(250.0)))
	suite.mockSource.AssertNotCalled(suite.T(), "FetchRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NormalizerServiceTestSuite) TestNormalizeRecord_NilSentinelCurrency() {
	ctx := context.Background()

	record := domain.InvoiceRecord{
		"total_amount": {Value: 99.5},
		"currency":     {Value: "Nil"},
	}

	normalized, issues, err := suite.service.NormalizeRecord(ctx, record)

	suite.Require().NoError(err)
	suite.Empty(issues)
	suite.True(suite.decimalValue(normalized, "total_amount").Equal(decimal.NewFromFloat(99.5)))
	suite.NotContains(normalized, "currency")
	suite.mockSource.AssertNotCalled(suite.T(), "FetchRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *NormalizerServiceTestSuite) TestNormalizeRecord_NilSentinelAmountLeftAbsent() {
	ctx := context.Background()

	record := domain.InvoiceRecord{
		"total_amount": {Value: "nil"},
		"tax_amount":   {Value: 18.0},
		"currency":     {Value: "INR"},
	}

	normalized, issues, err := suite.service.NormalizeRecord(ctx, record)

	suite.Require().NoError(err)
	suite.Empty(issues)
	suite.Nil(normalized["total_amount"].Value)
	suite.True(suite.decimalValue(normalized, "tax_amount").Equal(decimal.NewFromFloat(18.0)))
}

func (suite *NormalizerServiceTestSuite) TestNormalizeRecord_BadFieldDoesNotBlockOthers() {
	ctx := context.Background()

	suite.mockSource.On("FetchRate", ctx, "USD", "INR").Return(decimal.NewFromFloat(80), nil)

	record := domain.InvoiceRecord{
		"total_amount": {Value: "twelve dollars"},
		"tax_amount":   {Value: 10.0},
		"currency":     {Value: "USD"},
	}

	normalized, issues, err := suite.service.NormalizeRecord(ctx, record)

	suite.Require().NoError(err)
	suite.Require().Len(issues, 1)
	suite.Equal("total_amount", issues[0].Key)

	// The bad field keeps its original value; the good one converts.
	suite.Equal("twelve dollars", normalized["total_amount"].Value)
	suite.True(suite.decimalValue(normalized, "tax_amount").Equal(decimal.NewFromFloat(800)))
	suite.NotContains(normalized, "currency")
}

func (suite *NormalizerServiceTestSuite) TestNormalizeRecord_NumericStringsCoerce() {
	ctx := context.Background()

	record := domain.InvoiceRecord{
		"total_amount": {Value: " 1234.56 "},
		"currency":     {Value: "INR"},
	}

	normalized, issues, err := suite.service.NormalizeRecord(ctx, record)

	suite.Require().NoError(err)
	suite.Empty(issues)
	suite.True(suite.decimalValue(normalized, "total_amount").Equal(decimal.NewFromFloat(1234.56)))
}

func (suite *NormalizerServiceTestSuite) TestNormalizeRecord_UnsupportedCurrencySurfaced() {
	ctx := context.Background()

	suite.mockSource.On("FetchRate", ctx, "ZZZ", "INR").Return(decimal.Zero, apperrors.ErrRateSourceUnavailable)

	record := domain.InvoiceRecord{
		"total_amount": {Value: 100.0},
		"tax_amount":   {Value: 18.0},
		"currency":     {Value: "ZZZ"},
	}

	normalized, issues, err := suite.service.NormalizeRecord(ctx, record)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnsupportedCurrency)
	suite.Len(issues, 2)

	// Amounts stay unconverted, but the currency key is still removed.
	suite.Equal(100.0, normalized["total_amount"].Value)
	suite.Equal(18.0, normalized["tax_amount"].Value)
	suite.NotContains(normalized, "currency")
}

func (suite *NormalizerServiceTestSuite) TestNormalizeRecord_UnknownKeysPassThrough() {
	ctx := context.Background()

	record := domain.InvoiceRecord{
		"invoice_number": {Value: "INV-001", Confidence: confidence(0.95)},
		"vendor_name":    {Value: "Acme Traders"},
		"currency":       {Value: "INR"},
	}

	normalized, issues, err := suite.service.NormalizeRecord(ctx, record)

	suite.Require().NoError(err)
	suite.Empty(issues)
	suite.Equal("INV-001", normalized["invoice_number"].Value)
	suite.Equal("Acme Traders", normalized["vendor_name"].Value)
	suite.NotContains(normalized, "currency")
}

func (suite *NormalizerServiceTestSuite) TestNormalizeRecord_SecondPassIsNoOp() {
	ctx := context.Background()

	suite.mockSource.On("FetchRate", ctx, "USD", "INR").Return(decimal.NewFromFloat(80), nil)

	record := domain.InvoiceRecord{
		"total_amount": {Value: 100.0},
		"currency":     {Value: "USD"},
	}

	once, _, err := suite.service.NormalizeRecord(ctx, record)
	suite.Require().NoError(err)
	total := suite.decimalValue(once, "total_amount")

	// No currency key left, so the amounts are treated as already converted.
	twice, issues, err := suite.service.NormalizeRecord(ctx, once)
	suite.Require().NoError(err)
	suite.Empty(issues)
	suite.True(suite.decimalValue(twice, "total_amount").Equal(total))
	suite.mockSource.AssertNumberOfCalls(suite.T(), "FetchRate", 1)
}

func (suite *NormalizerServiceTestSuite) TestNormalizeRecord_NilRecord() {
	normalized, issues, err := suite.service.NormalizeRecord(context.Background(), nil)

	suite.Require().NoError(err)
	suite.Nil(normalized)
	suite.Empty(issues)
}

func TestNormalizerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizerServiceTestSuite))
}
