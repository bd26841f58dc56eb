package apperrors

import "errors"

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRateSourceUnavailable indicates the live rate service could not be
// reached (connection failure, timeout, or a server-side error).
var ErrRateSourceUnavailable = errors.New("rate source unavailable")

// ErrMalformedRateResponse indicates the rate service answered, but the
// expected rate field was absent or not numeric.
var ErrMalformedRateResponse = errors.New("malformed rate response")

// ErrUnsupportedCurrency indicates no rate exists for a currency code,
// neither from the live source nor from the fallback table.
var ErrUnsupportedCurrency = errors.New("unsupported currency")

// ErrCoercion indicates a field value could not be coerced to a number.
var ErrCoercion = errors.New("value is not numeric")
