package domain

// ConversionOutcome records which path resolved a rate, so callers and tests
// can assert on the path taken rather than just the final number.
type ConversionOutcome string

const (
	// OutcomeIdentity means the source already was the target currency.
	OutcomeIdentity ConversionOutcome = "identity"
	// OutcomeCached means a still-valid cached rate was served.
	OutcomeCached ConversionOutcome = "cached"
	// OutcomeFetched means the live rate source answered.
	OutcomeFetched ConversionOutcome = "fetched"
	// OutcomeFallback means the static fallback table was used.
	OutcomeFallback ConversionOutcome = "fallback"
)
