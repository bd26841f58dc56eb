package services

import "github.com/shopspring/decimal"

// defaultFallbackRates is the hand-maintained snapshot of rates into the
// target currency (units of target per 1 unit of source, last refreshed
// Nov 2024). Consulted only when the live source fails.
func defaultFallbackRates(target string) map[string]decimal.Decimal {
	rates := map[string]decimal.Decimal{
		"USD": decimal.NewFromFloat(83.12),
		"EUR": decimal.NewFromFloat(89.50),
		"GBP": decimal.NewFromFloat(105.20),
		"AED": decimal.NewFromFloat(22.63),
		"SGD": decimal.NewFromFloat(61.80),
		"JPY": decimal.NewFromFloat(0.56),
		"AUD": decimal.NewFromFloat(54.20),
		"CAD": decimal.NewFromFloat(60.50),
		"CHF": decimal.NewFromFloat(94.30),
		"CNY": decimal.NewFromFloat(11.50),
	}
	rates[target] = decimal.NewFromInt(1)
	return rates
}
