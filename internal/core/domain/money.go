package domain

import "github.com/shopspring/decimal"

// CurrencyCode identifies one of the two supported currencies.
type CurrencyCode string

const (
	CurrencyJOD CurrencyCode = "JOD"
	CurrencyILS CurrencyCode = "ILS"
)

// IsValid reports whether c is one of the supported currency codes.
func (c CurrencyCode) IsValid() bool {
	return c == CurrencyJOD || c == CurrencyILS
}

// DefaultJODToILSRate is assumed whenever settings carry no positive rate.
var DefaultJODToILSRate = decimal.NewFromInt(5)

// EffectiveRate returns the JOD→ILS rate to use for conversion, falling back
// to DefaultJODToILSRate when the configured rate is zero or negative.
func (s Settings) EffectiveRate() decimal.Decimal {
	if s.JODToILSRate.IsPositive() {
		return s.JODToILSRate
	}
	return DefaultJODToILSRate
}

// ConvertToBase converts amount from the given currency into the settings'
// base currency using the single JOD→ILS rate. Amounts already in the base
// currency pass through unchanged.
func ConvertToBase(amount decimal.Decimal, from CurrencyCode, s Settings) decimal.Decimal {
	if from == s.BaseCurrency {
		return amount
	}
	rate := s.EffectiveRate()
	if s.BaseCurrency == CurrencyJOD && from == CurrencyILS {
		return amount.Div(rate)
	}
	if s.BaseCurrency == CurrencyILS && from == CurrencyJOD {
		return amount.Mul(rate)
	}
	return amount
}
