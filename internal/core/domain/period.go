package domain

import (
	"fmt"
	"regexp"
)

// BillingScope is the invoice cadence: monthly for apartments, yearly for shops.
type BillingScope string

const (
	ScopeMonthly BillingScope = "monthly"
	ScopeYearly  BillingScope = "yearly"
)

// IsValid reports whether s is a known billing scope.
func (s BillingScope) IsValid() bool {
	return s == ScopeMonthly || s == ScopeYearly
}

var (
	monthlyPeriodRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)
	yearlyPeriodRe  = regexp.MustCompile(`^\d{4}$`)
)

// IsMonthlyPeriod reports whether period has the YYYY-MM form.
func IsMonthlyPeriod(period string) bool {
	return monthlyPeriodRe.MatchString(period)
}

// IsYearlyPeriod reports whether period has the YYYY form.
func IsYearlyPeriod(period string) bool {
	return yearlyPeriodRe.MatchString(period)
}

// PeriodYear returns the leading 4-character year of a period string.
func PeriodYear(period string) string {
	if len(period) < 4 {
		return period
	}
	return period[:4]
}

// EffectivePeriod normalizes a requested period for the given scope: monthly
// invoices store the full YYYY-MM, yearly invoices only the year.
func EffectivePeriod(scope BillingScope, period string) (string, error) {
	switch scope {
	case ScopeMonthly:
		if !IsMonthlyPeriod(period) {
			return "", fmt.Errorf("monthly period must be YYYY-MM, got %q", period)
		}
		return period, nil
	case ScopeYearly:
		if !IsMonthlyPeriod(period) && !IsYearlyPeriod(period) {
			return "", fmt.Errorf("yearly period must be YYYY or YYYY-MM, got %q", period)
		}
		return PeriodYear(period), nil
	default:
		return "", fmt.Errorf("unknown billing scope %q", scope)
	}
}

// PeriodMatches reports whether a utility charge booked for chargePeriod
// belongs to an invoice for the given scope and effective period: exact match
// for monthly invoices, same leading year for yearly ones.
func PeriodMatches(scope BillingScope, invoicePeriod, chargePeriod string) bool {
	if scope == ScopeYearly {
		return PeriodYear(chargePeriod) == invoicePeriod
	}
	return chargePeriod == invoicePeriod
}
