package domain

import "github.com/shopspring/decimal"

// UnitKind distinguishes the two kinds of rentable units. The kind determines
// the billing scope: apartments are invoiced monthly, shops yearly.
type UnitKind string

const (
	UnitApartment UnitKind = "apartment"
	UnitShop      UnitKind = "shop"
)

// IsValid reports whether k is a known unit kind.
func (k UnitKind) IsValid() bool {
	return k == UnitApartment || k == UnitShop
}

// BillingScope returns the invoice cadence for units of this kind.
func (k UnitKind) BillingScope() BillingScope {
	if k == UnitShop {
		return ScopeYearly
	}
	return ScopeMonthly
}

// Unit is a rentable apartment or shop in the complex.
type Unit struct {
	UnitID       string          `json:"unitID"` // Primary Key (UUID)
	OwnerID      string          `json:"ownerID"`
	Name         string          `json:"name"`
	Kind         UnitKind        `json:"kind"`
	RentAmount   decimal.Decimal `json:"rentAmount"`
	RentCurrency CurrencyCode    `json:"rentCurrency"`
	AuditFields
}
