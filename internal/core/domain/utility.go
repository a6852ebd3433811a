package domain

import "github.com/shopspring/decimal"

// UtilityType identifies the kind of utility a charge covers.
type UtilityType string

const (
	UtilityWater       UtilityType = "water"
	UtilityElectricity UtilityType = "electricity"
)

// IsValid reports whether t is a known utility type.
func (t UtilityType) IsValid() bool {
	return t == UtilityWater || t == UtilityElectricity
}

// UtilityCharge is a single water or electricity charge booked against a unit
// for a billing period (YYYY-MM or YYYY).
type UtilityCharge struct {
	ChargeID string          `json:"chargeID"` // Primary Key (UUID)
	OwnerID  string          `json:"ownerID"`
	UnitID   string          `json:"unitID"` // FK -> units.unit_id
	Period   string          `json:"period"`
	Type     UtilityType     `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Currency CurrencyCode    `json:"currency"`
	AuditFields
}
