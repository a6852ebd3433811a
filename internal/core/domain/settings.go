package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the per-owner bookkeeping configuration: the base currency all
// summary figures are expressed in, and the manually-set or auto-fetched
// JOD→ILS exchange rate. Exactly one row exists per owner.
type Settings struct {
	OwnerID       string          `json:"ownerID"` // FK -> users.user_id, primary key
	BaseCurrency  CurrencyCode    `json:"baseCurrency"`
	JODToILSRate  decimal.Decimal `json:"jodToIlsRate"`
	RateUpdatedAt *time.Time      `json:"rateUpdatedAt,omitempty"` // last successful provider fetch
	AuditFields
}

// DefaultSettings returns the settings used before an owner has saved any.
func DefaultSettings(ownerID string) Settings {
	return Settings{
		OwnerID:      ownerID,
		BaseCurrency: CurrencyJOD,
		JODToILSRate: DefaultJODToILSRate,
	}
}
