package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment records money received from a tenant. Payments are free-standing
// bookkeeping entries; they are not reconciled against invoices.
type Payment struct {
	PaymentID string          `json:"paymentID"` // Primary Key (UUID)
	OwnerID   string          `json:"ownerID"`
	TenantID  string          `json:"tenantID"` // FK -> tenants.tenant_id
	UnitID    string          `json:"unitID"`   // FK -> units.unit_id
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  CurrencyCode    `json:"currency"`
	Period    string          `json:"period,omitempty"`
	Note      string          `json:"note,omitempty"`
	AuditFields
}
