package domain

import "github.com/shopspring/decimal"

// Invoice is a generated bill for one tenant and one period. All three money
// fields are already expressed in the owner's base currency and are frozen at
// creation time: a later rate change never rewrites stored invoices. Invoices
// are immutable except by deletion.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"` // Primary Key (UUID)
	OwnerID       string          `json:"ownerID"`
	UnitID        string          `json:"unitID"`   // FK -> units.unit_id
	TenantID      string          `json:"tenantID"` // FK -> tenants.tenant_id
	Period        string          `json:"period"`   // YYYY-MM (monthly) or YYYY (yearly)
	Scope         BillingScope    `json:"scope"`
	RentBase      decimal.Decimal `json:"rentBase"`
	UtilitiesBase decimal.Decimal `json:"utilitiesBase"`
	TotalBase     decimal.Decimal `json:"totalBase"` // rentBase + utilitiesBase
	AuditFields
}
