package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// GenerateInvoicesRequest defines the parameters of one generation run.
type GenerateInvoicesRequest struct {
	Scope    string `json:"scope" binding:"required,oneof=monthly yearly"`
	Period   string `json:"period" binding:"required,period"`
	TenantID string `json:"tenantID" binding:"omitempty,uuid"`
}

// InvoiceResponse defines data returned for a generated invoice.
type InvoiceResponse struct {
	InvoiceID     string          `json:"invoiceID"`
	UnitID        string          `json:"unitID"`
	TenantID      string          `json:"tenantID"`
	Period        string          `json:"period"`
	Scope         string          `json:"scope"`
	RentBase      decimal.Decimal `json:"rentBase"`
	UtilitiesBase decimal.Decimal `json:"utilitiesBase"`
	TotalBase     decimal.Decimal `json:"totalBase"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// GenerateInvoicesResponse reports the outcome of a generation run.
// Skipped lists tenants that already held an invoice for the period; Failed
// lists tenants whose invoice could not be persisted.
type GenerateInvoicesResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
	Skipped  []string          `json:"skipped,omitempty"`
	Failed   []string          `json:"failed,omitempty"`
}

// ToInvoiceResponse converts domain.Invoice to its DTO.
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	return InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		UnitID:        inv.UnitID,
		TenantID:      inv.TenantID,
		Period:        inv.Period,
		Scope:         string(inv.Scope),
		RentBase:      inv.RentBase,
		UtilitiesBase: inv.UtilitiesBase,
		TotalBase:     inv.TotalBase,
		CreatedAt:     inv.CreatedAt,
	}
}

// ToInvoiceResponses converts a slice of invoices to DTOs.
func ToInvoiceResponses(invoices []domain.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		out[i] = ToInvoiceResponse(&invoices[i])
	}
	return out
}
