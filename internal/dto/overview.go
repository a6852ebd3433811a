package dto

import "github.com/wsalem/rental_ledger_app/internal/core/domain"

// OverviewResponse carries every collection an owner has, as loaded on app
// start. FromCache marks a snapshot served from the in-process fallback after
// a store failure.
type OverviewResponse struct {
	Settings  SettingsResponse        `json:"settings"`
	Units     []UnitResponse          `json:"units"`
	Tenants   []TenantResponse        `json:"tenants"`
	Utilities []UtilityChargeResponse `json:"utilities"`
	Invoices  []InvoiceResponse       `json:"invoices"`
	Payments  []PaymentResponse       `json:"payments"`
	FromCache bool                    `json:"fromCache"`
}

// ToOverviewResponse converts a domain snapshot to its DTO.
func ToOverviewResponse(s *domain.Snapshot, fromCache bool) OverviewResponse {
	return OverviewResponse{
		Settings:  ToSettingsResponse(&s.Settings),
		Units:     ToUnitResponses(s.Units),
		Tenants:   ToTenantResponses(s.Tenants),
		Utilities: ToUtilityChargeResponses(s.Utilities),
		Invoices:  ToInvoiceResponses(s.Invoices),
		Payments:  ToPaymentResponses(s.Payments),
		FromCache: fromCache,
	}
}
