package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// CreatePaymentRequest defines data for recording a payment.
type CreatePaymentRequest struct {
	TenantID string          `json:"tenantID" binding:"required,uuid"`
	UnitID   string          `json:"unitID" binding:"required,uuid"`
	Date     time.Time       `json:"date" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,oneof=JOD ILS"`
	Period   string          `json:"period" binding:"omitempty,period"`
	Note     string          `json:"note"`
}

// PaymentResponse defines data returned for a payment.
type PaymentResponse struct {
	PaymentID string          `json:"paymentID"`
	TenantID  string          `json:"tenantID"`
	UnitID    string          `json:"unitID"`
	Date      time.Time       `json:"date"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	Period    string          `json:"period,omitempty"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts domain.Payment to its DTO.
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID: p.PaymentID,
		TenantID:  p.TenantID,
		UnitID:    p.UnitID,
		Date:      p.Date,
		Amount:    p.Amount,
		Currency:  string(p.Currency),
		Period:    p.Period,
		Note:      p.Note,
		CreatedAt: p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of payments to DTOs.
func ToPaymentResponses(payments []domain.Payment) []PaymentResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
	}
	return out
}
