package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// CreateUtilityChargeRequest defines data for booking a utility charge.
// Period accepts YYYY-MM or YYYY via the custom "period" validator.
type CreateUtilityChargeRequest struct {
	UnitID   string          `json:"unitID" binding:"required,uuid"`
	Period   string          `json:"period" binding:"required,period"`
	Type     string          `json:"type" binding:"required,oneof=water electricity"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Currency string          `json:"currency" binding:"required,oneof=JOD ILS"`
}

// UtilityChargeResponse defines data returned for a utility charge.
type UtilityChargeResponse struct {
	ChargeID  string          `json:"chargeID"`
	UnitID    string          `json:"unitID"`
	Period    string          `json:"period"`
	Type      string          `json:"type"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ToUtilityChargeResponse converts domain.UtilityCharge to its DTO.
func ToUtilityChargeResponse(u *domain.UtilityCharge) UtilityChargeResponse {
	return UtilityChargeResponse{
		ChargeID:  u.ChargeID,
		UnitID:    u.UnitID,
		Period:    u.Period,
		Type:      string(u.Type),
		Amount:    u.Amount,
		Currency:  string(u.Currency),
		CreatedAt: u.CreatedAt,
	}
}

// ToUtilityChargeResponses converts a slice of charges to DTOs.
func ToUtilityChargeResponses(charges []domain.UtilityCharge) []UtilityChargeResponse {
	out := make([]UtilityChargeResponse, len(charges))
	for i := range charges {
		out[i] = ToUtilityChargeResponse(&charges[i])
	}
	return out
}
