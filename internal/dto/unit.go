package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// CreateUnitRequest defines data for creating a new rental unit.
type CreateUnitRequest struct {
	Name         string          `json:"name" binding:"required"`
	Kind         string          `json:"kind" binding:"required,oneof=apartment shop"`
	RentAmount   decimal.Decimal `json:"rentAmount" binding:"required"`
	RentCurrency string          `json:"rentCurrency" binding:"required,oneof=JOD ILS"`
}

// UnitResponse defines data returned for a unit.
type UnitResponse struct {
	UnitID       string          `json:"unitID"`
	Name         string          `json:"name"`
	Kind         string          `json:"kind"`
	RentAmount   decimal.Decimal `json:"rentAmount"`
	RentCurrency string          `json:"rentCurrency"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// ToUnitResponse converts domain.Unit to its DTO.
func ToUnitResponse(u *domain.Unit) UnitResponse {
	return UnitResponse{
		UnitID:       u.UnitID,
		Name:         u.Name,
		Kind:         string(u.Kind),
		RentAmount:   u.RentAmount,
		RentCurrency: string(u.RentCurrency),
		CreatedAt:    u.CreatedAt,
	}
}

// ToUnitResponses converts a slice of units to DTOs.
func ToUnitResponses(units []domain.Unit) []UnitResponse {
	out := make([]UnitResponse, len(units))
	for i := range units {
		out[i] = ToUnitResponse(&units[i])
	}
	return out
}
