package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// UpdateSettingsRequest defines data for saving the owner's settings.
type UpdateSettingsRequest struct {
	BaseCurrency string          `json:"baseCurrency" binding:"required,oneof=JOD ILS"`
	JODToILSRate decimal.Decimal `json:"jodToIlsRate" binding:"required"`
}

// SettingsResponse defines data returned for the owner's settings.
type SettingsResponse struct {
	BaseCurrency  string          `json:"baseCurrency"`
	JODToILSRate  decimal.Decimal `json:"jodToIlsRate"`
	RateUpdatedAt *time.Time      `json:"rateUpdatedAt,omitempty"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToSettingsResponse converts domain.Settings to its DTO.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	return SettingsResponse{
		BaseCurrency:  string(s.BaseCurrency),
		JODToILSRate:  s.JODToILSRate,
		RateUpdatedAt: s.RateUpdatedAt,
		LastUpdatedAt: s.LastUpdatedAt,
	}
}

// RefreshRateResponse reports the outcome of a manual rate refresh.
type RefreshRateResponse struct {
	Rate      decimal.Decimal `json:"rate"`
	FetchedAt time.Time       `json:"fetchedAt"`
}
