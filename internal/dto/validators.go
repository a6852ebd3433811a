package dto

import (
	"github.com/go-playground/validator/v10"
	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

// RegisterCustomValidators installs the binding validators used by the DTOs in
// this package on the given validator engine. "period" accepts the YYYY-MM and
// YYYY billing-period forms.
func RegisterCustomValidators(v *validator.Validate) error {
	return v.RegisterValidation("period", func(fl validator.FieldLevel) bool {
		p := fl.Field().String()
		return domain.IsMonthlyPeriod(p) || domain.IsYearlyPeriod(p)
	})
}
