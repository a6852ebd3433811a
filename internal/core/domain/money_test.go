package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/wsalem/rental_ledger_app/internal/core/domain"
)

func TestConvertToBase(t *testing.T) {
	jodBase := domain.Settings{
		BaseCurrency: domain.CurrencyJOD,
		JODToILSRate: decimal.NewFromInt(5),
	}
	ilsBase := domain.Settings{
		BaseCurrency: domain.CurrencyILS,
		JODToILSRate: decimal.NewFromInt(5),
	}

	tests := []struct {
		name     string
		amount   decimal.Decimal
		from     domain.CurrencyCode
		settings domain.Settings
		want     decimal.Decimal
	}{
		{
			name:     "same currency passes through",
			amount:   decimal.NewFromInt(200),
			from:     domain.CurrencyJOD,
			settings: jodBase,
			want:     decimal.NewFromInt(200),
		},
		{
			name:     "ILS amount divided into JOD base",
			amount:   decimal.NewFromInt(100),
			from:     domain.CurrencyILS,
			settings: jodBase,
			want:     decimal.NewFromInt(20),
		},
		{
			name:     "JOD amount multiplied into ILS base",
			amount:   decimal.NewFromInt(20),
			from:     domain.CurrencyJOD,
			settings: ilsBase,
			want:     decimal.NewFromInt(100),
		},
		{
			name:   "custom rate is honored",
			amount: decimal.NewFromInt(77),
			from:   domain.CurrencyILS,
			settings: domain.Settings{
				BaseCurrency: domain.CurrencyJOD,
				JODToILSRate: decimal.NewFromFloat(3.5),
			},
			want: decimal.NewFromInt(22),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ConvertToBase(tt.amount, tt.from, tt.settings)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func TestConvertToBase_RoundTrip(t *testing.T) {
	jodBase := domain.Settings{BaseCurrency: domain.CurrencyJOD, JODToILSRate: decimal.NewFromInt(5)}
	ilsBase := domain.Settings{BaseCurrency: domain.CurrencyILS, JODToILSRate: decimal.NewFromInt(5)}

	original := decimal.NewFromInt(350)
	inJOD := domain.ConvertToBase(original, domain.CurrencyILS, jodBase)
	back := domain.ConvertToBase(inJOD, domain.CurrencyJOD, ilsBase)

	assert.True(t, original.Equal(back), "round trip changed the amount: %s -> %s", original, back)
}

func TestEffectiveRate_DefaultsWhenUnset(t *testing.T) {
	assert.True(t, domain.DefaultJODToILSRate.Equal(domain.Settings{}.EffectiveRate()))
	assert.True(t, domain.DefaultJODToILSRate.Equal(domain.Settings{JODToILSRate: decimal.NewFromInt(-1)}.EffectiveRate()))

	custom := decimal.NewFromFloat(4.8)
	assert.True(t, custom.Equal(domain.Settings{JODToILSRate: custom}.EffectiveRate()))
}
