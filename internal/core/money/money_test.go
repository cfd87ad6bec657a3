package money_test

import (
	"testing"

	"github.com/kbeautyshop/storefront_backend/internal/core/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestConvert(t *testing.T) {
	rates := money.DefaultRates()

	tests := []struct {
		name   string
		usd    decimal.Decimal
		target money.Currency
		want   decimal.Decimal
	}{
		{name: "usd is identity", usd: decimal.NewFromFloat(12.34), target: money.USD, want: decimal.NewFromFloat(12.34)},
		{name: "krw multiplies by 1350", usd: decimal.NewFromInt(10), target: money.KRW, want: decimal.NewFromInt(13500)},
		{name: "jpy multiplies by 150", usd: decimal.NewFromInt(10), target: money.JPY, want: decimal.NewFromInt(1500)},
		{name: "cny multiplies by 7.2", usd: decimal.NewFromInt(10), target: money.CNY, want: decimal.NewFromInt(72)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.Convert(tt.usd, tt.target, rates)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestConvert_UnknownCurrencyFallsBackToUSD(t *testing.T) {
	rates := money.DefaultRates()
	got := money.Convert(decimal.NewFromInt(10), money.Currency("EUR"), rates)
	assert.True(t, got.Equal(decimal.NewFromInt(10)))
}

func TestToStorable_RoundsToCurrencyPrecision(t *testing.T) {
	rates := money.DefaultRates()

	tests := []struct {
		name   string
		usd    decimal.Decimal
		target money.Currency
		want   decimal.Decimal
	}{
		{name: "krw has no fraction digits", usd: decimal.NewFromFloat(9.999), target: money.KRW, want: decimal.NewFromInt(13499)},
		{name: "usd keeps two fraction digits", usd: decimal.NewFromFloat(9.999), target: money.USD, want: decimal.NewFromInt(10)},
		{name: "jpy has no fraction digits", usd: decimal.NewFromFloat(0.333), target: money.JPY, want: decimal.NewFromInt(50)},
		{name: "cny keeps two fraction digits", usd: decimal.NewFromFloat(1.234), target: money.CNY, want: decimal.NewFromFloat(8.88)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.ToStorable(tt.usd, tt.target, rates)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
		})
	}
}

func TestRoundKRWHundreds(t *testing.T) {
	tests := []struct {
		name string
		krw  int64
		want int64
	}{
		{name: "rounds up past 50", krw: 12990, want: 13000},
		{name: "rounds up at 65", krw: 12365, want: 12400},
		{name: "rounds down below 50", krw: 12340, want: 12300},
		{name: "exact hundreds unchanged", krw: 13500, want: 13500},
		{name: "zero unchanged", krw: 0, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := money.RoundKRWHundreds(decimal.NewFromInt(tt.krw))
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)), "got %s want %d", got, tt.want)
		})
	}
}

func TestForLang(t *testing.T) {
	tests := []struct {
		lang string
		want money.Currency
	}{
		{lang: "ko", want: money.KRW},
		{lang: "ja", want: money.JPY},
		{lang: "zh", want: money.CNY},
		{lang: "en", want: money.USD},
		{lang: "", want: money.USD},
		{lang: "fr", want: money.USD},
	}

	for _, tt := range tests {
		t.Run("lang "+tt.lang, func(t *testing.T) {
			assert.Equal(t, tt.want, money.ForLang(tt.lang))
		})
	}
}

func TestPrecision(t *testing.T) {
	assert.Equal(t, int32(0), money.Precision(money.KRW))
	assert.Equal(t, int32(0), money.Precision(money.JPY))
	assert.Equal(t, int32(2), money.Precision(money.USD))
	assert.Equal(t, int32(2), money.Precision(money.CNY))
	assert.Equal(t, int32(2), money.Precision(money.Currency("EUR")))
}

func TestKnown(t *testing.T) {
	assert.True(t, money.Known(money.KRW))
	assert.True(t, money.Known(money.USD))
	assert.True(t, money.Known(money.JPY))
	assert.True(t, money.Known(money.CNY))
	assert.False(t, money.Known(money.Currency("EUR")))
}

func TestFormat(t *testing.T) {
	rates := money.DefaultRates()

	tests := []struct {
		name   string
		usd    decimal.Decimal
		target money.Currency
		want   string
	}{
		{name: "krw with grouping and won suffix", usd: decimal.NewFromInt(10), target: money.KRW, want: "13,500원"},
		{name: "usd with two decimals", usd: decimal.NewFromInt(10), target: money.USD, want: "$10.00"},
		{name: "jpy with yen prefix", usd: decimal.NewFromInt(10), target: money.JPY, want: "¥1,500"},
		{name: "cny with two decimals", usd: decimal.NewFromInt(10), target: money.CNY, want: "¥72.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.usd, tt.target, rates))
		})
	}
}
