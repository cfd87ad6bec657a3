// Package money holds the storefront's currency normalization: all cart math
// is done in a single reference currency (USD) and conversion to the display
// currency happens only at the presentation boundary.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Currency is a display currency supported by the storefront.
type Currency string

const (
	KRW Currency = "KRW"
	USD Currency = "USD"
	JPY Currency = "JPY"
	CNY Currency = "CNY"
)

// RateTable maps a currency to its USD multiplier.
type RateTable map[Currency]decimal.Decimal

// DefaultRates returns the static rate table. Rates are data, not behaviour;
// swapping them in one place is the only supported way to change them.
func DefaultRates() RateTable {
	return RateTable{
		KRW: decimal.NewFromInt(1350),
		USD: decimal.NewFromInt(1),
		JPY: decimal.NewFromInt(150),
		CNY: decimal.NewFromFloat(7.2),
	}
}

// precisions maps each currency to its fractional-digit precision.
var precisions = map[Currency]int32{
	KRW: 0,
	USD: 2,
	JPY: 0,
	CNY: 2,
}

// Precision returns the fractional-digit precision for the currency.
// Unknown currencies get 2, the common case.
func Precision(c Currency) int32 {
	if p, ok := precisions[c]; ok {
		return p
	}
	return 2
}

// Known reports whether c is one of the supported display currencies.
func Known(c Currency) bool {
	_, ok := precisions[c]
	return ok
}

// ForLang maps a storefront language to its display currency. Unknown
// languages fall back to the reference currency.
func ForLang(lang string) Currency {
	switch lang {
	case "ko":
		return KRW
	case "ja":
		return JPY
	case "zh":
		return CNY
	default:
		return USD
	}
}

// Convert converts a USD amount into the target currency. No rounding is
// applied here.
func Convert(amountUSD decimal.Decimal, target Currency, rates RateTable) decimal.Decimal {
	rate, ok := rates[target]
	if !ok {
		return amountUSD
	}
	return amountUSD.Mul(rate)
}

// ToStorable converts and rounds a USD amount to the target currency's
// precision, yielding a plain number in that currency's denomination. Used
// only for presentation-side price snapshots; cart state always stays in USD.
func ToStorable(amountUSD decimal.Decimal, target Currency, rates RateTable) decimal.Decimal {
	return Convert(amountUSD, target, rates).Round(Precision(target))
}

// RoundKRWHundreds rounds a KRW amount to the nearest hundred won
// (12,990 → 13,000; 12,365 → 12,400).
func RoundKRWHundreds(krw decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	return krw.Div(hundred).Round(0).Mul(hundred)
}

var printers = map[Currency]*message.Printer{
	KRW: message.NewPrinter(language.Korean),
	USD: message.NewPrinter(language.AmericanEnglish),
	JPY: message.NewPrinter(language.Japanese),
	CNY: message.NewPrinter(language.SimplifiedChinese),
}

// Format converts a USD amount to the target currency, rounds to the
// currency's precision and renders it with the locale's digit grouping and
// symbol placement, e.g. "13,500원", "$10.00", "¥1,500", "¥72.00".
func Format(amountUSD decimal.Decimal, target Currency, rates RateTable) string {
	rounded := ToStorable(amountUSD, target, rates)
	value, _ := rounded.Float64()
	prec := int(Precision(target))
	formatted := number.Decimal(value,
		number.MinFractionDigits(prec),
		number.MaxFractionDigits(prec),
	)

	p, ok := printers[target]
	if !ok {
		p = printers[USD]
	}
	switch target {
	case KRW:
		return p.Sprintf("%v원", formatted)
	case JPY, CNY:
		return p.Sprintf("¥%v", formatted)
	default:
		return p.Sprintf("$%v", formatted)
	}
}
