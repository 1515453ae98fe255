package usecase

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// maxCalculatorValue ограничивает модуль входного числа; большие значения считаются некорректными.
	maxCalculatorValue = 1e12
	// calculatorScale: число знаков после запятой, до которого округляется вход.
	calculatorScale = 6
)

var hundred = decimal.NewFromInt(100)

// ProfitBreakdown считает прибыль с одной продажи. Пустые и некорректные значения считаются нулём.
//
//	gross  = sell - cost
//	fees   = sell * feesPercent / 100
//	net    = gross - shipping - fees
//	margin = net / sell * 100, или 0 при sell == 0
func ProfitBreakdown(cost, sellPrice, shippingCost, feesPercent string) ProfitResult {
	c := parseNumber(cost)
	sell := parseNumber(sellPrice)
	shipping := parseNumber(shippingCost)
	feesPct := parseNumber(feesPercent)

	gross := sell.Sub(c)
	fees := sell.Mul(feesPct).Div(hundred)
	net := gross.Sub(shipping).Sub(fees)

	margin := decimal.Zero
	if !sell.IsZero() {
		margin = net.Div(sell).Mul(hundred)
	}

	return ProfitResult{
		GrossProfit:   toFinite(gross),
		Fees:          toFinite(fees),
		NetProfit:     toFinite(net),
		MarginPercent: toFinite(margin),
	}
}

// MarkupSuggestion подбирает цену, дающую нужную маржу: price = cost * 100 / (100 - margin).
// При марже от 100% возвращает InvalidMarkup.
func MarkupSuggestion(cost, desiredMarginPercent string) MarkupResult {
	c := parseNumber(cost)
	margin := parseNumber(desiredMarginPercent)

	denom := hundred.Sub(margin)
	if !denom.IsPositive() {
		return InvalidMarkup
	}

	price := c.Mul(hundred).Div(denom)

	return MarkupResult{
		SuggestedPrice: toFinite(price),
		ExpectedProfit: toFinite(price.Sub(c)),
		Valid:          true,
	}
}

// parseNumber разбирает число из поля калькулятора. Нечисловые, бесконечные и слишком большие
// по модулю значения дают 0, дробная часть округляется до calculatorScale знаков.
func parseNumber(s string) decimal.Decimal {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.Abs(v) > maxCalculatorValue {
		return decimal.Zero
	}

	return decimal.NewFromFloat(v).Round(calculatorScale)
}

func toFinite(d decimal.Decimal) float64 {
	f := d.InexactFloat64()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return f
}
