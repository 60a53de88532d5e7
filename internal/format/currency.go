package format

import (
	"strconv"
	"strings"
)

// DefaultCurrency is used when a currency code is unknown or empty.
const DefaultCurrency = "MYR"

// currencyInfo describes how one currency renders.
type currencyInfo struct {
	Symbol      string
	Decimals    int
	SymbolFirst bool
}

var currencies = map[string]currencyInfo{
	"MYR": {Symbol: "RM", Decimals: 2, SymbolFirst: true},
	"SGD": {Symbol: "S$", Decimals: 2, SymbolFirst: true},
	"USD": {Symbol: "$", Decimals: 2, SymbolFirst: true},
	"EUR": {Symbol: "€", Decimals: 2, SymbolFirst: true},
	"GBP": {Symbol: "£", Decimals: 2, SymbolFirst: true},
	"IDR": {Symbol: "Rp", Decimals: 0, SymbolFirst: true},
	"THB": {Symbol: "฿", Decimals: 2, SymbolFirst: true},
	"JPY": {Symbol: "¥", Decimals: 0, SymbolFirst: true},
	"VND": {Symbol: "₫", Decimals: 0, SymbolFirst: false},
	"PHP": {Symbol: "₱", Decimals: 2, SymbolFirst: true},
	"INR": {Symbol: "₹", Decimals: 2, SymbolFirst: true},
}

// lookupCurrency returns the rendering info for a code, falling back to the
// base currency for unknown codes.
func lookupCurrency(code string) currencyInfo {
	if info, ok := currencies[strings.ToUpper(code)]; ok {
		return info
	}
	return currencies[DefaultCurrency]
}

// Currency renders an amount with its currency symbol, e.g. "RM1,500.00".
func Currency(amount float64, code string) string {
	info := lookupCurrency(code)
	number := groupThousands(strconv.FormatFloat(amount, 'f', info.Decimals, 64))
	if info.SymbolFirst {
		return info.Symbol + number
	}
	return number + info.Symbol
}

// CurrencyCompact renders an amount abbreviated with K/M suffixes, e.g. "RM1.5K".
func CurrencyCompact(amount float64, code string) string {
	info := lookupCurrency(code)

	var number string
	abs := amount
	if abs < 0 {
		abs = -abs
	}
	switch {
	case abs >= 1_000_000:
		number = trimTrailingZero(amount/1_000_000) + "M"
	case abs >= 1_000:
		number = trimTrailingZero(amount/1_000) + "K"
	default:
		number = strconv.FormatFloat(amount, 'f', info.Decimals, 64)
	}

	if info.SymbolFirst {
		return info.Symbol + number
	}
	return number + info.Symbol
}

// AmountString parses a numeric string and renders it as currency.
// Malformed input degrades to the "-" placeholder rather than failing.
func AmountString(s, code string) string {
	amount, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return "-"
	}
	return Currency(amount, code)
}

// trimTrailingZero formats to one decimal place and drops a ".0" suffix.
func trimTrailingZero(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}

// groupThousands inserts comma separators into the integer part of a formatted number.
func groupThousands(number string) string {
	sign := ""
	if strings.HasPrefix(number, "-") {
		sign = "-"
		number = number[1:]
	}

	intPart := number
	fracPart := ""
	if idx := strings.IndexByte(number, '.'); idx >= 0 {
		intPart = number[:idx]
		fracPart = number[idx:]
	}

	if len(intPart) <= 3 {
		return sign + intPart + fracPart
	}

	var sb strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		sb.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(intPart[i : i+3])
	}

	return sign + sb.String() + fracPart
}
