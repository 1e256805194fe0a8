package settings

import (
	"sort"
)

const fallbackSymbol = "$"

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"INR": "₹",
	"JPY": "¥",
}

// Symbol returns the display symbol for a currency code, "$" for unknown codes.
func Symbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return fallbackSymbol
}

func IsSupportedCurrency(code string) bool {
	_, ok := currencySymbols[code]
	return ok
}

func SupportedCurrencies() []string {
	codes := make([]string, 0, len(currencySymbols))
	for code := range currencySymbols {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
