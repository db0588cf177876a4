package main

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Halukc1974/erp-sub000/contracts"
)

// numericPrefixRegex mirrors parseFloat: the longest leading decimal literal wins, the rest is ignored
var numericPrefixRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

var currencyTokenRegex = regexp.MustCompile(`^\s*([^|]*)\|([A-Za-z]{3})\s*$`)

// CoerceToNumeric never fails: anything that is not a number reads as 0.
func CoerceToNumeric(raw contracts.RawValue) float64 {
	switch raw.Kind {
	case contracts.NumericValue:
		return finiteOrZero(raw.Number)
	case contracts.CurrencyValue:
		return parseFloatPrefix(raw.Text)
	case contracts.BooleanValue:
		return booleanToNumeric(raw.Bool)
	case contracts.TextValue:
		if amount, _, found := strings.Cut(raw.Text, contracts.CurrencySeparator); found {
			return parseFloatPrefix(amount)
		}
		return parseFloatPrefix(raw.Text)
	default:
		return 0
	}
}

// CoerceForGrid returns nil, float64 or string.
func CoerceForGrid(raw contracts.RawValue) any {
	switch raw.Kind {
	case contracts.NumericValue:
		return finiteOrZero(raw.Number)
	case contracts.CurrencyValue:
		return parseFloatPrefix(raw.Text)
	case contracts.BooleanValue:
		return booleanToNumeric(raw.Bool)
	case contracts.TextValue:
		trimmed := strings.TrimSpace(raw.Text)
		if trimmed == "" {
			return nil
		}
		if matches := currencyTokenRegex.FindStringSubmatch(trimmed); matches != nil {
			return parseFloatPrefix(matches[1])
		}
		if number, ok := parseFiniteFloat(trimmed); ok {
			return number
		}
		return raw.Text
	default:
		return nil
	}
}

// NumericGridValue coerces a grid snapshot cell
func NumericGridValue(value any) float64 {
	switch typed := value.(type) {
	case float64:
		return typed
	case string:
		return CoerceToNumeric(contracts.NewTextValue(typed))
	default:
		return 0
	}
}

// ParseCellInput turns text typed into a cell into the raw value stored in the row.
func ParseCellInput(input string, dataType contracts.DataType) contracts.RawValue {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return contracts.NullRawValue()
	}

	switch dataType {
	case contracts.DataTypeNumber, contracts.DataTypeDecimal, contracts.DataTypeCurrency:
		if number, ok := parseFiniteFloat(trimmed); ok {
			return contracts.NewNumericValue(number)
		}
	case contracts.DataTypeBoolean:
		if value, err := strconv.ParseBool(trimmed); err == nil {
			return contracts.NewBooleanValue(value)
		}
	}

	if matches := currencyTokenRegex.FindStringSubmatch(trimmed); matches != nil {
		return contracts.NewCurrencyValue(strings.TrimSpace(matches[1]), strings.ToUpper(matches[2]))
	}

	return contracts.NewTextValue(input)
}

func parseFloatPrefix(text string) float64 {
	prefix := numericPrefixRegex.FindString(strings.TrimSpace(text))
	if prefix == "" {
		return 0
	}

	number, err := strconv.ParseFloat(prefix, 64)
	if err != nil {
		return 0
	}
	return finiteOrZero(number)
}

func parseFiniteFloat(text string) (float64, bool) {
	number, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}
	return number, true
}

func finiteOrZero(number float64) float64 {
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0
	}
	return number
}

func booleanToNumeric(value bool) float64 {
	if value {
		return 1
	}
	return 0
}

// FormatNumeric renders a numeric result: huge magnitudes in exponential notation,
// fractions rounded to 6 decimals without trailing zeros, integers as is.
func FormatNumeric(number float64) string {
	if number == 0 {
		return "0"
	}

	if math.Abs(number) > 1e15 {
		return strconv.FormatFloat(number, 'e', 2, 64)
	}

	if number != math.Trunc(number) {
		rounded := math.Round(number*1e6) / 1e6
		if rounded == 0 {
			return "0"
		}
		return strconv.FormatFloat(rounded, 'f', -1, 64)
	}

	return strconv.FormatFloat(number, 'f', 0, 64)
}

// FormatResult renders an evaluation result; nil reads as "0"
func FormatResult(result any) string {
	switch typed := result.(type) {
	case nil:
		return "0"
	case float64:
		return FormatNumeric(typed)
	case string:
		return typed
	default:
		return contracts.ErrorDisplayValue
	}
}
